// Package divbench cross-validates and times integer division strategies
// against the native divide instruction.
//
// A sweep walks the divisors of one domain (u32, s32, u64 or s64). For each
// divisor it builds branchfull and branchfree divider descriptors, sums a
// fixed numerator buffer once per strategy under a monotonic clock, keeps
// the minimum across repeated samples, and compares every checked sum
// against the hardware baseline. A mismatch is logged and collected in a
// ledger; the sweep keeps going.
//
// # Quick Start
//
//	bench, err := divbench.New(
//	    divbench.WithDivisorLimit(100),
//	    divbench.WithLogLevel(slog.LevelInfo),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := bench.CheckClock(); err != nil {
//	    log.Fatal(err)
//	}
//
//	rep := divbench.NewReporter(os.Stdout)
//	bench.Run([]divbench.Domain{divbench.DomainU64}, rep.SweepEmitter())
//
//	for _, site := range bench.Mismatches().Sites() {
//	    fmt.Println(site.Site, site.Count)
//	}
//
// # Strategies
//
// Each divisor trial times up to six strategies:
//
//   - hardware: the native divide instruction (the baseline)
//   - scalar: branchfull descriptor, one element at a time
//   - scalar_branchfree: branchfree descriptor, one element at a time
//   - vector: branchfull descriptor over vector lane groups
//   - vector_branchfree: branchfree descriptor over vector lane groups
//   - generate: descriptor construction throughput
//
// The vector strategies run only on machines with SIMD lanes; elsewhere
// they report -1. Divisor one cannot be encoded branchfree, so its
// branchfree strategies measure a divisor-two descriptor and skip the
// equality check.
package divbench
