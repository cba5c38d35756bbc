package divbench

import (
	"math"
	"time"

	"github.com/hupe1980/divbench/divider"
	"github.com/hupe1980/divbench/internal/detrand"
	"github.com/hupe1980/divbench/internal/hrtime"
	"github.com/hupe1980/divbench/internal/mem"
	"github.com/hupe1980/divbench/kernel"
)

// Sweep runs the divisor sweep for one domain over a freshly allocated,
// deterministically filled numerator buffer and streams one Result per
// divisor to emit. Run shares a buffer between the two domains of one
// width; Sweep is the single-domain entry point.
func (b *Bench) Sweep(domain Domain, emit func(Result)) {
	switch domain {
	case DomainU32:
		b.sweepU32(b.numerators32(), emit)
	case DomainS32:
		b.sweepS32(mem.Int32View(b.numerators32()), emit)
	case DomainU64:
		b.sweepU64(b.numerators64(), emit)
	case DomainS64:
		b.sweepS64(mem.Int64View(b.numerators64()), emit)
	}
}

func (b *Bench) numerators32() []uint32 {
	vals := mem.AllocAlignedUint32(b.elements)
	detrand.Fill32(vals)
	return vals
}

func (b *Bench) numerators64() []uint64 {
	vals := mem.AllocAlignedUint64(b.elements)
	detrand.Fill64(vals)
	return vals
}

// runSweep drives one domain sweep. next yields trial specs until the
// enumeration is exhausted; the divisor limit cuts the sweep short when
// configured.
func (b *Bench) runSweep(domain Domain, emit func(Result), next func() (trialSpec, bool)) {
	b.logger.LogSweepStart(domain, b.elements, b.generations)
	start := b.clock.Now()
	before := b.ledger.Total()

	var done uint64
	for {
		spec, ok := next()
		if !ok {
			break
		}
		emit(b.runTrial(spec))
		done++
		if b.limit > 0 && done >= b.limit {
			break
		}
		if b.progressLimiter.Allow() {
			b.logger.LogSweepProgress(domain, formatDivisor(domain, spec.divisor), done)
		}
	}

	elapsed := time.Duration(hrtime.Elapsed(start, b.clock.Now()))
	b.logger.LogSweepDone(domain, done, b.ledger.Total()-before)
	b.metrics.RecordSweep(domain, done, elapsed)
}

func (b *Bench) sweepU32(vals []uint32, emit func(Result)) {
	d := uint32(1)
	b.runSweep(DomainU32, emit, func() (trialSpec, bool) {
		if d == 0 {
			return trialSpec{}, false
		}
		spec := b.specU32(d, vals)
		d++
		return spec, true
	})
}

func (b *Bench) sweepS32(vals []int32, emit func(Result)) {
	d := int32(1)
	exhausted := false
	b.runSweep(DomainS32, emit, func() (trialSpec, bool) {
		if exhausted {
			return trialSpec{}, false
		}
		spec := b.specS32(d, vals)
		if d == math.MinInt32 {
			// Negation wraps at the minimum value; the domain ends here.
			exhausted = true
			return spec, true
		}
		d = -d
		if d > 0 {
			d++
		}
		return spec, true
	})
}

func (b *Bench) sweepU64(vals []uint64, emit func(Result)) {
	d := uint64(1)
	b.runSweep(DomainU64, emit, func() (trialSpec, bool) {
		if d == 0 {
			return trialSpec{}, false
		}
		spec := b.specU64(d, vals)
		d++
		return spec, true
	})
}

func (b *Bench) sweepS64(vals []int64, emit func(Result)) {
	d := int64(1)
	exhausted := false
	b.runSweep(DomainS64, emit, func() (trialSpec, bool) {
		if exhausted {
			return trialSpec{}, false
		}
		spec := b.specS64(d, vals)
		if d == math.MinInt64 {
			exhausted = true
			return spec, true
		}
		d = -d
		if d > 0 {
			d++
		}
		return spec, true
	})
}

// The trialSpec builders construct all descriptors before runTrial starts
// timing, so descriptor generation cost never leaks into the sum samples.
// The generate strategy times construction separately.

func (b *Bench) specU32(d uint32, vals []uint32) trialSpec {
	div := divider.NewUint32(d)

	// A branchfree descriptor cannot encode divisor one. Divisor two
	// stands in for the measurement and the equality check is skipped.
	bf := d
	if d == 1 {
		bf = 2
	}
	divBF := divider.NewUint32Branchfree(bf)

	spec := trialSpec{
		domain:  DomainU32,
		divisor: uint64(d),
		algo:    classify(div.Magic == 0, div.More),
	}
	spec.run[StrategyHardware] = func() uint64 { return kernel.SumHardwareU32(vals, d) }
	spec.run[StrategyScalar] = func() uint64 { return kernel.SumBranchfullU32(vals, div) }
	spec.run[StrategyScalarBranchfree] = func() uint64 { return kernel.SumBranchfreeU32(vals, divBF) }
	if kernel.Lanes32 > 0 {
		spec.run[StrategyVector] = func() uint64 { return kernel.SumVectorBranchfullU32(vals, div) }
		spec.run[StrategyVectorBranchfree] = func() uint64 { return kernel.SumVectorBranchfreeU32(vals, divBF) }
	}
	spec.run[StrategyGenerate] = func() uint64 { return kernel.GenerateU32(d, b.generations) }

	spec.checked[StrategyScalar] = true
	spec.checked[StrategyVector] = true
	if d != 1 {
		spec.checked[StrategyScalarBranchfree] = true
		spec.checked[StrategyVectorBranchfree] = true
	}
	return spec
}

func (b *Bench) specS32(d int32, vals []int32) trialSpec {
	div := divider.NewInt32(d)

	bf := d
	if d == 1 {
		bf = 2
	}
	divBF := divider.NewInt32Branchfree(bf)

	spec := trialSpec{
		domain:  DomainS32,
		divisor: uint64(int64(d)),
		algo:    classify(div.Magic == 0, div.More),
	}
	spec.run[StrategyHardware] = func() uint64 { return kernel.SumHardwareS32(vals, d) }
	spec.run[StrategyScalar] = func() uint64 { return kernel.SumBranchfullS32(vals, div) }
	spec.run[StrategyScalarBranchfree] = func() uint64 { return kernel.SumBranchfreeS32(vals, divBF) }
	if kernel.Lanes32 > 0 {
		spec.run[StrategyVector] = func() uint64 { return kernel.SumVectorBranchfullS32(vals, div) }
		spec.run[StrategyVectorBranchfree] = func() uint64 { return kernel.SumVectorBranchfreeS32(vals, divBF) }
	}
	spec.run[StrategyGenerate] = func() uint64 { return kernel.GenerateS32(d, b.generations) }

	spec.checked[StrategyScalar] = true
	spec.checked[StrategyVector] = true
	if d != 1 {
		spec.checked[StrategyScalarBranchfree] = true
		spec.checked[StrategyVectorBranchfree] = true
	}
	return spec
}

func (b *Bench) specU64(d uint64, vals []uint64) trialSpec {
	div := divider.NewUint64(d)

	bf := d
	if d == 1 {
		bf = 2
	}
	divBF := divider.NewUint64Branchfree(bf)

	spec := trialSpec{
		domain:  DomainU64,
		divisor: d,
		algo:    classify(div.Magic == 0, div.More),
	}
	spec.run[StrategyHardware] = func() uint64 { return kernel.SumHardwareU64(vals, d) }
	spec.run[StrategyScalar] = func() uint64 { return kernel.SumBranchfullU64(vals, div) }
	spec.run[StrategyScalarBranchfree] = func() uint64 { return kernel.SumBranchfreeU64(vals, divBF) }
	if kernel.Lanes64 > 0 {
		spec.run[StrategyVector] = func() uint64 { return kernel.SumVectorBranchfullU64(vals, div) }
		spec.run[StrategyVectorBranchfree] = func() uint64 { return kernel.SumVectorBranchfreeU64(vals, divBF) }
	}
	spec.run[StrategyGenerate] = func() uint64 { return kernel.GenerateU64(d, b.generations) }

	spec.checked[StrategyScalar] = true
	spec.checked[StrategyVector] = true
	if d != 1 {
		spec.checked[StrategyScalarBranchfree] = true
		spec.checked[StrategyVectorBranchfree] = true
	}
	return spec
}

func (b *Bench) specS64(d int64, vals []int64) trialSpec {
	div := divider.NewInt64(d)

	bf := d
	if d == 1 {
		bf = 2
	}
	divBF := divider.NewInt64Branchfree(bf)

	spec := trialSpec{
		domain:  DomainS64,
		divisor: uint64(d),
		algo:    classify(div.Magic == 0, div.More),
	}
	spec.run[StrategyHardware] = func() uint64 { return kernel.SumHardwareS64(vals, d) }
	spec.run[StrategyScalar] = func() uint64 { return kernel.SumBranchfullS64(vals, div) }
	spec.run[StrategyScalarBranchfree] = func() uint64 { return kernel.SumBranchfreeS64(vals, divBF) }
	if kernel.Lanes64 > 0 {
		spec.run[StrategyVector] = func() uint64 { return kernel.SumVectorBranchfullS64(vals, div) }
		spec.run[StrategyVectorBranchfree] = func() uint64 { return kernel.SumVectorBranchfreeS64(vals, divBF) }
	}
	spec.run[StrategyGenerate] = func() uint64 { return kernel.GenerateS64(d, b.generations) }

	spec.checked[StrategyScalar] = true
	spec.checked[StrategyVector] = true
	if d != 1 {
		spec.checked[StrategyScalarBranchfree] = true
		spec.checked[StrategyVectorBranchfree] = true
	}
	return spec
}
