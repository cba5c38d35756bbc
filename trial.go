package divbench

import (
	"strconv"
	"time"

	"github.com/hupe1980/divbench/internal/hrtime"
	"github.com/hupe1980/divbench/kernel"
)

// Result is the immutable outcome of one divisor trial.
type Result struct {
	// Domain is the sweep domain the trial ran in.
	Domain Domain

	// Divisor holds the divisor bit pattern. Signed domains store the
	// sign-extended two's-complement pattern; use DivisorString for
	// display.
	Divisor uint64

	// Algo is the algorithm class of the round-trip descriptor.
	Algo Algorithm

	// Elements is the numerator buffer length each sum sample covered.
	Elements int

	// Generations is the descriptor count each generate sample built.
	Generations int

	durations [numStrategies]int64
}

// Duration returns the minimum sampled nanoseconds for one strategy, or -1
// when the strategy did not run.
func (r Result) Duration(s Strategy) int64 {
	if s < 0 || s >= numStrategies {
		return -1
	}
	return r.durations[s]
}

// PerElement returns the nanoseconds spent per buffer element for one sum
// strategy, or -1 when the strategy did not run.
func (r Result) PerElement(s Strategy) float64 {
	d := r.Duration(s)
	if d < 0 {
		return -1
	}
	return float64(d) / float64(r.Elements)
}

// PerGeneration returns the nanoseconds spent per descriptor construction,
// or -1 when the generate strategy did not run.
func (r Result) PerGeneration() float64 {
	d := r.Duration(StrategyGenerate)
	if d < 0 {
		return -1
	}
	return float64(d) / float64(r.Generations)
}

// DivisorString formats the divisor for the trial's domain.
func (r Result) DivisorString() string {
	return formatDivisor(r.Domain, r.Divisor)
}

func formatDivisor(d Domain, bits uint64) string {
	if d.Signed() {
		return strconv.FormatInt(int64(bits), 10)
	}
	return strconv.FormatUint(bits, 10)
}

// trialSpec wires the strategy implementations for one divisor. A nil
// runner marks the strategy absent on this machine; checked marks runners
// whose sum must match the hardware baseline. run[StrategyHardware] must be
// set.
type trialSpec struct {
	domain  Domain
	divisor uint64
	algo    Algorithm
	run     [numStrategies]func() uint64
	checked [numStrategies]bool
}

// runTrial times every wired strategy under the configured clock and keeps
// the per-strategy minimum across samples. The first hardware run fixes the
// baseline sum; every checked sample is compared against it. A mismatch is
// logged and recorded in the ledger and the trial continues.
func (b *Bench) runTrial(spec trialSpec) Result {
	res := Result{
		Domain:      spec.domain,
		Divisor:     spec.divisor,
		Algo:        spec.algo,
		Elements:    b.elements,
		Generations: b.generations,
	}
	for s := range res.durations {
		res.durations[s] = -1
	}

	var baseline uint64
	for iter := 0; iter < b.samples; iter++ {
		for s := StrategyHardware; s < numStrategies; s++ {
			fn := spec.run[s]
			if fn == nil {
				continue
			}

			start := b.clock.Now()
			sum := fn()
			end := b.clock.Now()
			kernel.Observe(sum)

			elapsed := int64(hrtime.Elapsed(start, end))
			if cur := res.durations[s]; cur < 0 || elapsed < cur {
				res.durations[s] = elapsed
			}
			b.metrics.RecordSample(s, time.Duration(elapsed))

			if s == StrategyHardware {
				if iter == 0 {
					baseline = sum
				}
				continue
			}
			if spec.checked[s] && sum != baseline {
				b.recordMismatch(spec, s, sum, baseline)
			}
		}
	}

	b.metrics.RecordTrial(spec.domain)
	return res
}

func (b *Bench) recordMismatch(spec trialSpec, s Strategy, got, want uint64) {
	site := spec.domain.String() + "/" + s.String()
	b.logger.LogMismatch(site, formatDivisor(spec.domain, spec.divisor), got, want)
	b.ledger.Record(spec.domain, s, spec.divisor)
	b.metrics.RecordMismatch(site)
}
