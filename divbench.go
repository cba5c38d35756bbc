package divbench

import (
	"fmt"
	"math/rand/v2"

	"golang.org/x/time/rate"

	"github.com/hupe1980/divbench/internal/hrtime"
	"github.com/hupe1980/divbench/internal/mem"
	"github.com/hupe1980/divbench/kernel"
)

// Bench drives divisor sweeps. Construct with New; the zero value is not
// usable.
type Bench struct {
	samples     int
	elements    int
	generations int
	limit       uint64

	clock   hrtime.Clock
	logger  *Logger
	metrics MetricsCollector
	ledger  *MismatchLedger

	progressLimiter *rate.Limiter
}

// New creates a Bench.
//
// Unless WithoutJitter is set, the element and generation counts are
// perturbed once, here, by up to two KiB-sized steps. Fixed counts can
// alias with periodic system noise and make every run inherit the same
// skew; the perturbation breaks that alignment while leaving each run
// internally consistent.
func New(optFns ...Option) (*Bench, error) {
	o := applyOptions(optFns)

	if o.samples <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSamples, o.samples)
	}
	if o.elements <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidElements, o.elements)
	}
	if o.generations <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidGenerations, o.generations)
	}

	b := &Bench{
		samples:         o.samples,
		elements:        o.elements,
		generations:     o.generations,
		limit:           o.divisorLimit,
		clock:           o.clock,
		logger:          o.logger,
		metrics:         o.metricsCollector,
		ledger:          NewMismatchLedger(),
		progressLimiter: rate.NewLimiter(rate.Every(o.progressInterval), 1),
	}

	if o.jitter {
		b.elements += rand.IntN(3) << 10
		b.generations += rand.IntN(3) << 10
	}
	// Lane kernels step through the buffer in full groups.
	b.elements = roundUpLanes(b.elements)

	return b, nil
}

func roundUpLanes(n int) int {
	if r := n % kernel.MaxLanes32; r != 0 {
		n += kernel.MaxLanes32 - r
	}
	return n
}

// Elements returns the numerator buffer length after jitter and lane
// rounding.
func (b *Bench) Elements() int { return b.elements }

// Generations returns the per-sample descriptor construction count after
// jitter.
func (b *Bench) Generations() int { return b.generations }

// Samples returns the per-strategy repetition count.
func (b *Bench) Samples() int { return b.samples }

// Mismatches returns the ledger collecting failed cross-checks. The ledger
// accumulates across all sweeps of this Bench.
func (b *Bench) Mismatches() *MismatchLedger { return b.ledger }

// CheckClock probes the configured clock and fails when its resolution is
// too coarse to time a trial window.
func (b *Bench) CheckClock() error {
	if err := hrtime.Check(b.clock); err != nil {
		return &ErrCoarseClock{cause: err}
	}
	return nil
}

// Run executes sweeps for the requested domains in canonical order (u32,
// s32, u64, s64), sharing one aligned numerator buffer per operand width.
// Duplicate domains run once.
func (b *Bench) Run(domains []Domain, emit func(Result)) {
	var want [numDomains]bool
	for _, d := range domains {
		if d >= 0 && d < numDomains {
			want[d] = true
		}
	}

	if want[DomainU32] || want[DomainS32] {
		vals := b.numerators32()
		if want[DomainU32] {
			b.sweepU32(vals, emit)
		}
		if want[DomainS32] {
			b.sweepS32(mem.Int32View(vals), emit)
		}
	}

	if want[DomainU64] || want[DomainS64] {
		vals := b.numerators64()
		if want[DomainU64] {
			b.sweepU64(vals, emit)
		}
		if want[DomainS64] {
			b.sweepS64(mem.Int64View(vals), emit)
		}
	}
}
