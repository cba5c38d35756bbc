// Package hrtime wraps the runtime monotonic clock behind a small interface
// so measurement code can be driven by scripted clocks in tests.
package hrtime

import (
	"fmt"
	"math"
	"time"
)

// MaxResolution is the coarsest clock granularity the harness accepts.
// A timed kernel invocation costs tens of microseconds; a clock coarser than
// this cannot separate strategies and every sample would round to zero.
const MaxResolution = 100 * time.Microsecond

// Clock supplies timestamps for interval measurement. Implementations must be
// monotonic: a later call never observes an earlier instant.
type Clock interface {
	Now() time.Time
}

// System reads the runtime monotonic clock.
type System struct{}

// Now implements Clock.
func (System) Now() time.Time { return time.Now() }

// Elapsed returns the nanoseconds between start and end, clamped at zero.
func Elapsed(start, end time.Time) uint64 {
	d := end.Sub(start)
	if d < 0 {
		return 0
	}
	return uint64(d)
}

// Resolution probes the smallest nonzero interval c can observe. A clock that
// never advances reports the maximum duration.
func Resolution(c Clock) time.Duration {
	const (
		probes   = 16
		maxSpins = 1 << 20
	)

	best := time.Duration(math.MaxInt64)
	for i := 0; i < probes; i++ {
		start := c.Now()
		end := start
		for spins := 0; !end.After(start); spins++ {
			if spins >= maxSpins {
				return best
			}
			end = c.Now()
		}
		if d := end.Sub(start); d < best {
			best = d
		}
	}

	return best
}

// Check probes c and reports an error when its resolution is too coarse for
// kernel measurement. Callers treat this as fatal before any timed work.
func Check(c Clock) error {
	if r := Resolution(c); r > MaxResolution {
		return fmt.Errorf("hrtime: clock resolution %v exceeds usable bound %v", r, MaxResolution)
	}
	return nil
}
