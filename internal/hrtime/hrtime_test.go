package hrtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stepClock advances by a fixed step on every Now call.
type stepClock struct {
	now  time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	c.now = c.now.Add(c.step)
	return c.now
}

// frozenClock never advances.
type frozenClock struct {
	now time.Time
}

func (c *frozenClock) Now() time.Time { return c.now }

func TestElapsed(t *testing.T) {
	base := time.Unix(0, 0)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  uint64
	}{
		{name: "forward", start: base, end: base.Add(1500 * time.Nanosecond), want: 1500},
		{name: "zero", start: base, end: base, want: 0},
		{name: "backward clamps", start: base.Add(time.Second), end: base, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Elapsed(tt.start, tt.end))
		})
	}
}

func TestSystemMonotonic(t *testing.T) {
	c := System{}
	start := c.Now()
	end := c.Now()
	assert.False(t, end.Before(start))
}

func TestResolutionStepClock(t *testing.T) {
	c := &stepClock{now: time.Unix(0, 0), step: time.Microsecond}
	assert.Equal(t, time.Microsecond, Resolution(c))
}

func TestCheck(t *testing.T) {
	fine := &stepClock{now: time.Unix(0, 0), step: time.Microsecond}
	require.NoError(t, Check(fine))

	coarse := &stepClock{now: time.Unix(0, 0), step: 15 * time.Millisecond}
	err := Check(coarse)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resolution")
}

func TestCheckFrozenClock(t *testing.T) {
	require.Error(t, Check(&frozenClock{now: time.Unix(0, 0)}))
}
