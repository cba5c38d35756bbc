package detrand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestNextPinnedSequence(t *testing.T) {
	// First draws from the canonical seed. These values pin the generator:
	// changing the mixer or the seed silently changes every measured workload.
	s := Default()
	require.Equal(t, uint32(0x364A11E8), s.Next())
	require.Equal(t, uint32(0x7ED0DA1B), s.Next())
	require.Equal(t, uint32(0xC5D4FCBC), s.Next())
}

func TestNextDeterministic(t *testing.T) {
	a := New(12345, 67890)
	b := New(12345, 67890)

	for i := 0; i < 10000; i++ {
		require.Equal(t, a.Next(), b.Next(), "draw %d diverged", i)
	}
}

func TestFill32MatchesManualDraws(t *testing.T) {
	dst := make([]uint32, 64)
	Fill32(dst)

	s := Default()
	for i, got := range dst {
		assert.Equal(t, s.Next(), got, "element %d", i)
	}
}

func TestFill64WordOrder(t *testing.T) {
	dst := make([]uint64, 2)
	Fill64(dst)

	// Low word first: draws (0x364A11E8, 0x7ED0DA1B) form the first element.
	assert.Equal(t, uint64(0x7ED0DA1B_364A11E8), dst[0])

	s := Default()
	for i := 0; i < 2; i++ {
		s.Next()
	}
	lo := uint64(s.Next())
	hi := uint64(s.Next())
	assert.Equal(t, lo|hi<<32, dst[1])
}

func TestFillReproducibleAcrossGoroutines(t *testing.T) {
	bufs := make([][]uint32, 4)

	var g errgroup.Group
	for i := range bufs {
		g.Go(func() error {
			bufs[i] = make([]uint32, 4096)
			Fill32(bufs[i])
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for i := 1; i < len(bufs); i++ {
		require.Equal(t, bufs[0], bufs[i], "goroutine fill %d diverged", i)
	}
}
