package kernel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/divbench/divider"
	"github.com/hupe1980/divbench/internal/detrand"
)

const testElements = 1024 // multiple of every lane count

func testBufU32(t *testing.T) []uint32 {
	t.Helper()
	buf := make([]uint32, testElements)
	detrand.Fill32(buf)
	return buf
}

func testBufU64(t *testing.T) []uint64 {
	t.Helper()
	buf := make([]uint64, testElements)
	detrand.Fill64(buf)
	return buf
}

func int32View(u []uint32) []int32 {
	s := make([]int32, len(u))
	for i, v := range u {
		s[i] = int32(v)
	}
	return s
}

func int64View(u []uint64) []int64 {
	s := make([]int64, len(u))
	for i, v := range u {
		s[i] = int64(v)
	}
	return s
}

func TestScalarStrategiesMatchHardwareU32(t *testing.T) {
	vals := testBufU32(t)
	divisors := []uint32{1, 2, 3, 5, 7, 641, 1 << 31, math.MaxUint32}

	for _, d := range divisors {
		want := SumHardwareU32(vals, d)
		require.Equal(t, want, SumBranchfullU32(vals, divider.NewUint32(d)), "branchfull d=%d", d)
		if d != 1 {
			require.Equal(t, want, SumBranchfreeU32(vals, divider.NewUint32Branchfree(d)), "branchfree d=%d", d)
		}
	}
}

func TestScalarStrategiesMatchHardwareS32(t *testing.T) {
	vals := int32View(testBufU32(t))
	divisors := []int32{1, -1, 2, -2, 7, -7, 1 << 30, math.MinInt32}

	for _, d := range divisors {
		want := SumHardwareS32(vals, d)
		require.Equal(t, want, SumBranchfullS32(vals, divider.NewInt32(d)), "branchfull d=%d", d)
		if d != 1 {
			require.Equal(t, want, SumBranchfreeS32(vals, divider.NewInt32Branchfree(d)), "branchfree d=%d", d)
		}
	}
}

func TestScalarStrategiesMatchHardwareU64(t *testing.T) {
	vals := testBufU64(t)
	divisors := []uint64{1, 2, 3, 7, 1 << 33, math.MaxUint64}

	for _, d := range divisors {
		want := SumHardwareU64(vals, d)
		require.Equal(t, want, SumBranchfullU64(vals, divider.NewUint64(d)), "branchfull d=%d", d)
		if d != 1 {
			require.Equal(t, want, SumBranchfreeU64(vals, divider.NewUint64Branchfree(d)), "branchfree d=%d", d)
		}
	}
}

func TestScalarStrategiesMatchHardwareS64(t *testing.T) {
	vals := int64View(testBufU64(t))
	divisors := []int64{1, -1, 2, -2, 7, -7, -(1 << 33), math.MinInt64}

	for _, d := range divisors {
		want := SumHardwareS64(vals, d)
		require.Equal(t, want, SumBranchfullS64(vals, divider.NewInt64(d)), "branchfull d=%d", d)
		if d != 1 {
			require.Equal(t, want, SumBranchfreeS64(vals, divider.NewInt64Branchfree(d)), "branchfree d=%d", d)
		}
	}
}

func TestVectorStrategiesMatchHardware(t *testing.T) {
	if Lanes32 == 0 {
		t.Skip("no vector lanes on this target")
	}

	u32 := testBufU32(t)
	s32 := int32View(u32)
	u64 := testBufU64(t)
	s64 := int64View(u64)

	for _, d := range []uint32{1, 3, 7, 8, 641} {
		want := SumHardwareU32(u32, d)
		require.Equal(t, want, SumVectorBranchfullU32(u32, divider.NewUint32(d)), "u32 d=%d", d)
		if d != 1 {
			require.Equal(t, want, SumVectorBranchfreeU32(u32, divider.NewUint32Branchfree(d)), "u32 bf d=%d", d)
		}
	}

	for _, d := range []int32{1, -1, 7, -8, 641} {
		want := SumHardwareS32(s32, d)
		require.Equal(t, want, SumVectorBranchfullS32(s32, divider.NewInt32(d)), "s32 d=%d", d)
		if d != 1 {
			require.Equal(t, want, SumVectorBranchfreeS32(s32, divider.NewInt32Branchfree(d)), "s32 bf d=%d", d)
		}
	}

	for _, d := range []uint64{1, 3, 7, 1 << 40} {
		want := SumHardwareU64(u64, d)
		require.Equal(t, want, SumVectorBranchfullU64(u64, divider.NewUint64(d)), "u64 d=%d", d)
		if d != 1 {
			require.Equal(t, want, SumVectorBranchfreeU64(u64, divider.NewUint64Branchfree(d)), "u64 bf d=%d", d)
		}
	}

	for _, d := range []int64{1, -1, 7, -(1 << 40)} {
		want := SumHardwareS64(s64, d)
		require.Equal(t, want, SumVectorBranchfullS64(s64, divider.NewInt64(d)), "s64 d=%d", d)
		if d != 1 {
			require.Equal(t, want, SumVectorBranchfreeS64(s64, divider.NewInt64Branchfree(d)), "s64 bf d=%d", d)
		}
	}
}

func TestSumWrapsInElementType(t *testing.T) {
	// Three maximal quotients exceed 32 bits; the sum must wrap as uint32
	// before widening: 3*(2^32-1) mod 2^32 = 0xFFFFFFFD.
	vals := []uint32{math.MaxUint32, math.MaxUint32, math.MaxUint32}
	assert.Equal(t, uint64(0xFFFFFFFD), SumHardwareU32(vals, 1))

	// The signed sum wraps in int32 and sign-extends on widening.
	svals := []int32{-1, -1}
	assert.Equal(t, uint64(0xFFFFFFFFFFFFFFFE), SumHardwareS32(svals, 1))

	pos := []int32{math.MaxInt32, 1}
	wantNeg := int64(math.MinInt32)
	assert.Equal(t, uint64(wantNeg), SumHardwareS32(pos, 1))
}

func TestObserveAccumulates(t *testing.T) {
	saved := Sink
	defer func() { Sink = saved }()

	Sink = 0
	Observe(3)
	Observe(math.MaxUint64) // wraps
	assert.Equal(t, uint64(2), Sink)
}

func TestGenerateFoldsMagic(t *testing.T) {
	// d=7 has magic 0x24924925; three constructions fold to three times
	// that, wrapped in uint32.
	assert.Equal(t, uint64(3*0x24924925), GenerateU32(7, 3))
	assert.Equal(t, uint64(0), GenerateU32(8, 5)) // power of two, magic 0

	assert.NotZero(t, GenerateU64(7, 1))
	assert.Equal(t, uint64(0), GenerateS32(4, 2))
	assert.Equal(t, uint64(0), GenerateS64(-4, 2))
}
