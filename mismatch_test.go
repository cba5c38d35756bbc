package divbench

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMismatchLedgerRecordAndQuery(t *testing.T) {
	l := NewMismatchLedger()
	assert.Equal(t, uint64(0), l.Total())
	assert.Empty(t, l.Sites())

	l.Record(DomainU32, StrategyScalar, 7)
	l.Record(DomainU32, StrategyScalar, 7)
	l.Record(DomainU32, StrategyScalar, 9)

	assert.Equal(t, uint64(3), l.Total())
	assert.True(t, l.Contains(DomainU32, StrategyScalar, 7))
	assert.True(t, l.Contains(DomainU32, StrategyScalar, 9))
	assert.False(t, l.Contains(DomainU32, StrategyScalar, 8))
	assert.False(t, l.Contains(DomainU32, StrategyVector, 7))

	sites := l.Sites()
	require.Len(t, sites, 1)
	assert.Equal(t, "u32/scalar", sites[0].Site)
	assert.Equal(t, uint64(3), sites[0].Count)
	assert.Equal(t, uint64(2), sites[0].Divisors)
}

func TestMismatchLedgerWideDomains(t *testing.T) {
	l := NewMismatchLedger()

	l.Record(DomainU64, StrategyScalarBranchfree, math.MaxUint64)
	l.Record(DomainS64, StrategyScalar, signedDivisor(-5))

	assert.True(t, l.Contains(DomainU64, StrategyScalarBranchfree, math.MaxUint64))
	assert.False(t, l.Contains(DomainU64, StrategyScalarBranchfree, 1))
	assert.True(t, l.Contains(DomainS64, StrategyScalar, signedDivisor(-5)))
	assert.Equal(t, uint64(2), l.Total())
}

func TestMismatchLedgerNegativeNarrowDivisors(t *testing.T) {
	l := NewMismatchLedger()

	// Signed 32-bit divisors arrive sign-extended; the ledger keys them by
	// their 32-bit pattern.
	l.Record(DomainS32, StrategyVector, signedDivisor(-1))

	assert.True(t, l.Contains(DomainS32, StrategyVector, signedDivisor(-1)))
	assert.False(t, l.Contains(DomainS32, StrategyVector, 1))
}

func TestMismatchLedgerSiteOrdering(t *testing.T) {
	l := NewMismatchLedger()
	l.Record(DomainU64, StrategyScalar, 3)
	l.Record(DomainS32, StrategyVector, 5)
	l.Record(DomainU32, StrategyScalar, 4)

	sites := l.Sites()
	require.Len(t, sites, 3)
	assert.Equal(t, "s32/vector", sites[0].Site)
	assert.Equal(t, "u32/scalar", sites[1].Site)
	assert.Equal(t, "u64/scalar", sites[2].Site)
}
