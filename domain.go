package divbench

import (
	"github.com/hupe1980/divbench/divider"
)

// Domain selects the operand width and signedness of a sweep.
type Domain int

const (
	DomainU32 Domain = iota
	DomainS32
	DomainU64
	DomainS64

	numDomains
)

var domainNames = [numDomains]string{"u32", "s32", "u64", "s64"}

func (d Domain) String() string {
	if d < 0 || d >= numDomains {
		return "unknown"
	}
	return domainNames[d]
}

// Wide reports whether the domain operates on 64-bit values.
func (d Domain) Wide() bool {
	return d == DomainU64 || d == DomainS64
}

// Signed reports whether the domain operates on signed values.
func (d Domain) Signed() bool {
	return d == DomainS32 || d == DomainS64
}

// ParseDomain maps a command-line token to its Domain.
func ParseDomain(token string) (Domain, error) {
	for d := Domain(0); d < numDomains; d++ {
		if domainNames[d] == token {
			return d, nil
		}
	}
	return 0, &ErrUnknownDomain{Token: token}
}

// Strategy names one timed implementation within a trial. StrategyHardware
// is the native divide instruction every checked strategy is validated
// against.
type Strategy int

const (
	StrategyHardware Strategy = iota
	StrategyScalar
	StrategyScalarBranchfree
	StrategyVector
	StrategyVectorBranchfree
	StrategyGenerate

	numStrategies
)

var strategyNames = [numStrategies]string{
	"hardware",
	"scalar",
	"scalar_branchfree",
	"vector",
	"vector_branchfree",
	"generate",
}

func (s Strategy) String() string {
	if s < 0 || s >= numStrategies {
		return "unknown"
	}
	return strategyNames[s]
}

// Algorithm classifies the division scheme a descriptor encodes. The
// ordinals appear verbatim in the report's algo column.
type Algorithm int

const (
	// AlgoShift divides by a power of two with a plain shift.
	AlgoShift Algorithm = iota
	// AlgoMultiply multiplies by the magic number and shifts.
	AlgoMultiply
	// AlgoMultiplyAdd folds the numerator back in between multiply and
	// shift to recover the lost rounding bit.
	AlgoMultiplyAdd
)

// ClassifyU32 reports the algorithm class of the descriptor for d.
// It panics when d is zero.
func ClassifyU32(d uint32) Algorithm {
	v := divider.NewUint32(d)
	return classify(v.Magic == 0, v.More)
}

// ClassifyS32 reports the algorithm class of the descriptor for d.
// It panics when d is zero.
func ClassifyS32(d int32) Algorithm {
	v := divider.NewInt32(d)
	return classify(v.Magic == 0, v.More)
}

// ClassifyU64 reports the algorithm class of the descriptor for d.
// It panics when d is zero.
func ClassifyU64(d uint64) Algorithm {
	v := divider.NewUint64(d)
	return classify(v.Magic == 0, v.More)
}

// ClassifyS64 reports the algorithm class of the descriptor for d.
// It panics when d is zero.
func ClassifyS64(d int64) Algorithm {
	v := divider.NewInt64(d)
	return classify(v.Magic == 0, v.More)
}

func classify(magicZero bool, more uint8) Algorithm {
	switch {
	case magicZero:
		return AlgoShift
	case more&divider.AddMarker == 0:
		return AlgoMultiply
	default:
		return AlgoMultiplyAdd
	}
}
