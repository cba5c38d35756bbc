package divider

import "math/bits"

// Int32 divides int32 values by a fixed divisor using the branchfull
// multiply-shift sequence. Quotients truncate toward zero.
type Int32 struct {
	Magic int32
	More  uint8
}

// Int32Branchfree is the branch-free variant of Int32. Unlike the branchfull
// form it never negates Magic for negative divisors; the sign lives entirely
// in the NegativeDivisor bit.
type Int32Branchfree struct {
	Magic int32
	More  uint8
}

func genInt32(d int32, branchfree bool) Int32 {
	if d == 0 {
		panic("divider: divisor must not be zero")
	}

	ud := uint32(d)
	absD := ud
	if d < 0 {
		absD = -ud
	}
	floorLog2 := uint8(bits.Len32(absD) - 1)

	var v Int32
	if absD&(absD-1) == 0 {
		// Power of two or its negation: a pure shift, identical for both
		// flavors. Covers d == -1, where the multiply path breaks down.
		v.More = floorLog2
		if d < 0 {
			v.More |= NegativeDivisor
		}
		return v
	}

	// absD >= 3 here, so floorLog2 >= 1 and the half power below exists.
	// proposedM = floor(2^(32+floorLog2-1) / absD) with its remainder.
	proposedM, rem := bits.Div32(uint32(1)<<(floorLog2-1), 0, absD)
	e := absD - rem

	var more uint8
	if !branchfree && e < uint32(1)<<floorLog2 {
		more = floorLog2 - 1
	} else {
		proposedM += proposedM
		twiceRem := rem + rem
		if twiceRem >= absD || twiceRem < rem {
			proposedM++
		}
		more = floorLog2 | AddMarker
	}

	proposedM++
	magic := int32(proposedM)

	if d < 0 {
		more |= NegativeDivisor
		if !branchfree {
			magic = -magic
		}
	}

	v.Magic = magic
	v.More = more

	return v
}

// NewInt32 returns a branchfull descriptor for d. It panics when d is zero.
func NewInt32(d int32) Int32 {
	return genInt32(d, false)
}

// NewInt32Branchfree returns a branchfree descriptor for d. It panics when d
// is zero or one.
func NewInt32Branchfree(d int32) Int32Branchfree {
	if d == 1 {
		panic("divider: branchfree divisor must not be one")
	}
	v := genInt32(d, true)
	return Int32Branchfree{Magic: v.Magic, More: v.More}
}

// Div returns n divided by the descriptor's divisor, truncated toward zero.
func (v Int32) Div(n int32) int32 {
	shift := v.More & ShiftMask32

	if v.Magic == 0 {
		// Shift path: bias negative numerators so the arithmetic shift
		// truncates toward zero, then restore the divisor's sign.
		sign := int32(int8(v.More)) >> 7
		mask := uint32(1)<<shift - 1
		uq := uint32(n) + uint32(n>>31)&mask
		q := int32(uq) >> shift
		return (q ^ sign) - sign
	}

	uq := uint32(mullhiS32(v.Magic, n))
	if v.More&AddMarker != 0 {
		sign := uint32(int32(int8(v.More)) >> 7)
		uq += (uint32(n) ^ sign) - sign
	}
	q := int32(uq) >> shift
	if q < 0 {
		q++
	}
	return q
}

// DivLanes divides one lane group: dst[i] = src[i] / divisor.
func (v Int32) DivLanes(dst, src []int32) {
	dst = dst[:len(src)]
	shift := v.More & ShiftMask32

	switch {
	case v.Magic == 0:
		sign := int32(int8(v.More)) >> 7
		mask := uint32(1)<<shift - 1
		for i, n := range src {
			uq := uint32(n) + uint32(n>>31)&mask
			q := int32(uq) >> shift
			dst[i] = (q ^ sign) - sign
		}
	case v.More&AddMarker != 0:
		m := v.Magic
		sign := uint32(int32(int8(v.More)) >> 7)
		for i, n := range src {
			uq := uint32(mullhiS32(m, n))
			uq += (uint32(n) ^ sign) - sign
			q := int32(uq) >> shift
			if q < 0 {
				q++
			}
			dst[i] = q
		}
	default:
		m := v.Magic
		for i, n := range src {
			q := int32(uint32(mullhiS32(m, n))) >> shift
			if q < 0 {
				q++
			}
			dst[i] = q
		}
	}
}

// Div returns n divided by the descriptor's divisor, truncated toward zero.
func (v Int32Branchfree) Div(n int32) int32 {
	shift := v.More & ShiftMask32
	sign := int32(int8(v.More)) >> 7

	q := mullhiS32(v.Magic, n) + n

	// Negative intermediate quotients need a bias before the arithmetic
	// shift: 2^shift - 1 for power-of-two divisors, 2^shift otherwise.
	var isPow2 uint32
	if v.Magic == 0 {
		isPow2 = 1
	}
	qSign := uint32(q >> 31)
	q = int32(uint32(q) + qSign&(uint32(1)<<shift-isPow2))

	q >>= shift
	return (q ^ sign) - sign
}

// DivLanes divides one lane group: dst[i] = src[i] / divisor.
func (v Int32Branchfree) DivLanes(dst, src []int32) {
	dst = dst[:len(src)]
	shift := v.More & ShiftMask32
	sign := int32(int8(v.More)) >> 7
	m := v.Magic

	var isPow2 uint32
	if m == 0 {
		isPow2 = 1
	}
	bias := uint32(1)<<shift - isPow2

	for i, n := range src {
		q := mullhiS32(m, n) + n
		qSign := uint32(q >> 31)
		q = int32(uint32(q)+qSign&bias) >> shift
		dst[i] = (q ^ sign) - sign
	}
}
