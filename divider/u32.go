package divider

import "math/bits"

// Uint32 divides uint32 values by a fixed divisor using the branchfull
// multiply-shift sequence.
type Uint32 struct {
	Magic uint32
	More  uint8
}

// Uint32Branchfree is the branch-free variant: every division executes the
// same multiply, add and shifts regardless of divisor class.
type Uint32Branchfree struct {
	Magic uint32
	More  uint8
}

func genUint32(d uint32, branchfree bool) Uint32 {
	if d == 0 {
		panic("divider: divisor must not be zero")
	}

	floorLog2 := uint8(bits.Len32(d) - 1)

	var v Uint32
	if d&(d-1) == 0 {
		// Power of two. The branchfree sequence hard-codes a right shift
		// by one before the variable shift, so it stores one less.
		v.More = floorLog2
		if branchfree {
			v.More = floorLog2 - 1
		}
		return v
	}

	// proposedM = floor(2^(32+floorLog2) / d) with its remainder.
	proposedM, rem := bits.Div32(uint32(1)<<floorLog2, 0, d)

	e := d - rem
	if !branchfree && e < uint32(1)<<floorLog2 {
		// The smaller power suffices.
		v.More = floorLog2
	} else {
		// General 33-bit path: double the quotient and round up from the
		// doubled remainder. Overflow of proposedM is expected.
		proposedM += proposedM
		twiceRem := rem + rem
		if twiceRem >= d || twiceRem < rem {
			proposedM++
		}
		v.More = floorLog2 | AddMarker
	}
	v.Magic = 1 + proposedM

	return v
}

// NewUint32 returns a branchfull descriptor for d. It panics when d is zero.
func NewUint32(d uint32) Uint32 {
	return genUint32(d, false)
}

// NewUint32Branchfree returns a branchfree descriptor for d. It panics when d
// is zero or one; one has no branch-free encoding.
func NewUint32Branchfree(d uint32) Uint32Branchfree {
	if d == 1 {
		panic("divider: branchfree divisor must not be one")
	}
	v := genUint32(d, true)
	return Uint32Branchfree{Magic: v.Magic, More: v.More & ShiftMask32}
}

// Div returns n divided by the descriptor's divisor, truncated toward zero.
func (v Uint32) Div(n uint32) uint32 {
	if v.Magic == 0 {
		return n >> v.More
	}
	q := mullhi32(v.Magic, n)
	if v.More&AddMarker != 0 {
		t := ((n - q) >> 1) + q
		return t >> (v.More & ShiftMask32)
	}
	return q >> v.More
}

// DivLanes divides one lane group: dst[i] = src[i] / divisor. The divisor
// class dispatch is hoisted out of the lane loop.
func (v Uint32) DivLanes(dst, src []uint32) {
	dst = dst[:len(src)]
	switch {
	case v.Magic == 0:
		s := v.More
		for i, n := range src {
			dst[i] = n >> s
		}
	case v.More&AddMarker != 0:
		m := v.Magic
		s := v.More & ShiftMask32
		for i, n := range src {
			q := mullhi32(m, n)
			dst[i] = (((n - q) >> 1) + q) >> s
		}
	default:
		m := v.Magic
		s := v.More
		for i, n := range src {
			dst[i] = mullhi32(m, n) >> s
		}
	}
}

// Div returns n divided by the descriptor's divisor, truncated toward zero.
func (v Uint32Branchfree) Div(n uint32) uint32 {
	q := mullhi32(v.Magic, n)
	t := ((n - q) >> 1) + q
	return t >> v.More
}

// DivLanes divides one lane group: dst[i] = src[i] / divisor.
func (v Uint32Branchfree) DivLanes(dst, src []uint32) {
	dst = dst[:len(src)]
	m, s := v.Magic, v.More
	for i, n := range src {
		q := mullhi32(m, n)
		dst[i] = (((n - q) >> 1) + q) >> s
	}
}
