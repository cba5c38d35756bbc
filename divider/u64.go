package divider

import "math/bits"

// Uint64 divides uint64 values by a fixed divisor using the branchfull
// multiply-shift sequence.
type Uint64 struct {
	Magic uint64
	More  uint8
}

// Uint64Branchfree is the branch-free variant of Uint64.
type Uint64Branchfree struct {
	Magic uint64
	More  uint8
}

func genUint64(d uint64, branchfree bool) Uint64 {
	if d == 0 {
		panic("divider: divisor must not be zero")
	}

	floorLog2 := uint8(bits.Len64(d) - 1)

	var v Uint64
	if d&(d-1) == 0 {
		v.More = floorLog2
		if branchfree {
			v.More = floorLog2 - 1
		}
		return v
	}

	// proposedM = floor(2^(64+floorLog2) / d) with its remainder.
	proposedM, rem := bits.Div64(uint64(1)<<floorLog2, 0, d)

	e := d - rem
	if !branchfree && e < uint64(1)<<floorLog2 {
		v.More = floorLog2
	} else {
		// General 65-bit path, mirrors the 33-bit one.
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

// NewUint64 returns a branchfull descriptor for d. It panics when d is zero.
func NewUint64(d uint64) Uint64 {
	return genUint64(d, false)
}

// NewUint64Branchfree returns a branchfree descriptor for d. It panics when d
// is zero or one; one has no branch-free encoding.
func NewUint64Branchfree(d uint64) Uint64Branchfree {
	if d == 1 {
		panic("divider: branchfree divisor must not be one")
	}
	v := genUint64(d, true)
	return Uint64Branchfree{Magic: v.Magic, More: v.More & ShiftMask64}
}

// Div returns n divided by the descriptor's divisor, truncated toward zero.
func (v Uint64) Div(n uint64) uint64 {
	if v.Magic == 0 {
		return n >> v.More
	}
	q := mullhi64(v.Magic, n)
	if v.More&AddMarker != 0 {
		t := ((n - q) >> 1) + q
		return t >> (v.More & ShiftMask64)
	}
	return q >> v.More
}

// DivLanes divides one lane group: dst[i] = src[i] / divisor.
func (v Uint64) DivLanes(dst, src []uint64) {
	dst = dst[:len(src)]
	switch {
	case v.Magic == 0:
		s := v.More
		for i, n := range src {
			dst[i] = n >> s
		}
	case v.More&AddMarker != 0:
		m := v.Magic
		s := v.More & ShiftMask64
		for i, n := range src {
			q := mullhi64(m, n)
			dst[i] = (((n - q) >> 1) + q) >> s
		}
	default:
		m := v.Magic
		s := v.More
		for i, n := range src {
			dst[i] = mullhi64(m, n) >> s
		}
	}
}

// Div returns n divided by the descriptor's divisor, truncated toward zero.
func (v Uint64Branchfree) Div(n uint64) uint64 {
	q := mullhi64(v.Magic, n)
	t := ((n - q) >> 1) + q
	return t >> v.More
}

// DivLanes divides one lane group: dst[i] = src[i] / divisor.
func (v Uint64Branchfree) DivLanes(dst, src []uint64) {
	dst = dst[:len(src)]
	m, s := v.Magic, v.More
	for i, n := range src {
		q := mullhi64(m, n)
		dst[i] = (((n - q) >> 1) + q) >> s
	}
}
