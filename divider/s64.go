package divider

import "math/bits"

// Int64 divides int64 values by a fixed divisor using the branchfull
// multiply-shift sequence. Quotients truncate toward zero.
type Int64 struct {
	Magic int64
	More  uint8
}

// Int64Branchfree is the branch-free variant of Int64.
type Int64Branchfree struct {
	Magic int64
	More  uint8
}

func genInt64(d int64, branchfree bool) Int64 {
	if d == 0 {
		panic("divider: divisor must not be zero")
	}

	ud := uint64(d)
	absD := ud
	if d < 0 {
		absD = -ud
	}
	floorLog2 := uint8(bits.Len64(absD) - 1)

	var v Int64
	if absD&(absD-1) == 0 {
		v.More = floorLog2
		if d < 0 {
			v.More |= NegativeDivisor
		}
		return v
	}

	// absD >= 3 here, so floorLog2 >= 1 and the half power below exists.
	proposedM, rem := bits.Div64(uint64(1)<<(floorLog2-1), 0, absD)
	e := absD - rem

	var more uint8
	if !branchfree && e < uint64(1)<<floorLog2 {
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
	magic := int64(proposedM)

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

// NewInt64 returns a branchfull descriptor for d. It panics when d is zero.
func NewInt64(d int64) Int64 {
	return genInt64(d, false)
}

// NewInt64Branchfree returns a branchfree descriptor for d. It panics when d
// is zero or one.
func NewInt64Branchfree(d int64) Int64Branchfree {
	if d == 1 {
		panic("divider: branchfree divisor must not be one")
	}
	v := genInt64(d, true)
	return Int64Branchfree{Magic: v.Magic, More: v.More}
}

// Div returns n divided by the descriptor's divisor, truncated toward zero.
func (v Int64) Div(n int64) int64 {
	shift := v.More & ShiftMask64

	if v.Magic == 0 {
		sign := int64(int8(v.More)) >> 7
		mask := uint64(1)<<shift - 1
		uq := uint64(n) + uint64(n>>63)&mask
		q := int64(uq) >> shift
		return (q ^ sign) - sign
	}

	uq := uint64(mullhiS64(v.Magic, n))
	if v.More&AddMarker != 0 {
		sign := uint64(int64(int8(v.More)) >> 7)
		uq += (uint64(n) ^ sign) - sign
	}
	q := int64(uq) >> shift
	if q < 0 {
		q++
	}
	return q
}

// DivLanes divides one lane group: dst[i] = src[i] / divisor.
func (v Int64) DivLanes(dst, src []int64) {
	dst = dst[:len(src)]
	shift := v.More & ShiftMask64

	switch {
	case v.Magic == 0:
		sign := int64(int8(v.More)) >> 7
		mask := uint64(1)<<shift - 1
		for i, n := range src {
			uq := uint64(n) + uint64(n>>63)&mask
			q := int64(uq) >> shift
			dst[i] = (q ^ sign) - sign
		}
	case v.More&AddMarker != 0:
		m := v.Magic
		sign := uint64(int64(int8(v.More)) >> 7)
		for i, n := range src {
			uq := uint64(mullhiS64(m, n))
			uq += (uint64(n) ^ sign) - sign
			q := int64(uq) >> shift
			if q < 0 {
				q++
			}
			dst[i] = q
		}
	default:
		m := v.Magic
		for i, n := range src {
			q := int64(uint64(mullhiS64(m, n))) >> shift
			if q < 0 {
				q++
			}
			dst[i] = q
		}
	}
}

// Div returns n divided by the descriptor's divisor, truncated toward zero.
func (v Int64Branchfree) Div(n int64) int64 {
	shift := v.More & ShiftMask64
	sign := int64(int8(v.More)) >> 7

	q := mullhiS64(v.Magic, n) + n

	var isPow2 uint64
	if v.Magic == 0 {
		isPow2 = 1
	}
	qSign := uint64(q >> 63)
	q = int64(uint64(q) + qSign&(uint64(1)<<shift-isPow2))

	q >>= shift
	return (q ^ sign) - sign
}

// DivLanes divides one lane group: dst[i] = src[i] / divisor.
func (v Int64Branchfree) DivLanes(dst, src []int64) {
	dst = dst[:len(src)]
	shift := v.More & ShiftMask64
	sign := int64(int8(v.More)) >> 7
	m := v.Magic

	var isPow2 uint64
	if m == 0 {
		isPow2 = 1
	}
	bias := uint64(1)<<shift - isPow2

	for i, n := range src {
		q := mullhiS64(m, n) + n
		qSign := uint64(q >> 63)
		q = int64(uint64(q)+qSign&bias) >> shift
		dst[i] = (q ^ sign) - sign
	}
}
