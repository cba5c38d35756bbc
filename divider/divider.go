package divider

import "math/bits"

// Marker bits and shift masks of a descriptor's More byte.
const (
	// ShiftMask32 extracts the shift amount from a 32-bit descriptor.
	ShiftMask32 uint8 = 0x1F
	// ShiftMask64 extracts the shift amount from a 64-bit descriptor.
	ShiftMask64 uint8 = 0x3F
	// AddMarker selects the multiply-add sequence.
	AddMarker uint8 = 0x40
	// NegativeDivisor records a negative signed divisor. Unsigned
	// descriptors never set it.
	NegativeDivisor uint8 = 0x80
)

// mullhi32 returns the high 32 bits of the full 64-bit product x*y.
func mullhi32(x, y uint32) uint32 {
	hi, _ := bits.Mul32(x, y)
	return hi
}

// mullhi64 returns the high 64 bits of the full 128-bit product x*y.
func mullhi64(x, y uint64) uint64 {
	hi, _ := bits.Mul64(x, y)
	return hi
}

// mullhiS32 returns the high 32 bits of the signed 64-bit product x*y.
func mullhiS32(x, y int32) int32 {
	return int32((int64(x) * int64(y)) >> 32)
}

// mullhiS64 returns the high 64 bits of the signed 128-bit product x*y,
// derived from the unsigned product by subtracting the wrapped correction
// term for each negative operand.
func mullhiS64(x, y int64) int64 {
	hi, _ := bits.Mul64(uint64(x), uint64(y))
	t := int64(hi)
	if x < 0 {
		t -= y
	}
	if y < 0 {
		t -= x
	}
	return t
}
