// Package divider implements integer division by runtime constants through
// precomputed magic-number descriptors.
//
// A descriptor replaces one hardware division by a widening multiply, a
// handful of shifts and, for some divisors, an extra add. Each integer domain
// (uint32, int32, uint64, int64) has two descriptor flavors: the branchfull
// form dispatches on marker bits at division time, the branchfree form
// executes the same instruction sequence for every divisor class at the cost
// of one unconditional add.
//
// # Descriptor Layout
//
// A descriptor holds a Magic multiplier and a More byte. The low bits of More
// carry the shift amount (mask with ShiftMask32 or ShiftMask64), bit 6
// (AddMarker) selects the multiply-add sequence, and bit 7 (NegativeDivisor)
// records a negative signed divisor. Magic == 0 marks a power-of-two divisor
// handled purely by shifts.
//
// Constructors panic on a zero divisor, and branchfree constructors
// additionally panic on a divisor of one. Both are programmer errors, not
// runtime conditions: callers that may see those divisors must test for them
// before constructing a descriptor.
package divider
