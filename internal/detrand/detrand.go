// Package detrand generates the deterministic pseudo-random numerators the
// harness divides. The generator is a tiny two-word mixer chosen for speed and
// reproducibility, not statistical quality: identical seeds yield identical
// sequences on every platform, which keeps measured workloads comparable
// across runs and hosts.
package detrand

// Canonical seed words for numerator generation.
const (
	SeedHi uint32 = 2147483563
	SeedLo uint32 = 2147483563 ^ 0x49616E42
)

// State holds the two mixer words. It is mutated in place by Next and draws
// on no external entropy. The zero value is a valid but degenerate seed; use
// New or Default to obtain a seeded generator.
type State struct {
	hi uint32
	lo uint32
}

// New returns a generator seeded with the given words.
func New(hi, lo uint32) *State {
	return &State{hi: hi, lo: lo}
}

// Default returns a generator with the canonical seed.
func Default() *State {
	return New(SeedHi, SeedLo)
}

// Next advances the state and returns the next 32-bit value.
// All arithmetic wraps modulo 2^32.
func (s *State) Next() uint32 {
	s.hi = s.hi<<16 + s.hi>>16
	s.hi += s.lo
	s.lo += s.hi
	return s.hi
}

// Fill32 fills dst from a fresh default-seeded generator.
func Fill32(dst []uint32) {
	s := Default()
	for i := range dst {
		dst[i] = s.Next()
	}
}

// Fill64 fills dst from a fresh default-seeded generator. Each element is
// assembled from two consecutive draws, low word first, so the values equal
// the 32-bit stream reinterpreted as 64-bit little-endian words regardless of
// host byte order.
func Fill64(dst []uint64) {
	s := Default()
	for i := range dst {
		lo := uint64(s.Next())
		hi := uint64(s.Next())
		dst[i] = lo | hi<<32
	}
}
