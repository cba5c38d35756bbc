package kernel

import "github.com/hupe1980/divbench/divider"

// The generate kernels construct a fresh descriptor count times and fold its
// magic value into the returned accumulator so construction cannot be elided.
// Their return value is an opaque fold, not a quotient sum; it is observed
// but never cross-checked.

// GenerateU32 measures uint32 descriptor construction cost.
//
//go:noinline
func GenerateU32(d uint32, count int) uint64 {
	var acc uint32
	for i := 0; i < count; i++ {
		acc += divider.NewUint32(d).Magic
	}
	return uint64(acc)
}

// GenerateS32 measures int32 descriptor construction cost.
//
//go:noinline
func GenerateS32(d int32, count int) uint64 {
	var acc int32
	for i := 0; i < count; i++ {
		acc += divider.NewInt32(d).Magic
	}
	return uint64(int64(acc))
}

// GenerateU64 measures uint64 descriptor construction cost.
//
//go:noinline
func GenerateU64(d uint64, count int) uint64 {
	var acc uint64
	for i := 0; i < count; i++ {
		acc += divider.NewUint64(d).Magic
	}
	return acc
}

// GenerateS64 measures int64 descriptor construction cost.
//
//go:noinline
func GenerateS64(d int64, count int) uint64 {
	var acc int64
	for i := 0; i < count; i++ {
		acc += divider.NewInt64(d).Magic
	}
	return uint64(acc)
}
