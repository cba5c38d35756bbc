// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// Provides 64-byte aligned allocation for numerator buffers so lane-grouped
// kernels see cache-line and vector-register aligned data, plus zero-copy
// signed views over unsigned buffers (same bits, shared memory).
package mem
