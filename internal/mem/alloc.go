package mem

import (
	"unsafe"
)

// Alignment is the byte alignment used for numerator buffers (64 bytes, one
// cache line and the widest vector register the kernels dispatch to).
const Alignment = 64

// AllocAligned allocates a byte slice of the given size with 64-byte alignment.
// The returned slice is guaranteed to start at a memory address divisible by 64.
//
// Note: This function allocates slightly more memory than requested to ensure
// alignment. The underlying array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	// Allocate size + alignment so an aligned offset always exists within
	// the first Alignment-1 bytes.
	totalSize := size + Alignment
	buf := make([]byte, totalSize)

	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	return buf[offset : offset+uintptr(size)]
}

// AllocAlignedUint32 allocates a uint32 slice of the given length with 64-byte
// alignment. The returned slice is guaranteed to start at a memory address
// divisible by 64.
func AllocAlignedUint32(size int) []uint32 {
	if size <= 0 {
		return nil
	}

	byteSlice := AllocAligned(size * 4)

	// Safe because AllocAligned guarantees 64-byte alignment, which is also
	// 4-byte aligned (required for uint32).
	ptr := unsafe.Pointer(&byteSlice[0])      //nolint:gosec // unsafe is required for memory alignment
	return unsafe.Slice((*uint32)(ptr), size) //nolint:gosec // unsafe is required for memory alignment
}

// AllocAlignedUint64 allocates a uint64 slice of the given length with 64-byte
// alignment.
func AllocAlignedUint64(size int) []uint64 {
	if size <= 0 {
		return nil
	}

	byteSlice := AllocAligned(size * 8)
	ptr := unsafe.Pointer(&byteSlice[0])      //nolint:gosec // unsafe is required for memory alignment
	return unsafe.Slice((*uint64)(ptr), size) //nolint:gosec // unsafe is required for memory alignment
}

// Int32View reinterprets a uint32 slice as int32 without copying. Both views
// share the same backing memory: the signed view sees the same bit patterns
// and must not outlive the unsigned slice.
func Int32View(u []uint32) []int32 {
	if len(u) == 0 {
		return nil
	}
	return unsafe.Slice((*int32)(unsafe.Pointer(&u[0])), len(u)) //nolint:gosec // aliasing view, same element size
}

// Int64View reinterprets a uint64 slice as int64 without copying.
func Int64View(u []uint64) []int64 {
	if len(u) == 0 {
		return nil
	}
	return unsafe.Slice((*int64)(unsafe.Pointer(&u[0])), len(u)) //nolint:gosec // aliasing view, same element size
}
