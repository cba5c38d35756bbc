package kernel

import "github.com/hupe1980/divbench/divider"

// SumHardwareU32 sums vals[i]/d using the hardware divide instruction.
//
//go:noinline
func SumHardwareU32(vals []uint32, d uint32) uint64 {
	var sum uint32
	for _, n := range vals {
		sum += n / d
	}
	return uint64(sum)
}

// SumBranchfullU32 sums vals[i]/d through a branchfull descriptor.
//
//go:noinline
func SumBranchfullU32(vals []uint32, d divider.Uint32) uint64 {
	var sum uint32
	for _, n := range vals {
		sum += d.Div(n)
	}
	return uint64(sum)
}

// SumBranchfreeU32 sums vals[i]/d through a branchfree descriptor.
//
//go:noinline
func SumBranchfreeU32(vals []uint32, d divider.Uint32Branchfree) uint64 {
	var sum uint32
	for _, n := range vals {
		sum += d.Div(n)
	}
	return uint64(sum)
}

// SumVectorBranchfullU32 sums vals[i]/d a lane group at a time, one
// accumulator per lane. Lanes32 must be nonzero.
//
//go:noinline
func SumVectorBranchfullU32(vals []uint32, d divider.Uint32) uint64 {
	lanes := Lanes32
	if lanes == 0 {
		return 0
	}

	var acc, quo [MaxLanes32]uint32
	for i := 0; i+lanes <= len(vals); i += lanes {
		d.DivLanes(quo[:lanes], vals[i:i+lanes])
		for j := 0; j < lanes; j++ {
			acc[j] += quo[j]
		}
	}

	var sum uint32
	for j := 0; j < lanes; j++ {
		sum += acc[j]
	}
	return uint64(sum)
}

// SumVectorBranchfreeU32 is SumVectorBranchfullU32 with a branchfree
// descriptor.
//
//go:noinline
func SumVectorBranchfreeU32(vals []uint32, d divider.Uint32Branchfree) uint64 {
	lanes := Lanes32
	if lanes == 0 {
		return 0
	}

	var acc, quo [MaxLanes32]uint32
	for i := 0; i+lanes <= len(vals); i += lanes {
		d.DivLanes(quo[:lanes], vals[i:i+lanes])
		for j := 0; j < lanes; j++ {
			acc[j] += quo[j]
		}
	}

	var sum uint32
	for j := 0; j < lanes; j++ {
		sum += acc[j]
	}
	return uint64(sum)
}

// SumHardwareS32 sums vals[i]/d using the hardware divide instruction.
// The wrapped int32 sum is sign-extended before widening.
//
//go:noinline
func SumHardwareS32(vals []int32, d int32) uint64 {
	var sum int32
	for _, n := range vals {
		sum += n / d
	}
	return uint64(int64(sum))
}

// SumBranchfullS32 sums vals[i]/d through a branchfull descriptor.
//
//go:noinline
func SumBranchfullS32(vals []int32, d divider.Int32) uint64 {
	var sum int32
	for _, n := range vals {
		sum += d.Div(n)
	}
	return uint64(int64(sum))
}

// SumBranchfreeS32 sums vals[i]/d through a branchfree descriptor.
//
//go:noinline
func SumBranchfreeS32(vals []int32, d divider.Int32Branchfree) uint64 {
	var sum int32
	for _, n := range vals {
		sum += d.Div(n)
	}
	return uint64(int64(sum))
}

// SumVectorBranchfullS32 sums vals[i]/d a lane group at a time.
//
//go:noinline
func SumVectorBranchfullS32(vals []int32, d divider.Int32) uint64 {
	lanes := Lanes32
	if lanes == 0 {
		return 0
	}

	var acc, quo [MaxLanes32]int32
	for i := 0; i+lanes <= len(vals); i += lanes {
		d.DivLanes(quo[:lanes], vals[i:i+lanes])
		for j := 0; j < lanes; j++ {
			acc[j] += quo[j]
		}
	}

	var sum int32
	for j := 0; j < lanes; j++ {
		sum += acc[j]
	}
	return uint64(int64(sum))
}

// SumVectorBranchfreeS32 is SumVectorBranchfullS32 with a branchfree
// descriptor.
//
//go:noinline
func SumVectorBranchfreeS32(vals []int32, d divider.Int32Branchfree) uint64 {
	lanes := Lanes32
	if lanes == 0 {
		return 0
	}

	var acc, quo [MaxLanes32]int32
	for i := 0; i+lanes <= len(vals); i += lanes {
		d.DivLanes(quo[:lanes], vals[i:i+lanes])
		for j := 0; j < lanes; j++ {
			acc[j] += quo[j]
		}
	}

	var sum int32
	for j := 0; j < lanes; j++ {
		sum += acc[j]
	}
	return uint64(int64(sum))
}
