package kernel

import "github.com/hupe1980/divbench/divider"

// SumHardwareU64 sums vals[i]/d using the hardware divide instruction.
//
//go:noinline
func SumHardwareU64(vals []uint64, d uint64) uint64 {
	var sum uint64
	for _, n := range vals {
		sum += n / d
	}
	return sum
}

// SumBranchfullU64 sums vals[i]/d through a branchfull descriptor.
//
//go:noinline
func SumBranchfullU64(vals []uint64, d divider.Uint64) uint64 {
	var sum uint64
	for _, n := range vals {
		sum += d.Div(n)
	}
	return sum
}

// SumBranchfreeU64 sums vals[i]/d through a branchfree descriptor.
//
//go:noinline
func SumBranchfreeU64(vals []uint64, d divider.Uint64Branchfree) uint64 {
	var sum uint64
	for _, n := range vals {
		sum += d.Div(n)
	}
	return sum
}

// SumVectorBranchfullU64 sums vals[i]/d a lane group at a time, one
// accumulator per lane. Lanes64 must be nonzero.
//
//go:noinline
func SumVectorBranchfullU64(vals []uint64, d divider.Uint64) uint64 {
	lanes := Lanes64
	if lanes == 0 {
		return 0
	}

	var acc, quo [MaxLanes64]uint64
	for i := 0; i+lanes <= len(vals); i += lanes {
		d.DivLanes(quo[:lanes], vals[i:i+lanes])
		for j := 0; j < lanes; j++ {
			acc[j] += quo[j]
		}
	}

	var sum uint64
	for j := 0; j < lanes; j++ {
		sum += acc[j]
	}
	return sum
}

// SumVectorBranchfreeU64 is SumVectorBranchfullU64 with a branchfree
// descriptor.
//
//go:noinline
func SumVectorBranchfreeU64(vals []uint64, d divider.Uint64Branchfree) uint64 {
	lanes := Lanes64
	if lanes == 0 {
		return 0
	}

	var acc, quo [MaxLanes64]uint64
	for i := 0; i+lanes <= len(vals); i += lanes {
		d.DivLanes(quo[:lanes], vals[i:i+lanes])
		for j := 0; j < lanes; j++ {
			acc[j] += quo[j]
		}
	}

	var sum uint64
	for j := 0; j < lanes; j++ {
		sum += acc[j]
	}
	return sum
}

// SumHardwareS64 sums vals[i]/d using the hardware divide instruction.
//
//go:noinline
func SumHardwareS64(vals []int64, d int64) uint64 {
	var sum int64
	for _, n := range vals {
		sum += n / d
	}
	return uint64(sum)
}

// SumBranchfullS64 sums vals[i]/d through a branchfull descriptor.
//
//go:noinline
func SumBranchfullS64(vals []int64, d divider.Int64) uint64 {
	var sum int64
	for _, n := range vals {
		sum += d.Div(n)
	}
	return uint64(sum)
}

// SumBranchfreeS64 sums vals[i]/d through a branchfree descriptor.
//
//go:noinline
func SumBranchfreeS64(vals []int64, d divider.Int64Branchfree) uint64 {
	var sum int64
	for _, n := range vals {
		sum += d.Div(n)
	}
	return uint64(sum)
}

// SumVectorBranchfullS64 sums vals[i]/d a lane group at a time.
//
//go:noinline
func SumVectorBranchfullS64(vals []int64, d divider.Int64) uint64 {
	lanes := Lanes64
	if lanes == 0 {
		return 0
	}

	var acc, quo [MaxLanes64]int64
	for i := 0; i+lanes <= len(vals); i += lanes {
		d.DivLanes(quo[:lanes], vals[i:i+lanes])
		for j := 0; j < lanes; j++ {
			acc[j] += quo[j]
		}
	}

	var sum int64
	for j := 0; j < lanes; j++ {
		sum += acc[j]
	}
	return uint64(sum)
}

// SumVectorBranchfreeS64 is SumVectorBranchfullS64 with a branchfree
// descriptor.
//
//go:noinline
func SumVectorBranchfreeS64(vals []int64, d divider.Int64Branchfree) uint64 {
	lanes := Lanes64
	if lanes == 0 {
		return 0
	}

	var acc, quo [MaxLanes64]int64
	for i := 0; i+lanes <= len(vals); i += lanes {
		d.DivLanes(quo[:lanes], vals[i:i+lanes])
		for j := 0; j < lanes; j++ {
			acc[j] += quo[j]
		}
	}

	var sum int64
	for j := 0; j < lanes; j++ {
		sum += acc[j]
	}
	return uint64(sum)
}
