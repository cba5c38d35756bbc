//go:build amd64

package kernel

import "golang.org/x/sys/cpu"

func init() {
	switch {
	case cpu.X86.HasAVX512:
		vectorBytes = 64
	case cpu.X86.HasAVX2:
		vectorBytes = 32
	default:
		// SSE2 is part of the amd64 baseline.
		vectorBytes = 16
	}

	Lanes32 = vectorBytes / 4
	Lanes64 = vectorBytes / 8
}
