//go:build arm64

package kernel

import "golang.org/x/sys/cpu"

func init() {
	if cpu.ARM64.HasASIMD {
		vectorBytes = 16
		Lanes32 = vectorBytes / 4
		Lanes64 = vectorBytes / 8
	}
}
