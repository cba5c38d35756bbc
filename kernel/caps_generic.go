//go:build !amd64 && !arm64

package kernel

// No lane-group dispatch on this target: Lanes32 and Lanes64 stay zero and
// the vector strategies are absent from measurement.
