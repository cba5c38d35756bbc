// Package kernel provides the measured work units of the harness: sum-of-
// quotients kernels per integer domain and division strategy, the degenerate
// descriptor-generation kernel, and the write-only observation sink that keeps
// results alive past the optimizer.
//
// Every sum kernel accumulates in the element type, wrapping on overflow, and
// widens to uint64 only on return. Lane-grouped kernels keep one accumulator
// per lane and reduce horizontally at the end, so their wrapping behavior is
// bit-identical to the scalar kernels. Kernel entry points are noinline: the
// timed code stays a real call with a stable boundary.
//
// Lane widths are detected once at startup. A zero lane count means the
// target has no usable vector unit; callers omit the lane-grouped strategies
// rather than treating that as an error.
package kernel
