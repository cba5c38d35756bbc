package kernel

// Sink is the write-only accumulator measured results are folded into so the
// compiler cannot discard a timed kernel invocation. The harness only ever
// adds to it; nothing reads it back. Measurement is single-threaded, so the
// sink carries no synchronization.
var Sink uint64

// Observe folds v into Sink.
func Observe(v uint64) {
	Sink += v
}

// Lane counts for the lane-grouped kernels, set once at init from detected
// CPU capabilities. Zero means the vector strategies are absent on this
// target.
var (
	Lanes32 int
	Lanes64 int
)

// Upper bounds for the lane counts (64-byte vector registers).
const (
	MaxLanes32 = 16
	MaxLanes64 = 8
)

var vectorBytes int //nolint:unused // set only by the tagged capability files
