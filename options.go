package divbench

import (
	"log/slog"
	"time"

	"github.com/hupe1980/divbench/internal/hrtime"
)

const (
	// DefaultSamples is the number of timed repetitions kept per strategy.
	// The reported duration is the minimum across repetitions.
	DefaultSamples = 30

	// DefaultElements is the numerator buffer length summed per sample.
	DefaultElements = 1 << 19

	// DefaultGenerations is the number of descriptor constructions per
	// generate sample.
	DefaultGenerations = 1 << 16

	// DefaultProgressInterval is the minimum spacing between progress log
	// records during a sweep.
	DefaultProgressInterval = 5 * time.Second
)

type options struct {
	samples          int
	elements         int
	generations      int
	divisorLimit     uint64
	progressInterval time.Duration
	clock            hrtime.Clock
	logger           *Logger
	metricsCollector MetricsCollector
	jitter           bool
}

// Option configures Bench construction.
type Option func(*options)

// WithSamples sets how many timed repetitions each strategy runs per
// divisor.
func WithSamples(n int) Option {
	return func(o *options) {
		o.samples = n
	}
}

// WithElements sets the numerator buffer length. The length is rounded up
// to a full vector lane group so the lane kernels cover the whole buffer.
func WithElements(n int) Option {
	return func(o *options) {
		o.elements = n
	}
}

// WithGenerations sets how many descriptors one generate sample constructs.
func WithGenerations(n int) Option {
	return func(o *options) {
		o.generations = n
	}
}

// WithDivisorLimit caps how many divisors each sweep visits. Zero means
// exhaustive, which for the 64-bit domains will not finish in a lifetime.
func WithDivisorLimit(n uint64) Option {
	return func(o *options) {
		o.divisorLimit = n
	}
}

// WithClock overrides the measurement clock.
//
// If nil is passed, the monotonic system clock is used.
func WithClock(c hrtime.Clock) Option {
	return func(o *options) {
		if c == nil {
			c = hrtime.System{}
		}
		o.clock = c
	}
}

// WithLogger configures structured logging for sweeps.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := divbench.NewJSONLogger(slog.LevelInfo)
//	bench, _ := divbench.New(divbench.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for sweep
// instrumentation. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &divbench.BasicMetricsCollector{}
//	bench, _ := divbench.New(divbench.WithMetricsCollector(metrics))
//	// ... run sweeps ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithProgressInterval sets the minimum spacing between progress log
// records.
func WithProgressInterval(d time.Duration) Option {
	return func(o *options) {
		o.progressInterval = d
	}
}

// WithoutJitter disables the one-time perturbation of the element and
// generation counts. Trials then use the configured counts unchanged.
func WithoutJitter() Option {
	return func(o *options) {
		o.jitter = false
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		samples:          DefaultSamples,
		elements:         DefaultElements,
		generations:      DefaultGenerations,
		progressInterval: DefaultProgressInterval,
		clock:            hrtime.System{},
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		jitter:           true,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
