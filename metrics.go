package divbench

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting sweep metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
//
// All callbacks run outside the timed measurement windows, so a collector
// never distorts the reported durations.
type MetricsCollector interface {
	// RecordSample is called after each timed strategy invocation.
	RecordSample(s Strategy, duration time.Duration)

	// RecordTrial is called after all strategies of one divisor completed.
	RecordTrial(d Domain)

	// RecordMismatch is called for each failed cross-check. site is the
	// domain/strategy identifier of the failing check.
	RecordMismatch(site string)

	// RecordSweep is called after a domain sweep finishes. divisors is the
	// number of divisors visited, duration the wall time of the sweep.
	RecordSweep(d Domain, divisors uint64, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSample(Strategy, time.Duration)      {}
func (NoopMetricsCollector) RecordTrial(Domain)                        {}
func (NoopMetricsCollector) RecordMismatch(string)                     {}
func (NoopMetricsCollector) RecordSweep(Domain, uint64, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SampleCount      atomic.Int64
	SampleTotalNanos atomic.Int64
	TrialCount       atomic.Int64
	MismatchCount    atomic.Int64
	SweepCount       atomic.Int64
	SweepDivisors    atomic.Int64
	SweepTotalNanos  atomic.Int64
}

// RecordSample implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSample(s Strategy, duration time.Duration) {
	b.SampleCount.Add(1)
	b.SampleTotalNanos.Add(duration.Nanoseconds())
}

// RecordTrial implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTrial(d Domain) {
	b.TrialCount.Add(1)
}

// RecordMismatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMismatch(site string) {
	b.MismatchCount.Add(1)
}

// RecordSweep implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSweep(d Domain, divisors uint64, duration time.Duration) {
	b.SweepCount.Add(1)
	b.SweepDivisors.Add(int64(divisors))
	b.SweepTotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SampleCount:    b.SampleCount.Load(),
		SampleAvgNanos: b.getAvgSampleNanos(),
		TrialCount:     b.TrialCount.Load(),
		MismatchCount:  b.MismatchCount.Load(),
		SweepCount:     b.SweepCount.Load(),
		SweepDivisors:  b.SweepDivisors.Load(),
		SweepAvgNanos:  b.getAvgSweepNanos(),
	}
}

func (b *BasicMetricsCollector) getAvgSampleNanos() int64 {
	count := b.SampleCount.Load()
	if count == 0 {
		return 0
	}
	return b.SampleTotalNanos.Load() / count
}

func (b *BasicMetricsCollector) getAvgSweepNanos() int64 {
	count := b.SweepCount.Load()
	if count == 0 {
		return 0
	}
	return b.SweepTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SampleCount    int64
	SampleAvgNanos int64
	TrialCount     int64
	MismatchCount  int64
	SweepCount     int64
	SweepDivisors  int64
	SweepAvgNanos  int64
}
