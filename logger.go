package divbench

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with divbench-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithDomain adds the sweep domain field to the logger.
func (l *Logger) WithDomain(d Domain) *Logger {
	return &Logger{
		Logger: l.Logger.With("domain", d.String()),
	}
}

// WithDivisor adds a formatted divisor field to the logger.
func (l *Logger) WithDivisor(divisor string) *Logger {
	return &Logger{
		Logger: l.Logger.With("divisor", divisor),
	}
}

// WithSamples adds the per-strategy sample count field to the logger.
func (l *Logger) WithSamples(samples int) *Logger {
	return &Logger{
		Logger: l.Logger.With("samples", samples),
	}
}

// LogSweepStart logs the beginning of a domain sweep.
func (l *Logger) LogSweepStart(d Domain, elements, generations int) {
	l.Info("sweep started",
		"domain", d.String(),
		"elements", elements,
		"generations", generations,
	)
}

// LogSweepProgress logs a rate-limited progress record for a running sweep.
func (l *Logger) LogSweepProgress(d Domain, divisor string, done uint64) {
	l.Info("sweep progress",
		"domain", d.String(),
		"divisor", divisor,
		"divisors_done", done,
	)
}

// LogSweepDone logs the completion of a domain sweep.
func (l *Logger) LogSweepDone(d Domain, divisors, mismatches uint64) {
	if mismatches > 0 {
		l.Warn("sweep completed with mismatches",
			"domain", d.String(),
			"divisors", divisors,
			"mismatches", mismatches,
		)
	} else {
		l.Info("sweep completed",
			"domain", d.String(),
			"divisors", divisors,
		)
	}
}

// LogMismatch logs one failed cross-check. site is the stable
// domain/strategy identifier of the failing check.
func (l *Logger) LogMismatch(site, divisor string, got, want uint64) {
	l.Warn("cross-check mismatch",
		"site", site,
		"divisor", divisor,
		"got", got,
		"want", want,
	)
}
