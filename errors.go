package divbench

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSamples is returned when the per-strategy sample count is
	// not positive.
	ErrInvalidSamples = errors.New("samples must be positive")

	// ErrInvalidElements is returned when the numerator buffer length is
	// not positive.
	ErrInvalidElements = errors.New("elements must be positive")

	// ErrInvalidGenerations is returned when the per-sample descriptor
	// construction count is not positive.
	ErrInvalidGenerations = errors.New("generations must be positive")
)

// ErrUnknownDomain indicates a domain token outside u32, s32, u64 and s64.
type ErrUnknownDomain struct {
	Token string
}

func (e *ErrUnknownDomain) Error() string {
	return fmt.Sprintf("unknown domain %q (want u32, s32, u64 or s64)", e.Token)
}

// ErrCoarseClock indicates the measurement clock cannot resolve a trial
// window.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrCoarseClock struct {
	cause error
}

func (e *ErrCoarseClock) Error() string {
	return "clock too coarse for trial timing"
}

func (e *ErrCoarseClock) Unwrap() error { return e.cause }
