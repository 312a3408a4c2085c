package sinegen

import (
	"errors"
	"fmt"
)

// Common errors returned by the generator.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrEncodingOverflow indicates a sample does not fit the storage width.
	ErrEncodingOverflow = errors.New("sample does not fit storage width")

	// ErrIO indicates the output or input file could not be accessed.
	ErrIO = errors.New("i/o failure")

	// ErrInvalidData indicates an encoded stream that is not a whole number of frames.
	ErrInvalidData = errors.New("invalid sample data")
)

// OverflowError reports the sample that failed range-checked conversion.
type OverflowError struct {
	Channel int     // Channel index of the offending sample
	Index   int     // Time index of the offending sample
	Value   float64 // Rescaled value before truncation
	Bits    int     // Storage width in bits
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%v: channel %d sample %d value %g exceeds %d-bit signed range",
		ErrEncodingOverflow, e.Channel, e.Index, e.Value, e.Bits)
}

// Unwrap allows errors.Is(err, ErrEncodingOverflow).
func (e *OverflowError) Unwrap() error {
	return ErrEncodingOverflow
}
