package netconvert

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates an input path does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrNothingToConvert indicates every input produced an empty table.
var ErrNothingToConvert = errors.New("no tables to convert")

// ErrUnsupportedFormat indicates an unknown output format.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Conversion stages reported by ConversionError.
const (
	StageRead    = "read"
	StageCapture = "capture"
	StageWrite   = "write"
)

// ConversionError represents a failure while converting one input.
type ConversionError struct {
	Source string
	Stage  string // "read", "capture", "write"
	Err    error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("conversion error for %q (%s): %v", e.Source, e.Stage, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// NewConversionError creates a new ConversionError.
func NewConversionError(source, stage string, err error) *ConversionError {
	return &ConversionError{
		Source: source,
		Stage:  stage,
		Err:    err,
	}
}
