package hogerrors

import (
	"errors"
)

// WithSourceError is an error that includes the source text and position
// information.
type WithSourceError struct {
	error

	// SourceCodeString is the input source string for the error.
	SourceCodeString string

	// LineNumber is the (1-indexed) line number of the error, or 0 if
	// unknown.
	LineNumber uint64

	// ColumnPosition is the (1-indexed) column position of the error, or 0
	// if unknown.
	ColumnPosition uint64
}

// Unwrap returns the inner, wrapped error.
func (err *WithSourceError) Unwrap() error {
	return err.error
}

// NewWithSourceError creates and returns a new WithSourceError.
func NewWithSourceError(err error, sourceCodeString string, oneIndexedLineNumber uint64, oneIndexedColumnPosition uint64) *WithSourceError {
	return &WithSourceError{err, sourceCodeString, oneIndexedLineNumber, oneIndexedColumnPosition}
}

// AsWithSourceError returns the error as a WithSourceError, if applicable.
func AsWithSourceError(err error) (*WithSourceError, bool) {
	var serr *WithSourceError
	if errors.As(err, &serr) {
		return serr, true
	}
	return nil, false
}
