package hogerrors

import (
	"time"
)

// TerminationError is an error that captures contextual metadata describing
// why the process is terminating. Commands wrap fatal errors in one of these
// so the termination-log handler can serialize the reason to disk.
type TerminationError struct {
	error

	// Component is the subsystem the error originated in.
	Component string `json:"component"`

	// Timestamp is when the failure was recorded.
	Timestamp time.Time `json:"timestamp"`

	// ErrorString is the failure message serialized into the log.
	ErrorString string `json:"error"`

	// Metadata holds additional failure context. It may be dropped when the
	// serialized payload exceeds the termination-log size limit.
	Metadata map[string]string `json:"metadata,omitempty"`

	exitCode int
}

// Unwrap returns the wrapped error.
func (e TerminationError) Unwrap() error {
	return e.error
}

// ExitCode returns the code the process should exit with.
func (e TerminationError) ExitCode() int {
	return e.exitCode
}

// TerminationErrorBuilder incrementally assembles a TerminationError.
type TerminationErrorBuilder struct {
	terminationErr TerminationError
}

// NewTerminationErrorBuilder returns a builder wrapping the given error.
func NewTerminationErrorBuilder(err error) *TerminationErrorBuilder {
	return &TerminationErrorBuilder{terminationErr: TerminationError{
		error:       err,
		Timestamp:   time.Now().UTC(),
		ErrorString: err.Error(),
		exitCode:    1,
	}}
}

// Component records the subsystem the error originated in.
func (b *TerminationErrorBuilder) Component(component string) *TerminationErrorBuilder {
	b.terminationErr.Component = component
	return b
}

// Metadata adds a key/value pair of failure context.
func (b *TerminationErrorBuilder) Metadata(key string, value string) *TerminationErrorBuilder {
	if b.terminationErr.Metadata == nil {
		b.terminationErr.Metadata = make(map[string]string, 1)
	}
	b.terminationErr.Metadata[key] = value
	return b
}

// ExitCode sets the code the process should exit with. It defaults to 1.
func (b *TerminationErrorBuilder) ExitCode(exitCode int) *TerminationErrorBuilder {
	b.terminationErr.exitCode = exitCode
	return b
}

// Error returns the assembled error.
func (b *TerminationErrorBuilder) Error() TerminationError {
	return b.terminationErr
}
