package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes returned by the drills binary.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorMismatch = 3   // Indicates disagreeing Fibonacci strategies.
	ExitErrorInput    = 4   // Indicates malformed input or configuration.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ErrMismatch is returned when two Fibonacci strategies disagree on a value.
var ErrMismatch = errors.New("strategies produced different results")

// ConfigError represents a user configuration error, such as an invalid flag,
// environment variable or config file.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ValidationError represents an input that parsed but is outside the domain
// of an operation, such as a negative Fibonacci index.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// ParseError reports a line of user input that could not be parsed into the
// expected type. It is the recoverable replacement for aborting on bad input:
// the caller decides whether to re-prompt or stop.
type ParseError struct {
	// Field names what was being read ("temperature", "n", ...).
	Field string
	// Input is the offending text, already trimmed.
	Input string
	// Err is the underlying strconv or I/O error.
	Err error
}

// Error returns a formatted message describing the parse failure.
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Input, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error { return e.Err }

// OverflowError reports an arithmetic result that does not fit the integer
// type of the operation.
type OverflowError struct {
	// Operation is the name of the operation that overflowed.
	Operation string
	// Bits is the width of the integer type involved.
	Bits int
}

// Error returns a formatted message describing the overflow.
func (e OverflowError) Error() string {
	return fmt.Sprintf("%s overflows %d-bit integer", e.Operation, e.Bits)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// It returns nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// IsInputError reports whether err originates from bad user input or
// configuration rather than from a failure of the program itself.
func IsInputError(err error) bool {
	var (
		pe *ParseError
		ve ValidationError
		ce ConfigError
		oe OverflowError
	)
	return errors.As(err, &pe) || errors.As(err, &ve) || errors.As(err, &ce) || errors.As(err, &oe)
}

// ExitCode maps an error returned by a command to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case IsContextError(err):
		return ExitErrorCanceled
	case errors.Is(err, ErrMismatch):
		return ExitErrorMismatch
	case IsInputError(err):
		return ExitErrorInput
	default:
		return ExitErrorGeneric
	}
}
