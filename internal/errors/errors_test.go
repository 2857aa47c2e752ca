// Package apperrors provides tests for application error types.
package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"testing"
)

func TestConfigError(t *testing.T) {
	t.Parallel()
	err := NewConfigError("invalid value %d for flag %s", 42, "--retry")
	if err.Error() != "invalid value 42 for flag --retry" {
		t.Errorf("unexpected message %q", err.Error())
	}
	var configErr ConfigError
	if !errors.As(err, &configErr) {
		t.Error("expected error to be ConfigError type")
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      ValidationError
		expected string
	}{
		{
			name:     "negative index",
			err:      ValidationError{Field: "n", Message: "must be non-negative"},
			expected: `validation error for "n": must be non-negative`,
		},
		{
			name:     "short text",
			err:      ValidationError{Field: "text", Message: "has 2 characters, need 3"},
			expected: `validation error for "text": has 2 characters, need 3`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
		})
	}
}

func TestParseError(t *testing.T) {
	t.Parallel()
	_, cause := strconv.ParseFloat("abc", 64)
	err := &ParseError{Field: "temperature", Input: "abc", Err: cause}

	want := `invalid temperature "abc": strconv.ParseFloat: parsing "abc": invalid syntax`
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
	if !errors.Is(err, strconv.ErrSyntax) {
		t.Error("errors.Is should find strconv.ErrSyntax in the chain")
	}

	wrapped := fmt.Errorf("stage 1: %w", err)
	var pe *ParseError
	if !errors.As(wrapped, &pe) || pe.Field != "temperature" {
		t.Errorf("errors.As failed on wrapped ParseError: %v", wrapped)
	}
}

func TestOverflowError(t *testing.T) {
	t.Parallel()
	err := OverflowError{Operation: "sum", Bits: 64}
	if err.Error() != "sum overflows 64-bit integer" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should return nil")
	}
	base := errors.New("base")
	err := WrapError(base, "reading %s", "stdin")
	if err.Error() != "reading stdin: base" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, base) {
		t.Error("wrapped error should unwrap to base")
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"canceled", context.Canceled, ExitErrorCanceled},
		{"deadline wrapped", WrapError(context.DeadlineExceeded, "fib"), ExitErrorCanceled},
		{"mismatch", WrapError(ErrMismatch, "compare"), ExitErrorMismatch},
		{"parse", &ParseError{Field: "n", Input: "x", Err: strconv.ErrSyntax}, ExitErrorInput},
		{"validation", ValidationError{Field: "n", Message: "negative"}, ExitErrorInput},
		{"overflow", OverflowError{Operation: "sum", Bits: 64}, ExitErrorInput},
		{"config", NewConfigError("bad"), ExitErrorInput},
		{"generic", io.ErrClosedPipe, ExitErrorGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
