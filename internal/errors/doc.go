// Package apperrors defines the typed errors shared by the drills exercises,
// separating bad user input (parse and validation failures) from numeric
// overflow and configuration mistakes, and maps them to process exit codes.
//
// All wrapping types implement Unwrap so callers can use errors.Is and
// errors.As on the underlying cause.
package apperrors
