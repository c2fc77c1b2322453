package errors

import (
	"fmt"
)

// ErrorCode represents stable error codes for all failure modes
type ErrorCode string

const (
	// UsageRequested indicates -h or --help was given
	UsageRequested ErrorCode = "USAGE_REQUESTED"
	// VersionRequested indicates --version was given
	VersionRequested ErrorCode = "VERSION_REQUESTED"
	// EmptyInput indicates the resolved input was empty or only whitespace
	EmptyInput ErrorCode = "EMPTY_INPUT"
	// InvalidOption indicates an unknown flag, a missing flag value or a value out of range
	InvalidOption ErrorCode = "INVALID_OPTION"
	// TooManyArguments indicates more than one positional argument
	TooManyArguments ErrorCode = "TOO_MANY_ARGUMENTS"
	// InvalidJSON indicates the input is not syntactically valid JSON
	InvalidJSON ErrorCode = "INVALID_JSON"
	// CircularStructure indicates a value tree that contains itself
	CircularStructure ErrorCode = "CIRCULAR_STRUCTURE"
	// Unrepresentable indicates a value the selected output format cannot express
	Unrepresentable ErrorCode = "UNREPRESENTABLE"
	// IOFailure indicates reading stdin or writing the output file failed
	IOFailure ErrorCode = "IO_FAILURE"
)

// PolishError represents a json-polish error with a code and a one-line message
type PolishError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	cause   error     // Underlying error (not exported to JSON)
}

// NewPolishError creates a new PolishError
func NewPolishError(code ErrorCode, message string, cause error) *PolishError {
	return &PolishError{
		Code:    code,
		Message: message,
		cause:   cause,
	}
}

// Newf creates a PolishError without a cause from a format string
func Newf(code ErrorCode, format string, args ...interface{}) *PolishError {
	return NewPolishError(code, fmt.Sprintf(format, args...), nil)
}

// Error implements the error interface. The message is what the CLI prints
// after Prefix, so it never carries the code.
func (e *PolishError) Error() string {
	return e.Message
}

// Unwrap returns the underlying error
func (e *PolishError) Unwrap() error {
	return e.cause
}

// Prefix returns the text written to stderr ahead of the message.
func (e *PolishError) Prefix() string {
	if e.Code == InvalidJSON {
		return "Invalid JSON: "
	}
	return "Error: "
}

// ExitCode returns the process exit code for the error.
func (e *PolishError) ExitCode() int {
	switch e.Code {
	case UsageRequested, VersionRequested:
		return 0
	default:
		return 1
	}
}

// ShowsUsage reports whether the CLI answers this error with the usage text
// on stdout instead of a message on stderr.
func (e *PolishError) ShowsUsage() bool {
	return e.Code == UsageRequested || e.Code == EmptyInput
}

// Is matches another *PolishError by code, so sentinel values such as
// ErrCircular work with errors.Is.
func (e *PolishError) Is(target error) bool {
	t, ok := target.(*PolishError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Sentinels for errors.Is checks against codes that have no variable detail.
var (
	ErrUsage    = NewPolishError(UsageRequested, "usage requested", nil)
	ErrVersion  = NewPolishError(VersionRequested, "version requested", nil)
	ErrEmpty    = NewPolishError(EmptyInput, "no input", nil)
	ErrCircular = NewPolishError(CircularStructure, "Circular structure in JSON", nil)
)
