package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewPolishError(t *testing.T) {
	cause := errors.New("underlying error")

	err := NewPolishError(IOFailure, "cannot write output: underlying error", cause)

	if err.Code != IOFailure {
		t.Errorf("Code = %v, want %v", err.Code, IOFailure)
	}
	if err.Message != "cannot write output: underlying error" {
		t.Errorf("Message = %q, want %q", err.Message, "cannot write output: underlying error")
	}
	if err.Error() != err.Message {
		t.Errorf("Error() = %q, want the bare message", err.Error())
	}
}

func TestNewf(t *testing.T) {
	err := Newf(InvalidOption, "unknown option %s. Use --help.", "--bogus")
	if got, want := err.Error(), "unknown option --bogus. Use --help."; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if err.Unwrap() != nil {
		t.Error("Newf should not set a cause")
	}
}

func TestPolishError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewPolishError(IOFailure, "cannot read standard input", cause)

	if err.Unwrap() != cause {
		t.Errorf("Unwrap() = %v, want %v", err.Unwrap(), cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the cause")
	}

	wrapped := fmt.Errorf("outer: %w", err)
	var pe *PolishError
	if !errors.As(wrapped, &pe) || pe.Code != IOFailure {
		t.Errorf("errors.As did not recover the PolishError from %v", wrapped)
	}
}

func TestPolishError_Is(t *testing.T) {
	err := NewPolishError(CircularStructure, "Circular structure in JSON", nil)
	if !errors.Is(err, ErrCircular) {
		t.Error("errors.Is(err, ErrCircular) = false, want true")
	}
	if errors.Is(err, ErrEmpty) {
		t.Error("errors.Is(err, ErrEmpty) = true, want false")
	}
}

func TestPolishError_Reporting(t *testing.T) {
	tests := []struct {
		code       ErrorCode
		prefix     string
		exitCode   int
		showsUsage bool
	}{
		{UsageRequested, "Error: ", 0, true},
		{VersionRequested, "Error: ", 0, false},
		{EmptyInput, "Error: ", 1, true},
		{InvalidOption, "Error: ", 1, false},
		{TooManyArguments, "Error: ", 1, false},
		{InvalidJSON, "Invalid JSON: ", 1, false},
		{CircularStructure, "Error: ", 1, false},
		{Unrepresentable, "Error: ", 1, false},
		{IOFailure, "Error: ", 1, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			err := NewPolishError(tt.code, "msg", nil)
			if got := err.Prefix(); got != tt.prefix {
				t.Errorf("Prefix() = %q, want %q", got, tt.prefix)
			}
			if got := err.ExitCode(); got != tt.exitCode {
				t.Errorf("ExitCode() = %d, want %d", got, tt.exitCode)
			}
			if got := err.ShowsUsage(); got != tt.showsUsage {
				t.Errorf("ShowsUsage() = %v, want %v", got, tt.showsUsage)
			}
		})
	}
}

func TestErrorCodes(t *testing.T) {
	// Ensure all error codes are unique
	codes := []ErrorCode{
		UsageRequested,
		VersionRequested,
		EmptyInput,
		InvalidOption,
		TooManyArguments,
		InvalidJSON,
		CircularStructure,
		Unrepresentable,
		IOFailure,
	}

	seen := make(map[ErrorCode]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %v", code)
		}
		seen[code] = true

		if string(code) == "" {
			t.Error("Error code should not be empty")
		}
	}
}
