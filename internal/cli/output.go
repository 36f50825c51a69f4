package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/katalvlaran/chsim/chform"
	"github.com/katalvlaran/chsim/qasm"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Simulation failure (inconsistent projection, broken state)
	ExitCommandError = 2 // Command error (bad flags, unreadable or malformed input)
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// classify maps library errors onto exit codes.
func classify(message string, err error) *ExitError {
	var pe *qasm.ParseError
	var pathErr *fs.PathError
	switch {
	case errors.As(err, &pe), errors.As(err, &pathErr),
		errors.Is(err, chform.ErrInvalidArgument), errors.Is(err, chform.ErrDimensionMismatch):
		return WrapExitError(ExitCommandError, message, err)
	default:
		return WrapExitError(ExitFailure, message, err)
	}
}
