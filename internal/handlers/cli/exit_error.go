package cli

import (
	"errors"
	"fmt"
)

// Exit codes returned by the virtualias binary.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitError signals a non-zero exit code without forcing os.Exit in RunE handlers.
// A nil Err means the message was already shown to the user.
type ExitError struct {
	Code int
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

func usageError(err error) *ExitError {
	return &ExitError{Code: ExitUsage, Err: err}
}

// ExitCode maps an error returned by a command to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// Reportable returns the error to print for err, or nil when nothing should be printed.
func Reportable(err error) error {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Err
	}
	return err
}
