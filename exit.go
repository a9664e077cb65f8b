package main

import (
	"errors"
	"fmt"
)

// Process exit codes, following sysexits(3)
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 64 // EX_USAGE
	ExitIOErr   = 74 // EX_IOERR
	ExitNoJVM   = 78 // EX_CONFIG
)

// errNoJVM is reported when --fail is set and nothing matched
var errNoJVM = errors.New("no JVM found matching the given criteria")

// ExitError carries the exit code a command wants the process to end with
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

// Unwrap returns the underlying error
func (e *ExitError) Unwrap() error {
	return e.Err
}

// exitCode maps an error returned by the command tree to a process exit code.
// Errors cobra raises itself (unknown flags, conflicting flags, stray arguments) are usage errors.
func exitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUsage
}
