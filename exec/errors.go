package exec

import (
	"fmt"
	"strings"
)

// ExecError describes a command that could not be started or exited with
// a non-zero status.
type ExecError struct {
	// Command is the full argument vector, binary first.
	Command []string

	// ExitCode is the exit status, or -1 if the process never ran.
	ExitCode int

	// Stdout is the captured standard output.
	Stdout []byte

	// Stderr is the captured standard error.
	Stderr []byte

	// TimedOut is set when the run was killed by its timeout.
	TimedOut bool

	// Err is the underlying error from os/exec or the context.
	Err error
}

// Error implements the error interface.
func (e *ExecError) Error() string {
	cmd := strings.Join(e.Command, " ")
	if e.Err != nil {
		return fmt.Sprintf("command %q failed with exit code %d: %v", cmd, e.ExitCode, e.Err)
	}
	return fmt.Sprintf("command %q failed with exit code %d", cmd, e.ExitCode)
}

// Unwrap returns the underlying error.
func (e *ExecError) Unwrap() error {
	return e.Err
}
