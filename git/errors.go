package git

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Akshay2350/node-git/exec"
	platformerrors "github.com/Akshay2350/node-git/errors"
)

// RepoNotFoundError is returned by Open when the path does not exist or is
// not a directory.
type RepoNotFoundError struct {
	platformerrors.PlatformError
	Path string
}

// CommandFailedError is returned when git exits with a non-zero status.
// It is also what every read operation returns when its invocation fails.
type CommandFailedError struct {
	platformerrors.PlatformError

	// Command is the full command line, git binary first.
	Command []string

	// ExitCode is git's exit status, or -1 if it could not be started.
	ExitCode int

	// Stderr is everything git wrote to standard error.
	Stderr string
}

// NotADirectoryError is returned by ReadDir when the path at the revision
// is not a tree.
type NotADirectoryError struct {
	platformerrors.PlatformError
	Path     string
	Revision string
}

// ParseError is returned by Tags when a line of `git show-ref` output does
// not have the form "<object id> refs/tags/<name>".
type ParseError struct {
	platformerrors.PlatformError
	Line string
}

func newRepoNotFoundError(path string, cause error) error {
	return &RepoNotFoundError{
		PlatformError: newPlatformError(cause, platformerrors.CodeNotFound,
			fmt.Sprintf("repository %s not found", path),
			map[string]interface{}{"path": path}),
		Path: path,
	}
}

// newCommandFailedError converts an exec failure. Timeouts are classified
// as retryable; everything else is permanent.
func newCommandFailedError(err error) error {
	var execErr *exec.ExecError
	if !errors.As(err, &execErr) {
		return &CommandFailedError{
			PlatformError: platformerrors.Wrap(err, platformerrors.CodeExecutionFailed, "git invocation failed"),
			ExitCode:      -1,
		}
	}

	code := platformerrors.CodeExecutionFailed
	if execErr.TimedOut {
		code = platformerrors.CodeTimeout
	}

	command := strings.Join(execErr.Command, " ")
	stderr := string(execErr.Stderr)

	return &CommandFailedError{
		PlatformError: platformerrors.WrapWithContext(err, code,
			fmt.Sprintf("%s: %s", command, strings.TrimSpace(stderr)),
			map[string]interface{}{
				"command":   command,
				"exit_code": execErr.ExitCode,
				"stderr":    stderr,
			}),
		Command:  execErr.Command,
		ExitCode: execErr.ExitCode,
		Stderr:   stderr,
	}
}

func newNotADirectoryError(path, rev string) error {
	return &NotADirectoryError{
		PlatformError: newPlatformError(nil, platformerrors.CodeNotADirectory,
			fmt.Sprintf("%s is not a directory at %s", displayPath(path), rev),
			map[string]interface{}{"path": path, "revision": rev}),
		Path:     path,
		Revision: rev,
	}
}

func newParseError(line string) error {
	return &ParseError{
		PlatformError: newPlatformError(nil, platformerrors.CodeParseFailed,
			fmt.Sprintf("unexpected tag line %q", line),
			map[string]interface{}{"line": line}),
		Line: line,
	}
}

// newPlatformError builds a PlatformError with context fields, wrapping
// cause when there is one.
func newPlatformError(cause error, code platformerrors.ErrorCode, message string, ctx map[string]interface{}) platformerrors.PlatformError {
	if cause != nil {
		return platformerrors.WrapWithContext(cause, code, message, ctx)
	}

	var err platformerrors.PlatformError = platformerrors.New(code, message)
	for k, v := range ctx {
		err = platformerrors.WithContext(err, k, v)
	}
	return err
}

// isEmptyTagListing reports whether err is `git show-ref` failing only
// because there are no tags: exit status 1 with nothing on stderr.
func isEmptyTagListing(err error) bool {
	var cmdErr *CommandFailedError
	if !errors.As(err, &cmdErr) {
		return false
	}
	return cmdErr.ExitCode == 1 && strings.TrimSpace(cmdErr.Stderr) == ""
}

func displayPath(path string) string {
	if path == "" {
		return "/"
	}
	return path
}
