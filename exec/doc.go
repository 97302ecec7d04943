// Package exec runs local commands behind a small, mockable interface.
//
// Command wraps os/exec and implements Executor. Configuration is split into
// global settings, applied when the Command is created, and local settings
// applied through the fluent With* methods for the next Run only. Local
// settings win over global ones and are reset after every Run.
//
// Standard output and standard error are captured separately as raw bytes;
// nothing is decoded or split into lines.
//
//	cmd := exec.New(exec.WithInheritEnv())
//	res, err := cmd.WithDir("/repo").Run("git", "show", "HEAD:README.md")
//	if err != nil {
//		var execErr *exec.ExecError
//		if errors.As(err, &execErr) {
//			fmt.Printf("exit %d: %s", execErr.ExitCode, execErr.Stderr)
//		}
//	}
//
// # Wrappers
//
// A CommandWrapper prepends a fixed binary name, plus optional leading
// arguments, to every Run:
//
//	git := exec.NewWrapper(exec.New(), "git", "--git-dir=/repo/.git")
//	res, err := git.Run("show-ref", "--tags")
//	// runs: git --git-dir=/repo/.git show-ref --tags
//
// # Concurrency
//
// A Command holds per-run state, so a single value must not be used by two
// goroutines at once. Configure a base Command once and call Clone for
// every concurrent Run.
//
// # Testing
//
// Code that depends on the Executor interface can be handed the moq mock in
// the mocks subpackage instead of a real Command.
package exec
