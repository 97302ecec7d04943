package exec

import (
	"context"
	"time"
)

//go:generate go run github.com/matryer/moq@latest -out mocks/executor.go -pkg mocks . Executor

// Executor is the main interface for executing commands.
// It provides a fluent API for configuring and running commands. Settings
// made through the With methods apply to the next Run only.
type Executor interface {
	// WithEnv sets environment variables for the next Run.
	// These are local settings that override any global environment variables.
	WithEnv(env map[string]string) Executor

	// WithDir sets the working directory for the next Run.
	// This is a local setting that overrides any global working directory.
	WithDir(dir string) Executor

	// WithContext sets the context for the next Run. The process is killed
	// when the context is done.
	WithContext(ctx context.Context) Executor

	// WithDisableColors disables color output by setting common environment variables.
	// This sets NO_COLOR=1, TERM=dumb, and other common color-disabling variables.
	WithDisableColors() Executor

	// WithTimeout bounds the next Run. Zero means no limit.
	WithTimeout(timeout time.Duration) Executor

	// WithInheritEnv passes the parent process environment through.
	WithInheritEnv() Executor

	// Run executes args[0] with the remaining arguments.
	// It returns a Result containing the captured output and exit code.
	Run(args ...string) (*Result, error)

	// Clone returns an independent copy with the same configuration.
	// Concurrent callers clone a shared executor before configuring it.
	Clone() Executor
}

// Result holds the captured output of a finished command.
type Result struct {
	// Stdout is everything the command wrote to standard output.
	Stdout []byte

	// Stderr is everything the command wrote to standard error.
	Stderr []byte

	// ExitCode is the process exit status, or -1 if it never started.
	ExitCode int
}

// Option configures global settings on a Command at creation time.
type Option func(*Command)

// WithEnv returns an Option that sets global environment variables.
func WithEnv(env map[string]string) Option {
	return func(c *Command) {
		for k, v := range env {
			c.config.globalEnv[k] = v
		}
	}
}

// WithDir returns an Option that sets the global working directory.
func WithDir(dir string) Option {
	return func(c *Command) {
		c.config.globalDir = dir
	}
}

// WithContext returns an Option that sets the default context.
func WithContext(ctx context.Context) Option {
	return func(c *Command) {
		c.ctx = ctx
	}
}

// WithDisableColors returns an Option that disables colour output globally.
func WithDisableColors() Option {
	return func(c *Command) {
		c.config.globalDisableColors = true
	}
}

// WithTimeout returns an Option that sets a default timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Command) {
		c.config.globalTimeout = timeout
	}
}

// WithInheritEnv returns an Option that inherits the parent environment.
func WithInheritEnv() Option {
	return func(c *Command) {
		c.config.globalInheritEnv = true
	}
}
