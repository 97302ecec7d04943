package exec

import (
	"context"
	"time"
)

// CommandWrapper prepends a binary name and fixed leading arguments to
// every Run, e.g. git plus its --git-dir flag.
type CommandWrapper struct {
	executor Executor
	cmd      string
	prefix   []string
}

// NewWrapper wraps executor so that Run(args...) executes
// cmd prefix... args...
func NewWrapper(executor Executor, cmd string, prefix ...string) *CommandWrapper {
	return &CommandWrapper{
		executor: executor,
		cmd:      cmd,
		prefix:   append([]string(nil), prefix...),
	}
}

// WithEnv adds environment variables for the next Run.
func (w *CommandWrapper) WithEnv(env map[string]string) Executor {
	w.executor = w.executor.WithEnv(env)
	return w
}

// WithDir sets the working directory for the next Run.
func (w *CommandWrapper) WithDir(dir string) Executor {
	w.executor = w.executor.WithDir(dir)
	return w
}

// WithContext sets the context for the next Run.
func (w *CommandWrapper) WithContext(ctx context.Context) Executor {
	w.executor = w.executor.WithContext(ctx)
	return w
}

// WithDisableColors disables colour output for the next Run.
func (w *CommandWrapper) WithDisableColors() Executor {
	w.executor = w.executor.WithDisableColors()
	return w
}

// WithTimeout bounds the next Run.
func (w *CommandWrapper) WithTimeout(timeout time.Duration) Executor {
	w.executor = w.executor.WithTimeout(timeout)
	return w
}

// WithInheritEnv inherits the parent environment for the next Run.
func (w *CommandWrapper) WithInheritEnv() Executor {
	w.executor = w.executor.WithInheritEnv()
	return w
}

// Run executes the wrapped binary with the prefix followed by args.
func (w *CommandWrapper) Run(args ...string) (*Result, error) {
	full := make([]string, 0, 1+len(w.prefix)+len(args))
	full = append(full, w.cmd)
	full = append(full, w.prefix...)
	full = append(full, args...)
	return w.executor.Run(full...)
}

// Args returns the binary and prefix that Run prepends.
func (w *CommandWrapper) Args() []string {
	return append([]string{w.cmd}, w.prefix...)
}

// Clone returns an independent copy around a cloned executor.
func (w *CommandWrapper) Clone() Executor {
	return &CommandWrapper{
		executor: w.executor.Clone(),
		cmd:      w.cmd,
		prefix:   w.prefix,
	}
}
