package git

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/Akshay2350/node-git/exec"
	"github.com/Akshay2350/node-git/git/cache"
	"github.com/go-git/go-billy/v5"
	"golang.org/x/sync/singleflight"
)

// HEAD is the revision used when a caller does not name one.
const HEAD = "HEAD"

// Listing is the content of a tree at a revision: immediate files and
// immediate subdirectories, in the order git lists them.
type Listing = cache.Listing

// Repository gives read-only access to the history of one git repository
// by running the git CLI. It is safe for concurrent use.
type Repository struct {
	path     string // absolute path passed to Open
	gitDir   string // metadata directory
	workTree string // checkout root; empty for bare repositories

	fs          billy.Filesystem
	git         *exec.CommandWrapper
	timeout     time.Duration
	existsLimit int
	logger      *slog.Logger

	cache    *cache.Store
	inflight singleflight.Group
	waiting  atomic.Int64 // callers attached to an in-flight invocation
}

// RepositoryOption configures Open.
type RepositoryOption func(*repositoryOptions)

// repositoryOptions holds the configuration for Open.
type repositoryOptions struct {
	fs          billy.Filesystem
	executor    exec.Executor
	gitBinary   string
	timeout     time.Duration
	env         map[string]string
	logger      *slog.Logger
	existsLimit int
}

// WithFilesystem sets the billy filesystem used to inspect the repository
// layout and to read working tree files. Defaults to the OS filesystem.
//
// A memory filesystem is only accepted together with WithExecutor, since the
// git CLI cannot see it.
//
// Example:
//
//	repo, err := git.Open("/repo", git.WithFilesystem(memfs.New()), git.WithExecutor(mock))
func WithFilesystem(fs billy.Filesystem) RepositoryOption {
	return func(opts *repositoryOptions) {
		opts.fs = fs
	}
}

// WithExecutor replaces the command runner. The executor receives the full
// argument vector, git binary first. Intended for tests.
func WithExecutor(executor exec.Executor) RepositoryOption {
	return func(opts *repositoryOptions) {
		opts.executor = executor
	}
}

// WithGitBinary sets the git executable. Defaults to "git" on PATH.
func WithGitBinary(path string) RepositoryOption {
	return func(opts *repositoryOptions) {
		opts.gitBinary = path
	}
}

// WithTimeout bounds every git invocation. Zero, the default, means no limit.
func WithTimeout(timeout time.Duration) RepositoryOption {
	return func(opts *repositoryOptions) {
		opts.timeout = timeout
	}
}

// WithEnv adds environment variables to every git invocation. The parent
// environment is always inherited.
func WithEnv(env map[string]string) RepositoryOption {
	return func(opts *repositoryOptions) {
		if opts.env == nil {
			opts.env = make(map[string]string, len(env))
		}
		for k, v := range env {
			opts.env[k] = v
		}
	}
}

// WithLogger sets the logger for debug output. Defaults to discarding.
func WithLogger(logger *slog.Logger) RepositoryOption {
	return func(opts *repositoryOptions) {
		opts.logger = logger
	}
}

// WithExistsConcurrency caps how many reads Exists runs at once.
// Zero or a negative value means one goroutine per tag.
func WithExistsConcurrency(n int) RepositoryOption {
	return func(opts *repositoryOptions) {
		opts.existsLimit = n
	}
}
