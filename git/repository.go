package git

import (
	"log/slog"
	"path/filepath"

	"github.com/Akshay2350/node-git/exec"
	platformerrors "github.com/Akshay2350/node-git/errors"
	"github.com/Akshay2350/node-git/git/cache"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// Open returns a handle to the repository at path.
//
// If path contains a .git entry, either a directory or the gitfile of a
// linked worktree or submodule, the repository is treated as a working copy
// and git is run with --git-dir=<path>/.git --work-tree=<path>.
// Otherwise path itself is taken to be the git directory of a bare
// repository. Open does not check that the directory actually holds a
// repository; the first git invocation reports that.
//
// Returns *RepoNotFoundError if path does not exist or is not a directory.
//
// Examples:
//
//	// Working copy on the local filesystem
//	repo, err := git.Open("/src/project")
//
//	// Bare repository with a per-invocation limit
//	repo, err := git.Open("/srv/git/project.git", git.WithTimeout(10*time.Second))
func Open(path string, opts ...RepositoryOption) (*Repository, error) {
	// Apply options with defaults
	options := &repositoryOptions{
		gitBinary: "git",
	}
	for _, opt := range opts {
		opt(options)
	}

	if options.fs == nil {
		options.fs = osfs.New("/")
	}
	if options.logger == nil {
		options.logger = slog.New(slog.DiscardHandler)
	}

	// The git CLI only sees the real filesystem
	if options.executor == nil && isMemoryFilesystem(options.fs) {
		return nil, platformerrors.WithContext(
			platformerrors.New(platformerrors.CodeInvalidInput,
				"the git CLI cannot read a repository on a memory filesystem"),
			"path", path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, newRepoNotFoundError(path, err)
	}

	info, err := options.fs.Stat(abs)
	if err != nil {
		return nil, newRepoNotFoundError(abs, err)
	}
	if !info.IsDir() {
		return nil, newRepoNotFoundError(abs, nil)
	}

	repo := &Repository{
		path:        abs,
		gitDir:      abs,
		fs:          options.fs,
		timeout:     options.timeout,
		existsLimit: options.existsLimit,
		logger:      options.logger.With("repository", abs),
		cache:       cache.New(),
	}

	// A .git directory marks a standard checkout. Linked worktrees and
	// submodules have a .git file pointing elsewhere, which git also accepts
	// as --git-dir. Anything else is a bare repository.
	dotGit := filepath.Join(abs, ".git")
	if _, err := options.fs.Stat(dotGit); err == nil {
		repo.gitDir = dotGit
		repo.workTree = abs
	}

	executor := options.executor
	if executor == nil {
		executor = exec.New(exec.WithInheritEnv(), exec.WithEnv(options.env))
	} else if len(options.env) > 0 {
		executor = executor.Clone().WithEnv(options.env)
	}

	repo.git = exec.NewWrapper(executor, options.gitBinary, repo.prefixArgs()...)

	repo.logger.Debug("opened repository",
		"command", repo.git.Args(),
		"bare", repo.IsBare())

	return repo, nil
}

// prefixArgs are the arguments placed before every git subcommand.
func (r *Repository) prefixArgs() []string {
	if r.IsBare() {
		return []string{"--git-dir=" + r.gitDir}
	}
	return []string{"--git-dir=" + r.gitDir, "--work-tree=" + r.workTree}
}

// Path returns the absolute path the repository was opened at.
func (r *Repository) Path() string {
	return r.path
}

// GitDir returns the metadata directory passed to git.
func (r *Repository) GitDir() string {
	return r.gitDir
}

// WorkTree returns the checkout root, or "" for a bare repository.
func (r *Repository) WorkTree() string {
	return r.workTree
}

// IsBare reports whether the repository has no working tree.
func (r *Repository) IsBare() bool {
	return r.workTree == ""
}

// Filesystem returns the billy.Filesystem used for layout detection and
// working tree reads.
func (r *Repository) Filesystem() billy.Filesystem {
	return r.fs
}

// ClearCache empties the file, directory and tag caches in one step.
//
// Invocations already running are not interrupted. Their results are still
// delivered to their callers but are not written into the cleared cache.
func (r *Repository) ClearCache() {
	r.cache.Clear()
	r.logger.Debug("cache cleared")
}

// Stats returns a snapshot of cache sizes and counters.
func (r *Repository) Stats() cache.Stats {
	return r.cache.Stats()
}
