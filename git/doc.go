// Package git provides read-only, cached access to the history of a git
// repository by running the git CLI.
//
// Every read goes through the git binary as a subprocess. Results are kept
// in memory for the lifetime of the Repository handle, and identical reads
// that are in flight at the same time share a single subprocess.
//
// # Core Types
//
// Repository is the handle returned by Open. It owns its cache, its table of
// in-flight invocations and its command runner; two handles never share
// state, even when they point at the same directory.
//
// Listing is a directory at a revision, split into files and subdirectories.
//
// # Repository Layout
//
// Open accepts either a working copy or a bare repository:
//
//	/src/project          contains .git/   → --git-dir=/src/project/.git --work-tree=/src/project
//	/src/linked           contains .git    → --git-dir=/src/linked/.git --work-tree=/src/linked
//	/srv/git/project.git  no .git          → --git-dir=/srv/git/project.git
//
// A .git file is the gitfile of a linked worktree or submodule; git follows
// it to the real metadata directory.
//
// Layout detection and working tree reads use a go-billy filesystem, the OS
// filesystem by default. A memory filesystem is accepted only together with
// WithExecutor, since the git CLI cannot see it.
//
// # Revisions
//
// Revisions are passed to git as-is: tag names, branch names, object ids and
// expressions such as HEAD~2 all work. An empty revision means "not given":
//
//   - ReadFile on a working copy reads the file from disk, uncached.
//   - ReadFile on a bare repository uses HEAD.
//   - ReadDir always uses HEAD.
//
// # Caching
//
// File contents and directory listings are cached by revision and path. The
// tag table is loaded once. Nothing is evicted; ClearCache drops everything
// at once, after which reads observe the repository's current state.
//
// Caches assume revisions are immutable. A branch name or HEAD that moves
// keeps returning the old content until ClearCache is called.
//
// # Errors
//
// Failures are typed and carry platform error codes from the errors package:
//
//   - *RepoNotFoundError (NOT_FOUND): Open was given a missing path
//   - *CommandFailedError (EXECUTION_FAILED, or TIMEOUT): git exited non-zero
//   - *NotADirectoryError (NOT_A_DIRECTORY): ReadDir on a file
//   - *ParseError (PARSE_FAILED): unexpected `git show-ref` output
//
// Use errors.As for the details or errors.GetCode for the category.
//
// # Context and Cancellation
//
// Every read accepts a context.Context. Cancelling it releases the caller;
// a subprocess that other callers are also waiting on keeps running. Use
// WithTimeout to bound the subprocess itself.
//
// # Example
//
//	repo, err := git.Open("/src/project")
//	if err != nil {
//	    return err
//	}
//
//	data, err := repo.ReadFile(ctx, "go.mod", "v1.0.0")
//	if err != nil {
//	    return err
//	}
//
//	revs, err := repo.Exists(ctx, "CHANGELOG.md")
//	if err != nil {
//	    return err
//	}
//	for name := range revs {
//	    fmt.Println("present at", name)
//	}
package git
