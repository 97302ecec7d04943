// Package testutil builds git repositories on disk for tests.
//
// Fixtures are created with go-git, so building one does not need the git
// binary. Reading them back through the git package does, and so does
// LinkedWorktree, since go-git cannot create linked worktrees.
package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/Akshay2350/node-git/exec"
	"github.com/go-git/go-billy/v5/util"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

// Repo is a working copy in a temporary directory.
type Repo struct {
	t    testing.TB
	Path string
	repo *gogit.Repository
	wt   *gogit.Worktree
}

// NewRepo initialises an empty working copy under t.TempDir().
//
// Example:
//
//	r := testutil.NewRepo(t)
//	r.WriteFile("README.md", "hello")
//	r.Commit("Initial commit")
//	r.Tag("v1.0.0")
func NewRepo(t testing.TB) *Repo {
	t.Helper()

	path := filepath.Join(t.TempDir(), "repo")
	repo, err := gogit.PlainInit(path, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	return &Repo{t: t, Path: path, repo: repo, wt: wt}
}

// NewSampleRepo returns a working copy with two commits and two tags:
//
//	TestTagName   (annotated)   README.md, main.go, docs/guide.md, CHANGELOG.md
//	TestTagName2  (lightweight) README.md, main.go, docs/guide.md
//
// HEAD is at TestTagName2.
func NewSampleRepo(t testing.TB) *Repo {
	t.Helper()

	r := NewRepo(t)
	r.WriteFile(TestFilePath, TestFileContent)
	r.WriteFile(TestGoFilePath, TestGoFileContent)
	r.WriteFile(TestFilePath2, "# Guide\n")
	r.WriteFile(TestChangelogPath, TestChangelogContent)
	r.Commit(TestInitialCommit)
	r.AnnotatedTag(TestTagName, TestTagMessage)

	r.Remove(TestChangelogPath)
	r.WriteFile(TestGoFilePath, TestGoFileContent+"\n// feature\n")
	r.Commit(TestFeatureCommit)
	r.Tag(TestTagName2)

	return r
}

// WriteFile creates or replaces path in the working tree, creating parent
// directories as needed. The change is not staged.
func (r *Repo) WriteFile(path, content string) {
	r.t.Helper()
	require.NoError(r.t, util.WriteFile(r.wt.Filesystem, path, []byte(content), 0o644))
}

// Remove deletes path from the working tree.
func (r *Repo) Remove(path string) {
	r.t.Helper()
	require.NoError(r.t, r.wt.Filesystem.Remove(path))
}

// Commit stages every change in the working tree and commits it.
// Returns the commit id.
func (r *Repo) Commit(message string) string {
	r.t.Helper()

	require.NoError(r.t, r.wt.AddWithOptions(&gogit.AddOptions{All: true}))

	hash, err := r.wt.Commit(message, &gogit.CommitOptions{
		Author:            signature(),
		AllowEmptyCommits: true,
	})
	require.NoError(r.t, err)

	return hash.String()
}

// Tag creates a lightweight tag at HEAD and returns the commit id.
func (r *Repo) Tag(name string) string {
	r.t.Helper()

	ref, err := r.repo.CreateTag(name, r.head(), nil)
	require.NoError(r.t, err)

	return ref.Hash().String()
}

// AnnotatedTag creates an annotated tag at HEAD and returns the id of the
// tag object, which is what `git show-ref` reports for it.
func (r *Repo) AnnotatedTag(name, message string) string {
	r.t.Helper()

	ref, err := r.repo.CreateTag(name, r.head(), &gogit.CreateTagOptions{
		Tagger:  signature(),
		Message: message,
	})
	require.NoError(r.t, err)

	return ref.Hash().String()
}

// Bare copies every object and reference into a new bare repository under
// t.TempDir() and returns its path.
func (r *Repo) Bare() string {
	r.t.Helper()

	path := filepath.Join(r.t.TempDir(), "repo.git")
	bare, err := gogit.PlainInit(path, true)
	require.NoError(r.t, err)

	objects, err := r.repo.Storer.IterEncodedObjects(plumbing.AnyObject)
	require.NoError(r.t, err)
	require.NoError(r.t, objects.ForEach(func(obj plumbing.EncodedObject) error {
		_, err := bare.Storer.SetEncodedObject(obj)
		return err
	}))

	refs, err := r.repo.Storer.IterReferences()
	require.NoError(r.t, err)
	require.NoError(r.t, refs.ForEach(func(ref *plumbing.Reference) error {
		return bare.Storer.SetReference(ref)
	}))

	return path
}

// LinkedWorktree runs `git worktree add --detach` to check HEAD out into a
// new directory under t.TempDir() and returns its path. The checkout has a
// .git file instead of a directory.
func (r *Repo) LinkedWorktree() string {
	r.t.Helper()

	path := filepath.Join(r.t.TempDir(), "linked")
	git := exec.NewWrapper(exec.New(exec.WithInheritEnv()), "git", "-C", r.Path)

	_, err := git.Run("worktree", "add", "--detach", path)
	require.NoError(r.t, err)

	return path
}

func (r *Repo) head() plumbing.Hash {
	r.t.Helper()

	head, err := r.repo.Head()
	require.NoError(r.t, err)

	return head.Hash()
}

func signature() *object.Signature {
	return &object.Signature{
		Name:  TestAuthor,
		Email: TestEmail,
		When:  time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}
