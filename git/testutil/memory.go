package testutil

import (
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
)

// NewMemoryLayout returns a memory filesystem holding a directory at root
// that looks like a repository to layout detection. With bare set, root
// has no .git entry; otherwise root/.git is a directory. files are written
// relative to root.
//
// No git objects are created. The layout is only useful with a mock
// executor.
//
// Example:
//
//	fs, err := testutil.NewMemoryLayout("/repo", false, map[string]string{
//	    "README.md": "working tree copy",
//	})
func NewMemoryLayout(root string, bare bool, files map[string]string) (billy.Filesystem, error) {
	fs := memfs.New()

	if err := fs.MkdirAll(root, 0o755); err != nil {
		//nolint:wrapcheck // Test utility - simple file operation error
		return nil, err
	}
	if !bare {
		if err := fs.MkdirAll(filepath.Join(root, ".git"), 0o755); err != nil {
			//nolint:wrapcheck // Test utility - simple file operation error
			return nil, err
		}
	}

	for path, content := range files {
		if err := util.WriteFile(fs, filepath.Join(root, path), []byte(content), 0o644); err != nil {
			//nolint:wrapcheck // Test utility - simple file operation error
			return nil, err
		}
	}

	return fs, nil
}
