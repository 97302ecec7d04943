package git

import (
	"bytes"
	"context"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Akshay2350/node-git/git/cache"
	"github.com/go-git/go-billy/v5/util"
)

// treeHeader matches the first line and blank separator that `git show`
// prints before the entries of a tree object.
var treeHeader = regexp.MustCompile(`^tree .*\n\n`)

// ReadFile returns the contents of path at rev.
//
// If rev is "" and the repository has a working tree, the file is read from
// the working tree instead of history. That read is not cached and
// filesystem errors are returned as-is. A bare repository treats "" as HEAD.
//
// Reads from history are cached by revision and path; repeated calls return
// without running git until ClearCache is called. Returns
// *CommandFailedError if git cannot show the object.
//
// Reading a directory returns git's textual tree rendering.
//
// Examples:
//
//	// Contents at a tag
//	data, err := repo.ReadFile(ctx, "go.mod", "v1.2.0")
//
//	// Contents in the working tree
//	data, err := repo.ReadFile(ctx, "go.mod", "")
func (r *Repository) ReadFile(ctx context.Context, path, rev string) ([]byte, error) {
	if rev == "" {
		if !r.IsBare() {
			return util.ReadFile(r.fs, filepath.Join(r.workTree, path))
		}
		rev = HEAD
	}

	key := cache.Key(rev, path)
	if data, ok := r.cache.File(key); ok {
		r.logger.Debug("file cache hit", "key", key)
		return bytes.Clone(data), nil
	}

	gen := r.cache.Generation()
	data, err := r.invoke(ctx, "show", rev+":"+path)
	if err != nil {
		return nil, err
	}

	r.cache.PutFile(gen, key, bytes.Clone(data))
	return bytes.Clone(data), nil
}

// ReadDir lists the immediate children of the directory path at rev.
// An empty rev means HEAD; the working tree is never consulted.
//
// Entries keep git's order. Returns *NotADirectoryError if path names a
// blob at rev, or the *CommandFailedError from ReadFile.
func (r *Repository) ReadDir(ctx context.Context, path, rev string) (*Listing, error) {
	if rev == "" {
		rev = HEAD
	}

	key := cache.Key(rev, path)
	if listing, ok := r.cache.Dir(key); ok {
		r.logger.Debug("directory cache hit", "key", key)
		return listing, nil
	}

	gen := r.cache.Generation()
	data, err := r.ReadFile(ctx, path, rev)
	if err != nil {
		return nil, err
	}

	listing, ok := parseTree(data)
	if !ok {
		return nil, newNotADirectoryError(path, rev)
	}

	r.cache.PutDir(gen, key, listing)
	return listing, nil
}

// parseTree splits the output of `git show <tree>` into files and
// subdirectories. It reports false if data is not a tree.
func parseTree(data []byte) (*Listing, bool) {
	loc := treeHeader.FindIndex(data)
	if loc == nil {
		return nil, false
	}

	listing := &Listing{
		Files: []string{},
		Dirs:  []string{},
	}

	body := strings.TrimRight(string(data[loc[1]:]), " \t\r\n")
	if body == "" {
		return listing, true
	}

	for _, name := range strings.Split(body, "\n") {
		if name == "" {
			continue
		}
		if dir, ok := strings.CutSuffix(name, "/"); ok {
			listing.Dirs = append(listing.Dirs, dir)
		} else {
			listing.Files = append(listing.Files, name)
		}
	}

	return listing, true
}
