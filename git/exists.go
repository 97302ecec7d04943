package git

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Exists reports every revision at which path can be read: each tag whose
// tree contains it, plus HEAD. The result maps names to the tag object id,
// with HEAD mapped to "HEAD".
//
// All reads run concurrently and Exists returns once every one of them has
// finished. A read that fails only means path is absent at that revision;
// the only error returned is a failure to load the tag table, or ctx being
// done.
//
// HEAD is added to a private copy of the tag table and never shows up in
// Tags.
func (r *Repository) Exists(ctx context.Context, path string) (map[string]string, error) {
	candidates, err := r.Tags(ctx)
	if err != nil {
		return nil, err
	}
	candidates[HEAD] = HEAD

	var (
		mu    sync.Mutex
		found = make(map[string]string, len(candidates))
	)

	var g errgroup.Group
	if r.existsLimit > 0 {
		g.SetLimit(r.existsLimit)
	}

	for name, id := range candidates {
		g.Go(func() error {
			if _, err := r.ReadFile(ctx, path, name); err != nil {
				r.logger.Debug("path absent at revision",
					"path", path, "revision", name, "error", err)
				return nil
			}

			mu.Lock()
			found[name] = id
			mu.Unlock()
			return nil
		})
	}

	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return found, nil
}
