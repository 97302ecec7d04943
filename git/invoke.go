package git

import (
	"context"
	"strings"
)

// invoke runs git with the handle's prefix arguments followed by args and
// returns its standard output.
//
// Concurrent calls with the same args share one subprocess and all receive
// its outcome. Once the subprocess exits the entry is forgotten, so a later
// call starts a new one. A caller whose ctx is done stops waiting and gets
// ctx.Err(); the subprocess keeps running for the others, bounded only by
// the configured timeout.
//
// This is the only place a git process is started.
func (r *Repository) invoke(ctx context.Context, args ...string) ([]byte, error) {
	key := strings.Join(args, "\x00")

	ch := r.inflight.DoChan(key, func() (interface{}, error) {
		r.cache.RecordSpawn()
		r.logger.Debug("running git", "args", args)

		runCtx := context.WithoutCancel(ctx)
		result, err := r.git.Clone().
			WithContext(runCtx).
			WithTimeout(r.timeout).
			Run(args...)
		if err != nil {
			failure := newCommandFailedError(err)
			r.logger.Debug("git failed", "args", args, "error", failure)
			return nil, failure
		}
		return result.Stdout, nil
	})
	r.waiting.Add(1)
	defer r.waiting.Add(-1)

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Shared {
			r.logger.Debug("coalesced git invocation", "args", args)
		}
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]byte), nil
	}
}
