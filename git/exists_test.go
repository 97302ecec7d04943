package git

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	platformexec "github.com/Akshay2350/node-git/exec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func existsFake() *fakeGit {
	return newFakeGit(map[string]reply{
		"show-ref --tags":     {stdout: showRef(sha1+" refs/tags/v1", sha2+" refs/tags/v2")},
		"show v1:CHANGELOG":   {stdout: "changes"},
		"show HEAD:CHANGELOG": {stdout: "changes"},
		"show v1:README":      {stdout: "readme"},
		"show v2:README":      {stdout: "readme"},
		"show HEAD:README":    {stdout: "readme"},
	})
}

func TestExists(t *testing.T) {
	repo, _ := openFake(t, false, nil, existsFake())
	ctx := context.Background()

	found, err := repo.Exists(ctx, "CHANGELOG")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"v1": sha1, HEAD: HEAD}, found)

	found, err = repo.Exists(ctx, "README")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"v1": sha1, "v2": sha2, HEAD: HEAD}, found)

	found, err = repo.Exists(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestExists_HEADNotAddedToTags(t *testing.T) {
	repo, _ := openFake(t, false, nil, existsFake())
	ctx := context.Background()

	_, err := repo.Exists(ctx, "README")
	require.NoError(t, err)

	tags, err := repo.Tags(ctx)
	require.NoError(t, err)
	assert.NotContains(t, tags, HEAD)
	assert.Len(t, tags, 2)
}

func TestExists_ReadsAreCached(t *testing.T) {
	repo, mock := openFake(t, false, nil, existsFake())
	ctx := context.Background()

	_, err := repo.Exists(ctx, "README")
	require.NoError(t, err)
	spawns := len(mock.RunCalls())
	assert.Equal(t, 4, spawns, "one show-ref plus one show per revision")

	_, err = repo.ReadFile(ctx, "README", "v2")
	require.NoError(t, err)
	assert.Len(t, mock.RunCalls(), spawns)
}

func TestExists_TagsFailure(t *testing.T) {
	fake := newFakeGit(map[string]reply{
		"show-ref --tags": {stderr: "fatal: bad object\n", exitCode: 128},
	})
	repo, _ := openFake(t, false, nil, fake)

	_, err := repo.Exists(context.Background(), "README")
	var cmdErr *CommandFailedError
	require.ErrorAs(t, err, &cmdErr)
}

func TestExists_NoTags(t *testing.T) {
	fake := newFakeGit(map[string]reply{
		"show-ref --tags":  {exitCode: 1},
		"show HEAD:README": {stdout: "readme"},
	})
	repo, _ := openFake(t, false, nil, fake)

	found, err := repo.Exists(context.Background(), "README")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{HEAD: HEAD}, found)
}

func TestExists_ConcurrencyLimit(t *testing.T) {
	fake := existsFake()
	repo, mock := openFake(t, false, nil, fake, WithExistsConcurrency(1))

	var (
		mu      sync.Mutex
		running int
		peak    int
		shows   atomic.Int32
	)
	mock.RunFunc = func(args ...string) (*platformexec.Result, error) {
		if subcommand(args) == "show-ref --tags" {
			return fake.run(args...)
		}
		shows.Add(1)

		mu.Lock()
		running++
		if running > peak {
			peak = running
		}
		mu.Unlock()

		defer func() {
			mu.Lock()
			running--
			mu.Unlock()
		}()
		return fake.run(args...)
	}

	found, err := repo.Exists(context.Background(), "README")
	require.NoError(t, err)
	assert.Len(t, found, 3)
	assert.Equal(t, int32(3), shows.Load())
	assert.Equal(t, 1, peak)
}

func TestExists_Cancelled(t *testing.T) {
	repo, _ := openFake(t, false, nil, existsFake())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Exists(ctx, "README")
	assert.ErrorIs(t, err, context.Canceled)
}
