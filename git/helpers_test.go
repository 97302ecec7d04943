package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"testing"
	"time"

	platformexec "github.com/Akshay2350/node-git/exec"
	"github.com/Akshay2350/node-git/exec/mocks"
	"github.com/Akshay2350/node-git/git/testutil"
	"github.com/stretchr/testify/require"
)

// isGitAvailable checks if the git CLI is available on the system.
func isGitAvailable() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// requireGit skips the test if git CLI is not available.
func requireGit(t *testing.T) {
	t.Helper()
	if !isGitAvailable() {
		t.Skip("git CLI not available, skipping test")
	}
}

// reply is a canned git outcome.
type reply struct {
	stdout   string
	stderr   string
	exitCode int
}

// fakeGit answers git subcommands from a table. Unknown subcommands fail
// the way `git show` does for a missing path.
type fakeGit struct {
	mu      sync.Mutex
	replies map[string]reply

	// block, when set, is waited on before every reply.
	block chan struct{}
	// started receives one value per Run before it blocks.
	started chan struct{}
}

func newFakeGit(replies map[string]reply) *fakeGit {
	return &fakeGit{replies: replies}
}

// set replaces the reply for a subcommand.
func (f *fakeGit) set(subcommand string, r reply) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replies[subcommand] = r
}

func (f *fakeGit) run(args ...string) (*platformexec.Result, error) {
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.block != nil {
		<-f.block
	}

	sub := subcommand(args)

	f.mu.Lock()
	r, ok := f.replies[sub]
	f.mu.Unlock()
	if !ok {
		r = reply{
			stderr:   fmt.Sprintf("fatal: path does not exist in %q\n", sub),
			exitCode: 128,
		}
	}

	result := &platformexec.Result{
		Stdout:   []byte(r.stdout),
		Stderr:   []byte(r.stderr),
		ExitCode: r.exitCode,
	}
	if r.exitCode != 0 {
		return result, &platformexec.ExecError{
			Command:  args,
			ExitCode: r.exitCode,
			Stdout:   result.Stdout,
			Stderr:   result.Stderr,
			Err:      fmt.Errorf("exit status %d", r.exitCode),
		}
	}
	return result, nil
}

// subcommand drops the binary and the --git-dir/--work-tree prefix and
// joins the rest with spaces.
func subcommand(args []string) string {
	rest := args[1:]
	for len(rest) > 0 && (strings.HasPrefix(rest[0], "--git-dir=") || strings.HasPrefix(rest[0], "--work-tree=")) {
		rest = rest[1:]
	}
	return strings.Join(rest, " ")
}

// newMockExecutor returns a moq executor whose fluent methods return
// itself and whose Run is served by fake.
func newMockExecutor(fake *fakeGit) *mocks.ExecutorMock {
	var mock *mocks.ExecutorMock
	mock = &mocks.ExecutorMock{
		CloneFunc:             func() platformexec.Executor { return mock },
		WithContextFunc:       func(ctx context.Context) platformexec.Executor { return mock },
		WithDirFunc:           func(dir string) platformexec.Executor { return mock },
		WithDisableColorsFunc: func() platformexec.Executor { return mock },
		WithEnvFunc:           func(env map[string]string) platformexec.Executor { return mock },
		WithInheritEnvFunc:    func() platformexec.Executor { return mock },
		WithTimeoutFunc:       func(timeout time.Duration) platformexec.Executor { return mock },
		RunFunc:               fake.run,
	}
	return mock
}

// openFake opens a repository laid out in memory at /repo whose git
// invocations are answered by fake.
func openFake(t *testing.T, bare bool, files map[string]string, fake *fakeGit, opts ...RepositoryOption) (*Repository, *mocks.ExecutorMock) {
	t.Helper()

	fs, err := testutil.NewMemoryLayout("/repo", bare, files)
	require.NoError(t, err)

	mock := newMockExecutor(fake)
	opts = append([]RepositoryOption{WithFilesystem(fs), WithExecutor(mock)}, opts...)

	repo, err := Open("/repo", opts...)
	require.NoError(t, err)

	return repo, mock
}

const (
	sha1 = "1111111111111111111111111111111111111111"
	sha2 = "2222222222222222222222222222222222222222"
)

func showRef(lines ...string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
