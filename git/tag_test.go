package git

import (
	"context"
	"strings"
	"testing"

	platformerrors "github.com/Akshay2350/node-git/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTags(t *testing.T) {
	fake := newFakeGit(map[string]reply{
		"show-ref --tags": {stdout: showRef(
			sha1+" refs/tags/v1.0.0",
			sha2+" refs/tags/release/v2",
		)},
	})
	repo, mock := openFake(t, false, nil, fake)
	ctx := context.Background()

	tags, err := repo.Tags(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"v1.0.0": sha1, "release/v2": sha2}, tags)

	tags["injected"] = sha1

	tags, err = repo.Tags(ctx)
	require.NoError(t, err)
	assert.NotContains(t, tags, "injected")

	calls := mock.RunCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"show-ref", "--tags"}, calls[0].Args[len(calls[0].Args)-2:])
}

func TestTags_Empty(t *testing.T) {
	fake := newFakeGit(map[string]reply{"show-ref --tags": {exitCode: 1}})
	repo, mock := openFake(t, false, nil, fake)
	ctx := context.Background()

	tags, err := repo.Tags(ctx)
	require.NoError(t, err)
	assert.Empty(t, tags)
	assert.NotNil(t, tags)

	_, err = repo.Tags(ctx)
	require.NoError(t, err)
	assert.Len(t, mock.RunCalls(), 1, "an empty table is cached too")
	assert.True(t, repo.Stats().TagsLoaded)
}

func TestTags_CommandFailed(t *testing.T) {
	fake := newFakeGit(map[string]reply{
		"show-ref --tags": {stderr: "fatal: not a git repository\n", exitCode: 128},
	})
	repo, _ := openFake(t, false, nil, fake)

	_, err := repo.Tags(context.Background())
	var cmdErr *CommandFailedError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, 128, cmdErr.ExitCode)
	assert.False(t, repo.Stats().TagsLoaded)
}

func TestTags_ParseError(t *testing.T) {
	fake := newFakeGit(map[string]reply{
		"show-ref --tags": {stdout: showRef(sha1+" refs/tags/v1", "garbage")},
	})
	repo, mock := openFake(t, false, nil, fake)
	ctx := context.Background()

	_, err := repo.Tags(ctx)
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "garbage", parseErr.Line)
	assert.Equal(t, platformerrors.CodeParseFailed, platformerrors.GetCode(err))

	_, err = repo.Tags(ctx)
	require.Error(t, err)
	assert.Len(t, mock.RunCalls(), 2, "nothing is cached after a parse error")
}

func TestParseTags(t *testing.T) {
	sha256 := strings.Repeat("ab", 32)

	tests := []struct {
		name     string
		input    string
		want     map[string]string
		wantLine string
	}{
		{
			name:  "empty output",
			input: "",
			want:  map[string]string{},
		},
		{
			name:  "blank lines ignored",
			input: "\n" + sha1 + " refs/tags/v1\n\n",
			want:  map[string]string{"v1": sha1},
		},
		{
			name:  "sha256 object ids",
			input: sha256 + " refs/tags/v1\n",
			want:  map[string]string{"v1": sha256},
		},
		{
			name:  "nested tag names",
			input: sha1 + " refs/tags/release/2025.01\n",
			want:  map[string]string{"release/2025.01": sha1},
		},
		{
			name:     "space in tag name",
			input:    sha1 + " refs/tags/odd name\n",
			wantLine: sha1 + " refs/tags/odd name",
		},
		{
			name:     "double dot in tag name",
			input:    sha1 + " refs/tags/v1..2\n",
			wantLine: sha1 + " refs/tags/v1..2",
		},
		{
			name:     "lock suffix",
			input:    sha1 + " refs/tags/v1.lock\n",
			wantLine: sha1 + " refs/tags/v1.lock",
		},
		{
			name:     "branch ref",
			input:    sha1 + " refs/heads/main\n",
			wantLine: sha1 + " refs/heads/main",
		},
		{
			name:     "short object id",
			input:    "abc123 refs/tags/v1\n",
			wantLine: "abc123 refs/tags/v1",
		},
		{
			name:     "uppercase hex",
			input:    strings.ToUpper(sha1) + " refs/tags/v1\n",
			wantLine: strings.ToUpper(sha1) + " refs/tags/v1",
		},
		{
			name:     "empty tag name",
			input:    sha1 + " refs/tags/\n",
			wantLine: sha1 + " refs/tags/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTags([]byte(tt.input))
			if tt.wantLine != "" {
				var parseErr *ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Equal(t, tt.wantLine, parseErr.Line)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
