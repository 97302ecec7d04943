package testutil

import (
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMemoryLayout(t *testing.T) {
	t.Run("working copy has .git directory", func(t *testing.T) {
		fs, err := NewMemoryLayout("/repo", false, nil)
		require.NoError(t, err)

		info, err := fs.Stat("/repo/.git")
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("bare layout has no .git entry", func(t *testing.T) {
		fs, err := NewMemoryLayout("/repo.git", true, nil)
		require.NoError(t, err)

		info, err := fs.Stat("/repo.git")
		require.NoError(t, err)
		assert.True(t, info.IsDir())

		_, err = fs.Stat("/repo.git/.git")
		assert.Error(t, err)
	})

	t.Run("writes files under root", func(t *testing.T) {
		fs, err := NewMemoryLayout("/repo", false, map[string]string{
			TestFilePath:  TestFileContent,
			TestFilePath2: "# Guide\n",
		})
		require.NoError(t, err)

		data, err := util.ReadFile(fs, filepath.Join("/repo", TestFilePath))
		require.NoError(t, err)
		assert.Equal(t, TestFileContent, string(data))

		data, err = util.ReadFile(fs, filepath.Join("/repo", TestFilePath2))
		require.NoError(t, err)
		assert.Equal(t, "# Guide\n", string(data))
	})
}
