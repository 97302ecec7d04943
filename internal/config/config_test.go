package config

import (
	"testing"
	"time"

	platformerrors "github.com/Akshay2350/node-git/errors"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) billy.Filesystem {
	t.Helper()
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "/gitshow.toml", []byte(content), 0o644))
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(memfs.New(), "")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	fs := writeConfig(t, `
git = "/opt/git/bin/git"
timeout = "1m30s"
log_level = "debug"
log_format = "json"
concurrency = 4

[env]
GIT_CONFIG_NOSYSTEM = "1"
`)

	cfg, err := Load(fs, "/gitshow.toml")
	require.NoError(t, err)
	assert.Equal(t, "/opt/git/bin/git", cfg.Git)
	assert.Equal(t, 90*time.Second, cfg.Timeout.Duration)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 4, cfg.Concurrency)
	assert.Equal(t, map[string]string{"GIT_CONFIG_NOSYSTEM": "1"}, cfg.Env)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `concurrency = 2`), "/gitshow.toml")
	require.NoError(t, err)
	assert.Equal(t, "git", cfg.Git)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 2, cfg.Concurrency)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    platformerrors.ErrorCode
	}{
		{"malformed toml", `git = `, platformerrors.CodeInvalidConfig},
		{"unknown key", `colour = "always"`, platformerrors.CodeInvalidConfig},
		{"bad duration", `timeout = "soon"`, platformerrors.CodeInvalidConfig},
		{"negative timeout", `timeout = "-1s"`, platformerrors.CodeInvalidConfig},
		{"negative concurrency", `concurrency = -1`, platformerrors.CodeInvalidConfig},
		{"bad level", `log_level = "loud"`, platformerrors.CodeInvalidConfig},
		{"bad format", `log_format = "xml"`, platformerrors.CodeInvalidConfig},
		{"empty git", `git = ""`, platformerrors.CodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content), "/gitshow.toml")
			require.Error(t, err)
			assert.Equal(t, tt.code, platformerrors.GetCode(err))
			assert.Equal(t, "/gitshow.toml", platformerrors.ToJSON(err).Context["path"])
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(memfs.New(), "/nope.toml")
	require.Error(t, err)
	assert.Equal(t, platformerrors.CodeNotFound, platformerrors.GetCode(err))
}

func TestMarshal(t *testing.T) {
	cfg := Default()
	cfg.Timeout.Duration = 5 * time.Second

	data, err := cfg.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), "timeout")
	assert.Contains(t, string(data), "5s")

	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "/out.toml", data, 0o644))

	loaded, err := Load(fs, "/out.toml")
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
