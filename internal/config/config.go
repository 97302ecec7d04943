// Package config loads the gitshow configuration file.
//
// The file is TOML:
//
//	git         = "/usr/bin/git"
//	timeout     = "30s"
//	log_level   = "warn"
//	log_format  = "text"
//	concurrency = 8
//
//	[env]
//	GIT_CONFIG_NOSYSTEM = "1"
//
// Every key is optional. Command-line flags override file values.
package config

import (
	"bytes"
	"errors"
	"os"
	"time"

	platformerrors "github.com/Akshay2350/node-git/errors"
	"github.com/Akshay2350/node-git/internal/logging"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/pelletier/go-toml/v2"
)

// Config is the gitshow configuration.
type Config struct {
	Git         string   `toml:"git"`
	Timeout     Duration `toml:"timeout"`
	LogLevel    string   `toml:"log_level"`
	LogFormat   string   `toml:"log_format"`
	Concurrency int      `toml:"concurrency"` // Exists fan-out limit, 0 = unbounded

	// Env is added to the environment of every git invocation.
	Env map[string]string `toml:"env,omitempty"`
}

// Duration is a time.Duration written as a string such as "30s".
type Duration struct {
	time.Duration
}

// UnmarshalText parses a Go duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Git:       "git",
		LogLevel:  "warn",
		LogFormat: logging.FormatText,
	}
}

// Load reads the file at path from fs and applies it over Default.
// An empty path returns Default. Unknown keys are rejected.
func Load(fs billy.Filesystem, path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := util.ReadFile(fs, path)
	if err != nil {
		code := platformerrors.CodeInvalidConfig
		if errors.Is(err, os.ErrNotExist) {
			code = platformerrors.CodeNotFound
		}
		return nil, platformerrors.WrapWithContext(err, code, "failed to read config",
			map[string]interface{}{"path": path})
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, platformerrors.WrapWithContext(err, platformerrors.CodeInvalidConfig,
			"failed to parse config", map[string]interface{}{"path": path})
	}

	if err := cfg.Validate(); err != nil {
		return nil, platformerrors.WithContext(err, "path", path)
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Git == "" {
		return platformerrors.New(platformerrors.CodeInvalidConfig, "git must not be empty")
	}
	if c.Timeout.Duration < 0 {
		return platformerrors.WithContext(
			platformerrors.New(platformerrors.CodeInvalidConfig, "timeout must not be negative"),
			"timeout", c.Timeout.String())
	}
	if c.Concurrency < 0 {
		return platformerrors.WithContext(
			platformerrors.New(platformerrors.CodeInvalidConfig, "concurrency must not be negative"),
			"concurrency", c.Concurrency)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if !logging.ValidFormat(c.LogFormat) {
		return platformerrors.WithContext(
			platformerrors.Newf(platformerrors.CodeInvalidConfig, "unknown log format %q", c.LogFormat),
			"log_format", c.LogFormat)
	}
	return nil
}

// Marshal encodes the configuration as TOML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, platformerrors.Wrap(err, platformerrors.CodeInternal, "failed to marshal config")
	}
	return data, nil
}
