// Package cli implements the gitshow command-line interface.
package cli

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fatih/color"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	platformerrors "github.com/Akshay2350/node-git/errors"
	"github.com/Akshay2350/node-git/git"
	"github.com/Akshay2350/node-git/internal/config"
	"github.com/Akshay2350/node-git/internal/logging"
)

// options holds the global flags.
type options struct {
	repo       string
	configPath string
	logLevel   string
	logFormat  string
	json       bool
}

// session is an opened repository plus the logger built for it.
type session struct {
	repo   *git.Repository
	logger *slog.Logger
}

// close logs cache statistics for the command that just ran.
func (s *session) close() {
	stats := s.repo.Stats()
	s.logger.Debug("cache stats",
		"spawns", stats.Spawns,
		"hits", stats.Hits,
		"misses", stats.Misses)
}

func newRootCommand(opts *options) *cobra.Command {
	root := &cobra.Command{
		Use:   "gitshow",
		Short: "Read files, directories and tags from git history",
		Long: `gitshow reads a repository's history through the git CLI without
touching the working tree: file contents and directory listings at any
revision, the tag table, and the tags at which a path exists.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.repo, "repo", "C", ".", "Repository path (working copy or bare)")
	flags.StringVar(&opts.configPath, "config", "", "Path to a TOML configuration file")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&opts.logFormat, "log-format", "", "Log format (text, json)")
	flags.BoolVar(&opts.json, "json", false, "Write output and errors as JSON")

	root.AddCommand(newCatCmd(opts))
	root.AddCommand(newLsCmd(opts))
	root.AddCommand(newTagsCmd(opts))
	root.AddCommand(newExistsCmd(opts))
	root.AddCommand(newConfigCmd(opts))

	return root
}

// Run executes gitshow with args and returns the process exit status.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts := &options{}
	root := newRootCommand(opts)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		printError(stderr, err, opts.json)
		return 1
	}
	return 0
}

// Execute runs gitshow with the process arguments. Interrupts cancel the
// running command.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
}

// loadConfig reads the configuration file and applies flag overrides.
func (o *options) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath := o.configPath
	if configPath != "" {
		abs, err := filepath.Abs(configPath)
		if err != nil {
			return nil, platformerrors.Wrap(err, platformerrors.CodeInvalidInput, "invalid config path")
		}
		configPath = abs
	}

	cfg, err := config.Load(osfs.New("/"), configPath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.LogFormat = o.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// open loads configuration and opens the repository with it.
func (o *options) open(cmd *cobra.Command) (*session, error) {
	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logging.New(cmd.ErrOrStderr(), level, cfg.LogFormat)

	repo, err := git.Open(o.repo,
		git.WithGitBinary(cfg.Git),
		git.WithTimeout(cfg.Timeout.Duration),
		git.WithEnv(cfg.Env),
		git.WithExistsConcurrency(cfg.Concurrency),
		git.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	return &session{repo: repo, logger: logger}, nil
}

// printError writes err to w, as an ErrorResponse when asJSON is set.
func printError(w io.Writer, err error, asJSON bool) {
	if asJSON {
		_ = writeJSON(w, platformerrors.ToJSON(err))
		return
	}
	color.New(color.FgRed).Fprintf(w, "error: %v\n", err)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// revision returns the optional revision argument at index i.
func revision(args []string, i int) string {
	if len(args) > i {
		return args[i]
	}
	return ""
}
