package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// lsOutput is the JSON form of a directory listing.
type lsOutput struct {
	Dirs  []string `json:"dirs"`
	Files []string `json:"files"`
}

func newLsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "ls [path] [revision]",
		Short: "List a directory at a revision",
		Long: `List the immediate children of a directory at a revision, HEAD by
default. Directories are printed first with a trailing slash.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			listing, err := s.repo.ReadDir(cmd.Context(), revision(args, 0), revision(args, 1))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.json {
				return writeJSON(out, lsOutput{Dirs: listing.Dirs, Files: listing.Files})
			}

			blue := color.New(color.FgBlue)
			for _, dir := range listing.Dirs {
				blue.Fprintf(out, "%s/\n", dir)
			}
			for _, file := range listing.Files {
				fmt.Fprintln(out, file)
			}
			return nil
		},
	}
}
