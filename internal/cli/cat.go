package cli

import (
	"github.com/spf13/cobra"
)

func newCatCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "cat <path> [revision]",
		Short: "Print a file at a revision",
		Long: `Print the raw contents of a file at a revision.

Without a revision the file is read from the working tree, or from HEAD in
a bare repository.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			data, err := s.repo.ReadFile(cmd.Context(), args[0], revision(args, 1))
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
