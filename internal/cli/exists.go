package cli

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Akshay2350/node-git/git"
)

func newExistsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "exists <path>",
		Short: "List the tags at which a path exists",
		Long: `List every tag whose tree contains path, followed by HEAD if the path
exists there too.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			found, err := s.repo.Exists(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.json {
				return writeJSON(out, found)
			}

			for _, name := range sortedRevisions(found) {
				if name == git.HEAD {
					color.New(color.FgCyan).Fprintln(out, git.HEAD)
					continue
				}
				fmt.Fprintf(out, "%s %s\n", name, found[name])
			}
			return nil
		},
	}
}

// sortedRevisions orders tag names alphabetically with HEAD last.
func sortedRevisions(found map[string]string) []string {
	names := make([]string, 0, len(found))
	head := false
	for name := range found {
		if name == git.HEAD {
			head = true
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	if head {
		names = append(names, git.HEAD)
	}
	return names
}
