package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jdev-tools/jdex/internal/domain"
	m "github.com/jdev-tools/jdex/internal/model"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <project.hcl>",
		Short: "List modules and their resolved entry counts",
		Long: `List loads the project declaration, resolves it in memory and prints
one table row per module with its dependency entry counts by kind.
Nothing is written to disk.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.List(domain.ListArgs{
				ProjectFile: m.Path(args[0]),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
