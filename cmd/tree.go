package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jdev-tools/jdex/internal/domain"
	m "github.com/jdev-tools/jdex/internal/model"
)

// treeCmd represents the tree command.
var treeCmd = newTreeCmd()

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree <project.hcl>",
		Short: "Show the project tree with final module names",
		Long: `Tree loads the project declaration, runs name deduplication and prints
the node hierarchy with the final module names. Names that could not be
disambiguated by ancestry are flagged.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Tree(domain.TreeArgs{
				ProjectFile: m.Path(args[0]),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
