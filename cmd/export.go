package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jdev-tools/jdex/internal/domain"
	m "github.com/jdev-tools/jdex/internal/model"
)

var exportOfflineFlag bool

// exportCmd represents the export command.
var exportCmd = newExportCmd()

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <project.hcl>",
		Short: "Export IDE module files for a project tree",
		Long: `Export loads the project declaration, makes module names unique,
resolves every node's dependency entries and writes one module file per
node plus a modules.yaml manifest into the output directory.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Export(domain.ExportArgs{
				ProjectFile: m.Path(args[0]),
				Output:      m.Path(outputDirFlag),
				Offline:     exportOfflineFlag,
			})
		},
	}
	cmd.Flags().BoolVar(&exportOfflineFlag, "offline", false, "skip externally resolved library entries")

	return cmd
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
