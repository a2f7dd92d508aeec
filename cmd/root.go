// Package cmd provides the root command and CLI setup for jdex.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jdev-tools/jdex/internal/adapter"
	"github.com/jdev-tools/jdex/internal/controller"
	"github.com/jdev-tools/jdex/internal/domain"
)

var loader adapter.ProjectLoader
var fsAdapter adapter.ProjectFSAdapter
var moduleStore adapter.ModuleStore
var ui controller.UI
var workflow domain.Workflow

func init() {
	ui = controller.NewUI(rootCmd)
	loader = adapter.NewHCLProjectLoader()
	fsAdapter = adapter.NewLocalProjectFSAdapter()
	moduleStore = adapter.NewModuleStore()
	workflow = domain.NewWorkflow(loader, fsAdapter, moduleStore, ui)
}

var outputDirFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jdex",
		Short: "IDE module exporter for build project trees",
		Long: `Jdex turns a declared build project tree into IDE module files.

It resolves each node's per-scope dependency declarations into ordered,
deduplicated entries, makes every module name unique across the tree,
and writes one module file per node plus a manifest.

A project tree is declared in a single HCL file; see the examples
directory for the format.`,
	}
	cmd.PersistentFlags().StringVarP(&outputDirFlag, "output", "o", ".jdex-out", "directory module files are written to")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
