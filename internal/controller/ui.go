// Package controller provides output adapters for displaying resolution
// results.
package controller

import (
	"github.com/spf13/cobra"

	m "github.com/jdev-tools/jdex/internal/model"
)

// UI defines the interface for displaying resolved modules and export
// results. Implementations write through the cobra command's writers so
// tests can capture output.
type UI interface {
	// DisplayModules prints a per-module table of entry counts.
	DisplayModules(modules []m.Module) error
	// DisplayTree prints the node tree with final names, flagging any
	// residual duplicates.
	DisplayTree(project *m.Project, duplicates []string) error
	// DisplayExportSummary prints where the export landed and warns about
	// residual duplicate names.
	DisplayExportSummary(dir m.Path, modules []m.Module, duplicates []string)
}

// NewUI creates the UI used by the CLI commands.
func NewUI(cmd *cobra.Command) UI {
	return NewSimpleUI(cmd)
}
