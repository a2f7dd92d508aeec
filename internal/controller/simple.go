package controller

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/jdev-tools/jdex/internal/model"
)

var (
	summaryStyle = lipgloss.NewStyle().Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// SimpleUI implements UI using the cobra Command's writers.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayModules prints one table row per module with entry counts by
// kind and a totals footer.
func (s *SimpleUI) DisplayModules(modules []m.Module) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Module", "Modules", "Libraries", "Files", "Total"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	var total m.EntryCounts

	for _, module := range modules {
		counts := module.Counts()
		table.Append([]string{
			module.Name,
			fmt.Sprintf("%d", counts.Modules),
			fmt.Sprintf("%d", counts.Libraries),
			fmt.Sprintf("%d", counts.Files),
			fmt.Sprintf("%d", counts.Total()),
		})

		total.Modules += counts.Modules
		total.Libraries += counts.Libraries
		total.Files += counts.Files
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Modules %d", len(modules)),
		fmt.Sprintf("%d", total.Modules),
		fmt.Sprintf("%d", total.Libraries),
		fmt.Sprintf("%d", total.Files),
		fmt.Sprintf("%d", total.Total()),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayTree prints the node hierarchy with final names; names the
// deduper left duplicated are marked.
func (s *SimpleUI) DisplayTree(project *m.Project, duplicates []string) error {
	dup := make(map[string]bool, len(duplicates))
	for _, name := range duplicates {
		dup[name] = true
	}

	var print func(node *m.Node, depth int)
	print = func(node *m.Node, depth int) {
		line := strings.Repeat("  ", depth) + node.Name
		if dup[node.Name] {
			line += " " + warnStyle.Render("(duplicate)")
		}

		s.printf("%s\n", line)

		for _, child := range node.Children {
			print(child, depth+1)
		}
	}

	if project.Root != nil {
		print(project.Root, 0)
	}

	if len(duplicates) > 0 {
		s.printf("\n%s\n", warnStyle.Render(fmt.Sprintf("%d name(s) could not be disambiguated", len(duplicates))))
	}

	return nil
}

// DisplayExportSummary reports the export destination and any residual
// duplicate names.
func (s *SimpleUI) DisplayExportSummary(dir m.Path, modules []m.Module, duplicates []string) {
	s.printf("%s\n", summaryStyle.Render(fmt.Sprintf("Exported %d module(s) to %s", len(modules), dir)))

	if len(duplicates) > 0 {
		s.printf("%s\n", warnStyle.Render(fmt.Sprintf("warning: duplicate module names remain: %s", strings.Join(duplicates, ", "))))
	}
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
