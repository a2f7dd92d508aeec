package controller

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/jdev-tools/jdex/internal/model"
)

func newCaptureUI() (*SimpleUI, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)

	return NewSimpleUI(cmd), out
}

func TestSimpleUI_DisplayModulesRendersCounts(t *testing.T) {
	ui, out := newCaptureUI()

	err := ui.DisplayModules([]m.Module{
		{
			Name: "app",
			Entries: []m.Entry{
				m.ModuleEntry{Name: "core", Scope: m.ScopeCompile},
				m.LibraryEntry{Path: "$REPO$/a.jar", Scope: m.ScopeCompile},
				m.LibraryEntry{Path: "$REPO$/b.jar", Scope: m.ScopeTest},
			},
		},
		{Name: "core"},
	})
	require.NoError(t, err)

	rendered := out.String()
	assert.Contains(t, rendered, "app")
	assert.Contains(t, rendered, "MODULE")
	assert.Contains(t, rendered, "TOTAL MODULES 2")
}

func TestSimpleUI_DisplayTreeIndentsChildren(t *testing.T) {
	ui, out := newCaptureUI()

	util := &m.Node{Name: "core-util"}
	core := &m.Node{Name: "core"}
	root := &m.Node{Name: "demo"}
	root.AddChild(core)
	core.AddChild(util)

	err := ui.DisplayTree(&m.Project{Root: root}, nil)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "demo\n")
	assert.Contains(t, out.String(), "  core\n")
	assert.Contains(t, out.String(), "    core-util")
}

func TestSimpleUI_DisplayTreeFlagsDuplicates(t *testing.T) {
	ui, out := newCaptureUI()

	root := &m.Node{Name: "demo"}
	root.AddChild(&m.Node{Name: "util"})
	root.AddChild(&m.Node{Name: "util"})

	err := ui.DisplayTree(&m.Project{Root: root}, []string{"util"})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "(duplicate)")
	assert.Contains(t, out.String(), "could not be disambiguated")
}

func TestSimpleUI_DisplayExportSummaryWarnsOnDuplicates(t *testing.T) {
	ui, out := newCaptureUI()

	ui.DisplayExportSummary("/tmp/out", []m.Module{{Name: "app"}}, []string{"util"})

	assert.Contains(t, out.String(), "Exported 1 module(s) to /tmp/out")
	assert.Contains(t, out.String(), "duplicate module names remain: util")
}
