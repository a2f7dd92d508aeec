package domain

import (
	"bytes"
	"encoding/xml"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdev-tools/jdex/internal/adapter"
	"github.com/jdev-tools/jdex/internal/controller"
	m "github.com/jdev-tools/jdex/internal/model"
)

const workflowProjectHCL = `
project "demo" {
  download_sources = true

  anchor "PROJECT" { dir = project_dir }

  module "core" {
    output {
      dir   = "${project_dir}/core/out"
      scope = "runtime"
    }
    module "util" {}
  }

  module "app" {
    scope "compile" {
      modules = ["core/util"]
      library {
        file    = "${project_dir}/repo/log4j.jar"
        sources = "${project_dir}/repo/log4j-sources.jar"
        version = "1.2.17"
      }
    }
    module "util" {}
  }
}
`

func writeWorkflowProject(t *testing.T) (m.Path, string) {
	t.Helper()

	dir := t.TempDir()
	projectFile := filepath.Join(dir, "jdex.hcl")

	require.NoError(t, os.WriteFile(projectFile, []byte(workflowProjectHCL), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "core", "out"), 0o755))

	return m.Path(projectFile), dir
}

func newTestWorkflow(t *testing.T) (Workflow, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)

	wf := NewWorkflow(
		adapter.NewHCLProjectLoader(),
		adapter.NewLocalProjectFSAdapter(),
		adapter.NewModuleStore(),
		controller.NewUI(cmd),
	)

	return wf, out
}

func TestWorkflow_ExportWritesModuleFilesWithFinalNames(t *testing.T) {
	projectFile, dir := writeWorkflowProject(t)
	wf, out := newTestWorkflow(t)

	outputDir := filepath.Join(dir, "exported")

	err := wf.Export(ExportArgs{
		ProjectFile: projectFile,
		Output:      m.Path(outputDir),
	})
	require.NoError(t, err)

	// The two "util" nodes must have been renamed before classification.
	for _, name := range []string{"demo", "core", "app", "core-util", "app-util"} {
		_, err := os.Stat(filepath.Join(outputDir, name+".jml"))
		assert.NoError(t, err, "expected module file for %s", name)
	}

	data, err := os.ReadFile(filepath.Join(outputDir, "app.jml"))
	require.NoError(t, err)

	var doc struct {
		Name         string `xml:"name,attr"`
		Dependencies struct {
			Modules []struct {
				Name string `xml:"name,attr"`
			} `xml:"moduleEntry"`
			Libraries []struct {
				Path string `xml:"path,attr"`
			} `xml:"libraryEntry"`
		} `xml:"dependencies"`
	}
	require.NoError(t, xml.Unmarshal(data, &doc))

	assert.Equal(t, "app", doc.Name)
	require.Len(t, doc.Dependencies.Modules, 1)
	assert.Equal(t, "core-util", doc.Dependencies.Modules[0].Name, "module entries must carry deduplicated names")
	require.Len(t, doc.Dependencies.Libraries, 1)
	assert.Equal(t, "$PROJECT$/repo/log4j.jar", doc.Dependencies.Libraries[0].Path)

	_, err = os.Stat(filepath.Join(outputDir, "modules.yaml"))
	assert.NoError(t, err)

	assert.Contains(t, out.String(), "Exported 5 module(s)")
}

func TestWorkflow_ExportOfflineDropsLibraries(t *testing.T) {
	projectFile, dir := writeWorkflowProject(t)
	wf, _ := newTestWorkflow(t)

	outputDir := filepath.Join(dir, "exported-offline")

	err := wf.Export(ExportArgs{
		ProjectFile: projectFile,
		Output:      m.Path(outputDir),
		Offline:     true,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(outputDir, "app.jml"))
	require.NoError(t, err)

	assert.NotContains(t, string(data), "libraryEntry")
	assert.Contains(t, string(data), "moduleEntry", "offline must not drop module references")
}

func TestWorkflow_ExportIncludesExistingOutputDirOnly(t *testing.T) {
	projectFile, dir := writeWorkflowProject(t)
	wf, _ := newTestWorkflow(t)

	outputDir := filepath.Join(dir, "exported")
	require.NoError(t, wf.Export(ExportArgs{ProjectFile: projectFile, Output: m.Path(outputDir)}))

	data, err := os.ReadFile(filepath.Join(outputDir, "core.jml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "$PROJECT$/core/out")
}

func TestWorkflow_ListPrintsEntryCounts(t *testing.T) {
	projectFile, _ := writeWorkflowProject(t)
	wf, out := newTestWorkflow(t)

	require.NoError(t, wf.List(ListArgs{ProjectFile: projectFile}))

	assert.Contains(t, out.String(), "core-util")
	assert.Contains(t, out.String(), "app-util")
	assert.Contains(t, out.String(), "MODULE")
}

func TestWorkflow_TreeFlagsNothingOnCleanProject(t *testing.T) {
	projectFile, _ := writeWorkflowProject(t)
	wf, out := newTestWorkflow(t)

	require.NoError(t, wf.Tree(TreeArgs{ProjectFile: projectFile}))

	assert.Contains(t, out.String(), "demo")
	assert.Contains(t, out.String(), "  core")
	assert.NotContains(t, out.String(), "duplicate")
}

func TestWorkflow_LoadErrorIsWrapped(t *testing.T) {
	wf, _ := newTestWorkflow(t)

	err := wf.List(ListArgs{ProjectFile: "does-not-exist.hcl"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load project")
}
