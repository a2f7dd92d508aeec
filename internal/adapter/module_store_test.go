package adapter

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	m "github.com/jdev-tools/jdex/internal/model"
)

func sampleModules() []m.Module {
	return []m.Module{
		{
			Name: "app",
			Entries: []m.Entry{
				m.ModuleEntry{Name: "core-util", Scope: m.ScopeCompile},
				m.LibraryEntry{
					Path:       "$REPO$/log4j.jar",
					SourcePath: "$REPO$/log4j-sources.jar",
					Version:    "1.2.17",
					Scope:      m.ScopeCompile,
				},
				m.FileEntry{Path: "$ROOT$/notes.txt", Scope: m.ScopeTest},
			},
		},
		{Name: "core-util"},
	}
}

func TestModuleStore_SaveWritesOneFilePerModule(t *testing.T) {
	dir := t.TempDir()
	store := NewModuleStore()

	require.NoError(t, store.Save(m.Path(dir), sampleModules()))

	for _, name := range []string{"app.jml", "core-util.jml", "modules.yaml"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, "expected %s to exist", name)
		assert.True(t, info.Mode().IsRegular())
	}
}

func TestModuleStore_ModuleFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewModuleStore()

	require.NoError(t, store.Save(m.Path(dir), sampleModules()))

	data, err := os.ReadFile(filepath.Join(dir, "app.jml"))
	require.NoError(t, err)

	var doc struct {
		Name         string `xml:"name,attr"`
		Dependencies struct {
			Modules []struct {
				Name  string `xml:"name,attr"`
				Scope string `xml:"scope,attr"`
			} `xml:"moduleEntry"`
			Libraries []struct {
				Path    string `xml:"path,attr"`
				Sources string `xml:"sources,attr"`
				Docs    string `xml:"docs,attr"`
				Version string `xml:"version,attr"`
			} `xml:"libraryEntry"`
			Files []struct {
				Path  string `xml:"path,attr"`
				Scope string `xml:"scope,attr"`
			} `xml:"fileEntry"`
		} `xml:"dependencies"`
	}
	require.NoError(t, xml.Unmarshal(data, &doc))

	assert.Equal(t, "app", doc.Name)

	require.Len(t, doc.Dependencies.Modules, 1)
	assert.Equal(t, "core-util", doc.Dependencies.Modules[0].Name)
	assert.Equal(t, "COMPILE", doc.Dependencies.Modules[0].Scope)

	require.Len(t, doc.Dependencies.Libraries, 1)
	assert.Equal(t, "$REPO$/log4j.jar", doc.Dependencies.Libraries[0].Path)
	assert.Equal(t, "$REPO$/log4j-sources.jar", doc.Dependencies.Libraries[0].Sources)
	assert.Empty(t, doc.Dependencies.Libraries[0].Docs)
	assert.Equal(t, "1.2.17", doc.Dependencies.Libraries[0].Version)

	require.Len(t, doc.Dependencies.Files, 1)
	assert.Equal(t, "$ROOT$/notes.txt", doc.Dependencies.Files[0].Path)
	assert.Equal(t, "TEST", doc.Dependencies.Files[0].Scope)
}

func TestModuleStore_ManifestCounts(t *testing.T) {
	dir := t.TempDir()
	store := NewModuleStore()

	require.NoError(t, store.Save(m.Path(dir), sampleModules()))

	data, err := os.ReadFile(filepath.Join(dir, "modules.yaml"))
	require.NoError(t, err)

	var records []struct {
		Name    string `yaml:"name"`
		Entries struct {
			Modules   int `yaml:"modules"`
			Libraries int `yaml:"libraries"`
			Files     int `yaml:"files"`
		} `yaml:"entries"`
	}
	require.NoError(t, yaml.Unmarshal(data, &records))

	require.Len(t, records, 2)
	assert.Equal(t, "app", records[0].Name)
	assert.Equal(t, 1, records[0].Entries.Modules)
	assert.Equal(t, 1, records[0].Entries.Libraries)
	assert.Equal(t, 1, records[0].Entries.Files)
	assert.Equal(t, "core-util", records[1].Name)
	assert.Equal(t, 0, records[1].Entries.Modules)
}

func TestModuleStore_SaveCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	store := NewModuleStore()

	require.NoError(t, store.Save(m.Path(dir), sampleModules()))

	_, err := os.Stat(filepath.Join(dir, "modules.yaml"))
	assert.NoError(t, err)
}
