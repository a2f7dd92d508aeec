package adapter

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	m "github.com/jdev-tools/jdex/internal/model"
)

const (
	moduleFileExt    = ".jml"
	manifestFileName = "modules.yaml"
	storeDirPerm     = 0o755
	storeFilePerm    = 0o644
)

// ModuleStore persists resolved modules for the IDE importer: one XML
// module file per node plus a YAML manifest summarizing the run.
type ModuleStore interface {
	Save(dir m.Path, modules []m.Module) error
}

type moduleStore struct{}

// NewModuleStore constructs a ModuleStore implementation backed by the
// local filesystem.
func NewModuleStore() ModuleStore {
	return &moduleStore{}
}

// Save writes every module file concurrently, then the manifest. Module
// files are independent of each other, so write order does not matter.
func (s *moduleStore) Save(dir m.Path, modules []m.Module) error {
	if err := os.MkdirAll(string(dir), storeDirPerm); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	var g errgroup.Group

	for _, module := range modules {
		module := module
		g.Go(func() error {
			return s.writeModuleFile(dir, module)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return s.writeManifest(dir, modules)
}

func (s *moduleStore) writeModuleFile(dir m.Path, module m.Module) error {
	doc := xmlModule{
		Name:         module.Name,
		Dependencies: xmlDependencies{Entries: xmlEntries(module.Entries)},
	}

	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal module %s: %w", module.Name, err)
	}

	data = append([]byte(xml.Header), data...)
	data = append(data, '\n')

	path := filepath.Join(string(dir), module.Name+moduleFileExt)
	if err := os.WriteFile(path, data, storeFilePerm); err != nil {
		return fmt.Errorf("write module %s: %w", module.Name, err)
	}

	return nil
}

func (s *moduleStore) writeManifest(dir m.Path, modules []m.Module) error {
	records := make([]manifestRecord, 0, len(modules))

	for _, module := range modules {
		counts := module.Counts()
		records = append(records, manifestRecord{
			Name: module.Name,
			Entries: manifestCounts{
				Modules:   counts.Modules,
				Libraries: counts.Libraries,
				Files:     counts.Files,
			},
		})
	}

	data, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}

	path := filepath.Join(string(dir), manifestFileName)
	if err := os.WriteFile(path, data, storeFilePerm); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	return nil
}

type xmlModule struct {
	XMLName      xml.Name        `xml:"module"`
	Name         string          `xml:"name,attr"`
	Dependencies xmlDependencies `xml:"dependencies"`
}

type xmlDependencies struct {
	Entries []xmlEntry `xml:",any"`
}

// xmlEntry is the on-disk shape shared by all three entry kinds; the
// element name carries the kind.
type xmlEntry struct {
	XMLName xml.Name
	Name    string `xml:"name,attr,omitempty"`
	Path    string `xml:"path,attr,omitempty"`
	Sources string `xml:"sources,attr,omitempty"`
	Docs    string `xml:"docs,attr,omitempty"`
	Version string `xml:"version,attr,omitempty"`
	Scope   string `xml:"scope,attr"`
}

func xmlEntries(entries []m.Entry) []xmlEntry {
	out := make([]xmlEntry, 0, len(entries))

	for _, entry := range entries {
		switch e := entry.(type) {
		case m.ModuleEntry:
			out = append(out, xmlEntry{
				XMLName: xml.Name{Local: "moduleEntry"},
				Name:    e.Name,
				Scope:   e.Scope.String(),
			})
		case m.LibraryEntry:
			out = append(out, xmlEntry{
				XMLName: xml.Name{Local: "libraryEntry"},
				Path:    string(e.Path),
				Sources: string(e.SourcePath),
				Docs:    string(e.DocPath),
				Version: e.Version,
				Scope:   e.Scope.String(),
			})
		case m.FileEntry:
			out = append(out, xmlEntry{
				XMLName: xml.Name{Local: "fileEntry"},
				Path:    string(e.Path),
				Scope:   e.Scope.String(),
			})
		}
	}

	return out
}

type manifestRecord struct {
	Name    string         `yaml:"name"`
	Entries manifestCounts `yaml:"entries"`
}

type manifestCounts struct {
	Modules   int `yaml:"modules"`
	Libraries int `yaml:"libraries"`
	Files     int `yaml:"files"`
}
