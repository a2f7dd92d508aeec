package domain

import (
	m "github.com/jdev-tools/jdex/internal/model"
)

// ClassifyScope converts one scope's effective declaration set into typed
// entries, preserving declaration order. It reads target node names
// directly, so the name deduper must have finished over the whole tree
// before any classification runs.
//
// Offline mode skips externally resolved artifacts entirely; project
// references and local files are unaffected by it.
func ClassifyScope(node *m.Node, scope m.Scope, deps []m.Dependency) []m.Entry {
	entries := make([]m.Entry, 0, len(deps))

	for _, dep := range deps {
		switch d := dep.(type) {
		case *m.ProjectDependency:
			entries = append(entries, m.ModuleEntry{
				Name:  d.Target.Name,
				Scope: scope,
			})

		case *m.ArtifactDependency:
			if node.Offline {
				continue
			}

			entry := m.LibraryEntry{
				Path:    ResolvePath(node.Anchors, d.File),
				Version: d.Version,
				Scope:   scope,
			}

			if node.DownloadSources && d.SourceFile != "" {
				entry.SourcePath = ResolvePath(node.Anchors, d.SourceFile)
			}

			if node.DownloadDocs && d.DocFile != "" {
				entry.DocPath = ResolvePath(node.Anchors, d.DocFile)
			}

			entries = append(entries, entry)

		case *m.FileDependency:
			// Local files carry no version identity and no companions.
			entries = append(entries, m.LibraryEntry{
				Path:  ResolvePath(node.Anchors, d.File),
				Scope: scope,
			})
		}
	}

	return entries
}
