package domain

import (
	"github.com/jdev-tools/jdex/internal/adapter"
	m "github.com/jdev-tools/jdex/internal/model"
)

// Aggregator resolves one node's complete entry collection: directory
// outputs first, then every scope in fixed order through the set algebra
// and the classifier, folded into an ordered set.
type Aggregator struct {
	fs adapter.ProjectFSAdapter
}

// NewAggregator constructs an Aggregator backed by the provided
// filesystem adapter, which it consults only to filter directory outputs.
func NewAggregator(fs adapter.ProjectFSAdapter) *Aggregator {
	return &Aggregator{fs: fs}
}

// Aggregate returns the node's ordered, deduplicated dependency entries.
// Directory outputs that are missing or not directories are silently
// dropped. Structural duplicates keep their first occurrence.
func (a *Aggregator) Aggregate(node *m.Node) []m.Entry {
	var entries []m.Entry

	for _, output := range node.Outputs {
		info, err := a.fs.FileInfo(output.Dir)
		if err != nil || !info.IsDir() {
			continue
		}

		entries = append(entries, m.LibraryEntry{
			Path:  ResolvePath(node.Anchors, output.Dir),
			Scope: output.Scope,
		})
	}

	for _, scope := range m.ScopeOrder {
		effective := EffectiveSet(*node.Scopes.Set(scope))
		entries = append(entries, ClassifyScope(node, scope, effective)...)
	}

	return dedupeEntries(entries)
}

// dedupeEntries folds structurally equal entries down to their first
// occurrence, preserving order.
func dedupeEntries(entries []m.Entry) []m.Entry {
	seen := make(map[m.Entry]struct{}, len(entries))
	unique := make([]m.Entry, 0, len(entries))

	for _, entry := range entries {
		if _, ok := seen[entry]; ok {
			continue
		}

		seen[entry] = struct{}{}

		unique = append(unique, entry)
	}

	return unique
}
