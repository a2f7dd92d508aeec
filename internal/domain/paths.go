// Package domain implements the dependency resolution core: path
// resolution against anchor tables, per-scope set algebra, declaration
// classification, entry aggregation and tree-wide name deduplication.
package domain

import (
	"path/filepath"
	"strings"

	m "github.com/jdev-tools/jdex/internal/model"
)

// ResolvePath rewrites an absolute file path into an anchor-relative
// symbolic path like "$MODULE_DIR$/lib/a.jar". The anchor whose directory
// is the longest prefix of the path wins; on equal prefix length the
// first registered anchor wins. A path outside every anchor comes back
// unchanged, which is always a valid result, never an error.
func ResolvePath(anchors m.AnchorTable, file m.Path) m.SymbolicPath {
	path := normalize(file)

	best := -1
	bestLen := -1

	for i, anchor := range anchors {
		dir := normalize(anchor.Dir)
		if path != dir && !strings.HasPrefix(path, dir+"/") {
			continue
		}

		if len(dir) > bestLen {
			best = i
			bestLen = len(dir)
		}
	}

	if best < 0 {
		return m.SymbolicPath(path)
	}

	rel := strings.TrimPrefix(path[bestLen:], "/")
	symbolic := "$" + anchors[best].Name + "$"

	if rel != "" {
		symbolic += "/" + rel
	}

	return m.SymbolicPath(symbolic)
}

// normalize cleans a path and flips it to forward slashes so prefix
// comparison and the emitted symbolic form are platform independent.
func normalize(path m.Path) string {
	return filepath.ToSlash(filepath.Clean(string(path)))
}
