package model

// SymbolicPath is an anchor-relative path like "$MODULE_DIR$/lib/a.jar",
// or a plain absolute path when no anchor covers the file.
type SymbolicPath string

// Anchor names an absolute directory that symbolic paths can be expressed
// against.
type Anchor struct {
	Name string
	Dir  Path
}

// AnchorTable is an ordered anchor registry, immutable once the tree is
// built. Registration order matters: when two anchors match a path with
// equally long prefixes, the first registered one wins.
type AnchorTable []Anchor
