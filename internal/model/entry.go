package model

// Entry is one resolved dependency entry of a node, ready for
// serialization. Entries are value objects: two entries are the same
// entry exactly when all their fields are equal, so they can be
// deduplicated with plain == through the interface.
type Entry interface {
	EntryScope() Scope
	isEntry()
}

// ModuleEntry points at another module in the exported project by its
// final, deduplicated name.
type ModuleEntry struct {
	Name  string
	Scope Scope
}

// LibraryEntry points at a library file, optionally carrying source and
// documentation companions and the artifact's version identity. Local
// file dependencies and directory outputs also surface as library
// entries, with only Path populated.
type LibraryEntry struct {
	Path       SymbolicPath
	SourcePath SymbolicPath
	DocPath    SymbolicPath
	Version    string
	Scope      Scope
}

// FileEntry points at a single file by symbolic path. The classifier does
// not emit it, but it is part of the entry taxonomy the exporter accepts.
type FileEntry struct {
	Path  SymbolicPath
	Scope Scope
}

// EntryScope returns the visibility scope the entry was classified under.
func (e ModuleEntry) EntryScope() Scope { return e.Scope }

// EntryScope returns the visibility scope the entry was classified under.
func (e LibraryEntry) EntryScope() Scope { return e.Scope }

// EntryScope returns the visibility scope the entry was classified under.
func (e FileEntry) EntryScope() Scope { return e.Scope }

func (ModuleEntry) isEntry()  {}
func (LibraryEntry) isEntry() {}
func (FileEntry) isEntry()    {}
