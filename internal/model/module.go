package model

// Module is the export record for one node: its final unique name plus
// its ordered, deduplicated dependency entries.
type Module struct {
	Name    string
	Entries []Entry
}

// EntryCounts summarizes a module's entries by kind.
type EntryCounts struct {
	Modules   int
	Libraries int
	Files     int
}

// Total is the number of entries across all kinds.
func (c EntryCounts) Total() int {
	return c.Modules + c.Libraries + c.Files
}

// Counts tallies the module's entries by kind.
func (m Module) Counts() EntryCounts {
	var counts EntryCounts

	for _, entry := range m.Entries {
		switch entry.(type) {
		case ModuleEntry:
			counts.Modules++
		case LibraryEntry:
			counts.Libraries++
		case FileEntry:
			counts.Files++
		}
	}

	return counts
}
