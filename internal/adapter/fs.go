// Package adapter contains infrastructure adapters for the jdex CLI:
// the project-file loader, the filesystem probe and the module store.
package adapter

import (
	"os"

	m "github.com/jdev-tools/jdex/internal/model"
)

// ProjectFSAdapter abstracts the filesystem probe the aggregator uses to
// filter directory outputs, so the resolution core can be tested without
// touching the disk.
type ProjectFSAdapter interface {
	// FileInfo returns metadata for a path so the domain can check
	// existence or distinguish files from directories.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// LocalProjectFSAdapter backs ProjectFSAdapter with the local filesystem.
type LocalProjectFSAdapter struct{}

// NewLocalProjectFSAdapter constructs a LocalProjectFSAdapter ready to be
// wired into the workflow.
func NewLocalProjectFSAdapter() *LocalProjectFSAdapter {
	return &LocalProjectFSAdapter{}
}

// FileInfo stats the path on the local filesystem.
func (*LocalProjectFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}
