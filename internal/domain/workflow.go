package domain

import (
	"fmt"

	"github.com/jdev-tools/jdex/internal/adapter"
	"github.com/jdev-tools/jdex/internal/controller"
	m "github.com/jdev-tools/jdex/internal/model"
)

// ExportArgs configures an export run.
type ExportArgs struct {
	ProjectFile m.Path
	Output      m.Path
	// Offline forces offline classification on every node regardless of
	// what the project file declares.
	Offline bool
}

// ListArgs configures a list run.
type ListArgs struct {
	ProjectFile m.Path
}

// TreeArgs configures a tree run.
type TreeArgs struct {
	ProjectFile m.Path
}

// Workflow defines the operations the CLI exposes over a project tree.
type Workflow interface {
	Export(args ExportArgs) error
	List(args ListArgs) error
	Tree(args TreeArgs) error
}

type workflow struct {
	loader adapter.ProjectLoader
	fs     adapter.ProjectFSAdapter
	store  adapter.ModuleStore
	ui     controller.UI
}

// NewWorkflow creates a Workflow wired to the provided loader, filesystem
// adapter, module store and UI.
func NewWorkflow(loader adapter.ProjectLoader, fs adapter.ProjectFSAdapter, store adapter.ModuleStore, ui controller.UI) Workflow {
	return &workflow{
		loader: loader,
		fs:     fs,
		store:  store,
		ui:     ui,
	}
}

// Resolve finalizes names across the whole tree and then aggregates
// every node, in that strict order: module entries read target names at
// classification time, so names must be final before any classification
// runs. The returned modules follow tree pre-order.
func Resolve(fs adapter.ProjectFSAdapter, project *m.Project) []m.Module {
	DedupeNames(project.Root)

	aggregator := NewAggregator(fs)
	nodes := project.Nodes()
	modules := make([]m.Module, 0, len(nodes))

	for _, node := range nodes {
		modules = append(modules, m.Module{
			Name:    node.Name,
			Entries: aggregator.Aggregate(node),
		})
	}

	return modules
}

// Export loads the project, resolves it and persists one module file per
// node plus the manifest. Residual name collisions never abort the
// export; they are surfaced through the UI summary.
func (w *workflow) Export(args ExportArgs) error {
	project, err := w.loader.Load(args.ProjectFile)
	if err != nil {
		return fmt.Errorf("load project: %w", err)
	}

	if args.Offline {
		forceOffline(project)
	}

	modules := Resolve(w.fs, project)

	if err := w.store.Save(args.Output, modules); err != nil {
		return fmt.Errorf("save modules: %w", err)
	}

	w.ui.DisplayExportSummary(args.Output, modules, project.DuplicateNames())

	return nil
}

// List loads the project, resolves it in memory and prints the per-module
// entry counts.
func (w *workflow) List(args ListArgs) error {
	project, err := w.loader.Load(args.ProjectFile)
	if err != nil {
		return fmt.Errorf("load project: %w", err)
	}

	return w.ui.DisplayModules(Resolve(w.fs, project))
}

// Tree loads the project, finalizes names and prints the node tree,
// flagging any names the deduper could not make unique.
func (w *workflow) Tree(args TreeArgs) error {
	project, err := w.loader.Load(args.ProjectFile)
	if err != nil {
		return fmt.Errorf("load project: %w", err)
	}

	DedupeNames(project.Root)

	return w.ui.DisplayTree(project, project.DuplicateNames())
}

func forceOffline(project *m.Project) {
	for _, node := range project.Nodes() {
		node.Offline = true
	}
}
