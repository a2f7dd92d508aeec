package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	m "github.com/jdev-tools/jdex/internal/model"
)

// ProjectLoader loads a declared build project tree from disk.
type ProjectLoader interface {
	Load(path m.Path) (*m.Project, error)
}

// HCLProjectLoader reads project trees declared in HCL. Path expressions
// in the file are evaluated against the variables project_dir (directory
// of the project file) and home (the user's home directory).
type HCLProjectLoader struct{}

// NewHCLProjectLoader constructs an HCLProjectLoader.
func NewHCLProjectLoader() *HCLProjectLoader {
	return &HCLProjectLoader{}
}

// Load parses the project file and builds the node tree in two passes:
// first the nodes themselves, then the per-scope declarations, so that
// module references can point anywhere in the tree regardless of
// declaration order. Declarations are interned per load: the same module
// path, library or file always yields the same declaration object, which
// is what lets subtract collections participate in the reference-identity
// set algebra.
func (l *HCLProjectLoader) Load(path m.Path) (*m.Project, error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCLFile(string(path))
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %s: %w", path, diags)
	}

	absPath, err := filepath.Abs(string(path))
	if err != nil {
		return nil, fmt.Errorf("locate %s: %w", path, err)
	}

	var decoded projectFile
	if diags := gohcl.DecodeBody(file.Body, evalContext(filepath.Dir(absPath)), &decoded); diags.HasErrors() {
		return nil, fmt.Errorf("decode %s: %w", path, diags)
	}

	if decoded.Project == nil {
		return nil, fmt.Errorf("%s: missing project block", path)
	}

	return buildProject(decoded.Project)
}

func evalContext(projectDir string) *hcl.EvalContext {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"project_dir": cty.StringVal(projectDir),
			"home":        cty.StringVal(home),
		},
	}
}

// pendingScopes pairs a built node with the scope blocks still to be
// resolved once the whole tree exists.
type pendingScopes struct {
	node   *m.Node
	scopes []*scopeBlock
}

func buildProject(block *projectBlock) (*m.Project, error) {
	root := &m.Node{
		Name:            block.Name,
		Anchors:         anchorsOf(nil, block.Anchors),
		Offline:         block.Offline,
		DownloadSources: block.DownloadSources,
		DownloadDocs:    block.DownloadDocs,
	}

	pending := []pendingScopes{{node: root, scopes: block.Scopes}}

	if err := setOutputs(root, block.Outputs); err != nil {
		return nil, err
	}

	// Pass 1: the tree itself. Refs by path and flag inheritance need the
	// whole tree before any scope declaration can be resolved.
	var build func(parent *m.Node, blocks []*moduleBlock) error
	build = func(parent *m.Node, blocks []*moduleBlock) error {
		for _, mb := range blocks {
			node := &m.Node{
				Name:            mb.Name,
				Anchors:         anchorsOf(parent.Anchors, mb.Anchors),
				Offline:         root.Offline,
				DownloadSources: root.DownloadSources,
				DownloadDocs:    root.DownloadDocs,
			}

			if err := setOutputs(node, mb.Outputs); err != nil {
				return err
			}

			parent.AddChild(node)
			pending = append(pending, pendingScopes{node: node, scopes: mb.Scopes})

			if err := build(node, mb.Modules); err != nil {
				return err
			}
		}

		return nil
	}

	if err := build(root, block.Modules); err != nil {
		return nil, err
	}

	// Pass 2: scope declarations, against the now-stable tree.
	resolver := newDeclarationResolver(root)

	for _, p := range pending {
		if err := resolver.resolveScopes(p.node, p.scopes); err != nil {
			return nil, err
		}
	}

	return &m.Project{Root: root}, nil
}

// anchorsOf combines the inherited anchor table with the module's own
// anchor blocks. Inherited anchors stay first so the first-registered
// tie-break keeps favoring the outermost registration.
func anchorsOf(inherited m.AnchorTable, blocks []*anchorBlock) m.AnchorTable {
	if len(blocks) == 0 {
		return inherited
	}

	anchors := make(m.AnchorTable, 0, len(inherited)+len(blocks))
	anchors = append(anchors, inherited...)

	for _, ab := range blocks {
		anchors = append(anchors, m.Anchor{Name: ab.Name, Dir: m.Path(ab.Dir)})
	}

	return anchors
}

func setOutputs(node *m.Node, blocks []*outputBlock) error {
	for _, ob := range blocks {
		scope, err := m.ParseScope(ob.Scope)
		if err != nil {
			return fmt.Errorf("output %s: %w", ob.Dir, err)
		}

		node.Outputs = append(node.Outputs, m.DirectoryOutput{
			Dir:   m.Path(ob.Dir),
			Scope: scope,
		})
	}

	return nil
}

// declarationResolver turns scope blocks into interned declarations.
type declarationResolver struct {
	index     map[string]*m.Node
	projects  map[*m.Node]*m.ProjectDependency
	artifacts map[libraryKey]*m.ArtifactDependency
	files     map[m.Path]*m.FileDependency
}

type libraryKey struct {
	file, sources, docs, version string
}

// newDeclarationResolver indexes every node by its slash-joined path of
// declared names below the root; the root itself is addressable by its
// own name. When two nodes share a path the first declared one wins.
func newDeclarationResolver(root *m.Node) *declarationResolver {
	r := &declarationResolver{
		index:     make(map[string]*m.Node),
		projects:  make(map[*m.Node]*m.ProjectDependency),
		artifacts: make(map[libraryKey]*m.ArtifactDependency),
		files:     make(map[m.Path]*m.FileDependency),
	}

	r.index[root.Name] = root

	var walk func(prefix string, n *m.Node)
	walk = func(prefix string, n *m.Node) {
		for _, child := range n.Children {
			path := child.Name
			if prefix != "" {
				path = prefix + "/" + child.Name
			}

			if _, taken := r.index[path]; !taken {
				r.index[path] = child
			}

			walk(path, child)
		}
	}

	walk("", root)

	return r
}

func (r *declarationResolver) resolveScopes(node *m.Node, blocks []*scopeBlock) error {
	for _, sb := range blocks {
		scope, err := m.ParseScope(sb.Name)
		if err != nil {
			return fmt.Errorf("module %s: %w", node.Name, err)
		}

		set := node.Scopes.Set(scope)

		set.Add, err = r.declarations(sb.Modules, sb.Libraries, sb.Files)
		if err != nil {
			return fmt.Errorf("module %s, scope %s: %w", node.Name, sb.Name, err)
		}

		if sb.Subtract != nil {
			set.Subtract, err = r.declarations(sb.Subtract.Modules, sb.Subtract.Libraries, sb.Subtract.Files)
			if err != nil {
				return fmt.Errorf("module %s, scope %s subtract: %w", node.Name, sb.Name, err)
			}
		}
	}

	return nil
}

func (r *declarationResolver) declarations(modules []string, libraries []*libraryBlock, files []string) ([]m.Dependency, error) {
	deps := make([]m.Dependency, 0, len(modules)+len(libraries)+len(files))

	for _, ref := range modules {
		target, ok := r.index[ref]
		if !ok {
			return nil, fmt.Errorf("unknown module reference %q", ref)
		}

		deps = append(deps, r.projectDep(target))
	}

	for _, lb := range libraries {
		deps = append(deps, r.artifactDep(lb))
	}

	for _, f := range files {
		deps = append(deps, r.fileDep(m.Path(f)))
	}

	return deps, nil
}

func (r *declarationResolver) projectDep(target *m.Node) *m.ProjectDependency {
	if dep, ok := r.projects[target]; ok {
		return dep
	}

	dep := &m.ProjectDependency{Target: target}
	r.projects[target] = dep

	return dep
}

func (r *declarationResolver) artifactDep(lb *libraryBlock) *m.ArtifactDependency {
	key := libraryKey{file: lb.File, sources: lb.Sources, docs: lb.Docs, version: lb.Version}

	if dep, ok := r.artifacts[key]; ok {
		return dep
	}

	dep := &m.ArtifactDependency{
		File:       m.Path(lb.File),
		SourceFile: m.Path(lb.Sources),
		DocFile:    m.Path(lb.Docs),
		Version:    lb.Version,
	}
	r.artifacts[key] = dep

	return dep
}

func (r *declarationResolver) fileDep(path m.Path) *m.FileDependency {
	if dep, ok := r.files[path]; ok {
		return dep
	}

	dep := &m.FileDependency{File: path}
	r.files[path] = dep

	return dep
}
