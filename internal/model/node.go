package model

import "sort"

// Path represents a file system path.
type Path string

// DirectoryOutput is a directory produced by a node's build, exported
// under the scope it was registered with. Outputs that do not exist on
// disk are filtered during aggregation, not treated as errors.
type DirectoryOutput struct {
	Dir   Path
	Scope Scope
}

// Node is a single project in the build tree. Parent links are for
// ancestry lookup only; children are owned by the tree. Name is the
// display name and is rewritten in place by the name deduper, which is
// the only mutation a node sees once the tree is built.
type Node struct {
	Name     string
	Parent   *Node
	Children []*Node

	Scopes  ScopeTable
	Outputs []DirectoryOutput
	Anchors AnchorTable

	Offline         bool
	DownloadSources bool
	DownloadDocs    bool
}

// AddChild appends a child node and sets its parent link.
func (n *Node) AddChild(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// Project is a rooted tree of build nodes, constructed once per
// generation pass.
type Project struct {
	Root *Node
}

// Nodes returns every node in the tree in pre-order: a node always
// precedes its children, siblings keep declaration order.
func (p *Project) Nodes() []*Node {
	var nodes []*Node

	var walk func(n *Node)
	walk = func(n *Node) {
		nodes = append(nodes, n)
		for _, child := range n.Children {
			walk(child)
		}
	}

	if p.Root != nil {
		walk(p.Root)
	}

	return nodes
}

// DuplicateNames reports every name shared by more than one node, sorted.
// A non-empty result after deduplication is the data-quality signal the
// deduper leaves behind when ancestry could not disambiguate.
func (p *Project) DuplicateNames() []string {
	counts := make(map[string]int)
	for _, n := range p.Nodes() {
		counts[n.Name]++
	}

	var duplicates []string

	for name, count := range counts {
		if count > 1 {
			duplicates = append(duplicates, name)
		}
	}

	sort.Strings(duplicates)

	return duplicates
}
