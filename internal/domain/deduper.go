package domain

import (
	"strings"

	m "github.com/jdev-tools/jdex/internal/model"
)

// DedupeNames rewrites node names in place until no two nodes in the
// tree share one. Conflicting nodes are disambiguated by prefixing
// ancestor names, one more level per pass: "util" under "core" becomes
// "core-util", and if that still collides, "app-core-util" and so on
// until ancestry is exhausted.
//
// The pass iterates to a fixed point: renames can introduce fresh
// collisions, so groups are rebuilt after every pass. The root never
// has ancestors to prefix, so its name is never touched. Collisions
// that survive exhausted ancestry are left in place; callers that need
// strict uniqueness check Project.DuplicateNames afterwards.
func DedupeNames(root *m.Node) {
	if root == nil {
		return
	}

	project := &m.Project{Root: root}
	nodes := project.Nodes()

	// Prefixes build on the names the nodes entered the pass with, so a
	// renamed parent does not leak its prefix into its children.
	base := make(map[*m.Node]string, len(nodes))
	depth := make(map[*m.Node]int, len(nodes))

	for _, node := range nodes {
		base[node] = node.Name
	}

	for {
		counts := make(map[string]int, len(nodes))
		for _, node := range nodes {
			counts[node.Name]++
		}

		progressed := false

		for _, node := range nodes {
			if counts[node.Name] < 2 {
				continue
			}

			if extendPrefix(node, base, depth) {
				progressed = true
			}
		}

		if !progressed {
			return
		}
	}
}

// extendPrefix renames the node with one more ancestor segment than its
// current candidate uses. It reports false when ancestry is exhausted.
func extendPrefix(node *m.Node, base map[*m.Node]string, depth map[*m.Node]int) bool {
	next := depth[node] + 1

	segments := make([]string, 0, next+1)
	ancestor := node

	for i := 0; i < next; i++ {
		ancestor = ancestor.Parent
		if ancestor == nil {
			return false
		}

		segments = append([]string{base[ancestor]}, segments...)
	}

	segments = append(segments, base[node])

	depth[node] = next
	node.Name = strings.Join(segments, "-")

	return true
}
