package model

// Dependency is a raw dependency declaration attached to a scope's
// add or subtract collection. Declarations compare by reference: two
// declarations are the same dependency only when they are the same
// object, never because their paths happen to match. The project loader
// interns declarations so that subtract collections can hit the same
// objects the add collections hold.
type Dependency interface {
	isDependency()
}

// ProjectDependency references another node in the same tree.
type ProjectDependency struct {
	Target *Node
}

// ArtifactDependency references an externally resolved artifact: the
// primary file plus optional source and documentation companions. The
// resolution itself happened upstream; every file is assumed concrete.
type ArtifactDependency struct {
	File       Path
	SourceFile Path
	DocFile    Path
	Version    string
}

// FileDependency references a plain local file that is neither a project
// nor an externally resolved artifact.
type FileDependency struct {
	File Path
}

func (*ProjectDependency) isDependency()  {}
func (*ArtifactDependency) isDependency() {}
func (*FileDependency) isDependency()     {}
