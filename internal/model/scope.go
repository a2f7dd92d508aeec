// Package model defines the data structures for build project trees and
// resolved dependency entries.
package model

import "fmt"

// Scope is a named dependency visibility tier. Scopes are ordered from
// the narrowest (provided) to the widest (test); the aggregator walks
// them in exactly this order.
type Scope int

const (
	// ScopeProvided covers dependencies supplied by the runtime container.
	ScopeProvided Scope = iota
	// ScopeCompile covers dependencies visible at compile time.
	ScopeCompile
	// ScopeRuntime covers dependencies required only at run time.
	ScopeRuntime
	// ScopeTest covers dependencies visible only to tests.
	ScopeTest

	numScopes
)

// ScopeOrder is the fixed order in which scopes are aggregated.
var ScopeOrder = [numScopes]Scope{ScopeProvided, ScopeCompile, ScopeRuntime, ScopeTest}

func (s Scope) String() string {
	switch s {
	case ScopeProvided:
		return "PROVIDED"
	case ScopeCompile:
		return "COMPILE"
	case ScopeRuntime:
		return "RUNTIME"
	case ScopeTest:
		return "TEST"
	}

	return fmt.Sprintf("Scope(%d)", int(s))
}

// ParseScope maps a lowercase scope label from a project file to a Scope.
func ParseScope(label string) (Scope, error) {
	switch label {
	case "provided":
		return ScopeProvided, nil
	case "compile":
		return ScopeCompile, nil
	case "runtime":
		return ScopeRuntime, nil
	case "test":
		return ScopeTest, nil
	}

	return 0, fmt.Errorf("unknown scope %q (want provided, compile, runtime or test)", label)
}

// ScopeSet is the explicit add/subtract declaration pair for one scope.
// Any "wider scope includes narrower scope" policy is expressed by what
// the project file places into each pair, never derived here.
type ScopeSet struct {
	Add      []Dependency
	Subtract []Dependency
}

// ScopeTable holds one ScopeSet per scope, indexed by Scope. Being a
// fixed-size array, it enforces the closed scope enumeration and the
// aggregation order by construction.
type ScopeTable [numScopes]ScopeSet

// Set returns the mutable add/subtract pair for the given scope.
func (t *ScopeTable) Set(s Scope) *ScopeSet {
	return &t[s]
}
