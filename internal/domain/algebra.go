package domain

import (
	m "github.com/jdev-tools/jdex/internal/model"
)

// EffectiveSet computes the add-minus-subtract declaration set for one
// scope. Subtraction works by declaration identity, not by path
// equality: a subtract entry removes an add entry only when both hold
// the same declaration object. The result keeps the first-occurrence
// order of the add collection, and an empty add collection yields an
// empty set no matter what subtract holds.
func EffectiveSet(set m.ScopeSet) []m.Dependency {
	if len(set.Add) == 0 {
		return nil
	}

	subtracted := make(map[m.Dependency]struct{}, len(set.Subtract))
	for _, dep := range set.Subtract {
		subtracted[dep] = struct{}{}
	}

	seen := make(map[m.Dependency]struct{}, len(set.Add))
	effective := make([]m.Dependency, 0, len(set.Add))

	for _, dep := range set.Add {
		if _, ok := subtracted[dep]; ok {
			continue
		}

		if _, ok := seen[dep]; ok {
			continue
		}

		seen[dep] = struct{}{}

		effective = append(effective, dep)
	}

	return effective
}
