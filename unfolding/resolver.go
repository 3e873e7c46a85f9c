// SPDX-License-Identifier: MIT

package unfolding

import (
	"fmt"

	"github.com/katalvlaran/unfold/lattice"
	"github.com/katalvlaran/unfold/structure"
)

// ResolveMappings asks m for the atom mapping of every pure translation in
// vectors and validates that each one is a bijection on {0,…,natoms-1}.
//
// All vectors are checked before returning, so a *MappingResolutionError
// lists every failing translation with its failing atoms. Unresolved
// entries never leave this function.
//
// Errors:
//   - ErrNilInput (nil matcher),
//   - ErrDimensionMismatch when the matcher returns a mapping of the wrong length,
//   - *MappingResolutionError (matches ErrMappingResolutionFailed),
//   - matcher errors, wrapped with the failing cell index.
func ResolveMappings(m structure.Matcher, vectors []lattice.Vector, natoms int) ([]structure.Mapping, error) {
	if m == nil {
		return nil, fmt.Errorf("ResolveMappings: matcher: %w", ErrNilInput)
	}

	mappings := make([]structure.Mapping, len(vectors))
	var failures []MappingFailure
	for c, t := range vectors {
		mapping, _, err := m.ResolveMapping(structure.Identity, t)
		if err != nil {
			return nil, fmt.Errorf("ResolveMappings: t[%d]=%v: %w", c, t, err)
		}
		if len(mapping) != natoms {
			return nil, fmt.Errorf("ResolveMappings: t[%d]=%v: mapping has %d entries, want %d: %w",
				c, t, len(mapping), natoms, ErrDimensionMismatch)
		}
		if bad := invalidAtoms(mapping); len(bad) > 0 {
			failures = append(failures, MappingFailure{Cell: c, Vector: t, Atoms: bad})
			continue
		}
		mappings[c] = mapping.Clone()
	}
	if len(failures) > 0 {
		return nil, &MappingResolutionError{Failures: failures}
	}

	return mappings, nil
}

// invalidAtoms returns atoms that are unresolved, point out of range, or
// target an atom already claimed by a lower index.
func invalidAtoms(mapping structure.Mapping) []int {
	n := len(mapping)
	claimed := make([]bool, n)
	var bad []int
	for i, j := range mapping {
		if j < 0 || j >= n || claimed[j] {
			bad = append(bad, i)
			continue
		}
		claimed[j] = true
	}

	return bad
}
