// SPDX-License-Identifier: MIT

package unfolding

import (
	"fmt"

	"github.com/katalvlaran/unfold/structure"
)

// ExpandMapping lifts an atom permutation to a DOF permutation:
// expanded[a*ndim+c] = mapping[a]*ndim + c for c in [0, ndim).
func ExpandMapping(mapping structure.Mapping, ndim int) ([]int, error) {
	if ndim < 1 {
		return nil, fmt.Errorf("ExpandMapping: ndim=%d: %w", ndim, ErrInvalidDimension)
	}
	natoms := len(mapping)
	expanded := make([]int, natoms*ndim)
	for a, target := range mapping {
		if target < 0 || target >= natoms {
			return nil, fmt.Errorf("ExpandMapping: atom %d maps to %d: %w", a, target, ErrMappingResolutionFailed)
		}
		for c := 0; c < ndim; c++ {
			expanded[a*ndim+c] = target*ndim + c
		}
	}

	return expanded, nil
}

// ExpandMappings applies ExpandMapping to every row, preserving row order.
//
// Errors:
//   - ErrInvalidDimension (ndim < 1),
//   - ErrDimensionMismatch when a row length differs from natoms.
func ExpandMappings(mappings []structure.Mapping, natoms, ndim int) ([][]int, error) {
	if ndim < 1 {
		return nil, fmt.Errorf("ExpandMappings: ndim=%d: %w", ndim, ErrInvalidDimension)
	}
	out := make([][]int, len(mappings))
	var err error
	for c, m := range mappings {
		if len(m) != natoms {
			return nil, fmt.Errorf("ExpandMappings: row %d has %d atoms, want %d: %w", c, len(m), natoms, ErrDimensionMismatch)
		}
		if out[c], err = ExpandMapping(m, ndim); err != nil {
			return nil, fmt.Errorf("ExpandMappings: row %d: %w", c, err)
		}
	}

	return out, nil
}
