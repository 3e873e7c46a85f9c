// SPDX-License-Identifier: MIT

package structure

import "errors"

var (
	// ErrEmptyCell is returned when a cell has no atoms.
	ErrEmptyCell = errors.New("structure: cell has no atoms")

	// ErrSpeciesLength is returned when species numbers and positions differ in length.
	ErrSpeciesLength = errors.New("structure: species numbers do not match positions")

	// ErrNonFinitePosition is returned for NaN or ±Inf fractional coordinates.
	ErrNonFinitePosition = errors.New("structure: non-finite atomic position")

	// ErrInvalidMultiplicity is returned for supercell multiplicities < 1.
	ErrInvalidMultiplicity = errors.New("structure: supercell multiplicity must be >= 1")

	// ErrBadLattice is returned when a lattice matrix is not 3×3 or not invertible.
	ErrBadLattice = errors.New("structure: lattice must be a non-singular 3x3 matrix")
)
