// SPDX-License-Identifier: MIT

package lattice

import (
	"errors"
	"fmt"
)

var (
	// ErrLatticeEnumeration is matched (errors.Is) by every *LatticeEnumerationError.
	ErrLatticeEnumeration = errors.New("lattice: lattice vector enumeration failed")

	// ErrNotThreeByThree is returned when a lattice matrix is not 3×3.
	ErrNotThreeByThree = errors.New("lattice: matrix must be 3x3")
)

// LatticeEnumerationError reports a coset count that disagrees with the
// determinant of the supercell matrix, or a determinant that is not an
// integer in the first place.
type LatticeEnumerationError struct {
	Expected    int     // round(|det S|)
	Found       int     // distinct representatives enumerated
	Det         float64 // det S as computed
	NonIntegral bool    // |det S| is not within tolerance of an integer; nothing was scanned
}

func (e *LatticeEnumerationError) Error() string {
	if e.NonIntegral {
		return fmt.Sprintf("lattice: det(supercell)=%g is not an integer; the supercell is not a multiple of the primitive cell",
			e.Det)
	}
	return fmt.Sprintf("lattice: enumerated %d lattice vectors, expected %d (det(supercell)=%g)",
		e.Found, e.Expected, e.Det)
}

// Is lets errors.Is(err, ErrLatticeEnumeration) match.
func (e *LatticeEnumerationError) Is(target error) bool {
	return target == ErrLatticeEnumeration
}
