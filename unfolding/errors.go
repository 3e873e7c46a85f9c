// SPDX-License-Identifier: MIT

package unfolding

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/unfold/lattice"
	"github.com/katalvlaran/unfold/matrix"
)

var (
	// ErrMappingResolutionFailed is matched by every *MappingResolutionError.
	ErrMappingResolutionFailed = errors.New("unfolding: atom mapping resolution failed")

	// ErrLatticeEnumeration aliases lattice.ErrLatticeEnumeration for callers of this package.
	ErrLatticeEnumeration = lattice.ErrLatticeEnumeration

	// ErrDimensionMismatch aliases matrix.ErrDimensionMismatch; shape errors wrap it.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrInvalidDimension is returned for ndim < 1.
	ErrInvalidDimension = errors.New("unfolding: ndim must be >= 1")

	// ErrInvalidSymprec is returned for a non-positive or non-finite matching tolerance.
	ErrInvalidSymprec = errors.New("unfolding: symprec must be finite and > 0")

	// ErrNilInput is returned when the primitive cell, unit cell or matcher is nil.
	ErrNilInput = errors.New("unfolding: nil input")
)

// MappingFailure names one lattice vector whose mapping is incomplete.
type MappingFailure struct {
	Cell   int            // index into the lattice vector list
	Vector lattice.Vector // the translation
	Atoms  []int          // atoms without a (unique) partner
}

// MappingResolutionError lists every lattice vector whose atom mapping is
// not a bijection. It indicates the ideal cell is not invariant under the
// claimed primitive-in-supercell relationship.
type MappingResolutionError struct {
	Failures []MappingFailure
}

func (e *MappingResolutionError) Error() string {
	var b strings.Builder
	b.WriteString("unfolding: atom mapping resolution failed")
	for _, f := range e.Failures {
		fmt.Fprintf(&b, "; t[%d]=%v atoms %v", f.Cell, f.Vector, f.Atoms)
	}

	return b.String()
}

// Is lets errors.Is(err, ErrMappingResolutionFailed) match.
func (e *MappingResolutionError) Is(target error) bool {
	return target == ErrMappingResolutionFailed
}
