// SPDX-License-Identifier: MIT

package structure

import (
	"fmt"
	"math"

	"github.com/katalvlaran/unfold/lattice"
	"github.com/katalvlaran/unfold/matrix"
)

// DefaultSymprec is the default positional tolerance. Without a lattice it is
// measured in fractional units; with WithLattice it is a Cartesian length.
const DefaultSymprec = 1e-5

const panicSymprecInvalid = "structure: WithSymprec: symprec must be finite and positive"

// Matcher resolves the atom mapping induced by a symmetry operation.
//
// mapping[i] is the atom j whose image rot·x_j + trans lands on atom i, or
// Unresolved. residuals[i] is the minimum-image offset from x_i to the nearest
// candidate image.
type Matcher interface {
	ResolveMapping(rot Rotation, trans lattice.Vector) (mapping Mapping, residuals []lattice.Vector, err error)
}

// MatcherOption configures a PositionMatcher.
type MatcherOption func(*PositionMatcher) error

// WithSymprec sets the positional tolerance. Panics on symprec <= 0, NaN or ±Inf.
func WithSymprec(symprec float64) MatcherOption {
	if math.IsNaN(symprec) || math.IsInf(symprec, 0) || symprec <= 0 {
		panic(panicSymprecInvalid)
	}

	return func(pm *PositionMatcher) error {
		pm.symprec = symprec
		return nil
	}
}

// WithLattice measures distances in Cartesian space. The rows of basis are the
// cell vectors a, b, c.
func WithLattice(basis matrix.Matrix) MatcherOption {
	return func(pm *PositionMatcher) error {
		if err := matrix.ValidateShape(basis, 3, 3); err != nil {
			return fmt.Errorf("WithLattice: %v: %w", err, ErrBadLattice)
		}
		det, err := matrix.Det(basis)
		if err != nil || det == 0 {
			return fmt.Errorf("WithLattice: %w", ErrBadLattice)
		}
		pm.basis = basis.Clone()
		return nil
	}
}

// PositionMatcher matches images against the atoms of an ideal cell by
// nearest minimum-image distance. It is safe for concurrent use.
type PositionMatcher struct {
	cell    *Cell
	symprec float64
	basis   matrix.Matrix // nil: fractional metric
}

var _ Matcher = (*PositionMatcher)(nil)

// NewPositionMatcher builds a matcher over cell.
func NewPositionMatcher(cell *Cell, opts ...MatcherOption) (*PositionMatcher, error) {
	if cell == nil || cell.Len() == 0 {
		return nil, ErrEmptyCell
	}
	pm := &PositionMatcher{cell: cell, symprec: DefaultSymprec}
	for _, fn := range opts {
		if fn == nil {
			continue
		}
		if err := fn(pm); err != nil {
			return nil, err
		}
	}

	return pm, nil
}

// Symprec returns the positional tolerance in use.
func (pm *PositionMatcher) Symprec() float64 { return pm.symprec }

// ResolveMapping implements Matcher.
//
// Implementation:
//   - Stage 1: image x'_j = R·x_j + t for every atom j.
//   - Stage 2: for every target atom i, the nearest same-species image x'_j by
//     minimum-image distance.
//   - Stage 3: accept when distance < symprec and source j is not yet claimed;
//     otherwise mark i Unresolved.
//
// Complexity:
//   - Time O(n²), Space O(n).
func (pm *PositionMatcher) ResolveMapping(rot Rotation, trans lattice.Vector) (Mapping, []lattice.Vector, error) {
	n := pm.cell.Len()
	images := make([]lattice.Vector, n)
	for j := 0; j < n; j++ {
		images[j] = rot.Apply(pm.cell.positions[j]).Add(trans)
	}

	mapping := make(Mapping, n)
	residuals := make([]lattice.Vector, n)
	claimed := make([]bool, n)

	var (
		diff, best  lattice.Vector
		d, bestDist float64
		bestJ       int
		err         error
	)
	for i := 0; i < n; i++ {
		bestJ, bestDist, best = Unresolved, math.Inf(1), lattice.Vector{}
		for j := 0; j < n; j++ {
			if !pm.cell.sameSpecies(i, j) {
				continue
			}
			diff = images[j].Sub(pm.cell.positions[i]).MinimumImage()
			if d, err = pm.norm(diff); err != nil {
				return nil, nil, err
			}
			if d < bestDist {
				bestJ, bestDist, best = j, d, diff
			}
		}
		residuals[i] = best
		if bestJ == Unresolved || bestDist >= pm.symprec || claimed[bestJ] {
			mapping[i] = Unresolved
			continue
		}
		claimed[bestJ] = true
		mapping[i] = bestJ
	}

	return mapping, residuals, nil
}

// norm is the Euclidean length of a fractional offset, in Cartesian units when
// a lattice is set.
func (pm *PositionMatcher) norm(diff lattice.Vector) (float64, error) {
	if pm.basis == nil {
		return math.Sqrt(diff.Dot(diff)), nil
	}
	var cart [3]float64
	var v float64
	var err error
	for i := 0; i < 3; i++ {
		for k := 0; k < 3; k++ {
			if v, err = pm.basis.At(i, k); err != nil {
				return 0, err
			}
			cart[k] += diff[i] * v
		}
	}

	return math.Sqrt(cart[0]*cart[0] + cart[1]*cart[1] + cart[2]*cart[2]), nil
}
