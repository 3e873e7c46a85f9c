// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/unfold/matrix"
)

// Operation tags for error wrapping.
const (
	opEnumerate = "Enumerate"
	opSupercell = "SupercellMatrix"
	opCellCount = "CellCount"
)

// SupercellMatrix returns S = P⁻¹ for a 3×3 primitive matrix P.
//
// Errors:
//   - ErrNotThreeByThree, matrix.ErrNilMatrix, matrix.ErrSingular.
func SupercellMatrix(primitive matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(primitive); err != nil {
		return nil, fmt.Errorf("%s: %w", opSupercell, err)
	}
	if primitive.Rows() != 3 || primitive.Cols() != 3 {
		return nil, fmt.Errorf("%s: got %dx%d: %w", opSupercell, primitive.Rows(), primitive.Cols(), ErrNotThreeByThree)
	}
	s, err := matrix.Inverse(primitive)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSupercell, err)
	}

	return s, nil
}

// CellCount returns ncells = round(|det S|) and det S itself.
func CellCount(primitive matrix.Matrix) (int, float64, error) {
	s, err := SupercellMatrix(primitive)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", opCellCount, err)
	}
	det, err := matrix.Det(s)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", opCellCount, err)
	}

	return int(math.Round(math.Abs(det))), det, nil
}

// Enumerate returns the coset representatives of the primitive lattice inside
// the supercell lattice, in supercell fractional coordinates.
//
// Implementation:
//   - Stage 1: S = P⁻¹, ncells = round(|det S|); |det S| must be an integer
//     within tolerance.
//   - Stage 2: every primitive-lattice point is t = P·n with integer n. Points
//     with t ∈ [0,1)³ satisfy n = S·t, so n lies in the box spanned by the
//     negative and positive entries of each row of S; scan that box.
//   - Stage 3: snap, keep t ∈ [0,1)³, dedupe, sort lexicographically.
//   - Stage 4: the count must equal ncells.
//
// Errors:
//   - ErrNotThreeByThree, matrix.ErrSingular (non-invertible P),
//   - *LatticeEnumerationError (matches ErrLatticeEnumeration).
//
// Determinism:
//   - Output order depends only on P: (0,0,0) first, then lexicographic.
func Enumerate(primitive matrix.Matrix, opts ...Option) ([]Vector, error) {
	o := gatherOptions(opts...)

	s, err := SupercellMatrix(primitive)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opEnumerate, err)
	}
	det, err := matrix.Det(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opEnumerate, err)
	}
	ncells := int(math.Round(math.Abs(det)))
	if ncells < 1 {
		return nil, fmt.Errorf("%s: %w", opEnumerate, &LatticeEnumerationError{Expected: ncells, Det: det})
	}
	if math.Abs(math.Abs(det)-float64(ncells)) > o.tolerance {
		return nil, fmt.Errorf("%s: %w", opEnumerate,
			&LatticeEnumerationError{Expected: ncells, Det: det, NonIntegral: true})
	}

	var lo, hi [3]int
	var v float64
	for i := 0; i < 3; i++ {
		var neg, pos float64
		for j := 0; j < 3; j++ {
			v, _ = s.At(i, j)
			if v < 0 {
				neg += v
			} else {
				pos += v
			}
		}
		lo[i] = int(math.Floor(neg - o.tolerance))
		hi[i] = int(math.Ceil(pos + o.tolerance))
	}

	found := make([]Vector, 0, ncells)
	n := make([]float64, 3)
	var t []float64
	for n0 := lo[0]; n0 <= hi[0]; n0++ {
		for n1 := lo[1]; n1 <= hi[1]; n1++ {
			for n2 := lo[2]; n2 <= hi[2]; n2++ {
				n[0], n[1], n[2] = float64(n0), float64(n1), float64(n2)
				if t, err = matrix.MatVec(primitive, n); err != nil {
					return nil, fmt.Errorf("%s: %w", opEnumerate, err)
				}
				cand, ok := insideCell(t, o.tolerance)
				if !ok || containsEquivalent(found, cand, o.tolerance) {
					continue
				}
				found = append(found, cand)
			}
		}
	}

	if len(found) != ncells {
		return nil, fmt.Errorf("%s: %w", opEnumerate,
			&LatticeEnumerationError{Expected: ncells, Found: len(found), Det: det})
	}
	sort.Slice(found, func(i, j int) bool { return less(found[i], found[j]) })

	return found, nil
}

// insideCell snaps t and reports whether it lies in [0,1)³.
func insideCell(t []float64, eps float64) (Vector, bool) {
	var out Vector
	for i := 0; i < 3; i++ {
		x := snap(t[i], eps)
		if x < 0 || x >= 1 {
			return Vector{}, false
		}
		out[i] = x
	}

	return out, true
}

func containsEquivalent(set []Vector, v Vector, eps float64) bool {
	for _, w := range set {
		if w.EquivalentTo(v, eps) {
			return true
		}
	}

	return false
}
