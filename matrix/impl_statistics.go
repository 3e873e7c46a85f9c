// SPDX-License-Identifier: MIT
// Package matrix - per-column reductions.
//
// Purpose:
//   - Column norms and column normalization for batches of mode vectors
//     stored one per column.
//
// Determinism:
//   - Fixed i→j accumulation order over the row-major buffer.

package matrix

import "math"

const (
	opColumnNormsSquared = "ColumnNormsSquared"
	opNormalizeColumns   = "NormalizeColumns"
)

// ColumnNormsSquared returns Σ_i x_ij² for every column j.
// Implementation:
//   - Stage 1: validate X and take the Dense fast-path (copy otherwise).
//   - Stage 2: walk rows in order, accumulating squares per column.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func ColumnNormsSquared(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnNormsSquared, err)
	}
	d, err := toDense(X)
	if err != nil {
		return nil, matrixErrorf(opColumnNormsSquared, err)
	}

	out := make([]float64, d.c)
	var i, j, base int
	var v float64
	for i = 0; i < d.r; i++ {
		base = i * d.c
		for j = 0; j < d.c; j++ {
			v = d.data[base+j]
			out[j] += v * v
		}
	}

	return out, nil
}

// NormalizeColumns returns a copy of X with every column scaled to unit L2
// norm, plus the original norms. Zero columns are left unchanged.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NormalizeColumns(X Matrix) (*Dense, []float64, error) {
	sq, err := ColumnNormsSquared(X)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeColumns, err)
	}
	d, err := toDense(X)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeColumns, err)
	}
	out := d.Clone().(*Dense)

	norms := make([]float64, len(sq))
	scale := make([]float64, len(sq))
	for j, s := range sq {
		norms[j] = math.Sqrt(s)
		scale[j] = 1.0
		if norms[j] > 0 {
			scale[j] = 1.0 / norms[j]
		}
	}
	var i, j, base int
	for i = 0; i < out.r; i++ {
		base = i * out.c
		for j = 0; j < out.c; j++ {
			out.data[base+j] *= scale[j]
		}
	}

	return out, norms, nil
}
