// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra substrate used by the
// unfolding engine: a row-major float64 Dense type, LU factorization with
// partial pivoting, inverse, determinant and a handful of products.
//
// The package provides:
//
//   - Dense: flat row-major storage with bounds-checked At/Set and raw row
//     access for hot loops (RowView, Row, Col).
//   - LU, Inverse, Det: deterministic partial-pivoting kernels for small
//     square systems (lattice matrices are 3×3).
//   - Mul, Transpose, MatVec, Scale, AllClose: general helpers.
//   - ColumnNormsSquared, NormalizeColumns: per-column reductions for batches
//     of vectors stored one per column.
//   - Validators returning the sentinel errors from errors.go.
//
// All kernels allocate fresh results and never mutate their operands.
package matrix
