// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// products, transpose, scaling, and LU-based inverse and determinant. All
// functions perform strict fail-fast validation and return clear errors on
// dimension mismatches.
//
// Notes:
//   - Every kernel has a *Dense fast-path over the flat buffer; other Matrix
//     implementations are first copied into a Dense (toDense).
//   - All kernels return fresh results; operands are never mutated.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for substitutions and accumulations.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opMatVec    = "MatVec"
	opLU        = "LU"
	opInverse   = "Inverse"
	opDet       = "Det"
	opSolve     = "Solve"
	opAllClose  = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul computes the matrix product a*b into a fresh Dense.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
//
// Complexity:
//   - Time O(r*k*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := da.r, da.c, db.c
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// i-k-j order keeps both inner accesses sequential in row-major layout.
	var (
		i, k, j                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = da.data[rowOffsetA+k]
			if av == 0 {
				continue
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns mᵀ as a fresh Dense.
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	dm, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := dm.r, dm.c
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// data[i*cols + j] → res.data[j*rows + i]
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = dm.data[baseSrc+j]
		}
	}

	return res, nil
}

// Scale returns alpha*m as a fresh Dense.
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}
	dm, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := dm.Clone().(*Dense)
	for idx := range res.data {
		res.data[idx] *= alpha
	}

	return res, nil
}

// MatVec computes y = m*x.
//
// Errors:
//   - ErrNilMatrix (nil m or nil x), ErrDimensionMismatch (len(x) != m.Cols()).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, d.r)
	var i, j, base int
	var acc float64
	for i = 0; i < d.r; i++ {
		acc = ZeroSum
		base = i * d.c
		for j = 0; j < d.c; j++ {
			acc += d.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// LUFactors holds a packed partial-pivoting factorization P*A = L*U.
// The strictly lower part of lu stores L (unit diagonal implied), the upper
// part stores U. perm[i] is the original row placed at position i.
type LUFactors struct {
	n    int
	lu   *Dense
	perm []int
	sign float64 // parity of perm: +1 or -1
}

// LU factorizes a square matrix with partial (row) pivoting.
// Implementation:
//   - Stage 1: validate non-nil and square; copy into a working Dense.
//   - Stage 2: for each column k pick the row with max |a[i,k]| (i>=k, first wins on ties),
//     swap, then eliminate below the pivot.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (max |pivot| <= eps).
//
// Determinism:
//   - Fixed k→i→j loop order; ties broken by the lowest row index.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LU(m Matrix, opts ...Option) (*LUFactors, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	o := gatherOptions(opts...)
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	a := src.Clone().(*Dense)
	n := a.r

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sign := 1.0

	var (
		i, j, k, p int
		maxAbs, v  float64
		factor     float64
	)
	for k = 0; k < n; k++ {
		// Pivot search in column k.
		p = k
		maxAbs = math.Abs(a.data[k*n+k])
		for i = k + 1; i < n; i++ {
			if v = math.Abs(a.data[i*n+k]); v > maxAbs {
				maxAbs, p = v, i
			}
		}
		if maxAbs <= o.eps {
			return nil, matrixErrorf(opLU, ErrSingular)
		}
		if p != k {
			for j = 0; j < n; j++ {
				a.data[k*n+j], a.data[p*n+j] = a.data[p*n+j], a.data[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
			sign = -sign
		}
		// Eliminate below the pivot; store multipliers in place.
		for i = k + 1; i < n; i++ {
			factor = a.data[i*n+k] / a.data[k*n+k]
			a.data[i*n+k] = factor
			if factor == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				a.data[i*n+j] -= factor * a.data[k*n+j]
			}
		}
	}

	return &LUFactors{n: n, lu: a, perm: perm, sign: sign}, nil
}

// L returns the unit lower-triangular factor.
func (f *LUFactors) L() *Dense {
	l, _ := NewDense(f.n, f.n)
	for i := 0; i < f.n; i++ {
		for j := 0; j < i; j++ {
			l.data[i*f.n+j] = f.lu.data[i*f.n+j]
		}
		l.data[i*f.n+i] = 1
	}

	return l
}

// U returns the upper-triangular factor.
func (f *LUFactors) U() *Dense {
	u, _ := NewDense(f.n, f.n)
	for i := 0; i < f.n; i++ {
		for j := i; j < f.n; j++ {
			u.data[i*f.n+j] = f.lu.data[i*f.n+j]
		}
	}

	return u
}

// Perm returns a copy of the row permutation (row i of P*A is row Perm()[i] of A).
func (f *LUFactors) Perm() []int {
	out := make([]int, len(f.perm))
	copy(out, f.perm)

	return out
}

// Det returns det(A) = sign(P) * Π U[i,i].
func (f *LUFactors) Det() float64 {
	d := f.sign
	for i := 0; i < f.n; i++ {
		d *= f.lu.data[i*f.n+i]
	}

	return d
}

// Solve returns x with A*x = b.
func (f *LUFactors) Solve(b []float64) ([]float64, error) {
	if err := ValidateVecLen(b, f.n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := f.n
	x := make([]float64, n)
	var i, k int
	var sum float64
	// Forward substitution: L*y = P*b (y stored in x).
	for i = 0; i < n; i++ {
		sum = b[f.perm[i]]
		for k = 0; k < i; k++ {
			sum -= f.lu.data[i*n+k] * x[k]
		}
		x[i] = sum
	}
	// Backward substitution: U*x = y.
	for i = n - 1; i >= 0; i-- {
		sum = x[i]
		for k = i + 1; k < n; k++ {
			sum -= f.lu.data[i*n+k] * x[k]
		}
		x[i] = sum / f.lu.data[i*n+i]
	}

	return x, nil
}

// Inverse computes A^{-1} by solving A*x = e_col for every basis column.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (from LU).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Inverse(m Matrix, opts ...Option) (*Dense, error) {
	f, err := LU(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := f.n
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	e := make([]float64, n)
	var x []float64
	for col := 0; col < n; col++ {
		for i := range e {
			e[i] = 0
		}
		e[col] = 1
		if x, err = f.Solve(e); err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
		for i := 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}

// Det returns the determinant of a square matrix. A singular input (no pivot
// above eps) yields 0 with a nil error.
func Det(m Matrix, opts ...Option) (float64, error) {
	f, err := LU(m, opts...)
	if err != nil {
		if isSingular(err) {
			return 0, nil
		}

		return 0, matrixErrorf(opDet, err)
	}

	return f.Det(), nil
}
