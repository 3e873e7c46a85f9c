// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points for common constructors and comparisons.
//   - Avoid logic duplication: each facade delegates to the canonical implementation.

package matrix

import "errors"

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// NewDiagonal returns a square Dense with diag on the main diagonal.
func NewDiagonal(diag ...float64) (*Dense, error) {
	d, err := NewDense(len(diag), len(diag))
	if err != nil {
		return nil, err
	}
	for i, v := range diag {
		if err = d.Set(i, i, v); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// ZerosLike returns a zero matrix with the shape of m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense(m.Rows(), m.Cols())
}

// AllClose reports whether |a-b| <= atol + rtol*|b| holds elementwise.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) { return ewAllClose(a, b, rtol, atol) }

// isSingular reports whether err carries ErrSingular.
func isSingular(err error) bool { return errors.Is(err, ErrSingular) }

// AsDense returns m itself when it is a *Dense, otherwise a Dense copy.
// Callers must treat the result as read-only when they did not own m.
func AsDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return toDense(m)
}
