// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"

	"github.com/katalvlaran/unfold/matrix"
)

// Primitive describes a primitive cell embedded in a supercell through its
// primitive matrix (columns = primitive basis in supercell fractional
// coordinates). The matrix is referenced, not copied; callers must not
// mutate it while a Primitive is in use.
type Primitive struct {
	m matrix.Matrix
}

// NewPrimitive validates that m is 3×3 and invertible.
func NewPrimitive(m matrix.Matrix) (*Primitive, error) {
	if _, err := SupercellMatrix(m); err != nil {
		return nil, fmt.Errorf("NewPrimitive: %w", err)
	}

	return &Primitive{m: m}, nil
}

// NewPrimitiveFromRows builds a Primitive from literal rows.
func NewPrimitiveFromRows(rows [][]float64) (*Primitive, error) {
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("NewPrimitiveFromRows: %w", err)
	}

	return NewPrimitive(m)
}

// NewSupercellPrimitive returns the primitive description of an a×b×c
// diagonal supercell, i.e. P = diag(1/a, 1/b, 1/c).
func NewSupercellPrimitive(a, b, c int) (*Primitive, error) {
	if a < 1 || b < 1 || c < 1 {
		return nil, fmt.Errorf("NewSupercellPrimitive(%d,%d,%d): %w", a, b, c, matrix.ErrInvalidDimensions)
	}
	m, err := matrix.NewDiagonal(1/float64(a), 1/float64(b), 1/float64(c))
	if err != nil {
		return nil, err
	}

	return NewPrimitive(m)
}

// PrimitiveMatrix returns the referenced primitive matrix.
func (p *Primitive) PrimitiveMatrix() matrix.Matrix { return p.m }
