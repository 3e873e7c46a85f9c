// SPDX-License-Identifier: MIT

package pointgroup

import (
	"fmt"
	"math"

	"github.com/katalvlaran/unfold/structure"
)

// orthoTol bounds |Σ m_c χ_i(c) χ_j(c) - h δ_ij| in Validate.
const orthoTol = 1e-9

// Table is one point-group character table.
type Table struct {
	Symbol         string      // Hermann–Mauguin, e.g. "4/mmm"
	Schoenflies    string      // e.g. "D4h"
	Classes        []Operation // column labels; Classes[0] is always E
	Multiplicities []int       // elements per class
	Irreps         []string    // row labels
	Characters     [][]float64 // Characters[irrep][class]

	// Rotations[class] lists the integer matrices of that class in the
	// conventional cell basis; nil when the group carries no matrices.
	Rotations [][]structure.Rotation
}

// Order returns the group order h, the sum of class multiplicities.
func (t Table) Order() int {
	h := 0
	for _, m := range t.Multiplicities {
		h += m
	}

	return h
}

// IsCentrosymmetric reports whether inversion is one of the classes.
func (t Table) IsCentrosymmetric() bool {
	for _, c := range t.Classes {
		if c == I {
			return true
		}
	}

	return false
}

// Character returns χ_irrep(class).
func (t Table) Character(irrep string, class Operation) (float64, bool) {
	r, c := -1, -1
	for i, name := range t.Irreps {
		if name == irrep {
			r = i
			break
		}
	}
	for j, op := range t.Classes {
		if op == class {
			c = j
			break
		}
	}
	if r < 0 || c < 0 {
		return 0, false
	}

	return t.Characters[r][c], true
}

// RotationsOf returns the matrices of class, or false when the class is
// unknown or the table has no matrices.
func (t Table) RotationsOf(class Operation) ([]structure.Rotation, bool) {
	if t.Rotations == nil {
		return nil, false
	}
	for j, op := range t.Classes {
		if op == class {
			return append([]structure.Rotation(nil), t.Rotations[j]...), true
		}
	}

	return nil, false
}

// Dimension returns the dimension of irrep, χ(E).
func (t Table) Dimension(irrep string) (int, bool) {
	chi, ok := t.Character(irrep, E)
	if !ok {
		return 0, false
	}

	return int(math.Round(chi)), true
}

// Validate checks shape consistency and the row orthogonality relation
// Σ_c m_c χ_i(c) χ_j(c) = h δ_ij. When Rotations is set, each class must hold
// Multiplicities[c] distinct matrices whose determinant sign matches
// Operation.IsProper, and the matrices together must be closed under
// multiplication.
func (t Table) Validate() error {
	n := len(t.Classes)
	if n == 0 || len(t.Multiplicities) != n || len(t.Irreps) != n || len(t.Characters) != n {
		return fmt.Errorf("%s: %d classes, %d multiplicities, %d irreps, %d rows: %w",
			t.Symbol, n, len(t.Multiplicities), len(t.Irreps), len(t.Characters), ErrMalformedTable)
	}
	if t.Classes[0] != E {
		return fmt.Errorf("%s: first class is %v, want E: %w", t.Symbol, t.Classes[0], ErrMalformedTable)
	}
	seen := make(map[Operation]bool, n)
	for j, op := range t.Classes {
		if !op.Valid() || seen[op] || t.Multiplicities[j] < 1 {
			return fmt.Errorf("%s: class %d (%v x%d): %w", t.Symbol, j, op, t.Multiplicities[j], ErrMalformedTable)
		}
		seen[op] = true
	}
	for i, row := range t.Characters {
		if len(row) != n {
			return fmt.Errorf("%s: irrep %s has %d characters, want %d: %w",
				t.Symbol, t.Irreps[i], len(row), n, ErrMalformedTable)
		}
	}

	if err := t.validateRotations(); err != nil {
		return err
	}

	h := float64(t.Order())
	var i, j, c int
	var sum, want float64
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			sum = 0
			for c = 0; c < n; c++ {
				sum += float64(t.Multiplicities[c]) * t.Characters[i][c] * t.Characters[j][c]
			}
			want = 0
			if i == j {
				want = h
			}
			if math.Abs(sum-want) > orthoTol {
				return fmt.Errorf("%s: <%s|%s> = %g, want %g: %w",
					t.Symbol, t.Irreps[i], t.Irreps[j], sum, want, ErrNotOrthogonal)
			}
		}
	}

	return nil
}

func (t Table) validateRotations() error {
	if t.Rotations == nil {
		return nil
	}
	if len(t.Rotations) != len(t.Classes) {
		return fmt.Errorf("%s: %d rotation classes for %d classes: %w",
			t.Symbol, len(t.Rotations), len(t.Classes), ErrMalformedTable)
	}
	if len(t.Rotations[0]) != 1 || !t.Rotations[0][0].IsIdentity() {
		return fmt.Errorf("%s: class E must hold the identity alone: %w", t.Symbol, ErrMalformedTable)
	}

	set := make(map[structure.Rotation]bool, t.Order())
	for c, rots := range t.Rotations {
		op := t.Classes[c]
		if len(rots) != t.Multiplicities[c] {
			return fmt.Errorf("%s: class %v has %d matrices, want %d: %w",
				t.Symbol, op, len(rots), t.Multiplicities[c], ErrMalformedTable)
		}
		want := -1
		if op.IsProper() {
			want = 1
		}
		for k, r := range rots {
			if r.Det() != want {
				return fmt.Errorf("%s: class %v matrix %d has det %d, want %d: %w",
					t.Symbol, op, k, r.Det(), want, ErrMalformedTable)
			}
			if set[r] {
				return fmt.Errorf("%s: class %v matrix %d repeats: %w", t.Symbol, op, k, ErrMalformedTable)
			}
			set[r] = true
		}
	}
	for a := range set {
		for b := range set {
			if !set[a.Mul(b)] {
				return fmt.Errorf("%s: matrices are not closed under multiplication: %w", t.Symbol, ErrMalformedTable)
			}
		}
	}

	return nil
}

// clone deep-copies t so callers can never reach registry storage.
func (t Table) clone() Table {
	out := t
	out.Classes = append([]Operation(nil), t.Classes...)
	out.Multiplicities = append([]int(nil), t.Multiplicities...)
	out.Irreps = append([]string(nil), t.Irreps...)
	out.Characters = make([][]float64, len(t.Characters))
	for i, row := range t.Characters {
		out.Characters[i] = append([]float64(nil), row...)
	}
	if t.Rotations != nil {
		out.Rotations = make([][]structure.Rotation, len(t.Rotations))
		for c, rots := range t.Rotations {
			out.Rotations[c] = append([]structure.Rotation(nil), rots...)
		}
	}

	return out
}

// withInversion returns t × Ci. inverted[k] labels the class i·Classes[k].
// Irreps gain a "g" (even) or "u" (odd) suffix; matrices of the inverted
// classes are the negated originals.
func withInversion(t Table, symbol, schoenflies string, inverted ...Operation) Table {
	if len(inverted) != len(t.Classes) {
		panic(fmt.Sprintf("pointgroup: %s: %d inverted labels for %d classes", symbol, len(inverted), len(t.Classes)))
	}
	n := len(t.Classes)
	out := Table{
		Symbol:         symbol,
		Schoenflies:    schoenflies,
		Classes:        append(append(make([]Operation, 0, 2*n), t.Classes...), inverted...),
		Multiplicities: append(append(make([]int, 0, 2*n), t.Multiplicities...), t.Multiplicities...),
		Irreps:         make([]string, 0, 2*n),
		Characters:     make([][]float64, 0, 2*n),
	}
	for _, parity := range []struct {
		suffix string
		sign   float64
	}{{"g", 1}, {"u", -1}} {
		for i, row := range t.Characters {
			r := make([]float64, 0, 2*n)
			r = append(r, row...)
			for _, chi := range row {
				if chi == 0 {
					r = append(r, 0) // no -0 in the u rows
					continue
				}
				r = append(r, parity.sign*chi)
			}
			out.Irreps = append(out.Irreps, t.Irreps[i]+parity.suffix)
			out.Characters = append(out.Characters, r)
		}
	}
	if t.Rotations != nil {
		out.Rotations = make([][]structure.Rotation, 0, 2*n)
		out.Rotations = append(out.Rotations, t.Rotations...)
		for _, rots := range t.Rotations {
			neg := make([]structure.Rotation, len(rots))
			for k, r := range rots {
				neg[k] = r.Neg()
			}
			out.Rotations = append(out.Rotations, neg)
		}
	}

	return out
}
