// SPDX-License-Identifier: MIT
package unfolding_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/unfold/lattice"
	"github.com/katalvlaran/unfold/matrix"
	"github.com/katalvlaran/unfold/structure"
	"github.com/stretchr/testify/require"
)

// gamma is the zone-centre k-point.
var gamma = lattice.Vector{}

// chain builds an a×b×c supercell of a primitive cell with the given basis
// and returns its primitive description and ideal cell.
func chain(t *testing.T, a, b, c int, basis []lattice.Vector, species []int) (*lattice.Primitive, *structure.Cell) {
	t.Helper()
	prim, err := lattice.NewSupercellPrimitive(a, b, c)
	require.NoError(t, err)
	unit, err := structure.NewCell(basis, species)
	require.NoError(t, err)
	sc, err := unit.Supercell(a, b, c)
	require.NoError(t, err)

	return prim, sc
}

func column(t *testing.T, v ...float64) *matrix.Dense {
	t.Helper()
	rows := make([][]float64, len(v))
	for i, x := range v {
		rows[i] = []float64{x}
	}
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

func randomBatch(t *testing.T, rows, cols int, seed int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(rows, cols)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			require.NoError(t, m.Set(i, j, 2*rng.Float64()-1))
		}
	}

	return m
}

func requireAllClose(t *testing.T, want, got matrix.Matrix, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, 0, atol)
	require.NoError(t, err)
	require.True(t, ok, "want:\n%v\ngot:\n%v", want, got)
}

// stubMatcher returns canned mappings keyed by call order.
type stubMatcher struct {
	mappings []structure.Mapping
	err      error
	calls    int
}

func (s *stubMatcher) ResolveMapping(_ structure.Rotation, _ lattice.Vector) (structure.Mapping, []lattice.Vector, error) {
	if s.err != nil {
		return nil, nil, s.err
	}
	m := s.mappings[s.calls%len(s.mappings)]
	s.calls++

	return m, make([]lattice.Vector, len(m)), nil
}
