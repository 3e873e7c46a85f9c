// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/unfold/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnNormsSquared(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{
		{3, 0, 1},
		{4, 0, -1},
	})
	require.NoError(t, err)

	got, err := matrix.ColumnNormsSquared(m)
	require.NoError(t, err)
	assert.Equal(t, []float64{25, 0, 2}, got)

	_, err = matrix.ColumnNormsSquared(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestNormalizeColumns(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{
		{3, 0, 1},
		{4, 0, -1},
	})
	require.NoError(t, err)

	out, norms, err := matrix.NormalizeColumns(m)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{5, 0, math.Sqrt2}, norms, 1e-15)

	want, err := matrix.NewDenseFromRows([][]float64{
		{0.6, 0, 1 / math.Sqrt2},
		{0.8, 0, -1 / math.Sqrt2},
	})
	require.NoError(t, err)
	ok, err := matrix.AllClose(out, want, 0, 1e-15)
	require.NoError(t, err)
	assert.True(t, ok, out.String())

	// input untouched
	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)
}
