// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the linear algebra kernels.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/unfold/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

// fccPrimitive has a zero leading pivot; it needs row exchanges.
var fccPrimitive = [][]float64{
	{0, 0.5, 0.5},
	{0.5, 0, 0.5},
	{0.5, 0.5, 0},
}

func TestMul_Correctness(t *testing.T) {
	A := FromRows(t, [][]float64{{1, 2}, {3, 4}})
	B := FromRows(t, [][]float64{{2, 0}, {1, 2}})
	P, err := matrix.Mul(A, B)
	require.NoError(t, err)
	RequireClose(t, [][]float64{{4, 4}, {10, 8}}, P, tol)

	// Fallback path through a hidden concrete type gives the same answer.
	P2, err := matrix.Mul(hide{A}, B)
	require.NoError(t, err)
	RequireClose(t, P.ToRows(), P2, 0)
}

func TestMul_DimensionMismatch(t *testing.T) {
	_, err := matrix.Mul(MustDense(t, 2, 3), MustDense(t, 2, 3))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, MustDense(t, 2, 3))
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestTransposeScaleMatVec(t *testing.T) {
	A := FromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	T, err := matrix.Transpose(A)
	require.NoError(t, err)
	RequireClose(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, T, 0)

	S, err := matrix.Scale(A, -2)
	require.NoError(t, err)
	RequireClose(t, [][]float64{{-2, -4, -6}, {-8, -10, -12}}, S, 0)
	assert.Equal(t, 1.0, MustAt(t, A, 0, 0), "Scale must not mutate its input")

	y, err := matrix.MatVec(A, []float64{1, 0, -1})
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, -2}, y)

	_, err = matrix.MatVec(A, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestLU_ReconstructsPermutedInput(t *testing.T) {
	A := FromRows(t, fccPrimitive)
	f, err := matrix.LU(A)
	require.NoError(t, err)

	LU, err := matrix.Mul(f.L(), f.U())
	require.NoError(t, err)
	perm := f.Perm()
	for i := range perm {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, fccPrimitive[perm[i]][j], MustAt(t, LU, i, j), tol)
		}
	}
}

func TestInverse_Identity(t *testing.T) {
	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	inv, err := matrix.Inverse(I)
	require.NoError(t, err)
	RequireClose(t, I.ToRows(), inv, 0)
}

func TestInverse_NeedsPivoting(t *testing.T) {
	inv, err := matrix.Inverse(FromRows(t, fccPrimitive))
	require.NoError(t, err)
	RequireClose(t, [][]float64{{-1, 1, 1}, {1, -1, 1}, {1, 1, -1}}, inv, tol)
}

func TestInverse_RandomRoundTrip(t *testing.T) {
	A := RandFilledDense(t, 5, 5, 7)
	inv, err := matrix.Inverse(A)
	require.NoError(t, err)
	P, err := matrix.Mul(A, inv)
	require.NoError(t, err)
	I, err := matrix.NewIdentity(5)
	require.NoError(t, err)
	ok, err := matrix.AllClose(P, I, 0, 1e-9)
	require.NoError(t, err)
	assert.True(t, ok, "A*inv(A) != I:\n%v", P)
}

func TestInverse_Errors(t *testing.T) {
	_, err := matrix.Inverse(FromRows(t, [][]float64{{1, 2}, {2, 4}}))
	assert.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.Inverse(MustDense(t, 2, 3))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Inverse(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDet(t *testing.T) {
	cases := []struct {
		name string
		rows [][]float64
		want float64
	}{
		{"identity", [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, 1},
		{"diag", [][]float64{{2, 0, 0}, {0, 3, 0}, {0, 0, 0.5}}, 3},
		{"fcc", fccPrimitive, 0.25},
		{"swap", [][]float64{{0, 1}, {1, 0}}, -1},
		{"singular", [][]float64{{1, 2}, {2, 4}}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := matrix.Det(FromRows(t, tc.rows))
			require.NoError(t, err)
			assert.InDelta(t, tc.want, d, tol)
		})
	}
}

func TestLU_EpsilonOption(t *testing.T) {
	tiny := FromRows(t, [][]float64{{1e-10, 0}, {0, 1e-10}})
	_, err := matrix.LU(tiny)
	require.NoError(t, err)
	_, err = matrix.LU(tiny, matrix.WithEpsilon(1e-8))
	assert.ErrorIs(t, err, matrix.ErrSingular)

	assert.Panics(t, func() { matrix.WithEpsilon(-1) })
}

func TestAllClose(t *testing.T) {
	a := FromRows(t, [][]float64{{1, 2}})
	b := FromRows(t, [][]float64{{1 + 1e-10, 2}})
	ok, err := matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 1e-12)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = matrix.AllClose(a, MustDense(t, 2, 1), 0, 0)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
