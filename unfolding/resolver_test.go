// SPDX-License-Identifier: MIT
package unfolding_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/unfold/lattice"
	"github.com/katalvlaran/unfold/structure"
	"github.com/katalvlaran/unfold/unfolding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var halfChain = []lattice.Vector{{0, 0, 0}, {0.5, 0, 0}}

func TestResolveMappings_PositionMatcher(t *testing.T) {
	_, cell := chain(t, 2, 1, 1, []lattice.Vector{{0, 0, 0}, {0.5, 0, 0}}, []int{11, 17})
	pm, err := structure.NewPositionMatcher(cell)
	require.NoError(t, err)

	got, err := unfolding.ResolveMappings(pm, halfChain, cell.Len())
	require.NoError(t, err)
	assert.Equal(t, []structure.Mapping{{0, 1, 2, 3}, {2, 3, 0, 1}}, got)
	for _, m := range got {
		assert.True(t, m.IsPermutation())
	}
}

func TestResolveMappings_CollectsEveryFailure(t *testing.T) {
	stub := &stubMatcher{mappings: []structure.Mapping{
		{0, 1, 2},
		{1, 1, 2},                    // duplicate target
		{structure.Unresolved, 0, 5}, // unresolved and out of range
	}}
	vectors := []lattice.Vector{{0, 0, 0}, {1.0 / 3, 0, 0}, {2.0 / 3, 0, 0}}

	_, err := unfolding.ResolveMappings(stub, vectors, 3)
	require.ErrorIs(t, err, unfolding.ErrMappingResolutionFailed)

	var mre *unfolding.MappingResolutionError
	require.True(t, errors.As(err, &mre))
	assert.Equal(t, []unfolding.MappingFailure{
		{Cell: 1, Vector: vectors[1], Atoms: []int{1}},
		{Cell: 2, Vector: vectors[2], Atoms: []int{0, 2}},
	}, mre.Failures)
	assert.Contains(t, err.Error(), "t[1]=")
	assert.Contains(t, err.Error(), "atoms [0 2]")
}

func TestResolveMappings_Errors(t *testing.T) {
	_, err := unfolding.ResolveMappings(nil, halfChain, 2)
	assert.ErrorIs(t, err, unfolding.ErrNilInput)

	short := &stubMatcher{mappings: []structure.Mapping{{0}}}
	_, err = unfolding.ResolveMappings(short, halfChain, 2)
	assert.ErrorIs(t, err, unfolding.ErrDimensionMismatch)

	boom := errors.New("boom")
	_, err = unfolding.ResolveMappings(&stubMatcher{err: boom}, halfChain, 2)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, unfolding.ErrMappingResolutionFailed)
}

func TestResolveMappings_ReturnsCopies(t *testing.T) {
	src := structure.Mapping{1, 0}
	stub := &stubMatcher{mappings: []structure.Mapping{src}}
	got, err := unfolding.ResolveMappings(stub, halfChain[:1], 2)
	require.NoError(t, err)
	got[0][0] = 7
	assert.Equal(t, structure.Mapping{1, 0}, src)
}
