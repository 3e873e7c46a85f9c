// SPDX-License-Identifier: MIT
package pointgroup_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/unfold/pointgroup"
	"github.com/katalvlaran/unfold/structure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbols_AllRegistered(t *testing.T) {
	want := []string{
		"-1", "-3m", "-42m", "1", "2", "2/m", "222", "32", "3m", "4/mmm",
		"422", "432", "4mm", "6/mmm", "622", "6mm", "m", "m-3m", "mm2", "mmm",
	}
	assert.Equal(t, want, pointgroup.Symbols())
}

func TestTables_Orthogonal(t *testing.T) {
	for _, sym := range pointgroup.Symbols() {
		t.Run(sym, func(t *testing.T) {
			tab := pointgroup.MustLookup(sym)
			require.NoError(t, tab.Validate())
			assert.Equal(t, sym, tab.Symbol)
			assert.Equal(t, pointgroup.E, tab.Classes[0])

			// Σ d² = h
			sum := 0
			for _, irrep := range tab.Irreps {
				d, ok := tab.Dimension(irrep)
				require.True(t, ok)
				sum += d * d
			}
			assert.Equal(t, tab.Order(), sum)
		})
	}
}

func TestLookup_Orders(t *testing.T) {
	tests := []struct {
		symbol      string
		schoenflies string
		order       int
		classes     int
		centro      bool
	}{
		{"1", "C1", 1, 1, false},
		{"-1", "Ci", 2, 2, true},
		{"mmm", "D2h", 8, 8, true},
		{"-3m", "D3d", 12, 6, true},
		{"4/mmm", "D4h", 16, 10, true},
		{"-42m", "D2d", 8, 5, false},
		{"6/mmm", "D6h", 24, 12, true},
		{"432", "O", 24, 5, false},
		{"m-3m", "Oh", 48, 10, true},
	}
	for _, tc := range tests {
		tab, ok := pointgroup.Lookup(tc.symbol)
		require.True(t, ok, tc.symbol)
		assert.Equal(t, tc.schoenflies, tab.Schoenflies, tc.symbol)
		assert.Equal(t, tc.order, tab.Order(), tc.symbol)
		assert.Len(t, tab.Classes, tc.classes, tc.symbol)
		assert.Equal(t, tc.centro, tab.IsCentrosymmetric(), tc.symbol)
	}
}

func TestLookup_MmmParity(t *testing.T) {
	tab := pointgroup.MustLookup("mmm")
	assert.Equal(t, []string{"Ag", "B1g", "B2g", "B3g", "Au", "B1u", "B2u", "B3u"}, tab.Irreps)
	assert.Equal(t, []pointgroup.Operation{
		pointgroup.E, pointgroup.C2z, pointgroup.C2y, pointgroup.C2x,
		pointgroup.I, pointgroup.SigmaXY, pointgroup.SigmaXZ, pointgroup.SigmaYZ,
	}, tab.Classes)

	chi, ok := tab.Character("B3u", pointgroup.I)
	require.True(t, ok)
	assert.Equal(t, -1.0, chi)
	chi, ok = tab.Character("B1g", pointgroup.SigmaXY)
	require.True(t, ok)
	assert.Equal(t, 1.0, chi)

	_, ok = tab.Character("T1g", pointgroup.E)
	assert.False(t, ok)
	_, ok = tab.Character("Ag", pointgroup.C6)
	assert.False(t, ok)
}

func TestLookup_Unknown(t *testing.T) {
	_, ok := pointgroup.Lookup("23")
	assert.False(t, ok)

	_, err := pointgroup.Find("6/m")
	assert.ErrorIs(t, err, pointgroup.ErrUnknownSymbol)

	assert.Panics(t, func() { pointgroup.MustLookup("") })
}

func TestLookup_ReturnsCopies(t *testing.T) {
	a := pointgroup.MustLookup("4mm")
	a.Characters[0][0] = 42
	a.Classes[1] = pointgroup.C6
	a.Irreps[0] = "X"

	b := pointgroup.MustLookup("4mm")
	assert.Equal(t, 1.0, b.Characters[0][0])
	assert.Equal(t, pointgroup.C4, b.Classes[1])
	assert.Equal(t, "A1", b.Irreps[0])

	// 422 shares its source rows with 4mm.
	assert.Equal(t, "A1", pointgroup.MustLookup("422").Irreps[0])
}

func TestLookup_ConcurrentReaders(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, sym := range pointgroup.Symbols() {
				tab, ok := pointgroup.Lookup(sym)
				if assert.True(t, ok) {
					assert.NoError(t, tab.Validate())
				}
			}
		}()
	}
	wg.Wait()
}

func TestTables_Rotations(t *testing.T) {
	tests := []struct {
		symbol string
		tagged bool
	}{
		{"1", true}, {"-1", true}, {"222", true}, {"mmm", true},
		{"32", true}, {"-3m", true}, {"422", true}, {"4/mmm", true},
		{"622", true}, {"6/mmm", true}, {"432", true}, {"m-3m", true},
		{"2", false}, {"2/m", false}, {"4mm", false}, {"-42m", false},
	}
	for _, tc := range tests {
		t.Run(tc.symbol, func(t *testing.T) {
			tab := pointgroup.MustLookup(tc.symbol)
			if !tc.tagged {
				assert.Nil(t, tab.Rotations)
				_, ok := tab.RotationsOf(pointgroup.E)
				assert.False(t, ok)
				return
			}
			require.Len(t, tab.Rotations, len(tab.Classes))

			seen := make(map[structure.Rotation]bool, tab.Order())
			for c, op := range tab.Classes {
				rots, ok := tab.RotationsOf(op)
				require.True(t, ok, op.String())
				assert.Len(t, rots, tab.Multiplicities[c], op.String())
				for _, r := range rots {
					if op.IsProper() {
						assert.Equal(t, 1, r.Det(), op.String())
					} else {
						assert.Equal(t, -1, r.Det(), op.String())
					}
					seen[r] = true
				}
			}
			assert.Len(t, seen, tab.Order())
			for a := range seen {
				for b := range seen {
					assert.True(t, seen[a.Mul(b)], "%v·%v leaves the group", a, b)
				}
			}
		})
	}
}

func TestTables_RotationsOfInvertedClasses(t *testing.T) {
	oh := pointgroup.MustLookup("m-3m")
	s6, ok := oh.RotationsOf(pointgroup.S6)
	require.True(t, ok)
	assert.Equal(t, structure.Rotation{{0, 0, -1}, {-1, 0, 0}, {0, -1, 0}}, s6[0])

	sigmaH, ok := oh.RotationsOf(pointgroup.SigmaH)
	require.True(t, ok)
	assert.Equal(t, []structure.Rotation{
		{{1, 0, 0}, {0, 1, 0}, {0, 0, -1}},
		{{-1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		{{1, 0, 0}, {0, -1, 0}, {0, 0, 1}},
	}, sigmaH)

	d2h := pointgroup.MustLookup("mmm")
	sxy, ok := d2h.RotationsOf(pointgroup.SigmaXY)
	require.True(t, ok)
	assert.Equal(t, []structure.Rotation{{{1, 0, 0}, {0, 1, 0}, {0, 0, -1}}}, sxy)

	inv, ok := pointgroup.MustLookup("6/mmm").RotationsOf(pointgroup.I)
	require.True(t, ok)
	assert.Equal(t, []structure.Rotation{structure.Identity.Neg()}, inv)

	_, ok = d2h.RotationsOf(pointgroup.C4)
	assert.False(t, ok)
}

func TestLookup_RotationsAreCopies(t *testing.T) {
	a := pointgroup.MustLookup("4/mmm")
	a.Rotations[1][0] = structure.Identity
	rots, ok := a.RotationsOf(pointgroup.C2)
	require.True(t, ok)
	rots[0] = structure.Identity

	b := pointgroup.MustLookup("4/mmm")
	assert.Equal(t, structure.Rotation{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}, b.Rotations[1][0])
	c2, ok := b.RotationsOf(pointgroup.C2)
	require.True(t, ok)
	assert.Equal(t, structure.Rotation{{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}}, c2[0])

	// 422 is the proper half of 4/mmm and shares its source matrices.
	assert.Equal(t, b.Rotations[:5], pointgroup.MustLookup("422").Rotations)
}

func TestValidate_Rejects(t *testing.T) {
	good := pointgroup.MustLookup("2")

	bad := good
	bad.Multiplicities = []int{1}
	assert.ErrorIs(t, bad.Validate(), pointgroup.ErrMalformedTable)

	bad = pointgroup.MustLookup("2")
	bad.Classes = []pointgroup.Operation{pointgroup.C2, pointgroup.E}
	assert.ErrorIs(t, bad.Validate(), pointgroup.ErrMalformedTable)

	bad = pointgroup.MustLookup("2")
	bad.Classes[1] = pointgroup.E
	assert.ErrorIs(t, bad.Validate(), pointgroup.ErrMalformedTable)

	bad = pointgroup.MustLookup("2")
	bad.Characters[1][1] = 1
	assert.ErrorIs(t, bad.Validate(), pointgroup.ErrNotOrthogonal)
}

func TestValidate_RejectsRotations(t *testing.T) {
	c4z := structure.Rotation{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}

	bad := pointgroup.MustLookup("mmm")
	bad.Rotations = bad.Rotations[:3]
	assert.ErrorIs(t, bad.Validate(), pointgroup.ErrMalformedTable)

	// wrong count for the class multiplicity
	bad = pointgroup.MustLookup("422")
	bad.Rotations[1] = bad.Rotations[1][:1]
	assert.ErrorIs(t, bad.Validate(), pointgroup.ErrMalformedTable)

	// improper matrix in a proper class
	bad = pointgroup.MustLookup("222")
	bad.Rotations[1][0] = bad.Rotations[1][0].Neg()
	assert.ErrorIs(t, bad.Validate(), pointgroup.ErrMalformedTable)

	// right determinant, but C4z·C4z = C2z is absent from 222
	bad = pointgroup.MustLookup("222")
	bad.Rotations[1][0] = c4z
	err := bad.Validate()
	assert.ErrorIs(t, err, pointgroup.ErrMalformedTable)
	assert.Contains(t, err.Error(), "not closed")

	// identity class must be E alone
	bad = pointgroup.MustLookup("222")
	bad.Rotations[0] = []structure.Rotation{bad.Rotations[1][0]}
	assert.ErrorIs(t, bad.Validate(), pointgroup.ErrMalformedTable)
}

func TestOperation_String(t *testing.T) {
	assert.Equal(t, "E", pointgroup.E.String())
	assert.Equal(t, "C2'", pointgroup.C2p.String())
	assert.Equal(t, "C2''", pointgroup.C2pp.String())
	assert.Equal(t, "σxy", pointgroup.SigmaXY.String())
	assert.Equal(t, "S6", pointgroup.S6.String())
	assert.Equal(t, "Operation(0)", pointgroup.Operation(0).String())
	assert.Equal(t, "Operation(99)", pointgroup.Operation(99).String())

	assert.True(t, pointgroup.C4.Valid())
	assert.False(t, pointgroup.Operation(0).Valid())
	assert.True(t, pointgroup.C3.IsProper())
	assert.False(t, pointgroup.S4.IsProper())
}
