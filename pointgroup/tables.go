// SPDX-License-Identifier: MIT
// Package: pointgroup
//
// tables.go - character data for the proper (and non-centrosymmetric) groups.
//
// Design:
//   - Data only; centrosymmetric groups are derived in registry.go with
//     withInversion, so each g/u pair is written once.
//   - Column order follows the usual textbook layout, E first.
//   - Never edit a published table in place; add a new symbol instead.

package pointgroup

import "github.com/katalvlaran/unfold/structure"

// Shared character matrices for isomorphic groups.
var (
	chars1 = [][]float64{{1}}

	chars2 = [][]float64{
		{1, 1},
		{1, -1},
	}

	chars222 = [][]float64{
		{1, 1, 1, 1},
		{1, 1, -1, -1},
		{1, -1, 1, -1},
		{1, -1, -1, 1},
	}

	chars32 = [][]float64{
		{1, 1, 1},
		{1, 1, -1},
		{2, -1, 0},
	}

	chars422 = [][]float64{
		{1, 1, 1, 1, 1},
		{1, 1, 1, -1, -1},
		{1, -1, 1, 1, -1},
		{1, -1, 1, -1, 1},
		{2, 0, -2, 0, 0},
	}

	chars622 = [][]float64{
		{1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, -1, -1},
		{1, -1, 1, -1, 1, -1},
		{1, -1, 1, -1, -1, 1},
		{2, 1, -1, -2, 0, 0},
		{2, -1, -1, 2, 0, 0},
	}

	chars432 = [][]float64{
		{1, 1, 1, 1, 1},
		{1, 1, 1, -1, -1},
		{2, -1, 2, 0, 0},
		{3, 0, -1, 1, -1},
		{3, 0, -1, -1, 1},
	}
)

var (
	irreps422 = []string{"A1", "A2", "B1", "B2", "E"}
	irreps622 = []string{"A1", "A2", "B1", "B2", "E1", "E2"}
)

// Triclinic, monoclinic, orthorhombic.
var (
	tableC1 = Table{
		Symbol: "1", Schoenflies: "C1",
		Classes: []Operation{E}, Multiplicities: []int{1},
		Irreps: []string{"A"}, Characters: chars1,
		Rotations: [][]structure.Rotation{rotE},
	}
	tableC2 = Table{
		Symbol: "2", Schoenflies: "C2",
		Classes: []Operation{E, C2}, Multiplicities: []int{1, 1},
		Irreps: []string{"A", "B"}, Characters: chars2,
	}
	tableCs = Table{
		Symbol: "m", Schoenflies: "Cs",
		Classes: []Operation{E, SigmaH}, Multiplicities: []int{1, 1},
		Irreps: []string{"A'", "A''"}, Characters: chars2,
	}
	tableD2 = Table{
		Symbol: "222", Schoenflies: "D2",
		Classes: []Operation{E, C2z, C2y, C2x}, Multiplicities: []int{1, 1, 1, 1},
		Irreps: []string{"A", "B1", "B2", "B3"}, Characters: chars222,
		Rotations: rotations222,
	}
	tableC2v = Table{
		Symbol: "mm2", Schoenflies: "C2v",
		Classes: []Operation{E, C2z, SigmaXZ, SigmaYZ}, Multiplicities: []int{1, 1, 1, 1},
		Irreps: []string{"A1", "A2", "B1", "B2"}, Characters: chars222,
	}
)

// Trigonal.
var (
	tableD3 = Table{
		Symbol: "32", Schoenflies: "D3",
		Classes: []Operation{E, C3, C2p}, Multiplicities: []int{1, 2, 3},
		Irreps: []string{"A1", "A2", "E"}, Characters: chars32,
		Rotations: rotations32,
	}
	tableC3v = Table{
		Symbol: "3m", Schoenflies: "C3v",
		Classes: []Operation{E, C3, SigmaV}, Multiplicities: []int{1, 2, 3},
		Irreps: []string{"A1", "A2", "E"}, Characters: chars32,
	}
)

// Tetragonal.
var (
	tableD4 = Table{
		Symbol: "422", Schoenflies: "D4",
		Classes: []Operation{E, C4, C2, C2p, C2pp}, Multiplicities: []int{1, 2, 1, 2, 2},
		Irreps: irreps422, Characters: chars422,
		Rotations: rotations422,
	}
	tableC4v = Table{
		Symbol: "4mm", Schoenflies: "C4v",
		Classes: []Operation{E, C4, C2, SigmaV, SigmaD}, Multiplicities: []int{1, 2, 1, 2, 2},
		Irreps: irreps422, Characters: chars422,
	}
	tableD2d = Table{
		Symbol: "-42m", Schoenflies: "D2d",
		Classes: []Operation{E, S4, C2, C2p, SigmaD}, Multiplicities: []int{1, 2, 1, 2, 2},
		Irreps: irreps422, Characters: chars422,
	}
)

// Hexagonal.
var (
	tableD6 = Table{
		Symbol: "622", Schoenflies: "D6",
		Classes: []Operation{E, C6, C3, C2, C2p, C2pp}, Multiplicities: []int{1, 2, 2, 1, 3, 3},
		Irreps: irreps622, Characters: chars622,
		Rotations: rotations622,
	}
	tableC6v = Table{
		Symbol: "6mm", Schoenflies: "C6v",
		Classes: []Operation{E, C6, C3, C2, SigmaV, SigmaD}, Multiplicities: []int{1, 2, 2, 1, 3, 3},
		Irreps: irreps622, Characters: chars622,
	}
)

// Cubic.
var tableO = Table{
	Symbol: "432", Schoenflies: "O",
	Classes: []Operation{E, C3, C2, C4, C2p}, Multiplicities: []int{1, 8, 3, 6, 6},
	Irreps: []string{"A1", "A2", "E", "T1", "T2"}, Characters: chars432,
	Rotations: rotations432,
}
