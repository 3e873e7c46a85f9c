// SPDX-License-Identifier: MIT
// Package: pointgroup
//
// rotations.go - integer rotation matrices per class of the proper groups.
//
// Design:
//   - Matrices act on fractional coordinates of the conventional cell:
//     cubic and tetragonal axes for 222, 422 and 432, hexagonal axes
//     (a, b at 120°) for 32 and 622.
//   - Order inside a class is fixed; withInversion negates each matrix to
//     build the improper half, so the centrosymmetric groups need no data.
//   - Validate checks counts, determinants and closure for every table.

package pointgroup

import "github.com/katalvlaran/unfold/structure"

var rotE = []structure.Rotation{structure.Identity}

var rotations222 = [][]structure.Rotation{
	rotE,
	{{{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}}}, // C2z
	{{{-1, 0, 0}, {0, 1, 0}, {0, 0, -1}}}, // C2y
	{{{1, 0, 0}, {0, -1, 0}, {0, 0, -1}}}, // C2x
}

var rotations32 = [][]structure.Rotation{
	rotE,
	{ // C3
		{{0, -1, 0}, {1, -1, 0}, {0, 0, 1}},
		{{-1, 1, 0}, {-1, 0, 0}, {0, 0, 1}},
	},
	{ // C2'
		{{0, -1, 0}, {-1, 0, 0}, {0, 0, -1}},
		{{-1, 1, 0}, {0, 1, 0}, {0, 0, -1}},
		{{1, 0, 0}, {1, -1, 0}, {0, 0, -1}},
	},
}

var rotations422 = [][]structure.Rotation{
	rotE,
	{ // C4
		{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
		{{0, 1, 0}, {-1, 0, 0}, {0, 0, 1}},
	},
	{{{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}}}, // C2
	{ // C2' along a and b
		{{1, 0, 0}, {0, -1, 0}, {0, 0, -1}},
		{{-1, 0, 0}, {0, 1, 0}, {0, 0, -1}},
	},
	{ // C2'' along the face diagonals
		{{0, 1, 0}, {1, 0, 0}, {0, 0, -1}},
		{{0, -1, 0}, {-1, 0, 0}, {0, 0, -1}},
	},
}

var rotations622 = [][]structure.Rotation{
	rotE,
	{ // C6
		{{1, -1, 0}, {1, 0, 0}, {0, 0, 1}},
		{{0, 1, 0}, {-1, 1, 0}, {0, 0, 1}},
	},
	{ // C3
		{{0, -1, 0}, {1, -1, 0}, {0, 0, 1}},
		{{-1, 1, 0}, {-1, 0, 0}, {0, 0, 1}},
	},
	{{{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}}}, // C2
	{ // C2'
		{{0, -1, 0}, {-1, 0, 0}, {0, 0, -1}},
		{{-1, 1, 0}, {0, 1, 0}, {0, 0, -1}},
		{{1, 0, 0}, {1, -1, 0}, {0, 0, -1}},
	},
	{ // C2''
		{{0, 1, 0}, {1, 0, 0}, {0, 0, -1}},
		{{1, -1, 0}, {0, -1, 0}, {0, 0, -1}},
		{{-1, 0, 0}, {-1, 1, 0}, {0, 0, -1}},
	},
}

var rotations432 = [][]structure.Rotation{
	rotE,
	{ // C3 about the body diagonals
		{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}},
		{{0, 1, 0}, {0, 0, 1}, {1, 0, 0}},
		{{0, 0, -1}, {1, 0, 0}, {0, -1, 0}},
		{{0, -1, 0}, {0, 0, -1}, {1, 0, 0}},
		{{0, 0, -1}, {-1, 0, 0}, {0, 1, 0}},
		{{0, 1, 0}, {0, 0, -1}, {-1, 0, 0}},
		{{0, 0, 1}, {-1, 0, 0}, {0, -1, 0}},
		{{0, -1, 0}, {0, 0, 1}, {-1, 0, 0}},
	},
	{ // C2 = C4² about the cube axes
		{{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}},
		{{1, 0, 0}, {0, -1, 0}, {0, 0, -1}},
		{{-1, 0, 0}, {0, 1, 0}, {0, 0, -1}},
	},
	{ // C4
		{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
		{{0, 1, 0}, {-1, 0, 0}, {0, 0, 1}},
		{{1, 0, 0}, {0, 0, -1}, {0, 1, 0}},
		{{1, 0, 0}, {0, 0, 1}, {0, -1, 0}},
		{{0, 0, 1}, {0, 1, 0}, {-1, 0, 0}},
		{{0, 0, -1}, {0, 1, 0}, {1, 0, 0}},
	},
	{ // C2' about the face diagonals
		{{0, 1, 0}, {1, 0, 0}, {0, 0, -1}},
		{{-1, 0, 0}, {0, 0, 1}, {0, 1, 0}},
		{{0, 0, 1}, {0, -1, 0}, {1, 0, 0}},
		{{0, -1, 0}, {-1, 0, 0}, {0, 0, -1}},
		{{-1, 0, 0}, {0, 0, -1}, {0, -1, 0}},
		{{0, 0, -1}, {0, -1, 0}, {-1, 0, 0}},
	},
}
