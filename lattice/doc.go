// SPDX-License-Identifier: MIT

// Package lattice enumerates the translations that relate a supercell to the
// primitive cell embedded in it.
//
// Coordinates are fractional in the supercell basis. The primitive matrix P
// holds the primitive basis vectors as columns, so the supercell matrix is
// S = P⁻¹ and the supercell contains ncells = round(|det S|) primitive cells.
// Enumerate returns one translation per coset of the primitive lattice inside
// the supercell lattice, the zero vector first.
//
//	p, _ := matrix.NewDiagonal(0.5, 1, 1)
//	vecs, _ := lattice.Enumerate(p)
//	// vecs == [(0,0,0) (0.5,0,0)]
package lattice
