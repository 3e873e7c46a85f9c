// SPDX-License-Identifier: MIT

// Package pointgroup is a read-only registry of crystallographic point-group
// character tables keyed by Hermann–Mauguin symbol ("mmm", "6/mmm", "m-3m").
//
// Every Table lists its operation classes (as Operation labels rather than
// strings), class multiplicities, irreducible-representation labels and the
// square character matrix (rows = irreps, columns = classes). The registry is
// built once on first use and never mutated; Lookup hands out deep copies, so
// concurrent readers need no locking.
//
// Groups with an unambiguous conventional setting also carry the integer
// rotation matrices of each class (Table.Rotations, RotationsOf); trigonal and
// hexagonal matrices use hexagonal axes.
//
// Only groups with real characters are tabulated. Centrosymmetric groups are
// generated as the direct product of their proper subgroup with Ci, which
// yields the familiar g/u irrep pairs.
package pointgroup
