// SPDX-License-Identifier: MIT

// Package structure models the ideal (symmetry-exact) unit cell of a supercell
// and the structure-matching capability that tells which atom a symmetry
// operation carries onto which.
//
// The Matcher contract is deliberately narrow: ResolveMapping(R, t) returns,
// for every atom i, the index j of the atom whose image R·x_j + t lands on x_i
// (modulo the cell), or Unresolved when no image lies within the positional
// tolerance.
// PositionMatcher is the default, tolerance-based implementation.
package structure
