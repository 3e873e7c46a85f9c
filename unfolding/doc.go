// SPDX-License-Identifier: MIT

// Package unfolding projects supercell vibrational vectors onto the subspace
// that is invariant under the translations relating the supercell to its
// primitive cell.
//
// Construction runs three stages once:
//
//	lattice.Enumerate   → ncells lattice vectors t
//	ResolveMappings     → per-t atom permutations (every unmatched atom is reported)
//	ExpandMappings      → per-t DOF permutations, expanded[a*ndim+c] = mapping[a]*ndim+c
//
// Project then returns (1/ncells) Σ_t gather(vectors, expanded_t), where
// gather picks row expanded_t[j] of vectors as row j of the result. A
// Projector is immutable once built and safe for concurrent Project calls.
//
// The k-point argument of Project is accepted but not used: the average has
// no exp(-2πi k·t) phase and is exact only at the zone centre.
package unfolding
