// Package unfold is the translational-projection core of phonon band
// unfolding: given a supercell and the primitive cell it was built from, it
// averages mode vectors over the supercell's pure lattice translations so that
// only the part periodic in the primitive cell survives.
//
// 🚀 What is in the box?
//
//	A small, deterministic, allocation-light library built from four steps:
//		• Lattice vectors: every primitive translation inside the supercell
//		• Atom mappings: the permutation each translation induces on the atoms
//		• Mapping expansion: atom permutations lifted to degree-of-freedom indices
//		• Projection: gather, sum and divide by the number of primitive cells
//
// ✨ Why this shape?
//
//   - Construction does all the symmetry work once; Project is pure arithmetic
//   - A built Projector is immutable and safe for concurrent use
//   - Failures are reported in full: every translation that does not map the
//     ideal cell onto itself is listed with its atoms
//
// Subpackages:
//
//	matrix/:      row-major Dense matrices, LU with partial pivoting, inverse, det
//	lattice/:     fractional Vector type and lattice-vector enumeration
//	structure/:   ideal cells, rotations, atom mappings and the position matcher
//	unfolding/:   mapping resolution, expansion and the Projector
//	pointgroup/:  read-only point-group character-table registry
//	config/:      environment-derived defaults (UNFOLD_SYMPREC, UNFOLD_NDIM, UNFOLD_LOG_LEVEL)
//
// Quick example (monatomic chain doubled along a):
//
//	prim, _ := lattice.NewSupercellPrimitive(2, 1, 1)
//	unit, _ := structure.NewCell([]lattice.Vector{{0, 0, 0}}, nil)
//	ideal, _ := unit.Supercell(2, 1, 1)
//	p, _ := unfolding.NewProjector(prim, ideal)
//	v, _ := p.ProjectVector([]float64{1, 0, 0, -1, 0, 0}, lattice.Vector{})
//	// v == [0 0 0 0 0 0]: the zone-boundary mode has no primitive-cell weight.
package unfold
