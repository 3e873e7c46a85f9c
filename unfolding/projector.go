// SPDX-License-Identifier: MIT

package unfolding

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"github.com/katalvlaran/unfold/lattice"
	"github.com/katalvlaran/unfold/matrix"
	"github.com/katalvlaran/unfold/structure"
)

// PrimitiveCell exposes the primitive matrix: primitive basis vectors as
// columns, in supercell fractional coordinates.
type PrimitiveCell interface {
	PrimitiveMatrix() matrix.Matrix
}

// UnitCell exposes the ideal supercell's fractional atomic positions.
// Implementations that also provide Numbers() []int get species-aware matching.
type UnitCell interface {
	ScaledPositions() []lattice.Vector
}

type speciesProvider interface {
	Numbers() []int
}

// Projector averages vectors over the translation group of the supercell.
// It is immutable after NewProjector and safe for concurrent use.
type Projector struct {
	ncells   int
	natoms   int
	ndim     int
	vectors  []lattice.Vector
	mappings []structure.Mapping
	expanded [][]int
}

// NewProjector enumerates the lattice vectors of prim, resolves the atom
// mapping of every translation on ideal, and expands the mappings to DOF
// indices. Construction either fully succeeds or returns a nil Projector.
//
// Errors:
//   - ErrNilInput, ErrInvalidDimension (ndim < 1), ErrInvalidSymprec, structure.ErrEmptyCell,
//   - lattice errors, including *lattice.LatticeEnumerationError (ErrLatticeEnumeration),
//   - *MappingResolutionError (ErrMappingResolutionFailed).
func NewProjector(prim PrimitiveCell, ideal UnitCell, opts ...Option) (*Projector, error) {
	if prim == nil || ideal == nil {
		return nil, fmt.Errorf("NewProjector: %w", ErrNilInput)
	}
	o := gatherOptions(opts...)
	if o.ndim < 1 {
		return nil, fmt.Errorf("NewProjector: ndim=%d: %w", o.ndim, ErrInvalidDimension)
	}
	log := o.logger

	vectors, err := lattice.Enumerate(prim.PrimitiveMatrix())
	if err != nil {
		log.Error("lattice vector enumeration failed", slog.Any("error", err))
		return nil, fmt.Errorf("NewProjector: %w", err)
	}

	positions := ideal.ScaledPositions()
	natoms := len(positions)
	if natoms == 0 {
		return nil, fmt.Errorf("NewProjector: %w", structure.ErrEmptyCell)
	}
	matcher := o.matcher
	if matcher == nil {
		if matcher, err = defaultMatcher(ideal, positions, o); err != nil {
			return nil, fmt.Errorf("NewProjector: %w", err)
		}
	}

	mappings, err := ResolveMappings(matcher, vectors, natoms)
	if err != nil {
		var mre *MappingResolutionError
		if errors.As(err, &mre) {
			for _, f := range mre.Failures {
				log.Warn("translation does not map the ideal cell onto itself",
					slog.Int("cell", f.Cell),
					slog.String("vector", f.Vector.String()),
					slog.Any("atoms", f.Atoms))
			}
		}
		return nil, fmt.Errorf("NewProjector: %w", err)
	}

	expanded, err := ExpandMappings(mappings, natoms, o.ndim)
	if err != nil {
		return nil, fmt.Errorf("NewProjector: %w", err)
	}

	log.Debug("translational projector ready",
		slog.Int("ncells", len(vectors)),
		slog.Int("natoms", natoms),
		slog.Int("ndim", o.ndim))

	return &Projector{
		ncells:   len(vectors),
		natoms:   natoms,
		ndim:     o.ndim,
		vectors:  vectors,
		mappings: mappings,
		expanded: expanded,
	}, nil
}

func defaultMatcher(ideal UnitCell, positions []lattice.Vector, o Options) (structure.Matcher, error) {
	var numbers []int
	if sp, ok := ideal.(speciesProvider); ok {
		numbers = sp.Numbers()
	}
	cell, err := structure.NewCell(positions, numbers)
	if err != nil {
		return nil, err
	}
	if !(o.symprec > 0) || math.IsInf(o.symprec, 0) {
		return nil, fmt.Errorf("symprec=%g: %w", o.symprec, ErrInvalidSymprec)
	}
	mopts := []structure.MatcherOption{structure.WithSymprec(o.symprec)}
	if o.basis != nil {
		mopts = append(mopts, structure.WithLattice(o.basis))
	}

	return structure.NewPositionMatcher(cell, mopts...)
}

// NCells returns the number of lattice vectors (primitive cells in the supercell).
func (p *Projector) NCells() int { return p.ncells }

// NAtoms returns the atom count of the ideal cell.
func (p *Projector) NAtoms() int { return p.natoms }

// NDim returns the degrees of freedom per atom.
func (p *Projector) NDim() int { return p.ndim }

// Size returns natoms*ndim, the row count Project expects.
func (p *Projector) Size() int { return p.natoms * p.ndim }

// LatticeVectors returns a copy of the enumerated translations.
func (p *Projector) LatticeVectors() []lattice.Vector {
	out := make([]lattice.Vector, len(p.vectors))
	copy(out, p.vectors)

	return out
}

// AtomMappings returns a copy of the ncells×natoms atom permutations.
// AtomMappings()[k][i] is the atom that LatticeVectors()[k] carries onto atom i.
func (p *Projector) AtomMappings() []structure.Mapping {
	out := make([]structure.Mapping, len(p.mappings))
	for i, m := range p.mappings {
		out[i] = m.Clone()
	}

	return out
}

// ExpandedMappings returns a copy of the ncells×(natoms*ndim) DOF permutations.
func (p *Projector) ExpandedMappings() [][]int {
	out := make([][]int, len(p.expanded))
	for i, m := range p.expanded {
		out[i] = append([]int(nil), m...)
	}

	return out
}

// Project returns the translation average of every column of vectors.
//
// Implementation:
//   - Stage 1: validate vectors has natoms*ndim rows.
//   - Stage 2: for each expanded mapping m, add row m[j] of vectors to row j of
//     a zeroed accumulator.
//   - Stage 3: scale the accumulator by 1/ncells.
//
// kpoint is accepted for interface symmetry and not used; see the package doc.
// vectors is not mutated.
//
// Complexity:
//   - Time O(ncells*rows*cols), Space O(rows*cols).
func (p *Projector) Project(vectors matrix.Matrix, kpoint lattice.Vector) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(vectors); err != nil {
		return nil, fmt.Errorf("Project: %w", err)
	}
	rows := p.Size()
	if vectors.Rows() != rows {
		return nil, fmt.Errorf("Project: want %d rows (natoms %d x ndim %d), got %dx%d: %w",
			rows, p.natoms, p.ndim, vectors.Rows(), vectors.Cols(), ErrDimensionMismatch)
	}
	src, err := matrix.AsDense(vectors)
	if err != nil {
		return nil, fmt.Errorf("Project: %w", err)
	}
	acc, err := matrix.ZerosLike(vectors)
	if err != nil {
		return nil, fmt.Errorf("Project: %w", err)
	}

	var dst, from []float64
	for _, m := range p.expanded {
		for j, srcRow := range m {
			if dst, err = acc.RowView(j); err != nil {
				return nil, fmt.Errorf("Project: %w", err)
			}
			if from, err = src.RowView(srcRow); err != nil {
				return nil, fmt.Errorf("Project: %w", err)
			}
			vecmath.AddBlockInPlace(dst, from)
		}
	}

	scale := 1 / float64(p.ncells)
	for j := 0; j < rows; j++ {
		if dst, err = acc.RowView(j); err != nil {
			return nil, fmt.Errorf("Project: %w", err)
		}
		vecmath.ScaleBlockInPlace(dst, scale)
	}

	return acc, nil
}

// ProjectVector projects a single column vector of length natoms*ndim.
func (p *Projector) ProjectVector(v []float64, kpoint lattice.Vector) ([]float64, error) {
	if err := matrix.ValidateVecLen(v, p.Size()); err != nil {
		return nil, fmt.Errorf("ProjectVector: %w", err)
	}
	col, err := matrix.NewDense(len(v), 1)
	if err != nil {
		return nil, fmt.Errorf("ProjectVector: %w", err)
	}
	for i, x := range v {
		if err = col.Set(i, 0, x); err != nil {
			return nil, fmt.Errorf("ProjectVector: %w", err)
		}
	}
	out, err := p.Project(col, kpoint)
	if err != nil {
		return nil, fmt.Errorf("ProjectVector: %w", err)
	}

	return out.Col(0)
}

// Weights returns the squared norm of every projected column. For unit
// eigenvectors this is the share of each band that survives unfolding.
func (p *Projector) Weights(vectors matrix.Matrix, kpoint lattice.Vector) ([]float64, error) {
	proj, err := p.Project(vectors, kpoint)
	if err != nil {
		return nil, fmt.Errorf("Weights: %w", err)
	}
	w, err := matrix.ColumnNormsSquared(proj)
	if err != nil {
		return nil, fmt.Errorf("Weights: %w", err)
	}

	return w, nil
}

// NormalizedWeights is Weights on a copy of vectors whose columns are first
// scaled to unit norm. Zero columns get weight 0.
func (p *Projector) NormalizedWeights(vectors matrix.Matrix, kpoint lattice.Vector) ([]float64, error) {
	unit, _, err := matrix.NormalizeColumns(vectors)
	if err != nil {
		return nil, fmt.Errorf("NormalizedWeights: %w", err)
	}
	w, err := p.Weights(unit, kpoint)
	if err != nil {
		return nil, fmt.Errorf("NormalizedWeights: %w", err)
	}

	return w, nil
}
