// SPDX-License-Identifier: MIT

package structure

import (
	"fmt"
	"math"

	"github.com/katalvlaran/unfold/lattice"
)

// Cell is an ideal unit cell: fractional positions and optional species numbers.
// A Cell is immutable after NewCell; accessors return copies.
type Cell struct {
	positions []lattice.Vector
	numbers   []int // nil means "all atoms are the same species"
}

// NewCell validates and copies the atom list.
//
// Errors:
//   - ErrEmptyCell when positions is empty,
//   - ErrSpeciesLength when numbers is non-nil and its length differs,
//   - ErrNonFinitePosition for NaN/±Inf coordinates.
func NewCell(positions []lattice.Vector, numbers []int) (*Cell, error) {
	if len(positions) == 0 {
		return nil, ErrEmptyCell
	}
	if numbers != nil && len(numbers) != len(positions) {
		return nil, fmt.Errorf("NewCell: %d positions, %d species numbers: %w",
			len(positions), len(numbers), ErrSpeciesLength)
	}
	for i, p := range positions {
		for _, x := range p {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, fmt.Errorf("NewCell: atom %d: %w", i, ErrNonFinitePosition)
			}
		}
	}

	c := &Cell{positions: make([]lattice.Vector, len(positions))}
	copy(c.positions, positions)
	if numbers != nil {
		c.numbers = make([]int, len(numbers))
		copy(c.numbers, numbers)
	}

	return c, nil
}

// Len returns the atom count.
func (c *Cell) Len() int { return len(c.positions) }

// ScaledPositions returns a copy of the fractional positions.
func (c *Cell) ScaledPositions() []lattice.Vector {
	out := make([]lattice.Vector, len(c.positions))
	copy(out, c.positions)

	return out
}

// Numbers returns a copy of the species numbers, or nil.
func (c *Cell) Numbers() []int {
	if c.numbers == nil {
		return nil
	}
	out := make([]int, len(c.numbers))
	copy(out, c.numbers)

	return out
}

// Position returns the fractional position of atom i.
func (c *Cell) Position(i int) lattice.Vector { return c.positions[i] }

// sameSpecies reports whether atoms i and j may be matched.
func (c *Cell) sameSpecies(i, j int) bool {
	return c.numbers == nil || c.numbers[i] == c.numbers[j]
}

// Supercell replicates c on an a×b×c grid and returns the result in the
// supercell's fractional coordinates. Atom order is cell-major: all atoms of
// image (0,0,0) first, then (0,0,1), ... with the last axis fastest.
func (c *Cell) Supercell(na, nb, nc int) (*Cell, error) {
	if na < 1 || nb < 1 || nc < 1 {
		return nil, fmt.Errorf("Supercell(%d,%d,%d): %w", na, nb, nc, ErrInvalidMultiplicity)
	}
	n := na * nb * nc * len(c.positions)
	pos := make([]lattice.Vector, 0, n)
	var nums []int
	if c.numbers != nil {
		nums = make([]int, 0, n)
	}
	for i := 0; i < na; i++ {
		for j := 0; j < nb; j++ {
			for k := 0; k < nc; k++ {
				for a, p := range c.positions {
					pos = append(pos, lattice.Vector{
						(p[0] + float64(i)) / float64(na),
						(p[1] + float64(j)) / float64(nb),
						(p[2] + float64(k)) / float64(nc),
					})
					if nums != nil {
						nums = append(nums, c.numbers[a])
					}
				}
			}
		}
	}

	return NewCell(pos, nums)
}
