// SPDX-License-Identifier: MIT

package structure

import "github.com/katalvlaran/unfold/lattice"

// Rotation is an integer rotation matrix acting on fractional coordinates.
type Rotation [3][3]int

// Identity is the identity rotation; pure translations use it.
var Identity = Rotation{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// Apply returns R·v.
func (r Rotation) Apply(v lattice.Vector) lattice.Vector {
	var out lattice.Vector
	for i := 0; i < 3; i++ {
		out[i] = float64(r[i][0])*v[0] + float64(r[i][1])*v[1] + float64(r[i][2])*v[2]
	}

	return out
}

// IsIdentity reports whether r is the identity.
func (r Rotation) IsIdentity() bool { return r == Identity }

// Det returns det r; +1 for proper rotations, -1 for improper ones.
func (r Rotation) Det() int {
	return r[0][0]*(r[1][1]*r[2][2]-r[1][2]*r[2][1]) -
		r[0][1]*(r[1][0]*r[2][2]-r[1][2]*r[2][0]) +
		r[0][2]*(r[1][0]*r[2][1]-r[1][1]*r[2][0])
}

// Mul returns the product r·s (apply s first).
func (r Rotation) Mul(s Rotation) Rotation {
	var out Rotation
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = r[i][0]*s[0][j] + r[i][1]*s[1][j] + r[i][2]*s[2][j]
		}
	}

	return out
}

// Neg returns -r, the composition of r with inversion.
func (r Rotation) Neg() Rotation {
	var out Rotation
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = -r[i][j]
		}
	}

	return out
}

// Unresolved marks an atom the matcher could not map.
const Unresolved = -1

// Mapping lists, for every atom i, the index of the atom carried onto it.
type Mapping []int

// UnresolvedAtoms returns the indices i with m[i] == Unresolved, in order.
func (m Mapping) UnresolvedAtoms() []int {
	var out []int
	for i, j := range m {
		if j == Unresolved {
			out = append(out, i)
		}
	}

	return out
}

// IsPermutation reports whether m is a bijection on {0,…,len(m)-1}.
func (m Mapping) IsPermutation() bool {
	seen := make([]bool, len(m))
	for _, j := range m {
		if j < 0 || j >= len(m) || seen[j] {
			return false
		}
		seen[j] = true
	}

	return true
}

// Clone returns an independent copy.
func (m Mapping) Clone() Mapping {
	out := make(Mapping, len(m))
	copy(out, m)

	return out
}
