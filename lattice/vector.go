// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"math"
)

// Vector is a triplet of fractional coordinates in the supercell basis.
type Vector [3]float64

// Zero is the identity translation.
var Zero = Vector{}

// Add returns v+w.
func (v Vector) Add(w Vector) Vector {
	return Vector{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

// Sub returns v-w.
func (v Vector) Sub(w Vector) Vector {
	return Vector{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

// Dot returns the plain (fractional) inner product of v and w.
func (v Vector) Dot(w Vector) float64 {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2]
}

// Wrap reduces every component into [0,1). Components within eps of an
// integer snap to that integer first, so 0.9999999 wraps to 0.
func (v Vector) Wrap(eps float64) Vector {
	var out Vector
	for i, x := range v {
		x = snap(x, eps)
		x -= math.Floor(x)
		if x >= 1 { // floor rounding at the boundary
			x = 0
		}
		out[i] = x
	}

	return out
}

// MinimumImage reduces every component into [-0.5,0.5).
func (v Vector) MinimumImage() Vector {
	var out Vector
	for i, x := range v {
		out[i] = x - math.Floor(x+0.5)
	}

	return out
}

// IsZero reports whether every component is within eps of zero.
func (v Vector) IsZero(eps float64) bool {
	return math.Abs(v[0]) <= eps && math.Abs(v[1]) <= eps && math.Abs(v[2]) <= eps
}

// EquivalentTo reports whether v and w differ by a lattice vector of the
// supercell, within eps per component.
func (v Vector) EquivalentTo(w Vector, eps float64) bool {
	return v.Sub(w).MinimumImage().IsZero(eps)
}

// String renders the vector with %g components.
func (v Vector) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v[0], v[1], v[2])
}

// less orders vectors lexicographically on (x, y, z).
func less(a, b Vector) bool {
	for i := 0; i < 3; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return false
}

// snap rounds x to the nearest integer when it is within eps of it.
func snap(x, eps float64) float64 {
	if r := math.Round(x); math.Abs(x-r) <= eps {
		if r == 0 {
			return 0 // drop the sign of -0
		}
		return r
	}

	return x
}
