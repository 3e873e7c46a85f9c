// SPDX-License-Identifier: MIT

package lattice

import "math"

// DefaultTolerance is the per-component snapping tolerance for fractional
// coordinates.
const DefaultTolerance = 1e-5

const panicToleranceInvalid = "lattice: WithTolerance: eps must be finite and positive"

// Option configures Enumerate.
type Option func(*Options)

// Options is the resolved Enumerate configuration.
type Options struct {
	tolerance float64
}

// WithTolerance sets the snapping tolerance. Panics on eps <= 0, NaN or ±Inf.
func WithTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tolerance = eps }
}

func gatherOptions(user ...Option) Options {
	o := Options{tolerance: DefaultTolerance}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
