// SPDX-License-Identifier: MIT

package unfolding

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/unfold/config"
	"github.com/katalvlaran/unfold/matrix"
	"github.com/katalvlaran/unfold/structure"
)

// DefaultNDim is the number of Cartesian components per atom.
const DefaultNDim = 3

// Option configures NewProjector. Values are validated by NewProjector, not
// by the setters, so settings loaded at runtime surface as errors.
type Option func(*Options)

// Options is the resolved projector configuration.
type Options struct {
	ndim    int
	symprec float64
	matcher structure.Matcher
	basis   matrix.Matrix
	logger  *slog.Logger
}

// WithNDim sets the degrees of freedom per atom (default 3).
func WithNDim(ndim int) Option {
	return func(o *Options) { o.ndim = ndim }
}

// WithSymprec sets the positional tolerance of the default matcher.
func WithSymprec(symprec float64) Option {
	return func(o *Options) { o.symprec = symprec }
}

// WithMatcher replaces the default PositionMatcher.
func WithMatcher(m structure.Matcher) Option {
	return func(o *Options) { o.matcher = m }
}

// WithLattice makes the default matcher measure Cartesian distances; rows of
// basis are the supercell vectors.
func WithLattice(basis matrix.Matrix) Option {
	return func(o *Options) { o.basis = basis }
}

// WithLogger sets the construction-time logger. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithConfig applies environment-derived settings (ndim and symprec).
func WithConfig(s config.Settings) Option {
	return func(o *Options) {
		o.ndim = s.NDim
		o.symprec = s.Symprec
	}
}

func gatherOptions(user ...Option) Options {
	o := Options{
		ndim:    DefaultNDim,
		symprec: structure.DefaultSymprec,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
