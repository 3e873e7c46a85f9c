// SPDX-License-Identifier: MIT

package pointgroup

import "errors"

var (
	// ErrUnknownSymbol is returned (or panicked by MustLookup) for an unregistered symbol.
	ErrUnknownSymbol = errors.New("pointgroup: unknown symbol")

	// ErrMalformedTable indicates inconsistent lengths or an invalid label.
	ErrMalformedTable = errors.New("pointgroup: malformed table")

	// ErrNotOrthogonal indicates the character rows violate the orthogonality relation.
	ErrNotOrthogonal = errors.New("pointgroup: characters are not orthogonal")
)
