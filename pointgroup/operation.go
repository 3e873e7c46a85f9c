// SPDX-License-Identifier: MIT

package pointgroup

//go:generate go tool stringer -type=Operation -linecomment -output=operation_string.go

// Operation labels a class of point-group operations. The zero value is invalid.
type Operation int

const (
	_ Operation = iota // invalid

	E       // E
	C2      // C2
	C2x     // C2x
	C2y     // C2y
	C2z     // C2z
	C2p     // C2'
	C2pp    // C2''
	C3      // C3
	C4      // C4
	C6      // C6
	I       // i
	SigmaH  // σh
	SigmaV  // σv
	SigmaD  // σd
	SigmaXY // σxy
	SigmaXZ // σxz
	SigmaYZ // σyz
	S3      // S3
	S4      // S4
	S6      // S6

	// operationCount is one past the last valid Operation.
	operationCount = int(iota)
)

// Valid reports whether o is a defined label.
func (o Operation) Valid() bool { return o > 0 && int(o) < operationCount }

// IsProper reports whether o is a pure rotation (det = +1).
func (o Operation) IsProper() bool {
	switch o {
	case E, C2, C2x, C2y, C2z, C2p, C2pp, C3, C4, C6:
		return true
	default:
		return false
	}
}
