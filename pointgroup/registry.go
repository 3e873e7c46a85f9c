// SPDX-License-Identifier: MIT

package pointgroup

import (
	"fmt"
	"sort"
	"sync"
)

// registry is built on first use and read-only afterwards.
var registry = sync.OnceValue(func() map[string]Table {
	tables := []Table{
		tableC1,
		withInversion(tableC1, "-1", "Ci", I),
		tableC2,
		tableCs,
		withInversion(tableC2, "2/m", "C2h", I, SigmaH),
		tableD2,
		tableC2v,
		withInversion(tableD2, "mmm", "D2h", I, SigmaXY, SigmaXZ, SigmaYZ),
		tableD3,
		tableC3v,
		withInversion(tableD3, "-3m", "D3d", I, S6, SigmaD),
		tableD4,
		tableC4v,
		tableD2d,
		withInversion(tableD4, "4/mmm", "D4h", I, S4, SigmaH, SigmaV, SigmaD),
		tableD6,
		tableC6v,
		withInversion(tableD6, "6/mmm", "D6h", I, S3, S6, SigmaH, SigmaD, SigmaV),
		tableO,
		withInversion(tableO, "m-3m", "Oh", I, S6, SigmaH, S4, SigmaD),
	}
	out := make(map[string]Table, len(tables))
	for _, t := range tables {
		if err := t.Validate(); err != nil {
			panic(err)
		}
		if _, dup := out[t.Symbol]; dup {
			panic(fmt.Sprintf("pointgroup: duplicate symbol %q", t.Symbol))
		}
		out[t.Symbol] = t.clone()
	}

	return out
})

// Lookup returns a copy of the table registered under symbol.
func Lookup(symbol string) (Table, bool) {
	t, ok := registry()[symbol]
	if !ok {
		return Table{}, false
	}

	return t.clone(), true
}

// MustLookup is Lookup that panics with ErrUnknownSymbol.
func MustLookup(symbol string) Table {
	t, ok := Lookup(symbol)
	if !ok {
		panic(fmt.Errorf("MustLookup(%q): %w", symbol, ErrUnknownSymbol))
	}

	return t
}

// Find is Lookup with an error result.
func Find(symbol string) (Table, error) {
	t, ok := Lookup(symbol)
	if !ok {
		return Table{}, fmt.Errorf("Find(%q): %w", symbol, ErrUnknownSymbol)
	}

	return t, nil
}

// Symbols returns every registered symbol in sorted order.
func Symbols() []string {
	reg := registry()
	out := make([]string, 0, len(reg))
	for s := range reg {
		out = append(out, s)
	}
	sort.Strings(out)

	return out
}
