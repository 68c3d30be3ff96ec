package textcipher

import (
	"fmt"
	"strings"
)

// Skip records one input symbol that a lossy projection dropped.
type Skip struct {
	// Index is the rune index of the symbol within the input text.
	Index int

	// Symbol is the dropped symbol.
	Symbol Symbol
}

// String returns the string representation of this Skip.
func (s Skip) String() string {
	return fmt.Sprintf("%s@%d", s.Symbol, s.Index)
}

// Skipped lists the input positions dropped by a lossy projection, in input
// order.  A nil Skipped means nothing was lost.
//
// Both Huffman encoding and Polybius encryption skip symbols they cannot map
// instead of failing; they return a Skipped next to their output so that the
// loss stays observable.
//
type Skipped []Skip

// Add appends a Skip for the symbol at the given rune index.
func (list *Skipped) Add(index int, sym Symbol) {
	*list = append(*list, Skip{Index: index, Symbol: sym})
}

// Len returns the number of skipped positions.
func (list Skipped) Len() int {
	return len(list)
}

// Symbols returns the distinct skipped symbols, in order of first appearance.
func (list Skipped) Symbols() []Symbol {
	seen := make(map[Symbol]struct{}, len(list))
	out := make([]Symbol, 0, len(list))
	for _, s := range list {
		if _, found := seen[s.Symbol]; found {
			continue
		}
		seen[s.Symbol] = struct{}{}
		out = append(out, s.Symbol)
	}
	return out
}

// Err returns nil if nothing was skipped, or else an error wrapping
// ErrUnknownSymbol that names the skipped symbols.
func (list Skipped) Err() error {
	if len(list) == 0 {
		return nil
	}
	syms := list.Symbols()
	names := make([]string, len(syms))
	for i, sym := range syms {
		names[i] = sym.String()
	}
	return fmt.Errorf("%w: skipped %d position(s), symbols [%s]", ErrUnknownSymbol, len(list), strings.Join(names, " "))
}

// String returns the string representation of this Skipped.
func (list Skipped) String() string {
	parts := make([]string, len(list))
	for i, s := range list {
		parts[i] = s.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

var _ fmt.Stringer = Skip{}
var _ fmt.Stringer = Skipped(nil)
