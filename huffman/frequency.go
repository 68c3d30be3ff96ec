package huffman

import (
	"fmt"
	"sort"

	"github.com/chronos-tachyon/textcipher"
)

// FrequencyTable maps each distinct Symbol of a text to its number of
// occurrences.  It is immutable once built.
type FrequencyTable struct {
	counts  map[textcipher.Symbol]uint64
	symbols []textcipher.Symbol
	total   uint64
}

// CountFrequencies builds the FrequencyTable of text.
func CountFrequencies(text string) FrequencyTable {
	counts := make(map[textcipher.Symbol]uint64)
	for _, r := range text {
		counts[textcipher.Symbol(r)]++
	}
	return makeFrequencyTable(counts)
}

// NewFrequencyTable builds a FrequencyTable from explicit counts.  Every
// count must be positive and every Symbol valid.
func NewFrequencyTable(counts map[textcipher.Symbol]uint64) (FrequencyTable, error) {
	copied := make(map[textcipher.Symbol]uint64, len(counts))
	for sym, count := range counts {
		if !sym.IsValid() {
			return FrequencyTable{}, fmt.Errorf("invalid symbol %d in frequency table", int32(sym))
		}
		if count == 0 {
			return FrequencyTable{}, fmt.Errorf("symbol %s has a frequency of 0", sym)
		}
		copied[sym] = count
	}
	return makeFrequencyTable(copied), nil
}

func makeFrequencyTable(counts map[textcipher.Symbol]uint64) FrequencyTable {
	symbols := make([]textcipher.Symbol, 0, len(counts))
	var total uint64
	for sym, count := range counts {
		symbols = append(symbols, sym)
		total += count
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })
	return FrequencyTable{counts: counts, symbols: symbols, total: total}
}

// Len returns the number of distinct Symbols.
func (ft FrequencyTable) Len() int {
	return len(ft.symbols)
}

// Total returns the sum of all counts, i.e. the length of the text in runes.
func (ft FrequencyTable) Total() uint64 {
	return ft.total
}

// Count returns the number of occurrences of sym, or 0 if it never occurs.
func (ft FrequencyTable) Count(sym textcipher.Symbol) uint64 {
	return ft.counts[sym]
}

// Symbols returns the distinct Symbols in ascending code point order.
func (ft FrequencyTable) Symbols() []textcipher.Symbol {
	out := make([]textcipher.Symbol, len(ft.symbols))
	copy(out, ft.symbols)
	return out
}
