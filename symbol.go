package textcipher

import (
	"strconv"
)

// Symbol represents a single character of the pipeline's alphabet.  Negative
// symbols are not valid.
type Symbol rune

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// UnknownSymbol is emitted in place of input that maps to no symbol.
const UnknownSymbol = Symbol('?')

// IsValid returns true iff this Symbol is a valid Unicode code point.
func (sym Symbol) IsValid() bool {
	return sym >= 0 && sym <= 0x10ffff
}

// String returns the string representation of this Symbol.  Space is spelled
// out, since a bare space is invisible in tables.
func (sym Symbol) String() string {
	switch {
	case sym == ' ':
		return "'space'"
	case !sym.IsValid():
		return "<invalid>"
	case strconv.IsPrint(rune(sym)):
		return string(rune(sym))
	default:
		return strconv.QuoteRune(rune(sym))
	}
}

// Symbols splits text into its Symbols, one per rune.
func Symbols(text string) []Symbol {
	out := make([]Symbol, 0, len(text))
	for _, r := range text {
		out = append(out, Symbol(r))
	}
	return out
}
