package huffman

import (
	"fmt"
	"sort"

	"github.com/chronos-tachyon/textcipher"
	"github.com/chronos-tachyon/textcipher/bitseq"
)

// Build counts the frequencies of text, builds its code tree, and derives
// the Codebook.  If text is empty, it returns a nil tree, an empty Codebook,
// and an error wrapping textcipher.ErrEmptyInput; callers are expected to
// treat that as "no codes" rather than as a failure.
func Build(text string) (*Node, Codebook, error) {
	root := BuildTree(text)
	cb := GenerateCodes(root)
	if root == nil {
		return nil, cb, fmt.Errorf("cannot build Huffman tree: %w", textcipher.ErrEmptyInput)
	}
	return root, cb, nil
}

// Encode concatenates the codes of each Symbol of text.  Symbols that have no
// code are skipped and reported, by rune index, in the returned Skipped.
func (cb Codebook) Encode(text string) (bitseq.Sequence, textcipher.Skipped) {
	var out bitseq.Sequence
	var skipped textcipher.Skipped
	index := 0
	for _, r := range text {
		sym := textcipher.Symbol(r)
		if hc, found := cb.codes[sym]; found {
			out = hc.AppendTo(out)
		} else {
			skipped.Add(index, sym)
		}
		index++
	}
	return out, skipped
}

// Canonical returns the canonical Huffman code with the same code lengths as
// this Codebook.  Canonical codes can be rebuilt from the lengths alone.
//
// References:
//
//     <https://www.rfc-editor.org/rfc/rfc1951.html>, Section 3.2.2
//
func (cb Codebook) Canonical() Codebook {
	codes := make(map[textcipher.Symbol]Code, len(cb.codes))
	for sym, hc := range cb.codes {
		codes[sym] = Code{Size: hc.Size}
	}
	assignCanonical(codes)
	return newCodebook(codes)
}

// NewCanonicalCodebook builds the canonical Huffman code for the given code
// lengths, as returned by Codebook.SizeBySymbol.
//
// Not all inputs are valid.  Lengths must satisfy the Kraft equality, i.e.
// describe a complete prefix code; the one exception is a single Symbol with
// a length of 1, which is how a one-symbol text is coded.
//
func NewCanonicalCodebook(sizes map[textcipher.Symbol]byte) (Codebook, error) {
	if err := checkSizes(sizes); err != nil {
		return Codebook{}, err
	}
	codes := make(map[textcipher.Symbol]Code, len(sizes))
	for sym, size := range sizes {
		codes[sym] = Code{Size: size}
	}
	assignCanonical(codes)
	return newCodebook(codes), nil
}

// assignCanonical overwrites codes[Symbol].Bits with the canonical code for
// the existing codes[Symbol].Size assignments.
func assignCanonical(codes map[textcipher.Symbol]Code) {
	if len(codes) == 0 {
		return
	}

	// Step 1: sort the symbols by (codes[Symbol].Size, Symbol) ascending.

	sorted := make(bySize, 0, len(codes))
	for sym, hc := range codes {
		sorted = append(sorted, symbolAndSize{sym, hc.Size})
	}
	sorted.Sort()

	// Step 2: assign the codes sequentially, per the algorithm detailed at
	// <https://en.wikipedia.org/w/index.php?title=Canonical_Huffman_code&oldid=999983137>.

	lastSize := sorted[0].size
	nextCode := uint64(0)
	for _, item := range sorted {
		if item.size > lastSize {
			nextCode <<= (item.size - lastSize)
			lastSize = item.size
		}
		codes[item.symbol] = MakeCode(item.size, nextCode)
		nextCode++
	}
}

// type symbolAndSize + type bySize {{{

type symbolAndSize struct {
	symbol textcipher.Symbol
	size   byte
}

type bySize []symbolAndSize

func (list bySize) Len() int {
	return len(list)
}

func (list bySize) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySize) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.size != b.size {
		return a.size < b.size
	}
	return a.symbol < b.symbol
}

func (list bySize) Sort() {
	sort.Sort(list)
}

var _ sort.Interface = bySize(nil)

// }}}
