package huffman

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chronos-tachyon/textcipher"
	"github.com/chronos-tachyon/textcipher/bitseq"
)

var (
	// ErrNotPrefixFree is returned when a set of codes is ambiguous.
	ErrNotPrefixFree = errors.New("codes are not prefix-free")

	// ErrInvalidCode is returned when a bit sequence leads off the tree.
	ErrInvalidCode = errors.New("invalid code")
)

// Decode walks the tree rooted at root, one bit at a time: 0 descends left,
// 1 descends right.  Whenever a leaf is reached its Symbol is emitted and the
// walk restarts at the root.
//
// A tree consisting of a single leaf decodes each 0 bit to its Symbol.
//
// Decode fails with textcipher.ErrIncompleteCode if bits ends in the middle
// of a code, and with textcipher.ErrEmptyInput if bits is non-empty but there
// is no tree.
//
func Decode(bits bitseq.Sequence, root *Node) (string, error) {
	if len(bits) == 0 {
		return "", nil
	}
	if root == nil {
		return "", fmt.Errorf("cannot decode %d bit(s) without a tree: %w", len(bits), textcipher.ErrEmptyInput)
	}

	var out strings.Builder

	if root.IsLeaf() {
		for i, bit := range bits {
			if bit != bitseq.Zero {
				return "", fmt.Errorf("%w: bit %d is 1 in a single-symbol code (unpacked=%q)", ErrInvalidCode, i, out.String())
			}
			out.WriteRune(rune(root.Symbol))
		}
		return out.String(), nil
	}

	n := root
	start := 0
	for i, bit := range bits {
		if n == root {
			start = i
		}
		if bit == bitseq.Zero {
			n = n.Left
		} else {
			n = n.Right
		}
		if n == nil {
			return "", fmt.Errorf("%w: dead end at bit %d (unpacked=%q)", ErrInvalidCode, i, out.String())
		}
		if n.IsLeaf() {
			out.WriteRune(rune(n.Symbol))
			n = root
		}
	}
	if n != root {
		return "", fmt.Errorf("%w: %d trailing bit(s) from offset %d (unpacked=%q)", textcipher.ErrIncompleteCode, len(bits)-start, start, out.String())
	}
	return out.String(), nil
}

// Tree rebuilds a decoding tree from this Codebook.  The rebuilt tree has the
// same shape as the tree the codes came from, but its Freq fields are zero.
//
// It fails with textcipher.ErrEmptyInput for an empty Codebook and with
// ErrNotPrefixFree if the codes are ambiguous.
//
func (cb Codebook) Tree() (*Node, error) {
	if len(cb.codes) == 0 {
		return nil, fmt.Errorf("cannot rebuild Huffman tree: %w", textcipher.ErrEmptyInput)
	}
	if err := cb.checkPrefixFree(); err != nil {
		return nil, err
	}

	entries := cb.Entries()
	if len(entries) == 1 && entries[0].Code == MakeCode(1, 0) {
		return &Node{Symbol: entries[0].Symbol}, nil
	}

	root := &Node{Symbol: textcipher.InvalidSymbol}
	for _, entry := range entries {
		n := root
		for i := byte(0); i < entry.Code.Size; i++ {
			next := &n.Left
			if entry.Code.Bit(i) != 0 {
				next = &n.Right
			}
			if *next == nil {
				*next = &Node{Symbol: textcipher.InvalidSymbol}
			}
			n = *next
		}
		n.Symbol = entry.Symbol
	}
	return root, nil
}

// checkSizes verifies that code lengths describe a complete prefix code.
func checkSizes(sizes map[textcipher.Symbol]byte) error {
	var countArray [maxBitsPerCode + 1]uint64
	var minSize, maxSize byte
	first := true
	for sym, size := range sizes {
		if !sym.IsValid() {
			return fmt.Errorf("invalid symbol %d while constructing Huffman code", int32(sym))
		}

		// forbid codes with sizes outside 1 .. maxBitsPerCode
		if size == 0 || size > maxBitsPerCode {
			return fmt.Errorf("invalid bit length for symbol %s while constructing Huffman code: got %d, max %d", sym, size, maxBitsPerCode)
		}

		if first {
			first = false
			minSize, maxSize = size, size
		} else if minSize > size {
			minSize = size
		} else if maxSize < size {
			maxSize = size
		}
		countArray[size]++
	}

	if len(sizes) == 0 {
		return fmt.Errorf("cannot construct Huffman code: %w", textcipher.ErrEmptyInput)
	}

	// permit degenerate code with 1 symbol
	if len(sizes) == 1 && maxSize == 1 {
		return nil
	}

	// code counts the codes in use at each length, in units of that length.
	var code uint64
	for size := byte(1); size <= maxSize; size++ {
		code = code<<1 + countArray[size]
		if code > uint64(1)<<size {
			return fmt.Errorf("%w: too many codes of length %d", ErrNotPrefixFree, size)
		}
	}
	if code != uint64(1)<<maxSize {
		return fmt.Errorf("degenerate Huffman tree: expected %d, got %d", uint64(1)<<maxSize, code)
	}
	return nil
}
