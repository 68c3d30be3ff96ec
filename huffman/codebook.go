package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/chronos-tachyon/assert"

	"github.com/chronos-tachyon/textcipher"
)

// Codebook maps each Symbol of a Huffman code to its Code.  The codes are
// prefix-free.  A Codebook is read-only once built and may be shared freely.
type Codebook struct {
	codes   map[textcipher.Symbol]Code
	minSize byte
	maxSize byte
}

// Entry is one (Symbol, Code) pair of a Codebook.
type Entry struct {
	Symbol textcipher.Symbol
	Code   Code
}

// GenerateCodes walks the tree rooted at root and assigns each leaf the path
// leading to it, 0 for left and 1 for right.  A tree consisting of a single
// leaf gets the one-bit code "0".  A nil root yields an empty Codebook.
func GenerateCodes(root *Node) Codebook {
	codes := make(map[textcipher.Symbol]Code)
	if root == nil {
		return newCodebook(codes)
	}
	if root.IsLeaf() {
		codes[root.Symbol] = MakeCode(1, 0)
		return newCodebook(codes)
	}

	// Walk the tree with an explicit stack.  The current path is carried in
	// stackItem.code, so the code of a leaf is known as soon as we reach it.
	//
	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children

	type stackItem struct {
		node *Node
		code Code
		x    byte
	}

	stack := make([]stackItem, 0, 2*log2ceil(root.Leaves()))

	stackPush := func(node *Node, code Code) {
		stack = append(stack, stackItem{node: node, code: code})
	}

	stackPop := func() {
		stack[len(stack)-1] = stackItem{}
		stack = stack[:len(stack)-1]
	}

	processChild := func(child *Node, code Code) {
		assert.Assertf(child != nil, "internal node with a missing child at %s", code)
		if !child.IsLeaf() {
			stackPush(child, code)
			return
		}
		_, dupe := codes[child.Symbol]
		assert.Assertf(!dupe, "symbol %s appears in more than one leaf", child.Symbol)
		codes[child.Symbol] = code
	}

	stackPush(root, Code{})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(top.node.Left, top.code.Append(0))
		case 1:
			processChild(top.node.Right, top.code.Append(1))
		case 2:
			stackPop()
		}
	}

	return newCodebook(codes)
}

func newCodebook(codes map[textcipher.Symbol]Code) Codebook {
	var minSize, maxSize byte
	first := true
	for _, hc := range codes {
		if first {
			first = false
			minSize, maxSize = hc.Size, hc.Size
		} else if minSize > hc.Size {
			minSize = hc.Size
		} else if maxSize < hc.Size {
			maxSize = hc.Size
		}
	}
	return Codebook{codes: codes, minSize: minSize, maxSize: maxSize}
}

// Len returns the number of Symbols in the Codebook.
func (cb Codebook) Len() int {
	return len(cb.codes)
}

// Lookup returns the Code for sym, if any.
func (cb Codebook) Lookup(sym textcipher.Symbol) (Code, bool) {
	hc, found := cb.codes[sym]
	return hc, found
}

// MinSize is the bit length of the shortest code.
func (cb Codebook) MinSize() byte {
	return cb.minSize
}

// MaxSize is the bit length of the longest code.
func (cb Codebook) MaxSize() byte {
	return cb.maxSize
}

// SizeBySymbol returns the bit length of each Symbol's code.  This is enough
// to reconstruct the canonical form of the code with NewCanonicalCodebook.
func (cb Codebook) SizeBySymbol() map[textcipher.Symbol]byte {
	out := make(map[textcipher.Symbol]byte, len(cb.codes))
	for sym, hc := range cb.codes {
		out[sym] = hc.Size
	}
	return out
}

// Entries returns the (Symbol, Code) pairs sorted by Symbol.
func (cb Codebook) Entries() []Entry {
	out := make([]Entry, 0, len(cb.codes))
	for sym, hc := range cb.codes {
		out = append(out, Entry{Symbol: sym, Code: hc})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out
}

// IsPrefixFree returns true iff every code is non-empty and no code is a
// prefix of another.  All pairs are compared.
func (cb Codebook) IsPrefixFree() bool {
	return cb.checkPrefixFree() == nil
}

func (cb Codebook) checkPrefixFree() error {
	entries := cb.Entries()
	for i, a := range entries {
		if a.Code.Size == 0 {
			return fmt.Errorf("%w: symbol %s has an empty code", ErrNotPrefixFree, a.Symbol)
		}
		for j, b := range entries {
			if i != j && b.Code.HasPrefix(a.Code) {
				return fmt.Errorf("%w: code %s of %s is a prefix of code %s of %s", ErrNotPrefixFree, a.Code, a.Symbol, b.Code, b.Symbol)
			}
		}
	}
	return nil
}

// EncodedSize returns the number of bits needed to encode a text with the
// given frequencies, counting only Symbols present in the Codebook.
func (cb Codebook) EncodedSize(ft FrequencyTable) uint64 {
	var sum uint64
	for _, sym := range ft.symbols {
		if hc, found := cb.codes[sym]; found {
			sum += uint64(hc.Size) * ft.counts[sym]
		}
	}
	return sum
}

// Dump writes a programmer-readable debugging dump of the Codebook to the
// given writer.
func (cb Codebook) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Codebook{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", cb.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", cb.maxSize)
	for _, entry := range cb.Entries() {
		fmt.Fprintf(&buf, "\tEncode(%s) = %s\n", entry.Symbol, entry.Code)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
