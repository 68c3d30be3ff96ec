package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"

	"github.com/chronos-tachyon/textcipher"
)

// Node is a node of a Huffman code tree.  A leaf holds a Symbol and its
// frequency; an internal node holds the combined frequency of exactly two
// children.  Each internal node exclusively owns its children.
type Node struct {
	// Symbol is the leaf's symbol, or InvalidSymbol for internal nodes.
	Symbol textcipher.Symbol

	// Freq is the number of occurrences covered by this subtree.
	Freq uint64

	Left  *Node
	Right *Node
}

// IsLeaf returns true iff this node has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Leaves returns the number of leaves in the subtree rooted at n.
func (n *Node) Leaves() int {
	if n == nil {
		return 0
	}
	if n.IsLeaf() {
		return 1
	}
	return n.Left.Leaves() + n.Right.Leaves()
}

// Dump writes a programmer-readable drawing of the tree to the given writer.
func (n *Node) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	if n == nil {
		buf.WriteString("<nil>\n")
	} else {
		dumpNode(&buf, n, "", "H")
	}
	return buf.WriteTo(w)
}

func dumpNode(buf *bytes.Buffer, n *Node, indent string, side string) {
	if n.IsLeaf() {
		fmt.Fprintf(buf, "%s%s:(%s,%d)\n", indent, side, n.Symbol, n.Freq)
		return
	}
	fmt.Fprintf(buf, "%s%s:(%d)\n", indent, side, n.Freq)
	if n.Left != nil {
		dumpNode(buf, n.Left, indent+strings.Repeat(" ", 2), "0")
	}
	if n.Right != nil {
		dumpNode(buf, n.Right, indent+strings.Repeat(" ", 2), "1")
	}
}

// BuildTree builds the Huffman code tree of text.  It returns nil if text is
// empty.
func BuildTree(text string) *Node {
	return BuildTreeFromFrequencies(CountFrequencies(text))
}

// BuildTreeFromFrequencies builds the Huffman code tree for the given
// frequencies.  It returns nil if the table is empty, and a single leaf if the
// table holds a single Symbol.
//
// Ties are broken deterministically: every node gets a serial number when it
// is created, leaves first in ascending code point order, and of two nodes
// with equal frequency the one with the lower serial is popped first.  The
// first node popped becomes the left child and the second the right child.
//
func BuildTreeFromFrequencies(ft FrequencyTable) *Node {
	symbols := ft.symbols
	if len(symbols) == 0 {
		return nil
	}

	// Step 1: build a minheap of leaves.

	h := nodeHeap{list: make([]heapItem, 0, len(symbols))}
	var nextSerial uint32
	for _, sym := range symbols {
		leaf := &Node{Symbol: sym, Freq: ft.counts[sym]}
		h.list = append(h.list, heapItem{node: leaf, serial: nextSerial})
		nextSerial++
	}
	h.Init()

	// Step 2: pop the two lightest nodes, join them under a new internal
	// node, and push that back, until a single root remains.

	for h.Len() > 1 {
		a := heap.Pop(&h).(heapItem)
		b := heap.Pop(&h).(heapItem)

		freqSum := a.node.Freq + b.node.Freq
		assert.Assertf(freqSum >= a.node.Freq, "frequency overflow: %d + %d", a.node.Freq, b.node.Freq)

		parent := &Node{
			Symbol: textcipher.InvalidSymbol,
			Freq:   freqSum,
			Left:   a.node,
			Right:  b.node,
		}
		heap.Push(&h, heapItem{node: parent, serial: nextSerial})
		nextSerial++
	}

	root := heap.Pop(&h).(heapItem).node
	assert.Assertf(root.Freq == ft.total, "root frequency %d != total %d", root.Freq, ft.total)
	return root
}

// type heapItem + type nodeHeap {{{

type heapItem struct {
	node   *Node
	serial uint32
}

type nodeHeap struct {
	list []heapItem
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.Freq != b.node.Freq {
		return a.node.Freq < b.node.Freq
	}
	return a.serial < b.serial
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(heapItem))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = heapItem{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
