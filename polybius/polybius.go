// Package polybius implements a Polybius square: a static substitution cipher
// that replaces each symbol with its two-digit (row, column) coordinate in a
// square grid.
package polybius

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/chronos-tachyon/assert"

	"github.com/chronos-tachyon/textcipher"
)

// UkrainianAlphabet is the reference alphabet: the 33 Ukrainian letters
// followed by space, period and comma, 36 symbols in all.
const UkrainianAlphabet = "абвгґдеєжзиіїйклмнопрстуфхцчшщьюя .,"

// DefaultGridSize is the grid size that exactly fits UkrainianAlphabet.
const DefaultGridSize = 6

// MaxGridSize is the largest grid whose coordinates are single digits.
const MaxGridSize = 9

var (
	// ErrInvalidGridSize is returned for grid sizes outside 1 .. MaxGridSize.
	ErrInvalidGridSize = errors.New("invalid grid size")

	// ErrDuplicateSymbol is returned when a symbol would occupy two cells.
	ErrDuplicateSymbol = errors.New("duplicate symbol")

	// ErrReservedSymbol is returned when textcipher.UnknownSymbol would
	// occupy a cell, since Decrypt uses it for coordinates outside the table.
	ErrReservedSymbol = errors.New("reserved symbol")
)

// Default is the table for UkrainianAlphabet on a DefaultGridSize grid.  It is
// built once and shared read-only.
var Default = mustBuildTable(UkrainianAlphabet, DefaultGridSize)

// Table is a Polybius square: a bijection between symbols and coordinates.
// It is immutable once built and safe for concurrent use.
type Table struct {
	size    int
	cells   []textcipher.Symbol
	forward map[textcipher.Symbol]string
	reverse map[string]textcipher.Symbol
	dropped []textcipher.Symbol
}

// Entry is one cell of a Table.
type Entry struct {
	Symbol     textcipher.Symbol
	Coordinate string
}

// BuildTable fills a gridSize × gridSize square row by row with the symbols
// of alphabet, starting at coordinate "11".  Symbols beyond gridSize² do not
// fit and are dropped; they are listed by Dropped.  A grid cell may not hold
// textcipher.UnknownSymbol.
func BuildTable(alphabet string, gridSize int) (*Table, error) {
	if gridSize < 1 || gridSize > MaxGridSize {
		return nil, fmt.Errorf("%w: %d, expected 1 .. %d", ErrInvalidGridSize, gridSize, MaxGridSize)
	}

	capacity := gridSize * gridSize
	t := &Table{
		size:    gridSize,
		cells:   make([]textcipher.Symbol, 0, capacity),
		forward: make(map[textcipher.Symbol]string, capacity),
		reverse: make(map[string]textcipher.Symbol, capacity),
	}

	for _, r := range alphabet {
		sym := textcipher.Symbol(r)
		k := len(t.cells)
		if k >= capacity {
			t.dropped = append(t.dropped, sym)
			continue
		}
		if sym == textcipher.UnknownSymbol {
			return nil, fmt.Errorf("%w: %s cannot be placed in the grid", ErrReservedSymbol, sym)
		}
		if prev, dupe := t.forward[sym]; dupe {
			return nil, fmt.Errorf("%w: %s already at %s", ErrDuplicateSymbol, sym, prev)
		}
		coord := coordinate(k/gridSize+1, k%gridSize+1)
		t.cells = append(t.cells, sym)
		t.forward[sym] = coord
		t.reverse[coord] = sym
	}

	assert.Assertf(len(t.forward) == len(t.reverse), "forward %d != reverse %d", len(t.forward), len(t.reverse))
	return t, nil
}

func mustBuildTable(alphabet string, gridSize int) *Table {
	t, err := BuildTable(alphabet, gridSize)
	if err != nil {
		panic(err)
	}
	return t
}

func coordinate(row, col int) string {
	return strconv.Itoa(row) + strconv.Itoa(col)
}

// Size returns the grid size.
func (t *Table) Size() int {
	return t.size
}

// Len returns the number of symbols in the table.
func (t *Table) Len() int {
	return len(t.cells)
}

// Dropped returns the alphabet symbols that did not fit in the grid.
func (t *Table) Dropped() []textcipher.Symbol {
	out := make([]textcipher.Symbol, len(t.dropped))
	copy(out, t.dropped)
	return out
}

// Coordinate returns the coordinate of sym, if it is in the table.
func (t *Table) Coordinate(sym textcipher.Symbol) (string, bool) {
	coord, found := t.forward[sym]
	return coord, found
}

// Symbol returns the symbol at coord, if any.
func (t *Table) Symbol(coord string) (textcipher.Symbol, bool) {
	sym, found := t.reverse[coord]
	return sym, found
}

// Entries returns the cells of the table in row-major order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.cells))
	for i, sym := range t.cells {
		out[i] = Entry{Symbol: sym, Coordinate: t.forward[sym]}
	}
	return out
}

// Dump writes the grid to the given writer, one row per line.
func (t *Table) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("  |")
	for col := 1; col <= t.size; col++ {
		fmt.Fprintf(&buf, " %d", col)
	}
	buf.WriteString("\n")
	for row := 0; row*t.size < len(t.cells); row++ {
		fmt.Fprintf(&buf, "%d |", row+1)
		for col := 0; col < t.size; col++ {
			k := row*t.size + col
			if k >= len(t.cells) {
				break
			}
			sym := t.cells[k]
			if sym == ' ' {
				buf.WriteString(" _")
			} else {
				fmt.Fprintf(&buf, " %c", rune(sym))
			}
		}
		buf.WriteString("\n")
	}
	return buf.WriteTo(w)
}
