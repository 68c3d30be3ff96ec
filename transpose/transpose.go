// Package transpose implements a reversible columnar transposition of bit
// sequences.
//
// The bits are written row by row into a matrix with a fixed number of
// columns, padded with zero bits to fill the last row, and read back out
// column by column.  The matrix shape, recorded in a Key together with the
// original length, is needed to undo the permutation.
//
package transpose

import (
	"errors"
	"fmt"

	"github.com/chronos-tachyon/assert"

	"github.com/chronos-tachyon/textcipher"
	"github.com/chronos-tachyon/textcipher/bitseq"
)

// Filler is the bit used to pad the last row of the matrix.
const Filler = bitseq.Zero

// ErrInvalidKey is returned for matrix shapes that cannot describe a
// permutation.
var ErrInvalidKey = errors.New("invalid permutation key")

// Permute writes bits row-major into a matrix with the given number of
// columns and reads it out column-major.  The returned Key holds the matrix
// shape and the unpadded length, and must travel with the permuted bits.
//
// The output is len(bits) rounded up to a multiple of columns.  Empty input
// yields empty output and a Key with zero rows.  Shapes larger than MaxSize
// bits fail with ErrInvalidKey.
//
func Permute(bits bitseq.Sequence, columns int) (bitseq.Sequence, Key, error) {
	rows, err := shape(len(bits), columns)
	if err != nil {
		return nil, Key{}, err
	}

	key := Key{
		Columns: columns,
		Rows:    rows,
		Length:  len(bits),
	}
	padded := bits.Pad(key.Size(), Filler)

	// Output index i reads column i/Rows, row i%Rows.
	out := make(bitseq.Sequence, 0, key.Size())
	for i := 0; i < key.Size(); i++ {
		col, row := i/key.Rows, i%key.Rows
		out = append(out, padded[row*key.Columns+col])
	}

	assert.Assertf(len(out) == key.Size(), "permuted %d bits, expected %d", len(out), key.Size())
	return out, key, nil
}

// Invert undoes Permute: it rebuilds the matrix described by key from the
// column-major permuted bits, concatenates its rows, and trims the padding.
//
// Invert fails with textcipher.ErrShapeMismatch if permuted does not hold
// exactly key.Rows × key.Columns bits.
//
func Invert(permuted bitseq.Sequence, key Key) (bitseq.Sequence, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}
	rows, err := InvertShape(permuted, key.Columns, key.Rows)
	if err != nil {
		return nil, err
	}
	return rows[:key.Length], nil
}

// InvertShape is like Invert, but takes the bare matrix shape and returns the
// rows with their padding still attached.
func InvertShape(permuted bitseq.Sequence, columns int, rows int) (bitseq.Sequence, error) {
	if columns < 1 || rows < 0 {
		return nil, fmt.Errorf("%w: %d columns × %d rows", ErrInvalidKey, columns, rows)
	}
	if err := checkSize(rows, columns); err != nil {
		return nil, err
	}
	if expect := rows * columns; len(permuted) != expect {
		return nil, fmt.Errorf("%w: %d bits do not fill %d rows × %d columns (%d bits)", textcipher.ErrShapeMismatch, len(permuted), rows, columns, expect)
	}

	out := make(bitseq.Sequence, len(permuted))
	for i, bit := range permuted {
		col, row := i/rows, i%rows
		out[row*columns+col] = bit
	}
	return out, nil
}

// Matrix returns the padded row-major matrix that Permute reads from, one
// Sequence per row.
func Matrix(bits bitseq.Sequence, columns int) ([]bitseq.Sequence, error) {
	numRows, err := shape(len(bits), columns)
	if err != nil {
		return nil, err
	}
	padded := bits.Pad(numRows*columns, Filler)
	out := make([]bitseq.Sequence, numRows)
	for row := range out {
		out[row] = padded[row*columns : (row+1)*columns : (row+1)*columns]
	}
	return out, nil
}
