package textcipher

import (
	"errors"
)

var (
	// ErrEmptyInput is returned when there is nothing to build a code from.
	// It is a signal, not a failure: callers must handle the "no codes"
	// case explicitly.
	ErrEmptyInput = errors.New("empty input")

	// ErrUnknownSymbol reports input symbols that have no codebook or table
	// entry.  Such symbols are skipped, so this is a warning.
	ErrUnknownSymbol = errors.New("unknown symbol")

	// ErrIncompleteCode is returned when a bit sequence ends in the middle
	// of a code.
	ErrIncompleteCode = errors.New("incomplete code")

	// ErrShapeMismatch is returned when a permuted bit sequence does not
	// fill the matrix described by its key.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrTruncatedInput reports an odd-length coordinate string whose
	// trailing digit was dropped.  This is a warning.
	ErrTruncatedInput = errors.New("truncated input")
)
