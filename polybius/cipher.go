package polybius

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chronos-tachyon/textcipher"
)

// Encrypt replaces each symbol of text with its coordinate.  Symbols that are
// not in the table are skipped and reported, by rune index, in the returned
// Skipped.
func (t *Table) Encrypt(text string) (string, textcipher.Skipped) {
	var buf strings.Builder
	buf.Grow(2 * len(text))
	var skipped textcipher.Skipped
	index := 0
	for _, r := range text {
		sym := textcipher.Symbol(r)
		if coord, found := t.forward[sym]; found {
			buf.WriteString(coord)
		} else {
			skipped.Add(index, sym)
		}
		index++
	}
	return buf.String(), skipped
}

// Decryption is the result of Decrypt.
type Decryption struct {
	// Text is the recovered text.
	Text string

	// Unknown lists the indices of the two-digit chunks that matched no
	// cell; each was decoded to textcipher.UnknownSymbol.
	Unknown []int

	// Truncated is true iff the input had odd length and its last
	// character was dropped.
	Truncated bool
}

// Err returns nil for a clean decryption, or else a warning wrapping
// textcipher.ErrTruncatedInput and/or textcipher.ErrUnknownSymbol.  The Text
// is usable either way.
func (d Decryption) Err() error {
	var errs []error
	if d.Truncated {
		errs = append(errs, fmt.Errorf("%w: odd-length coordinates, trailing digit dropped", textcipher.ErrTruncatedInput))
	}
	if len(d.Unknown) != 0 {
		errs = append(errs, fmt.Errorf("%w: %d coordinate(s) outside the table", textcipher.ErrUnknownSymbol, len(d.Unknown)))
	}
	return errors.Join(errs...)
}

// Decrypt splits coords into two-character chunks and looks each one up.  An
// odd trailing character is dropped, and chunks that match no cell decode to
// textcipher.UnknownSymbol; neither aborts the decryption.  No cell holds
// UnknownSymbol, so each one in Text matches an entry of Unknown.
func (t *Table) Decrypt(coords string) Decryption {
	chars := []rune(coords)
	var d Decryption
	if len(chars)%2 != 0 {
		chars = chars[:len(chars)-1]
		d.Truncated = true
	}

	var buf strings.Builder
	buf.Grow(len(chars))
	for i := 0; i < len(chars); i += 2 {
		sym, found := t.reverse[string(chars[i:i+2])]
		if !found {
			sym = textcipher.UnknownSymbol
			d.Unknown = append(d.Unknown, i/2)
		}
		buf.WriteRune(rune(sym))
	}
	d.Text = buf.String()
	return d
}
