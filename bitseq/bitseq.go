// Package bitseq implements ordered sequences of bits, as produced by the
// Huffman stage and consumed by the transposition stage.
package bitseq

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/icza/bitio"
)

// Bit values.
const (
	Zero byte = 0
	One  byte = 1
)

// Sequence is an ordered sequence of bits.  Each element holds either Zero or
// One.
type Sequence []byte

// Parse converts a string of ASCII '0' and '1' characters into a Sequence.
func Parse(s string) (Sequence, error) {
	out := make(Sequence, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			out[i] = Zero
		case '1':
			out[i] = One
		default:
			return nil, fmt.Errorf("invalid bit %q at offset %d", s[i], i)
		}
	}
	return out, nil
}

// MustParse is like Parse, but panics on error.
func MustParse(s string) Sequence {
	seq, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return seq
}

// Len returns the number of bits in the sequence.
func (seq Sequence) Len() int {
	return len(seq)
}

// Append appends one bit.  Any non-zero value is treated as One.
func (seq Sequence) Append(bit byte) Sequence {
	if bit != Zero {
		bit = One
	}
	return append(seq, bit)
}

// AppendBits appends the low n bits of v, most significant first.
func (seq Sequence) AppendBits(v uint64, n byte) Sequence {
	for i := n; i > 0; i-- {
		seq = append(seq, byte((v>>(i-1))&1))
	}
	return seq
}

// Pad returns a copy of seq extended on the right with filler bits until it
// holds exactly n bits.  If seq is already at least n bits long, the copy is
// returned unchanged.
func (seq Sequence) Pad(n int, filler byte) Sequence {
	if filler != Zero {
		filler = One
	}
	out := make(Sequence, len(seq), max(n, len(seq)))
	copy(out, seq)
	for len(out) < n {
		out = append(out, filler)
	}
	return out
}

// Clone returns a copy of seq.
func (seq Sequence) Clone() Sequence {
	if seq == nil {
		return nil
	}
	out := make(Sequence, len(seq))
	copy(out, seq)
	return out
}

// Equal returns true iff both sequences hold the same bits.
func (seq Sequence) Equal(other Sequence) bool {
	return bytes.Equal(seq, other)
}

// String returns the sequence as ASCII '0' and '1' characters.
func (seq Sequence) String() string {
	var buf strings.Builder
	buf.Grow(len(seq))
	for _, bit := range seq {
		if bit == Zero {
			buf.WriteByte('0')
		} else {
			buf.WriteByte('1')
		}
	}
	return buf.String()
}

// Pack writes the sequence into bytes, first bit in the most significant
// position of the first byte.  The last byte is padded with zero bits; the
// caller must retain Len() to unpack.
func (seq Sequence) Pack() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow((len(seq) + 7) / 8)
	w := bitio.NewWriter(&buf)
	for _, bit := range seq {
		if err := w.WriteBool(bit != Zero); err != nil {
			return nil, fmt.Errorf("failed to pack bit sequence: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to pack bit sequence: %w", err)
	}
	return buf.Bytes(), nil
}

// Unpack is the inverse of Pack: it reads exactly n bits from data.
func Unpack(data []byte, n int) (Sequence, error) {
	if n < 0 {
		return nil, fmt.Errorf("invalid bit count %d", n)
	}
	if limit := len(data) * 8; n > limit {
		return nil, fmt.Errorf("bit count %d exceeds %d bytes of packed data: %w", n, len(data), io.ErrUnexpectedEOF)
	}
	r := bitio.NewReader(bytes.NewReader(data))
	out := make(Sequence, 0, n)
	for i := 0; i < n; i++ {
		bit, err := r.ReadBool()
		if err != nil {
			return nil, fmt.Errorf("failed to unpack bit %d: %w", i, err)
		}
		if bit {
			out = append(out, One)
		} else {
			out = append(out, Zero)
		}
	}
	return out, nil
}

var _ fmt.Stringer = Sequence(nil)
