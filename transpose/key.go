package transpose

import (
	"encoding"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// Key is the permutation key: the matrix shape used by Permute plus the
// original, unpadded bit length.  Without it the permutation cannot be
// undone, since padding makes the original length ambiguous.
type Key struct {
	Columns int
	Rows    int
	Length  int
}

// MaxSize bounds the number of bits, padding included, in a matrix.
const MaxSize = 1 << 30

// shape returns the number of rows needed to hold length bits in the given
// number of columns.
func shape(length int, columns int) (int, error) {
	if columns < 1 {
		return 0, fmt.Errorf("%w: %d columns", ErrInvalidKey, columns)
	}
	if length < 0 {
		return 0, fmt.Errorf("%w: negative length %d", ErrInvalidKey, length)
	}
	rows := length / columns
	if length%columns != 0 {
		rows++
	}
	if err := checkSize(rows, columns); err != nil {
		return 0, err
	}
	return rows, nil
}

// checkSize fails if a rows × columns matrix would exceed MaxSize bits.
func checkSize(rows int, columns int) error {
	if rows != 0 && columns > MaxSize/rows {
		return fmt.Errorf("%w: %d rows × %d columns exceed %d bits", ErrInvalidKey, rows, columns, MaxSize)
	}
	return nil
}

// Size returns the number of bits in the padded matrix.
func (k Key) Size() int {
	return k.Rows * k.Columns
}

// Padding returns the number of filler bits appended by Permute.
func (k Key) Padding() int {
	return k.Size() - k.Length
}

// Validate checks that the Key describes a matrix Permute could have built.
func (k Key) Validate() error {
	if k.Columns < 1 {
		return fmt.Errorf("%w: %d columns", ErrInvalidKey, k.Columns)
	}
	if k.Rows < 0 || k.Length < 0 {
		return fmt.Errorf("%w: negative shape %v", ErrInvalidKey, k)
	}
	expect, err := shape(k.Length, k.Columns)
	if err != nil {
		return err
	}
	if k.Rows != expect {
		return fmt.Errorf("%w: %d bits in %d columns need %d rows, not %d", ErrInvalidKey, k.Length, k.Columns, expect, k.Rows)
	}
	return nil
}

// String returns the string representation of this Key.
func (k Key) String() string {
	return fmt.Sprintf("%d columns × %d rows, %d bits + %d padding", k.Columns, k.Rows, k.Length, k.Padding())
}

// Wire layout of a Key, in protobuf terms:
//
//     message Key { uint64 columns = 1; uint64 rows = 2; uint64 length = 3; }
//
const (
	fieldColumns protowire.Number = 1
	fieldRows    protowire.Number = 2
	fieldLength  protowire.Number = 3
)

// MarshalBinary encodes the Key in protobuf wire format.
func (k Key) MarshalBinary() ([]byte, error) {
	if err := k.Validate(); err != nil {
		return nil, err
	}
	var out []byte
	out = protowire.AppendTag(out, fieldColumns, protowire.VarintType)
	out = protowire.AppendVarint(out, uint64(k.Columns))
	out = protowire.AppendTag(out, fieldRows, protowire.VarintType)
	out = protowire.AppendVarint(out, uint64(k.Rows))
	out = protowire.AppendTag(out, fieldLength, protowire.VarintType)
	out = protowire.AppendVarint(out, uint64(k.Length))
	return out, nil
}

// UnmarshalBinary decodes a Key written by MarshalBinary.
func (k *Key) UnmarshalBinary(data []byte) error {
	const maxField = uint64(^uint32(0) >> 1)

	var decoded Key
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return fmt.Errorf("failed to decode permutation key: %w", protowire.ParseError(n))
		}
		data = data[n:]

		if typ != protowire.VarintType {
			n = protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return fmt.Errorf("failed to decode permutation key: %w", protowire.ParseError(n))
			}
			data = data[n:]
			continue
		}

		v, n := protowire.ConsumeVarint(data)
		if n < 0 {
			return fmt.Errorf("failed to decode permutation key: %w", protowire.ParseError(n))
		}
		data = data[n:]
		if v > maxField {
			return fmt.Errorf("%w: field %d value %d out of range", ErrInvalidKey, num, v)
		}

		switch num {
		case fieldColumns:
			decoded.Columns = int(v)
		case fieldRows:
			decoded.Rows = int(v)
		case fieldLength:
			decoded.Length = int(v)
		}
	}

	if err := decoded.Validate(); err != nil {
		return err
	}
	*k = decoded
	return nil
}

var (
	_ encoding.BinaryMarshaler   = Key{}
	_ encoding.BinaryUnmarshaler = (*Key)(nil)
	_ fmt.Stringer               = Key{}
)
