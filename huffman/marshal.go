package huffman

import (
	"encoding"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/chronos-tachyon/textcipher"
)

// Wire layout of a Codebook, in protobuf terms:
//
//     message Codebook { repeated Entry entries = 1; }
//     message Entry { uint32 symbol = 1; uint32 size = 2; uint64 bits = 3; }
//
// Entries are written sorted by symbol.
const (
	fieldEntries protowire.Number = 1

	fieldSymbol protowire.Number = 1
	fieldSize   protowire.Number = 2
	fieldBits   protowire.Number = 3
)

// MarshalBinary encodes the Codebook in protobuf wire format.
func (cb Codebook) MarshalBinary() ([]byte, error) {
	var out []byte
	for _, entry := range cb.Entries() {
		var msg []byte
		msg = protowire.AppendTag(msg, fieldSymbol, protowire.VarintType)
		msg = protowire.AppendVarint(msg, uint64(entry.Symbol))
		msg = protowire.AppendTag(msg, fieldSize, protowire.VarintType)
		msg = protowire.AppendVarint(msg, uint64(entry.Code.Size))
		msg = protowire.AppendTag(msg, fieldBits, protowire.VarintType)
		msg = protowire.AppendVarint(msg, entry.Code.Bits)

		out = protowire.AppendTag(out, fieldEntries, protowire.BytesType)
		out = protowire.AppendBytes(out, msg)
	}
	return out, nil
}

// UnmarshalBinary decodes a Codebook written by MarshalBinary.  The decoded
// codes must be prefix-free.
func (cb *Codebook) UnmarshalBinary(data []byte) error {
	codes := make(map[textcipher.Symbol]Code)
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return fmt.Errorf("failed to decode codebook: %w", protowire.ParseError(n))
		}
		data = data[n:]

		if num != fieldEntries || typ != protowire.BytesType {
			n = protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return fmt.Errorf("failed to decode codebook: %w", protowire.ParseError(n))
			}
			data = data[n:]
			continue
		}

		msg, n := protowire.ConsumeBytes(data)
		if n < 0 {
			return fmt.Errorf("failed to decode codebook entry: %w", protowire.ParseError(n))
		}
		data = data[n:]

		entry, err := unmarshalEntry(msg)
		if err != nil {
			return err
		}
		if _, dupe := codes[entry.Symbol]; dupe {
			return fmt.Errorf("failed to decode codebook: duplicate symbol %s", entry.Symbol)
		}
		codes[entry.Symbol] = entry.Code
	}
	return cb.assign(codes)
}

func unmarshalEntry(msg []byte) (Entry, error) {
	var sym, size, bits uint64
	for len(msg) > 0 {
		num, typ, n := protowire.ConsumeTag(msg)
		if n < 0 {
			return Entry{}, fmt.Errorf("failed to decode codebook entry: %w", protowire.ParseError(n))
		}
		msg = msg[n:]

		var v uint64
		if typ == protowire.VarintType {
			v, n = protowire.ConsumeVarint(msg)
		} else {
			n = protowire.ConsumeFieldValue(num, typ, msg)
		}
		if n < 0 {
			return Entry{}, fmt.Errorf("failed to decode codebook entry: %w", protowire.ParseError(n))
		}
		msg = msg[n:]

		if typ != protowire.VarintType {
			continue
		}
		switch num {
		case fieldSymbol:
			sym = v
		case fieldSize:
			size = v
		case fieldBits:
			bits = v
		}
	}

	symbol := textcipher.Symbol(sym)
	if sym > utf8.MaxRune || !symbol.IsValid() {
		return Entry{}, fmt.Errorf("failed to decode codebook entry: invalid symbol %d", sym)
	}
	if size == 0 || size > maxBitsPerCode {
		return Entry{}, fmt.Errorf("failed to decode codebook entry: invalid bit length %d for symbol %s", size, symbol)
	}
	if bits>>size != 0 {
		return Entry{}, fmt.Errorf("failed to decode codebook entry: bits %#x do not fit in %d bits", bits, size)
	}
	return Entry{Symbol: symbol, Code: MakeCode(byte(size), bits)}, nil
}

type jsonEntry struct {
	Symbol string `json:"symbol"`
	Code   string `json:"code"`
}

// MarshalJSON encodes the Codebook as a list of {"symbol", "code"} objects
// sorted by symbol.
func (cb Codebook) MarshalJSON() ([]byte, error) {
	entries := cb.Entries()
	list := make([]jsonEntry, len(entries))
	for i, entry := range entries {
		list[i] = jsonEntry{Symbol: string(rune(entry.Symbol)), Code: entry.Code.Digits()}
	}
	return json.Marshal(list)
}

// UnmarshalJSON decodes a Codebook written by MarshalJSON.  The decoded codes
// must be prefix-free.
func (cb *Codebook) UnmarshalJSON(raw []byte) error {
	var list []jsonEntry
	if err := json.Unmarshal(raw, &list); err != nil {
		return err
	}

	codes := make(map[textcipher.Symbol]Code, len(list))
	for _, item := range list {
		r, size := utf8.DecodeRuneInString(item.Symbol)
		if r == utf8.RuneError || size != len(item.Symbol) {
			return fmt.Errorf("codebook symbol %q is not a single character", item.Symbol)
		}
		hc, err := ParseCode(item.Code)
		if err != nil {
			return err
		}
		sym := textcipher.Symbol(r)
		if _, dupe := codes[sym]; dupe {
			return fmt.Errorf("duplicate codebook symbol %s", sym)
		}
		codes[sym] = hc
	}
	return cb.assign(codes)
}

func (cb *Codebook) assign(codes map[textcipher.Symbol]Code) error {
	decoded := newCodebook(codes)
	if err := decoded.checkPrefixFree(); err != nil {
		return err
	}
	*cb = decoded
	return nil
}

var (
	_ encoding.BinaryMarshaler   = Codebook{}
	_ encoding.BinaryUnmarshaler = (*Codebook)(nil)
	_ json.Marshaler             = Codebook{}
	_ json.Unmarshaler           = (*Codebook)(nil)
)
