package huffman

import (
	"fmt"
	"strconv"

	"github.com/chronos-tachyon/assert"

	"github.com/chronos-tachyon/textcipher/bitseq"
)

// maxBitsPerCode is the longest Code we can represent.  A tree this deep
// needs a text with Fibonacci-sized symbol counts, far beyond anything held
// in memory.
const maxBitsPerCode = 63

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The first bit is the most
	// significant of the low Size bits.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	assert.Assertf(size <= maxBitsPerCode, "size %d > maxBitsPerCode %d", size, maxBitsPerCode)
	assert.Assertf(bits>>size == 0, "bits %#x do not fit in %d bits", bits, size)
	return Code{Size: size, Bits: bits}
}

// ParseCode converts a string of ASCII '0' and '1' characters into a Code.
func ParseCode(s string) (Code, error) {
	if len(s) > maxBitsPerCode {
		return Code{}, fmt.Errorf("code %q is longer than %d bits", s, maxBitsPerCode)
	}
	var hc Code
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			hc = hc.Append(0)
		case '1':
			hc = hc.Append(1)
		default:
			return Code{}, fmt.Errorf("invalid bit %q in code %q", s[i], s)
		}
	}
	return hc, nil
}

// Append returns the Code extended by one more bit.
func (hc Code) Append(bit byte) Code {
	assert.Assertf(hc.Size < maxBitsPerCode, "code exceeds %d bits", maxBitsPerCode)
	return Code{Size: hc.Size + 1, Bits: hc.Bits<<1 | uint64(bit&1)}
}

// Bit returns the i'th bit of the Code, counting from the first.
func (hc Code) Bit(i byte) byte {
	assert.Assertf(i < hc.Size, "bit index %d out of range for size %d", i, hc.Size)
	return byte(hc.Bits>>(hc.Size-1-i)) & 1
}

// HasPrefix returns true iff prefix is a (possibly equal) prefix of this Code.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	return hc.Bits>>(hc.Size-prefix.Size) == prefix.Bits
}

// AppendTo appends the bits of this Code to seq.
func (hc Code) AppendTo(seq bitseq.Sequence) bitseq.Sequence {
	return seq.AppendBits(hc.Bits, hc.Size)
}

// Digits returns the bits of this Code as ASCII '0' and '1' characters.
func (hc Code) Digits() string {
	if hc.Size == 0 {
		return ""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return fmt.Sprintf(format, hc.Bits)
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(hc.Digits())
}

var _ fmt.Stringer = Code{}
