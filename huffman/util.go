package huffman

import (
	mathbits "math/bits"
)

// log2ceil returns the number of bits needed to count to x, with a minimum of
// 1.  It is used to size stacks whose depth is about log2 of the alphabet.
func log2ceil(x int) int {
	if x <= 0 {
		x = 1
	}
	return mathbits.Len(uint(x))
}
