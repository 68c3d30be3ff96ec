// Package huffman implements Huffman codes over the runes of a text: counting
// frequencies, building the code tree, deriving a prefix-free Codebook, and
// encoding and decoding bit sequences.
//
// Tree construction is deterministic.  Nodes of equal frequency are ordered
// by creation, leaves first in ascending code point order; see
// BuildTreeFromFrequencies.
//
// Codebooks can be exchanged in JSON or protobuf wire format, or reduced to
// their code lengths and rebuilt in canonical form.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
//     <https://www.rfc-editor.org/rfc/rfc1951.html>, Section 3.2.2
//
package huffman
