// Package textcipher holds the vocabulary shared by the stages of a small
// text transformation pipeline: Huffman coding, columnar transposition of the
// resulting bits, and a Polybius-square substitution cipher.
//
// The stages themselves live in subpackages:
//
//     bitseq     ordered bit sequences
//     huffman    frequency tables, code trees, codebooks
//     transpose  reversible columnar permutation of bits
//     polybius   coordinate substitution over a fixed alphabet
//     alphabet   input cleaning
//     report     human-readable stage output
//     pipeline   runs all of the above
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
//     <https://en.wikipedia.org/wiki/Transposition_cipher#Columnar_transposition>
//
//     <https://en.wikipedia.org/wiki/Polybius_square>
//
package textcipher
