// Package pipeline runs text through every stage: cleaning, Huffman coding,
// transposition of the coded bits, and Polybius encryption of the cleaned
// text.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/chronos-tachyon/textcipher"
	"github.com/chronos-tachyon/textcipher/alphabet"
	"github.com/chronos-tachyon/textcipher/bitseq"
	"github.com/chronos-tachyon/textcipher/huffman"
	"github.com/chronos-tachyon/textcipher/polybius"
	"github.com/chronos-tachyon/textcipher/transpose"
)

// SampleText is the reference input.
const SampleText = "Для досягнення бажаного результату важливо обрати перевірене та надійне рішення."

// DefaultColumns is the reference permutation key.
const DefaultColumns = 8

// Config selects the parameters of each stage.
type Config struct {
	// Allowed is the set of runes kept by the cleaning stage.
	Allowed string

	// Columns is the permutation key: the width of the transposition
	// matrix.
	Columns int

	// Alphabet and GridSize define the Polybius square.
	Alphabet string
	GridSize int
}

// DefaultConfig returns the reference configuration.
func DefaultConfig() Config {
	return Config{
		Allowed:  alphabet.UkrainianLetters,
		Columns:  DefaultColumns,
		Alphabet: polybius.UkrainianAlphabet,
		GridSize: polybius.DefaultGridSize,
	}
}

// Validate checks the configuration without running anything.
func (cfg Config) Validate() error {
	if cfg.Allowed == "" {
		return errors.New("invalid config: empty allowed set")
	}
	if cfg.Columns < 1 {
		return fmt.Errorf("invalid config: %w: %d columns", transpose.ErrInvalidKey, cfg.Columns)
	}
	if cfg.GridSize < 1 || cfg.GridSize > polybius.MaxGridSize {
		return fmt.Errorf("invalid config: %w: %d", polybius.ErrInvalidGridSize, cfg.GridSize)
	}
	return nil
}

func (cfg Config) table() (*polybius.Table, error) {
	if cfg.Alphabet == polybius.UkrainianAlphabet && cfg.GridSize == polybius.DefaultGridSize {
		return polybius.Default, nil
	}
	return polybius.BuildTable(cfg.Alphabet, cfg.GridSize)
}

// Result holds the output of every stage.
type Result struct {
	Source  string
	Cleaned string

	Frequencies huffman.FrequencyTable
	Tree        *huffman.Node
	Codebook    huffman.Codebook
	Bits        bitseq.Sequence
	Skipped     textcipher.Skipped

	Permuted bitseq.Sequence
	Key      transpose.Key

	Table         *polybius.Table
	Cipher        string
	CipherSkipped textcipher.Skipped
	Decryption    polybius.Decryption
}

// Run cleans text and feeds it through both branches of the pipeline.
//
// Only configuration errors and structural failures abort.  Text that cleans
// down to nothing is not an error: the Result then has a nil Tree and empty
// bit sequences, and Empty reports true.
func Run(text string, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	table, err := cfg.table()
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	res := &Result{
		Source: text,
		Table:  table,
	}
	res.Cleaned = alphabet.New(cfg.Allowed).Clean(text)

	res.Frequencies = huffman.CountFrequencies(res.Cleaned)
	res.Tree = huffman.BuildTreeFromFrequencies(res.Frequencies)
	res.Codebook = huffman.GenerateCodes(res.Tree)
	res.Bits, res.Skipped = res.Codebook.Encode(res.Cleaned)

	res.Permuted, res.Key, err = transpose.Permute(res.Bits, cfg.Columns)
	if err != nil {
		return nil, err
	}

	res.Cipher, res.CipherSkipped = table.Encrypt(res.Cleaned)
	res.Decryption = table.Decrypt(res.Cipher)
	return res, nil
}

// Empty returns true iff there was nothing to encode.
func (res *Result) Empty() bool {
	return res.Tree == nil
}

// HuffmanRoundTrip undoes the permutation with the retained Key, decodes the
// bits with the Tree, and compares the outcome with the cleaned text minus
// any skipped symbols.
func (res *Result) HuffmanRoundTrip() (bool, error) {
	bits, err := transpose.Invert(res.Permuted, res.Key)
	if err != nil {
		return false, err
	}
	decoded, err := huffman.Decode(bits, res.Tree)
	if err != nil {
		return false, err
	}
	return decoded == project(res.Cleaned, res.Skipped), nil
}

// PolybiusRoundTrip returns true iff decrypting the cipher text gave back the
// cleaned text minus any symbols the table could not encrypt.
func (res *Result) PolybiusRoundTrip() bool {
	return res.Decryption.Err() == nil && res.Decryption.Text == project(res.Cleaned, res.CipherSkipped)
}

// project removes the skipped positions from text.
func project(text string, skipped textcipher.Skipped) string {
	if len(skipped) == 0 {
		return text
	}
	drop := make(map[int]struct{}, len(skipped))
	for _, s := range skipped {
		drop[s.Index] = struct{}{}
	}
	out := make([]rune, 0, len(text))
	index := 0
	for _, r := range text {
		if _, found := drop[index]; !found {
			out = append(out, r)
		}
		index++
	}
	return string(out)
}
