// Package report renders the output of each pipeline stage for humans.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/chronos-tachyon/textcipher"
	"github.com/chronos-tachyon/textcipher/bitseq"
	"github.com/chronos-tachyon/textcipher/huffman"
	"github.com/chronos-tachyon/textcipher/pipeline"
	"github.com/chronos-tachyon/textcipher/polybius"
	"github.com/chronos-tachyon/textcipher/transpose"
)

// ruleWidth is the width of the separator between sections.
const ruleWidth = 50

// Reporter writes stage reports to an io.Writer.  The first write error is
// kept and returned by Err; later writes are skipped.
type Reporter struct {
	w   io.Writer
	err error
}

// New returns a Reporter writing to w.
func New(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Err returns the first write error, if any.
func (r *Reporter) Err() error {
	return r.err
}

func (r *Reporter) printf(format string, args ...interface{}) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

func (r *Reporter) rule() {
	r.printf("%s\n", strings.Repeat("=", ruleWidth))
}

func (r *Reporter) table(write func(tw *tabwriter.Writer)) {
	if r.err != nil {
		return
	}
	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	write(tw)
	r.err = tw.Flush()
}

// Source reports the raw input.
func (r *Reporter) Source(text string) {
	r.rule()
	r.printf("1. Source text (%d words)\n", len(strings.Fields(text)))
	r.printf("%s\n", text)
	r.rule()
}

// Cleaned reports the output of the alphabet filter.
func (r *Reporter) Cleaned(text string) {
	r.printf("2. Cleaned text (%d words)\n", len(strings.Fields(text)))
	r.printf("%s\n", text)
	r.rule()
}

// Huffman reports the codebook, sorted by symbol, and the encoded bits.
func (r *Reporter) Huffman(cb huffman.Codebook, bits bitseq.Sequence, skipped textcipher.Skipped) {
	r.printf("3. Huffman coding\n")
	if cb.Len() == 0 {
		r.printf("Text is empty; no codes generated.\n")
		r.rule()
		return
	}

	r.printf("Code table (%d symbols, %d .. %d bits):\n", cb.Len(), cb.MinSize(), cb.MaxSize())
	r.table(func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "Symbol\tCode\n")
		for _, entry := range cb.Entries() {
			fmt.Fprintf(tw, "%s\t%s\n", entry.Symbol, entry.Code.Digits())
		}
	})
	r.printf("\nEncoded bit sequence:\n%s\n", bits)
	r.printf("(length: %d bits)\n", bits.Len())
	r.skipped(skipped)
	r.rule()
}

// Permutation reports the transposed bits.
func (r *Reporter) Permutation(permuted bitseq.Sequence, key transpose.Key) {
	r.printf("4. Matrix permutation (%d columns)\n", key.Columns)
	if key.Length == 0 {
		r.printf("Permutation skipped (no bit sequence).\n")
		r.rule()
		return
	}
	r.printf("Bit sequence after permutation:\n%s\n", permuted)
	r.printf("(length: %d bits, %d padding)\n", permuted.Len(), key.Padding())
	r.rule()
}

// Key reports what is needed to undo the permutation.
func (r *Reporter) Key(key transpose.Key) {
	r.printf("5. Permutation key\n")
	r.printf("Columns (key): %d\n", key.Columns)
	r.printf("Rows: %d\n", key.Rows)
	r.printf("Original length: %d bits\n", key.Length)
	r.printf("Read-out: column by column, top to bottom.\n")
	r.rule()
}

// Polybius reports the square, sorted by symbol, and the round trip of the
// cleaned text through it.
func (r *Reporter) Polybius(table *polybius.Table, cleaned string, cipher string, d polybius.Decryption, skipped textcipher.Skipped) {
	r.printf("6. Polybius square\n")
	entries := table.Entries()
	sort.Slice(entries, func(i, j int) bool { return entries[i].Symbol < entries[j].Symbol })
	r.table(func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "Symbol\tCoordinate\n")
		for _, entry := range entries {
			fmt.Fprintf(tw, "%s\t%s\n", entry.Symbol, entry.Coordinate)
		}
	})

	if cleaned == "" {
		r.printf("(Polybius encryption skipped)\n")
		return
	}
	r.printf("\nCleaned text:   %q\n", cleaned)
	r.printf("Encrypted text: %q\n", cipher)
	r.printf("Decrypted text: %q\n", d.Text)
	r.skipped(skipped)
	if err := d.Err(); err != nil {
		r.printf("Warning: %v\n", err)
	}
}

// RoundTrip reports whether a stage's output could be undone.
func (r *Reporter) RoundTrip(name string, ok bool, err error) {
	if err != nil {
		r.printf("%s round trip: failed: %v\n", name, err)
		return
	}
	r.printf("%s round trip: %t\n", name, ok)
}

func (r *Reporter) skipped(skipped textcipher.Skipped) {
	if err := skipped.Err(); err != nil {
		r.printf("Warning: %v\n", err)
	}
}

// All reports every stage of res, followed by both round trips.
func (r *Reporter) All(res *pipeline.Result) error {
	r.Source(res.Source)
	r.Cleaned(res.Cleaned)
	r.Huffman(res.Codebook, res.Bits, res.Skipped)
	r.Permutation(res.Permuted, res.Key)
	r.Key(res.Key)
	r.Polybius(res.Table, res.Cleaned, res.Cipher, res.Decryption, res.CipherSkipped)
	if !res.Empty() {
		ok, err := res.HuffmanRoundTrip()
		r.RoundTrip("Huffman + permutation", ok, err)
	}
	if res.Cleaned != "" {
		r.RoundTrip("Polybius", res.PolybiusRoundTrip(), nil)
	}
	r.rule()
	return r.Err()
}
