package bitseq

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestParse(t *testing.T) {
	seq, err := Parse("10110")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	expect := Sequence{1, 0, 1, 1, 0}
	if !expect.Equal(seq) {
		t.Errorf("wrong bits:\n\texpect: %#v\n\tactual: %#v", expect, seq)
	}
	if actual := seq.String(); actual != "10110" {
		t.Errorf("wrong string:\n\texpect: %q\n\tactual: %q", "10110", actual)
	}

	if _, err := Parse("1021"); err == nil {
		t.Errorf("expected error for non-binary digit, got nil")
	}
}

func TestSequence_AppendBits(t *testing.T) {
	type testRow struct {
		name   string
		v      uint64
		n      byte
		expect string
	}

	testData := [...]testRow{
		{"empty", 0x5, 0, ""},
		{"one", 0x1, 1, "1"},
		{"leading-zeros", 0x3, 4, "0011"},
		{"msb-first", 0xa, 4, "1010"},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			actual := Sequence(nil).AppendBits(row.v, row.n).String()
			if actual != row.expect {
				t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", row.expect, actual)
			}
		})
	}
}

func TestSequence_Pad(t *testing.T) {
	seq := MustParse("101")
	padded := seq.Pad(6, Zero)
	if actual := padded.String(); actual != "101000" {
		t.Errorf("wrong padding:\n\texpect: %q\n\tactual: %q", "101000", actual)
	}
	if actual := seq.String(); actual != "101" {
		t.Errorf("Pad modified its receiver: %q", actual)
	}
	if actual := seq.Pad(2, One).String(); actual != "101" {
		t.Errorf("Pad shortened the sequence: %q", actual)
	}
}

func TestSequence_Pack(t *testing.T) {
	seq := MustParse("1010000111")
	packed, err := seq.Pack()
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}
	expect := []byte{0xa1, 0xc0}
	if !bytes.Equal(expect, packed) {
		t.Errorf("wrong packing:\n\texpect: %#v\n\tactual: %#v", expect, packed)
	}

	unpacked, err := Unpack(packed, seq.Len())
	if err != nil {
		t.Fatalf("Unpack failed: %v", err)
	}
	if !seq.Equal(unpacked) {
		t.Errorf("wrong unpacking:\n\texpect: %s\n\tactual: %s", seq, unpacked)
	}
}

func TestUnpack_TooShort(t *testing.T) {
	_, err := Unpack([]byte{0xff}, 9)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected io.ErrUnexpectedEOF, got %v", err)
	}
}

func FuzzPackRoundTrip(f *testing.F) {
	f.Add("")
	f.Add("1")
	f.Add("01100110")
	f.Add("111000111000111")

	f.Fuzz(func(t *testing.T, s string) {
		var seq Sequence
		for i := 0; i < len(s); i++ {
			seq = seq.Append(s[i] & 1)
		}
		packed, err := seq.Pack()
		if err != nil {
			t.Fatalf("Pack failed: %v", err)
		}
		if expect := (seq.Len() + 7) / 8; len(packed) != expect {
			t.Fatalf("expected %d packed bytes, got %d", expect, len(packed))
		}
		unpacked, err := Unpack(packed, seq.Len())
		if err != nil {
			t.Fatalf("Unpack failed: %v", err)
		}
		if !seq.Equal(unpacked) {
			t.Errorf("round trip mismatch:\n\texpect: %s\n\tactual: %s", seq, unpacked)
		}
	})
}
