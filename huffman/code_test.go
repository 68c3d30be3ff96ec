package huffman

import (
	"testing"
)

func TestCode(t *testing.T) {
	type testRow struct {
		size   byte
		bits   uint64
		expect string
	}

	testData := [...]testRow{
		{size: 0, bits: 0x0, expect: `""`},
		{size: 1, bits: 0x0, expect: `"0"`},
		{size: 3, bits: 0x1, expect: `"001"`},
		{size: 4, bits: 0xe, expect: `"1110"`},
	}
	for _, row := range testData {
		hc := MakeCode(row.size, row.bits)
		t.Run(row.expect, func(t *testing.T) {
			if actual := hc.String(); actual != row.expect {
				t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.expect, actual)
			}
			parsed, err := ParseCode(hc.Digits())
			if err != nil {
				t.Fatalf("ParseCode failed: %v", err)
			}
			if parsed != hc {
				t.Errorf("ParseCode mismatch: expected %s, got %s", hc, parsed)
			}
			if actual := hc.AppendTo(nil).String(); actual != hc.Digits() {
				t.Errorf("AppendTo mismatch: expected %s, got %s", hc.Digits(), actual)
			}
		})
	}
}

func TestCode_HasPrefix(t *testing.T) {
	hc := MakeCode(4, 0xb) // 1011

	type testRow struct {
		prefix string
		expect bool
	}

	testData := [...]testRow{
		{"", true},
		{"1", true},
		{"10", true},
		{"101", true},
		{"1011", true},
		{"0", false},
		{"11", false},
		{"10110", false},
	}
	for _, row := range testData {
		t.Run(row.prefix, func(t *testing.T) {
			prefix, err := ParseCode(row.prefix)
			if err != nil {
				t.Fatalf("ParseCode failed: %v", err)
			}
			if actual := hc.HasPrefix(prefix); actual != row.expect {
				t.Errorf("HasPrefix(%s): expected %v, got %v", prefix, row.expect, actual)
			}
		})
	}

	if hc.Bit(0) != 1 || hc.Bit(1) != 0 || hc.Bit(3) != 1 {
		t.Errorf("wrong bits: %d %d %d", hc.Bit(0), hc.Bit(1), hc.Bit(3))
	}
}
