package transpose

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/chronos-tachyon/textcipher"
	"github.com/chronos-tachyon/textcipher/bitseq"
)

func TestPermute(t *testing.T) {
	type testRow struct {
		name    string
		bits    string
		columns int
		expect  string
		rows    int
		padding int
	}

	testData := [...]testRow{
		{name: "exact", bits: "101100", columns: 3, expect: "110010", rows: 2, padding: 0},
		{name: "padded", bits: "10110", columns: 3, expect: "110010", rows: 2, padding: 1},
		{name: "one-column", bits: "1011", columns: 1, expect: "1011", rows: 4, padding: 0},
		{name: "one-row", bits: "101", columns: 8, expect: "10100000", rows: 1, padding: 5},
		{name: "empty", bits: "", columns: 4, expect: "", rows: 0, padding: 0},
		{name: "eight", bits: "1111000011001010", columns: 8, expect: "1111101001000100", rows: 2, padding: 0},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			bits := bitseq.MustParse(row.bits)
			actual, key, err := Permute(bits, row.columns)
			if err != nil {
				t.Fatalf("Permute failed: %v", err)
			}
			if actual.String() != row.expect {
				t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.expect, actual)
			}
			if key.Rows != row.rows || key.Padding() != row.padding || key.Columns != row.columns || key.Length != len(row.bits) {
				t.Errorf("wrong key: %v", key)
			}

			inverted, err := Invert(actual, key)
			if err != nil {
				t.Fatalf("Invert failed: %v", err)
			}
			if !bits.Equal(inverted) {
				t.Errorf("wrong inversion:\n\texpect: %s\n\tactual: %s", bits, inverted)
			}
		})
	}
}

func TestPermute_InvalidColumns(t *testing.T) {
	for _, columns := range []int{0, -3} {
		if _, _, err := Permute(bitseq.MustParse("1"), columns); !errors.Is(err, ErrInvalidKey) {
			t.Errorf("columns=%d: expected ErrInvalidKey, got %v", columns, err)
		}
	}
}

func TestInvertShape_Mismatch(t *testing.T) {
	_, err := InvertShape(bitseq.MustParse("11001"), 3, 2)
	if !errors.Is(err, textcipher.ErrShapeMismatch) {
		t.Errorf("expected ErrShapeMismatch, got %v", err)
	}

	_, err = Invert(bitseq.MustParse("11001"), Key{Columns: 3, Rows: 2, Length: 5})
	if !errors.Is(err, textcipher.ErrShapeMismatch) {
		t.Errorf("expected ErrShapeMismatch, got %v", err)
	}

	rows, err := InvertShape(bitseq.MustParse("110010"), 3, 2)
	if err != nil {
		t.Fatalf("InvertShape failed: %v", err)
	}
	if rows.String() != "101100" {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", "101100", rows)
	}
}

func TestMatrix(t *testing.T) {
	matrix, err := Matrix(bitseq.MustParse("1011001"), 3)
	if err != nil {
		t.Fatalf("Matrix failed: %v", err)
	}
	expect := []string{"101", "100", "100"}
	if len(matrix) != len(expect) {
		t.Fatalf("expected %d rows, got %d", len(expect), len(matrix))
	}
	for i, row := range matrix {
		if row.String() != expect[i] {
			t.Errorf("row %d: expected %s, got %s", i, expect[i], row)
		}
	}
}

func TestKey_Validate(t *testing.T) {
	type testRow struct {
		name string
		key  Key
		ok   bool
	}

	testData := [...]testRow{
		{"valid", Key{Columns: 8, Rows: 3, Length: 20}, true},
		{"empty", Key{Columns: 8, Rows: 0, Length: 0}, true},
		{"no-columns", Key{Columns: 0, Rows: 0, Length: 0}, false},
		{"too-few-rows", Key{Columns: 8, Rows: 2, Length: 20}, false},
		{"too-many-rows", Key{Columns: 8, Rows: 4, Length: 20}, false},
		{"negative", Key{Columns: 8, Rows: -1, Length: -5}, false},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			err := row.key.Validate()
			if row.ok && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
			if !row.ok && !errors.Is(err, ErrInvalidKey) {
				t.Errorf("expected ErrInvalidKey, got %v", err)
			}
		})
	}
}

func TestKey_MarshalBinary(t *testing.T) {
	key := Key{Columns: 8, Rows: 40, Length: 317}
	raw, err := key.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary failed: %v", err)
	}

	var decoded Key
	if err := decoded.UnmarshalBinary(raw); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if decoded != key {
		t.Errorf("wrong key:\n\texpect: %v\n\tactual: %v", key, decoded)
	}

	if err := decoded.UnmarshalBinary(raw[:len(raw)-1]); err == nil {
		t.Errorf("expected error for truncated input, got nil")
	}
	if _, err := (Key{}).MarshalBinary(); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("expected ErrInvalidKey, got %v", err)
	}
}

func TestPermute_HugeColumns(t *testing.T) {
	for _, input := range []string{"10", "101", "0110100110010110"} {
		bits := bitseq.MustParse(input)
		if _, _, err := Permute(bits, math.MaxInt); !errors.Is(err, ErrInvalidKey) {
			t.Errorf("Permute(%q, MaxInt): expected ErrInvalidKey, got %v", input, err)
		}
		if _, err := Matrix(bits, math.MaxInt); !errors.Is(err, ErrInvalidKey) {
			t.Errorf("Matrix(%q, MaxInt): expected ErrInvalidKey, got %v", input, err)
		}
	}

	permuted, key, err := Permute(nil, math.MaxInt)
	if err != nil {
		t.Fatalf("Permute(empty, MaxInt) failed: %v", err)
	}
	if permuted.Len() != 0 || key.Rows != 0 || key.Columns != math.MaxInt {
		t.Errorf("Permute(empty, MaxInt): expected no bits and zero rows, got %d bits, key %v", permuted.Len(), key)
	}

	const columns = 1 << 16
	permuted, key, err = Permute(bitseq.MustParse("101"), columns)
	if err != nil {
		t.Fatalf("Permute(\"101\", %d) failed: %v", columns, err)
	}
	if key.Rows != 1 || permuted.Len() != columns || !permuted[:3].Equal(bitseq.MustParse("101")) {
		t.Errorf("Permute(\"101\", %d): wrong result, key %v", columns, key)
	}

	err = Key{Columns: math.MaxInt, Rows: 1, Length: 3}.Validate()
	if !errors.Is(err, ErrInvalidKey) || !strings.Contains(err.Error(), "exceed") {
		t.Errorf("Validate: expected size error, got %v", err)
	}

	if _, err := InvertShape(nil, math.MaxInt, 2); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("InvertShape(MaxInt × 2): expected ErrInvalidKey, got %v", err)
	}
	if out, err := InvertShape(nil, math.MaxInt, 0); err != nil || out.Len() != 0 {
		t.Errorf("InvertShape(MaxInt × 0): expected no bits, got %v, %v", out, err)
	}
}

func FuzzPermuteInvert(f *testing.F) {
	f.Add("101100", 3)
	f.Add("", 1)
	f.Add("1", 8)
	f.Add("0110100110010110", 5)

	f.Fuzz(func(t *testing.T, s string, columns int) {
		if columns < 1 || columns > 1<<12 {
			t.Skip()
		}
		var bits bitseq.Sequence
		for i := 0; i < len(s); i++ {
			bits = bits.Append(s[i] & 1)
		}

		permuted, key, err := Permute(bits, columns)
		if err != nil {
			t.Fatalf("Permute failed: %v", err)
		}
		if permuted.Len()%columns != 0 || permuted.Len() < bits.Len() {
			t.Fatalf("permuted length %d is not a multiple of %d covering %d", permuted.Len(), columns, bits.Len())
		}

		inverted, err := Invert(permuted, key)
		if err != nil {
			t.Fatalf("Invert failed: %v", err)
		}
		if !bits.Equal(inverted) {
			t.Errorf("round trip mismatch:\n\texpect: %s\n\tactual: %s", bits, inverted)
		}
	})
}
