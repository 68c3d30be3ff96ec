package textcipher

import (
	"errors"
	"strings"
	"testing"
)

func TestSkipped(t *testing.T) {
	var list Skipped
	if err := list.Err(); err != nil {
		t.Errorf("expected nil error for empty list, got %v", err)
	}

	list.Add(2, 'x')
	list.Add(5, ' ')
	list.Add(7, 'x')

	if list.Len() != 3 {
		t.Errorf("expected 3 skips, got %d", list.Len())
	}
	syms := list.Symbols()
	if len(syms) != 2 || syms[0] != 'x' || syms[1] != ' ' {
		t.Errorf("wrong symbols: %v", syms)
	}

	expectString := "[x@2 'space'@5 x@7]"
	if actual := list.String(); actual != expectString {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectString, actual)
	}

	err := list.Err()
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("expected ErrUnknownSymbol, got %v", err)
	}
	if !strings.Contains(err.Error(), "skipped 3 position(s), symbols [x 'space']") {
		t.Errorf("wrong message: %v", err)
	}
}

func TestSymbol_String(t *testing.T) {
	type testRow struct {
		sym    Symbol
		expect string
	}

	testData := [...]testRow{
		{'а', "а"},
		{' ', "'space'"},
		{'\n', `'\n'`},
		{InvalidSymbol, "<invalid>"},
	}
	for _, row := range testData {
		if actual := row.sym.String(); actual != row.expect {
			t.Errorf("Symbol(%d): expected %q, got %q", int32(row.sym), row.expect, actual)
		}
	}

	syms := Symbols("аб в")
	if len(syms) != 4 || syms[0] != 'а' || syms[2] != ' ' {
		t.Errorf("wrong symbols: %v", syms)
	}
}
