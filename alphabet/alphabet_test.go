package alphabet

import (
	"testing"
)

func TestFilter_Clean(t *testing.T) {
	type testRow struct {
		name   string
		input  string
		expect string
	}

	testData := [...]testRow{
		{"empty", "", ""},
		{"sample",
			"Для досягнення бажаного результату важливо обрати перевірене та надійне рішення.",
			"для досягнення бажаного результату важливо обрати перевірене та надійне рішення"},
		{"whitespace", "  Мама \t\n мила  раму ", "мама мила раму"},
		{"latin-and-digits", "abc 123 їжак", "їжак"},
		{"no-ghe-with-upturn", "Ґанок", "анок"},
		{"combining-marks", "\u0438\u0306 \u0456\u0308", "\u0439 \u0457"},
		{"punctuation-only", "...,,,!", ""},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			actual := Default.Clean(row.input)
			if actual != row.expect {
				t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", row.expect, actual)
			}
		})
	}
}

func TestFilter_NoSpace(t *testing.T) {
	f := New("ab")
	if actual := f.Clean("a b\tba"); actual != "abba" {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", "abba", actual)
	}
	if f.Allows(' ') {
		t.Errorf("space should not be allowed")
	}
}
