// Package alphabet cleans raw text down to the small alphabet the pipeline
// understands.
package alphabet

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// UkrainianLetters is the reference allowed set: lowercase Ukrainian letters
// and space.  The letter ґ is deliberately absent.
const UkrainianLetters = "абвгдеєжзиіїйклмнопрстуфхцчшщьюя "

// Default filters text down to UkrainianLetters.
var Default = New(UkrainianLetters)

// Filter keeps only the runes of an allowed set.
type Filter struct {
	allowed map[rune]struct{}
}

// New returns a Filter that keeps the runes of allowed.
func New(allowed string) Filter {
	set := make(map[rune]struct{}, len(allowed))
	for _, r := range norm.NFC.String(allowed) {
		set[r] = struct{}{}
	}
	return Filter{allowed: set}
}

// Allows returns true iff r survives the filter.
func (f Filter) Allows(r rune) bool {
	_, found := f.allowed[r]
	return found
}

// Clean composes text to NFC, so that letters such as й and ї written with
// combining marks are kept, lowercases it, drops every rune outside the
// allowed set, and collapses runs of whitespace to a single space with none
// at either end.
//
// Whitespace that is not itself allowed still separates words before it is
// collapsed, provided space is allowed.
//
func (f Filter) Clean(text string) string {
	text = strings.ToLower(norm.NFC.String(text))

	var kept strings.Builder
	kept.Grow(len(text))
	for _, r := range text {
		switch {
		case f.Allows(r):
			kept.WriteRune(r)
		case unicode.IsSpace(r) && f.Allows(' '):
			kept.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(kept.String()), " ")
}
