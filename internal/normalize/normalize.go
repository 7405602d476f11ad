// Package normalize prepares raw skill text for vocabulary lookup.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFKD and drops combining marks, turning accented
// Latin letters into their ASCII base form.
var stripMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

func removeAccents(text string) string {
	out, _, err := transform.String(stripMarks, text)
	if err != nil {
		return text
	}
	return out
}

func isAllowed(r rune) bool {
	switch {
	case unicode.IsLetter(r), unicode.IsDigit(r):
		return true
	case unicode.IsSpace(r):
		return true
	}
	switch r {
	case '_', '-', '+', '#', '.', '/':
		return true
	}
	return false
}

// Text lowercases, strips accents and disallowed punctuation, and collapses
// whitespace runs to a single space. Tokens like "c++", "c#" and "node.js"
// survive intact. Empty input yields empty output.
func Text(text string) string {
	if text == "" {
		return ""
	}

	t := removeAccents(text)
	t = strings.ToLower(strings.TrimSpace(t))

	var b strings.Builder
	b.Grow(len(t))
	for _, r := range t {
		if isAllowed(r) {
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
