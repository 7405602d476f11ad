package skill

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncateTerm_ShortTermUntouched(t *testing.T) {
	if got := TruncateTerm("python"); got != "python" {
		t.Fatalf("expected passthrough, got %q", got)
	}
}

func TestTruncateTerm_CutsToCharacterLimit(t *testing.T) {
	long := strings.Repeat("a", TermMaxLen+20)
	got := TruncateTerm(long)
	if utf8.RuneCountInString(got) != TermMaxLen {
		t.Fatalf("expected %d characters, got %d", TermMaxLen, utf8.RuneCountInString(got))
	}
}

func TestTruncateTerm_MultibyteCountsCharactersNotBytes(t *testing.T) {
	// 51 two-byte characters is 102 bytes but well under the 100-character
	// limit and must come back whole.
	term := strings.Repeat("á", 51)
	if got := TruncateTerm(term); got != term {
		t.Fatalf("multibyte term under the limit was truncated: %d runes", utf8.RuneCountInString(got))
	}
}

func TestTruncateTerm_MultibyteCutStaysValidUTF8(t *testing.T) {
	term := strings.Repeat("é", TermMaxLen+5)
	got := TruncateTerm(term)
	if utf8.RuneCountInString(got) != TermMaxLen {
		t.Fatalf("expected %d characters, got %d", TermMaxLen, utf8.RuneCountInString(got))
	}
	if !utf8.ValidString(got) {
		t.Fatalf("truncation produced invalid UTF-8")
	}
}
