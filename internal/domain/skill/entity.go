// Package skill holds the canonical vocabulary entities shared by the
// resolver and its repositories.
package skill

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// CanonicalSkill is one controlled-vocabulary entry: a unique lowercase name
// plus its known alias spellings. Entries are maintained by administrators and
// read-only at resolution time.
type CanonicalSkill struct {
	ID        uuid.UUID
	Name      string
	Aliases   string
	Category  string
	IsActive  bool
	CreatedAt time.Time
}

// AliasList splits the comma-joined alias field into trimmed lowercase terms.
func (s CanonicalSkill) AliasList() []string {
	if s.Aliases == "" {
		return nil
	}
	parts := strings.Split(s.Aliases, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// CorrectionLog is one immutable audit record of a resolution attempt.
// Rows are append-only; the core never mutates or deletes them.
type CorrectionLog struct {
	ID              uuid.UUID
	OriginalTerm    string
	CorrectedTerm   string
	SimilarityScore float64
	WasAutoCorrect  bool
	NeedsReview     bool
	UserID          uuid.NullUUID
	CreatedAt       time.Time
}

// TermMaxLen bounds the audit columns; terms are truncated before storage.
const TermMaxLen = 100

// TruncateTerm cuts a term to the audit field's length limit. The limit is
// in characters, not bytes, so multibyte terms are never cut mid-rune.
func TruncateTerm(term string) string {
	if utf8.RuneCountInString(term) <= TermMaxLen {
		return term
	}
	return string([]rune(term)[:TermMaxLen])
}
