package usecase

import (
	"context"
	"log"
	"strings"

	"talentmatch/internal/domain/skill"
	"talentmatch/internal/normalize"
	"talentmatch/internal/repository"

	"github.com/google/uuid"
	"github.com/pmezard/go-difflib/difflib"
)

// Empirical thresholds. 0.8 is the auto-accept similarity floor; an
// uncorrected term scoring above 0.5 lands in the human-review band. Both are
// tunable, neither is derived from first principles.
const (
	similarityThreshold = 0.8
	reviewBand          = 0.5
)

// Resolution is the outcome of one term lookup. Degraded marks a vocabulary
// failure that passed the term through unchanged; callers can tell an
// authoritative miss from a store outage.
type Resolution struct {
	Term      string
	Score     float64
	Corrected bool
	Degraded  bool
}

// CorrectionReport aggregates the audit trail for review dashboards.
type CorrectionReport struct {
	Stats  repository.CorrectionStats
	Recent []skill.CorrectionLog
}

type SkillResolverUsecase interface {
	Resolve(ctx context.Context, rawTerm string, userID uuid.NullUUID) Resolution
	CanonicalizeList(ctx context.Context, skills string, userID uuid.NullUUID) string
	CorrectionReport(ctx context.Context) (CorrectionReport, error)
}

type SkillResolver struct {
	vocab  repository.CanonicalSkillRepository
	audits repository.CorrectionLogRepository
	logger *log.Logger
}

func NewSkillResolver(vocab repository.CanonicalSkillRepository, audits repository.CorrectionLogRepository, logger *log.Logger) *SkillResolver {
	if logger == nil {
		logger = log.Default()
	}
	return &SkillResolver{vocab: vocab, audits: audits, logger: logger}
}

// Resolve maps a free-text term to its canonical skill. An exact name hit
// returns immediately and is not audited; a fuzzy pass over every active
// entry and alias is audited whether or not it corrected. A vocabulary
// failure degrades to passing the term through, never to an error: a profile
// save must not fail because the vocabulary store hiccupped.
func (r *SkillResolver) Resolve(ctx context.Context, rawTerm string, userID uuid.NullUUID) Resolution {
	normalized := normalize.Text(rawTerm)
	if normalized == "" {
		return Resolution{Term: rawTerm}
	}

	entries, err := r.vocab.ListActive(ctx)
	if err != nil {
		r.logger.Printf("[SkillResolver] vocabulary lookup failed for %q: %v", rawTerm, err)
		return Resolution{Term: rawTerm, Degraded: true}
	}

	for _, entry := range entries {
		if strings.EqualFold(entry.Name, normalized) {
			return Resolution{Term: entry.Name, Score: 1.0, Corrected: true}
		}
	}

	bestScore := 0.0
	bestName := ""
	for _, entry := range entries {
		if score := similarityRatio(normalized, entry.Name); score > bestScore {
			bestScore = score
			bestName = entry.Name
		}
		for _, alias := range entry.AliasList() {
			if score := similarityRatio(normalized, alias); score > bestScore {
				bestScore = score
				bestName = entry.Name
			}
		}
	}

	res := Resolution{Term: normalized, Score: bestScore}
	if bestScore >= similarityThreshold && bestName != "" {
		res.Term = bestName
		res.Corrected = true
	}

	entry := skill.CorrectionLog{
		OriginalTerm:    skill.TruncateTerm(rawTerm),
		SimilarityScore: bestScore,
		WasAutoCorrect:  res.Corrected,
		NeedsReview:     !res.Corrected && bestScore > reviewBand,
		UserID:          userID,
	}
	if res.Corrected {
		entry.CorrectedTerm = skill.TruncateTerm(res.Term)
	}
	if err := r.audits.Append(ctx, entry); err != nil {
		// The decision stands; the audit trail just has a hole.
		r.logger.Printf("[SkillResolver] audit append failed for %q: %v", rawTerm, err)
	}

	return res
}

// CanonicalizeList resolves every comma-separated term and rejoins the
// deduplicated results in first-seen order. A failing term degrades to its
// own normalized form without aborting the rest of the list.
func (r *SkillResolver) CanonicalizeList(ctx context.Context, skills string, userID uuid.NullUUID) string {
	if skills == "" {
		return ""
	}

	corrected := 0
	seen := map[string]bool{}
	out := make([]string, 0)
	for _, raw := range strings.Split(skills, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		res := r.Resolve(ctx, raw, userID)
		term := res.Term
		if res.Degraded {
			term = normalize.Text(raw)
			if term == "" {
				continue
			}
		}
		if res.Corrected {
			corrected++
		}

		if seen[term] {
			continue
		}
		seen[term] = true
		out = append(out, term)
	}

	if corrected > 0 {
		r.logger.Printf("[SkillResolver] auto-corrected %d skill terms", corrected)
	}

	return strings.Join(out, ", ")
}

func (r *SkillResolver) CorrectionReport(ctx context.Context) (CorrectionReport, error) {
	stats, err := r.audits.Stats(ctx)
	if err != nil {
		return CorrectionReport{}, err
	}
	recent, err := r.audits.Recent(ctx, 10)
	if err != nil {
		return CorrectionReport{}, err
	}
	return CorrectionReport{Stats: stats, Recent: recent}, nil
}

// similarityRatio is the symmetric character-level sequence-matching ratio in
// [0, 1]. It is length-sensitive and can rank short unrelated terms as
// similar; the threshold above compensates in practice.
func similarityRatio(a, b string) float64 {
	return difflib.NewMatcher(
		strings.Split(strings.ToLower(a), ""),
		strings.Split(strings.ToLower(b), ""),
	).Ratio()
}
