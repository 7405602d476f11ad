package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"talentmatch/internal/domain/skill"
	"talentmatch/internal/repository"

	"github.com/google/uuid"
)

type mockVocabRepo struct {
	entries []skill.CanonicalSkill
	err     error
}

func (m mockVocabRepo) ListActive(context.Context) ([]skill.CanonicalSkill, error) {
	return m.entries, m.err
}

func (m mockVocabRepo) Create(context.Context, string, string, string) (skill.CanonicalSkill, error) {
	return skill.CanonicalSkill{}, nil
}

type mockAuditRepo struct {
	entries   *[]skill.CorrectionLog
	appendErr error
	stats     repository.CorrectionStats
	recent    []skill.CorrectionLog
}

func (m mockAuditRepo) Append(_ context.Context, entry skill.CorrectionLog) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	if m.entries != nil {
		*m.entries = append(*m.entries, entry)
	}
	return nil
}

func (m mockAuditRepo) Stats(context.Context) (repository.CorrectionStats, error) {
	return m.stats, nil
}

func (m mockAuditRepo) Recent(context.Context, int) ([]skill.CorrectionLog, error) {
	return m.recent, nil
}

func testVocab() []skill.CanonicalSkill {
	return []skill.CanonicalSkill{
		{Name: "java"},
		{Name: "python", Aliases: "py, python3"},
		{Name: "react", Aliases: "reactjs, react.js"},
		{Name: "sql"},
	}
}

func newTestResolver(vocab mockVocabRepo, audits mockAuditRepo) *SkillResolver {
	return NewSkillResolver(vocab, audits, log.New(io.Discard, "", 0))
}

func TestSkillResolver_Resolve_ExactMatchSkipsAudit(t *testing.T) {
	var audited []skill.CorrectionLog
	r := newTestResolver(mockVocabRepo{entries: testVocab()}, mockAuditRepo{entries: &audited})

	res := r.Resolve(context.Background(), "Python", uuid.NullUUID{})

	if res.Term != "python" || res.Score != 1.0 || !res.Corrected || res.Degraded {
		t.Fatalf("unexpected resolution: %+v", res)
	}
	if len(audited) != 0 {
		t.Fatalf("exact match must not be audited, got %d entries", len(audited))
	}
}

func TestSkillResolver_Resolve_AliasCorrects(t *testing.T) {
	var audited []skill.CorrectionLog
	r := newTestResolver(mockVocabRepo{entries: testVocab()}, mockAuditRepo{entries: &audited})

	res := r.Resolve(context.Background(), "ReactJS", uuid.NullUUID{})

	if res.Term != "react" || !res.Corrected {
		t.Fatalf("expected alias correction to react, got %+v", res)
	}
	if res.Score != 1.0 {
		t.Fatalf("identical alias should score 1.0, got %v", res.Score)
	}
	if len(audited) != 1 {
		t.Fatalf("alias correction must be audited, got %d entries", len(audited))
	}
	if !audited[0].WasAutoCorrect || audited[0].CorrectedTerm != "react" {
		t.Fatalf("unexpected audit entry: %+v", audited[0])
	}
}

func TestSkillResolver_Resolve_TypoAboveThresholdCorrects(t *testing.T) {
	var audited []skill.CorrectionLog
	r := newTestResolver(mockVocabRepo{entries: testVocab()}, mockAuditRepo{entries: &audited})

	res := r.Resolve(context.Background(), "pythn", uuid.NullUUID{})

	if res.Term != "python" || !res.Corrected {
		t.Fatalf("expected typo correction to python, got %+v", res)
	}
	if res.Score < 0.8 || res.Score >= 1.0 {
		t.Fatalf("score out of expected band: %v", res.Score)
	}
	if len(audited) != 1 || !audited[0].WasAutoCorrect {
		t.Fatalf("unexpected audit trail: %+v", audited)
	}
}

func TestSkillResolver_Resolve_ExactThresholdCorrects(t *testing.T) {
	var audited []skill.CorrectionLog
	r := newTestResolver(mockVocabRepo{entries: testVocab()}, mockAuditRepo{entries: &audited})

	// "pyth" against "python" is 2*4/(4+6) = exactly 0.8; the threshold
	// is inclusive.
	res := r.Resolve(context.Background(), "pyth", uuid.NullUUID{})

	if res.Term != "python" || !res.Corrected {
		t.Fatalf("a term at the threshold must correct, got %+v", res)
	}
	if res.Score != 0.8 {
		t.Fatalf("expected score 0.8, got %v", res.Score)
	}
	if len(audited) != 1 || !audited[0].WasAutoCorrect {
		t.Fatalf("unexpected audit trail: %+v", audited)
	}
}

func TestSkillResolver_Resolve_ReviewBand(t *testing.T) {
	var audited []skill.CorrectionLog
	r := newTestResolver(mockVocabRepo{entries: testVocab()}, mockAuditRepo{entries: &audited})

	// "jaba" scores 0.75 against "java": too low to correct, high
	// enough to flag for review.
	res := r.Resolve(context.Background(), "jaba", uuid.NullUUID{})

	if res.Corrected {
		t.Fatalf("sub-threshold term must not be corrected: %+v", res)
	}
	if res.Term != "jaba" {
		t.Fatalf("uncorrected term should pass through normalized, got %q", res.Term)
	}
	if len(audited) != 1 {
		t.Fatalf("expected one audit entry, got %d", len(audited))
	}
	if !audited[0].NeedsReview || audited[0].WasAutoCorrect {
		t.Fatalf("unexpected audit flags: %+v", audited[0])
	}
	if audited[0].CorrectedTerm != "" {
		t.Fatalf("uncorrected entry must not record a corrected term, got %q", audited[0].CorrectedTerm)
	}
}

func TestSkillResolver_Resolve_NoMatchNoReview(t *testing.T) {
	var audited []skill.CorrectionLog
	r := newTestResolver(mockVocabRepo{entries: testVocab()}, mockAuditRepo{entries: &audited})

	res := r.Resolve(context.Background(), "xyz", uuid.NullUUID{})

	if res.Corrected || res.Term != "xyz" {
		t.Fatalf("unexpected resolution: %+v", res)
	}
	if len(audited) != 1 {
		t.Fatalf("expected one audit entry, got %d", len(audited))
	}
	if audited[0].NeedsReview {
		t.Fatalf("a near-zero score must not need review: %+v", audited[0])
	}
}

func TestSkillResolver_Resolve_EmptyTermSkipsEverything(t *testing.T) {
	var audited []skill.CorrectionLog
	r := newTestResolver(mockVocabRepo{entries: testVocab()}, mockAuditRepo{entries: &audited})

	for _, raw := range []string{"", "   ", "!!!"} {
		res := r.Resolve(context.Background(), raw, uuid.NullUUID{})
		if res.Corrected || res.Degraded || res.Score != 0 {
			t.Fatalf("raw=%q: unexpected resolution %+v", raw, res)
		}
	}
	if len(audited) != 0 {
		t.Fatalf("empty terms must not be audited, got %d entries", len(audited))
	}
}

func TestSkillResolver_Resolve_VocabularyFailureDegrades(t *testing.T) {
	var audited []skill.CorrectionLog
	r := newTestResolver(
		mockVocabRepo{err: errors.New("connection refused")},
		mockAuditRepo{entries: &audited},
	)

	res := r.Resolve(context.Background(), "python", uuid.NullUUID{})

	if !res.Degraded {
		t.Fatalf("expected degraded resolution, got %+v", res)
	}
	if res.Term != "python" || res.Corrected {
		t.Fatalf("degraded resolution must pass the term through: %+v", res)
	}
	if len(audited) != 0 {
		t.Fatalf("degraded lookups must not be audited, got %d entries", len(audited))
	}
}

func TestSkillResolver_Resolve_AuditFailureDoesNotChangeOutcome(t *testing.T) {
	r := newTestResolver(
		mockVocabRepo{entries: testVocab()},
		mockAuditRepo{appendErr: errors.New("table locked")},
	)

	res := r.Resolve(context.Background(), "pythn", uuid.NullUUID{})
	if res.Term != "python" || !res.Corrected {
		t.Fatalf("audit failure must not change the resolution: %+v", res)
	}
}

func TestSkillResolver_CanonicalizeList_DedupAndAliases(t *testing.T) {
	var audited []skill.CorrectionLog
	r := newTestResolver(mockVocabRepo{entries: testVocab()}, mockAuditRepo{entries: &audited})

	got := r.CanonicalizeList(context.Background(), "Python, python, PY", uuid.NullUUID{})
	if got != "python" {
		t.Fatalf("expected dedup to a single python, got %q", got)
	}
}

func TestSkillResolver_CanonicalizeList_KeepsFirstSeenOrder(t *testing.T) {
	r := newTestResolver(mockVocabRepo{entries: testVocab()}, mockAuditRepo{})

	got := r.CanonicalizeList(context.Background(), "ReactJS, SQL, pythn", uuid.NullUUID{})
	if got != "react, sql, python" {
		t.Fatalf("unexpected canonical list: %q", got)
	}
}

func TestSkillResolver_CanonicalizeList_UnresolvableTermsPassThrough(t *testing.T) {
	r := newTestResolver(mockVocabRepo{entries: testVocab()}, mockAuditRepo{})

	// Empty tokens disappear; a token that normalizes to nothing still
	// passes through in its raw form.
	got := r.CanonicalizeList(context.Background(), "python, !!!, , sql", uuid.NullUUID{})
	if got != "python, !!!, sql" {
		t.Fatalf("unexpected canonical list: %q", got)
	}
}

func TestSkillResolver_CanonicalizeList_DegradedFallsBackToNormalized(t *testing.T) {
	r := newTestResolver(mockVocabRepo{err: errors.New("down")}, mockAuditRepo{})

	got := r.CanonicalizeList(context.Background(), "Python,  SQL Server ", uuid.NullUUID{})
	if got != "python, sql server" {
		t.Fatalf("expected normalized passthrough, got %q", got)
	}
}

func TestSkillResolver_CorrectionReport(t *testing.T) {
	stats := repository.CorrectionStats{Total: 12, AutoCorrected: 7, NeedsReview: 2, AvgSimilarity: 0.81}
	recent := []skill.CorrectionLog{{OriginalTerm: "pythn", CorrectedTerm: "python"}}
	r := newTestResolver(mockVocabRepo{entries: testVocab()}, mockAuditRepo{stats: stats, recent: recent})

	report, err := r.CorrectionReport(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Stats != stats {
		t.Fatalf("stats mismatch: %+v", report.Stats)
	}
	if len(report.Recent) != 1 || report.Recent[0].CorrectedTerm != "python" {
		t.Fatalf("recent mismatch: %+v", report.Recent)
	}
}
