package dto

import (
	"time"

	"github.com/google/uuid"

	"talentmatch/internal/domain/skill"
	"talentmatch/internal/usecase"
)

type CanonicalSkillResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Aliases  []string  `json:"aliases"`
	Category string    `json:"category"`
}

func NewCanonicalSkillResponse(s skill.CanonicalSkill) CanonicalSkillResponse {
	aliases := s.AliasList()
	if aliases == nil {
		aliases = []string{}
	}
	return CanonicalSkillResponse{
		ID:       s.ID,
		Name:     s.Name,
		Aliases:  aliases,
		Category: s.Category,
	}
}

func NewCanonicalSkillListResponse(skills []skill.CanonicalSkill) []CanonicalSkillResponse {
	out := make([]CanonicalSkillResponse, 0, len(skills))
	for _, s := range skills {
		out = append(out, NewCanonicalSkillResponse(s))
	}
	return out
}

type ResolutionResponse struct {
	Original  string  `json:"original"`
	Resolved  string  `json:"resolved"`
	Score     float64 `json:"score"`
	Corrected bool    `json:"corrected"`
	Degraded  bool    `json:"degraded"`
}

func NewResolutionResponse(original string, r usecase.Resolution) ResolutionResponse {
	return ResolutionResponse{
		Original:  original,
		Resolved:  r.Term,
		Score:     r.Score,
		Corrected: r.Corrected,
		Degraded:  r.Degraded,
	}
}

type CorrectionLogResponse struct {
	ID              uuid.UUID `json:"id"`
	OriginalTerm    string    `json:"original_term"`
	CorrectedTerm   string    `json:"corrected_term"`
	SimilarityScore float64   `json:"similarity_score"`
	WasAutoCorrect  bool      `json:"was_auto_correct"`
	NeedsReview     bool      `json:"needs_review"`
	CreatedAt       time.Time `json:"created_at"`
}

type CorrectionReportResponse struct {
	Total         int64                   `json:"total"`
	AutoCorrected int64                   `json:"auto_corrected"`
	NeedsReview   int64                   `json:"needs_review"`
	AvgSimilarity float64                 `json:"avg_similarity"`
	Recent        []CorrectionLogResponse `json:"recent"`
}

func NewCorrectionReportResponse(r usecase.CorrectionReport) CorrectionReportResponse {
	recent := make([]CorrectionLogResponse, 0, len(r.Recent))
	for _, l := range r.Recent {
		recent = append(recent, CorrectionLogResponse{
			ID:              l.ID,
			OriginalTerm:    l.OriginalTerm,
			CorrectedTerm:   l.CorrectedTerm,
			SimilarityScore: l.SimilarityScore,
			WasAutoCorrect:  l.WasAutoCorrect,
			NeedsReview:     l.NeedsReview,
			CreatedAt:       l.CreatedAt,
		})
	}
	return CorrectionReportResponse{
		Total:         r.Stats.Total,
		AutoCorrected: r.Stats.AutoCorrected,
		NeedsReview:   r.Stats.NeedsReview,
		AvgSimilarity: r.Stats.AvgSimilarity,
		Recent:        recent,
	}
}
