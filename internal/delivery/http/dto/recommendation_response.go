package dto

import (
	"time"

	"github.com/google/uuid"

	"talentmatch/internal/usecase"
)

type JobSummaryResponse struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Requirements    string    `json:"requirements"`
	ExperienceYears int       `json:"experience_years"`
	WorkMode        string    `json:"work_mode"`
	Location        string    `json:"location"`
	SalaryMin       *float64  `json:"salary_min"`
	SalaryMax       *float64  `json:"salary_max"`
	CreatedAt       time.Time `json:"created_at"`
}

type JobRecommendationResponse struct {
	Job           JobSummaryResponse `json:"job"`
	Score         float64            `json:"score"`
	Percentage    int                `json:"percentage"`
	MatchedSkills []string           `json:"matched_skills"`
	MissingSkills []string           `json:"missing_skills"`
}

func NewJobRecommendationListResponse(recs []usecase.JobRecommendation) []JobRecommendationResponse {
	out := make([]JobRecommendationResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, JobRecommendationResponse{
			Job: JobSummaryResponse{
				ID:              r.Job.ID,
				Title:           r.Job.Title,
				Requirements:    r.Job.Requirements,
				ExperienceYears: r.Job.ExperienceYears,
				WorkMode:        r.Job.WorkMode,
				Location:        r.Job.Location,
				SalaryMin:       r.Job.SalaryMin,
				SalaryMax:       r.Job.SalaryMax,
				CreatedAt:       r.Job.CreatedAt,
			},
			Score:         r.Score,
			Percentage:    r.Percentage,
			MatchedSkills: emptyIfNil(r.MatchedSkills),
			MissingSkills: emptyIfNil(r.MissingSkills),
		})
	}
	return out
}

type CandidateRecommendationResponse struct {
	CandidateID   uuid.UUID `json:"candidate_id"`
	Score         float64   `json:"score"`
	Percentage    int       `json:"percentage"`
	MatchedSkills []string  `json:"matched_skills"`
	MissingSkills []string  `json:"missing_skills"`
}

func NewCandidateRecommendationListResponse(recs []usecase.CandidateRecommendation) []CandidateRecommendationResponse {
	out := make([]CandidateRecommendationResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, CandidateRecommendationResponse{
			CandidateID:   r.CandidateID,
			Score:         r.Score,
			Percentage:    r.Percentage,
			MatchedSkills: emptyIfNil(r.MatchedSkills),
			MissingSkills: emptyIfNil(r.MissingSkills),
		})
	}
	return out
}

type SkillGapResponse struct {
	MissingSkills []string `json:"missing_skills"`
}

func NewSkillGapResponse(gaps []string) SkillGapResponse {
	return SkillGapResponse{MissingSkills: emptyIfNil(gaps)}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
