package dto

import (
	"github.com/google/uuid"

	"talentmatch/internal/repository"
)

type ProfileResponse struct {
	UserID          uuid.UUID `json:"user_id"`
	Skills          string    `json:"skills"`
	ExperienceYears int       `json:"experience_years"`
	Location        string    `json:"location"`
	City            string    `json:"city"`
	State           string    `json:"state"`
	DesiredSalary   *float64  `json:"desired_salary"`
	Available       bool      `json:"available"`
}

func NewProfileResponse(p repository.CandidateProfile) ProfileResponse {
	return ProfileResponse{
		UserID:          p.UserID,
		Skills:          p.Skills,
		ExperienceYears: p.ExperienceYears,
		Location:        p.Location,
		City:            p.City,
		State:           p.State,
		DesiredSalary:   p.DesiredSalary,
		Available:       p.Available,
	}
}
