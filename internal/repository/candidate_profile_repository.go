package repository

import (
	"context"
	"database/sql"
	"errors"

	"talentmatch/internal/database"
	"talentmatch/internal/domain/matching"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrProfileNotFound reports that a candidate has no profile row. Callers in
// the matching core treat this as data absence, never as a failure.
var ErrProfileNotFound = errors.New("candidate profile not found")

// CandidateProfile is one candidate's stored profile. Skills hold the
// canonicalized comma-joined terms written back at save time.
type CandidateProfile struct {
	UserID          uuid.UUID
	Skills          string
	ExperienceYears int
	Location        string
	City            string
	State           string
	DesiredSalary   *float64
	Available       bool
}

// Matching converts the row into the scorer's read-only view.
func (p CandidateProfile) Matching() *matching.Profile {
	return &matching.Profile{
		Skills:          p.Skills,
		ExperienceYears: p.ExperienceYears,
		Location:        p.Location,
		City:            p.City,
		State:           p.State,
		DesiredSalary:   p.DesiredSalary,
	}
}

type CandidateProfileRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (CandidateProfile, error)
	ListAvailable(ctx context.Context) ([]CandidateProfile, error)
	UpdateSkills(ctx context.Context, userID uuid.UUID, skills string) error
}

type PostgresCandidateProfileRepository struct {
	db database.DB
}

func NewPostgresCandidateProfileRepository(db database.DB) *PostgresCandidateProfileRepository {
	return &PostgresCandidateProfileRepository{db: db}
}

const profileColumns = `user_id, skills, experience_years, location, city, state, desired_salary, available`

func (r *PostgresCandidateProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (CandidateProfile, error) {
	var p CandidateProfile
	err := r.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM candidate_profiles WHERE user_id = $1`, userID).
		Scan(&p.UserID, &p.Skills, &p.ExperienceYears, &p.Location, &p.City, &p.State, &p.DesiredSalary, &p.Available)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return CandidateProfile{}, ErrProfileNotFound
		}
		return CandidateProfile{}, err
	}
	return p, nil
}

func (r *PostgresCandidateProfileRepository) ListAvailable(ctx context.Context) ([]CandidateProfile, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+profileColumns+` FROM candidate_profiles WHERE available = TRUE ORDER BY user_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]CandidateProfile, 0)
	for rows.Next() {
		var p CandidateProfile
		if err := rows.Scan(&p.UserID, &p.Skills, &p.ExperienceYears, &p.Location, &p.City, &p.State, &p.DesiredSalary, &p.Available); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCandidateProfileRepository) UpdateSkills(ctx context.Context, userID uuid.UUID, skills string) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE candidate_profiles SET skills = $2 WHERE user_id = $1`, userID, skills)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProfileNotFound
	}
	return nil
}
