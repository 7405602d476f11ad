package repository

import (
	"context"
	"time"

	"talentmatch/internal/database"

	"github.com/google/uuid"
)

// MatchResultUpsert carries one (candidate, job) scoring outcome.
type MatchResultUpsert struct {
	CandidateID   uuid.UUID
	JobID         uuid.UUID
	Score         float64
	MatchedSkills string
	MissingSkills string
}

// MatchResult is a stored row; at most one exists per (candidate, job) pair.
type MatchResult struct {
	ID            uuid.UUID
	CandidateID   uuid.UUID
	JobID         uuid.UUID
	Score         float64
	MatchedSkills string
	MissingSkills string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type MatchResultRepository interface {
	Upsert(ctx context.Context, m MatchResultUpsert) error
	GetByPair(ctx context.Context, candidateID, jobID uuid.UUID) (MatchResult, error)
}

type PostgresMatchResultRepository struct {
	db database.DB
}

func NewPostgresMatchResultRepository(db database.DB) *PostgresMatchResultRepository {
	return &PostgresMatchResultRepository{db: db}
}

// Upsert inserts or overwrites the pair's row in one statement; the unique
// (candidate_id, job_id) constraint keeps concurrent writers from ever
// producing duplicates.
func (r *PostgresMatchResultRepository) Upsert(ctx context.Context, m MatchResultUpsert) error {
	if m.CandidateID == uuid.Nil || m.JobID == uuid.Nil {
		return nil
	}

	now := time.Now().UTC()
	_, err := r.db.Exec(ctx,
		`INSERT INTO match_results (id, candidate_id, job_id, score, matched_skills, missing_skills, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		 ON CONFLICT (candidate_id, job_id) DO UPDATE SET
			score = EXCLUDED.score,
			matched_skills = EXCLUDED.matched_skills,
			missing_skills = EXCLUDED.missing_skills,
			updated_at = EXCLUDED.updated_at`,
		uuid.New(),
		m.CandidateID,
		m.JobID,
		m.Score,
		m.MatchedSkills,
		m.MissingSkills,
		now,
	)
	return err
}

func (r *PostgresMatchResultRepository) GetByPair(ctx context.Context, candidateID, jobID uuid.UUID) (MatchResult, error) {
	var m MatchResult
	err := r.db.QueryRow(ctx,
		`SELECT id, candidate_id, job_id, score, matched_skills, missing_skills, created_at, updated_at
		 FROM match_results
		 WHERE candidate_id = $1 AND job_id = $2`,
		candidateID, jobID).
		Scan(&m.ID, &m.CandidateID, &m.JobID, &m.Score, &m.MatchedSkills, &m.MissingSkills, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return MatchResult{}, err
	}
	return m, nil
}
