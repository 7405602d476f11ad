package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"talentmatch/internal/database"
	"talentmatch/internal/domain/matching"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrJobNotFound = errors.New("job not found")

// skillGapSampleSize bounds the job scan used for skill-gap statistics.
const skillGapSampleSize = 100

// Job is one stored posting with the fields the scorer reads.
type Job struct {
	ID              uuid.UUID
	CompanyID       uuid.UUID
	Title           string
	Requirements    string
	ExperienceYears int
	WorkMode        string
	Location        string
	SalaryMin       *float64
	SalaryMax       *float64
	IsActive        bool
	CreatedAt       time.Time
}

// Matching converts the row into the scorer's read-only view.
func (j Job) Matching() matching.Job {
	return matching.Job{
		Requirements:    j.Requirements,
		ExperienceYears: j.ExperienceYears,
		WorkMode:        j.WorkMode,
		Location:        j.Location,
		SalaryMin:       j.SalaryMin,
		SalaryMax:       j.SalaryMax,
	}
}

type JobRepository interface {
	GetByID(ctx context.Context, jobID uuid.UUID) (Job, error)
	ListActive(ctx context.Context) ([]Job, error)
	ListRecentActive(ctx context.Context, limit int) ([]Job, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `id, company_id, COALESCE(title, ''), COALESCE(requirements, ''),
	experience_years, work_mode, COALESCE(location, ''), salary_min, salary_max, is_active, created_at`

func (r *PostgresJobRepository) GetByID(ctx context.Context, jobID uuid.UUID) (Job, error) {
	var j Job
	err := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, jobID).
		Scan(&j.ID, &j.CompanyID, &j.Title, &j.Requirements, &j.ExperienceYears,
			&j.WorkMode, &j.Location, &j.SalaryMin, &j.SalaryMax, &j.IsActive, &j.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Job{}, ErrJobNotFound
		}
		return Job{}, err
	}
	return j, nil
}

func (r *PostgresJobRepository) ListActive(ctx context.Context) ([]Job, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE is_active = TRUE ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanJobs(rows)
}

// ListRecentActive returns at most limit active jobs, newest first. The
// skill-gap scan uses it with a fixed sample cap.
func (r *PostgresJobRepository) ListRecentActive(ctx context.Context, limit int) ([]Job, error) {
	if limit <= 0 || limit > skillGapSampleSize {
		limit = skillGapSampleSize
	}
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE is_active = TRUE ORDER BY created_at DESC LIMIT $1`,
		limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanJobs(rows)
}

func scanJobs(rows database.Rows) ([]Job, error) {
	out := make([]Job, 0)
	for rows.Next() {
		var j Job
		if err := rows.Scan(&j.ID, &j.CompanyID, &j.Title, &j.Requirements, &j.ExperienceYears,
			&j.WorkMode, &j.Location, &j.SalaryMin, &j.SalaryMax, &j.IsActive, &j.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
