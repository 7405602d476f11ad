package seeder

import (
	"context"
	"fmt"

	"talentmatch/internal/database"
)

// SchemaSeeder creates every table the service reads or writes. All
// statements are idempotent so the seeder can run on every deploy.
type SchemaSeeder struct{}

func (SchemaSeeder) Name() string { return "schema" }

func (SchemaSeeder) Run(ctx context.Context, db database.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            UUID PRIMARY KEY,
			email         TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			full_name     TEXT,
			user_type     TEXT NOT NULL DEFAULT 'candidate',
			created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS candidate_profiles (
			user_id          UUID PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
			skills           TEXT NOT NULL DEFAULT '',
			experience_years INTEGER NOT NULL DEFAULT 0,
			location         TEXT NOT NULL DEFAULT '',
			city             TEXT NOT NULL DEFAULT '',
			state            TEXT NOT NULL DEFAULT '',
			desired_salary   NUMERIC,
			available        BOOLEAN NOT NULL DEFAULT TRUE
		)`,
		`CREATE TABLE IF NOT EXISTS jobs (
			id               UUID PRIMARY KEY,
			company_id       UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			title            TEXT,
			requirements     TEXT,
			experience_years INTEGER NOT NULL DEFAULT 0,
			work_mode        TEXT NOT NULL DEFAULT 'onsite',
			location         TEXT,
			salary_min       NUMERIC,
			salary_max       NUMERIC,
			is_active        BOOLEAN NOT NULL DEFAULT TRUE,
			created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_jobs_active_created
			ON jobs (created_at DESC) WHERE is_active`,
		`CREATE TABLE IF NOT EXISTS canonical_skills (
			id         UUID PRIMARY KEY,
			name       TEXT NOT NULL UNIQUE,
			aliases    TEXT NOT NULL DEFAULT '',
			category   TEXT NOT NULL DEFAULT '',
			is_active  BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS skill_correction_logs (
			id                 UUID PRIMARY KEY,
			original_term      VARCHAR(100) NOT NULL,
			corrected_term     VARCHAR(100) NOT NULL,
			similarity_score   DOUBLE PRECISION NOT NULL,
			was_auto_corrected BOOLEAN NOT NULL,
			needs_review       BOOLEAN NOT NULL,
			user_id            UUID REFERENCES users(id) ON DELETE SET NULL,
			created_at         TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_skill_corrections_created
			ON skill_correction_logs (created_at DESC)`,
		`CREATE TABLE IF NOT EXISTS match_results (
			id             UUID PRIMARY KEY,
			candidate_id   UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			job_id         UUID NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
			score          DOUBLE PRECISION NOT NULL,
			matched_skills TEXT NOT NULL DEFAULT '',
			missing_skills TEXT NOT NULL DEFAULT '',
			created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (candidate_id, job_id)
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema: %w", err)
		}
	}
	return nil
}

// EnsureTableColumns fails fast when a seeded table is missing an
// expected column, which catches drift between seeders and schema.
func EnsureTableColumns(ctx context.Context, db database.DB, table string, columns ...string) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	if table == "" {
		return fmt.Errorf("empty table")
	}

	rows, err := db.Query(ctx,
		`SELECT column_name FROM information_schema.columns WHERE table_schema='public' AND table_name=$1`,
		table)
	if err != nil {
		return err
	}
	defer rows.Close()

	existing := map[string]struct{}{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return err
		}
		existing[c] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, col := range columns {
		if col == "" {
			return fmt.Errorf("empty column")
		}
		if _, ok := existing[col]; !ok {
			return fmt.Errorf("schema mismatch: missing column %s.%s", table, col)
		}
	}
	return nil
}
