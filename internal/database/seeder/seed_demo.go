package seeder

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"talentmatch/internal/database"
)

// Fixed ids keep demo rows stable across runs.
var (
	demoCompanyID   = uuid.MustParse("7b1f6f3e-9c6a-4d6f-8a64-2f3f3f111001")
	demoCandidateID = uuid.MustParse("7b1f6f3e-9c6a-4d6f-8a64-2f3f3f111002")

	demoJobIDs = []uuid.UUID{
		uuid.MustParse("7b1f6f3e-9c6a-4d6f-8a64-2f3f3f222001"),
		uuid.MustParse("7b1f6f3e-9c6a-4d6f-8a64-2f3f3f222002"),
		uuid.MustParse("7b1f6f3e-9c6a-4d6f-8a64-2f3f3f222003"),
	}
)

// DemoSeeder inserts a demo company with three openings and a demo
// candidate profile so a fresh environment has something to match.
type DemoSeeder struct {
	// Password for both demo accounts; defaults to "changeme-demo".
	Password string
}

func (DemoSeeder) Name() string { return "demo_data" }

func (s DemoSeeder) Run(ctx context.Context, db database.DB) error {
	pw := s.Password
	if pw == "" {
		pw = "changeme-demo"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	users := []struct {
		ID       uuid.UUID
		Email    string
		FullName string
		UserType string
	}{
		{demoCompanyID, "demo-company@talentmatch.local", "Demo Company", "company"},
		{demoCandidateID, "demo-candidate@talentmatch.local", "Demo Candidate", "candidate"},
	}
	for _, u := range users {
		_, err := tx.Exec(ctx,
			`INSERT INTO users (id, email, password_hash, full_name, user_type)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (id) DO NOTHING`,
			u.ID, u.Email, string(hash), u.FullName, u.UserType)
		if err != nil {
			return err
		}
	}

	salary := func(v float64) *float64 { return &v }
	desired := salary(9000)
	_, err = tx.Exec(ctx,
		`INSERT INTO candidate_profiles (user_id, skills, experience_years, location, city, state, desired_salary, available)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)
		 ON CONFLICT (user_id) DO NOTHING`,
		demoCandidateID, "python, react, sql", 4, "sao paulo, sp", "sao paulo", "sp", desired)
	if err != nil {
		return err
	}

	jobs := []struct {
		ID           uuid.UUID
		Title        string
		Requirements string
		Years        int
		WorkMode     string
		Location     string
		SalaryMin    *float64
		SalaryMax    *float64
	}{
		{demoJobIDs[0], "Backend Developer", "python, django, postgresql, docker", 3, "remote", "", salary(8000), salary(12000)},
		{demoJobIDs[1], "Frontend Developer", "javascript, react, typescript", 2, "hybrid", "sao paulo, sp", salary(7000), salary(10000)},
		{demoJobIDs[2], "Data Engineer", "python, sql, aws, machine learning", 5, "onsite", "campinas, sp", salary(10000), nil},
	}
	for _, j := range jobs {
		_, err := tx.Exec(ctx,
			`INSERT INTO jobs (id, company_id, title, requirements, experience_years, work_mode, location, salary_min, salary_max, is_active)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, TRUE)
			 ON CONFLICT (id) DO NOTHING`,
			j.ID, demoCompanyID, j.Title, j.Requirements, j.Years, j.WorkMode, j.Location, j.SalaryMin, j.SalaryMax)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
