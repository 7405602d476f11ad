package repository

import (
	"context"

	"talentmatch/internal/database"
	"talentmatch/internal/domain/skill"

	"github.com/google/uuid"
)

// CanonicalSkillRepository reads the controlled vocabulary. ListActive must
// return entries in a fixed, deterministic order because fuzzy resolution
// keeps the first of tied candidates.
type CanonicalSkillRepository interface {
	ListActive(ctx context.Context) ([]skill.CanonicalSkill, error)
	Create(ctx context.Context, name, aliases, category string) (skill.CanonicalSkill, error)
}

type PostgresCanonicalSkillRepository struct {
	db database.DB
}

func NewPostgresCanonicalSkillRepository(db database.DB) *PostgresCanonicalSkillRepository {
	return &PostgresCanonicalSkillRepository{db: db}
}

func (r *PostgresCanonicalSkillRepository) ListActive(ctx context.Context) ([]skill.CanonicalSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, aliases, category, is_active, created_at
		 FROM canonical_skills
		 WHERE is_active = TRUE
		 ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.CanonicalSkill, 0)
	for rows.Next() {
		var s skill.CanonicalSkill
		if err := rows.Scan(&s.ID, &s.Name, &s.Aliases, &s.Category, &s.IsActive, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCanonicalSkillRepository) Create(ctx context.Context, name, aliases, category string) (skill.CanonicalSkill, error) {
	id := uuid.New()
	_, err := r.db.Exec(ctx,
		`INSERT INTO canonical_skills (id, name, aliases, category, is_active)
		 VALUES ($1, $2, $3, $4, TRUE)`,
		id, name, aliases, category)
	if err != nil {
		return skill.CanonicalSkill{}, err
	}
	return skill.CanonicalSkill{ID: id, Name: name, Aliases: aliases, Category: category, IsActive: true}, nil
}
