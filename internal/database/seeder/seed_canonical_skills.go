package seeder

import (
	"context"
	"fmt"

	"talentmatch/internal/database"
)

// CanonicalSkillsSeeder loads the skill vocabulary the resolver matches
// against. Aliases are comma-joined lowercase variants. Re-running
// refreshes aliases and categories without duplicating names.
type CanonicalSkillsSeeder struct{}

func (CanonicalSkillsSeeder) Name() string { return "canonical_skills" }

func (CanonicalSkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "canonical_skills", "id", "name", "aliases", "category", "is_active", "created_at"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		Name     string
		Aliases  string
		Category string
	}{
		{Name: "python", Aliases: "py, python3", Category: "language"},
		{Name: "javascript", Aliases: "js, ecmascript", Category: "language"},
		{Name: "typescript", Aliases: "ts", Category: "language"},
		{Name: "java", Aliases: "", Category: "language"},
		{Name: "go", Aliases: "golang", Category: "language"},
		{Name: "c#", Aliases: "csharp, c sharp", Category: "language"},
		{Name: "c++", Aliases: "cpp, cplusplus", Category: "language"},
		{Name: "ruby", Aliases: "", Category: "language"},
		{Name: "php", Aliases: "", Category: "language"},
		{Name: "react", Aliases: "reactjs, react.js", Category: "framework"},
		{Name: "angular", Aliases: "angularjs", Category: "framework"},
		{Name: "vue", Aliases: "vuejs, vue.js", Category: "framework"},
		{Name: "django", Aliases: "", Category: "framework"},
		{Name: "flask", Aliases: "", Category: "framework"},
		{Name: "spring", Aliases: "spring boot, springboot", Category: "framework"},
		{Name: "node.js", Aliases: "node, nodejs", Category: "runtime"},
		{Name: "sql", Aliases: "", Category: "database"},
		{Name: "postgresql", Aliases: "postgres, psql", Category: "database"},
		{Name: "mysql", Aliases: "", Category: "database"},
		{Name: "mongodb", Aliases: "mongo", Category: "database"},
		{Name: "redis", Aliases: "", Category: "database"},
		{Name: "docker", Aliases: "", Category: "devops"},
		{Name: "kubernetes", Aliases: "k8s", Category: "devops"},
		{Name: "terraform", Aliases: "", Category: "devops"},
		{Name: "ci/cd", Aliases: "cicd", Category: "devops"},
		{Name: "aws", Aliases: "amazon web services", Category: "cloud"},
		{Name: "gcp", Aliases: "google cloud", Category: "cloud"},
		{Name: "azure", Aliases: "", Category: "cloud"},
		{Name: "git", Aliases: "", Category: "tooling"},
		{Name: "linux", Aliases: "", Category: "tooling"},
		{Name: "machine learning", Aliases: "ml", Category: "data"},
		{Name: "data analysis", Aliases: "data analytics", Category: "data"},
	}

	for _, it := range items {
		_, err := tx.Exec(ctx,
			`INSERT INTO canonical_skills (id, name, aliases, category, is_active)
			 VALUES (gen_random_uuid(), $1, $2, $3, TRUE)
			 ON CONFLICT (name) DO UPDATE SET aliases = EXCLUDED.aliases, category = EXCLUDED.category`,
			it.Name, it.Aliases, it.Category)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
