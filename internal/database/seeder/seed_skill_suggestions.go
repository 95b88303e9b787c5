package seeder

import (
	"context"
	"fmt"

	"career-map/internal/database"
)

type SkillSuggestionsSeeder struct{}

func (SkillSuggestionsSeeder) Name() string { return "skill_suggestions" }

func (SkillSuggestionsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skill_suggestions", "id", "name", "category", "created_at"); err != nil {
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
		Category string
	}{
		{Name: "Go", Category: "Programming Language"},
		{Name: "JavaScript", Category: "Programming Language"},
		{Name: "TypeScript", Category: "Programming Language"},
		{Name: "Python", Category: "Programming Language"},
		{Name: "PostgreSQL", Category: "Database"},
		{Name: "Redis", Category: "Database"},
		{Name: "Docker", Category: "DevOps"},
		{Name: "Kubernetes", Category: "DevOps"},
		{Name: "AWS", Category: "Cloud"},
		{Name: "GCP", Category: "Cloud"},
		{Name: "Project Management", Category: "Soft Skill"},
		{Name: "Public Speaking", Category: "Soft Skill"},
		{Name: "Data Analysis", Category: "Analytics"},
		{Name: "UI/UX Design", Category: "Design"},
	}

	for _, it := range items {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO skill_suggestions (id, name, category) VALUES (gen_random_uuid(), $1, $2) ON CONFLICT (name) DO NOTHING`,
			it.Name,
			it.Category,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
