package repository

import (
	"context"

	"career-map/internal/database"

	"github.com/google/uuid"
)

type SkillSuggestion struct {
	ID       uuid.UUID
	Name     string
	Category string
}

type SkillSuggestionRepository interface {
	Search(ctx context.Context, query string, limit int) ([]SkillSuggestion, error)
}

type PostgresSkillSuggestionRepository struct {
	db database.DB
}

func NewPostgresSkillSuggestionRepository(db database.DB) *PostgresSkillSuggestionRepository {
	return &PostgresSkillSuggestionRepository{db: db}
}

func (r *PostgresSkillSuggestionRepository) Search(ctx context.Context, query string, limit int) ([]SkillSuggestion, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, category
		 FROM skill_suggestions
		 WHERE name ILIKE '%' || $1 || '%'
		 ORDER BY name ASC
		 LIMIT $2`,
		query, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SkillSuggestion, 0)
	for rows.Next() {
		var s SkillSuggestion
		if err := rows.Scan(&s.ID, &s.Name, &s.Category); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
