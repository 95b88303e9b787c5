package seeder

import (
	"context"
	"fmt"
	"os"
	"strings"

	"career-map/internal/database"

	"golang.org/x/crypto/bcrypt"
)

// ReviewersSeeder creates the initial reviewer account from
// REVIEWER_EMAIL / REVIEWER_PASSWORD. Without both set it is a no-op, so
// local intake-only setups need no reviewer credentials.
type ReviewersSeeder struct{}

func (ReviewersSeeder) Name() string { return "reviewers" }

func (ReviewersSeeder) Run(ctx context.Context, db database.DB) error {
	email := strings.ToLower(strings.TrimSpace(os.Getenv("REVIEWER_EMAIL")))
	password := os.Getenv("REVIEWER_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	if err := EnsureTableColumns(ctx, db, "reviewers", "id", "email", "password_hash", "full_name", "created_at", "updated_at"); err != nil {
		return err
	}

	var exists bool
	row := db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM reviewers WHERE email = $1)`, email)
	if err := row.Scan(&exists); err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash reviewer password: %w", err)
	}

	fullName := strings.TrimSpace(os.Getenv("REVIEWER_FULL_NAME"))
	_, err = db.Exec(ctx,
		`INSERT INTO reviewers (id, email, password_hash, full_name) VALUES (gen_random_uuid(), $1, $2, $3)`,
		email, string(hash), fullName,
	)
	return err
}
