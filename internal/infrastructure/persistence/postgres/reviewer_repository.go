package postgres

import (
	"context"
	"database/sql"

	"career-map/internal/domain/reviewer"

	"github.com/google/uuid"
)

// ReviewerRepository uses prepared statements over the pool's
// database/sql bridge; reviewer lookups run on every authenticated
// request.
type ReviewerRepository struct {
	stmtGetByID    *sql.Stmt
	stmtGetByEmail *sql.Stmt
}

func NewReviewerRepository(db *sql.DB) (*ReviewerRepository, error) {
	r := &ReviewerRepository{}

	var err error
	r.stmtGetByID, err = db.PrepareContext(
		context.Background(),
		`SELECT id, email, password_hash, full_name, created_at, updated_at FROM reviewers WHERE id = $1`,
	)
	if err != nil {
		_ = r.Close()
		return nil, err
	}

	r.stmtGetByEmail, err = db.PrepareContext(
		context.Background(),
		`SELECT id, email, password_hash, full_name, created_at, updated_at FROM reviewers WHERE email = $1`,
	)
	if err != nil {
		_ = r.Close()
		return nil, err
	}

	return r, nil
}

func (r *ReviewerRepository) Close() error {
	var firstErr error
	closeStmt := func(s *sql.Stmt) {
		if s == nil {
			return
		}
		if err := s.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	closeStmt(r.stmtGetByID)
	closeStmt(r.stmtGetByEmail)

	return firstErr
}

func (r *ReviewerRepository) GetByID(ctx context.Context, id uuid.UUID) (reviewer.Reviewer, error) {
	return scanReviewer(r.stmtGetByID.QueryRowContext(ctx, id))
}

func (r *ReviewerRepository) GetByEmail(ctx context.Context, email string) (reviewer.Reviewer, error) {
	return scanReviewer(r.stmtGetByEmail.QueryRowContext(ctx, email))
}

type reviewerRow interface {
	Scan(dest ...any) error
}

func scanReviewer(row reviewerRow) (reviewer.Reviewer, error) {
	var rv reviewer.Reviewer
	if err := row.Scan(&rv.ID, &rv.Email, &rv.PasswordHash, &rv.FullName, &rv.CreatedAt, &rv.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return reviewer.Reviewer{}, reviewer.ErrNotFound
		}
		return reviewer.Reviewer{}, err
	}
	return rv, nil
}
