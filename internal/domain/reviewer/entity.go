package reviewer

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("reviewer not found")

type Reviewer struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	FullName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (Reviewer, error)
	GetByEmail(ctx context.Context, email string) (Reviewer, error)
}
