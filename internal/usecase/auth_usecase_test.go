package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"career-map/internal/domain/reviewer"
	"career-map/internal/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type mockReviewerRepo struct {
	byEmail map[string]reviewer.Reviewer
	byID    map[uuid.UUID]reviewer.Reviewer
}

func (m *mockReviewerRepo) GetByID(_ context.Context, id uuid.UUID) (reviewer.Reviewer, error) {
	rv, ok := m.byID[id]
	if !ok {
		return reviewer.Reviewer{}, reviewer.ErrNotFound
	}
	return rv, nil
}

func (m *mockReviewerRepo) GetByEmail(_ context.Context, email string) (reviewer.Reviewer, error) {
	rv, ok := m.byEmail[email]
	if !ok {
		return reviewer.Reviewer{}, reviewer.ErrNotFound
	}
	return rv, nil
}

func seededRepo(t *testing.T, password string) (*mockReviewerRepo, reviewer.Reviewer) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	rv := reviewer.Reviewer{
		ID:           uuid.New(),
		Email:        "reviewer@example.com",
		PasswordHash: string(hash),
		FullName:     "Form Reviewer",
	}
	return &mockReviewerRepo{
		byEmail: map[string]reviewer.Reviewer{rv.Email: rv},
		byID:    map[uuid.UUID]reviewer.Reviewer{rv.ID: rv},
	}, rv
}

func newAuth(repo reviewer.Repository) *Auth {
	svc := jwt.NewHMACService("access", "refresh", 15*time.Minute, 24*time.Hour)
	return NewAuthUsecase(repo, svc)
}

func TestAuth_Login_Success(t *testing.T) {
	repo, rv := seededRepo(t, "s3cret-pass")
	uc := newAuth(repo)

	got, access, refresh, err := uc.Login(context.Background(), LoginInput{
		Email:    "  Reviewer@Example.com ",
		Password: "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.ID != rv.ID {
		t.Fatalf("unexpected reviewer")
	}
	if got.PasswordHash != "" {
		t.Fatalf("password hash must not leak")
	}
	if access == "" || refresh == "" {
		t.Fatalf("expected both tokens")
	}
}

func TestAuth_Login_WrongPassword(t *testing.T) {
	repo, _ := seededRepo(t, "s3cret-pass")
	uc := newAuth(repo)

	_, _, _, err := uc.Login(context.Background(), LoginInput{
		Email:    "reviewer@example.com",
		Password: "wrong",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuth_Login_UnknownEmail(t *testing.T) {
	repo, _ := seededRepo(t, "s3cret-pass")
	uc := newAuth(repo)

	_, _, _, err := uc.Login(context.Background(), LoginInput{
		Email:    "nobody@example.com",
		Password: "s3cret-pass",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuth_Refresh_RoundTrip(t *testing.T) {
	repo, rv := seededRepo(t, "s3cret-pass")
	uc := newAuth(repo)

	_, _, refresh, err := uc.Login(context.Background(), LoginInput{
		Email:    rv.Email,
		Password: "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	access, newRefresh, err := uc.Refresh(context.Background(), refresh)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if access == "" || newRefresh == "" {
		t.Fatalf("expected rotated tokens")
	}
}

func TestAuth_Refresh_RejectsAccessToken(t *testing.T) {
	repo, rv := seededRepo(t, "s3cret-pass")
	uc := newAuth(repo)

	_, access, _, err := uc.Login(context.Background(), LoginInput{
		Email:    rv.Email,
		Password: "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if _, _, err := uc.Refresh(context.Background(), access); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}
