package usecase

import (
	"context"
	"errors"
	"strings"

	"career-map/internal/domain/reviewer"
	"career-map/internal/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)

type LoginInput struct {
	Email    string
	Password string
}

type AuthUsecase interface {
	Login(ctx context.Context, in LoginInput) (reviewer.Reviewer, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

// Auth authenticates reviewers. Accounts are seeded; there is no public
// registration for the review side of an intake form.
type Auth struct {
	reviewers reviewer.Repository
	jwt       jwt.Service
}

func NewAuthUsecase(reviewers reviewer.Repository, jwtSvc jwt.Service) *Auth {
	return &Auth{reviewers: reviewers, jwt: jwtSvc}
}

func (u *Auth) Login(ctx context.Context, in LoginInput) (reviewer.Reviewer, string, string, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return reviewer.Reviewer{}, "", "", ErrInvalidCredentials
	}

	rv, err := u.reviewers.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, reviewer.ErrNotFound) {
			return reviewer.Reviewer{}, "", "", ErrInvalidCredentials
		}
		return reviewer.Reviewer{}, "", "", ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(rv.PasswordHash), []byte(in.Password)); err != nil {
		return reviewer.Reviewer{}, "", "", ErrInvalidCredentials
	}

	access, err := u.jwt.GenerateAccessToken(rv.ID, rv.Email)
	if err != nil {
		return reviewer.Reviewer{}, "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(rv.ID)
	if err != nil {
		return reviewer.Reviewer{}, "", "", ErrInternal
	}

	rv.PasswordHash = ""
	return rv, access, refresh, nil
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	if refreshToken == "" {
		return "", "", ErrInvalidRefreshToken
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrRefreshTokenExpired
		}
		return "", "", ErrInvalidRefreshToken
	}

	if !u.jwt.IsRefreshToken(claims) {
		return "", "", ErrInvalidRefreshToken
	}

	rv, err := u.reviewers.GetByID(ctx, claims.ReviewerID)
	if err != nil {
		if errors.Is(err, reviewer.ErrNotFound) {
			return "", "", ErrInvalidRefreshToken
		}
		return "", "", ErrInternal
	}

	access, err := u.jwt.GenerateAccessToken(rv.ID, rv.Email)
	if err != nil {
		return "", "", ErrInternal
	}
	newRefresh, err := u.jwt.GenerateRefreshToken(rv.ID)
	if err != nil {
		return "", "", ErrInternal
	}

	return access, newRefresh, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
