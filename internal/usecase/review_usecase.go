package usecase

import (
	"context"
	"errors"

	"career-map/internal/domain/submission"
	"career-map/internal/repository"

	"github.com/google/uuid"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

var ErrSubmissionNotFound = errors.New("submission not found")

type ListParams struct {
	Limit  int
	Offset int
}

type ReviewUsecase interface {
	ListSubmissions(ctx context.Context, p ListParams) ([]submission.Submission, int, error)
	GetSubmission(ctx context.Context, id uuid.UUID) (submission.Submission, error)
}

type Review struct {
	repo repository.SubmissionRepository
}

func NewReviewUsecase(repo repository.SubmissionRepository) *Review {
	return &Review{repo: repo}
}

func (u *Review) ListSubmissions(ctx context.Context, p ListParams) ([]submission.Submission, int, error) {
	if p.Limit < 0 || p.Offset < 0 {
		return nil, 0, ErrInvalidInput
	}
	if p.Limit == 0 {
		p.Limit = defaultListLimit
	}
	if p.Limit > maxListLimit {
		p.Limit = maxListLimit
	}

	items, err := u.repo.List(ctx, p.Limit, p.Offset)
	if err != nil {
		return nil, 0, ErrInternal
	}

	total, err := u.repo.Count(ctx)
	if err != nil {
		return nil, 0, ErrInternal
	}
	return items, total, nil
}

func (u *Review) GetSubmission(ctx context.Context, id uuid.UUID) (submission.Submission, error) {
	if id == uuid.Nil {
		return submission.Submission{}, ErrInvalidInput
	}

	sub, err := u.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, submission.ErrNotFound) {
			return submission.Submission{}, ErrSubmissionNotFound
		}
		return submission.Submission{}, ErrInternal
	}
	return sub, nil
}
