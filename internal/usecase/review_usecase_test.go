package usecase

import (
	"context"
	"errors"
	"testing"

	"career-map/internal/domain/submission"

	"github.com/google/uuid"
)

type listSubmissionRepo struct {
	mockSubmissionRepo
	items []submission.Submission
	byID  map[uuid.UUID]submission.Submission
}

func (m *listSubmissionRepo) List(context.Context, int, int) ([]submission.Submission, error) {
	return m.items, nil
}
func (m *listSubmissionRepo) Count(context.Context) (int, error) { return len(m.items), nil }
func (m *listSubmissionRepo) FindByID(_ context.Context, id uuid.UUID) (submission.Submission, error) {
	sub, ok := m.byID[id]
	if !ok {
		return submission.Submission{}, submission.ErrNotFound
	}
	return sub, nil
}

func TestReview_ListSubmissions_InvalidParams(t *testing.T) {
	uc := NewReviewUsecase(&listSubmissionRepo{})
	if _, _, err := uc.ListSubmissions(context.Background(), ListParams{Limit: -1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestReview_ListSubmissions_Success(t *testing.T) {
	repo := &listSubmissionRepo{items: []submission.Submission{
		{ID: uuid.New(), Username: "Dewi"},
		{ID: uuid.New(), Username: "Budi"},
	}}
	uc := NewReviewUsecase(repo)

	items, total, err := uc.ListSubmissions(context.Background(), ListParams{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 2 || total != 2 {
		t.Fatalf("unexpected result: %d items, total %d", len(items), total)
	}
}

func TestReview_GetSubmission_NotFound(t *testing.T) {
	uc := NewReviewUsecase(&listSubmissionRepo{byID: map[uuid.UUID]submission.Submission{}})
	if _, err := uc.GetSubmission(context.Background(), uuid.New()); !errors.Is(err, ErrSubmissionNotFound) {
		t.Fatalf("expected ErrSubmissionNotFound, got %v", err)
	}
}

func TestReview_GetSubmission_WithSkills(t *testing.T) {
	id := uuid.New()
	repo := &listSubmissionRepo{byID: map[uuid.UUID]submission.Submission{
		id: {ID: id, Username: "Dewi", Skills: []submission.Skill{
			{ID: uuid.New(), SubmissionID: id, Name: "Go"},
		}},
	}}
	uc := NewReviewUsecase(repo)

	sub, err := uc.GetSubmission(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(sub.Skills) != 1 || sub.Skills[0].SubmissionID != id {
		t.Fatalf("unexpected skills: %+v", sub.Skills)
	}
}
