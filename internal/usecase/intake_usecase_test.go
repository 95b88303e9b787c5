package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"career-map/internal/domain/submission"
	"career-map/internal/form"

	"github.com/google/uuid"
)

type skillCall struct {
	submissionID uuid.UUID
	name         string
}

type mockSubmissionRepo struct {
	createErr   error
	createdID   uuid.UUID
	createCalls int
	skillCalls  []skillCall
	failSkillAt int // 1-based index of the AddSkill call that fails; 0 = never
}

func (m *mockSubmissionRepo) CreateSubmission(_ context.Context, sub submission.Submission) (submission.Submission, error) {
	m.createCalls++
	if m.createErr != nil {
		return submission.Submission{}, m.createErr
	}
	sub.ID = m.createdID
	sub.CreatedAt = time.Now().UTC()
	return sub, nil
}

func (m *mockSubmissionRepo) AddSkill(_ context.Context, submissionID uuid.UUID, name string) (submission.Skill, error) {
	m.skillCalls = append(m.skillCalls, skillCall{submissionID: submissionID, name: name})
	if m.failSkillAt > 0 && len(m.skillCalls) == m.failSkillAt {
		return submission.Skill{}, errors.New("connection reset")
	}
	return submission.Skill{ID: uuid.New(), SubmissionID: submissionID, Name: name}, nil
}

func (m *mockSubmissionRepo) FindByID(context.Context, uuid.UUID) (submission.Submission, error) {
	return submission.Submission{}, submission.ErrNotFound
}
func (m *mockSubmissionRepo) List(context.Context, int, int) ([]submission.Submission, error) {
	return nil, nil
}
func (m *mockSubmissionRepo) Count(context.Context) (int, error) { return 0, nil }

func intPtr(v int) *int { return &v }

func validForm() form.Intake {
	return form.Intake{
		Username:          "Dewi Anggraini",
		Age:               intPtr(30),
		YearsOfExperience: intPtr(5),
		Skills:            []form.SkillField{{Name: "Go"}, {Name: "Redis"}, {Name: "Docker"}},
	}
}

func newIntake(t *testing.T, repo *mockSubmissionRepo, notify func(submission.Submission)) *Intake {
	t.Helper()
	schema, err := form.NewSchema()
	if err != nil {
		t.Fatalf("NewSchema: %v", err)
	}
	return NewIntakeUsecase(schema, repo, nil, notify)
}

func TestIntake_Submit_Success(t *testing.T) {
	repo := &mockSubmissionRepo{createdID: uuid.New()}
	var notified *submission.Submission
	uc := newIntake(t, repo, func(s submission.Submission) { notified = &s })

	created, fieldErrs, err := uc.Submit(context.Background(), validForm(), form.LocaleEN)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if fieldErrs != nil {
		t.Fatalf("unexpected field errors: %+v", fieldErrs)
	}
	if created.ID != repo.createdID {
		t.Fatalf("unexpected submission id")
	}
	if repo.createCalls != 1 {
		t.Fatalf("expected 1 create call, got %d", repo.createCalls)
	}

	// The child inserts follow the parent insert and carry its id.
	if len(repo.skillCalls) != 3 {
		t.Fatalf("expected 3 skill inserts, got %d", len(repo.skillCalls))
	}
	for i, call := range repo.skillCalls {
		if call.submissionID != repo.createdID {
			t.Fatalf("skill %d references wrong submission", i)
		}
	}
	if len(created.Skills) != 3 || created.Skills[0].Name != "Go" {
		t.Fatalf("unexpected skills on result: %+v", created.Skills)
	}

	if notified == nil || notified.ID != repo.createdID {
		t.Fatalf("expected notification for created submission")
	}
}

func TestIntake_Submit_ValidationRejected(t *testing.T) {
	repo := &mockSubmissionRepo{createdID: uuid.New()}
	uc := newIntake(t, repo, nil)

	f := validForm()
	f.Age = intPtr(17)

	_, fieldErrs, err := uc.Submit(context.Background(), f, form.LocaleEN)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if len(fieldErrs) == 0 {
		t.Fatalf("expected field errors")
	}
	if repo.createCalls != 0 || len(repo.skillCalls) != 0 {
		t.Fatalf("repository must not be touched on validation failure")
	}
}

func TestIntake_Submit_PartialFailureLeavesOrphan(t *testing.T) {
	repo := &mockSubmissionRepo{createdID: uuid.New(), failSkillAt: 2}
	notified := false
	uc := newIntake(t, repo, func(submission.Submission) { notified = true })

	_, fieldErrs, err := uc.Submit(context.Background(), validForm(), form.LocaleEN)
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
	if fieldErrs != nil {
		t.Fatalf("unexpected field errors: %+v", fieldErrs)
	}

	// The parent insert already happened and is not rolled back.
	if repo.createCalls != 1 {
		t.Fatalf("expected parent insert to have happened")
	}
	if len(repo.skillCalls) != 2 {
		t.Fatalf("expected the failing insert to stop the sequence, got %d calls", len(repo.skillCalls))
	}
	if notified {
		t.Fatalf("partial submission must not be broadcast")
	}
}

func TestIntake_Submit_CreateFails(t *testing.T) {
	repo := &mockSubmissionRepo{createErr: errors.New("db down")}
	uc := newIntake(t, repo, nil)

	_, _, err := uc.Submit(context.Background(), validForm(), form.LocaleEN)
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
	if len(repo.skillCalls) != 0 {
		t.Fatalf("no skill insert may run without a parent id")
	}
}
