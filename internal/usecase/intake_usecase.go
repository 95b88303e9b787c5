package usecase

import (
	"context"
	"errors"

	"career-map/internal/domain/submission"
	"career-map/internal/form"
	"career-map/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrInternal     = errors.New("internal error")
	ErrInvalidInput = errors.New("invalid input")
)

type IntakeUsecase interface {
	// Submit validates the intake form and, on success, performs the
	// two-step write: the submission insert, then one insert per skill
	// carrying the generated submission id. Field errors are returned
	// alongside ErrValidation.
	Submit(ctx context.Context, f form.Intake, locale string) (submission.Submission, []form.FieldError, error)
}

type Intake struct {
	schema *form.Schema
	repo   repository.SubmissionRepository
	logger *logrus.Logger

	// notify is called after a fully persisted submission; the websocket
	// feed hangs off this hook.
	notify func(submission.Submission)
}

func NewIntakeUsecase(schema *form.Schema, repo repository.SubmissionRepository, logger *logrus.Logger, notify func(submission.Submission)) *Intake {
	return &Intake{schema: schema, repo: repo, logger: logger, notify: notify}
}

func (u *Intake) Submit(ctx context.Context, f form.Intake, locale string) (submission.Submission, []form.FieldError, error) {
	if fieldErrs := u.schema.Validate(&f, locale); len(fieldErrs) > 0 {
		return submission.Submission{}, fieldErrs, ErrValidation
	}

	sub := submission.Submission{
		Username:          f.Username,
		Age:               *f.Age,
		YearsOfExperience: *f.YearsOfExperience,
		AnnualSalary:      f.AnnualSalary,
		Purpose:           f.Purpose,
	}

	created, err := u.repo.CreateSubmission(ctx, sub)
	if err != nil {
		if u.logger != nil {
			u.logger.WithError(err).Error("submission insert failed")
		}
		return submission.Submission{}, nil, ErrInternal
	}

	// The skill inserts are sequential and not wrapped in a transaction
	// with the parent insert. A failure here leaves the already
	// persisted submission without skills; that orphan is logged and the
	// whole request reported as failed.
	for _, sk := range f.Skills {
		saved, err := u.repo.AddSkill(ctx, created.ID, sk.Name)
		if err != nil {
			if u.logger != nil {
				u.logger.WithError(err).WithFields(logrus.Fields{
					"submission_id": created.ID,
					"skills_saved":  len(created.Skills),
					"skills_total":  len(f.Skills),
					"fk_violation":  isForeignKeyViolation(err),
				}).Error("skill insert failed, orphan submission left behind")
			}
			return submission.Submission{}, nil, ErrInternal
		}
		created.Skills = append(created.Skills, saved)
	}

	if u.notify != nil {
		u.notify(created)
	}

	return created, nil, nil
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}
