package repository

import (
	"context"
	"database/sql"
	"errors"

	"career-map/internal/database"
	"career-map/internal/domain/submission"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SubmissionRepository interface {
	// CreateSubmission inserts the parent record and returns it with the
	// store-generated id. Skills are NOT written here.
	CreateSubmission(ctx context.Context, sub submission.Submission) (submission.Submission, error)

	// AddSkill inserts one child record referencing an already persisted
	// submission.
	AddSkill(ctx context.Context, submissionID uuid.UUID, name string) (submission.Skill, error)

	FindByID(ctx context.Context, id uuid.UUID) (submission.Submission, error)
	List(ctx context.Context, limit, offset int) ([]submission.Submission, error)
	Count(ctx context.Context) (int, error)
}

type PostgresSubmissionRepository struct {
	db database.DB
}

func NewPostgresSubmissionRepository(db database.DB) *PostgresSubmissionRepository {
	return &PostgresSubmissionRepository{db: db}
}

func (r *PostgresSubmissionRepository) CreateSubmission(ctx context.Context, sub submission.Submission) (submission.Submission, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO submissions (username, age, years_of_experience, annual_salary, purpose)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		sub.Username, sub.Age, sub.YearsOfExperience, sub.AnnualSalary, sub.Purpose,
	)

	created := sub
	created.Skills = nil
	if err := row.Scan(&created.ID, &created.CreatedAt); err != nil {
		return submission.Submission{}, err
	}
	return created, nil
}

func (r *PostgresSubmissionRepository) AddSkill(ctx context.Context, submissionID uuid.UUID, name string) (submission.Skill, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO submission_skills (submission_id, name)
		 VALUES ($1, $2)
		 RETURNING id, created_at`,
		submissionID, name,
	)

	sk := submission.Skill{SubmissionID: submissionID, Name: name}
	if err := row.Scan(&sk.ID, &sk.CreatedAt); err != nil {
		return submission.Skill{}, err
	}
	return sk, nil
}

func (r *PostgresSubmissionRepository) FindByID(ctx context.Context, id uuid.UUID) (submission.Submission, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, username, age, years_of_experience, annual_salary, purpose, created_at
		 FROM submissions
		 WHERE id = $1`,
		id,
	)

	var sub submission.Submission
	if err := row.Scan(&sub.ID, &sub.Username, &sub.Age, &sub.YearsOfExperience, &sub.AnnualSalary, &sub.Purpose, &sub.CreatedAt); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return submission.Submission{}, submission.ErrNotFound
		}
		return submission.Submission{}, err
	}

	skills, err := r.findSkills(ctx, sub.ID)
	if err != nil {
		return submission.Submission{}, err
	}
	sub.Skills = skills
	return sub, nil
}

func (r *PostgresSubmissionRepository) List(ctx context.Context, limit, offset int) ([]submission.Submission, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, username, age, years_of_experience, annual_salary, purpose, created_at
		 FROM submissions
		 ORDER BY created_at DESC, id DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]submission.Submission, 0)
	for rows.Next() {
		var sub submission.Submission
		if err := rows.Scan(&sub.ID, &sub.Username, &sub.Age, &sub.YearsOfExperience, &sub.AnnualSalary, &sub.Purpose, &sub.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSubmissionRepository) Count(ctx context.Context) (int, error) {
	var n int
	row := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM submissions`)
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *PostgresSubmissionRepository) findSkills(ctx context.Context, submissionID uuid.UUID) ([]submission.Skill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, submission_id, name, created_at
		 FROM submission_skills
		 WHERE submission_id = $1
		 ORDER BY created_at ASC, id ASC`,
		submissionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]submission.Skill, 0)
	for rows.Next() {
		var sk submission.Skill
		if err := rows.Scan(&sk.ID, &sk.SubmissionID, &sk.Name, &sk.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, sk)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
