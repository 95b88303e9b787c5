package dto

import (
	"time"

	"career-map/internal/domain/submission"

	"github.com/google/uuid"
)

type SkillResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type SubmissionResponse struct {
	ID                uuid.UUID       `json:"id"`
	Username          string          `json:"username"`
	Age               int             `json:"age"`
	YearsOfExperience int             `json:"years_of_experience"`
	AnnualSalary      *int64          `json:"annual_salary,omitempty"`
	Purpose           *string         `json:"purpose,omitempty"`
	Skills            []SkillResponse `json:"skills"`
	CreatedAt         time.Time       `json:"created_at"`
}

type SubmissionListResponse struct {
	Items  []SubmissionResponse `json:"items"`
	Total  int                  `json:"total"`
	Limit  int                  `json:"limit"`
	Offset int                  `json:"offset"`
}

func NewSubmissionResponse(sub submission.Submission) SubmissionResponse {
	skills := make([]SkillResponse, 0, len(sub.Skills))
	for _, sk := range sub.Skills {
		skills = append(skills, SkillResponse{ID: sk.ID, Name: sk.Name})
	}
	return SubmissionResponse{
		ID:                sub.ID,
		Username:          sub.Username,
		Age:               sub.Age,
		YearsOfExperience: sub.YearsOfExperience,
		AnnualSalary:      sub.AnnualSalary,
		Purpose:           sub.Purpose,
		Skills:            skills,
		CreatedAt:         sub.CreatedAt,
	}
}
