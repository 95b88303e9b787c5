package submission

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("submission not found")

// Purpose codes a submitter may pick. The form treats the field as
// optional; when present it must be one of these.
const (
	PurposeCareerChange = "career_change"
	PurposePromotion    = "promotion"
	PurposeUpskilling   = "upskilling"
	PurposeExploration  = "exploration"
)

var purposes = map[string]struct{}{
	PurposeCareerChange: {},
	PurposePromotion:    {},
	PurposeUpskilling:   {},
	PurposeExploration:  {},
}

func IsValidPurpose(code string) bool {
	_, ok := purposes[code]
	return ok
}

func PurposeCodes() []string {
	return []string{PurposeCareerChange, PurposePromotion, PurposeUpskilling, PurposeExploration}
}

type Submission struct {
	ID                uuid.UUID
	Username          string
	Age               int
	YearsOfExperience int
	AnnualSalary      *int64
	Purpose           *string
	CreatedAt         time.Time

	Skills []Skill
}

// Skill is a child record of a Submission. Its SubmissionID is assigned
// only after the parent insert returns.
type Skill struct {
	ID           uuid.UUID
	SubmissionID uuid.UUID
	Name         string
	CreatedAt    time.Time
}
