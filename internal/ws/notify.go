package ws

import (
	"encoding/json"
	"time"

	"career-map/internal/domain/submission"

	"github.com/google/uuid"
)

type SubmissionReceivedEvent struct {
	Type       string    `json:"type"`
	ID         uuid.UUID `json:"id"`
	Username   string    `json:"username"`
	SkillCount int       `json:"skill_count"`
	Timestamp  string    `json:"timestamp"`
}

// SubmissionNotifier builds the intake usecase's notify hook: each fully
// persisted submission is broadcast to connected dashboards.
func SubmissionNotifier(h *Hub) func(submission.Submission) {
	return func(sub submission.Submission) {
		if h == nil {
			return
		}

		evt := SubmissionReceivedEvent{
			Type:       "submission_received",
			ID:         sub.ID,
			Username:   sub.Username,
			SkillCount: len(sub.Skills),
			Timestamp:  time.Now().UTC().Format(time.RFC3339),
		}
		b, err := json.Marshal(evt)
		if err != nil {
			return
		}

		h.Broadcast(b)
	}
}
