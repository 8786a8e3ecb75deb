package interview

import (
	"time"

	"hrsuite/internal/common"
)

// Interview is an evaluation slot for one candidacy. Score stays nil until
// the interview has been held.
type Interview struct {
	ID          common.UUID `json:"id"`
	CandidateID string      `json:"candidate_id"`
	VacancyID   common.UUID `json:"vacancy_id"`
	ScheduledAt time.Time   `json:"scheduled_at"`
	EvaluatorID string      `json:"evaluator_id"`
	Score       *float64    `json:"score,omitempty"`
	Assessment  string      `json:"assessment,omitempty"`
}

// Held reports whether the interview already has a recorded result.
func (i *Interview) Held() bool {
	return i.Score != nil
}
