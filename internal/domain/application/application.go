package application

import (
	"strings"
	"time"

	"hrsuite/internal/common"
)

type Status string

const (
	StatusPending     Status = "pending"
	StatusUnderReview Status = "under_review"
	StatusApproved    Status = "approved"
	StatusRejected    Status = "rejected"
)

func ParseStatus(value string) (Status, error) {
	normalized := Status(strings.ToLower(strings.TrimSpace(value)))
	switch normalized {
	case StatusPending, StatusUnderReview, StatusApproved, StatusRejected:
		return normalized, nil
	default:
		return "", common.NewValidationError("invalid status", map[string]string{"status": "status must be pending, under_review, approved, or rejected"})
	}
}

// Application is a candidacy for one vacancy. It has no id of its own: the
// (CandidateID, VacancyID) pair is the identity and duplicates are rejected.
type Application struct {
	CandidateID string      `json:"candidate_id"`
	VacancyID   common.UUID `json:"vacancy_id"`
	Status      Status      `json:"status"`
	AppliedAt   time.Time   `json:"applied_at"`
}
