package hiring

import (
	"time"

	"hrsuite/internal/common"
	"hrsuite/internal/domain/vacancy"
)

type Status string

const (
	StatusPendingAuthorization Status = "pending_authorization"
	StatusAuthorized           Status = "authorized"
	StatusRejected             Status = "rejected"
	StatusFinalized            Status = "finalized"
)

// Hiring chains a recruiter's hire request to a manager's decision. Once the
// record leaves StatusPendingAuthorization it accepts a decision no more;
// StatusAuthorized may still move to StatusFinalized.
type Hiring struct {
	ID           common.UUID    `json:"id"`
	CandidateID  string         `json:"candidate_id"`
	VacancyID    common.UUID    `json:"vacancy_id"`
	Regime       vacancy.Regime `json:"regime"`
	Status       Status         `json:"status"`
	RequestedAt  time.Time      `json:"requested_at"`
	AuthorizedAt *time.Time     `json:"authorized_at,omitempty"`
	RecruiterID  string         `json:"recruiter_id"`
	ManagerID    *string        `json:"manager_id,omitempty"`
	Reason       string         `json:"reason,omitempty"`
}

// Live reports whether the record still occupies the (candidate, vacancy)
// pair: anything except a rejection blocks a new request for the same pair.
func (h *Hiring) Live() bool {
	return h.Status != StatusRejected
}

// Decide moves a pending record to the given terminal decision and stamps the
// deciding manager. It is the single entry point for the one-shot transition.
func (h *Hiring) Decide(managerID string, status Status, reason string, at time.Time) error {
	if h.Status != StatusPendingAuthorization {
		return common.NewError(common.CodeInvalidTransition, "hiring already decided", nil)
	}
	if status != StatusAuthorized && status != StatusRejected {
		return common.NewError(common.CodeInvalidTransition, "decision must authorize or reject", nil)
	}
	h.Status = status
	h.ManagerID = &managerID
	h.AuthorizedAt = &at
	h.Reason = reason
	return nil
}

// Finalize converts an authorized record into a completed hiring.
func (h *Hiring) Finalize() error {
	if h.Status != StatusAuthorized {
		return common.NewError(common.CodeInvalidTransition, "only an authorized hiring can be finalized", nil)
	}
	h.Status = StatusFinalized
	return nil
}
