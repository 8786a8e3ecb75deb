package vacancy

import (
	"strings"
	"time"

	"hrsuite/internal/common"
)

type Status string

const (
	StatusOpen      Status = "open"
	StatusInProcess Status = "in_process"
	StatusClosed    Status = "closed"
)

type Regime string

const (
	RegimeCLT        Regime = "clt"
	RegimeInternship Regime = "internship"
	RegimeContractor Regime = "contractor"
)

func ParseRegime(value string) (Regime, error) {
	normalized := Regime(strings.ToLower(strings.TrimSpace(value)))
	switch normalized {
	case RegimeCLT, RegimeInternship, RegimeContractor:
		return normalized, nil
	default:
		return "", common.NewValidationError("invalid regime", map[string]string{"regime": "regime must be clt, internship, or contractor"})
	}
}

// Vacancy is a job requisition. RecruiterID is nil until a manager assigns a
// recruiter, which is also the only transition out of StatusOpen besides
// closing. A non-nil RecruiterID implies Status != StatusOpen.
type Vacancy struct {
	ID           common.UUID `json:"id"`
	Title        string      `json:"title"`
	Department   string      `json:"department"`
	BaseSalary   float64     `json:"base_salary"`
	Requirements string      `json:"requirements"`
	Status       Status      `json:"status"`
	Regime       Regime      `json:"regime"`
	OpenedAt     time.Time   `json:"opened_at"`
	ManagerID    string      `json:"manager_id"`
	RecruiterID  *string     `json:"recruiter_id,omitempty"`
}
