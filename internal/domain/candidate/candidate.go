package candidate

import (
	"time"

	"hrsuite/internal/domain/person"
)

// Candidate composes Person rather than extending it so the record survives
// plain JSON serialization. Person.TaxID is the primary key.
type Candidate struct {
	person.Person

	Education     string    `json:"education"`
	Experience    string    `json:"experience"`
	DesiredSalary float64   `json:"desired_salary"`
	Availability  string    `json:"availability"`
	Documents     []string  `json:"documents,omitempty"`
	RegisteredAt  time.Time `json:"registered_at"`
}
