package store

import (
	"encoding/json"
	"fmt"
	"strings"

	"hrsuite/internal/domain/application"
	"hrsuite/internal/domain/candidate"
	"hrsuite/internal/domain/hiring"
	"hrsuite/internal/domain/interview"
	"hrsuite/internal/domain/user"
	"hrsuite/internal/domain/vacancy"
)

// Snapshot is the whole in-memory state. It is serialized wholesale to the
// backing file; the login index is derived and never persisted.
type Snapshot struct {
	Administrators []user.User
	Managers       []user.User
	Recruiters     []user.User
	Employees      []user.User
	Candidates     []candidate.Candidate
	Vacancies      []vacancy.Vacancy
	Applications   []application.Application
	Interviews     []interview.Interview
	Hirings        []hiring.Hiring
}

// Bucket returns the collection holding accounts of the given role.
func (s *Snapshot) Bucket(role user.Role) *[]user.User {
	switch role {
	case user.RoleAdmin:
		return &s.Administrators
	case user.RoleManager:
		return &s.Managers
	case user.RoleRecruiter:
		return &s.Recruiters
	default:
		return &s.Employees
	}
}

// Users visits every account across the four role collections.
func (s *Snapshot) Users(visit func(*user.User) bool) {
	for _, bucket := range []*[]user.User{&s.Administrators, &s.Managers, &s.Recruiters, &s.Employees} {
		for i := range *bucket {
			if !visit(&(*bucket)[i]) {
				return
			}
		}
	}
}

// UserByTaxID scans all role collections for the given primary key.
func (s *Snapshot) UserByTaxID(taxID string) *user.User {
	var found *user.User
	s.Users(func(u *user.User) bool {
		if u.TaxID == taxID {
			found = u
			return false
		}
		return true
	})
	return found
}

// NextUserID derives the next numeric account id. The file format has no
// counter field, so the sequence is recovered from the data itself.
func (s *Snapshot) NextUserID() int64 {
	var max int64
	s.Users(func(u *user.User) bool {
		if u.ID > max {
			max = u.ID
		}
		return true
	})
	return max + 1
}

// Discriminator values written to the "type" field of serialized accounts.
const (
	typeAdministrator = "ADMINISTRATOR"
	typeManager       = "MANAGER"
	typeRecruiter     = "RECRUITER"
	typeEmployee      = "EMPLOYEE"
)

func discriminatorFor(role user.Role) string {
	switch role {
	case user.RoleAdmin:
		return typeAdministrator
	case user.RoleManager:
		return typeManager
	case user.RoleRecruiter:
		return typeRecruiter
	default:
		return typeEmployee
	}
}

func roleFromDiscriminator(tag string) (user.Role, error) {
	switch strings.ToUpper(strings.TrimSpace(tag)) {
	case typeAdministrator:
		return user.RoleAdmin, nil
	case typeManager:
		return user.RoleManager, nil
	case typeRecruiter:
		return user.RoleRecruiter, nil
	case typeEmployee:
		return user.RoleEmployee, nil
	default:
		return "", fmt.Errorf("unknown user type %q", tag)
	}
}

// userEnvelope is the wire form of an account: the flat user fields plus the
// "type" discriminator that selects the concrete role on load.
type userEnvelope struct {
	Type string `json:"type"`
	user.User
}

type fileSnapshot struct {
	Administrators []userEnvelope            `json:"administrators"`
	Managers       []userEnvelope            `json:"managers"`
	Recruiters     []userEnvelope            `json:"recruiters"`
	Employees      []userEnvelope            `json:"employees"`
	Candidates     []candidate.Candidate     `json:"candidates"`
	Vacancies      []vacancy.Vacancy         `json:"vacancies"`
	Applications   []application.Application `json:"applications"`
	Interviews     []interview.Interview     `json:"interviews"`
	Hirings        []hiring.Hiring           `json:"hirings"`
}

func encodeUsers(accounts []user.User) []userEnvelope {
	out := make([]userEnvelope, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, userEnvelope{Type: discriminatorFor(account.Role), User: account})
	}
	return out
}

func decodeUsers(envelopes []userEnvelope) ([]user.User, error) {
	out := make([]user.User, 0, len(envelopes))
	for _, envelope := range envelopes {
		role, err := roleFromDiscriminator(envelope.Type)
		if err != nil {
			return nil, err
		}
		account := envelope.User
		account.Role = role
		out = append(out, account)
	}
	return out, nil
}

func (s *Snapshot) MarshalJSON() ([]byte, error) {
	return json.Marshal(fileSnapshot{
		Administrators: encodeUsers(s.Administrators),
		Managers:       encodeUsers(s.Managers),
		Recruiters:     encodeUsers(s.Recruiters),
		Employees:      encodeUsers(s.Employees),
		Candidates:     s.Candidates,
		Vacancies:      s.Vacancies,
		Applications:   s.Applications,
		Interviews:     s.Interviews,
		Hirings:        s.Hirings,
	})
}

func (s *Snapshot) UnmarshalJSON(data []byte) error {
	var file fileSnapshot
	if err := json.Unmarshal(data, &file); err != nil {
		return err
	}
	admins, err := decodeUsers(file.Administrators)
	if err != nil {
		return err
	}
	managers, err := decodeUsers(file.Managers)
	if err != nil {
		return err
	}
	recruiters, err := decodeUsers(file.Recruiters)
	if err != nil {
		return err
	}
	employees, err := decodeUsers(file.Employees)
	if err != nil {
		return err
	}
	s.Administrators = admins
	s.Managers = managers
	s.Recruiters = recruiters
	s.Employees = employees
	s.Candidates = file.Candidates
	s.Vacancies = file.Vacancies
	s.Applications = file.Applications
	s.Interviews = file.Interviews
	s.Hirings = file.Hirings
	return nil
}
