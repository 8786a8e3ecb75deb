package user

import (
	"strings"

	"hrsuite/internal/common"
	"hrsuite/internal/domain/person"
)

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleManager   Role = "manager"
	RoleRecruiter Role = "recruiter"
	RoleEmployee  Role = "employee"
)

func ParseRole(value string) (Role, error) {
	normalized := Role(strings.ToLower(strings.TrimSpace(value)))
	switch normalized {
	case RoleAdmin, RoleManager, RoleRecruiter, RoleEmployee:
		return normalized, nil
	default:
		return "", common.NewValidationError("invalid role", map[string]string{"role": "role must be admin, manager, recruiter, or employee"})
	}
}

// User is an account holder. The four roles share one struct; the role is the
// discriminator written as "type" at the serialization boundary.
type User struct {
	person.Person

	ID           int64  `json:"id"`
	Login        string `json:"login"`
	PasswordHash string `json:"password_hash"`
	Role         Role   `json:"role"`
	JobTitle     string `json:"job_title,omitempty"`
	Department   string `json:"department,omitempty"`
	BaseSalary   float64 `json:"base_salary,omitempty"`
}

// Validate checks the account fields on top of the base person validation.
// PasswordHash is checked for presence only; hashing belongs to the service.
func (u *User) Validate() error {
	if err := u.Person.Validate(); err != nil {
		return err
	}
	fields := map[string]string{}
	if strings.TrimSpace(u.Login) == "" {
		fields["login"] = "login is required"
	}
	if u.PasswordHash == "" {
		fields["password"] = "password is required"
	}
	if _, err := ParseRole(string(u.Role)); err != nil {
		fields["role"] = "role must be admin, manager, recruiter, or employee"
	}
	if len(fields) > 0 {
		return common.NewValidationError("invalid user", fields)
	}
	u.Login = strings.ToLower(strings.TrimSpace(u.Login))
	return nil
}
