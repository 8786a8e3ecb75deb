package security

import (
	"golang.org/x/crypto/bcrypt"

	"hrsuite/internal/common"
)

// PasswordHasher wraps bcrypt with a configurable cost factor.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

func (h *PasswordHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", common.NewValidationError("invalid password", map[string]string{"password": "password is required"})
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", common.NewError(common.CodeInternal, "failed to hash password", err)
	}
	return string(hashed), nil
}

func (h *PasswordHasher) Compare(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
