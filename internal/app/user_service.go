package app

import (
	"context"

	"hrsuite/internal/common"
	"hrsuite/internal/domain/person"
	"hrsuite/internal/domain/user"
	"hrsuite/internal/security"
)

type UserService struct {
	users  user.Repository
	hasher *security.PasswordHasher
}

func NewUserService(users user.Repository, hasher *security.PasswordHasher) *UserService {
	return &UserService{users: users, hasher: hasher}
}

type UserInput struct {
	Person     person.Person
	Login      string
	Password   string
	Role       string
	JobTitle   string
	Department string
	BaseSalary float64
}

func (s *UserService) Create(ctx context.Context, input UserInput) (*user.User, error) {
	role, err := user.ParseRole(input.Role)
	if err != nil {
		return nil, err
	}
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}
	account := user.User{
		Person:       input.Person,
		Login:        input.Login,
		PasswordHash: hash,
		Role:         role,
		JobTitle:     input.JobTitle,
		Department:   input.Department,
		BaseSalary:   input.BaseSalary,
	}
	if err := account.Validate(); err != nil {
		return nil, err
	}
	return s.users.Add(ctx, account)
}

// Update replaces the stored account atomically. An empty password keeps the
// current hash; a non-empty one is re-hashed.
func (s *UserService) Update(ctx context.Context, taxID string, input UserInput) (*user.User, error) {
	current, err := s.users.GetByTaxID(ctx, taxID)
	if err != nil {
		return nil, err
	}
	role, err := user.ParseRole(input.Role)
	if err != nil {
		return nil, err
	}
	account := user.User{
		Person:       input.Person,
		Login:        input.Login,
		PasswordHash: current.PasswordHash,
		Role:         role,
		JobTitle:     input.JobTitle,
		Department:   input.Department,
		BaseSalary:   input.BaseSalary,
	}
	if input.Password != "" {
		hash, err := s.hasher.Hash(input.Password)
		if err != nil {
			return nil, err
		}
		account.PasswordHash = hash
	}
	if err := account.Validate(); err != nil {
		return nil, err
	}
	if account.TaxID != current.TaxID {
		return nil, common.NewValidationError("invalid user", map[string]string{"tax_id": "tax_id cannot be changed"})
	}
	return s.users.Upsert(ctx, account)
}

// Delete removes an account. Only an administrator may delete another
// administrator.
func (s *UserService) Delete(ctx context.Context, actorRole user.Role, taxID string) error {
	target, err := s.users.GetByTaxID(ctx, taxID)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			// Removal of an absent key is a no-op.
			return nil
		}
		return err
	}
	if target.Role == user.RoleAdmin && actorRole != user.RoleAdmin {
		return common.NewError(common.CodeForbidden, "only an administrator can delete an administrator", nil)
	}
	return s.users.Remove(ctx, taxID)
}

func (s *UserService) Get(ctx context.Context, taxID string) (*user.User, error) {
	return s.users.GetByTaxID(ctx, taxID)
}

func (s *UserService) FindByLogin(ctx context.Context, login string) (*user.User, error) {
	return s.users.FindByLogin(ctx, login)
}

func (s *UserService) ListByRole(ctx context.Context, roleValue string) ([]user.User, error) {
	role, err := user.ParseRole(roleValue)
	if err != nil {
		return nil, err
	}
	return s.users.ListByRole(ctx, role)
}

func (s *UserService) List(ctx context.Context) ([]user.User, error) {
	return s.users.List(ctx)
}
