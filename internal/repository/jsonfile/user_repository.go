package jsonfile

import (
	"context"
	"strings"

	"hrsuite/internal/common"
	"hrsuite/internal/domain/user"
	"hrsuite/internal/store"
)

type UserRepository struct {
	store *store.Store
}

func NewUserRepository(s *store.Store) *UserRepository {
	return &UserRepository{store: s}
}

func (r *UserRepository) Add(ctx context.Context, account user.User) (*user.User, error) {
	err := r.store.Mutate(func(snap *store.Snapshot) error {
		if snap.UserByTaxID(account.TaxID) != nil {
			return common.NewError(common.CodeConflict, "user already exists", nil)
		}
		if taken := loginTaken(snap, account.Login, ""); taken {
			return common.NewError(common.CodeConflict, "login already in use", nil)
		}
		account.ID = snap.NextUserID()
		bucket := snap.Bucket(account.Role)
		*bucket = append(*bucket, account)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// Upsert replaces the account with the same tax id or inserts a new one. The
// numeric id survives a replace even when the role bucket changes.
func (r *UserRepository) Upsert(ctx context.Context, account user.User) (*user.User, error) {
	err := r.store.Mutate(func(snap *store.Snapshot) error {
		if taken := loginTaken(snap, account.Login, account.TaxID); taken {
			return common.NewError(common.CodeConflict, "login already in use", nil)
		}
		if existing := snap.UserByTaxID(account.TaxID); existing != nil {
			account.ID = existing.ID
			removeUser(snap, account.TaxID)
		} else {
			account.ID = snap.NextUserID()
		}
		bucket := snap.Bucket(account.Role)
		*bucket = append(*bucket, account)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// Remove deletes by tax id. Removing an absent account is a no-op.
func (r *UserRepository) Remove(ctx context.Context, taxID string) error {
	return r.store.Mutate(func(snap *store.Snapshot) error {
		removeUser(snap, taxID)
		return nil
	})
}

func (r *UserRepository) GetByTaxID(ctx context.Context, taxID string) (*user.User, error) {
	var found *user.User
	r.store.View(func(snap *store.Snapshot) {
		if u := snap.UserByTaxID(taxID); u != nil {
			clone := *u
			found = &clone
		}
	})
	if found == nil {
		return nil, common.NewError(common.CodeNotFound, "user not found", nil)
	}
	return found, nil
}

// FindByLogin resolves through the login index rather than scanning.
func (r *UserRepository) FindByLogin(ctx context.Context, login string) (*user.User, error) {
	taxID, ok := r.store.FindLogin(login)
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "user not found", nil)
	}
	return r.GetByTaxID(ctx, taxID)
}

func (r *UserRepository) ListByRole(ctx context.Context, role user.Role) ([]user.User, error) {
	var items []user.User
	r.store.View(func(snap *store.Snapshot) {
		items = append(items, *snap.Bucket(role)...)
	})
	return items, nil
}

func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	var items []user.User
	r.store.View(func(snap *store.Snapshot) {
		snap.Users(func(u *user.User) bool {
			items = append(items, *u)
			return true
		})
	})
	return items, nil
}

func loginTaken(snap *store.Snapshot, login, exceptTaxID string) bool {
	normalized := strings.ToLower(strings.TrimSpace(login))
	taken := false
	snap.Users(func(u *user.User) bool {
		if strings.ToLower(u.Login) == normalized && u.TaxID != exceptTaxID {
			taken = true
			return false
		}
		return true
	})
	return taken
}

func removeUser(snap *store.Snapshot, taxID string) {
	for _, role := range []user.Role{user.RoleAdmin, user.RoleManager, user.RoleRecruiter, user.RoleEmployee} {
		bucket := snap.Bucket(role)
		for i := range *bucket {
			if (*bucket)[i].TaxID == taxID {
				*bucket = append((*bucket)[:i], (*bucket)[i+1:]...)
				return
			}
		}
	}
}
