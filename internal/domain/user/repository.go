package user

import "context"

type Repository interface {
	Add(ctx context.Context, account User) (*User, error)
	Upsert(ctx context.Context, account User) (*User, error)
	Remove(ctx context.Context, taxID string) error
	GetByTaxID(ctx context.Context, taxID string) (*User, error)
	FindByLogin(ctx context.Context, login string) (*User, error)
	ListByRole(ctx context.Context, role Role) ([]User, error)
	List(ctx context.Context) ([]User, error)
}
