package vacancy

import (
	"context"

	"hrsuite/internal/common"
)

type Repository interface {
	Add(ctx context.Context, v Vacancy) (*Vacancy, error)
	Upsert(ctx context.Context, v Vacancy) (*Vacancy, error)
	Remove(ctx context.Context, id common.UUID) error
	GetByID(ctx context.Context, id common.UUID) (*Vacancy, error)
	List(ctx context.Context) ([]Vacancy, error)
	ListByStatus(ctx context.Context, status Status) ([]Vacancy, error)
}
