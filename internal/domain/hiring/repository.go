package hiring

import (
	"context"

	"hrsuite/internal/common"
)

type Repository interface {
	Add(ctx context.Context, h Hiring) (*Hiring, error)
	Upsert(ctx context.Context, h Hiring) (*Hiring, error)
	GetByID(ctx context.Context, id common.UUID) (*Hiring, error)
	ListByStatus(ctx context.Context, status Status) ([]Hiring, error)
	ListByPair(ctx context.Context, candidateID string, vacancyID common.UUID) ([]Hiring, error)
	List(ctx context.Context) ([]Hiring, error)
}
