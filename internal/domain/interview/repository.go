package interview

import (
	"context"

	"hrsuite/internal/common"
)

type Repository interface {
	Add(ctx context.Context, i Interview) (*Interview, error)
	Upsert(ctx context.Context, i Interview) (*Interview, error)
	Remove(ctx context.Context, id common.UUID) error
	GetByID(ctx context.Context, id common.UUID) (*Interview, error)
	ListByVacancy(ctx context.Context, vacancyID common.UUID) ([]Interview, error)
	ListByCandidate(ctx context.Context, candidateID string) ([]Interview, error)
}
