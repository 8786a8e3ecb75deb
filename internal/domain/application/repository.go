package application

import (
	"context"

	"hrsuite/internal/common"
)

type Repository interface {
	Add(ctx context.Context, a Application) (*Application, error)
	UpdateStatus(ctx context.Context, candidateID string, vacancyID common.UUID, status Status) (*Application, error)
	Remove(ctx context.Context, candidateID string, vacancyID common.UUID) error
	Get(ctx context.Context, candidateID string, vacancyID common.UUID) (*Application, error)
	ListByCandidate(ctx context.Context, candidateID string) ([]Application, error)
	ListByVacancy(ctx context.Context, vacancyID common.UUID) ([]Application, error)
}
