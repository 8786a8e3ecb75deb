package candidate

import "context"

type Repository interface {
	Add(ctx context.Context, c Candidate) (*Candidate, error)
	Upsert(ctx context.Context, c Candidate) (*Candidate, error)
	Remove(ctx context.Context, taxID string) error
	GetByTaxID(ctx context.Context, taxID string) (*Candidate, error)
	List(ctx context.Context) ([]Candidate, error)
}
