package app

import (
	"context"
	"time"

	"hrsuite/internal/common"
	"hrsuite/internal/domain/candidate"
)

type CandidateService struct {
	candidates candidate.Repository
}

func NewCandidateService(candidates candidate.Repository) *CandidateService {
	return &CandidateService{candidates: candidates}
}

func (s *CandidateService) Register(ctx context.Context, c candidate.Candidate) (*candidate.Candidate, error) {
	if err := c.Person.Validate(); err != nil {
		return nil, err
	}
	if c.RegisteredAt.IsZero() {
		c.RegisteredAt = time.Now().UTC()
	}
	return s.candidates.Add(ctx, c)
}

func (s *CandidateService) Update(ctx context.Context, taxID string, c candidate.Candidate) (*candidate.Candidate, error) {
	current, err := s.candidates.GetByTaxID(ctx, taxID)
	if err != nil {
		return nil, err
	}
	if err := c.Person.Validate(); err != nil {
		return nil, err
	}
	if c.TaxID != current.TaxID {
		return nil, common.NewValidationError("invalid candidate", map[string]string{"tax_id": "tax_id cannot be changed"})
	}
	c.RegisteredAt = current.RegisteredAt
	return s.candidates.Upsert(ctx, c)
}

func (s *CandidateService) Remove(ctx context.Context, taxID string) error {
	return s.candidates.Remove(ctx, taxID)
}

func (s *CandidateService) Get(ctx context.Context, taxID string) (*candidate.Candidate, error) {
	return s.candidates.GetByTaxID(ctx, taxID)
}

func (s *CandidateService) List(ctx context.Context) ([]candidate.Candidate, error) {
	return s.candidates.List(ctx)
}
