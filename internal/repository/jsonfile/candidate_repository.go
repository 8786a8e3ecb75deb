package jsonfile

import (
	"context"

	"hrsuite/internal/common"
	"hrsuite/internal/domain/candidate"
	"hrsuite/internal/store"
)

type CandidateRepository struct {
	store *store.Store
}

func NewCandidateRepository(s *store.Store) *CandidateRepository {
	return &CandidateRepository{store: s}
}

func (r *CandidateRepository) Add(ctx context.Context, c candidate.Candidate) (*candidate.Candidate, error) {
	err := r.store.Mutate(func(snap *store.Snapshot) error {
		for i := range snap.Candidates {
			if snap.Candidates[i].TaxID == c.TaxID {
				return common.NewError(common.CodeConflict, "candidate already exists", nil)
			}
		}
		snap.Candidates = append(snap.Candidates, c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CandidateRepository) Upsert(ctx context.Context, c candidate.Candidate) (*candidate.Candidate, error) {
	err := r.store.Mutate(func(snap *store.Snapshot) error {
		for i := range snap.Candidates {
			if snap.Candidates[i].TaxID == c.TaxID {
				snap.Candidates[i] = c
				return nil
			}
		}
		snap.Candidates = append(snap.Candidates, c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CandidateRepository) Remove(ctx context.Context, taxID string) error {
	return r.store.Mutate(func(snap *store.Snapshot) error {
		for i := range snap.Candidates {
			if snap.Candidates[i].TaxID == taxID {
				snap.Candidates = append(snap.Candidates[:i], snap.Candidates[i+1:]...)
				return nil
			}
		}
		return nil
	})
}

func (r *CandidateRepository) GetByTaxID(ctx context.Context, taxID string) (*candidate.Candidate, error) {
	var found *candidate.Candidate
	r.store.View(func(snap *store.Snapshot) {
		for i := range snap.Candidates {
			if snap.Candidates[i].TaxID == taxID {
				clone := snap.Candidates[i]
				found = &clone
				return
			}
		}
	})
	if found == nil {
		return nil, common.NewError(common.CodeNotFound, "candidate not found", nil)
	}
	return found, nil
}

func (r *CandidateRepository) List(ctx context.Context) ([]candidate.Candidate, error) {
	var items []candidate.Candidate
	r.store.View(func(snap *store.Snapshot) {
		items = append(items, snap.Candidates...)
	})
	return items, nil
}
