package jsonfile

import (
	"context"

	"hrsuite/internal/common"
	"hrsuite/internal/domain/hiring"
	"hrsuite/internal/store"
)

type HiringRepository struct {
	store *store.Store
}

func NewHiringRepository(s *store.Store) *HiringRepository {
	return &HiringRepository{store: s}
}

func (r *HiringRepository) Add(ctx context.Context, h hiring.Hiring) (*hiring.Hiring, error) {
	if h.ID == "" {
		h.ID = common.NewUUID()
	}
	err := r.store.Mutate(func(snap *store.Snapshot) error {
		for i := range snap.Hirings {
			if snap.Hirings[i].ID == h.ID {
				return common.NewError(common.CodeConflict, "hiring already exists", nil)
			}
		}
		snap.Hirings = append(snap.Hirings, h)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *HiringRepository) Upsert(ctx context.Context, h hiring.Hiring) (*hiring.Hiring, error) {
	err := r.store.Mutate(func(snap *store.Snapshot) error {
		for i := range snap.Hirings {
			if snap.Hirings[i].ID == h.ID {
				snap.Hirings[i] = h
				return nil
			}
		}
		snap.Hirings = append(snap.Hirings, h)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *HiringRepository) GetByID(ctx context.Context, id common.UUID) (*hiring.Hiring, error) {
	var found *hiring.Hiring
	r.store.View(func(snap *store.Snapshot) {
		for i := range snap.Hirings {
			if snap.Hirings[i].ID == id {
				clone := snap.Hirings[i]
				found = &clone
				return
			}
		}
	})
	if found == nil {
		return nil, common.NewError(common.CodeNotFound, "hiring not found", nil)
	}
	return found, nil
}

func (r *HiringRepository) ListByStatus(ctx context.Context, status hiring.Status) ([]hiring.Hiring, error) {
	var items []hiring.Hiring
	r.store.View(func(snap *store.Snapshot) {
		for _, h := range snap.Hirings {
			if h.Status == status {
				items = append(items, h)
			}
		}
	})
	return items, nil
}

func (r *HiringRepository) ListByPair(ctx context.Context, candidateID string, vacancyID common.UUID) ([]hiring.Hiring, error) {
	var items []hiring.Hiring
	r.store.View(func(snap *store.Snapshot) {
		for _, h := range snap.Hirings {
			if h.CandidateID == candidateID && h.VacancyID == vacancyID {
				items = append(items, h)
			}
		}
	})
	return items, nil
}

func (r *HiringRepository) List(ctx context.Context) ([]hiring.Hiring, error) {
	var items []hiring.Hiring
	r.store.View(func(snap *store.Snapshot) {
		items = append(items, snap.Hirings...)
	})
	return items, nil
}
