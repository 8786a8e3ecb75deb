package jsonfile

import (
	"context"

	"hrsuite/internal/common"
	"hrsuite/internal/domain/application"
	"hrsuite/internal/store"
)

type ApplicationRepository struct {
	store *store.Store
}

func NewApplicationRepository(s *store.Store) *ApplicationRepository {
	return &ApplicationRepository{store: s}
}

func (r *ApplicationRepository) Add(ctx context.Context, a application.Application) (*application.Application, error) {
	err := r.store.Mutate(func(snap *store.Snapshot) error {
		for i := range snap.Applications {
			if samePair(&snap.Applications[i], a.CandidateID, a.VacancyID) {
				return common.NewError(common.CodeConflict, "candidate already applied to this vacancy", nil)
			}
		}
		snap.Applications = append(snap.Applications, a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, candidateID string, vacancyID common.UUID, status application.Status) (*application.Application, error) {
	var updated application.Application
	err := r.store.Mutate(func(snap *store.Snapshot) error {
		for i := range snap.Applications {
			if samePair(&snap.Applications[i], candidateID, vacancyID) {
				snap.Applications[i].Status = status
				updated = snap.Applications[i]
				return nil
			}
		}
		return common.NewError(common.CodeNotFound, "application not found", nil)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *ApplicationRepository) Remove(ctx context.Context, candidateID string, vacancyID common.UUID) error {
	return r.store.Mutate(func(snap *store.Snapshot) error {
		for i := range snap.Applications {
			if samePair(&snap.Applications[i], candidateID, vacancyID) {
				snap.Applications = append(snap.Applications[:i], snap.Applications[i+1:]...)
				return nil
			}
		}
		return nil
	})
}

func (r *ApplicationRepository) Get(ctx context.Context, candidateID string, vacancyID common.UUID) (*application.Application, error) {
	var found *application.Application
	r.store.View(func(snap *store.Snapshot) {
		for i := range snap.Applications {
			if samePair(&snap.Applications[i], candidateID, vacancyID) {
				clone := snap.Applications[i]
				found = &clone
				return
			}
		}
	})
	if found == nil {
		return nil, common.NewError(common.CodeNotFound, "application not found", nil)
	}
	return found, nil
}

func (r *ApplicationRepository) ListByCandidate(ctx context.Context, candidateID string) ([]application.Application, error) {
	var items []application.Application
	r.store.View(func(snap *store.Snapshot) {
		for _, a := range snap.Applications {
			if a.CandidateID == candidateID {
				items = append(items, a)
			}
		}
	})
	return items, nil
}

func (r *ApplicationRepository) ListByVacancy(ctx context.Context, vacancyID common.UUID) ([]application.Application, error) {
	var items []application.Application
	r.store.View(func(snap *store.Snapshot) {
		for _, a := range snap.Applications {
			if a.VacancyID == vacancyID {
				items = append(items, a)
			}
		}
	})
	return items, nil
}

func samePair(a *application.Application, candidateID string, vacancyID common.UUID) bool {
	return a.CandidateID == candidateID && a.VacancyID == vacancyID
}
