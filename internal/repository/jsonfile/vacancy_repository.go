package jsonfile

import (
	"context"

	"hrsuite/internal/common"
	"hrsuite/internal/domain/vacancy"
	"hrsuite/internal/store"
)

type VacancyRepository struct {
	store *store.Store
}

func NewVacancyRepository(s *store.Store) *VacancyRepository {
	return &VacancyRepository{store: s}
}

func (r *VacancyRepository) Add(ctx context.Context, v vacancy.Vacancy) (*vacancy.Vacancy, error) {
	if v.ID == "" {
		v.ID = common.NewUUID()
	}
	err := r.store.Mutate(func(snap *store.Snapshot) error {
		for i := range snap.Vacancies {
			if snap.Vacancies[i].ID == v.ID {
				return common.NewError(common.CodeConflict, "vacancy already exists", nil)
			}
		}
		snap.Vacancies = append(snap.Vacancies, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VacancyRepository) Upsert(ctx context.Context, v vacancy.Vacancy) (*vacancy.Vacancy, error) {
	err := r.store.Mutate(func(snap *store.Snapshot) error {
		for i := range snap.Vacancies {
			if snap.Vacancies[i].ID == v.ID {
				snap.Vacancies[i] = v
				return nil
			}
		}
		snap.Vacancies = append(snap.Vacancies, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VacancyRepository) Remove(ctx context.Context, id common.UUID) error {
	return r.store.Mutate(func(snap *store.Snapshot) error {
		for i := range snap.Vacancies {
			if snap.Vacancies[i].ID == id {
				snap.Vacancies = append(snap.Vacancies[:i], snap.Vacancies[i+1:]...)
				return nil
			}
		}
		return nil
	})
}

func (r *VacancyRepository) GetByID(ctx context.Context, id common.UUID) (*vacancy.Vacancy, error) {
	var found *vacancy.Vacancy
	r.store.View(func(snap *store.Snapshot) {
		for i := range snap.Vacancies {
			if snap.Vacancies[i].ID == id {
				clone := snap.Vacancies[i]
				found = &clone
				return
			}
		}
	})
	if found == nil {
		return nil, common.NewError(common.CodeNotFound, "vacancy not found", nil)
	}
	return found, nil
}

func (r *VacancyRepository) List(ctx context.Context) ([]vacancy.Vacancy, error) {
	var items []vacancy.Vacancy
	r.store.View(func(snap *store.Snapshot) {
		items = append(items, snap.Vacancies...)
	})
	return items, nil
}

func (r *VacancyRepository) ListByStatus(ctx context.Context, status vacancy.Status) ([]vacancy.Vacancy, error) {
	var items []vacancy.Vacancy
	r.store.View(func(snap *store.Snapshot) {
		for _, v := range snap.Vacancies {
			if v.Status == status {
				items = append(items, v)
			}
		}
	})
	return items, nil
}
