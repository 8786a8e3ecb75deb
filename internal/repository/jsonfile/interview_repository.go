package jsonfile

import (
	"context"

	"hrsuite/internal/common"
	"hrsuite/internal/domain/interview"
	"hrsuite/internal/store"
)

type InterviewRepository struct {
	store *store.Store
}

func NewInterviewRepository(s *store.Store) *InterviewRepository {
	return &InterviewRepository{store: s}
}

func (r *InterviewRepository) Add(ctx context.Context, i interview.Interview) (*interview.Interview, error) {
	if i.ID == "" {
		i.ID = common.NewUUID()
	}
	err := r.store.Mutate(func(snap *store.Snapshot) error {
		for j := range snap.Interviews {
			if snap.Interviews[j].ID == i.ID {
				return common.NewError(common.CodeConflict, "interview already exists", nil)
			}
		}
		snap.Interviews = append(snap.Interviews, i)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *InterviewRepository) Upsert(ctx context.Context, i interview.Interview) (*interview.Interview, error) {
	err := r.store.Mutate(func(snap *store.Snapshot) error {
		for j := range snap.Interviews {
			if snap.Interviews[j].ID == i.ID {
				snap.Interviews[j] = i
				return nil
			}
		}
		snap.Interviews = append(snap.Interviews, i)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *InterviewRepository) Remove(ctx context.Context, id common.UUID) error {
	return r.store.Mutate(func(snap *store.Snapshot) error {
		for i := range snap.Interviews {
			if snap.Interviews[i].ID == id {
				snap.Interviews = append(snap.Interviews[:i], snap.Interviews[i+1:]...)
				return nil
			}
		}
		return nil
	})
}

func (r *InterviewRepository) GetByID(ctx context.Context, id common.UUID) (*interview.Interview, error) {
	var found *interview.Interview
	r.store.View(func(snap *store.Snapshot) {
		for i := range snap.Interviews {
			if snap.Interviews[i].ID == id {
				clone := snap.Interviews[i]
				found = &clone
				return
			}
		}
	})
	if found == nil {
		return nil, common.NewError(common.CodeNotFound, "interview not found", nil)
	}
	return found, nil
}

func (r *InterviewRepository) ListByVacancy(ctx context.Context, vacancyID common.UUID) ([]interview.Interview, error) {
	var items []interview.Interview
	r.store.View(func(snap *store.Snapshot) {
		for _, i := range snap.Interviews {
			if i.VacancyID == vacancyID {
				items = append(items, i)
			}
		}
	})
	return items, nil
}

func (r *InterviewRepository) ListByCandidate(ctx context.Context, candidateID string) ([]interview.Interview, error) {
	var items []interview.Interview
	r.store.View(func(snap *store.Snapshot) {
		for _, i := range snap.Interviews {
			if i.CandidateID == candidateID {
				items = append(items, i)
			}
		}
	})
	return items, nil
}
