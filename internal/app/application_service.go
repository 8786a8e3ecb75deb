package app

import (
	"context"
	"time"

	"hrsuite/internal/common"
	"hrsuite/internal/domain/application"
	"hrsuite/internal/domain/candidate"
	"hrsuite/internal/domain/vacancy"
)

type ApplicationService struct {
	repo       application.Repository
	candidates candidate.Repository
	vacancies  vacancy.Repository
}

func NewApplicationService(repo application.Repository, candidates candidate.Repository, vacancies vacancy.Repository) *ApplicationService {
	return &ApplicationService{repo: repo, candidates: candidates, vacancies: vacancies}
}

func (s *ApplicationService) Apply(ctx context.Context, candidateID string, vacancyID common.UUID) (*application.Application, error) {
	if _, err := s.candidates.GetByTaxID(ctx, candidateID); err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil, common.NewValidationError("invalid application", map[string]string{"candidate_id": "candidate does not exist"})
		}
		return nil, err
	}
	vac, err := s.vacancies.GetByID(ctx, vacancyID)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil, common.NewValidationError("invalid application", map[string]string{"vacancy_id": "vacancy does not exist"})
		}
		return nil, err
	}
	if vac.Status == vacancy.StatusClosed {
		return nil, common.NewError(common.CodeValidation, "vacancy is closed", nil)
	}
	app := application.Application{
		CandidateID: candidateID,
		VacancyID:   vacancyID,
		Status:      application.StatusPending,
		AppliedAt:   time.Now().UTC(),
	}
	return s.repo.Add(ctx, app)
}

// SetStatus moves a candidacy to any known status. The transitions are not
// guarded on purpose; only deletion and the hiring request care about them.
func (s *ApplicationService) SetStatus(ctx context.Context, candidateID string, vacancyID common.UUID, statusValue string) (*application.Application, error) {
	status, err := application.ParseStatus(statusValue)
	if err != nil {
		return nil, err
	}
	return s.repo.UpdateStatus(ctx, candidateID, vacancyID, status)
}

// Delete withdraws a candidacy. Only a still-pending application can go.
func (s *ApplicationService) Delete(ctx context.Context, candidateID string, vacancyID common.UUID) error {
	app, err := s.repo.Get(ctx, candidateID, vacancyID)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil
		}
		return err
	}
	if app.Status != application.StatusPending {
		return common.NewError(common.CodeInvalidTransition, "only a pending application can be deleted", nil)
	}
	return s.repo.Remove(ctx, candidateID, vacancyID)
}

func (s *ApplicationService) Get(ctx context.Context, candidateID string, vacancyID common.UUID) (*application.Application, error) {
	return s.repo.Get(ctx, candidateID, vacancyID)
}

func (s *ApplicationService) ListByCandidate(ctx context.Context, candidateID string) ([]application.Application, error) {
	return s.repo.ListByCandidate(ctx, candidateID)
}

func (s *ApplicationService) ListByVacancy(ctx context.Context, vacancyID common.UUID) ([]application.Application, error) {
	return s.repo.ListByVacancy(ctx, vacancyID)
}
