package app

import (
	"context"
	"fmt"
	"time"

	"hrsuite/internal/common"
	"hrsuite/internal/domain/application"
	"hrsuite/internal/domain/hiring"
	"hrsuite/internal/domain/user"
	"hrsuite/internal/domain/vacancy"
)

// HiringService runs the authorization workflow: a recruiter requests, a
// manager decides, and an authorization closes the linked vacancy.
type HiringService struct {
	repo         hiring.Repository
	applications application.Repository
	vacancies    vacancy.Repository
	users        user.Repository
	logger       Logger
}

func NewHiringService(repo hiring.Repository, applications application.Repository, vacancies vacancy.Repository, users user.Repository, logger Logger) *HiringService {
	return &HiringService{
		repo:         repo,
		applications: applications,
		vacancies:    vacancies,
		users:        users,
		logger:       logger,
	}
}

// Request opens a hiring record for an approved candidacy. A pair that
// already has a live (pending, authorized, or finalized) record is refused so
// the same candidacy can never be authorized twice.
func (s *HiringService) Request(ctx context.Context, recruiterID, candidateID string, vacancyID common.UUID, regimeValue string) (*hiring.Hiring, error) {
	regime, err := vacancy.ParseRegime(regimeValue)
	if err != nil {
		return nil, err
	}
	recruiter, err := s.users.GetByTaxID(ctx, recruiterID)
	if err != nil {
		return nil, err
	}
	if recruiter.Role != user.RoleRecruiter {
		return nil, common.NewError(common.CodeForbidden, "only a recruiter can request a hiring", nil)
	}
	vac, err := s.vacancies.GetByID(ctx, vacancyID)
	if err != nil {
		return nil, err
	}
	if vac.Status == vacancy.StatusClosed {
		return nil, common.NewError(common.CodeValidation, "vacancy is closed", nil)
	}
	app, err := s.applications.Get(ctx, candidateID, vacancyID)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil, common.NewValidationError("invalid request", map[string]string{"application": "candidate has not applied to this vacancy"})
		}
		return nil, err
	}
	if app.Status != application.StatusApproved {
		return nil, common.NewError(common.CodeValidation, "application is not approved", nil)
	}
	existing, err := s.repo.ListByPair(ctx, candidateID, vacancyID)
	if err != nil {
		return nil, err
	}
	for _, h := range existing {
		if h.Live() {
			return nil, common.NewError(common.CodeConflict, "a hiring for this candidacy is already in progress", nil)
		}
	}
	record := hiring.Hiring{
		CandidateID: candidateID,
		VacancyID:   vacancyID,
		Regime:      regime,
		Status:      hiring.StatusPendingAuthorization,
		RequestedAt: time.Now().UTC(),
		RecruiterID: recruiterID,
	}
	created, err := s.repo.Add(ctx, record)
	if err != nil {
		return nil, err
	}
	s.logger.Info(fmt.Sprintf("hiring requested id=%s candidate=%s vacancy=%s", created.ID, candidateID, vacancyID))
	return created, nil
}

// Authorize is the one-shot manager approval. It stamps the decision and
// forces the linked vacancy to closed.
func (s *HiringService) Authorize(ctx context.Context, hiringID common.UUID, managerID string) (*hiring.Hiring, error) {
	record, err := s.decide(ctx, hiringID, managerID, hiring.StatusAuthorized, "")
	if err != nil {
		return nil, err
	}
	vac, err := s.vacancies.GetByID(ctx, record.VacancyID)
	if err != nil {
		return nil, err
	}
	if vac.Status != vacancy.StatusClosed {
		vac.Status = vacancy.StatusClosed
		if _, err := s.vacancies.Upsert(ctx, *vac); err != nil {
			return nil, err
		}
	}
	s.logger.Info(fmt.Sprintf("hiring authorized id=%s manager=%s", record.ID, managerID))
	return record, nil
}

// Reject records the refusal and its reason. The vacancy is untouched.
func (s *HiringService) Reject(ctx context.Context, hiringID common.UUID, managerID, reason string) (*hiring.Hiring, error) {
	record, err := s.decide(ctx, hiringID, managerID, hiring.StatusRejected, reason)
	if err != nil {
		return nil, err
	}
	s.logger.Info(fmt.Sprintf("hiring rejected id=%s manager=%s", record.ID, managerID))
	return record, nil
}

func (s *HiringService) decide(ctx context.Context, hiringID common.UUID, managerID string, status hiring.Status, reason string) (*hiring.Hiring, error) {
	manager, err := s.users.GetByTaxID(ctx, managerID)
	if err != nil {
		return nil, err
	}
	if manager.Role != user.RoleManager && manager.Role != user.RoleAdmin {
		return nil, common.NewError(common.CodeForbidden, "only a manager can decide a hiring", nil)
	}
	record, err := s.repo.GetByID(ctx, hiringID)
	if err != nil {
		return nil, err
	}
	if err := record.Decide(managerID, status, reason, time.Now().UTC()); err != nil {
		return nil, err
	}
	return s.repo.Upsert(ctx, *record)
}

// Finalize completes an authorized hiring.
func (s *HiringService) Finalize(ctx context.Context, hiringID common.UUID) (*hiring.Hiring, error) {
	record, err := s.repo.GetByID(ctx, hiringID)
	if err != nil {
		return nil, err
	}
	if err := record.Finalize(); err != nil {
		return nil, err
	}
	return s.repo.Upsert(ctx, *record)
}

func (s *HiringService) Get(ctx context.Context, id common.UUID) (*hiring.Hiring, error) {
	return s.repo.GetByID(ctx, id)
}

// ListPending returns the queue a manager reviews.
func (s *HiringService) ListPending(ctx context.Context) ([]hiring.Hiring, error) {
	return s.repo.ListByStatus(ctx, hiring.StatusPendingAuthorization)
}

func (s *HiringService) List(ctx context.Context) ([]hiring.Hiring, error) {
	return s.repo.List(ctx)
}
