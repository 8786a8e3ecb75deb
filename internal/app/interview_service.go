package app

import (
	"context"

	"hrsuite/internal/common"
	"hrsuite/internal/domain/application"
	"hrsuite/internal/domain/interview"
	"hrsuite/internal/domain/user"
)

// approvalThreshold is the minimum score that resolves a reviewed candidacy
// to approved instead of rejected.
const approvalThreshold = 7.0

type InterviewService struct {
	repo         interview.Repository
	applications application.Repository
	users        user.Repository
}

func NewInterviewService(repo interview.Repository, applications application.Repository, users user.Repository) *InterviewService {
	return &InterviewService{repo: repo, applications: applications, users: users}
}

// Schedule books an interview for an existing candidacy and moves a pending
// application into review.
func (s *InterviewService) Schedule(ctx context.Context, i interview.Interview) (*interview.Interview, error) {
	if i.ScheduledAt.IsZero() {
		return nil, common.NewValidationError("invalid interview", map[string]string{"scheduled_at": "scheduled_at is required"})
	}
	if _, err := s.users.GetByTaxID(ctx, i.EvaluatorID); err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil, common.NewValidationError("invalid interview", map[string]string{"evaluator_id": "evaluator does not exist"})
		}
		return nil, err
	}
	app, err := s.applications.Get(ctx, i.CandidateID, i.VacancyID)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil, common.NewValidationError("invalid interview", map[string]string{"application": "candidate has not applied to this vacancy"})
		}
		return nil, err
	}
	i.Score = nil
	i.Assessment = ""
	created, err := s.repo.Add(ctx, i)
	if err != nil {
		return nil, err
	}
	if app.Status == application.StatusPending {
		if _, err := s.applications.UpdateStatus(ctx, i.CandidateID, i.VacancyID, application.StatusUnderReview); err != nil {
			return nil, err
		}
	}
	return created, nil
}

// Complete records the result. A score at or above the threshold approves a
// candidacy still under review; below it rejects.
func (s *InterviewService) Complete(ctx context.Context, id common.UUID, score float64, assessment string) (*interview.Interview, error) {
	if score < 0 || score > 10 {
		return nil, common.NewValidationError("invalid result", map[string]string{"score": "score must be between 0 and 10"})
	}
	i, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if i.Held() {
		return nil, common.NewError(common.CodeInvalidTransition, "interview already has a result", nil)
	}
	i.Score = &score
	i.Assessment = assessment
	updated, err := s.repo.Upsert(ctx, *i)
	if err != nil {
		return nil, err
	}
	app, err := s.applications.Get(ctx, i.CandidateID, i.VacancyID)
	if err == nil && app.Status == application.StatusUnderReview {
		outcome := application.StatusRejected
		if score >= approvalThreshold {
			outcome = application.StatusApproved
		}
		if _, err := s.applications.UpdateStatus(ctx, i.CandidateID, i.VacancyID, outcome); err != nil {
			return nil, err
		}
	}
	return updated, nil
}

func (s *InterviewService) Get(ctx context.Context, id common.UUID) (*interview.Interview, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *InterviewService) ListByVacancy(ctx context.Context, vacancyID common.UUID) ([]interview.Interview, error) {
	return s.repo.ListByVacancy(ctx, vacancyID)
}

func (s *InterviewService) ListByCandidate(ctx context.Context, candidateID string) ([]interview.Interview, error) {
	return s.repo.ListByCandidate(ctx, candidateID)
}
