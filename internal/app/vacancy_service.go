package app

import (
	"context"
	"strings"
	"time"

	"hrsuite/internal/common"
	"hrsuite/internal/domain/user"
	"hrsuite/internal/domain/vacancy"
)

type VacancyService struct {
	repo  vacancy.Repository
	users user.Repository
}

func NewVacancyService(repo vacancy.Repository, users user.Repository) *VacancyService {
	return &VacancyService{repo: repo, users: users}
}

// Open creates a new requisition in StatusOpen on behalf of a manager.
func (s *VacancyService) Open(ctx context.Context, v vacancy.Vacancy) (*vacancy.Vacancy, error) {
	if err := validateVacancyFields(v); err != nil {
		return nil, err
	}
	manager, err := s.users.GetByTaxID(ctx, v.ManagerID)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil, common.NewValidationError("invalid vacancy", map[string]string{"manager_id": "manager does not exist"})
		}
		return nil, err
	}
	if manager.Role != user.RoleManager && manager.Role != user.RoleAdmin {
		return nil, common.NewError(common.CodeForbidden, "only a manager can open a vacancy", nil)
	}
	v.Status = vacancy.StatusOpen
	v.RecruiterID = nil
	v.OpenedAt = time.Now().UTC()
	return s.repo.Add(ctx, v)
}

// AssignRecruiter is the only transition from StatusOpen to StatusInProcess.
func (s *VacancyService) AssignRecruiter(ctx context.Context, vacancyID common.UUID, recruiterID string) (*vacancy.Vacancy, error) {
	v, err := s.repo.GetByID(ctx, vacancyID)
	if err != nil {
		return nil, err
	}
	if v.Status != vacancy.StatusOpen {
		return nil, common.NewError(common.CodeInvalidTransition, "vacancy is not open", nil)
	}
	recruiter, err := s.users.GetByTaxID(ctx, recruiterID)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil, common.NewValidationError("invalid assignment", map[string]string{"recruiter_id": "recruiter does not exist"})
		}
		return nil, err
	}
	if recruiter.Role != user.RoleRecruiter {
		return nil, common.NewValidationError("invalid assignment", map[string]string{"recruiter_id": "assignee is not a recruiter"})
	}
	v.RecruiterID = &recruiter.TaxID
	v.Status = vacancy.StatusInProcess
	return s.repo.Upsert(ctx, *v)
}

// Close moves any non-closed vacancy to StatusClosed. There is no way back.
func (s *VacancyService) Close(ctx context.Context, vacancyID common.UUID) (*vacancy.Vacancy, error) {
	v, err := s.repo.GetByID(ctx, vacancyID)
	if err != nil {
		return nil, err
	}
	if v.Status == vacancy.StatusClosed {
		return nil, common.NewError(common.CodeInvalidTransition, "vacancy already closed", nil)
	}
	v.Status = vacancy.StatusClosed
	return s.repo.Upsert(ctx, *v)
}

// Update rewrites the descriptive fields. Status and assignment are owned by
// the transitions above and are preserved from the stored record.
func (s *VacancyService) Update(ctx context.Context, v vacancy.Vacancy) (*vacancy.Vacancy, error) {
	current, err := s.repo.GetByID(ctx, v.ID)
	if err != nil {
		return nil, err
	}
	if err := validateVacancyFields(v); err != nil {
		return nil, err
	}
	v.Status = current.Status
	v.RecruiterID = current.RecruiterID
	v.OpenedAt = current.OpenedAt
	v.ManagerID = current.ManagerID
	return s.repo.Upsert(ctx, v)
}

func (s *VacancyService) Get(ctx context.Context, id common.UUID) (*vacancy.Vacancy, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *VacancyService) List(ctx context.Context) ([]vacancy.Vacancy, error) {
	return s.repo.List(ctx)
}

func (s *VacancyService) ListByStatus(ctx context.Context, statusValue string) ([]vacancy.Vacancy, error) {
	status := vacancy.Status(strings.ToLower(strings.TrimSpace(statusValue)))
	switch status {
	case vacancy.StatusOpen, vacancy.StatusInProcess, vacancy.StatusClosed:
		return s.repo.ListByStatus(ctx, status)
	default:
		return nil, common.NewValidationError("invalid status", map[string]string{"status": "status must be open, in_process, or closed"})
	}
}

func validateVacancyFields(v vacancy.Vacancy) error {
	fields := map[string]string{}
	if strings.TrimSpace(v.Title) == "" {
		fields["title"] = "title is required"
	}
	if strings.TrimSpace(v.Department) == "" {
		fields["department"] = "department is required"
	}
	if v.BaseSalary <= 0 {
		fields["base_salary"] = "base_salary must be positive"
	}
	if _, err := vacancy.ParseRegime(string(v.Regime)); err != nil {
		fields["regime"] = "regime must be clt, internship, or contractor"
	}
	if len(fields) > 0 {
		return common.NewValidationError("invalid vacancy", fields)
	}
	return nil
}
