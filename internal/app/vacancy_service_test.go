package app

import (
	"context"
	"testing"

	"hrsuite/internal/common"
	"hrsuite/internal/domain/vacancy"
)

func TestVacancyServiceOpen_StartsOpenAndUnassigned(t *testing.T) {
	env := newTestEnv(t)
	env.seedStaff(t)

	opened := env.openVacancy(t)

	if opened.Status != vacancy.StatusOpen {
		t.Fatalf("expected status open, got %s", opened.Status)
	}
	if opened.RecruiterID != nil {
		t.Fatal("expected no recruiter on a fresh vacancy")
	}
	if opened.OpenedAt.IsZero() {
		t.Fatal("expected opened_at to be stamped")
	}
	if opened.ID == "" {
		t.Fatal("expected an id")
	}
}

func TestVacancyServiceOpen_RequiresManager(t *testing.T) {
	env := newTestEnv(t)
	env.seedStaff(t)

	_, err := env.vacancies.Open(context.Background(), vacancy.Vacancy{
		Title:      "Backend Developer",
		Department: "Engineering",
		BaseSalary: 9000,
		Regime:     vacancy.RegimeCLT,
		ManagerID:  recruiterTaxID,
	})
	assertCode(t, err, common.CodeForbidden)
}

func TestVacancyServiceOpen_ValidatesFields(t *testing.T) {
	env := newTestEnv(t)
	env.seedStaff(t)

	_, err := env.vacancies.Open(context.Background(), vacancy.Vacancy{
		Title:      "",
		Department: "Engineering",
		BaseSalary: -1,
		Regime:     "freelance",
		ManagerID:  managerTaxID,
	})
	assertCode(t, err, common.CodeValidation)
}

func TestVacancyServiceAssignRecruiter_MovesToInProcess(t *testing.T) {
	env := newTestEnv(t)
	env.seedStaff(t)
	opened := env.openVacancy(t)

	assigned, err := env.vacancies.AssignRecruiter(context.Background(), opened.ID, recruiterTaxID)
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if assigned.Status != vacancy.StatusInProcess {
		t.Fatalf("expected status in_process, got %s", assigned.Status)
	}
	if assigned.RecruiterID == nil || *assigned.RecruiterID != recruiterTaxID {
		t.Fatalf("expected recruiter %s, got %v", recruiterTaxID, assigned.RecruiterID)
	}
}

func TestVacancyServiceAssignRecruiter_OnlyFromOpen(t *testing.T) {
	env := newTestEnv(t)
	env.seedStaff(t)
	opened := env.openVacancy(t)

	if _, err := env.vacancies.AssignRecruiter(context.Background(), opened.ID, recruiterTaxID); err != nil {
		t.Fatalf("assign: %v", err)
	}
	_, err := env.vacancies.AssignRecruiter(context.Background(), opened.ID, recruiterTaxID)
	assertCode(t, err, common.CodeInvalidTransition)
}

func TestVacancyServiceAssignRecruiter_RejectsNonRecruiter(t *testing.T) {
	env := newTestEnv(t)
	env.seedStaff(t)
	opened := env.openVacancy(t)

	_, err := env.vacancies.AssignRecruiter(context.Background(), opened.ID, managerTaxID)
	assertCode(t, err, common.CodeValidation)
}

func TestVacancyServiceClose_IsTerminal(t *testing.T) {
	env := newTestEnv(t)
	env.seedStaff(t)
	opened := env.openVacancy(t)

	closed, err := env.vacancies.Close(context.Background(), opened.ID)
	if err != nil {
		t.Fatalf("close: %v", err)
	}
	if closed.Status != vacancy.StatusClosed {
		t.Fatalf("expected status closed, got %s", closed.Status)
	}

	_, err = env.vacancies.Close(context.Background(), opened.ID)
	assertCode(t, err, common.CodeInvalidTransition)
}

func TestVacancyServiceUpdate_PreservesStateAndAssignment(t *testing.T) {
	env := newTestEnv(t)
	env.seedStaff(t)
	opened := env.openVacancy(t)
	if _, err := env.vacancies.AssignRecruiter(context.Background(), opened.ID, recruiterTaxID); err != nil {
		t.Fatalf("assign: %v", err)
	}

	edited := *opened
	edited.Title = "Senior Backend Developer"
	edited.BaseSalary = 12000
	edited.Status = vacancy.StatusOpen // must be ignored
	updated, err := env.vacancies.Update(context.Background(), edited)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "Senior Backend Developer" {
		t.Fatalf("expected new title, got %s", updated.Title)
	}
	if updated.Status != vacancy.StatusInProcess {
		t.Fatalf("expected status in_process preserved, got %s", updated.Status)
	}
	if updated.RecruiterID == nil || *updated.RecruiterID != recruiterTaxID {
		t.Fatal("expected assignment preserved")
	}
	if !updated.OpenedAt.Equal(opened.OpenedAt) {
		t.Fatal("expected opened_at preserved")
	}
}

func TestVacancyServiceListByStatus(t *testing.T) {
	env := newTestEnv(t)
	env.seedStaff(t)
	first := env.openVacancy(t)
	env.openVacancy(t)
	if _, err := env.vacancies.Close(context.Background(), first.ID); err != nil {
		t.Fatalf("close: %v", err)
	}

	open, err := env.vacancies.ListByStatus(context.Background(), "open")
	if err != nil {
		t.Fatalf("list open: %v", err)
	}
	if len(open) != 1 {
		t.Fatalf("expected 1 open vacancy, got %d", len(open))
	}
	closed, err := env.vacancies.ListByStatus(context.Background(), "closed")
	if err != nil {
		t.Fatalf("list closed: %v", err)
	}
	if len(closed) != 1 {
		t.Fatalf("expected 1 closed vacancy, got %d", len(closed))
	}
	if _, err := env.vacancies.ListByStatus(context.Background(), "stale"); err == nil {
		t.Fatal("expected unknown status to be rejected")
	}
}
