package app

import (
	"context"
	"testing"
	"time"

	"hrsuite/internal/common"
	"hrsuite/internal/domain/application"
	"hrsuite/internal/domain/interview"
)

func (e *testEnv) scheduleInterview(t *testing.T, candidateID string, vacancyID common.UUID) *interview.Interview {
	t.Helper()
	created, err := e.interviews.Schedule(context.Background(), interview.Interview{
		CandidateID: candidateID,
		VacancyID:   vacancyID,
		ScheduledAt: time.Now().Add(24 * time.Hour).UTC(),
		EvaluatorID: recruiterTaxID,
	})
	if err != nil {
		t.Fatalf("schedule interview: %v", err)
	}
	return created
}

func TestInterviewServiceSchedule_MovesApplicationIntoReview(t *testing.T) {
	env := newTestEnv(t)
	env.seedStaff(t)
	env.registerCandidate(t)
	opened := env.openVacancy(t)
	if _, err := env.applications.Apply(context.Background(), candidateTaxID, opened.ID); err != nil {
		t.Fatalf("apply: %v", err)
	}

	created := env.scheduleInterview(t, candidateTaxID, opened.ID)
	if created.Held() {
		t.Fatal("expected a fresh interview to have no result")
	}

	app, err := env.applications.Get(context.Background(), candidateTaxID, opened.ID)
	if err != nil {
		t.Fatalf("get application: %v", err)
	}
	if app.Status != application.StatusUnderReview {
		t.Fatalf("expected status under_review, got %s", app.Status)
	}
}

func TestInterviewServiceSchedule_RequiresApplication(t *testing.T) {
	env := newTestEnv(t)
	env.seedStaff(t)
	env.registerCandidate(t)
	opened := env.openVacancy(t)

	_, err := env.interviews.Schedule(context.Background(), interview.Interview{
		CandidateID: candidateTaxID,
		VacancyID:   opened.ID,
		ScheduledAt: time.Now().Add(24 * time.Hour).UTC(),
		EvaluatorID: recruiterTaxID,
	})
	assertCode(t, err, common.CodeValidation)
}

func TestInterviewServiceComplete_HighScoreApproves(t *testing.T) {
	env := newTestEnv(t)
	env.seedStaff(t)
	env.registerCandidate(t)
	opened := env.openVacancy(t)
	if _, err := env.applications.Apply(context.Background(), candidateTaxID, opened.ID); err != nil {
		t.Fatalf("apply: %v", err)
	}
	created := env.scheduleInterview(t, candidateTaxID, opened.ID)

	updated, err := env.interviews.Complete(context.Background(), created.ID, 8.5, "strong systems background")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if updated.Score == nil || *updated.Score != 8.5 {
		t.Fatalf("expected score 8.5, got %v", updated.Score)
	}

	app, err := env.applications.Get(context.Background(), candidateTaxID, opened.ID)
	if err != nil {
		t.Fatalf("get application: %v", err)
	}
	if app.Status != application.StatusApproved {
		t.Fatalf("expected status approved, got %s", app.Status)
	}
}

func TestInterviewServiceComplete_LowScoreRejects(t *testing.T) {
	env := newTestEnv(t)
	env.seedStaff(t)
	env.registerCandidate(t)
	opened := env.openVacancy(t)
	if _, err := env.applications.Apply(context.Background(), candidateTaxID, opened.ID); err != nil {
		t.Fatalf("apply: %v", err)
	}
	created := env.scheduleInterview(t, candidateTaxID, opened.ID)

	if _, err := env.interviews.Complete(context.Background(), created.ID, 4, "not a fit"); err != nil {
		t.Fatalf("complete: %v", err)
	}
	app, err := env.applications.Get(context.Background(), candidateTaxID, opened.ID)
	if err != nil {
		t.Fatalf("get application: %v", err)
	}
	if app.Status != application.StatusRejected {
		t.Fatalf("expected status rejected, got %s", app.Status)
	}
}

func TestInterviewServiceComplete_IsOneShot(t *testing.T) {
	env := newTestEnv(t)
	env.seedStaff(t)
	env.registerCandidate(t)
	opened := env.openVacancy(t)
	if _, err := env.applications.Apply(context.Background(), candidateTaxID, opened.ID); err != nil {
		t.Fatalf("apply: %v", err)
	}
	created := env.scheduleInterview(t, candidateTaxID, opened.ID)

	if _, err := env.interviews.Complete(context.Background(), created.ID, 7, "borderline"); err != nil {
		t.Fatalf("complete: %v", err)
	}
	_, err := env.interviews.Complete(context.Background(), created.ID, 9, "second opinion")
	assertCode(t, err, common.CodeInvalidTransition)
}

func TestInterviewServiceComplete_ScoreRange(t *testing.T) {
	env := newTestEnv(t)
	env.seedStaff(t)
	env.registerCandidate(t)
	opened := env.openVacancy(t)
	if _, err := env.applications.Apply(context.Background(), candidateTaxID, opened.ID); err != nil {
		t.Fatalf("apply: %v", err)
	}
	created := env.scheduleInterview(t, candidateTaxID, opened.ID)

	_, err := env.interviews.Complete(context.Background(), created.ID, 10.5, "off the scale")
	assertCode(t, err, common.CodeValidation)
}
