package handlers

import (
	"net/http"
	"time"

	"hrsuite/internal/app"
	"hrsuite/internal/common"
	"hrsuite/internal/domain/interview"
	"hrsuite/internal/http/response"
)

type InterviewHandler struct {
	interviews *app.InterviewService
}

func NewInterviewHandler(interviews *app.InterviewService) *InterviewHandler {
	return &InterviewHandler{interviews: interviews}
}

type interviewRequest struct {
	CandidateID string `json:"candidate_id"`
	VacancyID   string `json:"vacancy_id"`
	ScheduledAt string `json:"scheduled_at"`
	EvaluatorID string `json:"evaluator_id"`
}

type interviewResultRequest struct {
	Score      float64 `json:"score"`
	Assessment string  `json:"assessment"`
}

func (h *InterviewHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	var req interviewRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	candidateID, vacancyID, err := parsePair(req.CandidateID, req.VacancyID)
	if err != nil {
		response.Error(w, err)
		return
	}
	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		response.Error(w, common.NewValidationError("invalid request", map[string]string{"scheduled_at": "scheduled_at must be RFC3339"}))
		return
	}
	created, err := h.interviews.Schedule(r.Context(), interview.Interview{
		CandidateID: candidateID,
		VacancyID:   vacancyID,
		ScheduledAt: scheduledAt,
		EvaluatorID: req.EvaluatorID,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *InterviewHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req interviewResultRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.interviews.Complete(r.Context(), id, req.Score, req.Assessment)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *InterviewHandler) List(w http.ResponseWriter, r *http.Request) {
	if candidateID := r.URL.Query().Get("candidate_id"); candidateID != "" {
		items, err := h.interviews.ListByCandidate(r.Context(), candidateID)
		if err != nil {
			response.Error(w, err)
			return
		}
		response.JSON(w, http.StatusOK, items)
		return
	}
	vacancyID, err := common.ParseUUID(r.URL.Query().Get("vacancy_id"))
	if err != nil {
		response.Error(w, common.NewValidationError("invalid request", map[string]string{"vacancy_id": "candidate_id or vacancy_id is required"}))
		return
	}
	items, err := h.interviews.ListByVacancy(r.Context(), vacancyID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}
