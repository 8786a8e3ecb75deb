package handlers

import (
	"net/http"

	"hrsuite/internal/app"
	"hrsuite/internal/common"
	"hrsuite/internal/http/response"
)

type ApplicationHandler struct {
	applications *app.ApplicationService
}

func NewApplicationHandler(applications *app.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

type applicationRequest struct {
	CandidateID string `json:"candidate_id"`
	VacancyID   string `json:"vacancy_id"`
}

type applicationStatusRequest struct {
	CandidateID string `json:"candidate_id"`
	VacancyID   string `json:"vacancy_id"`
	Status      string `json:"status"`
}

func parsePair(candidateID, vacancyID string) (string, common.UUID, error) {
	if candidateID == "" {
		return "", "", common.NewValidationError("invalid request", map[string]string{"candidate_id": "candidate_id is required"})
	}
	id, err := common.ParseUUID(vacancyID)
	if err != nil {
		return "", "", common.NewValidationError("invalid request", map[string]string{"vacancy_id": "vacancy_id must be a uuid"})
	}
	return candidateID, id, nil
}

func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var req applicationRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	candidateID, vacancyID, err := parsePair(req.CandidateID, req.VacancyID)
	if err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.applications.Apply(r.Context(), candidateID, vacancyID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *ApplicationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req applicationStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	candidateID, vacancyID, err := parsePair(req.CandidateID, req.VacancyID)
	if err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.applications.SetStatus(r.Context(), candidateID, vacancyID, req.Status)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *ApplicationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	candidateID, vacancyID, err := parsePair(r.URL.Query().Get("candidate_id"), r.URL.Query().Get("vacancy_id"))
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.applications.Delete(r.Context(), candidateID, vacancyID); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusNoContent, nil)
}

func (h *ApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	if candidateID := r.URL.Query().Get("candidate_id"); candidateID != "" {
		items, err := h.applications.ListByCandidate(r.Context(), candidateID)
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
	items, err := h.applications.ListByVacancy(r.Context(), vacancyID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}
