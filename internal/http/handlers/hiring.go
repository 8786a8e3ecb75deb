package handlers

import (
	"net/http"

	"hrsuite/internal/app"
	"hrsuite/internal/http/middleware"
	"hrsuite/internal/http/response"
)

type HiringHandler struct {
	hirings *app.HiringService
}

func NewHiringHandler(hirings *app.HiringService) *HiringHandler {
	return &HiringHandler{hirings: hirings}
}

type hiringRequest struct {
	CandidateID string `json:"candidate_id"`
	VacancyID   string `json:"vacancy_id"`
	Regime      string `json:"regime"`
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

func (h *HiringHandler) Request(w http.ResponseWriter, r *http.Request) {
	recruiterID, ok := middleware.TaxIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req hiringRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	candidateID, vacancyID, err := parsePair(req.CandidateID, req.VacancyID)
	if err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.hirings.Request(r.Context(), recruiterID, candidateID, vacancyID, req.Regime)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *HiringHandler) Authorize(w http.ResponseWriter, r *http.Request) {
	managerID, ok := middleware.TaxIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	id, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.hirings.Authorize(r.Context(), id, managerID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *HiringHandler) Reject(w http.ResponseWriter, r *http.Request) {
	managerID, ok := middleware.TaxIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	id, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req rejectRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.hirings.Reject(r.Context(), id, managerID, req.Reason)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *HiringHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.hirings.Finalize(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *HiringHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	found, err := h.hirings.Get(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, found)
}

func (h *HiringHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("status") == "pending" {
		items, err := h.hirings.ListPending(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}
		response.JSON(w, http.StatusOK, items)
		return
	}
	items, err := h.hirings.List(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}
