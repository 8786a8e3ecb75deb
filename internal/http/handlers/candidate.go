package handlers

import (
	"net/http"

	"hrsuite/internal/app"
	"hrsuite/internal/domain/candidate"
	"hrsuite/internal/domain/person"
	"hrsuite/internal/http/response"
)

type CandidateHandler struct {
	candidates *app.CandidateService
}

func NewCandidateHandler(candidates *app.CandidateService) *CandidateHandler {
	return &CandidateHandler{candidates: candidates}
}

type candidateRequest struct {
	Name          string   `json:"name"`
	TaxID         string   `json:"tax_id"`
	Email         string   `json:"email"`
	Address       string   `json:"address"`
	Phone         string   `json:"phone"`
	Education     string   `json:"education"`
	Experience    string   `json:"experience"`
	DesiredSalary float64  `json:"desired_salary"`
	Availability  string   `json:"availability"`
	Documents     []string `json:"documents"`
}

func (req candidateRequest) toCandidate() candidate.Candidate {
	return candidate.Candidate{
		Person: person.Person{
			Name:    req.Name,
			TaxID:   req.TaxID,
			Email:   req.Email,
			Address: req.Address,
			Phone:   req.Phone,
		},
		Education:     req.Education,
		Experience:    req.Experience,
		DesiredSalary: req.DesiredSalary,
		Availability:  req.Availability,
		Documents:     req.Documents,
	}
}

func (h *CandidateHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req candidateRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.candidates.Register(r.Context(), req.toCandidate())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *CandidateHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req candidateRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.candidates.Update(r.Context(), pathSegment(r, 1), req.toCandidate())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *CandidateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.candidates.Remove(r.Context(), pathSegment(r, 1)); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusNoContent, nil)
}

func (h *CandidateHandler) Get(w http.ResponseWriter, r *http.Request) {
	found, err := h.candidates.Get(r.Context(), pathSegment(r, 1))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, found)
}

func (h *CandidateHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.candidates.List(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}
