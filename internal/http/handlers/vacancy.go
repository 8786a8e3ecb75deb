package handlers

import (
	"net/http"

	"hrsuite/internal/app"
	"hrsuite/internal/domain/vacancy"
	"hrsuite/internal/http/middleware"
	"hrsuite/internal/http/response"
)

type VacancyHandler struct {
	vacancies *app.VacancyService
}

func NewVacancyHandler(vacancies *app.VacancyService) *VacancyHandler {
	return &VacancyHandler{vacancies: vacancies}
}

type vacancyRequest struct {
	Title        string  `json:"title"`
	Department   string  `json:"department"`
	BaseSalary   float64 `json:"base_salary"`
	Requirements string  `json:"requirements"`
	Regime       string  `json:"regime"`
}

type assignRequest struct {
	RecruiterID string `json:"recruiter_id"`
}

func (h *VacancyHandler) Open(w http.ResponseWriter, r *http.Request) {
	managerID, ok := middleware.TaxIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req vacancyRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.vacancies.Open(r.Context(), vacancy.Vacancy{
		Title:        req.Title,
		Department:   req.Department,
		BaseSalary:   req.BaseSalary,
		Requirements: req.Requirements,
		Regime:       vacancy.Regime(req.Regime),
		ManagerID:    managerID,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *VacancyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req vacancyRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.vacancies.Update(r.Context(), vacancy.Vacancy{
		ID:           id,
		Title:        req.Title,
		Department:   req.Department,
		BaseSalary:   req.BaseSalary,
		Requirements: req.Requirements,
		Regime:       vacancy.Regime(req.Regime),
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *VacancyHandler) Assign(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req assignRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.vacancies.AssignRecruiter(r.Context(), id, req.RecruiterID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *VacancyHandler) Close(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.vacancies.Close(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *VacancyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	found, err := h.vacancies.Get(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, found)
}

func (h *VacancyHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		items []vacancy.Vacancy
		err   error
	)
	if status := r.URL.Query().Get("status"); status != "" {
		items, err = h.vacancies.ListByStatus(r.Context(), status)
	} else {
		items, err = h.vacancies.List(r.Context())
	}
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}
