package handlers

import (
	"net/http"

	"hrsuite/internal/app"
	"hrsuite/internal/domain/person"
	"hrsuite/internal/domain/user"
	"hrsuite/internal/http/middleware"
	"hrsuite/internal/http/response"
)

type UserHandler struct {
	users *app.UserService
}

func NewUserHandler(users *app.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type userRequest struct {
	Name       string  `json:"name"`
	TaxID      string  `json:"tax_id"`
	Email      string  `json:"email"`
	Address    string  `json:"address"`
	Phone      string  `json:"phone"`
	Login      string  `json:"login"`
	Password   string  `json:"password"`
	Role       string  `json:"role"`
	JobTitle   string  `json:"job_title"`
	Department string  `json:"department"`
	BaseSalary float64 `json:"base_salary"`
}

type userResponse struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	TaxID      string  `json:"tax_id"`
	Email      string  `json:"email"`
	Address    string  `json:"address,omitempty"`
	Phone      string  `json:"phone,omitempty"`
	Login      string  `json:"login"`
	Role       string  `json:"role"`
	JobTitle   string  `json:"job_title,omitempty"`
	Department string  `json:"department,omitempty"`
	BaseSalary float64 `json:"base_salary,omitempty"`
}

func toUserResponse(u user.User) userResponse {
	return userResponse{
		ID:         u.ID,
		Name:       u.Name,
		TaxID:      u.TaxID,
		Email:      u.Email,
		Address:    u.Address,
		Phone:      u.Phone,
		Login:      u.Login,
		Role:       string(u.Role),
		JobTitle:   u.JobTitle,
		Department: u.Department,
		BaseSalary: u.BaseSalary,
	}
}

func (req userRequest) toInput() app.UserInput {
	return app.UserInput{
		Person: person.Person{
			Name:    req.Name,
			TaxID:   req.TaxID,
			Email:   req.Email,
			Address: req.Address,
			Phone:   req.Phone,
		},
		Login:      req.Login,
		Password:   req.Password,
		Role:       req.Role,
		JobTitle:   req.JobTitle,
		Department: req.Department,
		BaseSalary: req.BaseSalary,
	}
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.users.Create(r.Context(), req.toInput())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, toUserResponse(*created))
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	taxID := pathSegment(r, 1)
	var req userRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.users.Update(r.Context(), taxID, req.toInput())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, toUserResponse(*updated))
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	role, ok := middleware.RoleFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	if err := h.users.Delete(r.Context(), role, pathSegment(r, 1)); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusNoContent, nil)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	account, err := h.users.Get(r.Context(), pathSegment(r, 1))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, toUserResponse(*account))
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		accounts []user.User
		err      error
	)
	if role := r.URL.Query().Get("role"); role != "" {
		accounts, err = h.users.ListByRole(r.Context(), role)
	} else {
		accounts, err = h.users.List(r.Context())
	}
	if err != nil {
		response.Error(w, err)
		return
	}
	items := make([]userResponse, 0, len(accounts))
	for _, account := range accounts {
		items = append(items, toUserResponse(account))
	}
	response.JSON(w, http.StatusOK, items)
}
