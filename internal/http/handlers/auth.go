package handlers

import (
	"net/http"
	"time"

	"hrsuite/internal/app"
	"hrsuite/internal/http/middleware"
	"hrsuite/internal/http/response"
)

type AuthHandler struct {
	auth *app.AuthService
}

func NewAuthHandler(auth *app.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
	TaxID     string `json:"tax_id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	result, err := h.auth.Login(r.Context(), req.Login, req.Password)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, loginResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt.Format(time.RFC3339),
		TaxID:     result.User.TaxID,
		Name:      result.User.Name,
		Role:      string(result.User.Role),
	})
}

type changePasswordRequest struct {
	Current string `json:"current_password"`
	Next    string `json:"new_password"`
}

func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	taxID, ok := middleware.TaxIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req changePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if err := h.auth.ChangePassword(r.Context(), taxID, req.Current, req.Next); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusNoContent, nil)
}
