package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/restaurant-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/restaurant-api/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/restaurant-api/internal/ports"
)

// AuthHandler handles admin login and identity endpoints.
type AuthHandler struct {
	svc ports.AuthService
}

// NewAuthHandler creates a new AuthHandler with the given service port.
func NewAuthHandler(svc ports.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	session, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, dto.ToLoginResponse(session))
}

// Me handles GET /api/v1/auth/me. It must be routed behind
// middleware.RequireAdmin.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.Me(r.Context(), middleware.PrincipalFromContext(r.Context()))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToAdminResponse(a))
}
