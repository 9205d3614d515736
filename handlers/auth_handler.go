package handlers

import (
	"net/http"

	"partyboard/services"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /auth/login from the admin login page.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	claims, err := h.authService.Login(r.Context(), input.Username, input.Password)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"username": claims.Username,
		"role":     claims.Role,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Logout handles POST /auth/logout: clears the session slot.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.Logout()
	w.WriteHeader(http.StatusNoContent)
}

// Verify handles GET /auth/verify: asks the backend whether the held
// token is still valid. The decoded claims are advisory; this is the
// check the dashboard trusts.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	if err := h.authService.Verify(r.Context()); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	claims, _ := h.authService.Claims()
	response := jsonResponse{
		"username": claims.Username,
		"role":     claims.Role,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
