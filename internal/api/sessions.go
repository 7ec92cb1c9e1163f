package api

import (
	"net/http"

	"github.com/mmynk/restapis/internal/middleware"
	"github.com/mmynk/restapis/internal/models"
	"github.com/mmynk/restapis/internal/service"
)

type SessionHandler struct {
	responder
	sessions *service.SessionService
}

func NewSessionHandler(sessions *service.SessionService, strict bool) *SessionHandler {
	return &SessionHandler{responder: responder{strict: strict}, sessions: sessions}
}

// Signup handles POST /signup. The response never includes the password hash.
//
// @Summary Register a user
// @Tags Session
// @Accept json
// @Produce json
// @Param user body models.SignupRequest true "Signup information"
// @Success 200 {object} models.PublicUser
// @Failure 401 {object} models.MessageResponse "Username is already in use"
// @Failure 500 {object} models.MessageResponse "Server Exception"
// @Failure 501 {object} models.MessageResponse "Database Exception"
// @Router /signup [post]
func (h *SessionHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.sessions.Signup(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	JSONResponse(w, http.StatusOK, user)
}

// Login handles POST /login
//
// @Summary Log in
// @Tags Session
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Login information"
// @Success 200 {object} models.LoginResponse
// @Failure 401 {object} models.MessageResponse "Invalid username and/or password"
// @Failure 500 {object} models.MessageResponse "Server Exception"
// @Failure 501 {object} models.MessageResponse "Database Exception"
// @Router /login [post]
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	resp, err := h.sessions.Login(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	JSONResponse(w, http.StatusOK, resp)
}

// Me handles GET /users/me behind RequireAuth.
//
// @Summary Current user
// @Tags Session
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.PublicUser
// @Failure 401 {object} models.MessageResponse "Missing or invalid token"
// @Router /users/me [get]
func (h *SessionHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.sessions.Me(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	JSONResponse(w, http.StatusOK, user)
}
