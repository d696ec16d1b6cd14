package controllers

import (
	"errors"
	json "github.com/goccy/go-json"
	"net/http"
	"streakd/internal/auth"
	"streakd/internal/providers"
)

type AuthController struct {
	logger  providers.Logger
	manager *auth.Manager
}

func NewAuthController(logger providers.Logger, manager *auth.Manager) *AuthController {
	return &AuthController{
		logger:  logger,
		manager: manager,
	}
}

type requestCodePayload struct {
	Email string `json:"email"`
}

type verifyCodePayload struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type sessionResponse struct {
	State string `json:"state"`
}

func (ctl *AuthController) RequestCode(w http.ResponseWriter, r *http.Request) {
	var payload requestCodePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := ctl.manager.RequestCode(r.Context(), payload.Email); err != nil {
		ctl.writeAuthError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (ctl *AuthController) VerifyCode(w http.ResponseWriter, r *http.Request) {
	var payload verifyCodePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := ctl.manager.VerifyCode(r.Context(), payload.Email, payload.Code); err != nil {
		ctl.writeAuthError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (ctl *AuthController) SignOut(w http.ResponseWriter, r *http.Request) {
	if err := ctl.manager.SignOut(r.Context()); err != nil {
		ctl.writeAuthError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetSession reports the current state for navigation gating. While the
// state is still unknown the client shows a loading screen and waits.
func (ctl *AuthController) GetSession(w http.ResponseWriter, r *http.Request) {
	resp := sessionResponse{State: ctl.manager.State().String()}

	gson, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

// writeAuthError surfaces auth failures with their readable message.
// Backend statuses pass through; unreachable maps to 502.
func (ctl *AuthController) writeAuthError(w http.ResponseWriter, err error) {
	status := http.StatusBadGateway
	message := "authentication failed"

	var authErr *auth.AuthError
	if errors.As(err, &authErr) {
		message = authErr.Message
		if authErr.Status >= http.StatusBadRequest {
			status = authErr.Status
		}
	}

	ctl.logger.Warnf(providers.TypePost, "Auth request failed (%d): %s", status, message)

	gson, jsonErr := json.Marshal(map[string]string{"error": message})
	if jsonErr != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}
