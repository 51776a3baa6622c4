package http

import (
	"net/http"

	"cakue/internal/core"
	applog "cakue/internal/log"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string    `json:"token"`
	User  core.User `json:"user"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	user, account, err := s.deps.Auth.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	applog.FromContext(r.Context()).InfoContext(r.Context(), "User registered",
		applog.FieldComponent, applog.ComponentAuth,
		applog.FieldOperation, applog.OpRegister,
		applog.FieldUserID, user.ID,
		applog.FieldAccountID, account.ID)

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":   "User registered successfully",
		"userId":    user.ID,
		"accountId": account.ID,
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	token, user, err := s.deps.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: token, User: user})
}
