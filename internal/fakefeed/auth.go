package fakefeed

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-broadcast-datafeed/internal/logger"
	"github.com/MKhiriev/go-broadcast-datafeed/internal/utils"
	"github.com/MKhiriev/go-broadcast-datafeed/models"
)

type tokensResponse struct {
	Success bool `json:"success"`
	models.Tokens
}

type failureResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

func writeFailure(w http.ResponseWriter, err error, statusCode int) {
	_, _ = utils.WriteJSON(w, failureResponse{Message: err.Error()}, statusCode)
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid login body")
		writeFailure(w, err, http.StatusBadRequest)
		return
	}

	if req.ApplicationID != models.DatafeedApplicationID || !s.checkCredentials(req.Login, req.Password) {
		log.Warn().Str("login", req.Login).Msg("login rejected")
		writeFailure(w, ErrInvalidCredentials, http.StatusUnauthorized)
		return
	}

	tokens, err := s.sessions.issue(req.Login)
	if err != nil {
		log.Err(err).Send()
		writeFailure(w, err, http.StatusInternalServerError)
		return
	}

	_, _ = utils.WriteJSON(w, tokensResponse{Success: true, Tokens: tokens}, http.StatusOK)
}

func (s *Server) refresh(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid refresh body")
		writeFailure(w, err, http.StatusBadRequest)
		return
	}

	tokens, err := s.sessions.rotate(req)
	switch {
	case errors.Is(err, ErrUnknownSession), errors.Is(err, ErrRefreshMismatch):
		log.Warn().Err(err).Msg("refresh rejected")
		writeFailure(w, err, http.StatusUnauthorized)
		return
	case err != nil:
		log.Err(err).Send()
		writeFailure(w, err, http.StatusInternalServerError)
		return
	}

	_, _ = utils.WriteJSON(w, tokensResponse{Success: true, Tokens: tokens}, http.StatusOK)
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	if token, ok := utils.GetTokenFromContext(r.Context()); ok {
		s.sessions.revoke(token)
	}

	_, _ = utils.WriteJSON(w, failureResponse{
		Success: false,
		Code:    "bc_01104",
		Message: "Session disconnected",
	}, http.StatusOK)
}

func (s *Server) keep(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, map[string]string{"status": "session_extended"}, http.StatusOK)
}
