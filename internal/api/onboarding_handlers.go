package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/vytor/founderlab/internal/errors"
	"github.com/vytor/founderlab/internal/logger"
	"github.com/vytor/founderlab/internal/services"
)

type saveProfileResponse struct {
	Success bool `json:"success"`
	*services.SaveProfileResult
}

type profileResponse struct {
	Success bool `json:"success"`
	*services.ProfileView
}

func (s *Server) handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	var req services.SaveProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	res, err := s.OnboardingService.SaveProfile(r.Context(), req)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, saveProfileResponse{Success: true, SaveProfileResult: res})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	userID := strings.TrimSpace(chi.URLParam(r, "userId"))
	if userID == "" {
		log.Warn("profile lookup without user id")
		handleError(w, r, errors.NewMissingFieldsError("userId"))
		return
	}

	view, err := s.OnboardingService.GetProfile(r.Context(), userID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, profileResponse{Success: true, ProfileView: view})
}
