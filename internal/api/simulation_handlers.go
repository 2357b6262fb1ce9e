package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/vytor/founderlab/internal/errors"
	"github.com/vytor/founderlab/internal/services"
)

type submitDecisionResponse struct {
	Success bool `json:"success"`
	*services.SubmitDecisionResult
}

type progressResponse struct {
	Success bool `json:"success"`
	*services.ProgressOverview
}

func (s *Server) handleSubmitDecision(w http.ResponseWriter, r *http.Request) {
	var req services.SubmitDecisionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	res, err := s.SimulationService.Submit(r.Context(), req)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, submitDecisionResponse{Success: true, SubmitDecisionResult: res})
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(chi.URLParam(r, "userId"))
	if userID == "" {
		handleError(w, r, errors.NewMissingFieldsError("userId"))
		return
	}

	overview, err := s.ProgressService.Overview(r.Context(), userID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, progressResponse{Success: true, ProgressOverview: overview})
}
