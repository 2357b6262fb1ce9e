package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/vytor/founderlab/internal/errors"
	"github.com/vytor/founderlab/internal/services"
)

type learningPathResponse struct {
	Success bool `json:"success"`
	*services.LearningPathResult
}

type mentorChatResponse struct {
	Success bool `json:"success"`
	*services.MentorChatResult
}

type onboardingFeedbackResponse struct {
	Success bool `json:"success"`
	*services.OnboardingFeedbackResult
}

type trackInteractionResponse struct {
	Success bool `json:"success"`
	*services.TrackInteractionResult
}

type interactionHistoryResponse struct {
	Success bool `json:"success"`
	*services.InteractionHistory
}

func (s *Server) handleLearningPath(w http.ResponseWriter, r *http.Request) {
	var req services.LearningPathRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	res, err := s.AIService.LearningPath(r.Context(), req)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, learningPathResponse{Success: true, LearningPathResult: res})
}

func (s *Server) handleMentorChat(w http.ResponseWriter, r *http.Request) {
	var req services.MentorChatRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	res, err := s.AIService.MentorChat(r.Context(), req)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, mentorChatResponse{Success: true, MentorChatResult: res})
}

func (s *Server) handleOnboardingFeedback(w http.ResponseWriter, r *http.Request) {
	var req services.OnboardingFeedbackRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	res, err := s.AIService.OnboardingFeedback(r.Context(), req)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, onboardingFeedbackResponse{Success: true, OnboardingFeedbackResult: res})
}

func (s *Server) handleTrackInteraction(w http.ResponseWriter, r *http.Request) {
	var req services.TrackInteractionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	res, err := s.InteractionService.Track(r.Context(), req)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, trackInteractionResponse{Success: true, TrackInteractionResult: res})
}

func (s *Server) handleInteractionHistory(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(chi.URLParam(r, "userId"))

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			handleError(w, r, errors.NewValidationError("limit", "must be an integer"))
			return
		}
		limit = n
	}

	res, err := s.InteractionService.History(r.Context(), userID, limit)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, interactionHistoryResponse{Success: true, InteractionHistory: res})
}
