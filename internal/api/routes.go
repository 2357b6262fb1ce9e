package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vytor/founderlab/internal/errors"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(loggingMiddleware)
	r.Use(recoveryMiddleware)
	r.Use(securityHeadersMiddleware)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		handleError(w, r, errors.NewNotFoundError("route", r.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		handleError(w, r, errors.NewMethodNotAllowedError(r.Method, r.URL.Path))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/healthz", s.handleHealth)
		r.Get("/readyz", s.handleReady)

		r.Route("/ai", func(r chi.Router) {
			r.Post("/learning-path", s.handleLearningPath)
			r.Post("/mentor-chat", s.handleMentorChat)
			r.Post("/onboarding-feedback", s.handleOnboardingFeedback)
			r.Post("/track-interaction", s.handleTrackInteraction)
			r.Get("/interactions/{userId}", s.handleInteractionHistory)
		})

		r.Post("/onboarding/save-profile", s.handleSaveProfile)
		r.Get("/onboarding/profile/{userId}", s.handleGetProfile)

		r.Post("/simulation/submit", s.handleSubmitDecision)
		r.Get("/progress/{userId}", s.handleProgress)
	})
	return r
}
