package api

import (
	"context"
	"net/http"
	"time"

	"github.com/vytor/founderlab/internal/logger"
)

const readinessTimeout = 2 * time.Second

type healthResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
}

// handleHealth is the liveness probe; it always answers 200.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, healthResponse{Success: true, Status: "ok"})
}

// handleReady answers 503 while the database is unreachable.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if err := s.checkDatabase(r.Context()); err != nil {
		log.Warn("readiness check failed - database: %v", err)
		writeJSON(w, r, http.StatusServiceUnavailable, healthResponse{Status: "database unavailable"})
		return
	}
	writeJSON(w, r, http.StatusOK, healthResponse{Success: true, Status: "ready"})
}

func (s *Server) checkDatabase(ctx context.Context) error {
	if s.DB == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, readinessTimeout)
	defer cancel()
	return s.DB.PingContext(ctx)
}
