package services

import (
	"context"

	"github.com/vytor/founderlab/internal/errors"
	"github.com/vytor/founderlab/internal/logger"
	"github.com/vytor/founderlab/internal/models"
	"github.com/vytor/founderlab/internal/repository"
)

// RecentDecisionsLimit caps the decisions returned with a progress overview.
const RecentDecisionsLimit = 20

// ProgressOverview is a user's per-skill progress and latest decisions.
type ProgressOverview struct {
	Progress  []models.Progress `json:"progress"`
	Decisions []models.Decision `json:"decisions"`
}

// ProgressService reads progress aggregates.
type ProgressService interface {
	Overview(ctx context.Context, userID string) (*ProgressOverview, error)
}

type progressService struct {
	progress  repository.ProgressRepository
	decisions repository.DecisionRepository
}

// NewProgressService creates a new ProgressService
func NewProgressService(progress repository.ProgressRepository, decisions repository.DecisionRepository) ProgressService {
	return &progressService{progress: progress, decisions: decisions}
}

func (s *progressService) Overview(ctx context.Context, userID string) (*ProgressOverview, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_service")
	log.Debug("getting progress overview for %s", userID)

	progress, err := s.progress.ListByUser(ctx, userID)
	if err != nil {
		log.Error("failed to list progress for %s: %v", userID, err)
		return nil, errors.NewInternalError(err)
	}
	decisions, err := s.decisions.ListByUser(ctx, userID, RecentDecisionsLimit)
	if err != nil {
		log.Error("failed to list decisions for %s: %v", userID, err)
		return nil, errors.NewInternalError(err)
	}

	if progress == nil {
		progress = []models.Progress{}
	}
	if decisions == nil {
		decisions = []models.Decision{}
	}
	return &ProgressOverview{Progress: progress, Decisions: decisions}, nil
}
