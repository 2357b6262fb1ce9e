package services

import (
	"context"
	"fmt"

	"github.com/vytor/founderlab/internal/errors"
	"github.com/vytor/founderlab/internal/logger"
	"github.com/vytor/founderlab/internal/models"
	"github.com/vytor/founderlab/internal/repository"
)

// TrackInteractionRequest is the body of a track-interaction call.
type TrackInteractionRequest struct {
	UserID          string         `json:"userId"`
	InteractionType string         `json:"interactionType"`
	AIResponse      string         `json:"aiResponse"`
	Context         map[string]any `json:"context,omitempty"`
	FeedbackRating  *int           `json:"feedbackRating,omitempty"`
}

// TrackInteractionResult reports whether the log row was written.
type TrackInteractionResult struct {
	Logged      bool                  `json:"logged"`
	Interaction *models.AIInteraction `json:"interaction,omitempty"`
}

const (
	// DefaultHistoryLimit is used when a history call sends no limit.
	DefaultHistoryLimit = 20
	// MaxHistoryLimit caps a single history page.
	MaxHistoryLimit = 100
)

// InteractionHistory is the most recent interactions for one user key.
type InteractionHistory struct {
	Interactions []models.AIInteraction `json:"interactions"`
}

// InteractionService logs AI interactions. Write failures never surface as errors.
type InteractionService interface {
	Track(ctx context.Context, req TrackInteractionRequest) (*TrackInteractionResult, error)
	// History lists interactions newest first. A limit of 0 means
	// DefaultHistoryLimit.
	History(ctx context.Context, userKey string, limit int) (*InteractionHistory, error)
}

type interactionService struct {
	interactionRepo repository.InteractionRepository
}

// NewInteractionService creates a new InteractionService
func NewInteractionService(interactionRepo repository.InteractionRepository) InteractionService {
	return &interactionService{interactionRepo: interactionRepo}
}

func (s *interactionService) Track(ctx context.Context, req TrackInteractionRequest) (*TrackInteractionResult, error) {
	log := logger.FromContext(ctx).WithPrefix("interaction_service")

	if err := requireFields(
		field{"userId", req.UserID},
		field{"interactionType", req.InteractionType},
		field{"aiResponse", req.AIResponse},
	); err != nil {
		return nil, err
	}
	if r := req.FeedbackRating; r != nil && (*r < 1 || *r > 5) {
		return nil, errors.NewValidationError("feedbackRating", "must be between 1 and 5")
	}

	saved, err := s.interactionRepo.Insert(ctx, req.UserID, models.AIInteraction{
		InteractionType: req.InteractionType,
		Context:         models.JSONObject(req.Context),
		AIResponse:      req.AIResponse,
		FeedbackRating:  req.FeedbackRating,
	})
	if err != nil {
		log.WithError(err).Warn("failed to log %s interaction for %s", req.InteractionType, req.UserID)
		return &TrackInteractionResult{Logged: false}, nil
	}

	log.Debug("interaction logged: id=%s, type=%s", saved.ID, saved.InteractionType)
	return &TrackInteractionResult{Logged: true, Interaction: saved}, nil
}

func (s *interactionService) History(ctx context.Context, userKey string, limit int) (*InteractionHistory, error) {
	log := logger.FromContext(ctx).WithPrefix("interaction_service")

	if err := requireFields(field{"userId", userKey}); err != nil {
		return nil, err
	}
	switch {
	case limit == 0:
		limit = DefaultHistoryLimit
	case limit < 0 || limit > MaxHistoryLimit:
		return nil, errors.NewValidationError("limit", fmt.Sprintf("must be between 1 and %d", MaxHistoryLimit))
	}

	rows, err := s.interactionRepo.ListByUserKey(ctx, userKey, limit)
	if err != nil {
		log.Error("failed to list interactions for %s: %v", userKey, err)
		return nil, errors.NewInternalError(err)
	}
	if rows == nil {
		rows = []models.AIInteraction{}
	}
	log.Debug("interaction history: user_key=%s, count=%d", userKey, len(rows))
	return &InteractionHistory{Interactions: rows}, nil
}
