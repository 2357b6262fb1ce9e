package sqldb

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/founderlab/internal/db"
	"github.com/vytor/founderlab/internal/logger"
	"github.com/vytor/founderlab/internal/models"
	"github.com/vytor/founderlab/internal/repository"
)

var interactionColumns = []string{
	"id", "user_id", "participant_id", "interaction_type", "context",
	"ai_response", "feedback_rating", "created_at",
}

type interactionRepository struct {
	db *db.DB
}

// NewInteractionRepository creates a new InteractionRepository implementation
func NewInteractionRepository(d *db.DB) repository.InteractionRepository {
	return &interactionRepository{db: d}
}

func (r *interactionRepository) Insert(ctx context.Context, userKey string, in models.AIInteraction) (*models.AIInteraction, error) {
	log := logger.FromContext(ctx).WithPrefix("interaction_repo")

	in.ID = newID()
	in.UserID, in.ParticipantID = repository.RouteUserKey(userKey)
	in.CreatedAt = r.db.Timestamp()

	query, args, err := r.db.Builder().
		Insert("ai_interactions").
		Columns(interactionColumns...).
		Values(in.ID, in.UserID, in.ParticipantID, in.InteractionType, in.Context,
			in.AIResponse, in.FeedbackRating, in.CreatedAt).
		ToSql()
	if err != nil {
		return nil, err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Error("failed to insert interaction: %v", err)
		return nil, err
	}
	log.Debug("interaction logged: id=%s, type=%s, uuid_key=%t", in.ID, in.InteractionType, in.UserID != nil)
	return &in, nil
}

func (r *interactionRepository) ListByUserKey(ctx context.Context, userKey string, limit int) ([]models.AIInteraction, error) {
	log := logger.FromContext(ctx).WithPrefix("interaction_repo")

	column := "participant_id"
	if repository.IsUUID(userKey) {
		column = "user_id"
	}
	q := r.db.Builder().
		Select(interactionColumns...).
		From("ai_interactions").
		Where(squirrel.Eq{column: userKey}).
		OrderBy("created_at DESC", "id ASC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var rows []models.AIInteraction
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		log.Error("failed to list interactions: %v", err)
		return nil, err
	}
	return rows, nil
}
