package sqldb

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/vytor/founderlab/internal/db"
	"github.com/vytor/founderlab/internal/logger"
	"github.com/vytor/founderlab/internal/models"
	"github.com/vytor/founderlab/internal/repository"
)

var goalColumns = []string{"id", "profile_id", "goal_text", "category", "status", "created_at"}

type goalRepository struct {
	db *db.DB
}

// NewGoalRepository creates a new GoalRepository implementation
func NewGoalRepository(d *db.DB) repository.GoalRepository {
	return &goalRepository{db: d}
}

func (r *goalRepository) InsertBatch(ctx context.Context, profileID string, goals []models.GoalInput) ([]models.LearningGoal, error) {
	log := logger.FromContext(ctx).WithPrefix("goal_repo")
	log.Debug("batch inserting %d goals for profile %s", len(goals), profileID)

	if len(goals) == 0 {
		return nil, nil
	}

	now := r.db.Timestamp()
	inserted := make([]models.LearningGoal, 0, len(goals))
	builder := r.db.Builder().Insert("learning_goals").Columns(goalColumns...)
	for _, g := range goals {
		goal := models.LearningGoal{
			ID:        newID(),
			ProfileID: profileID,
			Text:      g.Text,
			Category:  g.Category,
			Status:    models.GoalStatusActive,
			CreatedAt: now,
		}
		builder = builder.Values(goal.ID, goal.ProfileID, goal.Text, goal.Category, goal.Status, goal.CreatedAt)
		inserted = append(inserted, goal)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	err = tx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			log.Error("failed to insert goals for profile %s: %v", profileID, err)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Debug("batch insert completed, %d goals inserted", len(inserted))
	return inserted, nil
}

func (r *goalRepository) ListByProfile(ctx context.Context, profileID string) ([]models.LearningGoal, error) {
	log := logger.FromContext(ctx).WithPrefix("goal_repo")
	log.Debug("listing goals for profile %s", profileID)

	query, args, err := r.db.Builder().
		Select(goalColumns...).
		From("learning_goals").
		Where(squirrel.Eq{"profile_id": profileID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	var goals []models.LearningGoal
	if err := r.db.SelectContext(ctx, &goals, query, args...); err != nil {
		log.Error("failed to list goals: %v", err)
		return nil, err
	}
	return goals, nil
}
