package sqldb

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/founderlab/internal/db"
	"github.com/vytor/founderlab/internal/logger"
	"github.com/vytor/founderlab/internal/models"
	"github.com/vytor/founderlab/internal/repository"
)

var progressColumns = []string{
	"id", "user_id", "skill_name", "skill_level", "scenarios_completed", "average_score", "updated_at",
}

// The conflict branch reads the stored row and writes the merged row in one
// statement, so two submissions for the same skill cannot both read the
// same prior average.
const progressUpsertSuffix = `
ON CONFLICT (user_id, skill_name) DO UPDATE SET
    average_score = (progress.average_score * progress.scenarios_completed + excluded.average_score) / (progress.scenarios_completed + 1),
    skill_level = progress.skill_level + excluded.skill_level,
    scenarios_completed = progress.scenarios_completed + 1,
    updated_at = excluded.updated_at
RETURNING `

type progressRepository struct {
	db *db.DB
}

// NewProgressRepository creates a new ProgressRepository implementation
func NewProgressRepository(d *db.DB) repository.ProgressRepository {
	return &progressRepository{db: d}
}

func (r *progressRepository) ApplyOutcome(ctx context.Context, userID, skill string, delta, score int) (*models.Progress, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("applying outcome: user_id=%s, skill=%s, delta=%d, score=%d", userID, skill, delta, score)

	query, args, err := r.db.Builder().
		Insert("progress").
		Columns(progressColumns...).
		Values(newID(), userID, skill, delta, 1, float64(score), r.db.Timestamp()).
		Suffix(progressUpsertSuffix + strings.Join(progressColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, err
	}

	var p models.Progress
	if err := r.db.GetContext(ctx, &p, query, args...); err != nil {
		log.Error("failed to apply outcome for skill %s: %v", skill, err)
		return nil, err
	}
	log.Debug("progress updated: skill=%s, level=%d, completed=%d, avg=%.2f",
		p.SkillName, p.SkillLevel, p.ScenariosCompleted, p.AverageScore)
	return &p, nil
}

func (r *progressRepository) ListByUser(ctx context.Context, userID string) ([]models.Progress, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")

	query, args, err := r.db.Builder().
		Select(progressColumns...).
		From("progress").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("skill_name ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []models.Progress
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		log.Error("failed to list progress: %v", err)
		return nil, err
	}
	return rows, nil
}
