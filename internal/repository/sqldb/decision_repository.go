package sqldb

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/founderlab/internal/db"
	"github.com/vytor/founderlab/internal/logger"
	"github.com/vytor/founderlab/internal/models"
	"github.com/vytor/founderlab/internal/repository"
)

var decisionColumns = []string{
	"id", "user_id", "scenario_id", "session_id", "option_id", "round",
	"feedback", "outcome_score", "skills_gained", "created_at",
}

type decisionRepository struct {
	db *db.DB
}

// NewDecisionRepository creates a new DecisionRepository implementation
func NewDecisionRepository(d *db.DB) repository.DecisionRepository {
	return &decisionRepository{db: d}
}

func (r *decisionRepository) Insert(ctx context.Context, d models.Decision) (*models.Decision, error) {
	log := logger.FromContext(ctx).WithPrefix("decision_repo")

	d.ID = newID()
	d.CreatedAt = r.db.Timestamp()
	if d.SkillsGained == nil {
		d.SkillsGained = models.SkillDeltas{}
	}

	query, args, err := r.db.Builder().
		Insert("decisions").
		Columns(decisionColumns...).
		Values(d.ID, d.UserID, d.ScenarioID, d.SessionID, d.OptionID, d.Round,
			d.Feedback, d.OutcomeScore, d.SkillsGained, d.CreatedAt).
		ToSql()
	if err != nil {
		return nil, err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Error("failed to insert decision: %v", err)
		return nil, err
	}
	log.Debug("decision inserted: id=%s, user_id=%s, round=%d, score=%d", d.ID, d.UserID, d.Round, d.OutcomeScore)
	return &d, nil
}

func (r *decisionRepository) ListByUser(ctx context.Context, userID string, limit int) ([]models.Decision, error) {
	log := logger.FromContext(ctx).WithPrefix("decision_repo")

	q := r.db.Builder().
		Select(decisionColumns...).
		From("decisions").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "round DESC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var decisions []models.Decision
	if err := r.db.SelectContext(ctx, &decisions, query, args...); err != nil {
		log.Error("failed to list decisions: %v", err)
		return nil, err
	}
	return decisions, nil
}
