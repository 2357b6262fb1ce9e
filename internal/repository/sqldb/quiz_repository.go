package sqldb

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/founderlab/internal/db"
	"github.com/vytor/founderlab/internal/logger"
	"github.com/vytor/founderlab/internal/models"
	"github.com/vytor/founderlab/internal/repository"
)

var quizColumns = []string{"id", "user_id", "quiz_type", "interest_area", "score", "total_questions", "completed_at"}

type quizResultRepository struct {
	db *db.DB
}

// NewQuizResultRepository creates a new QuizResultRepository implementation
func NewQuizResultRepository(d *db.DB) repository.QuizResultRepository {
	return &quizResultRepository{db: d}
}

func (r *quizResultRepository) Insert(ctx context.Context, q models.QuizResult) (*models.QuizResult, error) {
	log := logger.FromContext(ctx).WithPrefix("quiz_repo")

	q.ID = newID()
	q.CompletedAt = r.db.Timestamp()

	query, args, err := r.db.Builder().
		Insert("quiz_results").
		Columns(quizColumns...).
		Values(q.ID, q.UserID, q.QuizType, q.InterestArea, q.Score, q.TotalQuestions, q.CompletedAt).
		ToSql()
	if err != nil {
		return nil, err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Error("failed to insert quiz result: %v", err)
		return nil, err
	}
	log.Debug("quiz result inserted: id=%s, user_id=%s, score=%d/%d", q.ID, q.UserID, q.Score, q.TotalQuestions)
	return &q, nil
}

func (r *quizResultRepository) ListByUser(ctx context.Context, userID string) ([]models.QuizResult, error) {
	log := logger.FromContext(ctx).WithPrefix("quiz_repo")

	query, args, err := r.db.Builder().
		Select(quizColumns...).
		From("quiz_results").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("completed_at DESC", "id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	var results []models.QuizResult
	if err := r.db.SelectContext(ctx, &results, query, args...); err != nil {
		log.Error("failed to list quiz results: %v", err)
		return nil, err
	}
	return results, nil
}
