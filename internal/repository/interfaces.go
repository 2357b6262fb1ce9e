package repository

import (
	"context"

	"github.com/vytor/founderlab/internal/models"
)

// UserRepository reads and denormalizes onto the collaborator-owned users table.
type UserRepository interface {
	Get(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, user models.User) (*models.User, error)
	// SetCareerPath reports false when no user row matched.
	SetCareerPath(ctx context.Context, userID, careerPath string) (bool, error)
}

// ProfileRepository handles onboarding profile data access
type ProfileRepository interface {
	Upsert(ctx context.Context, profile models.OnboardingProfile) (*models.OnboardingProfile, error)
	GetByUser(ctx context.Context, userID string) (*models.OnboardingProfile, error)
}

// GoalRepository handles learning goal data access
type GoalRepository interface {
	InsertBatch(ctx context.Context, profileID string, goals []models.GoalInput) ([]models.LearningGoal, error)
	ListByProfile(ctx context.Context, profileID string) ([]models.LearningGoal, error)
}

// QuizResultRepository handles quiz result data access
type QuizResultRepository interface {
	Insert(ctx context.Context, result models.QuizResult) (*models.QuizResult, error)
	ListByUser(ctx context.Context, userID string) ([]models.QuizResult, error)
}

// DecisionRepository handles simulation decision data access
type DecisionRepository interface {
	Insert(ctx context.Context, decision models.Decision) (*models.Decision, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]models.Decision, error)
}

// ProgressRepository handles per-skill progress data access
type ProgressRepository interface {
	// ApplyOutcome folds one scored scenario into the (user, skill) row in a
	// single statement: level += delta, count += 1, average stays the mean.
	ApplyOutcome(ctx context.Context, userID, skill string, delta, score int) (*models.Progress, error)
	ListByUser(ctx context.Context, userID string) ([]models.Progress, error)
}

// InteractionRepository handles AI interaction log data access
type InteractionRepository interface {
	// Insert stores the row under user_id when userKey is a UUID and under
	// participant_id otherwise.
	Insert(ctx context.Context, userKey string, interaction models.AIInteraction) (*models.AIInteraction, error)
	ListByUserKey(ctx context.Context, userKey string, limit int) ([]models.AIInteraction, error)
}
