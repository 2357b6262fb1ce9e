package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/founderlab/internal/models"
)

// MockDecisionRepository is a mock implementation of repository.DecisionRepository
type MockDecisionRepository struct {
	mock.Mock
}

func (m *MockDecisionRepository) Insert(ctx context.Context, decision models.Decision) (*models.Decision, error) {
	args := m.Called(ctx, decision)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Decision), args.Error(1)
}

func (m *MockDecisionRepository) ListByUser(ctx context.Context, userID string, limit int) ([]models.Decision, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Decision), args.Error(1)
}

// MockProgressRepository is a mock implementation of repository.ProgressRepository
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) ApplyOutcome(ctx context.Context, userID, skill string, delta, score int) (*models.Progress, error) {
	args := m.Called(ctx, userID, skill, delta, score)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Progress), args.Error(1)
}

func (m *MockProgressRepository) ListByUser(ctx context.Context, userID string) ([]models.Progress, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Progress), args.Error(1)
}

// MockInteractionRepository is a mock implementation of repository.InteractionRepository
type MockInteractionRepository struct {
	mock.Mock
}

func (m *MockInteractionRepository) Insert(ctx context.Context, userKey string, interaction models.AIInteraction) (*models.AIInteraction, error) {
	args := m.Called(ctx, userKey, interaction)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AIInteraction), args.Error(1)
}

func (m *MockInteractionRepository) ListByUserKey(ctx context.Context, userKey string, limit int) ([]models.AIInteraction, error) {
	args := m.Called(ctx, userKey, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AIInteraction), args.Error(1)
}
