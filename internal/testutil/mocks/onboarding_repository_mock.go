package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/founderlab/internal/models"
)

// MockProfileRepository is a mock implementation of repository.ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Upsert(ctx context.Context, profile models.OnboardingProfile) (*models.OnboardingProfile, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OnboardingProfile), args.Error(1)
}

func (m *MockProfileRepository) GetByUser(ctx context.Context, userID string) (*models.OnboardingProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OnboardingProfile), args.Error(1)
}

// MockGoalRepository is a mock implementation of repository.GoalRepository
type MockGoalRepository struct {
	mock.Mock
}

func (m *MockGoalRepository) InsertBatch(ctx context.Context, profileID string, goals []models.GoalInput) ([]models.LearningGoal, error) {
	args := m.Called(ctx, profileID, goals)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LearningGoal), args.Error(1)
}

func (m *MockGoalRepository) ListByProfile(ctx context.Context, profileID string) ([]models.LearningGoal, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LearningGoal), args.Error(1)
}

// MockQuizResultRepository is a mock implementation of repository.QuizResultRepository
type MockQuizResultRepository struct {
	mock.Mock
}

func (m *MockQuizResultRepository) Insert(ctx context.Context, result models.QuizResult) (*models.QuizResult, error) {
	args := m.Called(ctx, result)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.QuizResult), args.Error(1)
}

func (m *MockQuizResultRepository) ListByUser(ctx context.Context, userID string) ([]models.QuizResult, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.QuizResult), args.Error(1)
}

// MockUserRepository is a mock implementation of repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Get(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user models.User) (*models.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) SetCareerPath(ctx context.Context, userID, careerPath string) (bool, error) {
	args := m.Called(ctx, userID, careerPath)
	return args.Bool(0), args.Error(1)
}
