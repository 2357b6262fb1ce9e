package services

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/vytor/founderlab/internal/errors"
	"github.com/vytor/founderlab/internal/logger"
	"github.com/vytor/founderlab/internal/models"
	"github.com/vytor/founderlab/internal/repository"
)

const (
	// DefaultQuizTotal is the interest assessment length when none is sent.
	DefaultQuizTotal = 3
	// DefaultGoalCategory is stored for goals submitted without a category.
	DefaultGoalCategory = "general"
)

// SaveProfileRequest is the body of a save-profile call.
type SaveProfileRequest struct {
	UserID             string             `json:"userId"`
	InterestArea       string             `json:"interestArea"`
	SkillLevel         string             `json:"skillLevel,omitempty"`
	Motivation         string             `json:"motivation,omitempty"`
	LearningPreference string             `json:"learningPreference,omitempty"`
	QuizScore          *int               `json:"quizScore,omitempty"`
	QuizTotal          *int               `json:"quizTotal,omitempty"`
	Goals              []models.GoalInput `json:"goals,omitempty"`
}

// SaveProfileSteps reports every write of the save-profile saga.
type SaveProfileSteps struct {
	Profile    StepStatus `json:"profile"`
	QuizResult StepStatus `json:"quizResult"`
	Goals      StepStatus `json:"goals"`
	CareerPath StepStatus `json:"careerPath"`
}

// SaveProfileResult is the stored profile plus per-step outcomes.
type SaveProfileResult struct {
	Profile *models.OnboardingProfile `json:"profile"`
	Steps   SaveProfileSteps          `json:"steps"`
}

// ProfileView is a stored profile with its goals and quiz history.
// CareerPath is read from the users table and is absent when no user row
// exists or the lookup fails.
type ProfileView struct {
	Profile     *models.OnboardingProfile `json:"profile"`
	Goals       []models.LearningGoal     `json:"goals"`
	QuizResults []models.QuizResult       `json:"quizResults"`
	CareerPath  *string                   `json:"careerPath,omitempty"`
}

// OnboardingService persists onboarding answers.
type OnboardingService interface {
	// SaveProfile upserts the profile, which must succeed, then records the
	// quiz result, goals and career path best-effort.
	SaveProfile(ctx context.Context, req SaveProfileRequest) (*SaveProfileResult, error)
	GetProfile(ctx context.Context, userID string) (*ProfileView, error)
}

type onboardingService struct {
	users    repository.UserRepository
	profiles repository.ProfileRepository
	goals    repository.GoalRepository
	quizzes  repository.QuizResultRepository
}

// NewOnboardingService creates a new OnboardingService
func NewOnboardingService(
	users repository.UserRepository,
	profiles repository.ProfileRepository,
	goals repository.GoalRepository,
	quizzes repository.QuizResultRepository,
) OnboardingService {
	return &onboardingService{users: users, profiles: profiles, goals: goals, quizzes: quizzes}
}

func (s *onboardingService) SaveProfile(ctx context.Context, req SaveProfileRequest) (*SaveProfileResult, error) {
	log := logger.FromContext(ctx).WithPrefix("onboarding_service")

	goals, err := validateSaveProfile(&req)
	if err != nil {
		return nil, err
	}

	log.Debug("saving profile: user_id=%s, interest_area=%s", req.UserID, req.InterestArea)
	profile, err := s.profiles.Upsert(ctx, models.OnboardingProfile{
		UserID:             req.UserID,
		InterestArea:       req.InterestArea,
		SkillLevel:         req.SkillLevel,
		Motivation:         req.Motivation,
		LearningPreference: req.LearningPreference,
		Completed:          true,
	})
	if err != nil {
		log.Error("failed to save profile for %s: %v", req.UserID, err)
		return nil, errors.NewPersistenceError("profile", err)
	}

	steps := SaveProfileSteps{
		Profile:    StepOK,
		QuizResult: StepSkipped,
		Goals:      StepSkipped,
	}

	// The remaining writes touch disjoint rows. Each reports through steps
	// and never fails the group.
	var g errgroup.Group

	if req.QuizScore != nil {
		g.Go(func() error {
			_, err := s.quizzes.Insert(ctx, models.QuizResult{
				UserID:         req.UserID,
				QuizType:       models.QuizTypeInterestAssessment,
				InterestArea:   req.InterestArea,
				Score:          *req.QuizScore,
				TotalQuestions: *req.QuizTotal,
			})
			if err != nil {
				log.Warn("quiz result not saved for %s: %v", req.UserID, err)
			}
			steps.QuizResult = statusOf(err)
			return nil
		})
	}

	if len(goals) > 0 {
		g.Go(func() error {
			_, err := s.goals.InsertBatch(ctx, profile.ID, goals)
			if err != nil {
				log.Warn("goals not saved for profile %s: %v", profile.ID, err)
			}
			steps.Goals = statusOf(err)
			return nil
		})
	}

	g.Go(func() error {
		steps.CareerPath = s.setCareerPath(ctx, req.UserID, req.InterestArea)
		return nil
	})

	_ = g.Wait()

	log.Info("profile saved for %s: quiz=%s, goals=%s, career_path=%s",
		req.UserID, steps.QuizResult, steps.Goals, steps.CareerPath)
	return &SaveProfileResult{Profile: profile, Steps: steps}, nil
}

func (s *onboardingService) setCareerPath(ctx context.Context, userID, careerPath string) StepStatus {
	log := logger.FromContext(ctx).WithPrefix("onboarding_service")

	found, err := s.users.SetCareerPath(ctx, userID, careerPath)
	if err != nil {
		log.Warn("career path not updated for %s: %v", userID, err)
		return StepFailed
	}
	if !found {
		log.Warn("career path not updated: no user %s", userID)
		return StepFailed
	}
	return StepOK
}

func (s *onboardingService) GetProfile(ctx context.Context, userID string) (*ProfileView, error) {
	log := logger.FromContext(ctx).WithPrefix("onboarding_service")
	log.Debug("getting profile for %s", userID)

	profile, err := s.profiles.GetByUser(ctx, userID)
	if err != nil {
		log.Error("failed to get profile for %s: %v", userID, err)
		return nil, errors.NewInternalError(err)
	}
	if profile == nil {
		return nil, errors.NewNotFoundError("profile", userID)
	}

	goals, err := s.goals.ListByProfile(ctx, profile.ID)
	if err != nil {
		log.Error("failed to list goals for profile %s: %v", profile.ID, err)
		return nil, errors.NewInternalError(err)
	}
	quizzes, err := s.quizzes.ListByUser(ctx, userID)
	if err != nil {
		log.Error("failed to list quiz results for %s: %v", userID, err)
		return nil, errors.NewInternalError(err)
	}

	if goals == nil {
		goals = []models.LearningGoal{}
	}
	if quizzes == nil {
		quizzes = []models.QuizResult{}
	}
	view := &ProfileView{Profile: profile, Goals: goals, QuizResults: quizzes}

	user, err := s.users.Get(ctx, userID)
	switch {
	case err != nil:
		log.Warn("career path unavailable for %s: %v", userID, err)
	case user != nil:
		view.CareerPath = user.CareerPath
	}
	return view, nil
}

// validateSaveProfile checks req, fills quiz defaults and returns the
// goals to insert.
func validateSaveProfile(req *SaveProfileRequest) ([]models.GoalInput, error) {
	if err := requireFields(
		field{"userId", req.UserID},
		field{"interestArea", req.InterestArea},
	); err != nil {
		return nil, err
	}
	if err := validateSkillLevel(req.SkillLevel, false); err != nil {
		return nil, err
	}
	if err := validateLearningPreference(req.LearningPreference); err != nil {
		return nil, err
	}

	if req.QuizTotal == nil {
		total := DefaultQuizTotal
		req.QuizTotal = &total
	}
	if *req.QuizTotal < 1 {
		return nil, errors.NewValidationError("quizTotal", "must be at least 1")
	}
	if req.QuizScore != nil && (*req.QuizScore < 0 || *req.QuizScore > *req.QuizTotal) {
		return nil, errors.NewValidationError("quizScore", fmt.Sprintf("must be between 0 and %d", *req.QuizTotal))
	}

	goals := make([]models.GoalInput, 0, len(req.Goals))
	for i, g := range req.Goals {
		text := strings.TrimSpace(g.Text)
		if text == "" {
			return nil, errors.NewValidationError(fmt.Sprintf("goals[%d].text", i), "cannot be empty")
		}
		category := strings.TrimSpace(g.Category)
		if category == "" {
			category = DefaultGoalCategory
		}
		goals = append(goals, models.GoalInput{Text: text, Category: category})
	}
	return goals, nil
}
