package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/founderlab/internal/db"
	"github.com/vytor/founderlab/internal/logger"
	"github.com/vytor/founderlab/internal/models"
	"github.com/vytor/founderlab/internal/repository"
)

var profileColumns = []string{
	"id", "user_id", "interest_area", "skill_level", "motivation",
	"learning_preference", "completed", "created_at", "updated_at",
}

// Optional fields keep their stored value when the new submission leaves them blank.
const profileUpsertSuffix = `
ON CONFLICT (user_id) DO UPDATE SET
    interest_area = excluded.interest_area,
    skill_level = CASE WHEN excluded.skill_level = '' THEN onboarding_profiles.skill_level ELSE excluded.skill_level END,
    motivation = CASE WHEN excluded.motivation = '' THEN onboarding_profiles.motivation ELSE excluded.motivation END,
    learning_preference = CASE WHEN excluded.learning_preference = '' THEN onboarding_profiles.learning_preference ELSE excluded.learning_preference END,
    completed = excluded.completed,
    updated_at = excluded.updated_at
RETURNING `

type profileRepository struct {
	db *db.DB
}

// NewProfileRepository creates a new ProfileRepository implementation
func NewProfileRepository(d *db.DB) repository.ProfileRepository {
	return &profileRepository{db: d}
}

func (r *profileRepository) Upsert(ctx context.Context, p models.OnboardingProfile) (*models.OnboardingProfile, error) {
	log := logger.FromContext(ctx).WithPrefix("profile_repo")
	log.Debug("upserting onboarding profile for user: %s", p.UserID)

	now := r.db.Timestamp()
	query, args, err := r.db.Builder().
		Insert("onboarding_profiles").
		Columns(profileColumns...).
		Values(newID(), p.UserID, p.InterestArea, p.SkillLevel, p.Motivation,
			p.LearningPreference, p.Completed, now, now).
		Suffix(profileUpsertSuffix + strings.Join(profileColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, err
	}

	var saved models.OnboardingProfile
	if err := r.db.GetContext(ctx, &saved, query, args...); err != nil {
		log.Error("failed to upsert profile: %v", err)
		return nil, err
	}
	log.Debug("profile upserted: id=%s", saved.ID)
	return &saved, nil
}

func (r *profileRepository) GetByUser(ctx context.Context, userID string) (*models.OnboardingProfile, error) {
	log := logger.FromContext(ctx).WithPrefix("profile_repo")
	log.Debug("getting profile for user: %s", userID)

	query, args, err := r.db.Builder().
		Select(profileColumns...).
		From("onboarding_profiles").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var p models.OnboardingProfile
	err = r.db.GetContext(ctx, &p, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("profile not found for user: %s", userID)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get profile: %v", err)
		return nil, err
	}
	return &p, nil
}
