package sqldb

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/founderlab/internal/db"
	"github.com/vytor/founderlab/internal/logger"
	"github.com/vytor/founderlab/internal/models"
	"github.com/vytor/founderlab/internal/repository"
)

var userColumns = []string{"id", "email", "role", "career_path", "created_at", "updated_at"}

type userRepository struct {
	db *db.DB
}

// NewUserRepository creates a new UserRepository implementation
func NewUserRepository(d *db.DB) repository.UserRepository {
	return &userRepository{db: d}
}

func (r *userRepository) Get(ctx context.Context, id string) (*models.User, error) {
	log := logger.FromContext(ctx).WithPrefix("user_repo")
	log.Debug("getting user: id=%s", id)

	query, args, err := r.db.Builder().
		Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var u models.User
	err = r.db.GetContext(ctx, &u, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("user not found: id=%s", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get user: %v", err)
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) Create(ctx context.Context, user models.User) (*models.User, error) {
	log := logger.FromContext(ctx).WithPrefix("user_repo")

	if user.ID == "" {
		user.ID = newID()
	}
	if user.Role == "" {
		user.Role = "student"
	}
	now := r.db.Timestamp()
	user.CreatedAt, user.UpdatedAt = now, now

	query, args, err := r.db.Builder().
		Insert("users").
		Columns(userColumns...).
		Values(user.ID, user.Email, user.Role, user.CareerPath, user.CreatedAt, user.UpdatedAt).
		ToSql()
	if err != nil {
		return nil, err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Error("failed to create user: %v", err)
		return nil, err
	}
	log.Debug("user created: id=%s", user.ID)
	return &user, nil
}

func (r *userRepository) SetCareerPath(ctx context.Context, userID, careerPath string) (bool, error) {
	log := logger.FromContext(ctx).WithPrefix("user_repo")
	log.Debug("setting career path: user_id=%s, career_path=%s", userID, careerPath)

	query, args, err := r.db.Builder().
		Update("users").
		Set("career_path", careerPath).
		Set("updated_at", r.db.Timestamp()).
		Where(squirrel.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return false, err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to set career path: %v", err)
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
