package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vytor/founderlab/internal/models"
	"github.com/vytor/founderlab/internal/repository"
	"github.com/vytor/founderlab/internal/repository/sqldb"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage rows in the users table",
}

var userAddOpts struct {
	id    string
	email string
	role  string
}

var userAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a user row for local development",
	Long: "Creates a users row so onboarding can record a career path when no " +
		"external auth service owns the table, as with a local SQLite database.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}

		database, err := openDatabase(cmd.Context(), cfg)
		if err != nil {
			log.Error("%v", err)
			return err
		}
		defer database.Close()

		u, err := addUser(cmd.Context(), sqldb.NewUserRepository(database),
			userAddOpts.id, userAddOpts.email, userAddOpts.role)
		if err != nil {
			log.Error("%v", err)
			return err
		}
		log.Info("user created: id=%s, email=%s, role=%s", u.ID, u.Email, u.Role)
		fmt.Fprintln(cmd.OutOrStdout(), u.ID)
		return nil
	},
}

func init() {
	userAddCmd.Flags().StringVar(&userAddOpts.id, "id", "", "user id (generated when empty)")
	userAddCmd.Flags().StringVar(&userAddOpts.email, "email", "", "email address")
	userAddCmd.Flags().StringVar(&userAddOpts.role, "role", "student", "user role")
	userCmd.AddCommand(userAddCmd)
}

func addUser(ctx context.Context, users repository.UserRepository, id, email, role string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, fmt.Errorf("--email is required")
	}
	u, err := users.Create(ctx, models.User{
		ID:    strings.TrimSpace(id),
		Email: email,
		Role:  strings.TrimSpace(role),
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}
