package main

import (
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}

		log.Info("applying migrations: driver=%s", cfg.DBDriver)
		database, err := openDatabase(cmd.Context(), cfg)
		if err != nil {
			log.Error("%v", err)
			return err
		}
		defer database.Close()

		log.Info("database is up to date")
		return nil
	},
}
