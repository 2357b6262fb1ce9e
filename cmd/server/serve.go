package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/vytor/founderlab/internal/api"
	"github.com/vytor/founderlab/internal/config"
	"github.com/vytor/founderlab/internal/llm"
	"github.com/vytor/founderlab/internal/repository/sqldb"
	"github.com/vytor/founderlab/internal/scoring"
	"github.com/vytor/founderlab/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, log, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	log.Info("===========================================")
	log.Info("FounderLab Server Starting")
	log.Info("===========================================")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_driver=%s", cfg.DBDriver)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("ai_provider=%s", cfg.AI.Provider)
	log.Debug("ai_timeout=%s", cfg.AI.Timeout)
	log.Debug("simulation_scoring=%s", cfg.SimulationScoring)

	database, err := openDatabase(ctx, cfg)
	if err != nil {
		log.Error("%v", err)
		return err
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	provider, err := llm.NewProvider(ctx, llmConfig(cfg.AI))
	if err != nil {
		log.Error("failed to initialize AI provider: %v", err)
		return err
	}
	gateway := llm.NewGateway(provider, cfg.AI.Timeout)
	log.Info("AI gateway ready: provider=%s, model=%s", cfg.AI.Provider, provider.ModelID())

	// Initialize repositories
	users := sqldb.NewUserRepository(database)
	profiles := sqldb.NewProfileRepository(database)
	goals := sqldb.NewGoalRepository(database)
	quizzes := sqldb.NewQuizResultRepository(database)
	decisions := sqldb.NewDecisionRepository(database)
	progress := sqldb.NewProgressRepository(database)
	interactionRepo := sqldb.NewInteractionRepository(database)

	// Initialize services
	var strategy scoring.Strategy = scoring.NewTemplateStrategy(nil)
	if cfg.SimulationScoring == config.ScoringAI {
		strategy = scoring.NewAIFeedbackStrategy(scoring.NewTemplateStrategy(nil), gateway)
	}
	interactionService := services.NewInteractionService(interactionRepo)

	srv := &api.Server{
		AIService:          services.NewAIService(gateway, interactionService),
		InteractionService: interactionService,
		OnboardingService:  services.NewOnboardingService(users, profiles, goals, quizzes),
		SimulationService:  services.NewSimulationService(strategy, decisions, progress),
		ProgressService:    services.NewProgressService(progress, decisions),
		DB:                 database,
	}

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.AI.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case sig := <-stop:
		log.Info("received signal %v, initiating graceful shutdown", sig)
	case err := <-serveErr:
		if err != nil {
			log.Error("HTTP server error: %v", err)
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
		return err
	}

	log.Info("===========================================")
	log.Info("FounderLab Server Stopped")
	log.Info("===========================================")
	return nil
}
