package api

import (
	"context"

	"github.com/vytor/founderlab/internal/services"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Server struct {
	AIService          services.AIService
	InteractionService services.InteractionService
	OnboardingService  services.OnboardingService
	SimulationService  services.SimulationService
	ProgressService    services.ProgressService
	DB                 Pinger
}
