package services

import (
	"context"
	"sort"

	"github.com/vytor/founderlab/internal/errors"
	"github.com/vytor/founderlab/internal/logger"
	"github.com/vytor/founderlab/internal/models"
	"github.com/vytor/founderlab/internal/repository"
	"github.com/vytor/founderlab/internal/scoring"
)

// SubmitDecisionRequest is the body of a simulation submit call. Round is a
// pointer so an absent round can be told apart from zero.
type SubmitDecisionRequest struct {
	OptionID   string `json:"optionId"`
	ScenarioID string `json:"scenarioId"`
	UserID     string `json:"userId"`
	Round      *int   `json:"round"`
	SessionID  string `json:"sessionId,omitempty"`
}

// SubmitDecisionSteps reports the decision write and one progress update
// per skill.
type SubmitDecisionSteps struct {
	Decision StepStatus            `json:"decision"`
	Progress map[string]StepStatus `json:"progress"`
}

// SubmitDecisionResult is the scored round.
type SubmitDecisionResult struct {
	Feedback     string              `json:"feedback"`
	OutcomeScore int                 `json:"outcome_score"`
	SkillsGained map[string]int      `json:"skills_gained"`
	Round        int                 `json:"round"`
	Steps        SubmitDecisionSteps `json:"steps"`
	Fallback     bool                `json:"fallback,omitempty"`
}

// SimulationService scores simulation rounds.
type SimulationService interface {
	Submit(ctx context.Context, req SubmitDecisionRequest) (*SubmitDecisionResult, error)
}

type simulationService struct {
	strategy  scoring.Strategy
	decisions repository.DecisionRepository
	progress  repository.ProgressRepository
}

// NewSimulationService creates a new SimulationService
func NewSimulationService(
	strategy scoring.Strategy,
	decisions repository.DecisionRepository,
	progress repository.ProgressRepository,
) SimulationService {
	return &simulationService{strategy: strategy, decisions: decisions, progress: progress}
}

func (s *simulationService) Submit(ctx context.Context, req SubmitDecisionRequest) (*SubmitDecisionResult, error) {
	log := logger.FromContext(ctx).WithPrefix("simulation_service")

	if err := requireFields(
		field{"optionId", req.OptionID},
		field{"scenarioId", req.ScenarioID},
		field{"userId", req.UserID},
	); err != nil {
		return nil, err
	}
	if req.Round == nil {
		return nil, errors.NewMissingFieldsError("round")
	}
	if *req.Round < 1 {
		return nil, errors.NewValidationError("round", "must be at least 1")
	}
	round := *req.Round

	outcome := s.strategy.Score(ctx, scoring.Input{
		UserID:     req.UserID,
		ScenarioID: req.ScenarioID,
		OptionID:   req.OptionID,
		Round:      round,
	})
	log.Debug("round scored: user_id=%s, scenario=%s, round=%d, score=%d, ai=%t, fallback=%t",
		req.UserID, req.ScenarioID, round, outcome.Score, outcome.AIGenerated, outcome.Degraded)

	result := &SubmitDecisionResult{
		Feedback:     outcome.Feedback,
		OutcomeScore: outcome.Score,
		SkillsGained: outcome.SkillsGained,
		Round:        round,
		Fallback:     outcome.Degraded,
		Steps: SubmitDecisionSteps{
			Progress: make(map[string]StepStatus, len(outcome.SkillsGained)),
		},
	}

	decision := models.Decision{
		UserID:       req.UserID,
		ScenarioID:   req.ScenarioID,
		OptionID:     req.OptionID,
		Round:        round,
		Feedback:     outcome.Feedback,
		OutcomeScore: outcome.Score,
		SkillsGained: models.SkillDeltas(outcome.SkillsGained),
	}
	if req.SessionID != "" {
		decision.SessionID = &req.SessionID
	}

	_, err := s.decisions.Insert(ctx, decision)
	result.Steps.Decision = statusOf(err)
	if err != nil {
		log.Warn("decision not saved for %s round %d: %v", req.UserID, round, err)
	}

	for _, skill := range skillNames(outcome.SkillsGained) {
		if err != nil {
			result.Steps.Progress[skill] = StepSkipped
			continue
		}
		_, perr := s.progress.ApplyOutcome(ctx, req.UserID, skill, outcome.SkillsGained[skill], outcome.Score)
		if perr != nil {
			log.Warn("progress not updated for %s/%s: %v", req.UserID, skill, perr)
		}
		result.Steps.Progress[skill] = statusOf(perr)
	}

	return result, nil
}

func skillNames(skills map[string]int) []string {
	names := make([]string, 0, len(skills))
	for name := range skills {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
