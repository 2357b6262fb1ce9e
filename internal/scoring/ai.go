package scoring

import (
	"context"

	"github.com/vytor/founderlab/internal/llm"
	"github.com/vytor/founderlab/internal/logger"
	"github.com/vytor/founderlab/internal/prompts"
)

// AIFeedbackStrategy keeps the template score and skills but asks the model
// for the feedback text, keeping the template text when the call fails.
type AIFeedbackStrategy struct {
	base    *TemplateStrategy
	gateway *llm.Gateway
}

func NewAIFeedbackStrategy(base *TemplateStrategy, gateway *llm.Gateway) *AIFeedbackStrategy {
	return &AIFeedbackStrategy{base: base, gateway: gateway}
}

func (s *AIFeedbackStrategy) Score(ctx context.Context, in Input) Outcome {
	out := s.base.Score(ctx, in)

	p := prompts.DecisionFeedback(prompts.DecisionInput{
		ScenarioID:   in.ScenarioID,
		OptionID:     in.OptionID,
		Round:        in.Round,
		OutcomeScore: out.Score,
		SkillsGained: out.SkillsGained,
	})
	text, err := s.gateway.Complete(llm.WithPurpose(ctx, "decision_feedback"), p.System, p.User, llm.Options{
		MaxTokens:   p.Profile.MaxTokens,
		Temperature: p.Profile.Temperature,
	})
	if err != nil {
		logger.FromContext(ctx).WithPrefix("scoring").WithError(err).
			Warn("ai decision feedback unavailable, using template text")
		out.Degraded = true
		return out
	}

	out.Feedback = text
	out.AIGenerated = true
	return out
}
