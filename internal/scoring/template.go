package scoring

import (
	"context"
	"math/rand/v2"

	"github.com/vytor/founderlab/internal/fallback"
)

// TemplateStrategy draws the base score, the skill set and the feedback text
// uniformly at random.
type TemplateStrategy struct {
	rand *lockedRand
}

// NewTemplateStrategy creates a TemplateStrategy. A nil src seeds from the
// runtime's random source.
func NewTemplateStrategy(src rand.Source) *TemplateStrategy {
	return &TemplateStrategy{rand: newLockedRand(src)}
}

func (s *TemplateStrategy) Score(_ context.Context, in Input) Outcome {
	var out Outcome
	s.rand.with(func(rng *rand.Rand) {
		base := baseMin + rng.IntN(baseSpan)
		out.Score = ComputeScore(base, in.Round)
		out.SkillsGained = copySkills(SkillSets[rng.IntN(len(SkillSets))])
		out.Feedback = fallback.DecisionFeedback(rng)
	})
	return out
}
