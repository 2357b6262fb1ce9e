// Package scoring computes the outcome of a simulation round locally.
package scoring

import (
	"context"
	"math/rand/v2"
	"sync"
)

const (
	baseMin    = 60
	baseSpan   = 30 // base is drawn from [60, 90)
	roundBonus = 2
	maxScore   = 100
	minScore   = 0
)

// Input identifies the round being scored. OptionID does not influence the
// result; it is carried for prompts and persistence.
type Input struct {
	UserID     string
	ScenarioID string
	OptionID   string
	Round      int
}

// Outcome is the scored result of one round.
type Outcome struct {
	Feedback     string
	Score        int
	SkillsGained map[string]int
	// AIGenerated is true when Feedback came from the language model.
	AIGenerated bool
	// Degraded is true when the model was asked for feedback and failed.
	Degraded bool
}

// Strategy scores a round. Implementations never fail.
type Strategy interface {
	Score(ctx context.Context, in Input) Outcome
}

// SkillSets are the skill-to-delta mappings a round can award.
var SkillSets = []map[string]int{
	{"leadership": 5, "financial_literacy": 3},
	{"creativity": 4, "problem_solving": 4},
	{"communication": 5, "teamwork": 3},
	{"strategic_thinking": 6},
	{"risk_management": 4, "financial_literacy": 2},
}

// roundCap is the largest round whose bonus can still move a score across
// the full range. Inputs past it saturate before the arithmetic.
const roundCap = (maxScore - minScore) / roundBonus

// ComputeScore applies the round bonus to base and clamps to [0, 100].
func ComputeScore(base, round int) int {
	round = max(-roundCap, min(round, roundCap))
	base = max(minScore-roundBonus*roundCap, min(base, maxScore+roundBonus*roundCap))
	score := base + roundBonus*round
	if score > maxScore {
		return maxScore
	}
	if score < minScore {
		return minScore
	}
	return score
}

// lockedRand serializes access to a *rand.Rand shared across requests.
type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newLockedRand(src rand.Source) *lockedRand {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &lockedRand{rng: rand.New(src)}
}

func (l *lockedRand) with(fn func(*rand.Rand)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.rng)
}

func copySkills(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
