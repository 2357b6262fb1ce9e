package scoring_test

import (
	"context"
	"math"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/founderlab/internal/fallback"
	"github.com/vytor/founderlab/internal/llm"
	"github.com/vytor/founderlab/internal/scoring"
)

func TestComputeScore(t *testing.T) {
	tests := []struct {
		base, round, want int
	}{
		{base: 60, round: 1, want: 62},
		{base: 89, round: 1, want: 91},
		{base: 75, round: 10, want: 95},
		{base: 89, round: 6, want: 100},
		{base: 60, round: 50, want: 100},
		{base: 0, round: -10, want: 0},
		{base: 60, round: math.MaxInt, want: 100},
		{base: 89, round: 1 << 62, want: 100},
		{base: 75, round: math.MaxInt / 2, want: 100},
		{base: 75, round: math.MinInt, want: 0},
		{base: math.MaxInt, round: math.MaxInt, want: 100},
		{base: math.MinInt, round: 1, want: 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, scoring.ComputeScore(tt.base, tt.round), "base=%d round=%d", tt.base, tt.round)
	}
}

func TestTemplateStrategy_ScoreBounds(t *testing.T) {
	s := scoring.NewTemplateStrategy(rand.NewPCG(7, 11))
	ctx := context.Background()

	for round := 1; round <= 25; round++ {
		for i := 0; i < 50; i++ {
			out := s.Score(ctx, scoring.Input{Round: round})

			base := out.Score - 2*round
			if out.Score < 100 {
				assert.GreaterOrEqual(t, base, 60)
				assert.Less(t, base, 90)
			}
			assert.GreaterOrEqual(t, out.Score, 0)
			assert.LessOrEqual(t, out.Score, 100)
			assert.GreaterOrEqual(t, out.Score, min(100, 60+2*round))
		}
	}
}

func TestTemplateStrategy_HugeRoundSaturates(t *testing.T) {
	s := scoring.NewTemplateStrategy(rand.NewPCG(7, 11))

	for _, round := range []int{1 << 62, math.MaxInt} {
		out := s.Score(context.Background(), scoring.Input{Round: round})
		assert.Equal(t, 100, out.Score, "round=%d", round)
	}
}

func TestTemplateStrategy_SkillsAndFeedbackFromFixedSets(t *testing.T) {
	s := scoring.NewTemplateStrategy(rand.NewPCG(1, 1))

	for i := 0; i < 100; i++ {
		out := s.Score(context.Background(), scoring.Input{Round: 1})
		assert.Contains(t, scoring.SkillSets, out.SkillsGained)
		assert.Contains(t, fallback.DecisionTemplates, out.Feedback)
		assert.False(t, out.AIGenerated)
		assert.False(t, out.Degraded)
	}
}

func TestTemplateStrategy_SkillsAreCopied(t *testing.T) {
	s := scoring.NewTemplateStrategy(rand.NewPCG(3, 4))

	out := s.Score(context.Background(), scoring.Input{Round: 1})
	for k := range out.SkillsGained {
		out.SkillsGained[k] = 999
	}
	for _, set := range scoring.SkillSets {
		for _, v := range set {
			assert.NotEqual(t, 999, v)
		}
	}
}

func TestTemplateStrategy_Deterministic(t *testing.T) {
	a := scoring.NewTemplateStrategy(rand.NewPCG(42, 42))
	b := scoring.NewTemplateStrategy(rand.NewPCG(42, 42))

	for i := 0; i < 10; i++ {
		in := scoring.Input{Round: i + 1}
		assert.Equal(t, a.Score(context.Background(), in), b.Score(context.Background(), in))
	}
}

func TestTemplateStrategy_ConcurrentUse(t *testing.T) {
	s := scoring.NewTemplateStrategy(nil)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				out := s.Score(context.Background(), scoring.Input{Round: 3})
				assert.GreaterOrEqual(t, out.Score, 66)
			}
		}()
	}
	wg.Wait()
}

func TestAIFeedbackStrategy_UsesModelText(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: "Smart move on pricing."})
	s := scoring.NewAIFeedbackStrategy(scoring.NewTemplateStrategy(rand.NewPCG(5, 5)), llm.NewGateway(mock, 0))

	out := s.Score(context.Background(), scoring.Input{ScenarioID: "lemonade", OptionID: "a", Round: 2})

	assert.Equal(t, "Smart move on pricing.", out.Feedback)
	assert.True(t, out.AIGenerated)
	assert.False(t, out.Degraded)
	assert.GreaterOrEqual(t, out.Score, 64)

	calls := mock.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, 200, calls[0].MaxTokens)
	assert.Contains(t, calls[0].Messages[0].Content, `option "a"`)
}

func TestAIFeedbackStrategy_FallsBackToTemplate(t *testing.T) {
	s := scoring.NewAIFeedbackStrategy(scoring.NewTemplateStrategy(rand.NewPCG(5, 5)), llm.NewGateway(llm.DisabledProvider{}, 0))

	out := s.Score(context.Background(), scoring.Input{Round: 1})

	assert.False(t, out.AIGenerated)
	assert.True(t, out.Degraded)
	assert.Contains(t, fallback.DecisionTemplates, out.Feedback)
}
