package prompts_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vytor/founderlab/internal/prompts"
)

func TestParseStep(t *testing.T) {
	for _, st := range prompts.Steps() {
		got, ok := prompts.ParseStep(string(st))
		assert.True(t, ok)
		assert.Equal(t, st, got)
	}

	_, ok := prompts.ParseStep("graduation")
	assert.False(t, ok)
	_, ok = prompts.ParseStep("")
	assert.False(t, ok)
}

func TestOnboardingFeedback_EveryStep(t *testing.T) {
	score := 2
	for _, st := range prompts.Steps() {
		t.Run(string(st), func(t *testing.T) {
			p := prompts.OnboardingFeedback(prompts.OnboardingInput{
				Step:         st,
				InterestArea: "Tech",
				SkillLevel:   "beginner",
				Goals:        []string{"Learn coding"},
				QuizScore:    &score,
				UserName:     "Ana",
			})

			assert.NotEmpty(t, p.System)
			assert.Contains(t, p.User, "Tech")
			assert.Contains(t, p.User, "at most 50 words")
			assert.Equal(t, prompts.OnboardingFeedbackProfile, p.Profile)
			assert.Equal(t, 150, p.Profile.MaxTokens)
			assert.InDelta(t, 0.7, p.Profile.Temperature, 1e-9)
		})
	}
}

func TestOnboardingFeedback_StepSpecificFields(t *testing.T) {
	score := 3
	quiz := prompts.OnboardingFeedback(prompts.OnboardingInput{Step: prompts.StepQuizCompleted, InterestArea: "Food", QuizScore: &score})
	assert.Contains(t, quiz.User, "They scored 3.")
	assert.Contains(t, quiz.User, "the student")

	goals := prompts.OnboardingFeedback(prompts.OnboardingInput{Step: prompts.StepGoalsSet, InterestArea: "Food", Goals: []string{"Sell cookies", " "}})
	assert.Contains(t, goals.User, "- Sell cookies\n")
	assert.Equal(t, 1, strings.Count(goals.User, "- "))
}

func TestMentorChat(t *testing.T) {
	p := prompts.MentorChat("How do I price my cupcakes?", prompts.MentorContext{
		InterestArea:    "Food",
		CurrentScenario: "bake-sale",
	})

	assert.Equal(t, "How do I price my cupcakes?", p.User)
	assert.Contains(t, p.System, "interested in Food")
	assert.Contains(t, p.System, `"bake-sale" simulation`)
	assert.Contains(t, p.System, "under 150 words")
	assert.Equal(t, 500, p.Profile.MaxTokens)
	assert.InDelta(t, 0.8, p.Profile.Temperature, 1e-9)

	bare := prompts.MentorChat("hi", prompts.MentorContext{})
	assert.NotContains(t, bare.System, "About this student")
}

func TestLearningPath(t *testing.T) {
	p := prompts.LearningPath(prompts.LearningPathInput{
		InterestArea:  "Fashion",
		SkillLevel:    "intermediate",
		LearningStyle: "visual",
		Goals:         []string{"Open an online shop"},
	})

	assert.Contains(t, p.User, "Interest area: Fashion")
	assert.Contains(t, p.User, "exactly 5 modules")
	assert.Contains(t, p.User, "- Open an online shop")
	assert.Equal(t, 2000, p.Profile.MaxTokens)
	assert.Equal(t, "learning-path", prompts.LearningPathSchema.Name)
}

func TestDecisionFeedback(t *testing.T) {
	p := prompts.DecisionFeedback(prompts.DecisionInput{
		ScenarioID:   "lemonade",
		OptionID:     "raise-prices",
		Round:        2,
		OutcomeScore: 78,
		SkillsGained: map[string]int{"risk_management": 4, "financial_literacy": 2},
	})

	assert.Contains(t, p.User, "round 2")
	assert.Contains(t, p.User, "78 out of 100")
	assert.Less(t, strings.Index(p.User, "financial literacy (+2)"), strings.Index(p.User, "risk management (+4)"))
	assert.Contains(t, p.User, "at most 60 words")
	assert.Equal(t, 200, p.Profile.MaxTokens)
}
