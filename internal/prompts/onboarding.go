package prompts

import (
	"fmt"
	"strings"
)

// Step identifies the onboarding stage feedback is requested for.
type Step string

const (
	StepInterestSelected Step = "interest_selected"
	StepQuizCompleted    Step = "quiz_completed"
	StepGoalsSet         Step = "goals_set"
	StepProfileComplete  Step = "profile_complete"
)

var steps = []Step{StepInterestSelected, StepQuizCompleted, StepGoalsSet, StepProfileComplete}

// Steps lists every known onboarding step.
func Steps() []Step {
	out := make([]Step, len(steps))
	copy(out, steps)
	return out
}

// ParseStep resolves s to a known Step.
func ParseStep(s string) (Step, bool) {
	for _, st := range steps {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// OnboardingInput carries the fields the onboarding feedback prompt can use.
type OnboardingInput struct {
	Step         Step
	InterestArea string
	SkillLevel   string
	Goals        []string
	QuizScore    *int
	UserName     string
}

// OnboardingFeedback builds the short encouragement prompt for one step.
func OnboardingFeedback(in OnboardingInput) Prompt {
	var b strings.Builder

	name := strings.TrimSpace(in.UserName)
	if name == "" {
		name = "the student"
	}

	switch in.Step {
	case StepInterestSelected:
		fmt.Fprintf(&b, "%s just chose %q as the area they want to explore.\n", name, in.InterestArea)
		b.WriteString("Celebrate the choice and mention one exciting kind of business in that area a teenager could start.\n")
	case StepQuizCompleted:
		fmt.Fprintf(&b, "%s finished the interest assessment quiz for %q.\n", name, in.InterestArea)
		if in.QuizScore != nil {
			fmt.Fprintf(&b, "They scored %d.\n", *in.QuizScore)
		}
		b.WriteString("Recognize the effort, whatever the score, and say what the result suggests about their strengths.\n")
	case StepGoalsSet:
		fmt.Fprintf(&b, "%s set these goals for their %q journey:\n", name, in.InterestArea)
		if len(in.Goals) == 0 {
			b.WriteString("- (no goals listed)\n")
		} else {
			bulletList(&b, in.Goals)
		}
		b.WriteString("Affirm the goals and suggest one tiny first step toward the most ambitious one.\n")
	case StepProfileComplete:
		fmt.Fprintf(&b, "%s completed onboarding. Interest area: %q.", name, in.InterestArea)
		if in.SkillLevel != "" {
			fmt.Fprintf(&b, " Self-assessed level: %s.", in.SkillLevel)
		}
		b.WriteString("\nWelcome them to the platform and tell them what to expect from their first simulation.\n")
	}

	fmt.Fprintf(&b, "\nRespond in at most %d words, in a friendly tone, without headings or lists.", OnboardingFeedbackWords)

	return Prompt{
		System:  mentorPersona,
		User:    b.String(),
		Profile: OnboardingFeedbackProfile,
	}
}
