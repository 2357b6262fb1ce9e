package prompts

import (
	"fmt"
	"strings"
)

// DecisionInput describes one scored simulation round.
type DecisionInput struct {
	ScenarioID   string
	OptionID     string
	Round        int
	OutcomeScore int
	SkillsGained map[string]int
}

// DecisionFeedback builds the prompt for feedback on a simulation decision.
func DecisionFeedback(in DecisionInput) Prompt {
	var b strings.Builder

	fmt.Fprintf(&b, "Simulation %q, round %d. The student picked option %q.\n", in.ScenarioID, in.Round, in.OptionID)
	fmt.Fprintf(&b, "Outcome score: %d out of 100.\n", in.OutcomeScore)
	if len(in.SkillsGained) > 0 {
		b.WriteString("Skills practiced:\n")
		for _, name := range sortedSkills(in.SkillsGained) {
			fmt.Fprintf(&b, "- %s (+%d)\n", humanize(name), in.SkillsGained[name])
		}
	}
	fmt.Fprintf(&b, "\nGive feedback on this decision in at most %d words: one thing that worked and one thing to consider next round.", DecisionFeedbackWords)

	return Prompt{
		System:  mentorPersona,
		User:    b.String(),
		Profile: DecisionFeedbackProfile,
	}
}
