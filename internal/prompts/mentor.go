package prompts

import (
	"fmt"
	"strings"
)

// MentorContext is optional background the client sends with a chat turn.
type MentorContext struct {
	InterestArea    string
	SkillLevel      string
	CurrentScenario string
}

// MentorChat builds the prompt for one mentor-chat turn. The user message is
// sent verbatim as the final turn.
func MentorChat(message string, mc MentorContext) Prompt {
	var b strings.Builder
	b.WriteString(mentorPersona)

	var bg []string
	if mc.InterestArea != "" {
		bg = append(bg, fmt.Sprintf("interested in %s", mc.InterestArea))
	}
	if mc.SkillLevel != "" {
		bg = append(bg, fmt.Sprintf("%s level", mc.SkillLevel))
	}
	if mc.CurrentScenario != "" {
		bg = append(bg, fmt.Sprintf("currently working through the %q simulation", mc.CurrentScenario))
	}
	if len(bg) > 0 {
		fmt.Fprintf(&b, "\n\nAbout this student: %s.", strings.Join(bg, "; "))
	}
	fmt.Fprintf(&b, "\n\nKeep every reply under %d words. End with a question or a concrete next step when it helps.", MentorReplyWords)

	return Prompt{
		System:  b.String(),
		User:    message,
		Profile: MentorChatProfile,
	}
}
