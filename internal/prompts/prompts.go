// Package prompts builds the system and user prompts sent to the AI gateway.
// Interpolated user data is passed through as opaque text.
package prompts

import (
	"fmt"
	"sort"
	"strings"
)

// CallProfile holds the token and temperature limits of one call type.
type CallProfile struct {
	MaxTokens   int
	Temperature float64
}

var (
	OnboardingFeedbackProfile = CallProfile{MaxTokens: 150, Temperature: 0.7}
	MentorChatProfile         = CallProfile{MaxTokens: 500, Temperature: 0.8}
	LearningPathProfile       = CallProfile{MaxTokens: 2000, Temperature: 0.7}
	DecisionFeedbackProfile   = CallProfile{MaxTokens: 200, Temperature: 0.6}
)

// Word ceilings written into the prompts.
const (
	OnboardingFeedbackWords = 50
	MentorReplyWords        = 150
	DecisionFeedbackWords   = 60
)

// Prompt is a ready-to-send system/user pair with its call limits.
type Prompt struct {
	System  string
	User    string
	Profile CallProfile
}

const mentorPersona = `You are an encouraging entrepreneurship mentor for secondary school students (ages 13-18).
Speak plainly and warmly, like a coach who believes in the student.
Keep advice practical and age-appropriate: small experiments, school projects, side hustles that are legal for minors.
Never give legal, medical or investment advice, never ask for personal contact details, and steer away from anything unsafe.
If a question is unrelated to learning, business or careers, gently bring the conversation back.`

func bulletList(b *strings.Builder, items []string) {
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it == "" {
			continue
		}
		fmt.Fprintf(b, "- %s\n", it)
	}
}

func sortedSkills(skills map[string]int) []string {
	names := make([]string, 0, len(skills))
	for name := range skills {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func humanize(s string) string {
	return strings.ReplaceAll(s, "_", " ")
}
