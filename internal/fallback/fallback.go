// Package fallback produces canned content served when the AI gateway fails.
// Every function here always succeeds.
package fallback

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/vytor/founderlab/internal/models"
	"github.com/vytor/founderlab/internal/prompts"
)

// OnboardingFeedback returns canned encouragement for a step.
func OnboardingFeedback(step prompts.Step, interestArea string) string {
	area := strings.TrimSpace(interestArea)
	if area == "" {
		area = "your chosen field"
	}

	switch step {
	case prompts.StepInterestSelected:
		return fmt.Sprintf("Great choice! %s is full of opportunities for young founders. Let's find out what excites you most about it.", area)
	case prompts.StepQuizCompleted:
		return "Nice work finishing the quiz! Every answer helps us tailor your path, so there are no wrong results here."
	case prompts.StepGoalsSet:
		return "Those are strong goals. Pick the smallest one and take a first step this week; momentum beats perfection."
	case prompts.StepProfileComplete:
		return fmt.Sprintf("Welcome aboard! Your %s journey starts now. Your first simulation will put you in a founder's shoes.", area)
	default:
		return "You're making great progress. Keep going!"
	}
}

type mentorTopic struct {
	keywords []string
	reply    string
}

var mentorTopics = []mentorTopic{
	{
		keywords: []string{"money", "price", "pricing", "profit", "cost", "budget"},
		reply:    "Start by adding up what one unit costs you to make, then look at what similar products sell for. Price somewhere that covers your costs and still feels fair to your customers. What does one unit cost you right now?",
	},
	{
		keywords: []string{"idea", "start", "begin", "business"},
		reply:    "Great businesses often start with a problem you notice every day. List three small annoyances at school or at home and ask five people whether they'd pay for a fix. Which problem bugs you the most?",
	},
	{
		keywords: []string{"market", "customer", "sell", "advertis", "social media"},
		reply:    "Talk to your customers before you build anything big. A short survey or a few conversations will tell you what they really want. Who is the first person you could ask this week?",
	},
	{
		keywords: []string{"fail", "scared", "afraid", "nervous", "mistake"},
		reply:    "Every founder has ideas that don't work out; that's how they learn what does. Try small, cheap experiments so a miss costs little and teaches a lot. What's one tiny test you could run?",
	},
	{
		keywords: []string{"team", "partner", "friend", "cofounder"},
		reply:    "A good teammate brings skills you don't have. Agree early on who does what and how you'll make decisions together. What skill would help your idea most right now?",
	},
}

const defaultMentorReply = "That's a great question! I'm having trouble connecting right now, but keep exploring your idea: write down what you already know and what you'd like to find out next. Try asking me again in a moment."

// MentorReply picks a canned reply by keyword, or a generic one.
func MentorReply(message string) string {
	lower := strings.ToLower(message)
	for _, topic := range mentorTopics {
		for _, kw := range topic.keywords {
			if strings.Contains(lower, kw) {
				return topic.reply
			}
		}
	}
	return defaultMentorReply
}

// LearningPath returns a complete five-module path for the given learner.
func LearningPath(interestArea, skillLevel string) models.LearningPath {
	area := strings.TrimSpace(interestArea)
	if area == "" {
		area = "Entrepreneurship"
	}
	weeks := 10
	switch models.SkillLevel(skillLevel) {
	case models.SkillIntermediate:
		weeks = 8
	case models.SkillAdvanced:
		weeks = 6
	}

	return models.LearningPath{
		Title:          fmt.Sprintf("%s Entrepreneurship Path", area),
		Description:    fmt.Sprintf("A hands-on path from spotting opportunities in %s to pitching your own venture.", area),
		EstimatedWeeks: weeks,
		Modules: []models.LearningStep{
			{
				Title:       "Spotting Opportunities",
				Description: fmt.Sprintf("Learn to notice problems worth solving in %s. Turn everyday frustrations into business ideas.", area),
				Duration:    "2 weeks",
				Skills:      []string{"creativity", "problem_solving"},
				Activities:  []string{"Keep a problem journal for one week", "Brainstorm ten solutions to your top problem"},
			},
			{
				Title:       "Understanding Customers",
				Description: "Find out who your customers are and what they need. Practice interviewing and simple surveys.",
				Duration:    "2 weeks",
				Skills:      []string{"communication", "empathy"},
				Activities:  []string{"Interview five potential customers", "Build a customer persona"},
			},
			{
				Title:       "Money Basics",
				Description: "Cover costs, pricing and profit. Build a one-page budget for your idea.",
				Duration:    "2 weeks",
				Skills:      []string{"financial_literacy", "strategic_thinking"},
				Activities:  []string{"Calculate the cost of one unit", "Compare prices of three competitors"},
			},
			{
				Title:       "Building a Prototype",
				Description: "Create the simplest version of your product. Test it with real people and improve it.",
				Duration:    "2 weeks",
				Skills:      []string{"problem_solving", "risk_management"},
				Activities:  []string{"Make a low-cost prototype", "Collect feedback from three testers"},
			},
			{
				Title:       "Pitching Your Venture",
				Description: "Tell your story with confidence. Prepare a short pitch and present it.",
				Duration:    "2 weeks",
				Skills:      []string{"leadership", "communication"},
				Activities:  []string{"Write a one-minute pitch", "Present to classmates and gather questions"},
			},
		},
	}
}

// DecisionTemplates are the feedback texts used for simulation rounds when
// no live model scoring is configured.
var DecisionTemplates = []string{
	"Solid decision! You weighed the risks and rewards carefully. Keep an eye on how your customers react next round.",
	"Interesting choice. It shows creativity, but think about how it affects your budget over the long run.",
	"Bold move! Taking calculated risks is part of being an entrepreneur. Watch the results closely.",
	"Good thinking. You put your customers first, which builds loyalty. Consider how to grow from here.",
	"Nice teamwork mindset. Great founders rely on their team; think about who could help with the next step.",
}

// DecisionFeedback picks one of DecisionTemplates uniformly at random.
func DecisionFeedback(rng *rand.Rand) string {
	return DecisionTemplates[rng.IntN(len(DecisionTemplates))]
}
