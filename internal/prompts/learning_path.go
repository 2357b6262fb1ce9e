package prompts

import (
	"fmt"
	"strings"

	"github.com/vytor/founderlab/internal/llm"
)

// ModuleCount is the number of modules every learning path contains.
const ModuleCount = 5

// LearningPathInput carries the learner attributes used to plan a path.
type LearningPathInput struct {
	InterestArea  string
	SkillLevel    string
	LearningStyle string
	Goals         []string
}

const learningPathSystem = `You are a curriculum designer for an entrepreneurship program for secondary school students.
You design short, hands-on learning paths. You reply with a single JSON object and nothing else.`

// LearningPath builds the prompt asking for a structured five-module path.
func LearningPath(in LearningPathInput) Prompt {
	var b strings.Builder

	fmt.Fprintf(&b, "Interest area: %s\n", in.InterestArea)
	fmt.Fprintf(&b, "Skill level: %s\n", in.SkillLevel)
	if in.LearningStyle != "" {
		fmt.Fprintf(&b, "Preferred learning style: %s\n", in.LearningStyle)
	}
	if len(in.Goals) > 0 {
		b.WriteString("Goals:\n")
		bulletList(&b, in.Goals)
	}

	fmt.Fprintf(&b, `
Instructions:
Design a learning path of exactly %d modules that takes this student from where they are to launching a small venture in their interest area.
Each module needs a title, a two-sentence description, a duration such as "1 week", 2-4 skills and 2-4 hands-on activities.
Return JSON with this shape:
{"title": string, "description": string, "estimatedWeeks": integer, "modules": [{"title": string, "description": string, "duration": string, "skills": [string], "activities": [string]}]}
Do not wrap the JSON in markdown.`, ModuleCount)

	return Prompt{
		System:  learningPathSystem,
		User:    b.String(),
		Profile: LearningPathProfile,
	}
}

var stringList = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items":    map[string]any{"type": "string"},
}

// LearningPathSchema validates the JSON a learning-path call returns.
var LearningPathSchema = &llm.Schema{
	Name:        "learning-path",
	Description: "A five-module entrepreneurship learning path",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":          map[string]any{"type": "string", "minLength": 1},
			"description":    map[string]any{"type": "string"},
			"estimatedWeeks": map[string]any{"type": "integer", "minimum": 1},
			"modules": map[string]any{
				"type":     "array",
				"minItems": ModuleCount,
				"maxItems": ModuleCount,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title":       map[string]any{"type": "string", "minLength": 1},
						"description": map[string]any{"type": "string"},
						"duration":    map[string]any{"type": "string"},
						"skills":      stringList,
						"activities":  stringList,
					},
					"required": []any{"title", "description", "duration", "skills", "activities"},
				},
			},
		},
		"required": []any{"title", "description", "estimatedWeeks", "modules"},
	},
}
