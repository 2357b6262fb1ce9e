package models

// User is the collaborator-owned account record. Onboarding only ever
// touches CareerPath, a denormalized copy of the chosen interest area.
type User struct {
	ID         string  `db:"id" json:"id"`
	Email      string  `db:"email" json:"email"`
	Role       string  `db:"role" json:"role"`
	CareerPath *string `db:"career_path" json:"career_path,omitempty"`
	CreatedAt  string  `db:"created_at" json:"created_at"`
	UpdatedAt  string  `db:"updated_at" json:"updated_at"`
}

type OnboardingProfile struct {
	ID                 string `db:"id" json:"id"`
	UserID             string `db:"user_id" json:"user_id"`
	InterestArea       string `db:"interest_area" json:"interest_area"`
	SkillLevel         string `db:"skill_level" json:"skill_level,omitempty"`
	Motivation         string `db:"motivation" json:"motivation,omitempty"`
	LearningPreference string `db:"learning_preference" json:"learning_preference,omitempty"`
	Completed          bool   `db:"completed" json:"completed"`
	CreatedAt          string `db:"created_at" json:"created_at"`
	UpdatedAt          string `db:"updated_at" json:"updated_at"`
}

const GoalStatusActive = "active"

type LearningGoal struct {
	ID        string `db:"id" json:"id"`
	ProfileID string `db:"profile_id" json:"profile_id"`
	Text      string `db:"goal_text" json:"text"`
	Category  string `db:"category" json:"category"`
	Status    string `db:"status" json:"status"`
	CreatedAt string `db:"created_at" json:"created_at"`
}

// GoalInput is a goal as submitted during onboarding.
type GoalInput struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

const QuizTypeInterestAssessment = "interest_assessment"

type QuizResult struct {
	ID             string `db:"id" json:"id"`
	UserID         string `db:"user_id" json:"user_id"`
	QuizType       string `db:"quiz_type" json:"quiz_type"`
	InterestArea   string `db:"interest_area" json:"interest_area"`
	Score          int    `db:"score" json:"score"`
	TotalQuestions int    `db:"total_questions" json:"total_questions"`
	CompletedAt    string `db:"completed_at" json:"completed_at"`
}

type Decision struct {
	ID           string      `db:"id" json:"id"`
	UserID       string      `db:"user_id" json:"user_id"`
	ScenarioID   string      `db:"scenario_id" json:"scenario_id"`
	SessionID    *string     `db:"session_id" json:"session_id,omitempty"`
	OptionID     string      `db:"option_id" json:"option_id"`
	Round        int         `db:"round" json:"round"`
	Feedback     string      `db:"feedback" json:"feedback"`
	OutcomeScore int         `db:"outcome_score" json:"outcome_score"`
	SkillsGained SkillDeltas `db:"skills_gained" json:"skills_gained"`
	CreatedAt    string      `db:"created_at" json:"created_at"`
}

// Progress is the running per-user, per-skill aggregate.
type Progress struct {
	ID                 string  `db:"id" json:"id"`
	UserID             string  `db:"user_id" json:"user_id"`
	SkillName          string  `db:"skill_name" json:"skill_name"`
	SkillLevel         int     `db:"skill_level" json:"skill_level"`
	ScenariosCompleted int     `db:"scenarios_completed" json:"scenarios_completed"`
	AverageScore       float64 `db:"average_score" json:"average_score"`
	UpdatedAt          string  `db:"updated_at" json:"updated_at"`
}

const InteractionMentorChat = "mentor_chat"

// AIInteraction is one logged exchange. Exactly one of UserID and
// ParticipantID is set.
type AIInteraction struct {
	ID              string     `db:"id" json:"id"`
	UserID          *string    `db:"user_id" json:"user_id,omitempty"`
	ParticipantID   *string    `db:"participant_id" json:"participant_id,omitempty"`
	InteractionType string     `db:"interaction_type" json:"interaction_type"`
	Context         JSONObject `db:"context" json:"context,omitempty"`
	AIResponse      string     `db:"ai_response" json:"ai_response"`
	FeedbackRating  *int       `db:"feedback_rating" json:"feedback_rating,omitempty"`
	CreatedAt       string     `db:"created_at" json:"created_at"`
}

// ChatMessage is one prior turn of a mentor conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// LearningPath is the structured plan returned by the learning-path endpoint.
type LearningPath struct {
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	EstimatedWeeks int            `json:"estimatedWeeks"`
	Modules        []LearningStep `json:"modules"`
}

type LearningStep struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Skills      []string `json:"skills"`
	Activities  []string `json:"activities"`
}
