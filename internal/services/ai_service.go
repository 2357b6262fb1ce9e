package services

import (
	"context"
	"strings"

	"github.com/vytor/founderlab/internal/errors"
	"github.com/vytor/founderlab/internal/fallback"
	"github.com/vytor/founderlab/internal/llm"
	"github.com/vytor/founderlab/internal/logger"
	"github.com/vytor/founderlab/internal/models"
	"github.com/vytor/founderlab/internal/prompts"
)

// maxHistoryTurns bounds the conversation history forwarded to the model.
const maxHistoryTurns = 10

// InteractionLearningPath tags learning path generations in the interaction log.
const InteractionLearningPath = "learning_path"

// LearningPathRequest is the body of a learning path call.
type LearningPathRequest struct {
	InterestArea  string   `json:"interestArea"`
	SkillLevel    string   `json:"skillLevel"`
	LearningStyle string   `json:"learningStyle,omitempty"`
	Goals         []string `json:"goals,omitempty"`
	UserID        string   `json:"userId,omitempty"`
}

// LearningPathResult carries the path and whether it is canned content.
type LearningPathResult struct {
	LearningPath models.LearningPath `json:"learningPath"`
	Fallback     bool                `json:"fallback,omitempty"`
}

// MentorChatContext is the optional scenario context of a chat turn.
type MentorChatContext struct {
	InterestArea    string `json:"interestArea,omitempty"`
	SkillLevel      string `json:"skillLevel,omitempty"`
	CurrentScenario string `json:"currentScenario,omitempty"`
}

// MentorChatRequest is the body of a mentor chat call.
type MentorChatRequest struct {
	Message             string               `json:"message"`
	UserID              string               `json:"userId"`
	ConversationHistory []models.ChatMessage `json:"conversationHistory,omitempty"`
	Context             *MentorChatContext   `json:"context,omitempty"`
}

// MentorChatResult is the assistant reply.
type MentorChatResult struct {
	Response string `json:"response"`
	Fallback bool   `json:"fallback,omitempty"`
}

// OnboardingFeedbackRequest is the body of an onboarding feedback call.
type OnboardingFeedbackRequest struct {
	InterestArea string   `json:"interestArea"`
	Step         string   `json:"step"`
	SkillLevel   string   `json:"skillLevel,omitempty"`
	Goals        []string `json:"goals,omitempty"`
	QuizScore    *int     `json:"quizScore,omitempty"`
	UserName     string   `json:"userName,omitempty"`
}

// OnboardingFeedbackResult is the encouragement text for one step.
type OnboardingFeedbackResult struct {
	Feedback string `json:"feedback"`
	Step     string `json:"step"`
	Fallback bool   `json:"fallback,omitempty"`
}

// AIService serves the AI-backed endpoints. Gateway failures never surface
// as errors; the canned content is returned with Fallback set.
type AIService interface {
	LearningPath(ctx context.Context, req LearningPathRequest) (*LearningPathResult, error)
	MentorChat(ctx context.Context, req MentorChatRequest) (*MentorChatResult, error)
	OnboardingFeedback(ctx context.Context, req OnboardingFeedbackRequest) (*OnboardingFeedbackResult, error)
}

type aiService struct {
	gateway      *llm.Gateway
	interactions InteractionService
}

// NewAIService creates a new AIService
func NewAIService(gateway *llm.Gateway, interactions InteractionService) AIService {
	return &aiService{gateway: gateway, interactions: interactions}
}

func (s *aiService) LearningPath(ctx context.Context, req LearningPathRequest) (*LearningPathResult, error) {
	log := logger.FromContext(ctx).WithPrefix("ai_service")

	if err := requireFields(
		field{"interestArea", req.InterestArea},
		field{"skillLevel", req.SkillLevel},
	); err != nil {
		return nil, err
	}
	if err := validateSkillLevel(req.SkillLevel, true); err != nil {
		return nil, err
	}
	if err := validateLearningPreference(req.LearningStyle); err != nil {
		return nil, err
	}

	p := prompts.LearningPath(prompts.LearningPathInput{
		InterestArea:  req.InterestArea,
		SkillLevel:    req.SkillLevel,
		LearningStyle: req.LearningStyle,
		Goals:         req.Goals,
	})

	result := &LearningPathResult{}
	ctx = llm.WithPurpose(ctx, InteractionLearningPath)
	if err := s.gateway.CompleteJSON(ctx, p.System, p.User, prompts.LearningPathSchema, options(p.Profile), &result.LearningPath); err != nil {
		log.WithError(err).Warn("learning path generation failed, serving fallback for %s", req.InterestArea)
		result.LearningPath = fallback.LearningPath(req.InterestArea, req.SkillLevel)
		result.Fallback = true
	}

	if req.UserID != "" {
		s.track(ctx, req.UserID, InteractionLearningPath, result.LearningPath.Title, map[string]any{
			"interestArea": req.InterestArea,
			"skillLevel":   req.SkillLevel,
			"fallback":     result.Fallback,
		})
	}

	log.Debug("learning path ready: modules=%d, fallback=%t", len(result.LearningPath.Modules), result.Fallback)
	return result, nil
}

func (s *aiService) MentorChat(ctx context.Context, req MentorChatRequest) (*MentorChatResult, error) {
	log := logger.FromContext(ctx).WithPrefix("ai_service")

	if err := requireFields(
		field{"message", req.Message},
		field{"userId", req.UserID},
	); err != nil {
		return nil, err
	}

	var mc prompts.MentorContext
	if req.Context != nil {
		mc = prompts.MentorContext{
			InterestArea:    req.Context.InterestArea,
			SkillLevel:      req.Context.SkillLevel,
			CurrentScenario: req.Context.CurrentScenario,
		}
	}
	p := prompts.MentorChat(req.Message, mc)

	history := chatHistory(req.ConversationHistory)
	history = append(history, llm.Message{Role: llm.RoleUser, Content: p.User})

	result := &MentorChatResult{}
	reply, err := s.gateway.Chat(llm.WithPurpose(ctx, models.InteractionMentorChat), p.System, history, options(p.Profile))
	if err != nil {
		log.WithError(err).Warn("mentor chat failed, serving fallback for %s", req.UserID)
		reply = fallback.MentorReply(req.Message)
		result.Fallback = true
	}
	result.Response = reply

	interactionCtx := map[string]any{
		"message":  req.Message,
		"fallback": result.Fallback,
	}
	if req.Context != nil {
		interactionCtx["interestArea"] = req.Context.InterestArea
		interactionCtx["currentScenario"] = req.Context.CurrentScenario
	}
	s.track(ctx, req.UserID, models.InteractionMentorChat, reply, interactionCtx)

	return result, nil
}

func (s *aiService) OnboardingFeedback(ctx context.Context, req OnboardingFeedbackRequest) (*OnboardingFeedbackResult, error) {
	log := logger.FromContext(ctx).WithPrefix("ai_service")

	if err := requireFields(
		field{"interestArea", req.InterestArea},
		field{"step", req.Step},
	); err != nil {
		return nil, err
	}
	step, ok := prompts.ParseStep(req.Step)
	if !ok {
		return nil, errors.NewValidationError("step", "unknown onboarding step "+req.Step)
	}
	if err := validateSkillLevel(req.SkillLevel, false); err != nil {
		return nil, err
	}

	p := prompts.OnboardingFeedback(prompts.OnboardingInput{
		Step:         step,
		InterestArea: req.InterestArea,
		SkillLevel:   req.SkillLevel,
		Goals:        req.Goals,
		QuizScore:    req.QuizScore,
		UserName:     req.UserName,
	})

	result := &OnboardingFeedbackResult{Step: string(step)}
	text, err := s.gateway.Complete(llm.WithPurpose(ctx, "onboarding_feedback"), p.System, p.User, options(p.Profile))
	if err != nil {
		log.WithError(err).Warn("onboarding feedback failed for step %s, serving fallback", step)
		text = fallback.OnboardingFeedback(step, req.InterestArea)
		result.Fallback = true
	}
	result.Feedback = text
	return result, nil
}

// track logs the interaction; a failed write is already logged by Track.
func (s *aiService) track(ctx context.Context, userKey, kind, response string, extra map[string]any) {
	if s.interactions == nil {
		return
	}
	if _, err := s.interactions.Track(ctx, TrackInteractionRequest{
		UserID:          userKey,
		InteractionType: kind,
		AIResponse:      response,
		Context:         extra,
	}); err != nil {
		logger.FromContext(ctx).WithPrefix("ai_service").Warn("interaction not logged: %v", err)
	}
}

func options(p prompts.CallProfile) llm.Options {
	return llm.Options{MaxTokens: p.MaxTokens, Temperature: p.Temperature}
}

// chatHistory keeps the most recent user and assistant turns with content.
func chatHistory(in []models.ChatMessage) []llm.Message {
	var out []llm.Message
	for _, m := range in {
		role := llm.Role(strings.ToLower(strings.TrimSpace(m.Role)))
		if role != llm.RoleUser && role != llm.RoleAssistant {
			continue
		}
		if strings.TrimSpace(m.Content) == "" {
			continue
		}
		out = append(out, llm.Message{Role: role, Content: m.Content})
	}
	if len(out) > maxHistoryTurns {
		out = out[len(out)-maxHistoryTurns:]
	}
	return out
}
