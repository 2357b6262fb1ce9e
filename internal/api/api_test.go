package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/vytor/founderlab/internal/db"
	"github.com/vytor/founderlab/internal/llm"
	"github.com/vytor/founderlab/internal/models"
	"github.com/vytor/founderlab/internal/repository"
	"github.com/vytor/founderlab/internal/repository/sqldb"
	"github.com/vytor/founderlab/internal/scoring"
	"github.com/vytor/founderlab/internal/services"
	"github.com/vytor/founderlab/internal/testutil"
)

const studentUUID = "123e4567-e89b-12d3-a456-426614174000"

type APISuite struct {
	suite.Suite
	db       *db.DB
	provider *llm.MockProvider
	users    repository.UserRepository
	handler  http.Handler
}

func (s *APISuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.provider = llm.NewMockProvider()
	s.users = sqldb.NewUserRepository(s.db)

	gateway := llm.NewGateway(s.provider, 0)
	decisions := sqldb.NewDecisionRepository(s.db)
	progress := sqldb.NewProgressRepository(s.db)
	interactions := services.NewInteractionService(sqldb.NewInteractionRepository(s.db))

	srv := &Server{
		AIService:          services.NewAIService(gateway, interactions),
		InteractionService: interactions,
		OnboardingService: services.NewOnboardingService(
			s.users,
			sqldb.NewProfileRepository(s.db),
			sqldb.NewGoalRepository(s.db),
			sqldb.NewQuizResultRepository(s.db),
		),
		SimulationService: services.NewSimulationService(
			scoring.NewTemplateStrategy(rand.NewPCG(7, 11)), decisions, progress,
		),
		ProgressService: services.NewProgressService(progress, decisions),
		DB:              s.db,
	}
	s.handler = srv.Routes()
}

func (s *APISuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *APISuite) do(method, path string, body any) (int, map[string]any) {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		s.Require().NoError(json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	s.Equal("application/json", rec.Header().Get("Content-Type"))
	var out map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return rec.Code, out
}

func (s *APISuite) count(table, where string, args ...any) int {
	return testutil.CountRows(s.T(), s.db, table, where, args...)
}

func (s *APISuite) TestSaveProfile_EndToEnd() {
	_, err := s.users.Create(context.Background(), models.User{ID: "u1", Email: "u1@example.com"})
	s.Require().NoError(err)

	status, body := s.do(http.MethodPost, "/api/onboarding/save-profile", map[string]any{
		"userId":       "u1",
		"interestArea": "Tech",
		"quizScore":    2,
		"goals":        []map[string]string{{"text": "Learn coding", "category": "skill"}},
	})

	s.Equal(http.StatusOK, status)
	s.Equal(true, body["success"])
	profile := body["profile"].(map[string]any)
	s.Equal("u1", profile["user_id"])
	s.Equal("Tech", profile["interest_area"])
	s.Equal(map[string]any{"profile": "ok", "quizResult": "ok", "goals": "ok", "careerPath": "ok"}, body["steps"])

	s.Equal(1, s.count("onboarding_profiles", "user_id = ?", "u1"))
	s.Equal(1, s.count("quiz_results", "user_id = ?", "u1"))
	s.Equal(1, s.count("learning_goals", ""))

	u, err := s.users.Get(context.Background(), "u1")
	s.Require().NoError(err)
	s.Require().NotNil(u.CareerPath)
	s.Equal("Tech", *u.CareerPath)

	status, body = s.do(http.MethodGet, "/api/onboarding/profile/u1", nil)
	s.Require().Equal(http.StatusOK, status)
	s.Equal("Tech", body["careerPath"])
}

func (s *APISuite) TestSaveProfile_TwiceUpsertsProfileAppendsQuiz() {
	req := map[string]any{"userId": "u2", "interestArea": "Food", "quizScore": 1}

	for i := 0; i < 2; i++ {
		status, body := s.do(http.MethodPost, "/api/onboarding/save-profile", req)
		s.Equal(http.StatusOK, status)
		// no users row: the denormalized update is reported, not fatal
		s.Equal("failed", body["steps"].(map[string]any)["careerPath"])
	}

	s.Equal(1, s.count("onboarding_profiles", "user_id = ?", "u2"))
	s.Equal(2, s.count("quiz_results", "user_id = ?", "u2"))

	status, body := s.do(http.MethodGet, "/api/onboarding/profile/u2", nil)
	s.Equal(http.StatusOK, status)
	s.Len(body["quizResults"], 2)
	s.Empty(body["goals"])
	s.NotContains(body, "careerPath")
}

func (s *APISuite) TestSaveProfile_PrimaryWriteFailureIs500() {
	_, err := s.db.ExecContext(context.Background(), "DROP TABLE onboarding_profiles")
	s.Require().NoError(err)

	status, body := s.do(http.MethodPost, "/api/onboarding/save-profile", map[string]any{
		"userId": "u1", "interestArea": "Tech", "quizScore": 2,
	})

	s.Equal(http.StatusInternalServerError, status)
	s.Equal(false, body["success"])
	s.Equal("PERSISTENCE_ERROR", body["code"])
	s.Equal("failed to save profile", body["error"])
	s.Equal(0, s.count("quiz_results", ""))
}

func (s *APISuite) TestSaveProfile_SecondaryWriteFailureIsReported() {
	_, err := s.db.ExecContext(context.Background(), "DROP TABLE quiz_results")
	s.Require().NoError(err)

	status, body := s.do(http.MethodPost, "/api/onboarding/save-profile", map[string]any{
		"userId": "u1", "interestArea": "Tech", "quizScore": 2,
	})

	s.Equal(http.StatusOK, status)
	s.Equal(true, body["success"])
	steps := body["steps"].(map[string]any)
	s.Equal("ok", steps["profile"])
	s.Equal("failed", steps["quizResult"])
	s.Equal("skipped", steps["goals"])
}

func (s *APISuite) TestSaveProfile_MissingFields() {
	status, body := s.do(http.MethodPost, "/api/onboarding/save-profile", map[string]any{"quizScore": 2})

	s.Equal(http.StatusBadRequest, status)
	s.Equal(false, body["success"])
	s.Equal("VALIDATION_ERROR", body["code"])
	s.Equal("missing required fields: userId, interestArea", body["error"])
	s.Equal(0, s.count("onboarding_profiles", ""))
	s.Equal(0, s.count("quiz_results", ""))
}

func (s *APISuite) TestGetProfile_NotFound() {
	status, body := s.do(http.MethodGet, "/api/onboarding/profile/nobody", nil)

	s.Equal(http.StatusNotFound, status)
	s.Equal("NOT_FOUND", body["code"])
}

func (s *APISuite) TestOnboardingFeedback_FallbackWhenGatewayFails() {
	for _, step := range []string{"interest_selected", "quiz_completed", "goals_set", "profile_complete"} {
		status, body := s.do(http.MethodPost, "/api/ai/onboarding-feedback", map[string]any{
			"interestArea": "Tech", "step": step,
		})

		s.Equal(http.StatusOK, status, step)
		s.Equal(true, body["success"])
		s.Equal(true, body["fallback"])
		s.Equal(step, body["step"])
		s.NotEmpty(body["feedback"])
	}
}

func (s *APISuite) TestOnboardingFeedback_AIReply() {
	s.provider.AddResponse(llm.MockResponse{Content: "You picked a great field!"})

	status, body := s.do(http.MethodPost, "/api/ai/onboarding-feedback", map[string]any{
		"interestArea": "Tech", "step": "goals_set", "goals": []string{"Launch an app"},
	})

	s.Equal(http.StatusOK, status)
	s.Equal("You picked a great field!", body["feedback"])
	s.NotContains(body, "fallback")
}

func (s *APISuite) TestOnboardingFeedback_UnknownStep() {
	status, body := s.do(http.MethodPost, "/api/ai/onboarding-feedback", map[string]any{
		"interestArea": "Tech", "step": "graduation",
	})

	s.Equal(http.StatusBadRequest, status)
	s.Equal("VALIDATION_ERROR", body["code"])
	s.Empty(s.provider.Calls())
}

func (s *APISuite) TestLearningPath_Fallback() {
	s.provider.AddResponse(llm.MockResponse{Content: "Sure! Module one is about..."})

	status, body := s.do(http.MethodPost, "/api/ai/learning-path", map[string]any{
		"interestArea": "Fashion", "skillLevel": "intermediate", "userId": "STU001",
	})

	s.Equal(http.StatusOK, status)
	s.Equal(true, body["fallback"])
	path := body["learningPath"].(map[string]any)
	s.Len(path["modules"], 5)
	s.EqualValues(8, path["estimatedWeeks"])
	s.Equal(1, s.count("ai_interactions", "participant_id = ? AND interaction_type = ?", "STU001", "learning_path"))
}

func (s *APISuite) TestMentorChat_LogsInteraction() {
	s.provider.AddResponse(llm.MockResponse{Content: "Start by talking to potential customers."})

	status, body := s.do(http.MethodPost, "/api/ai/mentor-chat", map[string]any{
		"message": "Where do I start?",
		"userId":  studentUUID,
		"conversationHistory": []map[string]string{
			{"role": "user", "content": "Hi"},
			{"role": "assistant", "content": "Hello! What are you building?"},
		},
		"context": map[string]string{"interestArea": "Tech", "currentScenario": "lemonade-stand"},
	})

	s.Equal(http.StatusOK, status)
	s.Equal("Start by talking to potential customers.", body["response"])
	s.Equal(1, s.count("ai_interactions", "user_id = ? AND interaction_type = ?", studentUUID, models.InteractionMentorChat))

	calls := s.provider.Calls()
	s.Require().Len(calls, 1)
	s.Len(calls[0].Messages, 3)
}

func (s *APISuite) TestMentorChat_MissingMessage() {
	status, body := s.do(http.MethodPost, "/api/ai/mentor-chat", map[string]any{"userId": "u1"})

	s.Equal(http.StatusBadRequest, status)
	s.Equal("missing required fields: message", body["error"])
	s.Equal(0, s.count("ai_interactions", ""))
}

func (s *APISuite) TestTrackInteraction_RoutesUserKey() {
	tests := []struct {
		userID string
		column string
	}{
		{studentUUID, "user_id"},
		{"123E4567-E89B-12D3-A456-426614174000", "user_id"},
		{"STU001", "participant_id"},
	}

	for _, tt := range tests {
		status, body := s.do(http.MethodPost, "/api/ai/track-interaction", map[string]any{
			"userId":          tt.userID,
			"interactionType": "hint",
			"aiResponse":      "Check your margins.",
			"feedbackRating":  5,
		})

		s.Equal(http.StatusOK, status)
		s.Equal(true, body["logged"])
		s.Equal(1, s.count("ai_interactions", tt.column+" = ?", tt.userID), tt.userID)
	}
	s.Equal(0, s.count("ai_interactions", "user_id IS NOT NULL AND participant_id IS NOT NULL"))
}

func (s *APISuite) TestInteractionHistory() {
	for _, reply := range []string{"First hint.", "Second hint."} {
		status, _ := s.do(http.MethodPost, "/api/ai/track-interaction", map[string]any{
			"userId": "STU001", "interactionType": "hint", "aiResponse": reply,
		})
		s.Require().Equal(http.StatusOK, status)
	}

	status, body := s.do(http.MethodGet, "/api/ai/interactions/STU001", nil)
	s.Require().Equal(http.StatusOK, status)
	s.Equal(true, body["success"])
	rows := body["interactions"].([]any)
	s.Require().Len(rows, 2)
	for _, raw := range rows {
		row := raw.(map[string]any)
		s.Equal("STU001", row["participant_id"])
		s.NotContains(row, "user_id")
	}

	status, body = s.do(http.MethodGet, "/api/ai/interactions/STU001?limit=1", nil)
	s.Require().Equal(http.StatusOK, status)
	s.Len(body["interactions"], 1)

	status, body = s.do(http.MethodGet, "/api/ai/interactions/nobody", nil)
	s.Require().Equal(http.StatusOK, status)
	s.Equal([]any{}, body["interactions"])

	status, body = s.do(http.MethodGet, "/api/ai/interactions/STU001?limit=abc", nil)
	s.Equal(http.StatusBadRequest, status)
	s.Equal("VALIDATION_ERROR", body["code"])
}

func (s *APISuite) TestTrackInteraction_WriteFailureStill200() {
	_, err := s.db.ExecContext(context.Background(), "DROP TABLE ai_interactions")
	s.Require().NoError(err)

	status, body := s.do(http.MethodPost, "/api/ai/track-interaction", map[string]any{
		"userId": "STU001", "interactionType": "hint", "aiResponse": "ok",
	})

	s.Equal(http.StatusOK, status)
	s.Equal(true, body["success"])
	s.Equal(false, body["logged"])
}

func (s *APISuite) TestSimulationSubmit_ScoreAndProgress() {
	scores := map[string][]float64{}
	for round := 1; round <= 6; round++ {
		status, body := s.do(http.MethodPost, "/api/simulation/submit", map[string]any{
			"optionId": "opt-a", "scenarioId": "lemonade", "userId": "u1", "round": round,
		})
		s.Require().Equal(http.StatusOK, status)

		s.NotContains(body, "fallback")
		score := body["outcome_score"].(float64)
		s.GreaterOrEqual(score, float64(min(100, 60+2*round)))
		s.LessOrEqual(score, float64(min(100, 89+2*round)))
		s.NotEmpty(body["feedback"])
		s.EqualValues(round, body["round"])

		steps := body["steps"].(map[string]any)
		s.Equal("ok", steps["decision"])
		for skill := range body["skills_gained"].(map[string]any) {
			s.Equal("ok", steps["progress"].(map[string]any)[skill])
			scores[skill] = append(scores[skill], score)
		}
	}

	s.Equal(6, s.count("decisions", "user_id = ?", "u1"))

	status, body := s.do(http.MethodGet, "/api/progress/u1", nil)
	s.Require().Equal(http.StatusOK, status)
	s.Len(body["decisions"], 6)

	rows := body["progress"].([]any)
	s.Len(rows, len(scores))
	for _, raw := range rows {
		row := raw.(map[string]any)
		want := scores[row["skill_name"].(string)]
		var sum float64
		for _, v := range want {
			sum += v
		}
		s.EqualValues(len(want), row["scenarios_completed"])
		s.InDelta(sum/float64(len(want)), row["average_score"].(float64), 1e-9)
	}
}

func (s *APISuite) TestSimulationSubmit_AIFeedbackFallback() {
	srv := &Server{
		SimulationService: services.NewSimulationService(
			scoring.NewAIFeedbackStrategy(scoring.NewTemplateStrategy(rand.NewPCG(7, 11)), llm.NewGateway(s.provider, 0)),
			sqldb.NewDecisionRepository(s.db),
			sqldb.NewProgressRepository(s.db),
		),
		DB: s.db,
	}
	s.handler = srv.Routes()
	submit := map[string]any{"optionId": "opt-a", "scenarioId": "lemonade", "userId": "u1", "round": 1}

	status, body := s.do(http.MethodPost, "/api/simulation/submit", submit)
	s.Require().Equal(http.StatusOK, status)
	s.Equal(true, body["fallback"])
	s.NotEmpty(body["feedback"])

	s.provider.AddResponse(llm.MockResponse{Content: "Nice pricing call."})
	status, body = s.do(http.MethodPost, "/api/simulation/submit", submit)
	s.Require().Equal(http.StatusOK, status)
	s.NotContains(body, "fallback")
	s.Equal("Nice pricing call.", body["feedback"])

	s.Equal(2, s.count("decisions", "user_id = ?", "u1"))
}

func (s *APISuite) TestSimulationSubmit_Validation() {
	tests := []struct {
		body map[string]any
		want string
	}{
		{map[string]any{"scenarioId": "s", "userId": "u", "round": 1}, "missing required fields: optionId"},
		{map[string]any{"optionId": "o", "scenarioId": "s", "userId": "u"}, "missing required fields: round"},
		{map[string]any{"optionId": "o", "scenarioId": "s", "userId": "u", "round": 0}, "validation failed for round: must be at least 1"},
	}

	for _, tt := range tests {
		status, body := s.do(http.MethodPost, "/api/simulation/submit", tt.body)
		s.Equal(http.StatusBadRequest, status)
		s.Equal(tt.want, body["error"])
	}
	s.Equal(0, s.count("decisions", ""))
}

func (s *APISuite) TestBadJSON() {
	status, body := s.do(http.MethodPost, "/api/simulation/submit", "{not json")

	s.Equal(http.StatusBadRequest, status)
	s.Equal("BAD_REQUEST", body["code"])

	status, body = s.do(http.MethodPost, "/api/simulation/submit", "")
	s.Equal(http.StatusBadRequest, status)
	s.Equal("request body is empty", body["error"])
}

func (s *APISuite) TestHealth() {
	status, body := s.do(http.MethodGet, "/api/healthz", nil)
	s.Equal(http.StatusOK, status)
	s.Equal("ok", body["status"])

	status, body = s.do(http.MethodGet, "/api/readyz", nil)
	s.Equal(http.StatusOK, status)
	s.Equal("ready", body["status"])
}

func (s *APISuite) TestUnknownRoute() {
	status, body := s.do(http.MethodGet, "/api/nowhere", nil)

	s.Equal(http.StatusNotFound, status)
	s.Equal(false, body["success"])
}

func (s *APISuite) TestWrongMethodIs405() {
	status, body := s.do(http.MethodGet, "/api/simulation/submit", nil)

	s.Equal(http.StatusMethodNotAllowed, status)
	s.Equal(false, body["success"])
	s.Equal("METHOD_NOT_ALLOWED", body["code"])
	s.Equal("method GET not allowed on /api/simulation/submit", body["error"])
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APISuite))
}

type panickingAI struct {
	services.AIService
}

func (panickingAI) MentorChat(context.Context, services.MentorChatRequest) (*services.MentorChatResult, error) {
	panic(fmt.Sprintf("nil map in %s", "mentor"))
}

type failingPinger struct{}

func (failingPinger) PingContext(context.Context) error { return fmt.Errorf("connection refused") }

func TestRecoveryAndReadiness(t *testing.T) {
	srv := &Server{AIService: panickingAI{}, DB: failingPinger{}}
	h := srv.Routes()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/ai/mentor-chat",
		bytes.NewBufferString(`{"message":"hi","userId":"u1"}`)))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "INTERNAL_ERROR", body["code"])
	assert.Equal(t, "internal server error", body["error"])
	assert.Equal(t, false, body["success"])

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
