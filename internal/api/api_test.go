package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyhub/studyhub/internal/ai"
	"github.com/studyhub/studyhub/internal/model"
	"github.com/studyhub/studyhub/internal/store/memstore"
)

// stubGenerator is a canned ai.Generator for handler tests.
type stubGenerator struct {
	questions []ai.GeneratedQuestion
	cards     []ai.GeneratedFlashcard
	plan      *ai.GeneratedPlan
	summary   string
	reply     string
	extracted string
	err       error

	chatCalls [][]ai.ChatTurn
}

func (s *stubGenerator) GenerateQuiz(ctx context.Context, subject, topic, content string, n int) ([]ai.GeneratedQuestion, error) {
	return s.questions, s.err
}

func (s *stubGenerator) GenerateFlashcards(ctx context.Context, subject, topic, content string) ([]ai.GeneratedFlashcard, error) {
	return s.cards, s.err
}

func (s *stubGenerator) GenerateSummary(ctx context.Context, content string) (string, error) {
	return s.summary, s.err
}

func (s *stubGenerator) GenerateStudyPlan(ctx context.Context, subject string, topics []string, days, hours int) (*ai.GeneratedPlan, error) {
	return s.plan, s.err
}

func (s *stubGenerator) ChatWithTutor(ctx context.Context, history []ai.ChatTurn, subject string) (string, error) {
	s.chatCalls = append(s.chatCalls, history)
	return s.reply, s.err
}

func (s *stubGenerator) ExtractTextFromImage(ctx context.Context, base64Image string) (string, error) {
	return s.extracted, s.err
}

func newTestServer(t *testing.T, gen *stubGenerator) *httptest.Server {
	t.Helper()
	st := memstore.New()
	st.Seed("user-1")
	srv := httptest.NewServer(NewRouter(st, gen, "user-1"))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body interface{}, out interface{}) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestGetUserReturnsSeededDemoUser(t *testing.T) {
	srv := newTestServer(t, &stubGenerator{})

	var u model.User
	code := doJSON(t, http.MethodGet, srv.URL+"/api/user", nil, &u)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "user-1", u.ID)
	assert.Equal(t, "Alex", u.Name)
}

func TestPatchUserMergesPartialFields(t *testing.T) {
	srv := newTestServer(t, &stubGenerator{})

	var u model.User
	code := doJSON(t, http.MethodPatch, srv.URL+"/api/user", map[string]interface{}{"name": "Alexandra"}, &u)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Alexandra", u.Name)
	assert.Equal(t, "alex@example.com", u.Email)
	assert.Equal(t, 7, u.CurrentStreak)
}

func TestGenerateQuizAssignsQuestionIDs(t *testing.T) {
	gen := &stubGenerator{}
	for i := 0; i < 5; i++ {
		gen.questions = append(gen.questions, ai.GeneratedQuestion{
			Question:      fmt.Sprintf("Q%d", i),
			Options:       []string{"a", "b", "c", "d"},
			CorrectAnswer: i % 4,
			Explanation:   "because",
		})
	}
	srv := newTestServer(t, gen)

	var quiz model.Quiz
	code := doJSON(t, http.MethodPost, srv.URL+"/api/quizzes/generate", map[string]interface{}{
		"title": "Kinematics", "subject": "Physics", "content": "notes", "numberOfQuestions": 5,
	}, &quiz)
	require.Equal(t, http.StatusCreated, code)
	require.Len(t, quiz.Questions, 5)
	for i, q := range quiz.Questions {
		assert.Equal(t, fmt.Sprintf("q-%d", i), q.ID)
		assert.Equal(t, fmt.Sprintf("Q%d", i), q.Question)
	}
	assert.False(t, quiz.Completed)

	// Stored quiz is fetchable by id.
	var fetched model.Quiz
	code = doJSON(t, http.MethodGet, srv.URL+"/api/quizzes/"+quiz.ID, nil, &fetched)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, quiz.ID, fetched.ID)
}

func TestGenerateQuizValidation(t *testing.T) {
	srv := newTestServer(t, &stubGenerator{})

	code := doJSON(t, http.MethodPost, srv.URL+"/api/quizzes/generate", map[string]interface{}{
		"subject": "Physics",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestGenerateQuizUpstreamFailureIs500(t *testing.T) {
	srv := newTestServer(t, &stubGenerator{err: fmt.Errorf("completion content is not the expected JSON shape")})

	var errBody map[string]interface{}
	code := doJSON(t, http.MethodPost, srv.URL+"/api/quizzes/generate", map[string]interface{}{
		"title": "t", "subject": "Physics", "numberOfQuestions": 3,
	}, &errBody)
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Contains(t, errBody["error"], "JSON shape")
}

func TestGetQuizNotFound(t *testing.T) {
	srv := newTestServer(t, &stubGenerator{})

	var errBody map[string]interface{}
	code := doJSON(t, http.MethodGet, srv.URL+"/api/quizzes/nope", nil, &errBody)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestPatchQuizNotFoundIs404(t *testing.T) {
	srv := newTestServer(t, &stubGenerator{})

	code := doJSON(t, http.MethodPatch, srv.URL+"/api/quizzes/nope", map[string]interface{}{"completed": true}, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestCompletingQuizUnlocksAchievement(t *testing.T) {
	gen := &stubGenerator{questions: []ai.GeneratedQuestion{{Question: "Q", Options: []string{"a", "b", "c", "d"}}}}
	srv := newTestServer(t, gen)

	var quiz model.Quiz
	code := doJSON(t, http.MethodPost, srv.URL+"/api/quizzes/generate", map[string]interface{}{
		"title": "t", "subject": "Physics", "numberOfQuestions": 1,
	}, &quiz)
	require.Equal(t, http.StatusCreated, code)

	code = doJSON(t, http.MethodPatch, srv.URL+"/api/quizzes/"+quiz.ID, map[string]interface{}{
		"completed": true, "score": 100.0,
	}, nil)
	require.Equal(t, http.StatusOK, code)

	var badges []model.Achievement
	code = doJSON(t, http.MethodGet, srv.URL+"/api/achievements", nil, &badges)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, badges, 1)
	assert.Equal(t, "quiz_completed", badges[0].Type)

	// A second completion does not duplicate the badge.
	code = doJSON(t, http.MethodPatch, srv.URL+"/api/quizzes/"+quiz.ID, map[string]interface{}{
		"completed": true, "score": 80.0,
	}, nil)
	require.Equal(t, http.StatusOK, code)
	code = doJSON(t, http.MethodGet, srv.URL+"/api/achievements", nil, &badges)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, badges, 1)
}

func TestGenerateFlashcardsPersistsInOrder(t *testing.T) {
	gen := &stubGenerator{cards: []ai.GeneratedFlashcard{
		{Front: "F0", Back: "B0"},
		{Front: "F1", Back: "B1"},
		{Front: "F2", Back: "B2"},
	}}
	srv := newTestServer(t, gen)

	var cards []model.Flashcard
	code := doJSON(t, http.MethodPost, srv.URL+"/api/flashcards/generate", map[string]interface{}{
		"subject": "Physics", "topic": "Kinematics", "content": "notes",
	}, &cards)
	require.Equal(t, http.StatusCreated, code)
	require.Len(t, cards, 3)
	for i, c := range cards {
		assert.Equal(t, fmt.Sprintf("F%d", i), c.Front)
		assert.False(t, c.Mastered)
		assert.Zero(t, c.ReviewCount)
	}
}

func TestListFlashcardsFiltersBySubject(t *testing.T) {
	gen := &stubGenerator{cards: []ai.GeneratedFlashcard{{Front: "F", Back: "B"}}}
	srv := newTestServer(t, gen)

	for _, subject := range []string{"Physics", "Chemistry"} {
		code := doJSON(t, http.MethodPost, srv.URL+"/api/flashcards/generate", map[string]interface{}{
			"subject": subject, "topic": "t", "content": "c",
		}, nil)
		require.Equal(t, http.StatusCreated, code)
	}

	var cards []model.Flashcard
	code := doJSON(t, http.MethodGet, srv.URL+"/api/flashcards?subject=Physics", nil, &cards)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, cards, 1)
	assert.Equal(t, "Physics", cards[0].Subject)
}

func TestCreateSessionBumpsStudyHours(t *testing.T) {
	srv := newTestServer(t, &stubGenerator{})

	var before model.User
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, srv.URL+"/api/user", nil, &before))

	var sess model.StudySession
	code := doJSON(t, http.MethodPost, srv.URL+"/api/study-sessions", map[string]interface{}{
		"subject": "Physics", "topic": "Kinematics", "duration": 90,
	}, &sess)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, 90, sess.Duration)

	var after model.User
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, srv.URL+"/api/user", nil, &after))
	assert.InDelta(t, before.TotalStudyHours+1.5, after.TotalStudyHours, 1e-9)
}

func TestListSessionsNewestFirstWithLimit(t *testing.T) {
	srv := newTestServer(t, &stubGenerator{})

	for _, topic := range []string{"one", "two", "three"} {
		code := doJSON(t, http.MethodPost, srv.URL+"/api/study-sessions", map[string]interface{}{
			"subject": "Physics", "topic": topic, "duration": 10,
		}, nil)
		require.Equal(t, http.StatusCreated, code)
	}

	var sessions []model.StudySession
	code := doJSON(t, http.MethodGet, srv.URL+"/api/study-sessions?limit=2", nil, &sessions)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, sessions, 2)
	assert.False(t, sessions[0].Date.Before(sessions[1].Date))
}

func TestChatRoundTripAppendsBothMessages(t *testing.T) {
	gen := &stubGenerator{reply: "Inertia resists changes in motion."}
	srv := newTestServer(t, gen)

	var reply model.Message
	code := doJSON(t, http.MethodPost, srv.URL+"/api/messages", map[string]interface{}{"content": "What is inertia?"}, &reply)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, model.RoleAssistant, reply.Role)
	assert.Equal(t, "Inertia resists changes in motion.", reply.Content)

	code = doJSON(t, http.MethodPost, srv.URL+"/api/messages", map[string]interface{}{"content": "Give an example."}, &reply)
	require.Equal(t, http.StatusCreated, code)

	var msgs []model.Message
	code = doJSON(t, http.MethodGet, srv.URL+"/api/messages", nil, &msgs)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, msgs, 4)
	assert.Equal(t, []string{model.RoleUser, model.RoleAssistant, model.RoleUser, model.RoleAssistant},
		[]string{msgs[0].Role, msgs[1].Role, msgs[2].Role, msgs[3].Role})

	// The tutor saw the persisted history including the new user turn.
	require.Len(t, gen.chatCalls, 2)
	assert.Len(t, gen.chatCalls[0], 1)
	assert.Len(t, gen.chatCalls[1], 3)
}

func TestGeneratePlanReturnsEphemeralTasks(t *testing.T) {
	gen := &stubGenerator{plan: &ai.GeneratedPlan{
		Title:       "Two week physics",
		Description: "Cover mechanics",
		DailyTasks:  []ai.PlanTask{{Day: 1, Topic: "Kinematics", Duration: 120, Activities: []string{"read"}, Priority: "high"}},
	}}
	srv := newTestServer(t, gen)

	var out struct {
		model.StudyPlan
		AIGenerated ai.GeneratedPlan `json:"aiGenerated"`
	}
	code := doJSON(t, http.MethodPost, srv.URL+"/api/study-plans/generate", map[string]interface{}{
		"subject": "Physics", "topics": []string{"Kinematics"}, "daysAvailable": 14, "hoursPerDay": 2,
	}, &out)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "Two week physics", out.Title)
	assert.Equal(t, model.PlanActive, out.Status)
	assert.Empty(t, out.DailyTasks)
	require.Len(t, out.AIGenerated.DailyTasks, 1)

	// The persisted plan still has no daily tasks.
	var plans []model.StudyPlan
	code = doJSON(t, http.MethodGet, srv.URL+"/api/study-plans", nil, &plans)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, plans, 1)
	assert.Empty(t, plans[0].DailyTasks)
}

func TestUpdatePlanStatus(t *testing.T) {
	srv := newTestServer(t, &stubGenerator{})

	var plan model.StudyPlan
	code := doJSON(t, http.MethodPost, srv.URL+"/api/study-plans", map[string]interface{}{
		"title": "Midterm prep", "description": "d", "subject": "Physics",
		"startDate": "2026-09-01T00:00:00Z", "endDate": "2026-09-15T00:00:00Z",
	}, &plan)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, model.PlanActive, plan.Status)

	var updated model.StudyPlan
	code = doJSON(t, http.MethodPatch, srv.URL+"/api/study-plans/"+plan.ID, map[string]interface{}{
		"status": "completed",
	}, &updated)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, model.PlanCompleted, updated.Status)
	assert.Equal(t, "Midterm prep", updated.Title)

	code = doJSON(t, http.MethodPatch, srv.URL+"/api/study-plans/"+plan.ID, map[string]interface{}{
		"status": "abandoned",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestSummaryAndExtractImage(t *testing.T) {
	gen := &stubGenerator{summary: "A short summary.", extracted: "Notes from the whiteboard."}
	srv := newTestServer(t, gen)

	var sum map[string]string
	code := doJSON(t, http.MethodPost, srv.URL+"/api/generate/summary", map[string]interface{}{"content": "long text"}, &sum)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "A short summary.", sum["summary"])

	var ext map[string]string
	code = doJSON(t, http.MethodPost, srv.URL+"/api/generate/extract-image", map[string]interface{}{"image": "aGVsbG8="}, &ext)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Notes from the whiteboard.", ext["text"])
}

func TestProgressEndpointListsSeededSubjects(t *testing.T) {
	srv := newTestServer(t, &stubGenerator{})

	var prog []model.Progress
	code := doJSON(t, http.MethodGet, srv.URL+"/api/progress", nil, &prog)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, prog, 3)
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t, &stubGenerator{})

	var out map[string]interface{}
	code := doJSON(t, http.MethodGet, srv.URL+"/api/health", nil, &out)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "healthy", out["status"])
}

func TestInvalidJSONBodyIs400(t *testing.T) {
	srv := newTestServer(t, &stubGenerator{})

	resp, err := http.Post(srv.URL+"/api/messages", "application/json", bytes.NewBufferString("{not json"))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
