package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// completionServer returns a test server that replies with the given
// message content and records the decoded request body.
func completionServer(t *testing.T, content string, capture *map[string]interface{}) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		if capture != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(capture))
		}
		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestGenerateQuizParsesQuestions(t *testing.T) {
	body := `{"questions":[{"question":"What is v?","options":["s/t","s*t","t/s","s+t"],"correctAnswer":0,"explanation":"Velocity is displacement over time."}]}`
	var captured map[string]interface{}
	srv := completionServer(t, body, &captured)
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", "test-model")
	qs, err := c.GenerateQuiz(context.Background(), "Physics", "Kinematics", "notes", 1)
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.Equal(t, "What is v?", qs[0].Question)
	assert.Len(t, qs[0].Options, 4)
	assert.Equal(t, 0, qs[0].CorrectAnswer)

	// JSON mode must be requested for structured output.
	rf, ok := captured["response_format"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "json_object", rf["type"])
	assert.Equal(t, "test-model", captured["model"])
}

func TestGenerateQuizRejectsUnparseableContent(t *testing.T) {
	srv := completionServer(t, "sorry, here is prose instead of JSON", nil)
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", "test-model")
	_, err := c.GenerateQuiz(context.Background(), "Physics", "Kinematics", "notes", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected JSON shape")
}

func TestCompleteSurfacesServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"invalid api key"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "bad-key", "test-model")
	_, err := c.GenerateSummary(context.Background(), "content")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid api key")
}

func TestGenerateFlashcardsParsesCards(t *testing.T) {
	body := `{"flashcards":[{"front":"Term","back":"Definition"},{"front":"F2","back":"B2"}]}`
	srv := completionServer(t, body, nil)
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", "test-model")
	cards, err := c.GenerateFlashcards(context.Background(), "Chemistry", "Bonding", "notes")
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "Term", cards[0].Front)
	assert.Equal(t, "B2", cards[1].Back)
}

func TestGenerateStudyPlanParsesPlan(t *testing.T) {
	body := `{"plan":{"title":"Two week physics","description":"desc","dailyTasks":[{"day":1,"topic":"Kinematics","duration":90,"activities":["read","practice"],"priority":"high"}]}}`
	srv := completionServer(t, body, nil)
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", "test-model")
	plan, err := c.GenerateStudyPlan(context.Background(), "Physics", []string{"Kinematics", "Dynamics"}, 14, 2)
	require.NoError(t, err)
	assert.Equal(t, "Two week physics", plan.Title)
	require.Len(t, plan.DailyTasks, 1)
	assert.Equal(t, 1, plan.DailyTasks[0].Day)
	assert.Equal(t, "high", plan.DailyTasks[0].Priority)
}

func TestChatWithTutorSystemPromptVariesBySubject(t *testing.T) {
	var captured map[string]interface{}
	srv := completionServer(t, "A reply.", &captured)
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", "test-model")
	history := []ChatTurn{{Role: "user", Content: "Explain inertia"}}

	reply, err := c.ChatWithTutor(context.Background(), history, "Physics")
	require.NoError(t, err)
	assert.Equal(t, "A reply.", reply)

	msgs := captured["messages"].([]interface{})
	system := msgs[0].(map[string]interface{})
	assert.Equal(t, "system", system["role"])
	assert.Contains(t, system["content"], "specializing in Physics")

	_, err = c.ChatWithTutor(context.Background(), history, "")
	require.NoError(t, err)
	system = captured["messages"].([]interface{})[0].(map[string]interface{})
	assert.Contains(t, system["content"], "helpful AI tutor")
}

func TestExtractTextFromImageSendsImagePart(t *testing.T) {
	var captured map[string]interface{}
	srv := completionServer(t, "transcribed text", &captured)
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", "test-model")
	text, err := c.ExtractTextFromImage(context.Background(), "aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, "transcribed text", text)

	msgs := captured["messages"].([]interface{})
	parts := msgs[0].(map[string]interface{})["content"].([]interface{})
	require.Len(t, parts, 2)
	img := parts[1].(map[string]interface{})
	assert.Equal(t, "image_url", img["type"])
	assert.Contains(t, img["image_url"].(map[string]interface{})["url"], "base64,aGVsbG8=")
}
