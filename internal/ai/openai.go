package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client talks to an OpenAI-compatible chat-completions endpoint.
type Client struct {
	http  *resty.Client
	model string
}

// NewClient builds a Client for the given endpoint. baseURL should point
// at the API root (e.g. https://api.openai.com/v1).
func NewClient(baseURL, apiKey, model string) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(apiKey).
		SetTimeout(2 * time.Minute)
	return &Client{http: c, model: model}
}

var _ Generator = (*Client)(nil)

type chatMessage struct {
	Role    string      `json:"role"`
	Content interface{} `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
	MaxTokens      int             `json:"max_completion_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// complete performs one round trip and returns the first choice's content.
// jsonMode asks the service to return a JSON object.
func (c *Client) complete(ctx context.Context, messages []chatMessage, jsonMode bool, maxTokens int) (string, error) {
	req := chatRequest{Model: c.model, Messages: messages, MaxTokens: maxTokens}
	if jsonMode {
		req.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	var out chatResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(&req).
		SetResult(&out).
		SetError(&out).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("completion request: %w", err)
	}
	if out.Error != nil && out.Error.Message != "" {
		return "", fmt.Errorf("completion service: %s", out.Error.Message)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("completion status %d: %s", resp.StatusCode(), resp.String())
	}
	if len(out.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}

// completeJSON performs one round trip in JSON mode and decodes the
// content into v. An unparseable payload is an error, never an empty
// default.
func (c *Client) completeJSON(ctx context.Context, messages []chatMessage, v interface{}) error {
	content, err := c.complete(ctx, messages, true, 0)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(content), v); err != nil {
		return fmt.Errorf("completion content is not the expected JSON shape: %w", err)
	}
	return nil
}

func (c *Client) GenerateQuiz(ctx context.Context, subject, topic, content string, numQuestions int) ([]GeneratedQuestion, error) {
	prompt := fmt.Sprintf(`Based on the following content about %s - %s, generate %d multiple choice questions.

Content:
%s

Return a JSON object with this exact structure:
{
  "questions": [
    {
      "question": "string",
      "options": ["option1", "option2", "option3", "option4"],
      "correctAnswer": 0,
      "explanation": "string"
    }
  ]
}`, subject, topic, numQuestions, content)

	var out struct {
		Questions []GeneratedQuestion `json:"questions"`
	}
	messages := []chatMessage{
		{Role: "system", Content: "You are an expert educator creating high-quality quiz questions. Always respond with valid JSON only."},
		{Role: "user", Content: prompt},
	}
	if err := c.completeJSON(ctx, messages, &out); err != nil {
		return nil, err
	}
	return out.Questions, nil
}

func (c *Client) GenerateFlashcards(ctx context.Context, subject, topic, content string) ([]GeneratedFlashcard, error) {
	prompt := fmt.Sprintf(`Based on the following content about %s - %s, generate 10 flashcards for studying.

Content:
%s

Return a JSON object with this exact structure:
{
  "flashcards": [
    {
      "front": "question or term",
      "back": "answer or definition"
    }
  ]
}`, subject, topic, content)

	var out struct {
		Flashcards []GeneratedFlashcard `json:"flashcards"`
	}
	messages := []chatMessage{
		{Role: "system", Content: "You are an expert educator creating effective flashcards. Always respond with valid JSON only."},
		{Role: "user", Content: prompt},
	}
	if err := c.completeJSON(ctx, messages, &out); err != nil {
		return nil, err
	}
	return out.Flashcards, nil
}

func (c *Client) GenerateSummary(ctx context.Context, content string) (string, error) {
	prompt := "Please create a comprehensive summary of the following content, highlighting key concepts and important points:\n\n" + content
	return c.complete(ctx, []chatMessage{{Role: "user", Content: prompt}}, false, 0)
}

func (c *Client) GenerateStudyPlan(ctx context.Context, subject string, topics []string, daysAvailable, hoursPerDay int) (*GeneratedPlan, error) {
	prompt := fmt.Sprintf(`Create a %d-day study plan for %s covering the following topics: %s.

The student has %d hours available per day.

Return a JSON object with this exact structure:
{
  "plan": {
    "title": "string",
    "description": "string",
    "dailyTasks": [
      {
        "day": 1,
        "topic": "string",
        "duration": 60,
        "activities": ["activity1", "activity2"],
        "priority": "high|medium|low"
      }
    ]
  }
}`, daysAvailable, subject, strings.Join(topics, ", "), hoursPerDay)

	var out struct {
		Plan GeneratedPlan `json:"plan"`
	}
	messages := []chatMessage{
		{Role: "system", Content: "You are an expert study planner creating personalized learning schedules. Always respond with valid JSON only."},
		{Role: "user", Content: prompt},
	}
	if err := c.completeJSON(ctx, messages, &out); err != nil {
		return nil, err
	}
	return &out.Plan, nil
}

func (c *Client) ChatWithTutor(ctx context.Context, history []ChatTurn, subject string) (string, error) {
	system := "You are a helpful AI tutor. Provide clear, educational responses to student questions. Use examples and break down complex topics."
	if subject != "" {
		system = fmt.Sprintf("You are an expert tutor specializing in %s. Provide clear, step-by-step explanations. Break down complex concepts into simple terms. Use examples to illustrate points.", subject)
	}

	messages := make([]chatMessage, 0, len(history)+1)
	messages = append(messages, chatMessage{Role: "system", Content: system})
	for _, turn := range history {
		messages = append(messages, chatMessage{Role: turn.Role, Content: turn.Content})
	}
	return c.complete(ctx, messages, false, 2048)
}

func (c *Client) ExtractTextFromImage(ctx context.Context, base64Image string) (string, error) {
	messages := []chatMessage{{
		Role: "user",
		Content: []contentPart{
			{Type: "text", Text: "Extract and transcribe all text from this image. If it contains educational content, notes, or diagrams, describe them in detail."},
			{Type: "image_url", ImageURL: &imageURL{URL: "data:image/jpeg;base64," + base64Image}},
		},
	}}
	return c.complete(ctx, messages, false, 2048)
}
