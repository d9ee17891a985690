// Package ai wraps the external chat-completion service used to generate
// study content.
package ai

import "context"

// GeneratedQuestion is one multiple-choice question returned by the model.
type GeneratedQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// GeneratedFlashcard is one front/back pair returned by the model.
type GeneratedFlashcard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// PlanTask is one scheduled day inside a generated study plan.
type PlanTask struct {
	Day        int      `json:"day"`
	Topic      string   `json:"topic"`
	Duration   int      `json:"duration"`
	Activities []string `json:"activities"`
	Priority   string   `json:"priority"`
}

// GeneratedPlan is the study-plan payload returned by the model.
type GeneratedPlan struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DailyTasks  []PlanTask `json:"dailyTasks"`
}

// ChatTurn is one prior message in a tutor conversation.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Generator issues structured-content requests to the completion service.
// Every call is a single round trip; errors propagate unchanged.
type Generator interface {
	GenerateQuiz(ctx context.Context, subject, topic, content string, numQuestions int) ([]GeneratedQuestion, error)
	GenerateFlashcards(ctx context.Context, subject, topic, content string) ([]GeneratedFlashcard, error)
	GenerateSummary(ctx context.Context, content string) (string, error)
	GenerateStudyPlan(ctx context.Context, subject string, topics []string, daysAvailable, hoursPerDay int) (*GeneratedPlan, error)
	ChatWithTutor(ctx context.Context, history []ChatTurn, subject string) (string, error)
	ExtractTextFromImage(ctx context.Context, base64Image string) (string, error)
}
