package model

import "time"

// User is the account record. A single demo user is seeded at startup.
type User struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Avatar          *string   `json:"avatar,omitempty"`
	Subjects        []string  `json:"subjects"`
	StudyTimePerDay int       `json:"studyTimePerDay"`
	CurrentStreak   int       `json:"currentStreak"`
	TotalStudyHours float64   `json:"totalStudyHours"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Plan status values.
const (
	PlanActive    = "active"
	PlanCompleted = "completed"
	PlanPaused    = "paused"
)

// StudyPlan is a scheduled course of study for one subject.
// DailyTasks is empty at creation; the AI generation path returns tasks
// alongside the stored plan without persisting them.
type StudyPlan struct {
	ID          string      `json:"id"`
	UserID      string      `json:"userId"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Subject     string      `json:"subject"`
	StartDate   time.Time   `json:"startDate"`
	EndDate     time.Time   `json:"endDate"`
	DailyTasks  []DailyTask `json:"dailyTasks"`
	Status      string      `json:"status"`
}

// DailyTask is a single scheduled study activity within a plan.
type DailyTask struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	Topic     string    `json:"topic"`
	Duration  int       `json:"duration"`
	Completed bool      `json:"completed"`
	Priority  string    `json:"priority"`
}

// Quiz holds an ordered set of multiple-choice questions.
type Quiz struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	Title     string     `json:"title"`
	Subject   string     `json:"subject"`
	Questions []Question `json:"questions"`
	Completed bool       `json:"completed"`
	Score     *float64   `json:"score,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Question is one multiple-choice item with four options.
type Question struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   *string  `json:"explanation,omitempty"`
	UserAnswer    *int     `json:"userAnswer,omitempty"`
}

// Flashcard is a front/back review card.
type Flashcard struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Subject     string    `json:"subject"`
	Front       string    `json:"front"`
	Back        string    `json:"back"`
	Mastered    bool      `json:"mastered"`
	NextReview  time.Time `json:"nextReview"`
	ReviewCount int       `json:"reviewCount"`
}

// StudySession records one completed study sitting.
type StudySession struct {
	ID       string    `json:"id"`
	UserID   string    `json:"userId"`
	Subject  string    `json:"subject"`
	Topic    string    `json:"topic"`
	Duration int       `json:"duration"`
	Date     time.Time `json:"date"`
	Notes    *string   `json:"notes,omitempty"`
}

// Achievement is an unlocked badge.
type Achievement struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	UnlockedAt  time.Time `json:"unlockedAt"`
}

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one entry in the append-only tutor chat log.
type Message struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Progress tracks mastery per (userId, subject). Topic is informational
// only and not part of the key; a later update for the same subject
// overwrites it.
type Progress struct {
	UserID      string    `json:"userId"`
	Subject     string    `json:"subject"`
	Topic       string    `json:"topic"`
	Mastery     int       `json:"mastery"`
	LastStudied time.Time `json:"lastStudied"`
	TotalTime   int       `json:"totalTime"`
}
