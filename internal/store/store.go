package store

import (
	"context"

	"github.com/studyhub/studyhub/internal/model"
)

// Store exposes persistence operations required by services.
// Implementations live under internal/store/<driver>/ (e.g., memstore).
type Store interface {
	Users() Users
	StudyPlans() StudyPlans
	Quizzes() Quizzes
	Flashcards() Flashcards
	Sessions() Sessions
	Achievements() Achievements
	Messages() Messages
	Progress() Progress
}

type Users interface {
	Create(ctx context.Context, u *model.User) (*model.User, error)
	Get(ctx context.Context, userID string) (*model.User, error)
	Update(ctx context.Context, userID string, updates UserUpdate) (*model.User, error)
	// AddStudyHours atomically increments totalStudyHours. The increment
	// runs entirely under the store lock so concurrent session creates
	// cannot lose an update.
	AddStudyHours(ctx context.Context, userID string, hours float64) (*model.User, error)
}

// UserUpdate carries the patchable subset of User. Nil fields are left
// unchanged.
type UserUpdate struct {
	Name            *string
	Email           *string
	Avatar          *string
	Subjects        []string
	StudyTimePerDay *int
	CurrentStreak   *int
	TotalStudyHours *float64
}

type StudyPlans interface {
	Create(ctx context.Context, p *model.StudyPlan) (*model.StudyPlan, error)
	Get(ctx context.Context, planID string) (*model.StudyPlan, error)
	List(ctx context.Context, userID string) ([]*model.StudyPlan, error)
	Update(ctx context.Context, planID string, updates StudyPlanUpdate) (*model.StudyPlan, error)
}

type StudyPlanUpdate struct {
	Title       *string
	Description *string
	Subject     *string
	Status      *string
	DailyTasks  []model.DailyTask
}

type Quizzes interface {
	Create(ctx context.Context, q *model.Quiz) (*model.Quiz, error)
	Get(ctx context.Context, quizID string) (*model.Quiz, error)
	List(ctx context.Context, userID string) ([]*model.Quiz, error)
	Update(ctx context.Context, quizID string, updates QuizUpdate) (*model.Quiz, error)
}

type QuizUpdate struct {
	Completed *bool
	Score     *float64
	Questions []model.Question
}

type Flashcards interface {
	Create(ctx context.Context, f *model.Flashcard) (*model.Flashcard, error)
	Get(ctx context.Context, cardID string) (*model.Flashcard, error)
	// List returns the user's cards; subject filters when non-empty.
	List(ctx context.Context, userID, subject string) ([]*model.Flashcard, error)
	Update(ctx context.Context, cardID string, updates FlashcardUpdate) (*model.Flashcard, error)
}

type FlashcardUpdate struct {
	Front       *string
	Back        *string
	Mastered    *bool
	NextReview  *string
	ReviewCount *int
}

type Sessions interface {
	Create(ctx context.Context, s *model.StudySession) (*model.StudySession, error)
	// List returns the user's sessions newest first; limit caps the result
	// when positive.
	List(ctx context.Context, userID string, limit int) ([]*model.StudySession, error)
}

type Achievements interface {
	List(ctx context.Context, userID string) ([]*model.Achievement, error)
	Unlock(ctx context.Context, a *model.Achievement) (*model.Achievement, error)
}

type Messages interface {
	Create(ctx context.Context, m *model.Message) (*model.Message, error)
	// List returns the user's messages oldest first.
	List(ctx context.Context, userID string) ([]*model.Message, error)
}

type Progress interface {
	List(ctx context.Context, userID string) ([]*model.Progress, error)
	// Upsert keys on (userID, subject); topic and mastery overwrite the
	// prior record, totalTime carries forward.
	Upsert(ctx context.Context, userID, subject, topic string, mastery int) (*model.Progress, error)
	// AddTime accumulates minutes studied for a subject, creating the
	// record if absent.
	AddTime(ctx context.Context, userID, subject string, minutes int) (*model.Progress, error)
}
