package services

import (
	"context"
	"fmt"

	"github.com/studyhub/studyhub/internal/ai"
	"github.com/studyhub/studyhub/internal/model"
	"github.com/studyhub/studyhub/internal/store"
)

// QuizService orchestrates quiz use cases.
type QuizService struct {
	store store.Store
	gen   ai.Generator
}

func NewQuizService(s store.Store, gen ai.Generator) *QuizService {
	return &QuizService{store: s, gen: gen}
}

func (s *QuizService) ListQuizzes(ctx context.Context, userID string) ([]*model.Quiz, error) {
	return s.store.Quizzes().List(ctx, userID)
}

func (s *QuizService) GetQuiz(ctx context.Context, quizID string) (*model.Quiz, error) {
	return s.store.Quizzes().Get(ctx, quizID)
}

// GenerateQuiz asks the completion service for questions and stores the
// quiz. Question ids are assigned q-0..q-(n-1) in generator order.
func (s *QuizService) GenerateQuiz(ctx context.Context, userID, title, subject, content string, numQuestions int) (*model.Quiz, error) {
	generated, err := s.gen.GenerateQuiz(ctx, subject, title, content, numQuestions)
	if err != nil {
		return nil, err
	}

	questions := make([]model.Question, 0, len(generated))
	for i, q := range generated {
		explanation := q.Explanation
		questions = append(questions, model.Question{
			ID:            fmt.Sprintf("q-%d", i),
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   &explanation,
		})
	}

	return s.store.Quizzes().Create(ctx, &model.Quiz{
		UserID:    userID,
		Title:     title,
		Subject:   subject,
		Questions: questions,
		Completed: false,
	})
}

// UpdateQuiz applies the patch. Completing a quiz for the first time
// unlocks the quiz-completion achievement for the owner.
func (s *QuizService) UpdateQuiz(ctx context.Context, quizID string, up store.QuizUpdate) (*model.Quiz, error) {
	quiz, err := s.store.Quizzes().Update(ctx, quizID, up)
	if err != nil {
		return nil, err
	}

	if up.Completed != nil && *up.Completed && up.Score != nil {
		if err := s.unlockFirstCompletion(ctx, quiz.UserID); err != nil {
			return nil, err
		}
	}
	return quiz, nil
}

const achievementQuizCompleted = "quiz_completed"

func (s *QuizService) unlockFirstCompletion(ctx context.Context, userID string) error {
	existing, err := s.store.Achievements().List(ctx, userID)
	if err != nil {
		return err
	}
	for _, a := range existing {
		if a.Type == achievementQuizCompleted {
			return nil
		}
	}
	_, err = s.store.Achievements().Unlock(ctx, &model.Achievement{
		UserID:      userID,
		Type:        achievementQuizCompleted,
		Title:       "Quiz Champion",
		Description: "Completed your first quiz",
		Icon:        "trophy",
	})
	return err
}
