package services

import (
	"context"

	"github.com/studyhub/studyhub/internal/ai"
	"github.com/studyhub/studyhub/internal/model"
	"github.com/studyhub/studyhub/internal/store"
)

// FlashcardService orchestrates flashcard use cases.
type FlashcardService struct {
	store store.Store
	gen   ai.Generator
}

func NewFlashcardService(s store.Store, gen ai.Generator) *FlashcardService {
	return &FlashcardService{store: s, gen: gen}
}

func (s *FlashcardService) ListFlashcards(ctx context.Context, userID, subject string) ([]*model.Flashcard, error) {
	return s.store.Flashcards().List(ctx, userID, subject)
}

func (s *FlashcardService) UpdateFlashcard(ctx context.Context, cardID string, up store.FlashcardUpdate) (*model.Flashcard, error) {
	return s.store.Flashcards().Update(ctx, cardID, up)
}

// GenerateFlashcards asks the completion service for cards and persists
// each one in generator order. A persistence failure partway through the
// batch is surfaced as-is; already-created cards are not rolled back.
func (s *FlashcardService) GenerateFlashcards(ctx context.Context, userID, subject, topic, content string) ([]*model.Flashcard, error) {
	generated, err := s.gen.GenerateFlashcards(ctx, subject, topic, content)
	if err != nil {
		return nil, err
	}

	cards := make([]*model.Flashcard, 0, len(generated))
	for _, g := range generated {
		card, err := s.store.Flashcards().Create(ctx, &model.Flashcard{
			UserID:  userID,
			Subject: subject,
			Front:   g.Front,
			Back:    g.Back,
		})
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}
