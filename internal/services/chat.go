package services

import (
	"context"

	"github.com/studyhub/studyhub/internal/ai"
	"github.com/studyhub/studyhub/internal/model"
	"github.com/studyhub/studyhub/internal/store"
)

// ChatService runs the tutor conversation loop.
type ChatService struct {
	store store.Store
	gen   ai.Generator
}

func NewChatService(s store.Store, gen ai.Generator) *ChatService {
	return &ChatService{store: s, gen: gen}
}

func (s *ChatService) ListMessages(ctx context.Context, userID string) ([]*model.Message, error) {
	return s.store.Messages().List(ctx, userID)
}

// SendMessage persists the user's message, replays the full history to
// the tutor, persists the reply, and returns only the assistant message.
func (s *ChatService) SendMessage(ctx context.Context, userID, content string) (*model.Message, error) {
	if _, err := s.store.Messages().Create(ctx, &model.Message{
		UserID:  userID,
		Role:    model.RoleUser,
		Content: content,
	}); err != nil {
		return nil, err
	}

	history, err := s.store.Messages().List(ctx, userID)
	if err != nil {
		return nil, err
	}
	turns := make([]ai.ChatTurn, 0, len(history))
	for _, m := range history {
		turns = append(turns, ai.ChatTurn{Role: m.Role, Content: m.Content})
	}

	reply, err := s.gen.ChatWithTutor(ctx, turns, "")
	if err != nil {
		return nil, err
	}

	return s.store.Messages().Create(ctx, &model.Message{
		UserID:  userID,
		Role:    model.RoleAssistant,
		Content: reply,
	})
}
