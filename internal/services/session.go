package services

import (
	"context"

	"github.com/studyhub/studyhub/internal/model"
	"github.com/studyhub/studyhub/internal/store"
)

// SessionService orchestrates study-session use cases.
type SessionService struct {
	store store.Store
}

func NewSessionService(s store.Store) *SessionService { return &SessionService{store: s} }

func (s *SessionService) ListSessions(ctx context.Context, userID string, limit int) ([]*model.StudySession, error) {
	return s.store.Sessions().List(ctx, userID, limit)
}

// CreateSession persists the session, credits the duration to the user's
// total study hours, and accumulates subject study time. The hours
// increment happens under the store lock so concurrent creates never
// lose an update.
func (s *SessionService) CreateSession(ctx context.Context, sess *model.StudySession) (*model.StudySession, error) {
	created, err := s.store.Sessions().Create(ctx, sess)
	if err != nil {
		return nil, err
	}
	if _, err := s.store.Users().AddStudyHours(ctx, created.UserID, float64(created.Duration)/60.0); err != nil {
		return nil, err
	}
	if _, err := s.store.Progress().AddTime(ctx, created.UserID, created.Subject, created.Duration); err != nil {
		return nil, err
	}
	return created, nil
}
