package services

import (
	"context"

	"github.com/studyhub/studyhub/internal/model"
	"github.com/studyhub/studyhub/internal/store"
)

// UserService handles user-related operations.
type UserService struct {
	store store.Store
}

func NewUserService(s store.Store) *UserService { return &UserService{store: s} }

func (s *UserService) GetUser(ctx context.Context, userID string) (*model.User, error) {
	return s.store.Users().Get(ctx, userID)
}

func (s *UserService) UpdateUser(ctx context.Context, userID string, up store.UserUpdate) (*model.User, error) {
	return s.store.Users().Update(ctx, userID, up)
}
