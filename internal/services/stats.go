package services

import (
	"context"

	"github.com/studyhub/studyhub/internal/model"
	"github.com/studyhub/studyhub/internal/store"
)

// StatsService reads the derived study statistics collections.
type StatsService struct {
	store store.Store
}

func NewStatsService(s store.Store) *StatsService { return &StatsService{store: s} }

func (s *StatsService) ListAchievements(ctx context.Context, userID string) ([]*model.Achievement, error) {
	return s.store.Achievements().List(ctx, userID)
}

func (s *StatsService) ListProgress(ctx context.Context, userID string) ([]*model.Progress, error) {
	return s.store.Progress().List(ctx, userID)
}
