package services

import (
	"context"
	"time"

	"github.com/studyhub/studyhub/internal/ai"
	"github.com/studyhub/studyhub/internal/model"
	"github.com/studyhub/studyhub/internal/store"
)

// PlanService orchestrates study-plan use cases.
type PlanService struct {
	store store.Store
	gen   ai.Generator
}

func NewPlanService(s store.Store, gen ai.Generator) *PlanService {
	return &PlanService{store: s, gen: gen}
}

func (s *PlanService) ListPlans(ctx context.Context, userID string) ([]*model.StudyPlan, error) {
	return s.store.StudyPlans().List(ctx, userID)
}

func (s *PlanService) CreatePlan(ctx context.Context, p *model.StudyPlan) (*model.StudyPlan, error) {
	return s.store.StudyPlans().Create(ctx, p)
}

func (s *PlanService) UpdatePlan(ctx context.Context, planID string, up store.StudyPlanUpdate) (*model.StudyPlan, error) {
	return s.store.StudyPlans().Update(ctx, planID, up)
}

// GeneratePlan asks the completion service for a plan and stores a plan
// record spanning daysAvailable from now. The generated daily tasks are
// returned for display only; the stored plan keeps an empty task list.
func (s *PlanService) GeneratePlan(ctx context.Context, userID, subject string, topics []string, daysAvailable, hoursPerDay int) (*model.StudyPlan, *ai.GeneratedPlan, error) {
	generated, err := s.gen.GenerateStudyPlan(ctx, subject, topics, daysAvailable, hoursPerDay)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	plan, err := s.store.StudyPlans().Create(ctx, &model.StudyPlan{
		UserID:      userID,
		Title:       generated.Title,
		Description: generated.Description,
		Subject:     subject,
		StartDate:   now,
		EndDate:     now.Add(time.Duration(daysAvailable) * 24 * time.Hour),
	})
	if err != nil {
		return nil, nil, err
	}
	return plan, generated, nil
}
