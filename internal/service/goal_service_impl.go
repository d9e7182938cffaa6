package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/keptapp/kept/internal/domain"
	"github.com/keptapp/kept/internal/repository"
)

type goalService struct {
	goals   repository.GoalRepo
	sprints repository.SprintRepo
}

func NewGoalService(goals repository.GoalRepo, sprints repository.SprintRepo) GoalService {
	return &goalService{goals: goals, sprints: sprints}
}

func (s *goalService) Create(ctx context.Context, g *domain.Goal) error {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if g.CreatedAt.IsZero() {
		g.CreatedAt = now
	}
	g.UpdatedAt = now

	if err := g.Validate(); err != nil {
		return err
	}
	if _, err := s.sprints.GetByID(ctx, g.SprintID); err != nil {
		return fmt.Errorf("resolving sprint: %w", err)
	}
	return s.goals.Create(ctx, g)
}

func (s *goalService) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	return s.goals.GetByID(ctx, id)
}

func (s *goalService) List(ctx context.Context) ([]*domain.Goal, error) {
	return s.goals.List(ctx)
}

func (s *goalService) ListBySprint(ctx context.Context, sprintID string) ([]*domain.Goal, error) {
	return s.goals.ListBySprint(ctx, sprintID)
}
