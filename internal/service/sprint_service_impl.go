package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/keptapp/kept/internal/domain"
	"github.com/keptapp/kept/internal/repository"
)

type sprintService struct {
	sprints repository.SprintRepo
}

func NewSprintService(sprints repository.SprintRepo) SprintService {
	return &sprintService{sprints: sprints}
}

func (s *sprintService) Create(ctx context.Context, sp *domain.Sprint) error {
	if sp.ID == "" {
		sp.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	sp.CreatedAt = now
	sp.UpdatedAt = now
	if sp.Status == "" {
		sp.Status = domain.SprintPlanned
	}
	if err := sp.Validate(); err != nil {
		return err
	}
	return s.sprints.Create(ctx, sp)
}

func (s *sprintService) GetByID(ctx context.Context, id string) (*domain.Sprint, error) {
	return s.sprints.GetByID(ctx, id)
}

func (s *sprintService) GetActive(ctx context.Context) (*domain.Sprint, error) {
	return s.sprints.GetActive(ctx)
}

func (s *sprintService) List(ctx context.Context) ([]*domain.Sprint, error) {
	return s.sprints.List(ctx)
}

// Start activates a sprint. At most one sprint can be active at a time.
func (s *sprintService) Start(ctx context.Context, id string) error {
	sp, err := s.sprints.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sp.Status == domain.SprintActive {
		return fmt.Errorf("sprint %q is already active", sp.Name)
	}
	if sp.Status == domain.SprintClosed {
		return fmt.Errorf("sprint %q is closed and cannot be restarted", sp.Name)
	}

	active, err := s.sprints.GetActive(ctx)
	switch {
	case err == nil:
		return fmt.Errorf("sprint %q is already active; close it first", active.Name)
	case !errors.Is(err, repository.ErrNotFound):
		return err
	}

	sp.Status = domain.SprintActive
	sp.UpdatedAt = time.Now().UTC()
	return s.sprints.Update(ctx, sp)
}

// Close ends the active sprint. Only an active sprint can be closed.
func (s *sprintService) Close(ctx context.Context, id string) error {
	sp, err := s.sprints.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sp.Status != domain.SprintActive {
		return fmt.Errorf("sprint %q is not active", sp.Name)
	}

	sp.Status = domain.SprintClosed
	sp.UpdatedAt = time.Now().UTC()
	return s.sprints.Update(ctx, sp)
}
