package service

import (
	"context"
	"time"

	"github.com/keptapp/kept/internal/domain"
	"github.com/keptapp/kept/internal/repository"
)

type priorityService struct {
	priorities repository.PriorityRepo
}

func NewPriorityService(priorities repository.PriorityRepo) PriorityService {
	return &priorityService{priorities: priorities}
}

func (s *priorityService) Define(ctx context.Context, p *domain.Priority) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	return s.priorities.Upsert(ctx, p)
}

func (s *priorityService) Get(ctx context.Context, key string) (*domain.Priority, error) {
	return s.priorities.Get(ctx, key)
}

func (s *priorityService) List(ctx context.Context) ([]*domain.Priority, error) {
	return s.priorities.List(ctx)
}
