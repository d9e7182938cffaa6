package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/keptapp/kept/internal/analytics"
	"github.com/keptapp/kept/internal/domain"
	"github.com/keptapp/kept/internal/repository"
)

type promiseService struct {
	promises  repository.PromiseRepo
	goals     repository.GoalRepo
	logs      repository.PromiseLogRepo
	dailyLogs repository.DailyLogRepo
}

func NewPromiseService(
	promises repository.PromiseRepo,
	goals repository.GoalRepo,
	logs repository.PromiseLogRepo,
	dailyLogs repository.DailyLogRepo,
) PromiseService {
	return &promiseService{
		promises:  promises,
		goals:     goals,
		logs:      logs,
		dailyLogs: dailyLogs,
	}
}

func (s *promiseService) Create(ctx context.Context, p *domain.Promise) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if err := p.Validate(); err != nil {
		return err
	}
	if _, err := s.goals.GetByID(ctx, p.GoalID); err != nil {
		return fmt.Errorf("resolving goal: %w", err)
	}
	return s.promises.Create(ctx, p)
}

func (s *promiseService) GetByID(ctx context.Context, id string) (*domain.Promise, error) {
	return s.promises.GetByID(ctx, id)
}

func (s *promiseService) List(ctx context.Context, includeArchived bool) ([]*domain.Promise, error) {
	return s.promises.List(ctx, includeArchived)
}

func (s *promiseService) ListBySprint(ctx context.Context, sprintID string) ([]*domain.Promise, error) {
	return s.promises.ListBySprint(ctx, sprintID)
}

// Update edits a promise. Once completions have been logged against it, the
// kind, schedule and weekly target are frozen so historical targets stay
// reproducible; only the text can change.
func (s *promiseService) Update(ctx context.Context, p *domain.Promise) error {
	if err := p.Validate(); err != nil {
		return err
	}

	stored, err := s.promises.GetByID(ctx, p.ID)
	if err != nil {
		return err
	}

	hasLogs, err := s.logs.HasAnyForPromise(ctx, p.ID)
	if err != nil {
		return err
	}
	if hasLogs && scheduleChanged(stored, p) {
		return fmt.Errorf("promise %s has logged completions; kind, schedule and target are frozen", p.DisplayID())
	}

	p.UpdatedAt = time.Now().UTC()
	return s.promises.Update(ctx, p)
}

func (s *promiseService) Archive(ctx context.Context, id string) error {
	return s.promises.Archive(ctx, id)
}

func (s *promiseService) Delete(ctx context.Context, id string) error {
	return s.promises.Delete(ctx, id)
}

// LogCompletion upserts the kept/missed record for one promise and date,
// linking the day's DailyLog when one exists.
func (s *promiseService) LogCompletion(ctx context.Context, promiseID string, date time.Time, completed bool) error {
	p, err := s.promises.GetByID(ctx, promiseID)
	if err != nil {
		return err
	}
	if p.ArchivedAt != nil {
		return fmt.Errorf("promise %s is archived", p.DisplayID())
	}

	day := analytics.DateOnly(date)

	var dailyLogID *string
	dl, err := s.dailyLogs.GetByDate(ctx, day)
	switch {
	case err == nil:
		dailyLogID = &dl.ID
	case !errors.Is(err, repository.ErrNotFound):
		return err
	}

	return s.logs.Upsert(ctx, &domain.PromiseLog{
		ID:         uuid.New().String(),
		PromiseID:  p.ID,
		Date:       day,
		Completed:  completed,
		DailyLogID: dailyLogID,
		CreatedAt:  time.Now().UTC(),
	})
}

func scheduleChanged(stored, updated *domain.Promise) bool {
	if stored.Kind != updated.Kind || stored.WeeklyTarget != updated.WeeklyTarget {
		return true
	}
	return !slices.Equal(stored.ScheduleDays, updated.ScheduleDays)
}
