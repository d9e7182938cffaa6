package repository

import (
	"context"
	"time"

	"github.com/keptapp/kept/internal/domain"
)

type SprintRepo interface {
	Create(ctx context.Context, s *domain.Sprint) error
	GetByID(ctx context.Context, id string) (*domain.Sprint, error)
	GetActive(ctx context.Context) (*domain.Sprint, error)
	List(ctx context.Context) ([]*domain.Sprint, error)
	Update(ctx context.Context, s *domain.Sprint) error
	Delete(ctx context.Context, id string) error
}

type GoalRepo interface {
	Create(ctx context.Context, g *domain.Goal) error
	GetByID(ctx context.Context, id string) (*domain.Goal, error)
	ListBySprint(ctx context.Context, sprintID string) ([]*domain.Goal, error)
	List(ctx context.Context) ([]*domain.Goal, error)
	Update(ctx context.Context, g *domain.Goal) error
	Delete(ctx context.Context, id string) error
}

type PromiseRepo interface {
	Create(ctx context.Context, p *domain.Promise) error
	GetByID(ctx context.Context, id string) (*domain.Promise, error)
	ListByGoal(ctx context.Context, goalID string) ([]*domain.Promise, error)
	ListBySprint(ctx context.Context, sprintID string) ([]*domain.Promise, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Promise, error)
	Update(ctx context.Context, p *domain.Promise) error
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type PromiseLogRepo interface {
	// Upsert writes the log for (promise, date), overwriting any existing
	// row instead of duplicating it.
	Upsert(ctx context.Context, l *domain.PromiseLog) error
	GetByPromiseAndDate(ctx context.Context, promiseID string, date time.Time) (*domain.PromiseLog, error)
	ListByPromise(ctx context.Context, promiseID string) ([]domain.PromiseLog, error)
	ListRange(ctx context.Context, start, end time.Time) ([]domain.PromiseLog, error)
	HasAnyForPromise(ctx context.Context, promiseID string) (bool, error)
	Delete(ctx context.Context, id string) error
}

type DailyLogRepo interface {
	// Upsert writes the log keyed on its date, replacing priority unit and
	// proof child rows wholesale.
	Upsert(ctx context.Context, d *domain.DailyLog) error
	GetByDate(ctx context.Context, date time.Time) (*domain.DailyLog, error)
	ListRange(ctx context.Context, start, end time.Time) ([]*domain.DailyLog, error)
	Delete(ctx context.Context, id string) error
}

type PriorityRepo interface {
	Upsert(ctx context.Context, p *domain.Priority) error
	Get(ctx context.Context, key string) (*domain.Priority, error)
	List(ctx context.Context) ([]*domain.Priority, error)
	Delete(ctx context.Context, key string) error
}
