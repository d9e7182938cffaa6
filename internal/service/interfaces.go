package service

import (
	"context"
	"time"

	"github.com/keptapp/kept/internal/contract"
	"github.com/keptapp/kept/internal/domain"
	"github.com/keptapp/kept/internal/importer"
)

type SprintService interface {
	Create(ctx context.Context, s *domain.Sprint) error
	GetByID(ctx context.Context, id string) (*domain.Sprint, error)
	GetActive(ctx context.Context) (*domain.Sprint, error)
	List(ctx context.Context) ([]*domain.Sprint, error)
	Start(ctx context.Context, id string) error
	Close(ctx context.Context, id string) error
}

type GoalService interface {
	Create(ctx context.Context, g *domain.Goal) error
	GetByID(ctx context.Context, id string) (*domain.Goal, error)
	List(ctx context.Context) ([]*domain.Goal, error)
	ListBySprint(ctx context.Context, sprintID string) ([]*domain.Goal, error)
}

type PromiseService interface {
	Create(ctx context.Context, p *domain.Promise) error
	GetByID(ctx context.Context, id string) (*domain.Promise, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Promise, error)
	ListBySprint(ctx context.Context, sprintID string) ([]*domain.Promise, error)
	Update(ctx context.Context, p *domain.Promise) error
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	LogCompletion(ctx context.Context, promiseID string, date time.Time, completed bool) error
}

type DailyLogService interface {
	Upsert(ctx context.Context, d *domain.DailyLog) error
	GetByDate(ctx context.Context, date time.Time) (*domain.DailyLog, error)
	ListRange(ctx context.Context, start, end time.Time) ([]*domain.DailyLog, error)
}

type PriorityService interface {
	Define(ctx context.Context, p *domain.Priority) error
	Get(ctx context.Context, key string) (*domain.Priority, error)
	List(ctx context.Context) ([]*domain.Priority, error)
}

type ReviewService interface {
	WeeklyReview(ctx context.Context, req contract.WeeklyReviewRequest) (*contract.WeeklySummary, error)
	MonthlyReview(ctx context.Context, req contract.MonthlyReviewRequest) (*contract.MonthlySummary, error)
	SprintReview(ctx context.Context, req contract.SprintReviewRequest) (*contract.SprintSummary, error)
}

// ImportResult holds the outcome of a sprint plan import.
type ImportResult struct {
	Sprint        *domain.Sprint
	GoalCount     int
	PromiseCount  int
	PriorityCount int
}

type ImportService interface {
	ImportPlan(ctx context.Context, filePath string) (*ImportResult, error)
	ImportPlanFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error)
}
