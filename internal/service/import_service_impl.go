package service

import (
	"context"
	"fmt"
	"time"

	"github.com/keptapp/kept/internal/db"
	"github.com/keptapp/kept/internal/importer"
	"github.com/keptapp/kept/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *importService) ImportPlan(ctx context.Context, filePath string) (*ImportResult, error) {
	schema, err := importer.LoadImportSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.importSchema(ctx, schema)
}

func (s *importService) ImportPlanFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error) {
	return s.importSchema(ctx, schema)
}

// importSchema persists the whole plan inside one transaction; a failure on
// any row rolls back everything.
func (s *importService) importSchema(ctx context.Context, schema *importer.ImportSchema) (result *ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "import-plan",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		err = formatValidationErrors(errs)
		return nil, err
	}

	plan, convErr := importer.Convert(schema)
	if convErr != nil {
		err = fmt.Errorf("converting import schema: %w", convErr)
		return nil, err
	}
	fields["sprint"] = plan.Sprint.Name
	fields["goal_count"] = len(plan.Goals)
	fields["promise_count"] = len(plan.Promises)
	fields["priority_count"] = len(plan.Priorities)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSprints := repository.NewSQLiteSprintRepo(tx)
		txGoals := repository.NewSQLiteGoalRepo(tx)
		txPromises := repository.NewSQLitePromiseRepo(tx)
		txPriorities := repository.NewSQLitePriorityRepo(tx)

		if err := txSprints.Create(ctx, plan.Sprint); err != nil {
			return fmt.Errorf("creating sprint: %w", err)
		}
		for _, p := range plan.Priorities {
			if err := txPriorities.Upsert(ctx, p); err != nil {
				return fmt.Errorf("creating priority %q: %w", p.Key, err)
			}
		}
		for _, g := range plan.Goals {
			if err := txGoals.Create(ctx, g); err != nil {
				return fmt.Errorf("creating goal %q: %w", g.Objective, err)
			}
		}
		for _, p := range plan.Promises {
			if err := txPromises.Create(ctx, p); err != nil {
				return fmt.Errorf("creating promise %q: %w", p.Text, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ImportResult{
		Sprint:        plan.Sprint,
		GoalCount:     len(plan.Goals),
		PromiseCount:  len(plan.Promises),
		PriorityCount: len(plan.Priorities),
	}, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
