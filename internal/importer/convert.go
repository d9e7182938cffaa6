package importer

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/keptapp/kept/internal/domain"
)

// SprintPlan holds the converted domain entities from an import file, ready
// for persistence in a single transaction.
type SprintPlan struct {
	Sprint     *domain.Sprint
	Goals      []*domain.Goal
	Promises   []*domain.Promise
	Priorities []*domain.Priority
}

// Convert transforms a validated ImportSchema into domain objects ready for
// persistence. Call ValidateImportSchema first; Convert assumes the schema is
// valid.
func Convert(schema *ImportSchema) (*SprintPlan, error) {
	now := time.Now().UTC()

	startDate, err := time.Parse("2006-01-02", schema.Sprint.StartDate)
	if err != nil {
		return nil, fmt.Errorf("parsing start_date: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", schema.Sprint.EndDate)
	if err != nil {
		return nil, fmt.Errorf("parsing end_date: %w", err)
	}

	sprint := &domain.Sprint{
		ID:        uuid.New().String(),
		Name:      schema.Sprint.Name,
		StartDate: startDate,
		EndDate:   endDate,
		Status:    domain.SprintPlanned,
		CreatedAt: now,
		UpdatedAt: now,
	}

	priorities := make([]*domain.Priority, 0, len(schema.Priorities))
	for _, p := range schema.Priorities {
		priorities = append(priorities, &domain.Priority{
			Key:               p.Key,
			Name:              p.Name,
			WeeklyTargetUnits: p.WeeklyTargetUnits,
			CreatedAt:         now,
		})
	}

	var goals []*domain.Goal
	var promises []*domain.Promise
	for _, g := range schema.Goals {
		goal := &domain.Goal{
			ID:        uuid.New().String(),
			SprintID:  sprint.ID,
			Objective: g.Objective,
			CreatedAt: now,
			UpdatedAt: now,
		}
		goals = append(goals, goal)

		for _, p := range g.Promises {
			promise := &domain.Promise{
				ID:        uuid.New().String(),
				GoalID:    goal.ID,
				Text:      p.Text,
				Kind:      domain.PromiseKind(p.Kind),
				CreatedAt: now,
				UpdatedAt: now,
			}
			switch promise.Kind {
			case domain.KindDaily:
				promise.ScheduleDays = parseDays(p.Days)
			case domain.KindWeekly:
				promise.WeeklyTarget = p.WeeklyTarget
			}
			if err := promise.Validate(); err != nil {
				return nil, fmt.Errorf("promise %q: %w", p.Text, err)
			}
			promises = append(promises, promise)
		}
	}

	return &SprintPlan{
		Sprint:     sprint,
		Goals:      goals,
		Promises:   promises,
		Priorities: priorities,
	}, nil
}

func parseDays(names []string) []time.Weekday {
	days := make([]time.Weekday, 0, len(names))
	for _, name := range names {
		if d, ok := dayNames[name]; ok {
			days = append(days, d)
		}
	}
	return days
}
