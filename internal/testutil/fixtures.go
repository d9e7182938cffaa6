package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/keptapp/kept/internal/domain"
)

// Sprint options
type SprintOption func(*domain.Sprint)

func WithSprintStatus(s domain.SprintStatus) SprintOption {
	return func(sp *domain.Sprint) {
		sp.Status = s
	}
}

func WithSprintWindow(start, end time.Time) SprintOption {
	return func(sp *domain.Sprint) {
		sp.StartDate = start
		sp.EndDate = end
	}
}

func NewTestSprint(name string, opts ...SprintOption) *domain.Sprint {
	now := time.Now().UTC()
	s := &domain.Sprint{
		ID:        uuid.New().String(),
		Name:      name,
		StartDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 3, 23, 0, 0, 0, 0, time.UTC),
		Status:    domain.SprintPlanned,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func NewTestGoal(sprintID, objective string) *domain.Goal {
	now := time.Now().UTC()
	return &domain.Goal{
		ID:        uuid.New().String(),
		SprintID:  sprintID,
		Objective: objective,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Promise options
type PromiseOption func(*domain.Promise)

func WithSchedule(days ...time.Weekday) PromiseOption {
	return func(p *domain.Promise) {
		p.Kind = domain.KindDaily
		p.ScheduleDays = days
		p.WeeklyTarget = 0
	}
}

func WithWeeklyTarget(n int) PromiseOption {
	return func(p *domain.Promise) {
		p.Kind = domain.KindWeekly
		p.ScheduleDays = nil
		p.WeeklyTarget = n
	}
}

func NewTestPromise(goalID, text string, opts ...PromiseOption) *domain.Promise {
	now := time.Now().UTC()
	p := &domain.Promise{
		ID:        uuid.New().String(),
		GoalID:    goalID,
		Text:      text,
		Kind:      domain.KindDaily,
		ScheduleDays: []time.Weekday{
			time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func NewTestPromiseLog(promiseID string, date time.Time, completed bool) *domain.PromiseLog {
	return &domain.PromiseLog{
		ID:        uuid.New().String(),
		PromiseID: promiseID,
		Date:      date,
		Completed: completed,
		CreatedAt: time.Now().UTC(),
	}
}

// DailyLog options
type DailyLogOption func(*domain.DailyLog)

func WithEnergy(e int) DailyLogOption {
	return func(d *domain.DailyLog) {
		d.Energy = e
	}
}

func WithPriorityUnits(key string, units, effort int) DailyLogOption {
	return func(d *domain.DailyLog) {
		d.PriorityLogs = append(d.PriorityLogs, domain.PriorityLog{
			ID:        uuid.New().String(),
			Key:       key,
			Units:     units,
			Effort:    effort,
			CreatedAt: time.Now().UTC(),
		})
	}
}

func WithProof(text string) DailyLogOption {
	return func(d *domain.DailyLog) {
		d.ProofEntries = append(d.ProofEntries, domain.ProofEntry{
			ID:        uuid.New().String(),
			Text:      text,
			CreatedAt: time.Now().UTC(),
		})
	}
}

func NewTestDailyLog(date time.Time, opts ...DailyLogOption) *domain.DailyLog {
	now := time.Now().UTC()
	d := &domain.DailyLog{
		ID:        uuid.New().String(),
		Date:      date,
		Energy:    3,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func NewTestPriority(key, name string, weeklyTarget int) *domain.Priority {
	return &domain.Priority{
		Key:               key,
		Name:              name,
		WeeklyTargetUnits: weeklyTarget,
		CreatedAt:         time.Now().UTC(),
	}
}
