package domain

import (
	"fmt"
	"time"
)

// Promise is a trackable commitment inside a sprint goal. Daily promises
// carry a weekday schedule; weekly promises carry a per-week target count.
type Promise struct {
	ID           string
	GoalID       string
	Text         string
	Kind         PromiseKind
	ScheduleDays []time.Weekday // daily kind only
	WeeklyTarget int            // weekly kind only
	ArchivedAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate checks kind-specific invariants. An empty daily schedule is legal
// (such a promise is simply never due); out-of-range weekdays are not.
func (p *Promise) Validate() error {
	if p.Text == "" {
		return fmt.Errorf("promise text is required")
	}
	switch p.Kind {
	case KindDaily:
		for _, d := range p.ScheduleDays {
			if d < time.Sunday || d > time.Saturday {
				return fmt.Errorf("schedule day %d out of range 0..6", d)
			}
		}
		if p.WeeklyTarget != 0 {
			return fmt.Errorf("weekly target is not allowed on a daily promise")
		}
	case KindWeekly:
		if p.WeeklyTarget < 1 {
			return fmt.Errorf("weekly target must be >= 1, got %d", p.WeeklyTarget)
		}
		if len(p.ScheduleDays) != 0 {
			return fmt.Errorf("schedule days are not allowed on a weekly promise")
		}
	default:
		return fmt.Errorf("unknown promise kind %q", p.Kind)
	}
	return nil
}

// DisplayID returns a short identifier for list output.
func (p *Promise) DisplayID() string {
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}

// PromiseLog records whether a promise was kept on a calendar date.
// At most one log exists per (promise, date); writes overwrite.
type PromiseLog struct {
	ID         string
	PromiseID  string
	Date       time.Time // UTC midnight, day granularity
	Completed  bool
	DailyLogID *string
	CreatedAt  time.Time
}
