package domain

import (
	"fmt"
	"time"
)

// DailyLog is the per-day audit record: energy, notes, priority unit entries
// and proof-of-work text. One log exists per calendar date; writes upsert.
type DailyLog struct {
	ID           string
	Date         time.Time // UTC midnight, day granularity
	Energy       int       // 1..5
	Notes        string
	PriorityLogs []PriorityLog
	ProofEntries []ProofEntry
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (d *DailyLog) Validate() error {
	if d.Energy < 1 || d.Energy > 5 {
		return fmt.Errorf("energy must be in 1..5, got %d", d.Energy)
	}
	for _, pl := range d.PriorityLogs {
		if err := pl.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// PriorityLog records units of work against a tracked priority for one day.
// Effort classifies the units: EffortMotion feeds the motion bucket,
// EffortActionMin and above feed the action bucket.
type PriorityLog struct {
	ID         string
	DailyLogID string
	Key        string
	Units      int
	Effort     int
	CreatedAt  time.Time
}

func (p *PriorityLog) Validate() error {
	if p.Key == "" {
		return fmt.Errorf("priority key is required")
	}
	if p.Units < 0 {
		return fmt.Errorf("units must be >= 0, got %d", p.Units)
	}
	if p.Effort < 1 || p.Effort > EffortMax {
		return fmt.Errorf("effort must be in 1..%d, got %d", EffortMax, p.Effort)
	}
	return nil
}

// ProofEntry is a free-text evidence note attached to a daily log.
type ProofEntry struct {
	ID         string
	DailyLogID string
	Text       string
	CreatedAt  time.Time
}

// Priority is a tracked unit series with a weekly target. The closed registry
// replaces the legacy free-form key map: unknown keys are rejected at
// ingestion instead of silently accumulating.
type Priority struct {
	Key               string
	Name              string
	WeeklyTargetUnits int
	CreatedAt         time.Time
}

func (p *Priority) Validate() error {
	if p.Key == "" {
		return fmt.Errorf("priority key is required")
	}
	if p.WeeklyTargetUnits < 1 {
		return fmt.Errorf("weekly target units must be >= 1, got %d", p.WeeklyTargetUnits)
	}
	return nil
}
