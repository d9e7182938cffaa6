package domain

import (
	"fmt"
	"time"
)

// Sprint is a time-boxed window owning goals. Both endpoints are inclusive.
type Sprint struct {
	ID        string
	Name      string
	StartDate time.Time
	EndDate   time.Time
	Status    SprintStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s *Sprint) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("sprint name is required")
	}
	if s.EndDate.Before(s.StartDate) {
		return fmt.Errorf("sprint end date %s is before start date %s",
			s.EndDate.Format("2006-01-02"), s.StartDate.Format("2006-01-02"))
	}
	return nil
}

// DurationDays returns the inclusive day count of the sprint window.
func (s *Sprint) DurationDays() int {
	return int(s.EndDate.Sub(s.StartDate).Hours()/24) + 1
}

// Contains reports whether the given date falls inside the sprint window.
func (s *Sprint) Contains(date time.Time) bool {
	return !date.Before(s.StartDate) && !date.After(s.EndDate)
}

// Goal groups promises under a shared objective within one sprint.
type Goal struct {
	ID        string
	SprintID  string
	Objective string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (g *Goal) Validate() error {
	if g.Objective == "" {
		return fmt.Errorf("goal objective is required")
	}
	if g.SprintID == "" {
		return fmt.Errorf("goal must belong to a sprint")
	}
	return nil
}
