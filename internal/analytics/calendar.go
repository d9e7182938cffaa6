package analytics

import (
	"time"

	"github.com/keptapp/kept/internal/domain"
)

// Window is an inclusive [Start, End] date range at day granularity.
// Windows are ephemeral inputs to aggregation and are never persisted.
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow normalizes both endpoints to UTC midnight.
func NewWindow(start, end time.Time) Window {
	return Window{Start: DateOnly(start), End: DateOnly(end)}
}

// Days returns the inclusive day count of the window.
func (w Window) Days() int {
	if w.End.Before(w.Start) {
		return 0
	}
	return int(w.End.Sub(w.Start).Hours()/24) + 1
}

// Contains reports whether date falls inside the window (endpoints included).
func (w Window) Contains(date time.Time) bool {
	d := DateOnly(date)
	return !d.Before(w.Start) && !d.After(w.End)
}

// Clip intersects the window with other. A disjoint pair yields a window
// with zero days.
func (w Window) Clip(other Window) Window {
	out := w
	if other.Start.After(out.Start) {
		out.Start = other.Start
	}
	if other.End.Before(out.End) {
		out.End = other.End
	}
	return out
}

// DateOnly truncates a time to UTC midnight of the same calendar date.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekWindow returns the Monday-start, Sunday-end calendar week containing
// date.
func WeekWindow(date time.Time) Window {
	d := DateOnly(date)
	back := int(d.Weekday()) - int(time.Monday)
	if back < 0 {
		back = 6 // Sunday
	}
	start := d.AddDate(0, 0, -back)
	return Window{Start: start, End: start.AddDate(0, 0, 6)}
}

// MonthWindow returns the full calendar month window.
func MonthWindow(year int, month time.Month) Window {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Window{Start: start, End: start.AddDate(0, 1, -1)}
}

// SprintWeeks returns every Monday-start calendar week overlapping the
// inclusive [sprintStart, sprintEnd] range, in chronological order. The first
// window may begin before sprintStart.
func SprintWeeks(sprintStart, sprintEnd time.Time) []Window {
	start := DateOnly(sprintStart)
	end := DateOnly(sprintEnd)
	if end.Before(start) {
		return nil
	}
	var weeks []Window
	for w := WeekWindow(start); !w.Start.After(end); w = WeekWindow(w.Start.AddDate(0, 0, 7)) {
		weeks = append(weeks, w)
	}
	return weeks
}

// IsScheduledOn reports whether a daily schedule is due on the given date.
// An empty schedule is never due.
func IsScheduledOn(days []time.Weekday, date time.Time) bool {
	wd := date.Weekday()
	for _, d := range days {
		if d == wd {
			return true
		}
	}
	return false
}

// DayStatus classifies one promise-day. Weekly promises are always
// applicable within a week; daily promises are not applicable outside their
// schedule. A nil completed flag means no log exists for that day.
func DayStatus(p domain.Promise, date time.Time, completed *bool) domain.DayState {
	if p.Kind == domain.KindDaily && !IsScheduledOn(p.ScheduleDays, date) {
		return domain.DayNA
	}
	if completed != nil && *completed {
		return domain.DayDone
	}
	return domain.DayNotDone
}
