package analytics

import (
	"sort"
	"time"

	"github.com/keptapp/kept/internal/domain"
)

// GoalRollup sums promise progress across one goal. Trend is only populated
// by monthly aggregation.
type GoalRollup struct {
	Goal        domain.Goal
	Promises    []PromiseProgress
	TotalKept   int
	TotalTarget int
	Ratio       float64
	Trend       domain.Trend
}

// PriorityRollup sums one tracked priority's logged units against its weekly
// target. Ratio is capped at 1: priority units are a pacing signal, not an
// over-performance metric.
type PriorityRollup struct {
	Priority    domain.Priority
	Units       int
	TargetUnits int
	Ratio       float64
}

// RollupGoal combines already-computed promise progress into a goal total.
func RollupGoal(goal domain.Goal, promises []PromiseProgress) GoalRollup {
	r := GoalRollup{Goal: goal, Promises: promises}
	for _, p := range promises {
		r.TotalKept += p.Actual
		r.TotalTarget += p.Target
	}
	r.Ratio = ratioOf(r.TotalKept, r.TotalTarget)
	return r
}

// rollupGoals computes progress for every promise and groups it by goal,
// preserving the input goal order.
func rollupGoals(goals []domain.Goal, promises []domain.Promise, logs []domain.PromiseLog, w Window) []GoalRollup {
	var out []GoalRollup
	for _, g := range goals {
		var progresses []PromiseProgress
		for _, p := range promises {
			if p.GoalID != g.ID {
				continue
			}
			progresses = append(progresses, Progress(p, logs, w))
		}
		out = append(out, RollupGoal(g, progresses))
	}
	return out
}

// WeekInput is a consistent snapshot of one owner's records for a week
// review. The core performs no ownership filtering itself.
type WeekInput struct {
	Window     Window
	Goals      []domain.Goal
	Promises   []domain.Promise
	Logs       []domain.PromiseLog
	DailyLogs  []domain.DailyLog
	Priorities []domain.Priority
}

// WeekResult is the aggregated week: goal roll-ups, energy, the legacy
// priority unit pacing and the motion/action split feeding the integrity
// score and alert engine.
type WeekResult struct {
	Window      Window
	Goals       []GoalRollup
	TotalKept   int
	TotalTarget int
	Ratio       float64

	DaysLogged int
	AvgEnergy  float64

	Priorities  []PriorityRollup
	MotionUnits int
	ActionUnits int
}

// WeekStats aggregates one calendar week. Empty inputs yield zero-valued
// results, never errors.
func WeekStats(in WeekInput) WeekResult {
	res := WeekResult{Window: in.Window}

	res.Goals = rollupGoals(in.Goals, in.Promises, in.Logs, in.Window)
	for _, g := range res.Goals {
		res.TotalKept += g.TotalKept
		res.TotalTarget += g.TotalTarget
	}
	res.Ratio = ratioOf(res.TotalKept, res.TotalTarget)

	unitsByKey := map[string]int{}
	energySum := 0
	for _, d := range in.DailyLogs {
		if !in.Window.Contains(d.Date) {
			continue
		}
		res.DaysLogged++
		energySum += d.Energy
		for _, pl := range d.PriorityLogs {
			unitsByKey[pl.Key] += pl.Units
			switch {
			case pl.Effort == domain.EffortMotion:
				res.MotionUnits += pl.Units
			case pl.Effort >= domain.EffortActionMin:
				res.ActionUnits += pl.Units
			}
		}
	}
	if res.DaysLogged > 0 {
		res.AvgEnergy = float64(energySum) / float64(res.DaysLogged)
	}

	for _, p := range in.Priorities {
		units := unitsByKey[p.Key]
		ratio := ratioOf(units, p.WeeklyTargetUnits)
		if ratio > 1 {
			ratio = 1
		}
		res.Priorities = append(res.Priorities, PriorityRollup{
			Priority:    p,
			Units:       units,
			TargetUnits: p.WeeklyTargetUnits,
			Ratio:       ratio,
		})
	}

	return res
}

// MonthInput is a consistent snapshot for a calendar month review.
type MonthInput struct {
	Window    Window
	Goals     []domain.Goal
	Promises  []domain.Promise
	Logs      []domain.PromiseLog
	DailyLogs []domain.DailyLog
}

type MonthResult struct {
	Window      Window
	Goals       []GoalRollup
	TotalKept   int
	TotalTarget int
	Ratio       float64

	DaysLogged    int
	LongestStreak int
}

// MonthStats aggregates one calendar month, including per-goal trends and
// the longest run of consecutive audited days.
func MonthStats(in MonthInput) MonthResult {
	res := MonthResult{Window: in.Window}

	res.Goals = rollupGoals(in.Goals, in.Promises, in.Logs, in.Window)
	for i, g := range res.Goals {
		res.TotalKept += g.TotalKept
		res.TotalTarget += g.TotalTarget
		res.Goals[i].Trend = TrendForRatio(g.Ratio)
	}
	res.Ratio = ratioOf(res.TotalKept, res.TotalTarget)

	var days []time.Time
	seen := map[time.Time]bool{}
	for _, d := range in.DailyLogs {
		day := DateOnly(d.Date)
		if !in.Window.Contains(day) || seen[day] {
			continue
		}
		seen[day] = true
		days = append(days, day)
	}
	res.DaysLogged = len(days)
	res.LongestStreak = longestStreak(days)

	return res
}

// longestStreak returns the longest run of consecutive calendar days.
func longestStreak(days []time.Time) int {
	if len(days) == 0 {
		return 0
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i].Sub(days[i-1]) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// SprintInput is a consistent snapshot for a sprint review.
type SprintInput struct {
	Sprint   domain.Sprint
	Now      time.Time
	Goals    []domain.Goal
	Promises []domain.Promise
	Logs     []domain.PromiseLog
}

// WeekRollup is one calendar-week slice of a sprint, clipped to the sprint
// bounds so edge weeks use day-exact targets.
type WeekRollup struct {
	Window      Window
	TotalKept   int
	TotalTarget int
	Ratio       float64
}

type SprintResult struct {
	Window       Window
	ElapsedDays  int
	DurationDays int

	Goals       []GoalRollup
	TotalKept   int
	TotalTarget int
	Ratio       float64
	Velocity    float64

	Weeks []WeekRollup
}

// SprintStats aggregates the full sprint window. Sprints need not align to
// week boundaries, so targets use the exact day-walk throughout.
func SprintStats(in SprintInput) SprintResult {
	window := NewWindow(in.Sprint.StartDate, in.Sprint.EndDate)
	res := SprintResult{
		Window:       window,
		DurationDays: window.Days(),
	}

	elapsed := int(DateOnly(in.Now).Sub(window.Start).Hours()/24) + 1
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > res.DurationDays {
		elapsed = res.DurationDays
	}
	res.ElapsedDays = elapsed

	res.Goals = rollupGoals(in.Goals, in.Promises, in.Logs, window)
	for _, g := range res.Goals {
		res.TotalKept += g.TotalKept
		res.TotalTarget += g.TotalTarget
	}
	res.Ratio = ratioOf(res.TotalKept, res.TotalTarget)
	if res.ElapsedDays > 0 {
		res.Velocity = float64(res.TotalKept) / float64(res.ElapsedDays)
	}

	for _, week := range SprintWeeks(window.Start, window.End) {
		clipped := week.Clip(window)
		wr := WeekRollup{Window: clipped}
		for _, p := range in.Promises {
			prog := Progress(p, in.Logs, clipped)
			wr.TotalKept += prog.Actual
			wr.TotalTarget += prog.Target
		}
		wr.Ratio = ratioOf(wr.TotalKept, wr.TotalTarget)
		res.Weeks = append(res.Weeks, wr)
	}

	return res
}
