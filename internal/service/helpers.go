package service

import (
	"github.com/keptapp/kept/internal/analytics"
	"github.com/keptapp/kept/internal/app"
	"github.com/keptapp/kept/internal/domain"
)

func derefGoals(goals []*domain.Goal) []domain.Goal {
	out := make([]domain.Goal, 0, len(goals))
	for _, g := range goals {
		out = append(out, *g)
	}
	return out
}

func derefPromises(promises []*domain.Promise) []domain.Promise {
	out := make([]domain.Promise, 0, len(promises))
	for _, p := range promises {
		out = append(out, *p)
	}
	return out
}

func derefDailyLogs(logs []*domain.DailyLog) []domain.DailyLog {
	out := make([]domain.DailyLog, 0, len(logs))
	for _, d := range logs {
		out = append(out, *d)
	}
	return out
}

func derefPriorities(priorities []*domain.Priority) []domain.Priority {
	out := make([]domain.Priority, 0, len(priorities))
	for _, p := range priorities {
		out = append(out, *p)
	}
	return out
}

func promiseSummary(p analytics.PromiseProgress) app.PromiseSummary {
	return app.PromiseSummary{
		PromiseID: p.Promise.ID,
		GoalID:    p.Promise.GoalID,
		Text:      p.Promise.Text,
		Kind:      p.Promise.Kind,
		Actual:    p.Actual,
		Target:    p.Target,
		Ratio:     p.Ratio,
		Status:    p.Status,
	}
}

func goalSummaries(rollups []analytics.GoalRollup) []app.GoalSummary {
	out := make([]app.GoalSummary, 0, len(rollups))
	for _, r := range rollups {
		gs := app.GoalSummary{
			GoalID:      r.Goal.ID,
			Objective:   r.Goal.Objective,
			TotalKept:   r.TotalKept,
			TotalTarget: r.TotalTarget,
			Ratio:       r.Ratio,
			Trend:       r.Trend,
		}
		for _, p := range r.Promises {
			gs.Promises = append(gs.Promises, promiseSummary(p))
		}
		out = append(out, gs)
	}
	return out
}

func prioritySummaries(rollups []analytics.PriorityRollup) []app.PrioritySummary {
	out := make([]app.PrioritySummary, 0, len(rollups))
	for _, r := range rollups {
		out = append(out, app.PrioritySummary{
			Key:         r.Priority.Key,
			Name:        r.Priority.Name,
			Units:       r.Units,
			TargetUnits: r.TargetUnits,
			Ratio:       r.Ratio,
		})
	}
	return out
}

// allProgresses flattens per-goal promise progress for the at-risk scan.
func allProgresses(rollups []analytics.GoalRollup) []analytics.PromiseProgress {
	var out []analytics.PromiseProgress
	for _, r := range rollups {
		out = append(out, r.Promises...)
	}
	return out
}

func atRiskSummaries(progresses []analytics.PromiseProgress) []app.PromiseSummary {
	ranked := analytics.AtRiskPromises(progresses)
	out := make([]app.PromiseSummary, 0, len(ranked))
	for _, p := range ranked {
		out = append(out, promiseSummary(p))
	}
	return out
}

// seriesRatios collects the kept-ratio of every tracked series in a period:
// each promise and each priority counts as one series.
func seriesRatios(rollups []analytics.GoalRollup, priorities []analytics.PriorityRollup) []float64 {
	var out []float64
	for _, r := range rollups {
		for _, p := range r.Promises {
			out = append(out, p.Ratio)
		}
	}
	for _, p := range priorities {
		out = append(out, p.Ratio)
	}
	return out
}
