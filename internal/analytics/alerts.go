package analytics

import (
	"fmt"

	"github.com/keptapp/kept/internal/app"
)

// Period thresholds for the alert rules.
const (
	minLogsForEnergyAlert = 3
	criticalEnergyBelow   = 3.0
	minLogsForVisibility  = 5
	scopeOverloadCount    = 2
	scopeOverloadBelow    = 0.5
)

// PeriodInput is the aggregated view of one review period that the alert
// rules and insight generator evaluate. SeriesRatios carries the kept-ratio
// of every tracked series (priorities and promises alike).
type PeriodInput struct {
	DaysLogged   int
	AvgEnergy    float64
	MotionUnits  int
	ActionUnits  int
	SeriesRatios []float64
}

// EvaluateAlerts runs every rule independently; no rule short-circuits
// another. The result order follows rule declaration order but carries no
// meaning.
func EvaluateAlerts(in PeriodInput) []app.Alert {
	var alerts []app.Alert

	if in.DaysLogged >= minLogsForEnergyAlert && in.AvgEnergy < criticalEnergyBelow {
		alerts = append(alerts, app.Alert{
			Code:    app.AlertCriticalEnergy,
			Message: fmt.Sprintf("average energy %.1f over %d logged days", in.AvgEnergy, in.DaysLogged),
		})
	}

	if in.MotionUnits > in.ActionUnits {
		alerts = append(alerts, app.Alert{
			Code:    app.AlertSimulationTrap,
			Message: fmt.Sprintf("%d motion units outweigh %d action units", in.MotionUnits, in.ActionUnits),
		})
	}

	if in.DaysLogged < minLogsForVisibility {
		alerts = append(alerts, app.Alert{
			Code:    app.AlertVisibilityGap,
			Message: fmt.Sprintf("only %d days logged this period", in.DaysLogged),
		})
	}

	if countBelow(in.SeriesRatios, scopeOverloadBelow) >= scopeOverloadCount {
		alerts = append(alerts, app.Alert{
			Code:    app.AlertScopeOverload,
			Message: "two or more commitments are below half their target",
		})
	}

	return alerts
}

func countBelow(ratios []float64, threshold float64) int {
	n := 0
	for _, r := range ratios {
		if r < threshold {
			n++
		}
	}
	return n
}
