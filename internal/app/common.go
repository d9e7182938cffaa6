package app

import (
	"fmt"

	"github.com/keptapp/kept/internal/domain"
)

type AlertCode string

const (
	AlertCriticalEnergy AlertCode = "CRITICAL_ENERGY_LEVEL"
	AlertSimulationTrap AlertCode = "SIMULATION_TRAP"
	AlertVisibilityGap  AlertCode = "VISIBILITY_GAP"
	AlertScopeOverload  AlertCode = "SCOPE_OVERLOAD"
)

// Alert is a rule-engine finding for a review period. Callers match on Code;
// Message is display text.
type Alert struct {
	Code    AlertCode
	Message string
}

// String renders the alert with the code verbatim so text consumers can
// still match on it.
func (a Alert) String() string {
	return fmt.Sprintf("%s: %s", a.Code, a.Message)
}

type InsightCode string

const (
	InsightVisibilityGap InsightCode = "VISIBILITY_GAP"
	InsightScopeOverload InsightCode = "SCOPE_OVERLOAD"
)

// Insight is the single highest-priority finding selected for a period.
type Insight struct {
	Code     InsightCode
	Priority int
	Message  string
}

// PromiseSummary is the per-promise progress view for one period window.
type PromiseSummary struct {
	PromiseID string
	GoalID    string
	Text      string
	Kind      domain.PromiseKind
	Actual    int
	Target    int
	Ratio     float64
	Status    domain.PromiseStatus
}

// GoalSummary rolls promise summaries up to their goal. Trend is only set on
// monthly reviews.
type GoalSummary struct {
	GoalID      string
	Objective   string
	TotalKept   int
	TotalTarget int
	Ratio       float64
	Trend       domain.Trend
	Promises    []PromiseSummary
}

// PrioritySummary is the weekly roll-up of one tracked priority's units
// against its weekly target. Ratio is capped at 1.
type PrioritySummary struct {
	Key         string
	Name        string
	Units       int
	TargetUnits int
	Ratio       float64
}
