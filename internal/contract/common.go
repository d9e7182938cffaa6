package contract

import "github.com/keptapp/kept/internal/app"

type AlertCode = app.AlertCode

const (
	AlertCriticalEnergy AlertCode = app.AlertCriticalEnergy
	AlertSimulationTrap AlertCode = app.AlertSimulationTrap
	AlertVisibilityGap  AlertCode = app.AlertVisibilityGap
	AlertScopeOverload  AlertCode = app.AlertScopeOverload
)

type Alert = app.Alert

type InsightCode = app.InsightCode

const (
	InsightVisibilityGap InsightCode = app.InsightVisibilityGap
	InsightScopeOverload InsightCode = app.InsightScopeOverload
)

type Insight = app.Insight

type PromiseSummary = app.PromiseSummary

type GoalSummary = app.GoalSummary

type PrioritySummary = app.PrioritySummary
