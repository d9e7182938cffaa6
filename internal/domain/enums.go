package domain

type PromiseKind string

const (
	KindDaily  PromiseKind = "daily"
	KindWeekly PromiseKind = "weekly"
)

type PromiseStatus string

const (
	StatusOnTrack PromiseStatus = "on_track"
	StatusAtRisk  PromiseStatus = "at_risk"
	StatusMissed  PromiseStatus = "missed"
)

// DayState is the per-day applicability/completion state of a promise.
type DayState string

const (
	DayDone    DayState = "done"
	DayNotDone DayState = "not_done"
	DayNA      DayState = "na"
)

type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

type SprintStatus string

const (
	SprintPlanned SprintStatus = "planned"
	SprintActive  SprintStatus = "active"
	SprintClosed  SprintStatus = "closed"
)

// Effort levels on priority unit logs. EffortMotion is the low-effort marker
// that feeds the motion bucket; EffortActionMin is the threshold at or above
// which units count as action. Effort 2 counts toward neither bucket.
const (
	EffortMotion    = 1
	EffortActionMin = 3
	EffortMax       = 5
)

// ValidPromiseKinds is the canonical set of accepted promise kind strings.
var ValidPromiseKinds = map[string]bool{
	"daily": true, "weekly": true,
}
