package analytics

import (
	"github.com/keptapp/kept/internal/domain"
)

// PromiseProgress is the actual/target view of one promise over one window.
type PromiseProgress struct {
	Promise domain.Promise
	Actual  int
	Target  int
	Ratio   float64
	Status  domain.PromiseStatus
}

// StatusForRatio classifies a kept-ratio with the 0.8/0.5 cut points shared
// by promise status, goal trends and the integrity score bands.
func StatusForRatio(ratio float64) domain.PromiseStatus {
	switch {
	case ratio >= 0.8:
		return domain.StatusOnTrack
	case ratio >= 0.5:
		return domain.StatusAtRisk
	default:
		return domain.StatusMissed
	}
}

// TrendForRatio maps a goal ratio to a monthly trend using the same cut
// points as promise status.
func TrendForRatio(ratio float64) domain.Trend {
	switch {
	case ratio >= 0.8:
		return domain.TrendUp
	case ratio >= 0.5:
		return domain.TrendStable
	default:
		return domain.TrendDown
	}
}

// Progress computes actual/target/ratio/status for one promise over a
// window. Logs for other promises or outside the window are ignored. The
// ratio is not clamped above 1; over-performance stays visible.
func Progress(p domain.Promise, logs []domain.PromiseLog, w Window) PromiseProgress {
	actual := 0
	for _, l := range logs {
		if l.PromiseID == p.ID && l.Completed && w.Contains(l.Date) {
			actual++
		}
	}

	target := TargetFor(p, w)
	ratio := 0.0
	if target > 0 {
		ratio = float64(actual) / float64(target)
	}

	return PromiseProgress{
		Promise: p,
		Actual:  actual,
		Target:  target,
		Ratio:   ratio,
		Status:  StatusForRatio(ratio),
	}
}

// ratioOf is the shared zero-safe division used by every roll-up.
func ratioOf(actual, target int) float64 {
	if target <= 0 {
		return 0
	}
	return float64(actual) / float64(target)
}
