package analytics

import (
	"math"

	"github.com/keptapp/kept/internal/domain"
)

// TargetFor computes the expected completion count for a promise over an
// inclusive window.
//
// Weekly promises prorate the weekly target by window length. Daily promises
// take full weeks as weeks*|schedule| and then walk the remainder days one by
// one: schedules are not uniform across the week, so prorating the remainder
// would produce wrong targets near period boundaries.
func TargetFor(p domain.Promise, w Window) int {
	days := w.Days()
	if days <= 0 {
		return 0
	}

	switch p.Kind {
	case domain.KindWeekly:
		return int(math.Round(float64(days) / 7.0 * float64(p.WeeklyTarget)))
	case domain.KindDaily:
		fullWeeks := days / 7
		target := fullWeeks * len(p.ScheduleDays)
		for d := w.Start.AddDate(0, 0, fullWeeks*7); !d.After(w.End); d = d.AddDate(0, 0, 1) {
			if IsScheduledOn(p.ScheduleDays, d) {
				target++
			}
		}
		return target
	}
	return 0
}
