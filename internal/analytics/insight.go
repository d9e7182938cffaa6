package analytics

import (
	"fmt"
	"sort"

	"github.com/keptapp/kept/internal/app"
	"github.com/keptapp/kept/internal/domain"
)

// Candidate priorities. Higher wins.
const (
	priorityVisibilityGap = 10
	priorityScopeOverload = 8
)

// PrimaryInsight picks the single highest-priority finding for a period, or
// nil when nothing applies.
func PrimaryInsight(in PeriodInput) *app.Insight {
	var candidates []app.Insight

	if in.DaysLogged < minLogsForVisibility {
		candidates = append(candidates, app.Insight{
			Code:     app.InsightVisibilityGap,
			Priority: priorityVisibilityGap,
			Message:  fmt.Sprintf("Log more days: only %d of the period is visible", in.DaysLogged),
		})
	}
	if countBelow(in.SeriesRatios, scopeOverloadBelow) >= scopeOverloadCount {
		candidates = append(candidates, app.Insight{
			Code:     app.InsightScopeOverload,
			Priority: priorityScopeOverload,
			Message:  "Too many commitments are far behind; cut scope",
		})
	}

	if len(candidates) == 0 {
		return nil
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Priority > best.Priority {
			best = c
		}
	}
	return &best
}

// AtRiskPromises extracts every promise that is at risk or missed, most
// behind first. The sort is stable so equal ratios keep input order.
func AtRiskPromises(progresses []PromiseProgress) []PromiseProgress {
	var out []PromiseProgress
	for _, p := range progresses {
		if p.Status == domain.StatusAtRisk || p.Status == domain.StatusMissed {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Ratio < out[j].Ratio
	})
	return out
}
