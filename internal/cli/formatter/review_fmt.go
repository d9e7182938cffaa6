package formatter

import (
	"fmt"
	"strings"

	"github.com/keptapp/kept/internal/contract"
)

// FormatWeeklySummary renders the full weekly review: per-goal promise table,
// priority pacing, energy and effort stats, integrity score, alerts and the
// primary insight.
func FormatWeeklySummary(s *contract.WeeklySummary) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Week of %s\n\n", DateRange(s.WeekStart, s.WeekEnd)))

	b.WriteString(formatGoalSections(s.Goals))

	b.WriteString(Header("Week Totals"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Promises kept   %s  %s\n",
		Bold(Ratio(s.TotalKept, s.TotalTarget)), RenderProgress(s.Ratio, 20)))
	b.WriteString(fmt.Sprintf("  Days logged     %s\n", Bold(fmt.Sprintf("%d / 7", s.DaysLogged))))
	if s.DaysLogged > 0 {
		b.WriteString(fmt.Sprintf("  Avg energy      %s\n", Bold(fmt.Sprintf("%.1f / 5", s.AvgEnergy))))
	}
	b.WriteString(fmt.Sprintf("  Motion / action %s\n",
		Bold(fmt.Sprintf("%d / %d units", s.MotionUnits, s.ActionUnits))))
	b.WriteString(fmt.Sprintf("  Integrity score %s\n\n", ScoreStyled(s.IntegrityScore)))

	if len(s.Priorities) > 0 {
		b.WriteString(Header("Priorities"))
		b.WriteString("\n")
		for _, p := range s.Priorities {
			b.WriteString(fmt.Sprintf("  %-16s %4d/%-4d %s\n",
				p.Name, p.Units, p.TargetUnits, RenderProgress(p.Ratio, 16)))
		}
		b.WriteString("\n")
	}

	b.WriteString(formatFindings(s.Alerts, s.PrimaryInsight, s.AtRisk))

	return RenderBox("Weekly Review", strings.TrimRight(b.String(), "\n"))
}

// FormatMonthlySummary renders the monthly review with trends and streaks.
func FormatMonthlySummary(s *contract.MonthlySummary) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %d\n\n", s.Month.String(), s.Year))

	b.WriteString(formatGoalSections(s.Goals))

	b.WriteString(Header("Month Totals"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Promises kept   %s  %s\n",
		Bold(Ratio(s.TotalKept, s.TotalTarget)), RenderProgress(s.Ratio, 20)))
	b.WriteString(fmt.Sprintf("  Days logged     %s\n", Bold(fmt.Sprintf("%d", s.DaysLogged))))
	b.WriteString(fmt.Sprintf("  Longest streak  %s\n\n", Bold(fmt.Sprintf("%d days", s.LongestStreak))))

	b.WriteString(formatFindings(s.Alerts, s.PrimaryInsight, s.AtRisk))

	return RenderBox("Monthly Review", strings.TrimRight(b.String(), "\n"))
}

// FormatSprintSummary renders the sprint review: pace, velocity and the
// week-by-week breakdown clipped to the sprint window.
func FormatSprintSummary(s *contract.SprintSummary) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n", Bold(s.Name), Dim(DateRange(s.StartDate, s.EndDate))))
	b.WriteString(fmt.Sprintf("Day %d of %d\n\n", s.ElapsedDays, s.DurationDays))

	b.WriteString(formatGoalSections(s.Goals))

	b.WriteString(Header("Sprint Pace"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Promises kept  %s  %s\n",
		Bold(Ratio(s.TotalKept, s.TotalTarget)), RenderProgress(s.Ratio, 20)))
	b.WriteString(fmt.Sprintf("  Velocity       %s\n\n", Bold(fmt.Sprintf("%.2f kept/day", s.Velocity))))

	if len(s.Weeks) > 0 {
		headers := []string{"WEEK", "KEPT", "TARGET", "PACE"}
		rows := make([][]string, 0, len(s.Weeks))
		for _, w := range s.Weeks {
			rows = append(rows, []string{
				DateRange(w.WeekStart, w.WeekEnd),
				fmt.Sprintf("%d", w.TotalKept),
				fmt.Sprintf("%d", w.TotalTarget),
				RenderProgress(w.Ratio, 12),
			})
		}
		b.WriteString(RenderTable(headers, rows))
		b.WriteString("\n")
	}

	b.WriteString(formatFindings(nil, nil, s.AtRisk))

	return RenderBox("Sprint Review", strings.TrimRight(b.String(), "\n"))
}

func formatGoalSections(goals []contract.GoalSummary) string {
	var b strings.Builder
	for _, g := range goals {
		b.WriteString(Header(g.Objective))
		b.WriteString("\n")
		for _, p := range g.Promises {
			b.WriteString(fmt.Sprintf("  %s %-40s %5s  %s\n",
				StatusColor(p.Status).Render("●"),
				p.Text,
				Ratio(p.Actual, p.Target),
				RenderProgress(p.Ratio, 12)))
		}
		if g.Trend != "" {
			b.WriteString(fmt.Sprintf("  %s %s\n", TrendArrow(g.Trend), Dim("trend vs. first half")))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func formatFindings(alerts []contract.Alert, insight *contract.Insight, atRisk []contract.PromiseSummary) string {
	var b strings.Builder

	if len(alerts) > 0 {
		b.WriteString(Header("Alerts"))
		b.WriteString("\n")
		for _, a := range alerts {
			b.WriteString(fmt.Sprintf("  %s %s\n", StyleYellow.Render("▲"), a.Message))
		}
		b.WriteString("\n")
	}

	if insight != nil {
		b.WriteString(Header("Insight"))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("  %s\n\n", StyleBlue.Render(insight.Message)))
	}

	if len(atRisk) > 0 {
		b.WriteString(Header("At Risk"))
		b.WriteString("\n")
		for _, p := range atRisk {
			b.WriteString(fmt.Sprintf("  %s %-40s %s\n",
				StatusIndicator(p.Status), p.Text, Dim(Ratio(p.Actual, p.Target))))
		}
		b.WriteString("\n")
	}

	return b.String()
}
