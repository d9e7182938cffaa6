package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/keptapp/kept/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// HumanDate returns a human-friendly absolute date string.
func HumanDate(t time.Time) string {
	now := time.Now()
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()

	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	yesterday := now.AddDate(0, 0, -1)
	y3, m3, d3 := yesterday.Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday"
	}
	return t.Format("Jan 2, 2006")
}

// DateRange renders an inclusive date window like "Mar 10 – Mar 23, 2025".
func DateRange(start, end time.Time) string {
	if start.Year() == end.Year() {
		return fmt.Sprintf("%s – %s", start.Format("Jan 2"), end.Format("Jan 2, 2006"))
	}
	return fmt.Sprintf("%s – %s", start.Format("Jan 2, 2006"), end.Format("Jan 2, 2006"))
}

// SprintStatusPill returns a colored status indicator for sprint status.
func SprintStatusPill(status domain.SprintStatus) string {
	switch status {
	case domain.SprintActive:
		return StyleGreen.Render("● Active")
	case domain.SprintPlanned:
		return StyleBlue.Render("○ Planned")
	case domain.SprintClosed:
		return StyleDim.Render("✔ Closed")
	default:
		return StyleDim.Render(string(status))
	}
}

// KindBadge returns a styled promise kind label with its cadence detail.
func KindBadge(p *domain.Promise) string {
	switch p.Kind {
	case domain.KindDaily:
		if len(p.ScheduleDays) == 0 {
			return StylePurple.Render("daily") + Dim(" (no days)")
		}
		names := make([]string, 0, len(p.ScheduleDays))
		for _, d := range p.ScheduleDays {
			names = append(names, d.String()[:3])
		}
		return StylePurple.Render("daily") + Dim(" ("+strings.Join(names, " ")+")")
	case domain.KindWeekly:
		return StyleBlue.Render("weekly") + Dim(fmt.Sprintf(" (target %d)", p.WeeklyTarget))
	default:
		return StyleDim.Render(string(p.Kind))
	}
}

// TrendArrow returns a colored arrow for a monthly trend.
func TrendArrow(trend domain.Trend) string {
	switch trend {
	case domain.TrendUp:
		return StyleGreen.Render("↑")
	case domain.TrendDown:
		return StyleRed.Render("↓")
	case domain.TrendStable:
		return StyleDim.Render("→")
	default:
		return StyleDim.Render("·")
	}
}

// ScoreStyled renders an integrity score 0..100 with severity coloring.
func ScoreStyled(score int) string {
	text := fmt.Sprintf("%d / 100", score)
	switch {
	case score >= 70:
		return StyleGreen.Render(text)
	case score >= 40:
		return StyleYellow.Render(text)
	default:
		return StyleRed.Render(text)
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// Ratio renders kept/target counts with a fixed-width percentage.
func Ratio(kept, target int) string {
	if target == 0 {
		return Dim("–")
	}
	return fmt.Sprintf("%d/%d", kept, target)
}
