package app

import (
	"fmt"
	"time"
)

// WeeklySummary is the full review output for one calendar week.
type WeeklySummary struct {
	WeekStart time.Time
	WeekEnd   time.Time

	Goals       []GoalSummary
	TotalKept   int
	TotalTarget int
	Ratio       float64

	DaysLogged int
	AvgEnergy  float64

	Priorities     []PrioritySummary
	MotionUnits    int
	ActionUnits    int
	IntegrityScore int

	Alerts         []Alert
	PrimaryInsight *Insight
	AtRisk         []PromiseSummary
}

// MonthlySummary is the full review output for one calendar month.
type MonthlySummary struct {
	Year  int
	Month time.Month

	Goals       []GoalSummary
	TotalKept   int
	TotalTarget int
	Ratio       float64

	DaysLogged    int
	LongestStreak int

	Alerts         []Alert
	PrimaryInsight *Insight
	AtRisk         []PromiseSummary
}

// SprintWeek is one calendar-week slice of a sprint, clipped to the sprint
// bounds.
type SprintWeek struct {
	WeekStart   time.Time
	WeekEnd     time.Time
	TotalKept   int
	TotalTarget int
	Ratio       float64
}

// SprintSummary is the full review output for a sprint window.
type SprintSummary struct {
	SprintID  string
	Name      string
	StartDate time.Time
	EndDate   time.Time

	ElapsedDays  int
	DurationDays int

	Goals       []GoalSummary
	TotalKept   int
	TotalTarget int
	Ratio       float64
	Velocity    float64

	Weeks []SprintWeek

	AtRisk []PromiseSummary
}

// ReviewRequest selects a review period. Now overrides the wall clock for
// deterministic output; the zero value means time.Now().UTC().
type ReviewRequest struct {
	Now *time.Time
}

// WeeklyReviewRequest reviews the calendar week containing Date.
type WeeklyReviewRequest struct {
	ReviewRequest
	Date time.Time
}

// MonthlyReviewRequest reviews one calendar month.
type MonthlyReviewRequest struct {
	ReviewRequest
	Year  int
	Month time.Month
}

// SprintReviewRequest reviews a sprint by ID; an empty ID means the active
// sprint.
type SprintReviewRequest struct {
	ReviewRequest
	SprintID string
}

// NewWeeklyReviewRequest builds a weekly review request for the calendar week
// containing date.
func NewWeeklyReviewRequest(date time.Time) WeeklyReviewRequest {
	return WeeklyReviewRequest{Date: date}
}

// NewMonthlyReviewRequest builds a monthly review request.
func NewMonthlyReviewRequest(year int, month time.Month) MonthlyReviewRequest {
	return MonthlyReviewRequest{Year: year, Month: month}
}

// NewSprintReviewRequest builds a sprint review request. An empty sprintID
// targets the active sprint.
func NewSprintReviewRequest(sprintID string) SprintReviewRequest {
	return SprintReviewRequest{SprintID: sprintID}
}

type ReviewErrorCode string

const (
	ReviewErrNoActiveSprint ReviewErrorCode = "NO_ACTIVE_SPRINT"
	ReviewErrSprintNotFound ReviewErrorCode = "SPRINT_NOT_FOUND"
	ReviewErrInvalidPeriod  ReviewErrorCode = "INVALID_PERIOD"
	ReviewErrInternal       ReviewErrorCode = "INTERNAL"
)

// ReviewError is the typed failure surface of the review use cases.
type ReviewError struct {
	Code    ReviewErrorCode
	Message string
}

func (e *ReviewError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
