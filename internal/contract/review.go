package contract

import (
	"time"

	"github.com/keptapp/kept/internal/app"
)

type WeeklyReviewRequest = app.WeeklyReviewRequest

func NewWeeklyReviewRequest(date time.Time) WeeklyReviewRequest {
	return app.NewWeeklyReviewRequest(date)
}

type MonthlyReviewRequest = app.MonthlyReviewRequest

func NewMonthlyReviewRequest(year int, month time.Month) MonthlyReviewRequest {
	return app.NewMonthlyReviewRequest(year, month)
}

type SprintReviewRequest = app.SprintReviewRequest

func NewSprintReviewRequest(sprintID string) SprintReviewRequest {
	return app.NewSprintReviewRequest(sprintID)
}

type WeeklySummary = app.WeeklySummary

type MonthlySummary = app.MonthlySummary

type SprintSummary = app.SprintSummary

type SprintWeek = app.SprintWeek

type ReviewErrorCode = app.ReviewErrorCode

const (
	ReviewErrNoActiveSprint ReviewErrorCode = app.ReviewErrNoActiveSprint
	ReviewErrSprintNotFound ReviewErrorCode = app.ReviewErrSprintNotFound
	ReviewErrInvalidPeriod  ReviewErrorCode = app.ReviewErrInvalidPeriod
	ReviewErrInternal       ReviewErrorCode = app.ReviewErrInternal
)

type ReviewError = app.ReviewError
