package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// --- Request constructor defaults ---

func TestNewWeeklyReviewRequest_SetsDefaults(t *testing.T) {
	date := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	req := NewWeeklyReviewRequest(date)

	assert.True(t, req.Date.Equal(date))
	assert.Nil(t, req.Now)
}

func TestNewWeeklyReviewRequest_ZeroDate_Preserved(t *testing.T) {
	// Zero is preserved in the DTO — the service resolves it to today
	req := NewWeeklyReviewRequest(time.Time{})
	assert.True(t, req.Date.IsZero())
}

func TestNewMonthlyReviewRequest_SetsDefaults(t *testing.T) {
	req := NewMonthlyReviewRequest(2025, time.March)

	assert.Equal(t, 2025, req.Year)
	assert.Equal(t, time.March, req.Month)
	assert.Nil(t, req.Now)
}

func TestNewSprintReviewRequest_EmptyID_Preserved(t *testing.T) {
	// Empty is preserved — the service resolves it to the active sprint
	req := NewSprintReviewRequest("")
	assert.Empty(t, req.SprintID)
	assert.Nil(t, req.Now)
}

// --- Error types ---

func TestReviewError_ErrorString(t *testing.T) {
	err := &ReviewError{
		Code:    ReviewErrNoActiveSprint,
		Message: "no active sprint",
	}
	assert.Equal(t, "NO_ACTIVE_SPRINT: no active sprint", err.Error())
}

func TestReviewErrorCodes_AreDistinct(t *testing.T) {
	codes := []ReviewErrorCode{
		ReviewErrNoActiveSprint,
		ReviewErrSprintNotFound,
		ReviewErrInvalidPeriod,
		ReviewErrInternal,
	}
	seen := make(map[ReviewErrorCode]bool)
	for _, c := range codes {
		assert.False(t, seen[c], "duplicate error code: %s", c)
		seen[c] = true
	}
}
