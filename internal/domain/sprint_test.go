package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mar(day int) time.Time {
	return time.Date(2025, 3, day, 0, 0, 0, 0, time.UTC)
}

func TestSprintValidate(t *testing.T) {
	s := &Sprint{Name: "March push", StartDate: mar(10), EndDate: mar(23)}
	assert.NoError(t, s.Validate())

	unnamed := &Sprint{StartDate: mar(10), EndDate: mar(23)}
	require.Error(t, unnamed.Validate())

	inverted := &Sprint{Name: "x", StartDate: mar(23), EndDate: mar(10)}
	err := inverted.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "before start date")
}

func TestSprintDurationDays_Inclusive(t *testing.T) {
	s := &Sprint{StartDate: mar(10), EndDate: mar(23)}
	assert.Equal(t, 14, s.DurationDays())

	oneDay := &Sprint{StartDate: mar(10), EndDate: mar(10)}
	assert.Equal(t, 1, oneDay.DurationDays())
}

func TestSprintContains(t *testing.T) {
	s := &Sprint{StartDate: mar(10), EndDate: mar(23)}
	assert.True(t, s.Contains(mar(10)))
	assert.True(t, s.Contains(mar(23)))
	assert.False(t, s.Contains(mar(9)))
	assert.False(t, s.Contains(mar(24)))
}

func TestGoalValidate(t *testing.T) {
	g := &Goal{SprintID: "s1", Objective: "Ship"}
	assert.NoError(t, g.Validate())

	require.Error(t, (&Goal{SprintID: "s1"}).Validate())
	require.Error(t, (&Goal{Objective: "Ship"}).Validate())
}
