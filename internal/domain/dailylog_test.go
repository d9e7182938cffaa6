package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyLogValidate_EnergyRange(t *testing.T) {
	for _, energy := range []int{1, 3, 5} {
		d := &DailyLog{Energy: energy}
		assert.NoError(t, d.Validate(), "energy %d", energy)
	}
	for _, energy := range []int{0, 6, -1} {
		d := &DailyLog{Energy: energy}
		require.Error(t, d.Validate(), "energy %d", energy)
	}
}

func TestDailyLogValidate_ChildPriorityLogs(t *testing.T) {
	d := &DailyLog{
		Energy:       3,
		PriorityLogs: []PriorityLog{{Key: "writing", Units: 2, Effort: 3}},
	}
	assert.NoError(t, d.Validate())

	d.PriorityLogs = append(d.PriorityLogs, PriorityLog{Key: "", Units: 1, Effort: 3})
	require.Error(t, d.Validate())
}

func TestPriorityLogValidate(t *testing.T) {
	pl := &PriorityLog{Key: "writing", Units: 0, Effort: 1}
	assert.NoError(t, pl.Validate())

	negative := &PriorityLog{Key: "writing", Units: -1, Effort: 3}
	require.Error(t, negative.Validate())

	badEffort := &PriorityLog{Key: "writing", Units: 1, Effort: 6}
	err := badEffort.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "effort")
}

func TestPriorityValidate(t *testing.T) {
	p := &Priority{Key: "writing", Name: "Writing", WeeklyTargetUnits: 10}
	assert.NoError(t, p.Validate())

	require.Error(t, (&Priority{WeeklyTargetUnits: 10}).Validate())
	require.Error(t, (&Priority{Key: "writing", WeeklyTargetUnits: 0}).Validate())
}

func TestCoalesceStr(t *testing.T) {
	assert.Equal(t, "a", CoalesceStr("", "a", "b"))
	assert.Equal(t, "", CoalesceStr("", ""))
}
