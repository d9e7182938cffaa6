package importer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/keptapp/kept/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_FullPlan(t *testing.T) {
	plan, err := Convert(validSchema())
	require.NoError(t, err)

	require.NotNil(t, plan.Sprint)
	assert.Equal(t, "March push", plan.Sprint.Name)
	assert.Equal(t, domain.SprintPlanned, plan.Sprint.Status)
	assert.True(t, plan.Sprint.StartDate.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)))
	assert.True(t, plan.Sprint.EndDate.Equal(time.Date(2025, 3, 23, 0, 0, 0, 0, time.UTC)))

	require.Len(t, plan.Goals, 1)
	assert.Equal(t, plan.Sprint.ID, plan.Goals[0].SprintID)
	assert.Equal(t, "Ship the draft", plan.Goals[0].Objective)

	require.Len(t, plan.Promises, 2)
	daily := plan.Promises[0]
	assert.Equal(t, plan.Goals[0].ID, daily.GoalID)
	assert.Equal(t, domain.KindDaily, daily.Kind)
	assert.Equal(t, []time.Weekday{time.Monday, time.Wednesday, time.Friday}, daily.ScheduleDays)

	weekly := plan.Promises[1]
	assert.Equal(t, domain.KindWeekly, weekly.Kind)
	assert.Equal(t, 3, weekly.WeeklyTarget)
	assert.Empty(t, weekly.ScheduleDays)

	require.Len(t, plan.Priorities, 1)
	assert.Equal(t, "writing", plan.Priorities[0].Key)
	assert.Equal(t, 10, plan.Priorities[0].WeeklyTargetUnits)
}

func TestConvert_GeneratesUniqueIDs(t *testing.T) {
	plan, err := Convert(validSchema())
	require.NoError(t, err)

	seen := map[string]bool{plan.Sprint.ID: true}
	for _, g := range plan.Goals {
		assert.False(t, seen[g.ID])
		seen[g.ID] = true
	}
	for _, p := range plan.Promises {
		assert.False(t, seen[p.ID])
		seen[p.ID] = true
	}
}

func TestConvert_DailyPromiseWithoutDays(t *testing.T) {
	schema := validSchema()
	schema.Goals[0].Promises = []PromiseImport{
		{Text: "Whenever it fits", Kind: "daily"},
	}

	plan, err := Convert(schema)
	require.NoError(t, err)
	require.Len(t, plan.Promises, 1)
	assert.Empty(t, plan.Promises[0].ScheduleDays)
}

func TestLoadImportSchema_RoundTrip(t *testing.T) {
	content := `sprint:
  name: March push
  start_date: "2025-03-10"
  end_date: "2025-03-23"
priorities:
  - key: writing
    name: Deep writing
    weekly_target_units: 10
goals:
  - ref: ship
    objective: Ship the draft
    promises:
      - text: Write every Mon/Wed/Fri
        kind: daily
        days: [monday, wednesday, friday]
      - text: Send three updates
        kind: weekly
        weekly_target: 3
`
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	schema, err := LoadImportSchema(path)
	require.NoError(t, err)
	assert.Equal(t, "March push", schema.Sprint.Name)
	require.Len(t, schema.Goals, 1)
	require.Len(t, schema.Goals[0].Promises, 2)
	assert.Equal(t, []string{"monday", "wednesday", "friday"}, schema.Goals[0].Promises[0].Days)

	assert.Empty(t, ValidateImportSchema(schema))
}

func TestLoadImportSchema_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sprint: [not: a: map"), 0o644))

	_, err := LoadImportSchema(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing import file")
}

func TestLoadImportSchema_MissingFile(t *testing.T) {
	_, err := LoadImportSchema(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
