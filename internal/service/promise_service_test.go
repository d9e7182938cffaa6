package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/keptapp/kept/internal/domain"
	"github.com/keptapp/kept/internal/repository"
	"github.com/keptapp/kept/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type promiseFixture struct {
	svc      PromiseService
	logs     repository.PromiseLogRepo
	daily    repository.DailyLogRepo
	goal     *domain.Goal
	database *sql.DB
}

func newPromiseFixture(t *testing.T) *promiseFixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	sprint := testutil.NewTestSprint("sprint")
	require.NoError(t, repository.NewSQLiteSprintRepo(database).Create(ctx, sprint))
	goal := testutil.NewTestGoal(sprint.ID, "objective")
	goals := repository.NewSQLiteGoalRepo(database)
	require.NoError(t, goals.Create(ctx, goal))

	logs := repository.NewSQLitePromiseLogRepo(database)
	daily := repository.NewSQLiteDailyLogRepo(database)
	svc := NewPromiseService(repository.NewSQLitePromiseRepo(database), goals, logs, daily)

	return &promiseFixture{svc: svc, logs: logs, daily: daily, goal: goal, database: database}
}

func TestPromiseService_Create_UnknownGoal(t *testing.T) {
	f := newPromiseFixture(t)

	p := testutil.NewTestPromise("no-such-goal", "text")
	err := f.svc.Create(context.Background(), p)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPromiseService_Update_TextEditAllowedAfterLogs(t *testing.T) {
	f := newPromiseFixture(t)
	ctx := context.Background()

	p := testutil.NewTestPromise(f.goal.ID, "original")
	require.NoError(t, f.svc.Create(ctx, p))
	require.NoError(t, f.svc.LogCompletion(ctx, p.ID, time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), true))

	p.Text = "reworded"
	require.NoError(t, f.svc.Update(ctx, p))

	got, err := f.svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "reworded", got.Text)
}

func TestPromiseService_Update_ScheduleFrozenAfterLogs(t *testing.T) {
	f := newPromiseFixture(t)
	ctx := context.Background()

	p := testutil.NewTestPromise(f.goal.ID, "text",
		testutil.WithSchedule(time.Monday, time.Wednesday))
	require.NoError(t, f.svc.Create(ctx, p))
	require.NoError(t, f.svc.LogCompletion(ctx, p.ID, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), true))

	p.ScheduleDays = []time.Weekday{time.Monday}
	err := f.svc.Update(ctx, p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "frozen")
}

func TestPromiseService_Update_ScheduleEditableBeforeLogs(t *testing.T) {
	f := newPromiseFixture(t)
	ctx := context.Background()

	p := testutil.NewTestPromise(f.goal.ID, "text",
		testutil.WithSchedule(time.Monday, time.Wednesday))
	require.NoError(t, f.svc.Create(ctx, p))

	p.ScheduleDays = []time.Weekday{time.Friday}
	require.NoError(t, f.svc.Update(ctx, p))

	got, err := f.svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []time.Weekday{time.Friday}, got.ScheduleDays)
}

func TestPromiseService_LogCompletion_UpsertsSameDay(t *testing.T) {
	f := newPromiseFixture(t)
	ctx := context.Background()

	p := testutil.NewTestPromise(f.goal.ID, "text")
	require.NoError(t, f.svc.Create(ctx, p))

	date := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	require.NoError(t, f.svc.LogCompletion(ctx, p.ID, date, true))
	require.NoError(t, f.svc.LogCompletion(ctx, p.ID, date, false))

	logs, err := f.logs.ListByPromise(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.False(t, logs[0].Completed)
}

func TestPromiseService_LogCompletion_NormalizesToDay(t *testing.T) {
	f := newPromiseFixture(t)
	ctx := context.Background()

	p := testutil.NewTestPromise(f.goal.ID, "text")
	require.NoError(t, f.svc.Create(ctx, p))

	late := time.Date(2025, 3, 11, 22, 45, 0, 0, time.UTC)
	require.NoError(t, f.svc.LogCompletion(ctx, p.ID, late, true))

	got, err := f.logs.GetByPromiseAndDate(ctx, p.ID, time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, got.Completed)
}

func TestPromiseService_LogCompletion_LinksDailyLog(t *testing.T) {
	f := newPromiseFixture(t)
	ctx := context.Background()

	date := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	dl := testutil.NewTestDailyLog(date)
	require.NoError(t, f.daily.Upsert(ctx, dl))

	p := testutil.NewTestPromise(f.goal.ID, "text")
	require.NoError(t, f.svc.Create(ctx, p))
	require.NoError(t, f.svc.LogCompletion(ctx, p.ID, date, true))

	got, err := f.logs.GetByPromiseAndDate(ctx, p.ID, date)
	require.NoError(t, err)
	require.NotNil(t, got.DailyLogID)
	assert.Equal(t, dl.ID, *got.DailyLogID)
}

func TestPromiseService_LogCompletion_ArchivedRejected(t *testing.T) {
	f := newPromiseFixture(t)
	ctx := context.Background()

	p := testutil.NewTestPromise(f.goal.ID, "text")
	require.NoError(t, f.svc.Create(ctx, p))
	require.NoError(t, f.svc.Archive(ctx, p.ID))

	err := f.svc.LogCompletion(ctx, p.ID, time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "archived")
}
