package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/keptapp/kept/internal/domain"
	"github.com/keptapp/kept/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPromise(t *testing.T, database *sql.DB) *domain.Promise {
	t.Helper()
	goal := seedGoal(t, database)
	p := testutil.NewTestPromise(goal.ID, "promise")
	require.NoError(t, NewSQLitePromiseRepo(database).Create(context.Background(), p))
	return p
}

func TestPromiseLogRepo_UpsertAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	p := seedPromise(t, database)
	repo := NewSQLitePromiseLogRepo(database)
	ctx := context.Background()

	date := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	l := testutil.NewTestPromiseLog(p.ID, date, true)
	require.NoError(t, repo.Upsert(ctx, l))

	got, err := repo.GetByPromiseAndDate(ctx, p.ID, date)
	require.NoError(t, err)
	assert.Equal(t, l.ID, got.ID)
	assert.True(t, got.Completed)
	assert.True(t, got.Date.Equal(date))
	assert.Nil(t, got.DailyLogID)
}

func TestPromiseLogRepo_Upsert_OverwritesSameDay(t *testing.T) {
	database := testutil.NewTestDB(t)
	p := seedPromise(t, database)
	repo := NewSQLitePromiseLogRepo(database)
	ctx := context.Background()

	date := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestPromiseLog(p.ID, date, true)))
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestPromiseLog(p.ID, date, false)))

	got, err := repo.GetByPromiseAndDate(ctx, p.ID, date)
	require.NoError(t, err)
	assert.False(t, got.Completed)

	logs, err := repo.ListByPromise(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}

func TestPromiseLogRepo_GetByPromiseAndDate_NotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	p := seedPromise(t, database)
	repo := NewSQLitePromiseLogRepo(database)

	_, err := repo.GetByPromiseAndDate(context.Background(), p.ID,
		time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPromiseLogRepo_ListRange(t *testing.T) {
	database := testutil.NewTestDB(t)
	p := seedPromise(t, database)
	repo := NewSQLitePromiseLogRepo(database)
	ctx := context.Background()

	for day := 10; day <= 14; day++ {
		date := time.Date(2025, 3, day, 0, 0, 0, 0, time.UTC)
		require.NoError(t, repo.Upsert(ctx, testutil.NewTestPromiseLog(p.ID, date, true)))
	}

	logs, err := repo.ListRange(ctx,
		time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.True(t, logs[0].Date.Equal(time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)))
	assert.True(t, logs[2].Date.Equal(time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC)))
}

func TestPromiseLogRepo_HasAnyForPromise(t *testing.T) {
	database := testutil.NewTestDB(t)
	p := seedPromise(t, database)
	repo := NewSQLitePromiseLogRepo(database)
	ctx := context.Background()

	has, err := repo.HasAnyForPromise(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, has)

	date := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestPromiseLog(p.ID, date, true)))

	has, err = repo.HasAnyForPromise(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestPromiseLogRepo_Delete(t *testing.T) {
	database := testutil.NewTestDB(t)
	p := seedPromise(t, database)
	repo := NewSQLitePromiseLogRepo(database)
	ctx := context.Background()

	date := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	l := testutil.NewTestPromiseLog(p.ID, date, true)
	require.NoError(t, repo.Upsert(ctx, l))
	require.NoError(t, repo.Delete(ctx, l.ID))

	_, err := repo.GetByPromiseAndDate(ctx, p.ID, date)
	assert.ErrorIs(t, err, ErrNotFound)
}
