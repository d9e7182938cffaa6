package service

import (
	"context"
	"testing"
	"time"

	"github.com/keptapp/kept/internal/repository"
	"github.com/keptapp/kept/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDailyLogService(t *testing.T) (DailyLogService, repository.PriorityRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	priorities := repository.NewSQLitePriorityRepo(database)
	svc := NewDailyLogService(
		repository.NewSQLiteDailyLogRepo(database),
		priorities,
		testutil.NewTestUoW(database),
	)
	return svc, priorities
}

func TestDailyLogService_Upsert_RoundTrip(t *testing.T) {
	svc, priorities := newDailyLogService(t)
	ctx := context.Background()
	require.NoError(t, priorities.Upsert(ctx, testutil.NewTestPriority("writing", "Writing", 10)))

	date := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	d := testutil.NewTestDailyLog(date,
		testutil.WithEnergy(4),
		testutil.WithPriorityUnits("writing", 3, 4),
		testutil.WithProof("Drafted the intro section"))
	require.NoError(t, svc.Upsert(ctx, d))

	got, err := svc.GetByDate(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Energy)
	require.Len(t, got.PriorityLogs, 1)
	assert.Equal(t, 3, got.PriorityLogs[0].Units)
}

func TestDailyLogService_Upsert_EnergyOutOfRange(t *testing.T) {
	svc, _ := newDailyLogService(t)

	d := testutil.NewTestDailyLog(time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), testutil.WithEnergy(6))
	err := svc.Upsert(context.Background(), d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "energy")
}

func TestDailyLogService_Upsert_UnknownPriorityKey(t *testing.T) {
	svc, _ := newDailyLogService(t)
	ctx := context.Background()

	date := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	d := testutil.NewTestDailyLog(date,
		testutil.WithPriorityUnits("undefined", 2, 3),
		testutil.WithProof("Some plausible evidence"))
	err := svc.Upsert(ctx, d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown priority key")

	// The rejected write must not leave a partial daily log behind.
	_, err = svc.GetByDate(ctx, date)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDailyLogService_Upsert_UnitsWithoutProofRejected(t *testing.T) {
	svc, priorities := newDailyLogService(t)
	ctx := context.Background()
	require.NoError(t, priorities.Upsert(ctx, testutil.NewTestPriority("writing", "Writing", 10)))

	d := testutil.NewTestDailyLog(time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
		testutil.WithPriorityUnits("writing", 3, 4))
	err := svc.Upsert(ctx, d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "proof of work")
}

func TestDailyLogService_Upsert_ShortProofRejected(t *testing.T) {
	svc, priorities := newDailyLogService(t)
	ctx := context.Background()
	require.NoError(t, priorities.Upsert(ctx, testutil.NewTestPriority("writing", "Writing", 10)))

	d := testutil.NewTestDailyLog(time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
		testutil.WithPriorityUnits("writing", 3, 4),
		testutil.WithProof("   short  "))
	err := svc.Upsert(ctx, d)
	assert.Error(t, err)
}

func TestDailyLogService_Upsert_ZeroUnitsNeedNoProof(t *testing.T) {
	svc, priorities := newDailyLogService(t)
	ctx := context.Background()
	require.NoError(t, priorities.Upsert(ctx, testutil.NewTestPriority("writing", "Writing", 10)))

	d := testutil.NewTestDailyLog(time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
		testutil.WithPriorityUnits("writing", 0, 3))
	assert.NoError(t, svc.Upsert(ctx, d))
}

func TestDailyLogService_Upsert_NormalizesDate(t *testing.T) {
	svc, _ := newDailyLogService(t)
	ctx := context.Background()

	late := time.Date(2025, 3, 11, 23, 30, 0, 0, time.UTC)
	require.NoError(t, svc.Upsert(ctx, testutil.NewTestDailyLog(late)))

	got, err := svc.GetByDate(ctx, time.Date(2025, 3, 11, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, got.Date.Equal(time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)))
}
