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

// seedGoal creates a sprint + goal pair so promises satisfy their FKs.
func seedGoal(t *testing.T, database *sql.DB) *domain.Goal {
	t.Helper()
	ctx := context.Background()

	sprint := testutil.NewTestSprint("sprint")
	require.NoError(t, NewSQLiteSprintRepo(database).Create(ctx, sprint))

	goal := testutil.NewTestGoal(sprint.ID, "objective")
	require.NoError(t, NewSQLiteGoalRepo(database).Create(ctx, goal))
	return goal
}

func TestPromiseRepo_CreateAndGet_DailySchedule(t *testing.T) {
	database := testutil.NewTestDB(t)
	goal := seedGoal(t, database)
	repo := NewSQLitePromiseRepo(database)
	ctx := context.Background()

	p := testutil.NewTestPromise(goal.ID, "Write every Mon/Wed/Fri",
		testutil.WithSchedule(time.Monday, time.Wednesday, time.Friday))
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.KindDaily, got.Kind)
	assert.Equal(t, []time.Weekday{time.Monday, time.Wednesday, time.Friday}, got.ScheduleDays)
	assert.Zero(t, got.WeeklyTarget)
}

func TestPromiseRepo_CreateAndGet_Weekly(t *testing.T) {
	database := testutil.NewTestDB(t)
	goal := seedGoal(t, database)
	repo := NewSQLitePromiseRepo(database)
	ctx := context.Background()

	p := testutil.NewTestPromise(goal.ID, "Review thrice", testutil.WithWeeklyTarget(3))
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.KindWeekly, got.Kind)
	assert.Equal(t, 3, got.WeeklyTarget)
	assert.Empty(t, got.ScheduleDays)
}

func TestPromiseRepo_GetByID_NotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLitePromiseRepo(database)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPromiseRepo_Archive_ExcludedFromLists(t *testing.T) {
	database := testutil.NewTestDB(t)
	goal := seedGoal(t, database)
	repo := NewSQLitePromiseRepo(database)
	ctx := context.Background()

	keep := testutil.NewTestPromise(goal.ID, "keep")
	drop := testutil.NewTestPromise(goal.ID, "drop")
	require.NoError(t, repo.Create(ctx, keep))
	require.NoError(t, repo.Create(ctx, drop))
	require.NoError(t, repo.Archive(ctx, drop.ID))

	byGoal, err := repo.ListByGoal(ctx, goal.ID)
	require.NoError(t, err)
	require.Len(t, byGoal, 1)
	assert.Equal(t, keep.ID, byGoal[0].ID)

	all, err := repo.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestPromiseRepo_Archive_AlreadyArchived(t *testing.T) {
	database := testutil.NewTestDB(t)
	goal := seedGoal(t, database)
	repo := NewSQLitePromiseRepo(database)
	ctx := context.Background()

	p := testutil.NewTestPromise(goal.ID, "p")
	require.NoError(t, repo.Create(ctx, p))
	require.NoError(t, repo.Archive(ctx, p.ID))

	err := repo.Archive(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPromiseRepo_ListBySprint(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	sprintRepo := NewSQLiteSprintRepo(database)
	goalRepo := NewSQLiteGoalRepo(database)
	repo := NewSQLitePromiseRepo(database)

	s1 := testutil.NewTestSprint("one")
	s2 := testutil.NewTestSprint("two")
	require.NoError(t, sprintRepo.Create(ctx, s1))
	require.NoError(t, sprintRepo.Create(ctx, s2))

	g1 := testutil.NewTestGoal(s1.ID, "g1")
	g2 := testutil.NewTestGoal(s2.ID, "g2")
	require.NoError(t, goalRepo.Create(ctx, g1))
	require.NoError(t, goalRepo.Create(ctx, g2))

	require.NoError(t, repo.Create(ctx, testutil.NewTestPromise(g1.ID, "in sprint one")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestPromise(g2.ID, "in sprint two")))

	promises, err := repo.ListBySprint(ctx, s1.ID)
	require.NoError(t, err)
	require.Len(t, promises, 1)
	assert.Equal(t, "in sprint one", promises[0].Text)
}
