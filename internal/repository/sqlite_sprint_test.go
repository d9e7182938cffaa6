package repository

import (
	"context"
	"testing"
	"time"

	"github.com/keptapp/kept/internal/domain"
	"github.com/keptapp/kept/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSprintRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSprintRepo(database)
	ctx := context.Background()

	s := testutil.NewTestSprint("March push")
	require.NoError(t, repo.Create(ctx, s))

	got, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.Name, got.Name)
	assert.Equal(t, domain.SprintPlanned, got.Status)
	assert.True(t, got.StartDate.Equal(s.StartDate))
	assert.True(t, got.EndDate.Equal(s.EndDate))
}

func TestSprintRepo_GetByID_NotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSprintRepo(database)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSprintRepo_GetActive(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSprintRepo(database)
	ctx := context.Background()

	planned := testutil.NewTestSprint("planned")
	active := testutil.NewTestSprint("active", testutil.WithSprintStatus(domain.SprintActive))
	require.NoError(t, repo.Create(ctx, planned))
	require.NoError(t, repo.Create(ctx, active))

	got, err := repo.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, active.ID, got.ID)
}

func TestSprintRepo_GetActive_NoneActive(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSprintRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestSprint("planned")))

	_, err := repo.GetActive(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSprintRepo_List_OrderedByStartDesc(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSprintRepo(database)
	ctx := context.Background()

	early := testutil.NewTestSprint("early", testutil.WithSprintWindow(
		time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 19, 0, 0, 0, 0, time.UTC),
	))
	late := testutil.NewTestSprint("late", testutil.WithSprintWindow(
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 23, 0, 0, 0, 0, time.UTC),
	))
	require.NoError(t, repo.Create(ctx, early))
	require.NoError(t, repo.Create(ctx, late))

	sprints, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, sprints, 2)
	assert.Equal(t, "late", sprints[0].Name)
	assert.Equal(t, "early", sprints[1].Name)
}

func TestSprintRepo_Update(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSprintRepo(database)
	ctx := context.Background()

	s := testutil.NewTestSprint("sprint")
	require.NoError(t, repo.Create(ctx, s))

	s.Status = domain.SprintActive
	s.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Update(ctx, s))

	got, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SprintActive, got.Status)
}

func TestSprintRepo_Update_NotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSprintRepo(database)

	s := testutil.NewTestSprint("ghost")
	err := repo.Update(context.Background(), s)
	assert.ErrorIs(t, err, ErrNotFound)
}
