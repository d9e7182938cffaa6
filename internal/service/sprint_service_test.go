package service

import (
	"context"
	"testing"

	"github.com/keptapp/kept/internal/domain"
	"github.com/keptapp/kept/internal/repository"
	"github.com/keptapp/kept/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSprintService(t *testing.T) (SprintService, repository.SprintRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteSprintRepo(database)
	return NewSprintService(repo), repo
}

func TestSprintService_Create_DefaultsAndValidation(t *testing.T) {
	svc, _ := newSprintService(t)
	ctx := context.Background()

	sp := testutil.NewTestSprint("March push")
	sp.ID = ""
	sp.Status = ""
	require.NoError(t, svc.Create(ctx, sp))

	assert.NotEmpty(t, sp.ID)
	assert.Equal(t, domain.SprintPlanned, sp.Status)

	bad := testutil.NewTestSprint("")
	assert.Error(t, svc.Create(ctx, bad))
}

func TestSprintService_Start_SingleActiveInvariant(t *testing.T) {
	svc, _ := newSprintService(t)
	ctx := context.Background()

	first := testutil.NewTestSprint("first")
	second := testutil.NewTestSprint("second")
	require.NoError(t, svc.Create(ctx, first))
	require.NoError(t, svc.Create(ctx, second))

	require.NoError(t, svc.Start(ctx, first.ID))

	err := svc.Start(ctx, second.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already active")

	active, err := svc.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, active.ID)
}

func TestSprintService_Start_AlreadyActive(t *testing.T) {
	svc, _ := newSprintService(t)
	ctx := context.Background()

	sp := testutil.NewTestSprint("sprint")
	require.NoError(t, svc.Create(ctx, sp))
	require.NoError(t, svc.Start(ctx, sp.ID))

	err := svc.Start(ctx, sp.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already active")
}

func TestSprintService_CloseThenStartAgain_Rejected(t *testing.T) {
	svc, _ := newSprintService(t)
	ctx := context.Background()

	sp := testutil.NewTestSprint("sprint")
	require.NoError(t, svc.Create(ctx, sp))
	require.NoError(t, svc.Start(ctx, sp.ID))
	require.NoError(t, svc.Close(ctx, sp.ID))

	err := svc.Start(ctx, sp.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "closed")
}

func TestSprintService_Close_NotActive(t *testing.T) {
	svc, _ := newSprintService(t)
	ctx := context.Background()

	sp := testutil.NewTestSprint("planned")
	require.NoError(t, svc.Create(ctx, sp))

	err := svc.Close(ctx, sp.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not active")
}

func TestSprintService_CloseFreesActiveSlot(t *testing.T) {
	svc, _ := newSprintService(t)
	ctx := context.Background()

	first := testutil.NewTestSprint("first")
	second := testutil.NewTestSprint("second")
	require.NoError(t, svc.Create(ctx, first))
	require.NoError(t, svc.Create(ctx, second))

	require.NoError(t, svc.Start(ctx, first.ID))
	require.NoError(t, svc.Close(ctx, first.ID))
	require.NoError(t, svc.Start(ctx, second.ID))

	active, err := svc.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)
}
