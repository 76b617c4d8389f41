package progress

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporterRegistersPendingRecord(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	NewReporter(ctx, store, "tester", "course-42")

	record, err := store.Get(ctx, "tester", "course-42")
	require.NoError(t, err)
	assert.Equal(t, PhasePending, record.Phase)
	assert.False(t, record.StartedAt.IsZero())
	assert.Nil(t, record.FinishedAt)
}

func TestReporterPhaseResetsCounters(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	reporter := NewReporter(ctx, store, "tester", "course-42")
	reporter.SetPhase(ctx, PhaseFetchingCourses, "fetching")
	reporter.SetProgress(ctx, 3, 10, "")
	reporter.SetPhase(ctx, PhaseFetchingGroups, "groups")

	record, err := store.Get(ctx, "tester", "course-42")
	require.NoError(t, err)
	assert.Equal(t, PhaseFetchingGroups, record.Phase)
	assert.Equal(t, 0, record.Current)
	assert.Equal(t, 0, record.Total)
}

func TestReporterAccumulatesErrors(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	reporter := NewReporter(ctx, store, "tester", "course-42")
	reporter.AddError(ctx, errors.New("first"))
	reporter.AddError(ctx, errors.New("second"))

	assert.Equal(t, []string{"first", "second"}, reporter.Errors())

	record, err := store.Get(ctx, "tester", "course-42")
	require.NoError(t, err)
	assert.Len(t, record.Errors, 2)
}

func TestReporterFinishCompletedWithErrors(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	reporter := NewReporter(ctx, store, "tester", "course-42")
	reporter.AddError(ctx, errors.New("throttled"))
	reporter.Finish(ctx, PhaseCompleted, "synced with 1 recoverable error")

	record, err := store.Get(ctx, "tester", "course-42")
	require.NoError(t, err)
	assert.Equal(t, PhaseCompleted, record.Phase)
	assert.True(t, record.Terminal())
	require.NotNil(t, record.FinishedAt)
	// Recoverable errors stay visible on the terminal snapshot.
	assert.Equal(t, []string{"throttled"}, record.Errors)
}

func TestReporterDistinctTargetsDoNotCollide(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	a := NewReporter(ctx, store, "tester", "course-1")
	b := NewReporter(ctx, store, "tester", "course-2")
	a.SetPhase(ctx, PhaseFailed, "boom")
	b.SetPhase(ctx, PhaseSavingGroups, "saving")

	recordA, err := store.Get(ctx, "tester", "course-1")
	require.NoError(t, err)
	recordB, err := store.Get(ctx, "tester", "course-2")
	require.NoError(t, err)
	assert.Equal(t, PhaseFailed, recordA.Phase)
	assert.Equal(t, PhaseSavingGroups, recordB.Phase)
}
