package progress

import (
	"context"
	"testing"
	"time"

	apperrors "gradebench-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorePutGet(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	record := Record{
		Actor:   "tester",
		Target:  "course-42",
		Phase:   PhaseFetchingCourses,
		Message: "fetching course",
	}
	require.NoError(t, store.Put(ctx, record))

	got, err := store.Get(ctx, "tester", "course-42")
	require.NoError(t, err)
	assert.Equal(t, PhaseFetchingCourses, got.Phase)
	assert.Equal(t, "fetching course", got.Message)
}

func TestMemoryStoreMissingRecord(t *testing.T) {
	store := NewMemoryStore(time.Minute)

	_, err := store.Get(context.Background(), "tester", "course-42")

	assert.ErrorIs(t, err, apperrors.ErrProgressNotFound)
}

func TestMemoryStoreSnapshotIsolation(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	record := Record{
		Actor:  "tester",
		Target: "course-42",
		Phase:  PhaseFetchingGroups,
		Errors: []string{"first"},
	}
	require.NoError(t, store.Put(ctx, record))

	// Mutating the caller's copy after Put must not leak into the store.
	record.Errors = append(record.Errors, "second")
	record.Phase = PhaseFailed

	got, err := store.Get(ctx, "tester", "course-42")
	require.NoError(t, err)
	assert.Equal(t, PhaseFetchingGroups, got.Phase)
	assert.Equal(t, []string{"first"}, got.Errors)

	// And mutating a returned snapshot must not affect later readers.
	got.Errors[0] = "mutated"
	again, err := store.Get(ctx, "tester", "course-42")
	require.NoError(t, err)
	assert.Equal(t, []string{"first"}, again.Errors)
}

func TestMemoryStoreLastWriteWins(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, Record{Actor: "tester", Target: "all", Phase: PhasePending}))
	require.NoError(t, store.Put(ctx, Record{Actor: "tester", Target: "all", Phase: PhaseSyncingMembers}))

	got, err := store.Get(ctx, "tester", "all")
	require.NoError(t, err)
	assert.Equal(t, PhaseSyncingMembers, got.Phase)
}

func TestMemoryStoreTerminalRecordExpires(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	current := time.Now()
	store.now = func() time.Time { return current }

	finished := current
	require.NoError(t, store.Put(ctx, Record{
		Actor:      "tester",
		Target:     "course-42",
		Phase:      PhaseCompleted,
		FinishedAt: &finished,
	}))

	_, err := store.Get(ctx, "tester", "course-42")
	require.NoError(t, err)

	current = current.Add(2 * time.Minute)

	_, err = store.Get(ctx, "tester", "course-42")
	assert.ErrorIs(t, err, apperrors.ErrProgressNotFound)
}

func TestMemoryStoreInFlightRecordNeverExpires(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	current := time.Now()
	store.now = func() time.Time { return current }

	require.NoError(t, store.Put(ctx, Record{
		Actor:  "tester",
		Target: "course-42",
		Phase:  PhaseFetchingCourses,
	}))

	current = current.Add(24 * time.Hour)

	_, err := store.Get(ctx, "tester", "course-42")
	assert.NoError(t, err)
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, Record{Actor: "tester", Target: "course-42", Phase: PhasePending}))
	require.NoError(t, store.Delete(ctx, "tester", "course-42"))

	_, err := store.Get(ctx, "tester", "course-42")
	assert.ErrorIs(t, err, apperrors.ErrProgressNotFound)
}
