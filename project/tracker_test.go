package project

import (
	"testing"
	"time"

	"github.com/hashicorp/go-uuid"
	"github.com/stretchr/testify/require"
)

func newTestTracker(t *testing.T) *Tracker {
	t.Helper()
	tracker, err := NewTracker(Options{})
	require.NoError(t, err)
	t.Cleanup(tracker.Close)
	return tracker
}

func contentHash(t *testing.T) string {
	t.Helper()
	h, err := uuid.GenerateUUID()
	require.NoError(t, err)
	return h
}

func TestUpsertAssignsVersions(t *testing.T) {
	tracker := newTestTracker(t)

	f1, err := tracker.Upsert("main.go", contentHash(t), nil)
	require.NoError(t, err)
	require.Equal(t, uint64(1), f1.Version)

	f2, err := tracker.Upsert("main.go", contentHash(t), nil)
	require.NoError(t, err)
	require.Equal(t, uint64(2), f2.Version)

	other, err := tracker.Upsert("util.go", contentHash(t), nil)
	require.NoError(t, err)
	require.Equal(t, uint64(1), other.Version, "versions are per path")
}

func TestSnapshotIsolation(t *testing.T) {
	tracker := newTestTracker(t)

	_, err := tracker.Upsert("a.go", contentHash(t), nil)
	require.NoError(t, err)
	snap := tracker.Snapshot()
	require.Equal(t, 1, snap.Files.Len())

	_, err = tracker.Upsert("b.go", contentHash(t), nil)
	require.NoError(t, err)
	require.NoError(t, tracker.Remove("a.go"))

	// the old snapshot still sees the old state
	require.Equal(t, 1, snap.Files.Len())
	require.True(t, snap.Files.Contains("a.go"))
	require.False(t, snap.Files.Contains("b.go"))

	current := tracker.Snapshot()
	require.False(t, current.Files.Contains("a.go"))
	require.True(t, current.Files.Contains("b.go"))
	require.Greater(t, current.Generation, snap.Generation)
}

func TestRemoveUnknownPathIsNoop(t *testing.T) {
	tracker := newTestTracker(t)

	_, err := tracker.Upsert("a.go", contentHash(t), nil)
	require.NoError(t, err)
	before := tracker.Snapshot()

	require.NoError(t, tracker.Remove("missing.go"))
	require.Equal(t, before.Generation, tracker.Snapshot().Generation)
}

func TestDependents(t *testing.T) {
	tracker := newTestTracker(t)

	_, err := tracker.Upsert("lib.go", contentHash(t), nil)
	require.NoError(t, err)
	_, err = tracker.Upsert("a.go", contentHash(t), []string{"lib.go"})
	require.NoError(t, err)
	_, err = tracker.Upsert("b.go", contentHash(t), []string{"lib.go", "a.go"})
	require.NoError(t, err)

	require.Equal(t, []string{"a.go", "b.go"}, tracker.Dependents("lib.go"))
	require.Equal(t, []string{"b.go"}, tracker.Dependents("a.go"))
	require.Empty(t, tracker.Dependents("b.go"))
}

func TestClosure(t *testing.T) {
	tracker := newTestTracker(t)

	_, err := tracker.Upsert("a.go", contentHash(t), []string{"b.go"})
	require.NoError(t, err)
	_, err = tracker.Upsert("b.go", contentHash(t), []string{"c.go"})
	require.NoError(t, err)
	_, err = tracker.Upsert("c.go", contentHash(t), nil)
	require.NoError(t, err)

	require.Equal(t, []string{"a.go", "b.go", "c.go"}, tracker.Closure("a.go"))
	require.Equal(t, []string{"b.go", "c.go"}, tracker.Closure("b.go"))
	require.Equal(t, []string{"c.go"}, tracker.Closure("c.go"))
}

func TestClosureHandlesCycles(t *testing.T) {
	tracker := newTestTracker(t)

	_, err := tracker.Upsert("a.go", contentHash(t), []string{"b.go"})
	require.NoError(t, err)
	_, err = tracker.Upsert("b.go", contentHash(t), []string{"a.go"})
	require.NoError(t, err)

	require.Equal(t, []string{"a.go", "b.go"}, tracker.Closure("a.go"))
}

func TestClosureInvalidatedByUpdate(t *testing.T) {
	tracker := newTestTracker(t)

	_, err := tracker.Upsert("a.go", contentHash(t), nil)
	require.NoError(t, err)
	require.Equal(t, []string{"a.go"}, tracker.Closure("a.go"))

	_, err = tracker.Upsert("a.go", contentHash(t), []string{"b.go"})
	require.NoError(t, err)
	require.Equal(t, []string{"a.go", "b.go"}, tracker.Closure("a.go"),
		"closure must reflect the new generation, not the cached one")
}

func TestSubscribeReceivesEvents(t *testing.T) {
	tracker := newTestTracker(t)

	ch, ok := tracker.Subscribe()
	require.True(t, ok)
	defer tracker.Unsubscribe(ch)

	_, err := tracker.Upsert("a.go", contentHash(t), nil)
	require.NoError(t, err)
	require.NoError(t, tracker.Remove("a.go"))

	ev := receiveEvent(t, ch)
	require.Equal(t, FileUpserted, ev.Kind)
	require.Equal(t, "a.go", ev.Path)

	ev = receiveEvent(t, ch)
	require.Equal(t, FileRemoved, ev.Kind)
	require.Equal(t, "a.go", ev.Path)
	require.Greater(t, ev.Generation, uint64(1))
}

func receiveEvent(t *testing.T, ch chan interface{}) Event {
	t.Helper()
	select {
	case msg, ok := <-ch:
		require.True(t, ok, "event channel closed unexpectedly")
		ev, isEvent := msg.(Event)
		require.True(t, isEvent, "unexpected message type %T", msg)
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a tracker event")
	}
	return Event{}
}

func TestClosedTrackerRejectsUpdates(t *testing.T) {
	tracker, err := NewTracker(Options{})
	require.NoError(t, err)

	_, err = tracker.Upsert("a.go", contentHash(t), nil)
	require.NoError(t, err)
	tracker.Close()

	_, err = tracker.Upsert("b.go", contentHash(t), nil)
	require.ErrorIs(t, err, ErrTrackerClosed)
	require.ErrorIs(t, tracker.Remove("a.go"), ErrTrackerClosed)

	// reads stay available
	require.True(t, tracker.Snapshot().Files.Contains("a.go"))
	tracker.Close() // idempotent
}
