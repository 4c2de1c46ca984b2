package sessions

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mobile-next/touchdrag/gestures"
	"github.com/mobile-next/touchdrag/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T, capacity int) *Registry {
	t.Helper()
	r, err := NewRegistry(capacity, Options{})
	require.NoError(t, err)

	// deterministic, strictly increasing creation times
	base := time.Unix(1700000000, 0)
	calls := 0
	r.now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Second)
	}
	return r
}

func TestRegistry_CreateAndGet(t *testing.T) {
	r := newTestRegistry(t, 4)
	s := r.Create(Options{Name: "phone"})

	got, err := r.Get(s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)
	assert.Equal(t, "phone", got.Info().Name)
	assert.Len(t, s.ID, 36)
}

func TestRegistry_GetUnknown(t *testing.T) {
	r := newTestRegistry(t, 4)
	_, err := r.Get("missing")
	assert.True(t, errors.Is(err, ErrSessionNotFound))
}

func TestRegistry_Close(t *testing.T) {
	r := newTestRegistry(t, 4)
	s := r.Create(Options{})

	require.NoError(t, r.Close(s.ID))
	assert.Equal(t, 0, r.Len())
	assert.True(t, errors.Is(r.Close(s.ID), ErrSessionNotFound))
}

func TestRegistry_EvictsLeastRecentlyUsed(t *testing.T) {
	r := newTestRegistry(t, 2)
	first := r.Create(Options{})
	second := r.Create(Options{})

	// touch the first so the second becomes the eviction candidate
	_, err := r.Get(first.ID)
	require.NoError(t, err)

	first.Tracker.Ingest(gestures.TouchEvent{ID: 1, Phase: gestures.Started})
	second.Tracker.Ingest(gestures.TouchEvent{ID: 1, Phase: gestures.Started})

	third := r.Create(Options{})
	assert.Equal(t, 2, r.Len())

	_, err = r.Get(second.ID)
	assert.True(t, errors.Is(err, ErrSessionNotFound))
	assert.Equal(t, 0, second.Tracker.FingerCount(), "evicted session should be reset")
	assert.Equal(t, 1, first.Tracker.FingerCount())

	_, err = r.Get(third.ID)
	assert.NoError(t, err)
}

func TestRegistry_ListOldestFirst(t *testing.T) {
	r := newTestRegistry(t, 4)
	a := r.Create(Options{Name: "a"})
	b := r.Create(Options{Name: "b"})
	b.Tracker.Ingest(gestures.TouchEvent{ID: 5, Phase: gestures.Started})

	infos := r.List()
	require.Len(t, infos, 2)
	assert.Equal(t, a.ID, infos[0].ID)
	assert.Equal(t, b.ID, infos[1].ID)
	assert.Equal(t, 1, infos[1].Fingers)
}

func TestRegistry_CloseAll(t *testing.T) {
	r := newTestRegistry(t, 4)
	r.Create(Options{})
	r.Create(Options{})

	r.CloseAll()
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.List())
}

func TestSession_LoopAppliesDrag(t *testing.T) {
	r := newTestRegistry(t, 4)
	s := r.Create(Options{Sensitivity: 2, Speed: 1})

	s.Tracker.IngestAll([]gestures.TouchEvent{
		{ID: 1, Phase: gestures.Started, Position: gestures.Vec2{X: 0, Y: 0}},
		{ID: 1, Phase: gestures.Moved, Position: gestures.Vec2{X: 3, Y: 4}},
	})

	f := s.Loop.Step(time.Unix(0, 0))
	assert.Equal(t, float32(3), f.DX)
	assert.Equal(t, float32(6), f.OffsetX)
	assert.Equal(t, float32(8), f.OffsetY)
}

func TestNewRegistry_RejectsZeroCapacity(t *testing.T) {
	_, err := NewRegistry(0, Options{})
	assert.Error(t, err)
}

func TestSession_ContextCancelledWhenClosed(t *testing.T) {
	r := newTestRegistry(t, 4)
	s := r.Create(Options{})
	require.NoError(t, s.Context().Err())

	require.NoError(t, r.Close(s.ID))
	assert.ErrorIs(t, s.Context().Err(), context.Canceled)
}

func TestSession_ContextCancelledWhenEvicted(t *testing.T) {
	r := newTestRegistry(t, 1)
	first := r.Create(Options{})
	second := r.Create(Options{})

	assert.ErrorIs(t, first.Context().Err(), context.Canceled)
	assert.NoError(t, second.Context().Err())

	r.CloseAll()
	assert.ErrorIs(t, second.Context().Err(), context.Canceled)
}

func TestRegistry_AppliesDefaults(t *testing.T) {
	r, err := NewRegistry(4, Options{Sensitivity: 3, Bounds: 5, Speed: 2})
	require.NoError(t, err)

	drag := []gestures.TouchEvent{
		{ID: 1, Phase: gestures.Started},
		{ID: 1, Phase: gestures.Moved, Position: gestures.Vec2{X: 1, Y: 4}},
	}

	s := r.Create(Options{})
	s.Tracker.IngestAll(drag)
	f := s.Loop.Step(time.Unix(0, 0))
	assert.Equal(t, float32(3), f.OffsetX)
	assert.Equal(t, float32(5), f.OffsetY, "clamped to the default bounds")

	// explicit options win over the defaults
	s = r.Create(Options{Sensitivity: 1})
	s.Tracker.IngestAll(drag)
	f = s.Loop.Step(time.Unix(0, 0))
	assert.Equal(t, float32(1), f.OffsetX)
	assert.Equal(t, float32(4), f.OffsetY)
}

func TestRegistry_LogsSessionField(t *testing.T) {
	var buf bytes.Buffer
	logger := utils.Logger()
	out := logger.Out
	logger.SetOutput(&buf)
	verbose := utils.IsVerbose()
	utils.SetVerbose(true)
	t.Cleanup(func() {
		logger.SetOutput(out)
		utils.SetVerbose(verbose)
	})

	r := newTestRegistry(t, 4)
	s := r.Create(Options{})
	require.NoError(t, r.Close(s.ID))

	assert.Contains(t, buf.String(), "session="+s.ID)
	assert.Contains(t, buf.String(), "Session created")
	assert.Contains(t, buf.String(), "Session released")
}
