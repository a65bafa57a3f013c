package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pantry/internal/adapters/watcher"
	"go.trai.ch/pantry/internal/core/ports"
	"go.trai.ch/pantry/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func startWatcher(t *testing.T, path string) (*watcher.Watcher, <-chan ports.WatchEvent) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	w, err := watcher.NewWatcher(log)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(func() {
		cancel()
		_ = w.Stop()
	})
	require.NoError(t, w.Start(ctx, path))

	events := make(chan ports.WatchEvent, 16)
	go func() {
		defer close(events)
		for ev := range w.Events() {
			events <- ev
		}
	}()
	return w, events
}

func TestWatcher_ReportsWritesToTarget(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "conversions.json")
	require.NoError(t, os.WriteFile(target, []byte(`{}`), 0o600))

	_, events := startWatcher(t, target)

	require.NoError(t, os.WriteFile(target, []byte(`{"cup": {"ml": 236.59}}`), 0o600))

	select {
	case ev := <-events:
		assert.Equal(t, filepath.Base(target), filepath.Base(ev.Path))
		assert.Contains(t, []ports.WatchOp{ports.OpWrite, ports.OpCreate}, ev.Operation)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "conversions.json")
	require.NoError(t, os.WriteFile(target, []byte(`{}`), 0o600))

	_, events := startWatcher(t, target)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "recipes.json"), []byte(`{}`), 0o600))

	select {
	case ev := <-events:
		t.Fatalf("unexpected event for %s", ev.Path)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_RetargetFollowsNewFile(t *testing.T) {
	first := filepath.Join(t.TempDir(), "conversions.json")
	second := filepath.Join(t.TempDir(), "metric.json")
	require.NoError(t, os.WriteFile(first, []byte(`{}`), 0o600))
	require.NoError(t, os.WriteFile(second, []byte(`{}`), 0o600))

	w, events := startWatcher(t, first)
	require.NoError(t, w.Retarget(second))

	require.NoError(t, os.WriteFile(first, []byte(`{"lb": {"oz": 16}}`), 0o600))
	require.NoError(t, os.WriteFile(second, []byte(`{"cup": {"ml": 236.59}}`), 0o600))

	select {
	case ev := <-events:
		assert.Equal(t, "metric.json", filepath.Base(ev.Path))
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestWatcher_RetargetFailsForMissingDirectory(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "conversions.json")
	require.NoError(t, os.WriteFile(target, []byte(`{}`), 0o600))

	w, events := startWatcher(t, target)
	err := w.Retarget(filepath.Join(dir, "missing", "metric.json"))
	assert.ErrorContains(t, err, "failed to watch conversion source")

	require.NoError(t, os.WriteFile(target, []byte(`{"cup": {"ml": 236.59}}`), 0o600))
	select {
	case ev := <-events:
		assert.Equal(t, "conversions.json", filepath.Base(ev.Path))
	case <-time.After(5 * time.Second):
		t.Fatal("previous file is no longer watched")
	}
}

func TestWatcher_StartFailsForMissingDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	w, err := watcher.NewWatcher(mocks.NewMockLogger(ctrl))
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	err = w.Start(context.Background(), filepath.Join(t.TempDir(), "missing", "conversions.json"))
	assert.ErrorContains(t, err, "failed to watch conversion source")
}

func TestWatcher_EventsEndOnCancel(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "conversions.json")
	require.NoError(t, os.WriteFile(target, []byte(`{}`), 0o600))

	ctrl := gomock.NewController(t)
	w, err := watcher.NewWatcher(mocks.NewMockLogger(ctrl))
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx, target))
	cancel()

	done := make(chan struct{})
	go func() {
		for range w.Events() {
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("events did not end after cancel")
	}
}
