// SPDX-License-Identifier: MIT
package watch_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/relgraph/watch"
)

type calls struct {
	mu    sync.Mutex
	paths []string
}

func (c *calls) record(_ context.Context, path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paths = append(c.paths, path)
}

func (c *calls) snapshot() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]string(nil), c.paths...)
}

func start(t *testing.T, w *watch.Watcher) context.CancelFunc {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Error("Run did not return after cancel")
		}
	})

	return cancel
}

func TestWatcher_DebouncesBurst(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "table.txt")
	require.NoError(t, os.WriteFile(input, []byte("A\nA 1\n"), 0o600))

	var c calls
	w, err := watch.New([]string{input}, c.record, watch.Config{Debounce: 150 * time.Millisecond})
	require.NoError(t, err)
	start(t, w)

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(input, []byte("A\nA 2\n"), 0o600))
	}

	require.Eventually(t, func() bool { return len(c.snapshot()) >= 1 }, 5*time.Second, 20*time.Millisecond)
	time.Sleep(400 * time.Millisecond)

	got := c.snapshot()
	assert.Len(t, got, 1)
	abs, _ := filepath.Abs(input)
	assert.Equal(t, abs, got[0])
}

func TestWatcher_IgnoresSiblings(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "table.txt")
	require.NoError(t, os.WriteFile(input, []byte("A\n"), 0o600))

	var c calls
	w, err := watch.New([]string{input}, c.record, watch.Config{Debounce: 20 * time.Millisecond})
	require.NoError(t, err)
	start(t, w)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o600))
	time.Sleep(300 * time.Millisecond)
	assert.Empty(t, c.snapshot())

	// Replacing the file by rename still counts as a change.
	tmp := filepath.Join(dir, ".table.txt.swp")
	require.NoError(t, os.WriteFile(tmp, []byte("A\nA 3\n"), 0o600))
	require.NoError(t, os.Rename(tmp, input))
	require.Eventually(t, func() bool { return len(c.snapshot()) >= 1 }, 5*time.Second, 20*time.Millisecond)
}

func TestWatcher_StopsOnCancel(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "table.txt")
	require.NoError(t, os.WriteFile(input, nil, 0o600))

	var c calls
	w, err := watch.New([]string{input}, c.record, watch.Config{Debounce: time.Hour})
	require.NoError(t, err)
	cancel := start(t, w)

	require.NoError(t, os.WriteFile(input, []byte("A\n"), 0o600))
	time.Sleep(100 * time.Millisecond)
	cancel()
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, c.snapshot())
}

func TestWatcher_ReplacedTimerDoesNotFire(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "table.txt")
	require.NoError(t, os.WriteFile(input, nil, 0o600))

	var c calls
	w, err := watch.New([]string{input}, c.record, watch.Config{Debounce: 20 * time.Millisecond})
	require.NoError(t, err)
	start(t, w)
	ctx := context.Background()

	// The first timer fires while the table is held, so its callback waits;
	// the change is then rescheduled under the same lock.
	release := w.HoldPending()
	w.ScheduleHeld(ctx, input)
	time.Sleep(100 * time.Millisecond)
	w.ScheduleHeld(ctx, input)
	release()

	require.Eventually(t, func() bool { return len(c.snapshot()) >= 1 }, 5*time.Second, 10*time.Millisecond)
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, []string{input}, c.snapshot())
	assert.Zero(t, w.Pending())
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	_, err := watch.New(nil, func(context.Context, string) {}, watch.Config{})
	require.ErrorIs(t, err, watch.ErrNoPaths)

	_, err = watch.New([]string{filepath.Join(t.TempDir(), "missing-dir", "t.txt")}, func(context.Context, string) {}, watch.Config{})
	require.Error(t, err)
}
