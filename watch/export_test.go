// SPDX-License-Identifier: MIT

package watch

import "context"

// Test bridge: drives the debounce bookkeeping without fsnotify events.

// HoldPending locks the pending-timer table until the returned func runs.
func (w *Watcher) HoldPending() (release func()) {
	w.mu.Lock()

	return w.mu.Unlock
}

// ScheduleHeld restarts path's timer; the caller must hold HoldPending.
func (w *Watcher) ScheduleHeld(ctx context.Context, path string) {
	w.scheduleLocked(ctx, path)
}

// Pending reports how many timers are armed.
func (w *Watcher) Pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	return len(w.pending)
}
