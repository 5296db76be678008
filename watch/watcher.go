// SPDX-License-Identifier: MIT

package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce is used when Config.Debounce is zero.
const DefaultDebounce = 200 * time.Millisecond

// ErrNoPaths is returned by New when nothing is to be watched.
var ErrNoPaths = errors.New("watch: no paths")

// OnChange is invoked with the absolute path that changed.
type OnChange func(ctx context.Context, path string)

// Config tunes a Watcher.
type Config struct {
	Debounce time.Duration
	Logger   zerolog.Logger
}

// Watcher debounces fsnotify events for a fixed set of files.
type Watcher struct {
	fs       *fsnotify.Watcher
	files    map[string]struct{}
	debounce time.Duration
	onChange OnChange
	log      zerolog.Logger

	mu      sync.Mutex
	pending map[string]*time.Timer
	running sync.Mutex // serializes onChange
}

// New registers paths and returns a Watcher ready to Run. Events that occur
// after New returns are observed.
func New(paths []string, onChange OnChange, cfg Config) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, ErrNoPaths
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create watcher: %w", err)
	}

	w := &Watcher{
		fs:       fw,
		files:    make(map[string]struct{}, len(paths)),
		debounce: cfg.Debounce,
		onChange: onChange,
		log:      cfg.Logger.With().Str("component", "watch").Logger(),
		pending:  make(map[string]*time.Timer),
	}
	dirs := make(map[string]struct{})
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("watch: %s: %w", p, err)
		}
		w.files[abs] = struct{}{}
		dir := filepath.Dir(abs)
		if _, seen := dirs[dir]; seen {
			continue
		}
		if err = fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("watch: %s: %w", dir, err)
		}
		dirs[dir] = struct{}{}
	}

	return w, nil
}

// Run dispatches debounced changes until ctx is done, then releases the
// underlying watcher. It returns nil on cancellation.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			path := filepath.Clean(ev.Name)
			if _, ok := w.files[path]; !ok {
				continue
			}
			w.log.Debug().Str("path", path).Str("op", ev.Op.String()).Msg("change detected")
			w.schedule(ctx, path)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.log.Warn().Err(err).Msg("watcher error")
		}
	}
}

// schedule restarts path's debounce timer.
func (w *Watcher) schedule(ctx context.Context, path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.scheduleLocked(ctx, path)
}

// scheduleLocked requires w.mu. A timer that already fired may be blocked
// on w.mu while it is replaced; it finds another timer under path and
// returns without firing, so only the newest timer reaches onChange.
func (w *Watcher) scheduleLocked(ctx context.Context, path string) {
	if t, ok := w.pending[path]; ok {
		t.Stop()
	}
	var t *time.Timer
	t = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		if w.pending[path] != t {
			w.mu.Unlock()
			return
		}
		delete(w.pending, path)
		w.mu.Unlock()

		if ctx.Err() != nil {
			return
		}
		w.running.Lock()
		defer w.running.Unlock()
		w.onChange(ctx, path)
	})
	w.pending[path] = t
}

func (w *Watcher) stop() {
	w.mu.Lock()
	for p, t := range w.pending {
		t.Stop()
		delete(w.pending, p)
	}
	w.mu.Unlock()

	if err := w.fs.Close(); err != nil {
		w.log.Warn().Err(err).Msg("close watcher")
	}
}
