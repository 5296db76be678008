// SPDX-License-Identifier: MIT

package table

import "sync"

// Sink receives non-fatal parse warnings. Implementations must not retain
// the parser's state; the warning values themselves are safe to keep.
type Sink interface {
	Warn(w error)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(w error)

// Warn calls f(w).
func (f SinkFunc) Warn(w error) { f(w) }

// Recorder is a Sink that keeps every warning in arrival order.
// The zero value is ready to use and safe for concurrent parses.
type Recorder struct {
	mu       sync.Mutex
	warnings []error
}

// Warn appends w.
func (r *Recorder) Warn(w error) {
	r.mu.Lock()
	r.warnings = append(r.warnings, w)
	r.mu.Unlock()
}

// Warnings returns a copy of the recorded warnings.
func (r *Recorder) Warnings() []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]error, len(r.warnings))
	copy(out, r.warnings)

	return out
}

// Len returns the number of recorded warnings.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.warnings)
}

type discard struct{}

func (discard) Warn(error) {}
