// Package watch re-runs a callback when watched files change.
//
// Parent directories are watched rather than the files, so editors that save
// by writing a temp file and renaming it over the original still trigger.
// Bursts of events on one file are debounced into a single call, and calls
// never overlap.
package watch
