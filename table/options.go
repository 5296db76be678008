// SPDX-License-Identifier: MIT
// Package table: functional options for Parse.
//
// Contract:
//   - Option constructors panic on nil arguments (programmer error);
//     Parse itself never panics on user input.
//   - Defaults: no recognized set (header defines it), discard sink,
//     zerolog.Nop logger.

package table

import "github.com/rs/zerolog"

// Option configures a Parse call.
type Option func(*config)

type config struct {
	recognized []string
	sink       Sink
	log        zerolog.Logger
}

func newConfig(opts []Option) config {
	c := config{sink: discard{}, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithRecognized restricts valid entities to names. Header tokens outside
// names are dropped. An empty call leaves the header as the recognized set.
func WithRecognized(names ...string) Option {
	cp := make([]string, len(names))
	copy(cp, names)

	return func(c *config) { c.recognized = cp }
}

// WithSink delivers warnings to s.
func WithSink(s Sink) Option {
	if s == nil {
		panic("table: WithSink(nil)")
	}

	return func(c *config) { c.sink = s }
}

// WithLogger logs parse progress (debug) and warnings (warn) on l.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.log = l.With().Str("component", "table").Logger() }
}
