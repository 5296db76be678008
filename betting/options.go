// SPDX-License-Identifier: MIT

package betting

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/relgraph/table"
)

// DefaultUsers are the estimate columns when WithUsers is not given.
var DefaultUsers = []string{"ivan", "jason", "daffy", "ernie"}

// Option configures a Parse call.
type Option func(*config)

type config struct {
	users []string
	due   time.Time
	sink  table.Sink
	log   zerolog.Logger
}

func newConfig(opts []Option) config {
	c := config{
		users: append([]string(nil), DefaultUsers...),
		sink:  table.SinkFunc(func(error) {}),
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithUsers names the estimate columns, in column order.
func WithUsers(users ...string) Option {
	cp := append([]string(nil), users...)

	return func(c *config) { c.users = cp }
}

// WithDue keeps only predicates due on day (compared by calendar date).
// The zero time keeps every predicate.
func WithDue(day time.Time) Option {
	return func(c *config) { c.due = day }
}

// WithSink delivers a *SkippedRowWarning for every row left out.
func WithSink(s table.Sink) Option {
	if s == nil {
		panic("betting: WithSink(nil)")
	}

	return func(c *config) { c.sink = s }
}

// WithLogger logs skipped rows (warn) and a parse summary (debug) on l.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.log = l.With().Str("component", "betting").Logger() }
}
