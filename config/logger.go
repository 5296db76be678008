// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the root logger described by c, writing to w.
func NewLogger(c LogConfig, w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(c.Level)
	if err != nil || c.Level == "" {
		return zerolog.Nop(), fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.Level)
	}

	out := w
	switch c.Format {
	case "json":
	case "console", "":
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: true}
	default:
		return zerolog.Nop(), fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.Format)
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}
