// SPDX-License-Identifier: MIT

package pipeline

import "errors"

var (
	// ErrUnsupportedFormat is returned for a format outside Formats.
	ErrUnsupportedFormat = errors.New("pipeline: unsupported output format")

	// ErrNoDrawer is returned when a Graphviz format is requested without a
	// Drawer.
	ErrNoDrawer = errors.New("pipeline: no drawer configured")

	// ErrNoVariations is returned when Run is given an empty variation list.
	ErrNoVariations = errors.New("pipeline: no variations")
)
