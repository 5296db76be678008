// SPDX-License-Identifier: MIT

package raster

import "errors"

var (
	// ErrEmptyDOT is returned when Draw is called without input.
	ErrEmptyDOT = errors.New("raster: empty DOT input")

	// ErrUnsupportedFormat is returned for an output format outside Formats.
	ErrUnsupportedFormat = errors.New("raster: unsupported output format")

	// ErrBinaryNotFound is returned when the Graphviz binary is not on PATH.
	ErrBinaryNotFound = errors.New("raster: graphviz binary not found")

	// ErrDraw wraps a non-zero exit of the Graphviz binary.
	ErrDraw = errors.New("raster: graphviz failed")

	// ErrNilImage is returned when Compose is given a nil image.
	ErrNilImage = errors.New("raster: image is nil")
)
