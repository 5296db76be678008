// SPDX-License-Identifier: MIT

package converters

import "errors"

var (
	// ErrNilGraph is returned when a nil *core.Graph is passed to an encoder.
	ErrNilGraph = errors.New("converters: graph is nil")

	// ErrEmptyAttrKey is returned when an attribute option names an empty key.
	ErrEmptyAttrKey = errors.New("converters: attribute key is empty")
)
