// SPDX-License-Identifier: MIT
// Package render: sentinel errors and the typed layout failure.

package render

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMatrix is returned when Render receives a nil matrix.
	ErrNilMatrix = errors.New("render: nil matrix")

	// ErrMissingLayoutPosition is matched (errors.Is) by every
	// *MissingLayoutPositionError.
	ErrMissingLayoutPosition = errors.New("render: entity has no fixed layout position")

	// ErrInvalidStyle indicates a StylePolicy that cannot be applied.
	ErrInvalidStyle = errors.New("render: invalid edge style policy")

	// ErrInvalidLayout indicates a LayoutPolicy that cannot be applied.
	ErrInvalidLayout = errors.New("render: invalid layout policy")
)

// MissingLayoutPositionError: the fixed-coordinate policy was asked to place
// an entity absent from its position table.
type MissingLayoutPositionError struct {
	Entity string
}

func (e *MissingLayoutPositionError) Error() string {
	return fmt.Sprintf("render: no fixed position for entity %q", e.Entity)
}

// Is makes errors.Is(err, ErrMissingLayoutPosition) true.
func (e *MissingLayoutPositionError) Is(target error) bool { return target == ErrMissingLayoutPosition }
