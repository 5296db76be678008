// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors and builders return these sentinels (optionally wrapped
// with context via %w); callers match them with errors.Is.

package matrix

import "errors"

var (
	// ErrEmptyEntity is returned when an entity name is the empty string.
	ErrEmptyEntity = errors.New("matrix: entity name is empty")

	// ErrDuplicateEntity is returned by NewBuilder when the declared entity
	// list names the same entity twice.
	ErrDuplicateEntity = errors.New("matrix: duplicate entity")

	// ErrUnknownEntity indicates a pair endpoint that was not declared.
	ErrUnknownEntity = errors.New("matrix: unknown entity")

	// ErrKindMismatch indicates an int weight stored into a float matrix or
	// vice versa.
	ErrKindMismatch = errors.New("matrix: weight kind mismatch")

	// ErrNonFinite indicates a NaN or ±Inf float weight.
	ErrNonFinite = errors.New("matrix: NaN or Inf weight")

	// ErrBuilt is returned when a Builder is used after Build.
	ErrBuilt = errors.New("matrix: builder already built")
)
