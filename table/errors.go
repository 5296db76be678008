// SPDX-License-Identifier: MIT
// Package table: sentinel errors, the fatal MalformedTableError and the
// non-fatal warning types delivered to a Sink.

package table

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTable is returned when the input has no non-blank line.
	ErrEmptyTable = errors.New("table: input has no header line")

	// ErrMalformedTable is matched (errors.Is) by every *MalformedTableError.
	ErrMalformedTable = errors.New("table: malformed numeric token")

	// ErrSparseRow is returned by Format when a row has a missing cell before
	// its last present cell; whitespace-separated tables cannot express holes.
	ErrSparseRow = errors.New("table: row has a hole that cannot be serialized")

	// ErrEntityWhitespace is returned by Format when an entity name contains
	// whitespace and would split into several tokens.
	ErrEntityWhitespace = errors.New("table: entity name contains whitespace")

	// ErrNilMatrix is returned by Format for a nil matrix.
	ErrNilMatrix = errors.New("table: nil matrix")
)

// MalformedTableError reports a token that is not a number.
// Line is the 1-based line in the raw input (blank lines counted), Column is
// the 1-based header column the token was zipped with.
type MalformedTableError struct {
	Line   int
	Column int
	Entity string // header entity of Column
	Token  string
	Err    error // underlying conversion error, may be nil
}

func (e *MalformedTableError) Error() string {
	return fmt.Sprintf("table: line %d, column %d (%s): malformed number %q", e.Line, e.Column, e.Entity, e.Token)
}

// Is makes errors.Is(err, ErrMalformedTable) true.
func (e *MalformedTableError) Is(target error) bool { return target == ErrMalformedTable }

// Unwrap exposes the strconv error, if any.
func (e *MalformedTableError) Unwrap() error { return e.Err }

// Position tells whether an unrecognized label was a row or a column.
type Position uint8

const (
	PositionRow Position = iota
	PositionColumn
)

func (p Position) String() string {
	if p == PositionColumn {
		return "column"
	}

	return "row"
}

// UnrecognizedEntityWarning: a row or column label outside the recognized
// set. The row or column is dropped and parsing continues.
type UnrecognizedEntityWarning struct {
	Line     int
	Entity   string
	Position Position
}

func (w *UnrecognizedEntityWarning) Error() string {
	return fmt.Sprintf("table: line %d: unrecognized %s entity %q dropped", w.Line, w.Position, w.Entity)
}

// DuplicateRowWarning: a row entity seen before. Shared columns take the
// later values.
type DuplicateRowWarning struct {
	Line      int
	FirstLine int
	Entity    string
}

func (w *DuplicateRowWarning) Error() string {
	return fmt.Sprintf("table: line %d: row %q repeats line %d, later values win", w.Line, w.Entity, w.FirstLine)
}

// DuplicateColumnWarning: the header names an entity twice.
type DuplicateColumnWarning struct {
	Line   int
	Entity string
}

func (w *DuplicateColumnWarning) Error() string {
	return fmt.Sprintf("table: line %d: header repeats column %q", w.Line, w.Entity)
}

// ExtraTokensWarning: a row carries more values than the header has columns.
type ExtraTokensWarning struct {
	Line   int
	Entity string
	Count  int
}

func (w *ExtraTokensWarning) Error() string {
	return fmt.Sprintf("table: line %d: row %q has %d value(s) beyond the header, ignored", w.Line, w.Entity, w.Count)
}
