// SPDX-License-Identifier: MIT

package betting

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when the input has no header line.
	ErrEmptyInput = errors.New("betting: input has no header line")

	// ErrNoUsers is returned when the user list is empty.
	ErrNoUsers = errors.New("betting: no users")

	// ErrDuplicateUser is returned when a user name repeats or is empty.
	ErrDuplicateUser = errors.New("betting: empty or duplicate user")

	// ErrUnknownMethod is returned by ParseMethod.
	ErrUnknownMethod = errors.New("betting: unknown payout method")

	// ErrBadDate is returned by ParseDate.
	ErrBadDate = errors.New("betting: unrecognized date")

	// ErrNilBook is returned by PayoutMatrix for a nil book.
	ErrNilBook = errors.New("betting: nil book")
)

// SkipReason says why a row was not scored.
type SkipReason uint8

const (
	ReasonShortRow SkipReason = iota
	ReasonBadDate
	ReasonNotDue
	ReasonNoEstimate
	ReasonUnresolved
)

func (r SkipReason) String() string {
	switch r {
	case ReasonShortRow:
		return "too few columns"
	case ReasonBadDate:
		return "unreadable due date"
	case ReasonNotDue:
		return "not due"
	case ReasonNoEstimate:
		return "no numeric estimate"
	case ReasonUnresolved:
		return "no result yet"
	default:
		return fmt.Sprintf("reason(%d)", uint8(r))
	}
}

// SkippedRowWarning reports a row left out of the Book.
type SkippedRowWarning struct {
	Line   int // 1-based, blank lines counted
	Reason SkipReason
	Text   string // predicate text, may be empty
}

func (w *SkippedRowWarning) Error() string {
	return fmt.Sprintf("betting: line %d: %s, row skipped", w.Line, w.Reason)
}
