// SPDX-License-Identifier: MIT

package betting

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Column layout of a predicate row.
const (
	colDomain    = 0
	colText      = 1
	colDue       = 4
	colEstimates = 5
)

// dateLayouts are tried in order by ParseDate.
var dateLayouts = []string{"2006-01-02", "1/2/2006", "2006/1/2", "2-Jan-2006"}

// Predicate is one resolved, scoreable statement.
type Predicate struct {
	Line      int
	Domain    string
	Text      string
	Due       time.Time
	Estimates []float64 // percent, in Book.Users order
	Resolved  bool      // true when the statement came true
}

// Book is the parsed set of predicates and the users who estimated them.
type Book struct {
	Users      []string
	Predicates []Predicate
}

// Parse reads tab-separated predicate rows.
//
// Implementation:
//   - Stage 1: validate users; the first non-blank line is the header.
//   - Stage 2: per row, carry the domain forward, then check the due date,
//     the estimates and the resolution in that order; the first failure
//     skips the row with a warning.
//
// Errors:
//   - ErrNoUsers, ErrDuplicateUser, ErrEmptyInput.
//
// Complexity: O(R*U) for R rows and U users.
func Parse(raw string, opts ...Option) (*Book, error) {
	c := newConfig(opts)
	if len(c.users) == 0 {
		return nil, ErrNoUsers
	}
	seen := make(map[string]struct{}, len(c.users))
	for _, u := range c.users {
		if _, dup := seen[u]; dup || u == "" {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateUser, u)
		}
		seen[u] = struct{}{}
	}

	book := &Book{Users: append([]string(nil), c.users...)}
	header := true
	domain := ""
	for i, ln := range strings.Split(raw, "\n") {
		ln = strings.TrimRight(ln, "\r")
		if strings.TrimSpace(ln) == "" {
			continue
		}
		if header {
			header = false
			continue
		}

		fields := strings.Split(ln, "\t")
		if d := strings.TrimSpace(fields[colDomain]); d != "" {
			domain = d
		}
		p, reason, ok := c.predicate(fields)
		if !ok {
			c.skip(&SkippedRowWarning{Line: i + 1, Reason: reason, Text: p.Text})
			continue
		}
		p.Line = i + 1
		p.Domain = domain
		book.Predicates = append(book.Predicates, p)
	}
	if header {
		return nil, ErrEmptyInput
	}

	c.log.Debug().
		Strs("users", book.Users).
		Int("predicates", len(book.Predicates)).
		Msg("predicates parsed")

	return book, nil
}

func (c *config) predicate(fields []string) (Predicate, SkipReason, bool) {
	var p Predicate
	if len(fields) > colText {
		p.Text = strings.TrimSpace(fields[colText])
	}
	n := len(c.users)
	if len(fields) < colEstimates+n {
		return p, ReasonShortRow, false
	}

	due, err := ParseDate(fields[colDue])
	if err != nil {
		return p, ReasonBadDate, false
	}
	if !c.due.IsZero() && !sameDay(due, c.due) {
		return p, ReasonNotDue, false
	}
	p.Due = due

	p.Estimates = make([]float64, n)
	for i := range n {
		est, ok := parseEstimate(fields[colEstimates+i])
		if !ok {
			return p, ReasonNoEstimate, false
		}
		p.Estimates[i] = est
	}

	res := colEstimates + n
	if len(fields) <= res {
		return p, ReasonShortRow, false
	}
	resolved, ok := parseResolution(fields[res])
	if !ok && len(fields) > res+1 {
		resolved, ok = parseResolution(fields[res+1])
	}
	if !ok {
		return p, ReasonUnresolved, false
	}
	p.Resolved = resolved

	return p, 0, true
}

func (c *config) skip(w *SkippedRowWarning) {
	c.sink.Warn(w)
	c.log.Warn().Err(w).Str("text", w.Text).Msg("predicate skipped")
}

// ParseDate reads a due date as 2006-01-02, 1/2/2006, 2006/1/2 or
// 2-Jan-2006.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrBadDate, s)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()

	return ay == by && am == bm && ad == bd
}

// parseEstimate accepts a percentage in [0, 100], with an optional "%".
func parseEstimate(s string) (float64, bool) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || v < 0 || v > 100 {
		return 0, false
	}

	return v, true
}

func parseResolution(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "t":
		return true, true
	case "f":
		return false, true
	default:
		return false, false
	}
}
