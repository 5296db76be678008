// SPDX-License-Identifier: MIT

package table

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/relgraph/matrix"
)

// numberPattern is the accepted cell grammar: optional sign, digits, optional
// fraction. No exponents, no thousands separators.
var numberPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)

// line is one non-blank input line split into whitespace-separated fields.
type line struct {
	no     int // 1-based position in the raw input
	fields []string
}

// cell is a token accepted for storage before numeric conversion.
type cell struct {
	line   int
	column int // 1-based header column
	row    string
	col    string
	token  string
}

// Parse converts a whitespace-separated table into a relationship matrix.
//
// Implementation:
//   - Stage 1: split into trimmed, non-blank lines; the first is the header.
//   - Stage 2: resolve header columns against the recognized set.
//   - Stage 3: walk data rows, drop unrecognized rows, zip tokens with
//     columns and collect cells; any '.' in a collected token makes the
//     whole matrix KindFloat.
//   - Stage 4: convert every cell with the chosen kind and store it.
//
// Behavior highlights:
//   - Unrecognized rows/columns, duplicate rows/columns and extra tokens are
//     warnings delivered to the Sink, never errors.
//   - A short row simply stores fewer pairs.
//   - A repeated row overwrites the earlier row's shared columns.
//
// Errors:
//   - ErrEmptyTable when there is no header.
//   - *MalformedTableError (errors.Is ErrMalformedTable) on the first token
//     that is not a number; no partial matrix is returned.
//
// Complexity: O(T) for T input tokens.
func Parse(raw string, opts ...Option) (*matrix.Matrix, error) {
	c := newConfig(opts)

	lines := splitLines(raw)
	if len(lines) == 0 {
		return nil, ErrEmptyTable
	}

	columns, entities := c.resolveHeader(lines[0])
	c.log.Debug().Int("line", lines[0].no).Strs("columns", entities).Msg("header parsed")

	known := make(map[string]struct{}, len(entities))
	for _, e := range entities {
		known[e] = struct{}{}
	}

	var (
		cells    []cell
		float    bool
		firstRow = make(map[string]int)
	)
	for _, ln := range lines[1:] {
		row := ln.fields[0]
		if _, ok := known[row]; !ok {
			c.warn(&UnrecognizedEntityWarning{Line: ln.no, Entity: row, Position: PositionRow})
			continue
		}
		if first, dup := firstRow[row]; dup {
			c.warn(&DuplicateRowWarning{Line: ln.no, FirstLine: first, Entity: row})
		} else {
			firstRow[row] = ln.no
		}

		values := ln.fields[1:]
		if extra := len(values) - len(columns); extra > 0 {
			c.warn(&ExtraTokensWarning{Line: ln.no, Entity: row, Count: extra})
			values = values[:len(columns)]
		}
		for i, tok := range values {
			if columns[i] == "" {
				continue // dropped column
			}
			cells = append(cells, cell{line: ln.no, column: i + 1, row: row, col: columns[i], token: tok})
			if strings.ContainsRune(tok, '.') {
				float = true
			}
		}
		c.log.Debug().Int("line", ln.no).Str("row", row).Int("values", len(values)).Msg("row parsed")
	}

	kind := matrix.KindInt
	if float {
		kind = matrix.KindFloat
	}
	b, err := matrix.NewBuilder(kind, entities...)
	if err != nil {
		return nil, fmt.Errorf("table: %w", err)
	}
	for _, cl := range cells {
		w, err := convert(cl.token, kind)
		if err != nil {
			return nil, &MalformedTableError{Line: cl.line, Column: cl.column, Entity: cl.col, Token: cl.token, Err: err}
		}
		if err = b.Set(cl.row, cl.col, w); err != nil {
			return nil, fmt.Errorf("table: line %d: %w", cl.line, err)
		}
	}

	m := b.Build()
	c.log.Debug().Str("kind", kind.String()).Int("entities", len(entities)).Int("pairs", m.Len()).Msg("table parsed")

	return m, nil
}

// resolveHeader maps every header position to its entity ("" if dropped) and
// returns the unique kept entities in header order.
func (c *config) resolveHeader(h line) (columns, entities []string) {
	var recognized map[string]struct{}
	if len(c.recognized) > 0 {
		recognized = make(map[string]struct{}, len(c.recognized))
		for _, r := range c.recognized {
			recognized[r] = struct{}{}
		}
	}

	columns = make([]string, len(h.fields))
	seen := make(map[string]struct{}, len(h.fields))
	for i, tok := range h.fields {
		if recognized != nil {
			if _, ok := recognized[tok]; !ok {
				c.warn(&UnrecognizedEntityWarning{Line: h.no, Entity: tok, Position: PositionColumn})
				continue
			}
		}
		columns[i] = tok
		if _, dup := seen[tok]; dup {
			c.warn(&DuplicateColumnWarning{Line: h.no, Entity: tok})
			continue
		}
		seen[tok] = struct{}{}
		entities = append(entities, tok)
	}

	return columns, entities
}

func (c *config) warn(w error) {
	c.sink.Warn(w)
	c.log.Warn().Err(w).Msg("table warning")
}

// splitLines keeps non-blank lines with their original 1-based numbers.
func splitLines(raw string) []line {
	var out []line
	for i, s := range strings.Split(raw, "\n") {
		fields := strings.Fields(s)
		if len(fields) == 0 {
			continue
		}
		out = append(out, line{no: i + 1, fields: fields})
	}

	return out
}

func convert(tok string, kind matrix.Kind) (matrix.Weight, error) {
	if !numberPattern.MatchString(tok) {
		return matrix.Weight{}, strconv.ErrSyntax
	}
	if kind == matrix.KindFloat {
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return matrix.Weight{}, err
		}

		return matrix.Float(f), nil
	}
	i, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return matrix.Weight{}, err
	}

	return matrix.Int(i), nil
}
