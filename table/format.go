// SPDX-License-Identifier: MIT

package table

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"unicode"

	"github.com/katalvlaran/relgraph/matrix"
)

// Format serializes m back into table text that Parse reads into an equal
// matrix.
//
// Implementation:
//   - Header: entities in matrix order.
//   - Rows: one per source entity, in the order sources first appear in
//     m.Pairs(); cells follow m.Row in header order up to the last
//     present cell.
//   - Float matrices print every cell with a decimal point so the kind
//     survives the round trip.
//
// Errors:
//   - ErrNilMatrix for nil.
//   - ErrEntityWhitespace if a name contains any Unicode space, since
//     Parse would split it into several tokens.
//   - ErrSparseRow if a row misses a cell before its last present one.
//
// Notes:
//   - A float matrix without any pair reads back as KindInt; there is no
//     token to carry the kind.
//
// Complexity: O(V·R) for R emitted rows.
func Format(m *matrix.Matrix) (string, error) {
	if m == nil {
		return "", ErrNilMatrix
	}
	entities := m.Entities()
	index := make(map[string]int, len(entities))
	for i, e := range entities {
		index[e] = i
		if strings.ContainsFunc(e, unicode.IsSpace) {
			return "", fmt.Errorf("Format: %q: %w", e, ErrEntityWhitespace)
		}
	}

	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	// Leading cell keeps the header aligned over the value columns.
	fmt.Fprintf(tw, "\t%s\n", strings.Join(entities, "\t"))

	seen := make(map[string]struct{}, len(entities))
	for _, p := range m.Pairs() {
		if _, done := seen[p.From]; done {
			continue
		}
		seen[p.From] = struct{}{}

		row := m.Row(p.From)
		last := index[row[len(row)-1].To]
		cells := make([]string, 0, last+2)
		cells = append(cells, p.From)
		for _, to := range entities[:last+1] {
			if len(row) == 0 || row[0].To != to {
				return "", fmt.Errorf("Format: row %q misses %q: %w", p.From, to, ErrSparseRow)
			}
			cells = append(cells, row[0].Weight.Token())
			row = row[1:]
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return "", err
	}

	return sb.String(), nil
}
