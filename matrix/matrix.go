// SPDX-License-Identifier: MIT

package matrix

// Matrix is an immutable, sparse mapping from ordered entity pairs to
// weights.
//
// Invariants (established by Builder.Build):
//   - entities are unique, non-empty and kept in declaration order;
//   - every stored pair has both endpoints in entities;
//   - every weight has the matrix Kind;
//   - pairs iterate in insertion order of their first Set; overwriting an
//     existing pair keeps its original position.
//
// A Matrix is safe for concurrent readers because nothing mutates it after
// Build.
type Matrix struct {
	kind     Kind
	entities []string
	known    map[string]int // entity -> index in entities
	order    []Pair         // insertion order of first-seen pairs
	weights  map[Pair]Weight
}

// Kind returns the numeric kind of all weights.
func (m *Matrix) Kind() Kind { return m.kind }

// Entities returns a copy of the declared entities in declaration order.
// Complexity: O(V).
func (m *Matrix) Entities() []string {
	out := make([]string, len(m.entities))
	copy(out, m.entities)

	return out
}

// HasEntity reports whether name was declared.
func (m *Matrix) HasEntity(name string) bool {
	_, ok := m.known[name]

	return ok
}

// Len returns the number of stored pairs.
func (m *Matrix) Len() int { return len(m.order) }

// Get returns the weight stored for (from, to).
// Complexity: O(1).
func (m *Matrix) Get(from, to string) (Weight, bool) {
	w, ok := m.weights[Pair{From: from, To: to}]

	return w, ok
}

// Has reports whether a weight is stored for (from, to).
func (m *Matrix) Has(from, to string) bool {
	_, ok := m.weights[Pair{From: from, To: to}]

	return ok
}

// Pairs returns the stored pairs in insertion order.
// Complexity: O(E).
func (m *Matrix) Pairs() []Pair {
	out := make([]Pair, len(m.order))
	copy(out, m.order)

	return out
}

// Entries returns the stored relationships in insertion order.
// Complexity: O(E).
func (m *Matrix) Entries() []Entry {
	out := make([]Entry, 0, len(m.order))
	for _, p := range m.order {
		out = append(out, Entry{Pair: p, Weight: m.weights[p]})
	}

	return out
}

// Row returns the entries whose source is from, ordered by destination in
// entity order. Complexity: O(V).
func (m *Matrix) Row(from string) []Entry {
	var out []Entry
	for _, to := range m.entities {
		p := Pair{From: from, To: to}
		if w, ok := m.weights[p]; ok {
			out = append(out, Entry{Pair: p, Weight: w})
		}
	}

	return out
}

// Equal reports whether m and o have the same kind, the same entities in the
// same order, and the same pair->weight mapping. Pair insertion order is not
// compared; use Pairs for that.
// Complexity: O(V+E).
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.kind != o.kind || len(m.entities) != len(o.entities) || len(m.weights) != len(o.weights) {
		return false
	}
	for i := range m.entities {
		if m.entities[i] != o.entities[i] {
			return false
		}
	}
	for p, w := range m.weights {
		ow, ok := o.weights[p]
		if !ok || !w.Equal(ow) {
			return false
		}
	}

	return true
}
