// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Builder accumulates relationships and freezes them into a Matrix.
//
// Implementation:
//   - Stage 1: NewBuilder validates and indexes the declared entities.
//   - Stage 2: Set validates each pair/weight and records first-seen order.
//   - Stage 3: Build hands the storage to a Matrix and disables the Builder.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	m     *Matrix
	built bool
}

// NewBuilder declares the matrix kind and its ordered entity list.
//
// Errors:
//   - ErrEmptyEntity if any entity is "".
//   - ErrDuplicateEntity if an entity repeats.
//
// Complexity: O(V).
func NewBuilder(kind Kind, entities ...string) (*Builder, error) {
	m := &Matrix{
		kind:     kind,
		entities: make([]string, 0, len(entities)),
		known:    make(map[string]int, len(entities)),
		weights:  make(map[Pair]Weight),
	}
	for _, e := range entities {
		if e == "" {
			return nil, ErrEmptyEntity
		}
		if _, dup := m.known[e]; dup {
			return nil, fmt.Errorf("NewBuilder: %q: %w", e, ErrDuplicateEntity)
		}
		m.known[e] = len(m.entities)
		m.entities = append(m.entities, e)
	}

	return &Builder{m: m}, nil
}

// Set stores w for (from, to). A later Set on the same pair overwrites the
// weight but keeps the pair's original iteration position.
//
// Errors:
//   - ErrBuilt after Build.
//   - ErrUnknownEntity if either endpoint was not declared.
//   - ErrKindMismatch if w.Kind() differs from the matrix kind.
//   - ErrNonFinite for NaN/±Inf.
//
// Complexity: O(1) amortized.
func (b *Builder) Set(from, to string, w Weight) error {
	if b.built {
		return ErrBuilt
	}
	if _, ok := b.m.known[from]; !ok {
		return fmt.Errorf("Set(%s->%s): source %q: %w", from, to, from, ErrUnknownEntity)
	}
	if _, ok := b.m.known[to]; !ok {
		return fmt.Errorf("Set(%s->%s): destination %q: %w", from, to, to, ErrUnknownEntity)
	}
	if w.Kind() != b.m.kind {
		return fmt.Errorf("Set(%s->%s): %s weight in %s matrix: %w", from, to, w.Kind(), b.m.kind, ErrKindMismatch)
	}
	if !w.IsFinite() {
		return fmt.Errorf("Set(%s->%s): %w", from, to, ErrNonFinite)
	}

	p := Pair{From: from, To: to}
	if _, seen := b.m.weights[p]; !seen {
		b.m.order = append(b.m.order, p)
	}
	b.m.weights[p] = w

	return nil
}

// Build freezes the accumulated state. The Builder is unusable afterwards.
func (b *Builder) Build() *Matrix {
	b.built = true

	return b.m
}
