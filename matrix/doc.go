// Package matrix holds the relationship matrix: a sparse mapping from ordered
// (source, destination) entity pairs to signed numeric weights.
//
// The matrix package provides:
//
//   - Weight, a tagged int64/float64 value with sign-explicit formatting
//     (Signed) and table-safe formatting (Token).
//   - Builder, which validates entities, pair endpoints and the numeric Kind
//     before freezing everything into an immutable Matrix.
//   - Matrix, read-only after Build, iterating pairs in the insertion order
//     of their first Set so that serialization is deterministic.
//
// Quick example:
//
//	b, _ := matrix.NewBuilder(matrix.KindInt, "A", "B")
//	_ = b.Set("A", "B", matrix.Int(-1))
//	m := b.Build()
//	w, _ := m.Get("A", "B") // w.Signed() == "-1"
//
// Self pairs (From == To) are ordinary entries.
package matrix
