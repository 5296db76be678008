// Package betting scores probability predictions made by a group and turns
// the pairwise settlements between them into a relationship matrix.
//
// Input is tab-separated, one predicate per line after a header line:
//
//	domain  text  ...  due  est1 .. estN  result
//
// Column 0 is the domain (blank repeats the previous one), column 1 the
// statement, column 4 the due date, then one estimate in percent per user and
// the resolution "t" or "f". When the resolution column holds anything else
// the column after it is tried. Rows that cannot be scored are skipped with a
// *SkippedRowWarning delivered to a table.Sink.
//
// For every resolved predicate each pair of users whose estimates differ
// settles once: the user closer to the outcome wins and the other pays. How
// much is paid depends on the Method. PayoutMatrix folds all settlements of
// a Book into a KindFloat matrix.Matrix: the diagonal carries each user's net
// balance, an off-diagonal (loser, winner) entry the total paid along it.
//
// Quick example:
//
//	book, _ := betting.Parse(raw, betting.WithUsers("ivan", "jason"))
//	for _, s := range book.Brier() {
//		fmt.Println(s.User, s.Score)
//	}
//	m, _ := betting.PayoutMatrix(book, betting.Diff)
package betting
