// Package table parses "who rated whom" tables into a matrix.Matrix and
// writes them back.
//
// Input format:
//
//	        Daffy   Ernie   Ivan    Jason
//	Daffy   -3      -3      -4      4
//	Ernie   3       -1      0       6
//
// The first non-blank line is the header of column entities. Every following
// line is a row entity followed by one number per header column, in header
// order. Numbers are integers or decimals with an optional sign. When any
// stored token contains a decimal point the whole matrix is floating-point.
//
// Recoverable problems (unknown labels, repeated rows, surplus values) are
// reported as warnings through an injected Sink and logged on an injected
// zerolog.Logger; they never abort the parse. A token that is not a number
// aborts it with *MalformedTableError.
//
// Format is the inverse of Parse for matrices whose rows have no holes.
package table
