// SPDX-License-Identifier: MIT

// Package matrix: domain types of the relationship matrix.
// This file contains ONLY value types (Kind, Weight, Pair, Entry). The
// container lives in matrix.go, construction in builder.go, sentinels in
// errors.go.
package matrix

import (
	"math"
	"strconv"
	"strings"
)

// Kind is the numeric kind shared by every weight of one Matrix.
type Kind uint8

const (
	// KindInt stores signed 64-bit integers.
	KindInt Kind = iota

	// KindFloat stores finite float64 values.
	KindFloat
)

// String returns "int" or "float".
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Weight is a tagged numeric value: either an int64 or a float64.
//
// The zero Weight is Int(0).
type Weight struct {
	kind Kind
	i    int64
	f    float64
}

// Int returns an integer Weight.
func Int(v int64) Weight { return Weight{kind: KindInt, i: v} }

// Float returns a floating-point Weight.
func Float(v float64) Weight { return Weight{kind: KindFloat, f: v} }

// Kind reports whether w holds an integer or a float.
func (w Weight) Kind() Kind { return w.kind }

// Int64 returns the value truncated to int64 for float weights.
func (w Weight) Int64() int64 {
	if w.kind == KindFloat {
		return int64(w.f)
	}

	return w.i
}

// Float64 returns the value as float64 (exact for |i| <= 2^53).
func (w Weight) Float64() float64 {
	if w.kind == KindFloat {
		return w.f
	}

	return float64(w.i)
}

// Sign returns -1, 0 or +1. Negative zero reports 0.
func (w Weight) Sign() int {
	switch w.kind {
	case KindFloat:
		switch {
		case w.f < 0:
			return -1
		case w.f > 0:
			return 1
		default:
			return 0
		}
	default:
		switch {
		case w.i < 0:
			return -1
		case w.i > 0:
			return 1
		default:
			return 0
		}
	}
}

// IsZero reports whether the value equals zero (including -0.0).
func (w Weight) IsZero() bool { return w.Sign() == 0 }

// IsFinite reports false for NaN and ±Inf float weights.
func (w Weight) IsFinite() bool {
	if w.kind != KindFloat {
		return true
	}

	return !math.IsNaN(w.f) && !math.IsInf(w.f, 0)
}

// Equal compares kind and value. Float comparison is exact.
func (w Weight) Equal(o Weight) bool {
	if w.kind != o.kind {
		return false
	}
	if w.kind == KindFloat {
		return w.f == o.f
	}

	return w.i == o.i
}

// String renders the natural numeral: "-3", "0", "4", "3.5".
// Float weights use the shortest representation that round-trips.
func (w Weight) String() string {
	if w.kind == KindFloat {
		if w.f == 0 {
			return "0" // collapses -0
		}

		return strconv.FormatFloat(w.f, 'f', -1, 64)
	}

	return strconv.FormatInt(w.i, 10)
}

// Signed renders the sign-explicit numeral used for edge labels:
// "+4" for positive, "-3" for negative, "0" for zero.
func (w Weight) Signed() string {
	s := w.String()
	if w.Sign() > 0 {
		return "+" + s
	}

	return s
}

// Token renders w the way a table cell must look for the value to be read
// back with the same Kind: float weights always carry a decimal point.
func (w Weight) Token() string {
	s := w.String()
	if w.kind == KindFloat && !strings.ContainsRune(s, '.') {
		return s + ".0"
	}

	return s
}

// Pair is an ordered (source, destination) entity pair.
type Pair struct {
	From string
	To   string
}

// SelfLoop reports whether From == To.
func (p Pair) SelfLoop() bool { return p.From == p.To }

// String returns "From->To".
func (p Pair) String() string { return p.From + "->" + p.To }

// Entry is one stored relationship.
type Entry struct {
	Pair
	Weight Weight
}
