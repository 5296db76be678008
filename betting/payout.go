// SPDX-License-Identifier: MIT

package betting

import (
	"fmt"
	"math"
	"strings"
)

// Method decides how much the loser of a settlement pays the winner.
type Method uint8

const (
	// Straight pays 1 per settlement.
	Straight Method = iota
	// Diff pays the gap between the two estimates, as a fraction.
	Diff
	// FullContract pays the distance from the outcome to the midpoint of
	// the two estimates; equal estimates pay nothing.
	FullContract
	// Multiplicative pays how much closer the winner was, relative to the
	// loser's miss: 1 for an exact winner, near 0 for two similar misses.
	Multiplicative
)

// Methods lists every Method in declaration order.
func Methods() []Method {
	return []Method{Straight, Diff, FullContract, Multiplicative}
}

// String returns the name ParseMethod accepts.
func (m Method) String() string {
	switch m {
	case Straight:
		return "straight"
	case Diff:
		return "diff"
	case FullContract:
		return "full-contract"
	case Multiplicative:
		return "multiplicative"
	default:
		return fmt.Sprintf("method(%d)", uint8(m))
	}
}

// ParseMethod resolves a method name, case-insensitively.
func ParseMethod(s string) (Method, error) {
	for _, m := range Methods() {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// amount is the payout for one settlement; estimates are percentages.
func (m Method) amount(resolved bool, winner, loser float64) float64 {
	outcome := 0.0
	if resolved {
		outcome = 1
	}
	switch m {
	case Diff:
		return math.Abs(winner-loser) / 100
	case FullContract:
		if winner == loser {
			return 0
		}
		return math.Abs(outcome - (winner+loser)/200)
	case Multiplicative:
		winnerGap := math.Abs(winner/100 - outcome)
		loserGap := math.Abs(loser/100 - outcome)
		if winnerGap == 0 {
			return 1
		}
		return (loserGap - winnerGap) / loserGap
	default:
		return 1
	}
}

// Payout is one settlement: From pays Amount to To.
type Payout struct {
	Predicate int // index into Book.Predicates
	From      string
	To        string
	Amount    float64
	Method    Method
}

func (p Payout) String() string {
	return fmt.Sprintf("%s pays %g to %s", p.From, p.Amount, p.To)
}

// Settle returns the payouts of predicate i under m. Users are paired in
// Book.Users order (i < j); pairs with equal estimates do not settle.
func (b *Book) Settle(i int, m Method) []Payout {
	p := b.Predicates[i]
	var out []Payout
	for a := 0; a < len(b.Users); a++ {
		for c := a + 1; c < len(b.Users); c++ {
			ea, ec := p.Estimates[a], p.Estimates[c]
			if ea == ec {
				continue
			}
			// The winner leaned toward the outcome.
			winner, loser := a, c
			if (ea > ec) != p.Resolved {
				winner, loser = c, a
			}
			out = append(out, Payout{
				Predicate: i,
				From:      b.Users[loser],
				To:        b.Users[winner],
				Amount:    m.amount(p.Resolved, p.Estimates[winner], p.Estimates[loser]),
				Method:    m,
			})
		}
	}

	return out
}

// Payouts settles every predicate of the book under m, in predicate order.
func (b *Book) Payouts(m Method) []Payout {
	var out []Payout
	for i := range b.Predicates {
		out = append(out, b.Settle(i, m)...)
	}

	return out
}

// SumPayouts nets payouts per user: received minus paid. Every user named
// by a payout has an entry; the values sum to zero up to rounding.
func SumPayouts(payouts []Payout) map[string]float64 {
	out := make(map[string]float64)
	for _, p := range payouts {
		out[p.To] += p.Amount
		out[p.From] -= p.Amount
	}

	return out
}

// Score is one user's Brier score over a book.
type Score struct {
	User  string
	Score float64 // sum of squared misses; lower is better
	Count int     // predicates scored
}

// Brier scores every user, in Book.Users order.
func (b *Book) Brier() []Score {
	out := make([]Score, len(b.Users))
	for u, name := range b.Users {
		s := Score{User: name, Count: len(b.Predicates)}
		for _, p := range b.Predicates {
			outcome := 0.0
			if p.Resolved {
				outcome = 1
			}
			miss := p.Estimates[u]/100 - outcome
			s.Score += miss * miss
		}
		out[u] = s
	}

	return out
}
