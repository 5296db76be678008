// SPDX-License-Identifier: MIT

package betting

import (
	"fmt"
	"math"

	"github.com/katalvlaran/relgraph/matrix"
)

// PayoutMatrix folds the payouts of b under m into a KindFloat matrix over
// b.Users. Per user, in user order, it stores the net balance on the
// diagonal, then one (user, winner) entry per winner the user paid, holding
// the total. Values are rounded to cents.
//
// Errors:
//   - ErrNilBook.
//   - matrix.NewBuilder errors for invalid user names.
func PayoutMatrix(b *Book, m Method) (*matrix.Matrix, error) {
	if b == nil {
		return nil, ErrNilBook
	}
	payouts := b.Payouts(m)
	net := SumPayouts(payouts)
	paid := make(map[matrix.Pair]float64)
	for _, p := range payouts {
		paid[matrix.Pair{From: p.From, To: p.To}] += p.Amount
	}

	bld, err := matrix.NewBuilder(matrix.KindFloat, b.Users...)
	if err != nil {
		return nil, fmt.Errorf("betting: %w", err)
	}
	for _, from := range b.Users {
		if err = bld.Set(from, from, matrix.Float(cents(net[from]))); err != nil {
			return nil, fmt.Errorf("betting: %w", err)
		}
		for _, to := range b.Users {
			total, ok := paid[matrix.Pair{From: from, To: to}]
			if !ok || from == to {
				continue
			}
			if err = bld.Set(from, to, matrix.Float(cents(total))); err != nil {
				return nil, fmt.Errorf("betting: %w", err)
			}
		}
	}

	return bld.Build(), nil
}

func cents(v float64) float64 {
	r := math.Round(v*100) / 100
	if r == 0 {
		return 0 // no "-0" labels
	}

	return r
}
