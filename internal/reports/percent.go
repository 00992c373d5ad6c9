package reports

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	tenth   = decimal.New(1, -1)
)

// Percentages converts counts to one-decimal shares of their sum. Shares are rounded by
// largest remainder so they add up to exactly 100.0; a zero sum yields zero everywhere.
func Percentages(counts []int) []decimal.Decimal {
	out := make([]decimal.Decimal, len(counts))
	total := 0
	for _, c := range counts {
		total += c
	}
	if total <= 0 {
		for i := range out {
			out[i] = decimal.Zero
		}
		return out
	}

	type share struct {
		idx       int
		remainder decimal.Decimal
	}
	shares := make([]share, len(counts))
	sum := decimal.Zero
	t := decimal.NewFromInt(int64(total))
	for i, c := range counts {
		exact := decimal.NewFromInt(int64(c)).Mul(hundred).Div(t)
		floor := exact.Truncate(1)
		out[i] = floor
		sum = sum.Add(floor)
		shares[i] = share{idx: i, remainder: exact.Sub(floor)}
	}

	slices.SortStableFunc(shares, func(a, b share) int {
		if c := b.remainder.Cmp(a.remainder); c != 0 {
			return c
		}
		return cmp.Compare(a.idx, b.idx)
	})
	missing := int(hundred.Sub(sum).Div(tenth).Round(0).IntPart())
	for i := 0; i < missing && i < len(shares); i++ {
		out[shares[i].idx] = out[shares[i].idx].Add(tenth)
	}
	return out
}
