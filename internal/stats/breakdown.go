package stats

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"fintrack/internal/core"
)

type CategoryAmount struct {
	Category string
	Amount   decimal.Decimal
}

// CategoryBreakdown sums expenses per category, largest first. Income is
// ignored. Equal sums are ordered by category name. A positive topN keeps
// only that many entries.
func CategoryBreakdown(txs []core.Transaction, topN int) []CategoryAmount {
	sums := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		if tx.Type != core.Expense {
			continue
		}
		sums[tx.Category] = sums[tx.Category].Add(tx.Amount)
	}

	out := make([]CategoryAmount, 0, len(sums))
	for cat, amount := range sums {
		out = append(out, CategoryAmount{Category: cat, Amount: amount})
	}
	slices.SortFunc(out, func(a, b CategoryAmount) int {
		if c := b.Amount.Cmp(a.Amount); c != 0 {
			return c
		}
		return strings.Compare(a.Category, b.Category)
	})

	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}
	return out
}
