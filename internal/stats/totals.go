// Package stats derives the figures shown by dashboards, reports and charts
// from store snapshots. Every function is pure and total: undefined ratios
// come back as zero, never NaN or Inf.
package stats

import (
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/core"
)

// Totals sums a set of transactions by type.
type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
	Count   int
}

func (t *Totals) add(tx core.Transaction) {
	switch tx.Type {
	case core.Income:
		t.Income = t.Income.Add(tx.Amount)
	case core.Expense:
		t.Expense = t.Expense.Add(tx.Amount)
	default:
		return
	}
	t.Count++
	t.Balance = t.Income.Sub(t.Expense)
}

// Summarize totals every transaction in txs.
func Summarize(txs []core.Transaction) Totals {
	var t Totals
	for _, tx := range txs {
		t.add(tx)
	}
	return t
}

// PeriodTotals totals the transactions dated in the month identified by
// monthKey (YYYY-MM), with dates read in loc.
func PeriodTotals(txs []core.Transaction, monthKey string, loc *time.Location) Totals {
	return Summarize(InMonth(txs, monthKey, loc))
}

// InMonth keeps the transactions whose date falls in monthKey when read in
// loc. A nil loc uses each transaction's own location.
func InMonth(txs []core.Transaction, monthKey string, loc *time.Location) []core.Transaction {
	out := make([]core.Transaction, 0, len(txs))
	for _, tx := range txs {
		if core.MonthKeyIn(tx.Date, loc) == monthKey {
			out = append(out, tx)
		}
	}
	return out
}

// Since keeps the transactions dated at or after cutoff.
func Since(txs []core.Transaction, cutoff time.Time) []core.Transaction {
	out := make([]core.Transaction, 0, len(txs))
	for _, tx := range txs {
		if !tx.Date.Before(cutoff) {
			out = append(out, tx)
		}
	}
	return out
}

// Cutoff is now moved back by months calendar months.
func Cutoff(now time.Time, months int) time.Time {
	return now.AddDate(0, -months, 0)
}

// MonthlyAverage spreads total over months. Zero or negative months yield zero.
func MonthlyAverage(total decimal.Decimal, months int) decimal.Decimal {
	if months <= 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(months)))
}

// Recent returns at most n transactions from the front of txs. Store
// snapshots are newest first, so this is the latest activity.
func Recent(txs []core.Transaction, n int) []core.Transaction {
	if n < 0 {
		n = 0
	}
	if n > len(txs) {
		n = len(txs)
	}
	return append([]core.Transaction(nil), txs[:n]...)
}
