package stats

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/core"
)

// Timeframe is a number of trailing months.
type Timeframe int

const (
	ThreeMonths  Timeframe = 3
	SixMonths    Timeframe = 6
	TwelveMonths Timeframe = 12
)

// Timeframes lists the selectable timeframes in display order.
var Timeframes = []Timeframe{ThreeMonths, SixMonths, TwelveMonths}

func (t Timeframe) Months() int { return int(t) }

func (t Timeframe) String() string {
	return strconv.Itoa(int(t)) + " months"
}

func (t Timeframe) Valid() bool {
	switch t {
	case ThreeMonths, SixMonths, TwelveMonths:
		return true
	default:
		return false
	}
}

// ParseTimeframe accepts "3", "6" or "12".
func ParseTimeframe(s string) (Timeframe, error) {
	n, err := strconv.Atoi(s)
	if err != nil || !Timeframe(n).Valid() {
		return 0, fmt.Errorf("invalid timeframe %q: want 3, 6 or 12", s)
	}
	return Timeframe(n), nil
}

// TrendBucket holds one calendar month of the trend series.
type TrendBucket struct {
	Key     string // YYYY-MM
	Label   string // "Jan 2006"
	Start   time.Time
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// TrendSeries returns one bucket per month for the months trailing months up
// to and including the month of now, oldest first. Every bucket exists even
// when no transaction falls in it. Transactions outside the window are
// ignored.
func TrendSeries(txs []core.Transaction, months int, now time.Time) []TrendBucket {
	if months <= 0 {
		return []TrendBucket{}
	}

	first := core.StartOfMonth(now)
	buckets := make([]TrendBucket, months)
	index := make(map[string]int, months)
	for i := range buckets {
		start := first.AddDate(0, i-(months-1), 0)
		key := core.MonthKey(start)
		buckets[i] = TrendBucket{
			Key:   key,
			Label: start.Format("Jan 2006"),
			Start: start,
		}
		index[key] = i
	}

	for _, tx := range txs {
		i, ok := index[core.MonthKeyIn(tx.Date, now.Location())]
		if !ok {
			continue
		}
		switch tx.Type {
		case core.Income:
			buckets[i].Income = buckets[i].Income.Add(tx.Amount)
		case core.Expense:
			buckets[i].Expense = buckets[i].Expense.Add(tx.Amount)
		}
	}
	return buckets
}

// HasActivity reports whether any bucket carries a non-zero sum.
func HasActivity(series []TrendBucket) bool {
	for _, b := range series {
		if !b.Income.IsZero() || !b.Expense.IsZero() {
			return true
		}
	}
	return false
}
