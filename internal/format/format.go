// Package format renders amounts, percentages and dates for display.
package format

import (
	"strconv"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"fintrack/internal/core"
)

const (
	dateLayout        = "Jan 2, 2006"
	compactDateLayout = "Jan 2"
	monthLabelLayout  = "Jan 2006"
)

var (
	hundred = decimal.NewFromInt(100)
	half    = decimal.NewFromFloat(0.5)
)

// Currency formats amount as US dollars with two decimals, e.g. $1,234.56
// or -$20.00. Sub-cent amounts are rounded half away from zero.
func Currency(amount decimal.Decimal) string {
	cents := amount.Mul(hundred).Round(0).IntPart()
	return money.New(cents, money.USD).Display()
}

// Percentage renders value as a whole percentage of total. Halves round
// up. A zero total renders "0%".
func Percentage(value, total decimal.Decimal) string {
	if total.IsZero() {
		return "0%"
	}
	pct := value.Mul(hundred).Div(total).Add(half).Floor()
	return pct.String() + "%"
}

// Date renders t as "Oct 3, 2026".
func Date(t time.Time) string {
	return t.Format(dateLayout)
}

// CompactDate renders t as "Oct 3".
func CompactDate(t time.Time) string {
	return t.Format(compactDateLayout)
}

// MonthKey is the YYYY-MM bucket of t.
func MonthKey(t time.Time) string {
	return core.MonthKey(t)
}

// MonthLabel renders t as "Oct 2026".
func MonthLabel(t time.Time) string {
	return t.Format(monthLabelLayout)
}

type Month struct {
	Month string // full English name
	Year  int
}

func (m Month) String() string {
	return m.Month + " " + strconv.Itoa(m.Year)
}

func CurrentMonth(now time.Time) Month {
	return Month{Month: now.Month().String(), Year: now.Year()}
}

// Title upper-cases the first letter of each word, for enum labels such as
// "income" or "high". Casers keep state, so each call gets its own.
func Title(s string) string {
	return cases.Title(language.English).String(s)
}
