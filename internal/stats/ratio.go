package stats

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Ratio is value/total, or zero when total is zero.
func Ratio(value, total decimal.Decimal) float64 {
	if total.IsZero() {
		return 0
	}
	return value.Div(total).InexactFloat64()
}

// Percent is value/total*100, or zero when total is zero.
func Percent(value, total decimal.Decimal) float64 {
	if total.IsZero() {
		return 0
	}
	return value.Mul(hundred).Div(total).InexactFloat64()
}

// Share is the percentage of total that amount represents.
func Share(amount, total decimal.Decimal) float64 {
	return Percent(amount, total)
}

// SavingsRate is the share of income left after expense, in percent.
// It is zero whenever income is not positive.
func SavingsRate(income, expense decimal.Decimal) float64 {
	if !income.IsPositive() {
		return 0
	}
	return Percent(income.Sub(expense), income)
}
