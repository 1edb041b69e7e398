package stats

import (
	"github.com/shopspring/decimal"

	"fintrack/internal/core"
)

// Alert classifies how close a budget is to its limit.
type Alert string

const (
	AlertNone     Alert = ""
	AlertWarning  Alert = "warning"
	AlertCritical Alert = "critical"
)

const (
	warningPercent  = 80
	criticalPercent = 100
)

// AlertFor classifies a spend percentage.
func AlertFor(percentage float64) Alert {
	switch {
	case percentage >= criticalPercent:
		return AlertCritical
	case percentage >= warningPercent:
		return AlertWarning
	default:
		return AlertNone
	}
}

type BudgetStatus struct {
	Percentage float64
	// Remaining goes negative once the budget is overspent.
	Remaining decimal.Decimal
	Alert     Alert
}

func (s BudgetStatus) Overspent() bool { return s.Remaining.IsNegative() }

// BudgetStatusOf reports spend against the monthly limit. The percentage is
// not clamped.
func BudgetStatusOf(b core.Budget) BudgetStatus {
	pct := Percent(b.CurrentSpent, b.MonthlyLimit)
	return BudgetStatus{
		Percentage: pct,
		Remaining:  b.MonthlyLimit.Sub(b.CurrentSpent),
		Alert:      AlertFor(pct),
	}
}

type BudgetSummary struct {
	Limit     decimal.Decimal
	Spent     decimal.Decimal
	Remaining decimal.Decimal
	// RemainingPercent is Remaining as a share of Limit.
	RemainingPercent float64
}

func BudgetTotals(budgets []core.Budget) BudgetSummary {
	var s BudgetSummary
	for _, b := range budgets {
		s.Limit = s.Limit.Add(b.MonthlyLimit)
		s.Spent = s.Spent.Add(b.CurrentSpent)
	}
	s.Remaining = s.Limit.Sub(s.Spent)
	s.RemainingPercent = Percent(s.Remaining, s.Limit)
	return s
}

// AvailableCategories returns the categories that have no budget for
// monthKey yet, in their original order.
func AvailableCategories(categories []core.Category, budgets []core.Budget, monthKey string) []core.Category {
	taken := make(map[string]bool, len(budgets))
	for _, b := range budgets {
		if b.Month == monthKey {
			taken[b.Category] = true
		}
	}
	out := make([]core.Category, 0, len(categories))
	for _, c := range categories {
		if !taken[c.Name] {
			out = append(out, c)
		}
	}
	return out
}
