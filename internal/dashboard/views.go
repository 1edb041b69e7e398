package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/core"
	"fintrack/internal/format"
	"fintrack/internal/stats"
)

type BudgetLine struct {
	Budget core.Budget
	Status stats.BudgetStatus
}

type GoalLine struct {
	Goal     core.Goal
	Progress stats.GoalProgress
}

// Overview is the landing page: the current month at a glance.
type Overview struct {
	Month    format.Month
	MonthKey string

	Totals stats.Totals
	Budget stats.BudgetSummary
	Goals  stats.GoalSummary

	Recent       []core.Transaction
	ActiveGoals  []GoalLine
	BudgetAlerts []BudgetLine
	Spending     []stats.CategoryAmount
	Trend        []stats.TrendBucket
}

type CategoryShare struct {
	stats.CategoryAmount
	Share float64
}

// Report covers a trailing timeframe.
type Report struct {
	Timeframe stats.Timeframe
	Since     time.Time

	Totals      stats.Totals
	SavingsRate float64

	MonthlyIncome  decimal.Decimal
	MonthlyExpense decimal.Decimal
	MonthlyNet     decimal.Decimal
	PerMonth       decimal.Decimal // transactions per month

	TopCategories []CategoryShare
	Trend         []stats.TrendBucket
}

type Budgets struct {
	Month     format.Month
	MonthKey  string
	Lines     []BudgetLine
	Summary   stats.BudgetSummary
	Available []core.Category
}

type Goals struct {
	Active    []GoalLine
	Completed []GoalLine
	Summary   stats.GoalSummary
}

type Transactions struct {
	Filter stats.TransactionFilter
	Items  []core.Transaction
	Totals stats.Totals
}

func goalLines(goals []core.Goal) []GoalLine {
	out := make([]GoalLine, 0, len(goals))
	for _, g := range goals {
		out = append(out, GoalLine{Goal: g, Progress: stats.GoalProgressOf(g)})
	}
	return out
}

func budgetsFor(budgets []core.Budget, monthKey string) []core.Budget {
	out := make([]core.Budget, 0, len(budgets))
	for _, b := range budgets {
		if b.Month == monthKey {
			out = append(out, b)
		}
	}
	return out
}

// Overview summarizes the month containing now.
func (l *Loader) Overview(ctx context.Context) (*Overview, error) {
	s, err := l.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	now := l.now()
	key := core.MonthKey(now)
	monthTxs := stats.InMonth(s.Transactions, key, now.Location())

	monthBudgets := budgetsFor(s.Budgets, key)
	var alerts []BudgetLine
	for _, b := range monthBudgets {
		st := stats.BudgetStatusOf(b)
		if st.Alert != stats.AlertNone {
			alerts = append(alerts, BudgetLine{Budget: b, Status: st})
		}
	}

	active, _ := stats.SplitGoals(s.Goals)
	if len(active) > l.opts.ActiveGoals {
		active = active[:l.opts.ActiveGoals]
	}

	return &Overview{
		Month:        format.CurrentMonth(now),
		MonthKey:     key,
		Totals:       stats.Summarize(monthTxs),
		Budget:       stats.BudgetTotals(monthBudgets),
		Goals:        stats.GoalTotals(s.Goals),
		Recent:       stats.Recent(s.Transactions, l.opts.RecentCount),
		ActiveGoals:  goalLines(active),
		BudgetAlerts: alerts,
		Spending:     stats.CategoryBreakdown(monthTxs, l.opts.TopCategories),
		Trend:        stats.TrendSeries(s.Transactions, l.opts.TrendMonths, now),
	}, nil
}

// Report aggregates the transactions of the trailing timeframe.
func (l *Loader) Report(ctx context.Context, tf stats.Timeframe) (*Report, error) {
	s, err := l.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	now := l.now()
	months := tf.Months()
	since := stats.Cutoff(now, months)
	txs := stats.Since(s.Transactions, since)
	totals := stats.Summarize(txs)

	breakdown := stats.CategoryBreakdown(txs, l.opts.TopCategories)
	top := make([]CategoryShare, 0, len(breakdown))
	for _, c := range breakdown {
		top = append(top, CategoryShare{CategoryAmount: c, Share: stats.Share(c.Amount, totals.Expense)})
	}

	return &Report{
		Timeframe:      tf,
		Since:          since,
		Totals:         totals,
		SavingsRate:    stats.SavingsRate(totals.Income, totals.Expense),
		MonthlyIncome:  stats.MonthlyAverage(totals.Income, months),
		MonthlyExpense: stats.MonthlyAverage(totals.Expense, months),
		MonthlyNet:     stats.MonthlyAverage(totals.Balance, months),
		PerMonth:       stats.MonthlyAverage(decimal.NewFromInt(int64(totals.Count)), months),
		TopCategories:  top,
		Trend:          stats.TrendSeries(s.Transactions, months, now),
	}, nil
}

// Budgets lists the budgets of the current month with their status and the
// categories that could still get one.
func (l *Loader) Budgets(ctx context.Context) (*Budgets, error) {
	s, err := l.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	now := l.now()
	key := core.MonthKey(now)
	monthBudgets := budgetsFor(s.Budgets, key)

	lines := make([]BudgetLine, 0, len(monthBudgets))
	for _, b := range monthBudgets {
		lines = append(lines, BudgetLine{Budget: b, Status: stats.BudgetStatusOf(b)})
	}
	return &Budgets{
		Month:     format.CurrentMonth(now),
		MonthKey:  key,
		Lines:     lines,
		Summary:   stats.BudgetTotals(monthBudgets),
		Available: stats.AvailableCategories(s.Categories, s.Budgets, key),
	}, nil
}

func (l *Loader) Goals(ctx context.Context) (*Goals, error) {
	s, err := l.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	active, completed := stats.SplitGoals(s.Goals)
	return &Goals{
		Active:    goalLines(active),
		Completed: goalLines(completed),
		Summary:   stats.GoalTotals(s.Goals),
	}, nil
}

// Transactions lists the transactions f matches, newest first.
func (l *Loader) Transactions(ctx context.Context, f stats.TransactionFilter) (*Transactions, error) {
	s, err := l.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	items := stats.Filter(s.Transactions, f)
	return &Transactions{
		Filter: f,
		Items:  items,
		Totals: stats.Summarize(items),
	}, nil
}
