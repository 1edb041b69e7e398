// Package render prints dashboard views as styled terminal text.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"

	"fintrack/internal/core"
	"fintrack/internal/dashboard"
	"fintrack/internal/format"
	"fintrack/internal/stats"
)

type Styles struct {
	Title    lipgloss.Style
	Heading  lipgloss.Style
	Income   lipgloss.Style
	Spent    lipgloss.Style
	Warning  lipgloss.Style
	Critical lipgloss.Style
	Muted    lipgloss.Style
	Summary  lipgloss.Style
}

func defaultStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Title:    r.NewStyle().Bold(true),
		Heading:  r.NewStyle().Bold(true).Underline(true).MarginTop(1),
		Income:   r.NewStyle().Foreground(lipgloss.Color("#16a34a")),
		Spent:    r.NewStyle().Foreground(lipgloss.Color("#dc2626")),
		Warning:  r.NewStyle().Foreground(lipgloss.Color("#d29b1d")),
		Critical: r.NewStyle().Foreground(lipgloss.Color("#dc2626")).Bold(true),
		Muted:    r.NewStyle().Foreground(lipgloss.Color("#828282")),
		Summary:  r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

// Printer writes views to w. Colors are used only when w is a terminal.
type Printer struct {
	w      io.Writer
	Styles Styles
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, Styles: defaultStyles(lipgloss.NewRenderer(w))}
}

func (p *Printer) print(blocks ...string) error {
	_, err := fmt.Fprintln(p.w, lipgloss.JoinVertical(lipgloss.Left, blocks...))
	return err
}

func (p *Printer) signed(typ core.TransactionType, amount decimal.Decimal) string {
	if typ == core.Income {
		return p.Styles.Income.Render("+" + format.Currency(amount))
	}
	return p.Styles.Spent.Render("-" + format.Currency(amount))
}

func (p *Printer) balance(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return p.Styles.Spent.Render(format.Currency(amount))
	}
	return p.Styles.Income.Render(format.Currency(amount))
}

func (p *Printer) alert(a stats.Alert, text string) string {
	switch a {
	case stats.AlertCritical:
		return p.Styles.Critical.Render(text)
	case stats.AlertWarning:
		return p.Styles.Warning.Render(text)
	default:
		return text
	}
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
}

func (p *Printer) transactionTable(txs []core.Transaction) string {
	if len(txs) == 0 {
		return p.Styles.Muted.Render("No transactions")
	}
	t := newTable("Date", "Type", "Category", "Description", "Amount")
	for _, tx := range txs {
		t.Row(format.Date(tx.Date), format.Title(string(tx.Type)), tx.Category, tx.Description, p.signed(tx.Type, tx.Amount))
	}
	return t.String()
}

func (p *Printer) trendTable(series []stats.TrendBucket) string {
	t := newTable("Month", "Income", "Expenses", "Net")
	for _, b := range series {
		t.Row(b.Label, format.Currency(b.Income), format.Currency(b.Expense), p.balance(b.Income.Sub(b.Expense)))
	}
	return t.String()
}

func (p *Printer) Overview(o *dashboard.Overview) error {
	summary := p.Styles.Summary.Render(strings.Join([]string{
		fmt.Sprintf("Income:   %s", p.Styles.Income.Render(format.Currency(o.Totals.Income))),
		fmt.Sprintf("Expenses: %s", p.Styles.Spent.Render(format.Currency(o.Totals.Expense))),
		fmt.Sprintf("Balance:  %s", p.balance(o.Totals.Balance)),
		fmt.Sprintf("Budget left: %s (%s)", format.Currency(o.Budget.Remaining), format.Percentage(o.Budget.Remaining, o.Budget.Limit)),
		fmt.Sprintf("Saved toward goals: %s of %s", format.Currency(o.Goals.Current), format.Currency(o.Goals.Target)),
	}, "\n"))

	alerts := p.Styles.Muted.Render("All budgets on track")
	if len(o.BudgetAlerts) > 0 {
		lines := make([]string, 0, len(o.BudgetAlerts))
		for _, l := range o.BudgetAlerts {
			lines = append(lines, p.alert(l.Status.Alert, fmt.Sprintf("%s: %s of %s (%s)",
				l.Budget.Category,
				format.Currency(l.Budget.CurrentSpent),
				format.Currency(l.Budget.MonthlyLimit),
				format.Percentage(l.Budget.CurrentSpent, l.Budget.MonthlyLimit))))
		}
		alerts = strings.Join(lines, "\n")
	}

	goals := p.Styles.Muted.Render("No active goals")
	if len(o.ActiveGoals) > 0 {
		goals = p.goalTable(o.ActiveGoals)
	}

	return p.print(
		p.Styles.Title.Render(o.Month.String()),
		summary,
		p.Styles.Heading.Render("Recent transactions"),
		p.transactionTable(o.Recent),
		p.Styles.Heading.Render("Budget alerts"),
		alerts,
		p.Styles.Heading.Render("Top spending"),
		p.spendingTable(o.Spending, o.Totals.Expense),
		p.Styles.Heading.Render("Active goals"),
		goals,
		p.Styles.Heading.Render("Trend"),
		p.trendTable(o.Trend),
	)
}

func (p *Printer) spendingTable(breakdown []stats.CategoryAmount, total decimal.Decimal) string {
	if len(breakdown) == 0 {
		return p.Styles.Muted.Render("No expenses")
	}
	t := newTable("Category", "Amount", "Share")
	for _, c := range breakdown {
		t.Row(c.Category, format.Currency(c.Amount), format.Percentage(c.Amount, total))
	}
	return t.String()
}

func (p *Printer) goalTable(lines []dashboard.GoalLine) string {
	t := newTable("Goal", "Priority", "Target date", "Saved", "Target", "Progress", "Remaining")
	for _, l := range lines {
		t.Row(
			l.Goal.Title,
			format.Title(string(l.Goal.Priority)),
			format.Date(l.Goal.TargetDate),
			format.Currency(l.Goal.CurrentAmount),
			format.Currency(l.Goal.TargetAmount),
			fmt.Sprintf("%.0f%%", l.Progress.Percentage),
			format.Currency(l.Progress.Remaining),
		)
	}
	return t.String()
}

func (p *Printer) Report(r *dashboard.Report) error {
	summary := p.Styles.Summary.Render(strings.Join([]string{
		fmt.Sprintf("Income:   %s (%dM average %s)", p.Styles.Income.Render(format.Currency(r.Totals.Income)), r.Timeframe.Months(), format.Currency(r.MonthlyIncome)),
		fmt.Sprintf("Expenses: %s (%dM average %s)", p.Styles.Spent.Render(format.Currency(r.Totals.Expense)), r.Timeframe.Months(), format.Currency(r.MonthlyExpense)),
		fmt.Sprintf("Net:      %s (%s per month)", p.balance(r.Totals.Balance), format.Currency(r.MonthlyNet)),
		fmt.Sprintf("Savings rate: %.1f%%", r.SavingsRate),
		fmt.Sprintf("Transactions: %d (%s per month)", r.Totals.Count, r.PerMonth.Round(0).String()),
	}, "\n"))

	top := p.Styles.Muted.Render("No expenses")
	if len(r.TopCategories) > 0 {
		t := newTable("Category", "Amount", "% of total")
		for _, c := range r.TopCategories {
			t.Row(c.Category, format.Currency(c.Amount), fmt.Sprintf("%.1f%%", c.Share))
		}
		top = t.String()
	}

	return p.print(
		p.Styles.Title.Render(fmt.Sprintf("Report: last %s (since %s)", r.Timeframe, format.Date(r.Since))),
		summary,
		p.Styles.Heading.Render("Top categories"),
		top,
		p.Styles.Heading.Render("Monthly trend"),
		p.trendTable(r.Trend),
	)
}

func (p *Printer) Budgets(b *dashboard.Budgets) error {
	body := p.Styles.Muted.Render("No budgets for this month")
	if len(b.Lines) > 0 {
		t := newTable("Category", "Spent", "Limit", "Used", "Remaining")
		for _, l := range b.Lines {
			remaining := format.Currency(l.Status.Remaining.Abs()) + " left"
			if l.Status.Overspent() {
				remaining = format.Currency(l.Status.Remaining.Abs()) + " over"
			}
			t.Row(
				l.Budget.Category,
				format.Currency(l.Budget.CurrentSpent),
				format.Currency(l.Budget.MonthlyLimit),
				p.alert(l.Status.Alert, fmt.Sprintf("%.0f%%", l.Status.Percentage)),
				remaining,
			)
		}
		body = t.String()
	}

	available := make([]string, 0, len(b.Available))
	for _, c := range b.Available {
		available = append(available, c.Name)
	}
	free := p.Styles.Muted.Render("Every category has a budget")
	if len(available) > 0 {
		free = strings.Join(available, ", ")
	}

	return p.print(
		p.Styles.Title.Render("Budgets for "+b.Month.String()),
		body,
		fmt.Sprintf("Total: %s of %s spent, %s remaining",
			format.Currency(b.Summary.Spent),
			format.Currency(b.Summary.Limit),
			format.Currency(b.Summary.Remaining)),
		p.Styles.Heading.Render("Categories without a budget"),
		free,
	)
}

func (p *Printer) Goals(g *dashboard.Goals) error {
	active := p.Styles.Muted.Render("No active goals")
	if len(g.Active) > 0 {
		active = p.goalTable(g.Active)
	}
	blocks := []string{
		p.Styles.Title.Render("Savings goals"),
		fmt.Sprintf("Saved %s of %s", format.Currency(g.Summary.Current), format.Currency(g.Summary.Target)),
		p.Styles.Heading.Render("In progress"),
		active,
	}
	if len(g.Completed) > 0 {
		blocks = append(blocks, p.Styles.Heading.Render("Completed"), p.goalTable(g.Completed))
	}
	return p.print(blocks...)
}

func (p *Printer) Transactions(v *dashboard.Transactions) error {
	return p.print(
		p.Styles.Title.Render(fmt.Sprintf("%d transactions", len(v.Items))),
		p.transactionTable(v.Items),
		fmt.Sprintf("Income %s, expenses %s, net %s",
			format.Currency(v.Totals.Income),
			format.Currency(v.Totals.Expense),
			p.balance(v.Totals.Balance)),
	)
}

// Transaction prints a single record, e.g. after it was created.
func (p *Printer) Transaction(tx core.Transaction) error {
	return p.print(fmt.Sprintf("#%d %s %s %s %s",
		tx.ID, format.CompactDate(tx.Date), tx.Category, p.signed(tx.Type, tx.Amount), tx.Description))
}

// Goal prints a single goal with its progress.
func (p *Printer) Goal(g core.Goal) error {
	pr := stats.GoalProgressOf(g)
	return p.print(fmt.Sprintf("%s: %s of %s (%.0f%%), %s to go",
		g.Title, format.Currency(g.CurrentAmount), format.Currency(g.TargetAmount), pr.Percentage, format.Currency(pr.Remaining)))
}
