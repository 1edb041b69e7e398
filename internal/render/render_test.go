package render

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/backend"
	"fintrack/internal/core"
	"fintrack/internal/dashboard"
	"fintrack/internal/stats"
	"fintrack/internal/store"
)

func clock() time.Time { return time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC) }

func newLoader(t *testing.T) *dashboard.Loader {
	t.Helper()
	fixtures, err := store.DefaultFixtures()
	if err != nil {
		t.Fatalf("fixtures: %v", err)
	}
	b := backend.NewFactory(nil).WithClock(clock).FromFixtures(context.Background(), backend.Config{}, fixtures)
	return dashboard.NewLoader(b, nil, dashboard.DefaultOptions(), nil).WithClock(clock)
}

func assertContains(t *testing.T, out string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q:\n%s", w, out)
		}
	}
}

func TestPrinter_Views(t *testing.T) {
	ctx := context.Background()
	l := newLoader(t)

	tests := []struct {
		name   string
		render func(p *Printer) error
		want   []string
	}{
		{
			name: "overview",
			render: func(p *Printer) error {
				o, err := l.Overview(ctx)
				if err != nil {
					return err
				}
				return p.Overview(o)
			},
			want: []string{"October 2026", "$4,200.00", "$2,022.72", "Recent transactions", "Dining Out", "Entertainment", "Oct 2026"},
		},
		{
			name: "report",
			render: func(p *Printer) error {
				r, err := l.Report(ctx, stats.SixMonths)
				if err != nil {
					return err
				}
				return p.Report(r)
			},
			want: []string{"last 6 months", "Savings rate", "Rent", "May 2026"},
		},
		{
			name: "budgets",
			render: func(p *Printer) error {
				b, err := l.Budgets(ctx)
				if err != nil {
					return err
				}
				return p.Budgets(b)
			},
			want: []string{"Budgets for October 2026", "$1,010.00", "over", "Categories without a budget", "Gifts"},
		},
		{
			name: "goals",
			render: func(p *Printer) error {
				g, err := l.Goals(ctx)
				if err != nil {
					return err
				}
				return p.Goals(g)
			},
			want: []string{"In progress", "Completed", "New Laptop", "Summer Vacation", "100%"},
		},
		{
			name: "transactions",
			render: func(p *Printer) error {
				v, err := l.Transactions(ctx, stats.TransactionFilter{Type: core.Income})
				if err != nil {
					return err
				}
				return p.Transactions(v)
			},
			want: []string{"transactions", "Income", "expenses $0.00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tt.render(NewPrinter(&buf)); err != nil {
				t.Fatalf("render: %v", err)
			}
			assertContains(t, buf.String(), tt.want...)
		})
	}
}

func TestPrinter_NoColorOnPlainWriter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	if err := p.Transaction(core.Transaction{
		ID:       3,
		Type:     core.Expense,
		Amount:   decimal.RequireFromString("12.5"),
		Category: "Groceries",
		Date:     time.Date(2026, time.October, 2, 0, 0, 0, 0, time.UTC),
	}); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("unexpected escape sequences in %q", out)
	}
	assertContains(t, out, "#3", "Oct 2", "-$12.50")
}

func TestPrinter_EmptyViews(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	if err := p.Transactions(&dashboard.Transactions{}); err != nil {
		t.Fatal(err)
	}
	if err := p.Goals(&dashboard.Goals{}); err != nil {
		t.Fatal(err)
	}
	assertContains(t, buf.String(), "0 transactions", "No transactions", "No active goals")
	if strings.Contains(buf.String(), "Completed") {
		t.Error("completed section should be omitted when empty")
	}
}

func TestPrinter_Goal(t *testing.T) {
	var buf bytes.Buffer
	g := core.Goal{Title: "Bike", TargetAmount: decimal.NewFromInt(800), CurrentAmount: decimal.NewFromInt(200)}
	if err := NewPrinter(&buf).Goal(g); err != nil {
		t.Fatal(err)
	}
	assertContains(t, buf.String(), "Bike: $200.00 of $800.00 (25%)", "$600.00 to go")
}
