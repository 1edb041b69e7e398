package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"fintrack/internal/backend"
	"fintrack/internal/charts"
	"fintrack/internal/core"
	"fintrack/internal/dashboard"
	"fintrack/internal/log"
	"fintrack/internal/render"
	"fintrack/internal/stats"
)

const usage = `usage: fintrack <command> [flags]

commands:
  dashboard      current month at a glance (default)
  report         totals and trend for the last -months (3, 6 or 12)
  budgets        this month's budgets and their status
  goals          savings goals
  transactions   list transactions, filtered by -type, -category and -q
  chart          write a PNG chart: -kind trend|spending -out file.png
  add            record a transaction
  delete         remove a transaction by -id
  budget         create a budget for -category in -month
  contribute     add -amount to the goal -id`

var errUsage = errors.New("invalid usage")

type app struct {
	backend *backend.Backend
	loader  *dashboard.Loader
	logger  *log.Logger
	stdout  io.Writer
	now     func() time.Time
}

func (a *app) clock() time.Time {
	if a.now != nil {
		return a.now()
	}
	return time.Now()
}

func (a *app) dispatch(ctx context.Context, args []string) error {
	cmd := "dashboard"
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}

	ctx = log.NewContext(ctx, a.logger.With("command", cmd))
	p := render.NewPrinter(a.stdout)
	switch cmd {
	case "dashboard":
		o, err := a.loader.Overview(ctx)
		if err != nil {
			return err
		}
		return p.Overview(o)
	case "report":
		return a.report(ctx, p, args)
	case "budgets":
		v, err := a.loader.Budgets(ctx)
		if err != nil {
			return err
		}
		return p.Budgets(v)
	case "goals":
		v, err := a.loader.Goals(ctx)
		if err != nil {
			return err
		}
		return p.Goals(v)
	case "transactions":
		return a.transactions(ctx, p, args)
	case "chart":
		return a.chart(ctx, args)
	case "add":
		return a.add(ctx, p, args)
	case "delete":
		return a.delete(ctx, p, args)
	case "budget":
		return a.budget(ctx, args)
	case "contribute":
		return a.contribute(ctx, p, args)
	case "help", "-h", "--help":
		fmt.Fprintln(a.stdout, usage)
		return nil
	default:
		fmt.Fprintln(a.stdout, usage)
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func (a *app) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stdout)
	return fs
}

func (a *app) report(ctx context.Context, p *render.Printer, args []string) error {
	fs := a.flags("report")
	months := fs.String("months", "6", "timeframe in months: 3, 6 or 12")
	if err := fs.Parse(args); err != nil {
		return err
	}
	tf, err := stats.ParseTimeframe(*months)
	if err != nil {
		return err
	}
	r, err := a.loader.Report(ctx, tf)
	if err != nil {
		return err
	}
	return p.Report(r)
}

func (a *app) transactions(ctx context.Context, p *render.Printer, args []string) error {
	fs := a.flags("transactions")
	typ := fs.String("type", "", "income or expense")
	category := fs.String("category", "", "exact category name")
	query := fs.String("q", "", "search description and category")
	if err := fs.Parse(args); err != nil {
		return err
	}
	f := stats.TransactionFilter{
		Type:     core.TransactionType(strings.ToLower(*typ)),
		Category: *category,
		Query:    *query,
	}
	if f.Type != "" && !f.Type.Valid() {
		return core.ErrInvalidType
	}
	v, err := a.loader.Transactions(ctx, f)
	if err != nil {
		return err
	}
	return p.Transactions(v)
}

func (a *app) chart(ctx context.Context, args []string) error {
	fs := a.flags("chart")
	kind := fs.String("kind", "trend", "trend or spending")
	out := fs.String("out", "", "output PNG file")
	months := fs.String("months", "6", "trend timeframe in months: 3, 6 or 12")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *out == "" {
		return fmt.Errorf("%w: chart needs -out", errUsage)
	}

	r := charts.NewRenderer(a.logger)
	var draw func(w io.Writer) error
	switch *kind {
	case "trend":
		tf, err := stats.ParseTimeframe(*months)
		if err != nil {
			return err
		}
		rep, err := a.loader.Report(ctx, tf)
		if err != nil {
			return err
		}
		draw = func(w io.Writer) error { return r.Trend(ctx, w, rep.Trend) }
	case "spending":
		o, err := a.loader.Overview(ctx)
		if err != nil {
			return err
		}
		draw = func(w io.Writer) error { return r.Spending(ctx, w, o.Spending) }
	default:
		return fmt.Errorf("%w: unknown chart kind %q", errUsage, *kind)
	}

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	if err := draw(f); err != nil {
		return errors.Join(err, discard(f))
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", *out, err)
	}
	fmt.Fprintf(a.stdout, "wrote %s chart to %s\n", *kind, *out)
	return nil
}

func (a *app) add(ctx context.Context, p *render.Printer, args []string) error {
	fs := a.flags("add")
	typ := fs.String("type", string(core.Expense), "income or expense")
	amount := fs.String("amount", "", "amount, e.g. 12.50")
	category := fs.String("category", "", "category name")
	desc := fs.String("desc", "", "description")
	date := fs.String("date", "", "date as YYYY-MM-DD, default today")
	if err := fs.Parse(args); err != nil {
		return err
	}

	amt, err := core.ParseAmount(*amount)
	if err != nil {
		return err
	}
	n := core.NewTransaction{
		Type:        core.TransactionType(strings.ToLower(*typ)),
		Amount:      amt,
		Category:    *category,
		Description: *desc,
	}
	if *date != "" {
		d, err := time.ParseInLocation(time.DateOnly, *date, time.Local)
		if err != nil {
			return fmt.Errorf("%w: date must be YYYY-MM-DD", core.ErrValidation)
		}
		n.Date = d
	}

	tx, err := a.backend.TransactionService.Create(ctx, n)
	if err != nil {
		return err
	}
	return p.Transaction(tx)
}

func (a *app) delete(ctx context.Context, p *render.Printer, args []string) error {
	fs := a.flags("delete")
	id := fs.Int("id", 0, "transaction id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	tx, err := a.backend.TransactionService.Delete(ctx, *id)
	if err != nil {
		return err
	}
	fmt.Fprint(a.stdout, "deleted ")
	return p.Transaction(tx)
}

func (a *app) budget(ctx context.Context, args []string) error {
	fs := a.flags("budget")
	category := fs.String("category", "", "category name")
	limit := fs.String("limit", "", "monthly limit")
	month := fs.String("month", core.MonthKey(a.clock()), "month as YYYY-MM")
	if err := fs.Parse(args); err != nil {
		return err
	}
	lim, err := core.ParseAmount(*limit)
	if err != nil {
		return err
	}
	start, err := core.ParseMonthKey(*month)
	if err != nil {
		return err
	}
	b, err := a.backend.Planning.CreateBudget(ctx, core.NewBudget{
		Category:     *category,
		MonthlyLimit: lim,
		Month:        *month,
		Year:         start.Year(),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "budget #%d: %s %s\n", b.ID, b.Category, b.Month)
	return nil
}

func (a *app) contribute(ctx context.Context, p *render.Printer, args []string) error {
	fs := a.flags("contribute")
	id := fs.Int("goal", 0, "goal id")
	amount := fs.String("amount", "", "amount to add")
	if err := fs.Parse(args); err != nil {
		return err
	}
	amt, err := core.ParseAmount(*amount)
	if err != nil {
		return err
	}
	g, err := a.backend.Planning.Contribute(ctx, *id, amt)
	if err != nil {
		return err
	}
	return p.Goal(g)
}

// discard closes and removes a partially written output file.
func discard(f *os.File) error {
	var errs []error
	if err := f.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close %s: %w", f.Name(), err))
	}
	if err := os.Remove(f.Name()); err != nil {
		errs = append(errs, fmt.Errorf("remove %s: %w", f.Name(), err))
	}
	return errors.Join(errs...)
}
