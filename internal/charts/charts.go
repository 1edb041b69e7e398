// Package charts renders the trend series and the spending breakdown as PNG.
package charts

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"fintrack/internal/format"
	"fintrack/internal/log"
	"fintrack/internal/stats"
)

// ErrNoData is returned when there is nothing to draw.
var ErrNoData = errors.New("no data to chart")

var (
	incomeColor  = drawing.ColorFromHex("16a34a")
	expenseColor = drawing.ColorFromHex("dc2626")
)

type Renderer struct {
	Width  int
	Height int
	logger *log.Logger
}

func NewRenderer(logger *log.Logger) *Renderer {
	if logger == nil {
		logger = log.Nop()
	}
	return &Renderer{
		Width:  1024,
		Height: 512,
		logger: logger.WithComponent(log.ComponentCharts),
	}
}

func background() chart.Style {
	return chart.Style{
		Padding: chart.Box{
			Top:    40,
			Left:   20,
			Right:  20,
			Bottom: 20,
		},
		FillColor: chart.ColorWhite,
	}
}

func currencyTick(v interface{}) string {
	f, ok := v.(float64)
	if !ok {
		return ""
	}
	return format.Currency(decimal.NewFromFloat(f).Round(0))
}

// Trend draws income and expense per month as two lines. A series with no
// activity still renders, flat at zero.
func (r *Renderer) Trend(ctx context.Context, w io.Writer, series []stats.TrendBucket) error {
	if len(series) == 0 {
		return ErrNoData
	}

	xs := make([]float64, len(series))
	income := make([]float64, len(series))
	expense := make([]float64, len(series))
	ticks := make([]chart.Tick, len(series))
	for i, b := range series {
		xs[i] = float64(i)
		income[i] = b.Income.InexactFloat64()
		expense[i] = b.Expense.InexactFloat64()
		ticks[i] = chart.Tick{Value: float64(i), Label: b.Label}
	}
	// go-chart cannot draw a single point or a zero-height range.
	if len(xs) == 1 {
		xs = append(xs, 1)
		income = append(income, income[0])
		expense = append(expense, expense[0])
	}

	graph := chart.Chart{
		Title:      "Income vs expenses",
		Width:      r.Width,
		Height:     r.Height,
		Background: background(),
		XAxis: chart.XAxis{
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			ValueFormatter: currencyTick,
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Income",
				XValues: xs,
				YValues: income,
				Style: chart.Style{
					StrokeColor: incomeColor,
					StrokeWidth: 2,
				},
			},
			chart.ContinuousSeries{
				Name:    "Expenses",
				XValues: xs,
				YValues: expense,
				Style: chart.Style{
					StrokeColor: expenseColor,
					StrokeWidth: 2,
				},
			},
		},
	}
	if !stats.HasActivity(series) {
		graph.YAxis.Range = &chart.ContinuousRange{Min: 0, Max: 1}
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.PNG, w); err != nil {
		return r.fail(ctx, "trend", err)
	}
	r.rendered(ctx, "trend", len(series))
	return nil
}

// Spending draws the category breakdown as a pie labelled with amount and
// share of the total.
func (r *Renderer) Spending(ctx context.Context, w io.Writer, breakdown []stats.CategoryAmount) error {
	var total decimal.Decimal
	for _, c := range breakdown {
		total = total.Add(c.Amount)
	}
	if !total.IsPositive() {
		return ErrNoData
	}

	values := make([]chart.Value, 0, len(breakdown))
	for _, c := range breakdown {
		if !c.Amount.IsPositive() {
			continue
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s: %s (%s)", c.Category, format.Currency(c.Amount), format.Percentage(c.Amount, total)),
			Value: c.Amount.InexactFloat64(),
		})
	}

	pie := chart.PieChart{
		Title:      "Spending by category",
		Width:      r.Height,
		Height:     r.Height,
		Values:     values,
		Background: background(),
	}
	if err := pie.Render(chart.PNG, w); err != nil {
		return r.fail(ctx, "spending", err)
	}
	r.rendered(ctx, "spending", len(values))
	return nil
}

func (r *Renderer) fail(ctx context.Context, kind string, err error) error {
	r.logger.Ctx(ctx).ErrorContext(ctx, "chart render failed", log.NewFields().
		WithOperation(log.OpRender).
		WithEntity(kind, 0).
		WithError(err, log.ErrorTypeInternal).
		ToSlice()...)
	return fmt.Errorf("render %s chart: %w", kind, err)
}

func (r *Renderer) rendered(ctx context.Context, kind string, points int) {
	r.logger.Ctx(ctx).DebugContext(ctx, "chart rendered", log.NewFields().
		WithOperation(log.OpRender).
		WithEntity(kind, 0).
		WithCount(points).
		ToSlice()...)
}
