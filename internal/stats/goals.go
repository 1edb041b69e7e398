package stats

import (
	"github.com/shopspring/decimal"

	"fintrack/internal/core"
)

type GoalProgress struct {
	// Percentage is clamped to [0, 100].
	Percentage float64
	Remaining  decimal.Decimal
	Completed  bool
}

func GoalProgressOf(g core.Goal) GoalProgress {
	pct := min(max(Percent(g.CurrentAmount, g.TargetAmount), 0), 100)
	return GoalProgress{
		Percentage: pct,
		Remaining:  decimal.Max(g.TargetAmount.Sub(g.CurrentAmount), decimal.Zero),
		Completed:  goalCompleted(g),
	}
}

func goalCompleted(g core.Goal) bool {
	return g.TargetAmount.IsPositive() && g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

type GoalSummary struct {
	Target  decimal.Decimal
	Current decimal.Decimal
}

func GoalTotals(goals []core.Goal) GoalSummary {
	var s GoalSummary
	for _, g := range goals {
		s.Target = s.Target.Add(g.TargetAmount)
		s.Current = s.Current.Add(g.CurrentAmount)
	}
	return s
}

// SplitGoals partitions goals into those still in progress and those that
// reached their target, keeping the input order in both.
func SplitGoals(goals []core.Goal) (active, completed []core.Goal) {
	for _, g := range goals {
		if goalCompleted(g) {
			completed = append(completed, g)
		} else {
			active = append(active, g)
		}
	}
	return active, completed
}
