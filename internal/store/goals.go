package store

import (
	"context"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/core"
	"fintrack/internal/log"
)

// GoalStore holds savings goals. Reads return them by nearest target date.
type GoalStore struct {
	t *table[core.Goal]
}

func NewGoalStore(seed []core.Goal, opts ...Option) *GoalStore {
	return &GoalStore{
		t: newTable("goal", seed, func(g core.Goal) int { return g.ID }, buildOptions(opts)),
	}
}

func (s *GoalStore) GetAll(ctx context.Context) ([]core.Goal, error) {
	goals, err := s.t.all(ctx)
	slices.SortStableFunc(goals, func(a, b core.Goal) int {
		return a.TargetDate.Compare(b.TargetDate)
	})
	return goals, err
}

func (s *GoalStore) GetByID(ctx context.Context, id int) (core.Goal, error) {
	return s.t.get(ctx, id)
}

func (s *GoalStore) Create(ctx context.Context, n core.NewGoal) (core.Goal, error) {
	return s.t.insert(ctx, func(id int, now time.Time) core.Goal {
		return core.Goal{
			ID:            id,
			Title:         n.Title,
			TargetAmount:  n.TargetAmount,
			CurrentAmount: n.CurrentAmount,
			TargetDate:    n.TargetDate,
			Priority:      n.Priority,
			CreatedAt:     now,
		}
	})
}

func (s *GoalStore) Update(ctx context.Context, id int, p core.GoalPatch) (core.Goal, error) {
	return s.t.modify(ctx, log.OpUpdate, id, p.Apply)
}

func (s *GoalStore) Delete(ctx context.Context, id int) (core.Goal, error) {
	return s.t.remove(ctx, id, nil)
}

// AddToGoal increments CurrentAmount. The sign of amount is the caller's concern.
func (s *GoalStore) AddToGoal(ctx context.Context, id int, amount decimal.Decimal) (core.Goal, error) {
	return s.t.modify(ctx, log.OpAddToGoal, id, func(g core.Goal) core.Goal {
		g.CurrentAmount = g.CurrentAmount.Add(amount)
		return g
	})
}

func (s *GoalStore) Len() int { return s.t.size() }

func (s *GoalStore) Revision() uint64 { return s.t.rev() }
