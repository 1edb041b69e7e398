package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/core"
	"fintrack/internal/log"
)

// BudgetStore holds monthly category limits in insertion order. It does not
// enforce one budget per (category, month); callers check before creating.
type BudgetStore struct {
	t *table[core.Budget]
}

func NewBudgetStore(seed []core.Budget, opts ...Option) *BudgetStore {
	return &BudgetStore{
		t: newTable("budget", seed, func(b core.Budget) int { return b.ID }, buildOptions(opts)),
	}
}

func (s *BudgetStore) GetAll(ctx context.Context) ([]core.Budget, error) {
	return s.t.all(ctx)
}

func (s *BudgetStore) GetByID(ctx context.Context, id int) (core.Budget, error) {
	return s.t.get(ctx, id)
}

// Create starts every budget with nothing spent.
func (s *BudgetStore) Create(ctx context.Context, n core.NewBudget) (core.Budget, error) {
	return s.t.insert(ctx, func(id int, _ time.Time) core.Budget {
		return core.Budget{
			ID:           id,
			Category:     n.Category,
			MonthlyLimit: n.MonthlyLimit,
			Month:        n.Month,
			Year:         n.Year,
			CurrentSpent: decimal.Zero,
		}
	})
}

func (s *BudgetStore) Update(ctx context.Context, id int, p core.BudgetPatch) (core.Budget, error) {
	return s.t.modify(ctx, log.OpUpdate, id, p.Apply)
}

func (s *BudgetStore) Delete(ctx context.Context, id int) (core.Budget, error) {
	return s.t.remove(ctx, id, nil)
}

// GetByMonth matches both the month key and the year field.
func (s *BudgetStore) GetByMonth(ctx context.Context, month string, year int) ([]core.Budget, error) {
	return s.t.filter(ctx, log.OpQuery, func(b core.Budget) bool {
		return b.Month == month && b.Year == year
	})
}

// UpdateSpending adds amount to the spend of the budget for category in the
// given month. A nil budget with a nil error means no such budget exists,
// which is a normal state.
func (s *BudgetStore) UpdateSpending(ctx context.Context, category string, amount decimal.Decimal, month, year int) (*core.Budget, error) {
	key := core.MonthKeyOf(month, year)
	b, ok, err := s.t.modifyFirst(ctx, log.OpSync,
		func(b core.Budget) bool { return b.Category == category && b.Month == key },
		func(b core.Budget) core.Budget {
			b.CurrentSpent = b.CurrentSpent.Add(amount)
			return b
		},
	)
	if err != nil || !ok {
		return nil, err
	}
	return &b, nil
}

func (s *BudgetStore) Len() int { return s.t.size() }

func (s *BudgetStore) Revision() uint64 { return s.t.rev() }
