package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"fintrack/internal/core"
	"fintrack/internal/store"
)

var ErrDuplicateBudget = fmt.Errorf("%w: a budget for this category and month already exists", core.ErrValidation)

// PlanningService fronts the budget and goal stores with the checks the
// stores leave to their callers.
type PlanningService struct {
	budgets *store.BudgetStore
	goals   *store.GoalStore
}

func NewPlanningService(budgets *store.BudgetStore, goals *store.GoalStore) *PlanningService {
	return &PlanningService{budgets: budgets, goals: goals}
}

// CreateBudget refuses a second budget for the same category and month.
func (s *PlanningService) CreateBudget(ctx context.Context, n core.NewBudget) (core.Budget, error) {
	if err := n.Validate(); err != nil {
		return core.Budget{}, fmt.Errorf("create budget: %w", err)
	}
	existing, err := s.budgets.GetByMonth(ctx, n.Month, n.Year)
	if err != nil {
		return core.Budget{}, fmt.Errorf("create budget: %w", err)
	}
	for _, b := range existing {
		if b.Category == n.Category {
			return core.Budget{}, fmt.Errorf("create budget %s %s: %w", n.Category, n.Month, ErrDuplicateBudget)
		}
	}
	return s.budgets.Create(ctx, n)
}

func (s *PlanningService) UpdateBudget(ctx context.Context, id int, p core.BudgetPatch) (core.Budget, error) {
	if err := p.Validate(); err != nil {
		return core.Budget{}, fmt.Errorf("update budget %d: %w", id, err)
	}
	return s.budgets.Update(ctx, id, p)
}

func (s *PlanningService) CreateGoal(ctx context.Context, n core.NewGoal) (core.Goal, error) {
	if err := n.Validate(); err != nil {
		return core.Goal{}, fmt.Errorf("create goal: %w", err)
	}
	return s.goals.Create(ctx, n)
}

func (s *PlanningService) UpdateGoal(ctx context.Context, id int, p core.GoalPatch) (core.Goal, error) {
	if err := p.Validate(); err != nil {
		return core.Goal{}, fmt.Errorf("update goal %d: %w", id, err)
	}
	return s.goals.Update(ctx, id, p)
}

// Contribute adds a positive amount to a goal.
func (s *PlanningService) Contribute(ctx context.Context, id int, amount decimal.Decimal) (core.Goal, error) {
	if !amount.IsPositive() {
		return core.Goal{}, fmt.Errorf("contribute to goal %d: %w", id, core.ErrInvalidAmount)
	}
	g, err := s.goals.AddToGoal(ctx, id, amount)
	if err != nil {
		return core.Goal{}, fmt.Errorf("contribute to goal %d: %w", id, err)
	}
	return g, nil
}

// IsValidation reports whether err was caused by rejected input.
func IsValidation(err error) bool {
	return errors.Is(err, core.ErrValidation)
}
