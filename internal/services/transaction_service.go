package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/core"
	"fintrack/internal/log"
	"fintrack/internal/store"
)

// BudgetSyncer moves the spend of the budget matching a category and month.
// A nil budget with a nil error means no budget matched.
type BudgetSyncer interface {
	UpdateSpending(ctx context.Context, category string, amount decimal.Decimal, month, year int) (*core.Budget, error)
}

// TransactionService writes transactions and keeps budget spending in step
// with expenses. The transaction store is authoritative: a failed budget
// sync is logged and never fails the write.
type TransactionService struct {
	store   *store.TransactionStore
	budgets BudgetSyncer
	logger  *log.Logger
	// loc decides which month a transaction's date belongs to.
	loc *time.Location
}

func NewTransactionService(transactions *store.TransactionStore, budgets BudgetSyncer, logger *log.Logger) *TransactionService {
	if logger == nil {
		logger = log.Nop()
	}
	return &TransactionService{
		store:   transactions,
		budgets: budgets,
		logger:  logger.WithComponent(log.ComponentBudgetSync),
		loc:     time.Local,
	}
}

// WithLocation sets the time zone used to match transactions to budget
// months. It should be the zone the dashboards read months in.
func (s *TransactionService) WithLocation(loc *time.Location) *TransactionService {
	if loc != nil {
		s.loc = loc
	}
	return s
}

// Create validates n, stores it and adds expense amounts to the matching budget.
func (s *TransactionService) Create(ctx context.Context, n core.NewTransaction) (core.Transaction, error) {
	if err := n.Validate(); err != nil {
		return core.Transaction{}, fmt.Errorf("create transaction: %w", err)
	}
	tx, err := s.store.Create(ctx, n)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("create transaction: %w", err)
	}
	s.sync(ctx, tx, tx.Amount)
	return tx, nil
}

// Update applies p and moves budget spend from the old month/category to
// the new one when anything that affects it changed.
func (s *TransactionService) Update(ctx context.Context, id int, p core.TransactionPatch) (core.Transaction, error) {
	if err := p.Validate(); err != nil {
		return core.Transaction{}, fmt.Errorf("update transaction %d: %w", id, err)
	}
	old, err := s.store.GetByID(ctx, id)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("update transaction %d: %w", id, err)
	}
	updated, err := s.store.Update(ctx, id, p)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("update transaction %d: %w", id, err)
	}
	if s.affectsBudget(old, updated) {
		s.sync(ctx, old, old.Amount.Neg())
		s.sync(ctx, updated, updated.Amount)
	}
	return updated, nil
}

// Delete removes the transaction and gives its amount back to the budget.
func (s *TransactionService) Delete(ctx context.Context, id int) (core.Transaction, error) {
	tx, err := s.store.Delete(ctx, id)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("delete transaction %d: %w", id, err)
	}
	s.sync(ctx, tx, tx.Amount.Neg())
	return tx, nil
}

func (s *TransactionService) affectsBudget(old, updated core.Transaction) bool {
	return old.Type != updated.Type ||
		old.Category != updated.Category ||
		!old.Amount.Equal(updated.Amount) ||
		core.MonthKeyIn(old.Date, s.loc) != core.MonthKeyIn(updated.Date, s.loc)
}

// sync adds delta to the budget tx belongs to. Income never touches budgets.
func (s *TransactionService) sync(ctx context.Context, tx core.Transaction, delta decimal.Decimal) {
	if tx.Type != core.Expense || s.budgets == nil {
		return
	}
	date := tx.Date.In(s.loc)
	month := core.MonthKey(date)
	fields := log.NewFields().
		WithOperation(log.OpSync).
		WithEntity("transaction", tx.ID).
		WithCategory(tx.Category).
		WithMonth(month).
		WithAmount(delta)

	b, err := s.budgets.UpdateSpending(ctx, tx.Category, delta, int(date.Month()), date.Year())
	if err != nil {
		s.logger.Ctx(ctx).ErrorContext(ctx, "budget sync failed", fields.WithError(err, log.ErrorTypeInternal).ToSlice()...)
		return
	}
	if b == nil {
		s.logger.Ctx(ctx).DebugContext(ctx, "no budget for category", fields.ToSlice()...)
		return
	}
	s.logger.Ctx(ctx).DebugContext(ctx, "budget spending updated", fields.WithEntity("budget", b.ID).ToSlice()...)
}
