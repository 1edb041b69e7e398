package core

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Patches are merge-patches: a nil field is absent and leaves the stored
// value alone, a non-nil field replaces it. An empty patch is a no-op.
type (
	TransactionPatch struct {
		Type        *TransactionType
		Amount      *decimal.Decimal
		Category    *string
		Description *string
		Date        *time.Time
	}

	// BudgetPatch has no CurrentSpent: spending moves only through budget sync.
	BudgetPatch struct {
		Category     *string
		MonthlyLimit *decimal.Decimal
		Month        *string
		Year         *int
	}

	GoalPatch struct {
		Title         *string
		TargetAmount  *decimal.Decimal
		CurrentAmount *decimal.Decimal
		TargetDate    *time.Time
		Priority      *Priority
	}

	CategoryPatch struct {
		Name *string
		Type *TransactionType
	}
)

// Ptr returns a pointer to v, handy for building patches.
func Ptr[T any](v T) *T {
	return &v
}

func (p TransactionPatch) Apply(t Transaction) Transaction {
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Date != nil {
		t.Date = *p.Date
	}
	return t
}

func (p TransactionPatch) Validate() error {
	var errs []error
	if p.Type != nil {
		errs = append(errs, validateType(*p.Type))
	}
	if p.Amount != nil {
		errs = append(errs, validatePositive(*p.Amount))
	}
	if p.Category != nil {
		errs = append(errs, validateNotBlank(*p.Category, ErrEmptyCategory))
	}
	if p.Description != nil {
		errs = append(errs, validateDescription(*p.Description))
	}
	if p.Date != nil && p.Date.IsZero() {
		errs = append(errs, ErrMissingDate)
	}
	return errors.Join(errs...)
}

func (p BudgetPatch) Apply(b Budget) Budget {
	if p.Category != nil {
		b.Category = *p.Category
	}
	if p.MonthlyLimit != nil {
		b.MonthlyLimit = *p.MonthlyLimit
	}
	if p.Month != nil {
		b.Month = *p.Month
	}
	if p.Year != nil {
		b.Year = *p.Year
	}
	return b
}

func (p BudgetPatch) Validate() error {
	var errs []error
	if p.Category != nil {
		errs = append(errs, validateNotBlank(*p.Category, ErrEmptyCategory))
	}
	if p.MonthlyLimit != nil {
		errs = append(errs, validatePositive(*p.MonthlyLimit))
	}
	if p.Month != nil {
		errs = append(errs, validateMonth(*p.Month))
	}
	if p.Year != nil {
		errs = append(errs, validateYear(*p.Year))
	}
	return errors.Join(errs...)
}

func (p GoalPatch) Apply(g Goal) Goal {
	if p.Title != nil {
		g.Title = *p.Title
	}
	if p.TargetAmount != nil {
		g.TargetAmount = *p.TargetAmount
	}
	if p.CurrentAmount != nil {
		g.CurrentAmount = *p.CurrentAmount
	}
	if p.TargetDate != nil {
		g.TargetDate = *p.TargetDate
	}
	if p.Priority != nil {
		g.Priority = *p.Priority
	}
	return g
}

func (p GoalPatch) Validate() error {
	var errs []error
	if p.Title != nil {
		errs = append(errs, validateNotBlank(*p.Title, ErrEmptyTitle))
	}
	if p.TargetAmount != nil {
		errs = append(errs, validatePositive(*p.TargetAmount))
	}
	if p.CurrentAmount != nil && p.CurrentAmount.IsNegative() {
		errs = append(errs, ErrNegativeAmount)
	}
	if p.TargetDate != nil && p.TargetDate.IsZero() {
		errs = append(errs, ErrMissingDate)
	}
	if p.Priority != nil && !p.Priority.Valid() {
		errs = append(errs, ErrInvalidPriority)
	}
	return errors.Join(errs...)
}

func (p CategoryPatch) Apply(c Category) Category {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Type != nil {
		c.Type = *p.Type
	}
	return c
}

func (p CategoryPatch) Validate() error {
	var errs []error
	if p.Name != nil {
		errs = append(errs, validateNotBlank(*p.Name, ErrEmptyName))
	}
	if p.Type != nil {
		errs = append(errs, validateType(*p.Type))
	}
	return errors.Join(errs...)
}
