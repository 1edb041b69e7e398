package core

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Creation inputs. Stores do not validate them; callers run Validate first.
type (
	NewTransaction struct {
		Type        TransactionType
		Amount      decimal.Decimal
		Category    string
		Description string
		Date        time.Time // zero means now
	}

	NewBudget struct {
		Category     string
		MonthlyLimit decimal.Decimal
		Month        string
		Year         int
	}

	NewGoal struct {
		Title         string
		TargetAmount  decimal.Decimal
		CurrentAmount decimal.Decimal
		TargetDate    time.Time
		Priority      Priority
	}

	NewCategory struct {
		Name string
		Type TransactionType
	}
)

func (n NewTransaction) Validate() error {
	return errors.Join(
		validateType(n.Type),
		validatePositive(n.Amount),
		validateNotBlank(n.Category, ErrEmptyCategory),
		validateDescription(n.Description),
	)
}

func (n NewBudget) Validate() error {
	return errors.Join(
		validateNotBlank(n.Category, ErrEmptyCategory),
		validatePositive(n.MonthlyLimit),
		validateMonth(n.Month),
		validateYear(n.Year),
	)
}

func (n NewGoal) Validate() error {
	var errs []error
	errs = append(errs,
		validateNotBlank(n.Title, ErrEmptyTitle),
		validatePositive(n.TargetAmount),
	)
	if n.CurrentAmount.IsNegative() {
		errs = append(errs, ErrNegativeAmount)
	}
	if n.TargetDate.IsZero() {
		errs = append(errs, ErrMissingDate)
	}
	if !n.Priority.Valid() {
		errs = append(errs, ErrInvalidPriority)
	}
	return errors.Join(errs...)
}

func (n NewCategory) Validate() error {
	return errors.Join(
		validateNotBlank(n.Name, ErrEmptyName),
		validateType(n.Type),
	)
}
