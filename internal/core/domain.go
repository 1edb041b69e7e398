package core

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

const maxDescriptionLen = 200

type (
	TransactionType string

	Priority string

	Transaction struct {
		ID          int             `json:"Id"`
		Type        TransactionType `json:"type"`
		Amount      decimal.Decimal `json:"amount"`
		Category    string          `json:"category"`
		Description string          `json:"description,omitempty"`
		Date        time.Time       `json:"date"`
		CreatedAt   time.Time       `json:"createdAt"`
	}

	Budget struct {
		ID           int             `json:"Id"`
		Category     string          `json:"category"`
		MonthlyLimit decimal.Decimal `json:"monthlyLimit"`
		Month        string          `json:"month"` // YYYY-MM
		Year         int             `json:"year"`
		CurrentSpent decimal.Decimal `json:"currentSpent"`
	}

	Goal struct {
		ID            int             `json:"Id"`
		Title         string          `json:"title"`
		TargetAmount  decimal.Decimal `json:"targetAmount"`
		CurrentAmount decimal.Decimal `json:"currentAmount"`
		TargetDate    time.Time       `json:"targetDate"`
		Priority      Priority        `json:"priority"`
		CreatedAt     time.Time       `json:"createdAt"`
	}

	Category struct {
		ID        int             `json:"Id"`
		Name      string          `json:"name"`
		Type      TransactionType `json:"type"`
		IsDefault bool            `json:"isDefault"`
	}
)

// ErrValidation is the parent of every caller-side validation failure.
var ErrValidation = errors.New("validation failed")

var (
	ErrInvalidType       = fmt.Errorf("%w: type must be income or expense", ErrValidation)
	ErrInvalidAmount     = fmt.Errorf("%w: amount must be positive", ErrValidation)
	ErrNegativeAmount    = fmt.Errorf("%w: amount cannot be negative", ErrValidation)
	ErrEmptyCategory     = fmt.Errorf("%w: empty category", ErrValidation)
	ErrEmptyTitle        = fmt.Errorf("%w: empty title", ErrValidation)
	ErrEmptyName         = fmt.Errorf("%w: empty name", ErrValidation)
	ErrDescriptionLength = fmt.Errorf("%w: description too long (max %d characters)", ErrValidation, maxDescriptionLen)
	ErrInvalidMonth      = fmt.Errorf("%w: month must be formatted YYYY-MM", ErrValidation)
	ErrInvalidYear       = fmt.Errorf("%w: invalid year", ErrValidation)
	ErrMissingDate       = fmt.Errorf("%w: date cannot be zero", ErrValidation)
	ErrInvalidPriority   = fmt.Errorf("%w: priority must be low, medium or high", ErrValidation)
)

// Valid reports whether t is one of the two known transaction types.
func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

func validateType(t TransactionType) error {
	if !t.Valid() {
		return ErrInvalidType
	}
	return nil
}

func validatePositive(d decimal.Decimal) error {
	if !d.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}

func validateNotBlank(s string, err error) error {
	if strings.TrimSpace(s) == "" {
		return err
	}
	return nil
}

func validateDescription(s string) error {
	if len(s) > maxDescriptionLen {
		return ErrDescriptionLength
	}
	return nil
}

func validateMonth(month string) error {
	if _, err := ParseMonthKey(month); err != nil {
		return ErrInvalidMonth
	}
	return nil
}

func validateYear(year int) error {
	if year < 1 || year > 9999 {
		return ErrInvalidYear
	}
	return nil
}
