package store

import (
	"context"
	"slices"
	"time"

	"fintrack/internal/core"
	"fintrack/internal/log"
)

// TransactionStore holds income and expense records. Every read returns
// them newest first.
type TransactionStore struct {
	t *table[core.Transaction]
}

func NewTransactionStore(seed []core.Transaction, opts ...Option) *TransactionStore {
	return &TransactionStore{
		t: newTable("transaction", seed, func(tx core.Transaction) int { return tx.ID }, buildOptions(opts)),
	}
}

func byDateDesc(txs []core.Transaction) []core.Transaction {
	slices.SortStableFunc(txs, func(a, b core.Transaction) int {
		return b.Date.Compare(a.Date)
	})
	return txs
}

func (s *TransactionStore) GetAll(ctx context.Context) ([]core.Transaction, error) {
	txs, err := s.t.all(ctx)
	return byDateDesc(txs), err
}

func (s *TransactionStore) GetByID(ctx context.Context, id int) (core.Transaction, error) {
	return s.t.get(ctx, id)
}

// Create stamps CreatedAt and uses the current time when n.Date is zero.
func (s *TransactionStore) Create(ctx context.Context, n core.NewTransaction) (core.Transaction, error) {
	return s.t.insert(ctx, func(id int, now time.Time) core.Transaction {
		date := n.Date
		if date.IsZero() {
			date = now
		}
		return core.Transaction{
			ID:          id,
			Type:        n.Type,
			Amount:      n.Amount,
			Category:    n.Category,
			Description: n.Description,
			Date:        date,
			CreatedAt:   now,
		}
	})
}

func (s *TransactionStore) Update(ctx context.Context, id int, p core.TransactionPatch) (core.Transaction, error) {
	return s.t.modify(ctx, log.OpUpdate, id, p.Apply)
}

func (s *TransactionStore) Delete(ctx context.Context, id int) (core.Transaction, error) {
	return s.t.remove(ctx, id, nil)
}

func (s *TransactionStore) GetByType(ctx context.Context, typ core.TransactionType) ([]core.Transaction, error) {
	txs, err := s.t.filter(ctx, log.OpQuery, func(tx core.Transaction) bool {
		return tx.Type == typ
	})
	return byDateDesc(txs), err
}

func (s *TransactionStore) GetByCategory(ctx context.Context, category string) ([]core.Transaction, error) {
	txs, err := s.t.filter(ctx, log.OpQuery, func(tx core.Transaction) bool {
		return tx.Category == category
	})
	return byDateDesc(txs), err
}

// GetByDateRange returns transactions dated within [start, end], both ends included.
func (s *TransactionStore) GetByDateRange(ctx context.Context, start, end time.Time) ([]core.Transaction, error) {
	txs, err := s.t.filter(ctx, log.OpQuery, func(tx core.Transaction) bool {
		return !tx.Date.Before(start) && !tx.Date.After(end)
	})
	return byDateDesc(txs), err
}

func (s *TransactionStore) Len() int { return s.t.size() }

// Revision changes whenever the collection is mutated.
func (s *TransactionStore) Revision() uint64 { return s.t.rev() }
