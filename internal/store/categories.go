package store

import (
	"context"
	"time"

	"fintrack/internal/core"
	"fintrack/internal/log"
)

// CategoryStore holds the income and expense categories in insertion order.
// Default categories come from the seed and cannot be deleted.
type CategoryStore struct {
	t *table[core.Category]
}

func NewCategoryStore(seed []core.Category, opts ...Option) *CategoryStore {
	return &CategoryStore{
		t: newTable("category", seed, func(c core.Category) int { return c.ID }, buildOptions(opts)),
	}
}

func (s *CategoryStore) GetAll(ctx context.Context) ([]core.Category, error) {
	return s.t.all(ctx)
}

func (s *CategoryStore) GetByID(ctx context.Context, id int) (core.Category, error) {
	return s.t.get(ctx, id)
}

func (s *CategoryStore) GetByType(ctx context.Context, typ core.TransactionType) ([]core.Category, error) {
	return s.t.filter(ctx, log.OpQuery, func(c core.Category) bool {
		return c.Type == typ
	})
}

// Create never produces a default category.
func (s *CategoryStore) Create(ctx context.Context, n core.NewCategory) (core.Category, error) {
	return s.t.insert(ctx, func(id int, _ time.Time) core.Category {
		return core.Category{
			ID:        id,
			Name:      n.Name,
			Type:      n.Type,
			IsDefault: false,
		}
	})
}

func (s *CategoryStore) Update(ctx context.Context, id int, p core.CategoryPatch) (core.Category, error) {
	return s.t.modify(ctx, log.OpUpdate, id, p.Apply)
}

// Delete fails with ErrDefaultCategory for default categories and leaves
// the collection untouched.
func (s *CategoryStore) Delete(ctx context.Context, id int) (core.Category, error) {
	return s.t.remove(ctx, id, func(c core.Category) error {
		if c.IsDefault {
			return ErrDefaultCategory
		}
		return nil
	})
}

func (s *CategoryStore) Len() int { return s.t.size() }

func (s *CategoryStore) Revision() uint64 { return s.t.rev() }
