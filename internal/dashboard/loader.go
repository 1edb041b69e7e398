// Package dashboard loads store snapshots concurrently and derives the
// dashboard, report, budget and goal views from them.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"fintrack/internal/backend"
	"fintrack/internal/cache"
	"fintrack/internal/core"
	"fintrack/internal/log"
)

// Snapshot is one read of every store. Cached snapshots are shared between
// callers and must be treated as read-only.
type Snapshot struct {
	Transactions []core.Transaction
	Budgets      []core.Budget
	Goals        []core.Goal
	Categories   []core.Category
	LoadedAt     time.Time
}

type Options struct {
	TrendMonths   int
	TopCategories int
	RecentCount   int
	ActiveGoals   int
}

func DefaultOptions() Options {
	return Options{
		TrendMonths:   6,
		TopCategories: 5,
		RecentCount:   5,
		ActiveGoals:   3,
	}
}

// Loader reads the backend's stores and caches snapshots until any store
// changes.
type Loader struct {
	backend   *backend.Backend
	snapshots cache.Cache[*Snapshot]
	opts      Options
	logger    *log.Logger
	now       func() time.Time
}

// NewLoader reads b. A nil snapshots cache loads on every call.
func NewLoader(b *backend.Backend, snapshots cache.Cache[*Snapshot], opts Options, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.Nop()
	}
	return &Loader{
		backend:   b,
		snapshots: snapshots,
		opts:      opts,
		logger:    logger.WithComponent(log.ComponentDashboard),
		now:       time.Now,
	}
}

// WithClock replaces time.Now for month selection and trend windows.
func (l *Loader) WithClock(now func() time.Time) *Loader {
	l.now = now
	return l
}

func (l *Loader) cacheKey() string {
	rev := l.backend.Revision()
	return fmt.Sprintf("snapshot:%d:%d:%d:%d", rev[0], rev[1], rev[2], rev[3])
}

// Snapshot returns the current contents of all four stores. The stores are
// read concurrently and the first failure cancels the rest.
func (l *Loader) Snapshot(ctx context.Context) (*Snapshot, error) {
	if l.snapshots == nil {
		return l.load(ctx)
	}
	key := l.cacheKey()
	s, err := l.snapshots.GetOrLoad(ctx, key, l.load)
	if err != nil && ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		fields := log.NewFields().
			WithOperation(log.OpLoad).
			WithError(err, log.ErrorTypeCanceled).
			WithCacheKey(key)
		l.logger.Ctx(ctx).DebugContext(ctx, "snapshot wait abandoned", fields.ToSlice()...)
	}
	return s, err
}

func (l *Loader) load(ctx context.Context) (*Snapshot, error) {
	start := time.Now()
	s := &Snapshot{}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		s.Transactions, err = l.backend.Transactions.GetAll(ctx)
		return err
	})
	g.Go(func() (err error) {
		s.Budgets, err = l.backend.Budgets.GetAll(ctx)
		return err
	})
	g.Go(func() (err error) {
		s.Goals, err = l.backend.Goals.GetAll(ctx)
		return err
	})
	g.Go(func() (err error) {
		s.Categories, err = l.backend.Categories.GetAll(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		l.logger.Ctx(ctx).ErrorContext(ctx, "snapshot load failed", log.NewFields().
			WithOperation(log.OpLoad).
			WithError(err, log.ErrorTypeInternal).
			ToSlice()...)
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	s.LoadedAt = l.now()
	l.logger.Ctx(ctx).DebugContext(ctx, "snapshot loaded",
		log.FieldOperation, log.OpLoad,
		log.FieldCount, len(s.Transactions),
		log.FieldDuration, time.Since(start).Milliseconds(),
	)
	return s, nil
}
