package backend

import (
	"context"
	"fmt"
	"time"

	"fintrack/internal/log"
	"fintrack/internal/services"
	"fintrack/internal/store"
)

// Factory builds backends seeded from fixtures.
type Factory struct {
	logger *log.Logger
	now    func() time.Time
}

func NewFactory(logger *log.Logger) *Factory {
	if logger == nil {
		logger = log.Nop()
	}
	return &Factory{
		logger: logger.WithComponent(log.ComponentBackend),
		now:    time.Now,
	}
}

// WithClock sets the clock handed to every store.
func (f *Factory) WithClock(now func() time.Time) *Factory {
	f.now = now
	return f
}

// Create loads the fixtures named by cfg and builds a fresh set of stores.
// Two backends never share a collection.
func (f *Factory) Create(ctx context.Context, cfg Config) (*Backend, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid backend config: %w", err)
	}
	fixtures, err := store.LoadFixtures(cfg.FixturesDir)
	if err != nil {
		return nil, fmt.Errorf("load fixtures: %w", err)
	}
	return f.FromFixtures(ctx, cfg, fixtures), nil
}

// FromFixtures builds a backend over an already loaded seed.
func (f *Factory) FromFixtures(ctx context.Context, cfg Config, fixtures store.Fixtures) *Backend {
	opts := []store.Option{
		store.WithLatency(cfg.Latency),
		store.WithLogger(f.logger),
		store.WithClock(f.now),
	}

	b := &Backend{
		Transactions: store.NewTransactionStore(fixtures.Transactions, opts...),
		Budgets:      store.NewBudgetStore(fixtures.Budgets, opts...),
		Goals:        store.NewGoalStore(fixtures.Goals, opts...),
		Categories:   store.NewCategoryStore(fixtures.Categories, opts...),
	}
	b.TransactionService = services.NewTransactionService(b.Transactions, b.Budgets, f.logger).
		WithLocation(f.now().Location())
	b.Planning = services.NewPlanningService(b.Budgets, b.Goals)

	source := cfg.FixturesDir
	if source == "" {
		source = "embedded"
	}
	f.logger.Ctx(ctx).InfoContext(ctx, "Initialized memory backend",
		log.FieldOperation, log.OpStartup,
		"fixtures", source,
		"transactions", b.Transactions.Len(),
		"budgets", b.Budgets.Len(),
		"goals", b.Goals.Len(),
		"categories", b.Categories.Len(),
		"latency_min", cfg.Latency.Min,
		"latency_max", cfg.Latency.Max,
	)
	return b
}
