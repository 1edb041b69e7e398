package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"fintrack/internal/backend"
	"fintrack/internal/cache"
	"fintrack/internal/cli"
	"fintrack/internal/config"
	"fintrack/internal/dashboard"
	"fintrack/internal/log"
	"fintrack/internal/services"
	"fintrack/internal/store"
)

func main() {
	// Load .env file for local development
	if err := cli.LoadEnvFile(); err != nil {
		fmt.Fprintln(os.Stderr, "load .env:", err)
		os.Exit(1)
	}

	logger := cli.SetupLogger(os.Getenv("LOG_LEVEL"))

	ctx, cancel := cli.SignalContext(context.Background(), logger)
	defer cancel()

	cfg, err := cli.LoadAndValidateConfig(ctx, logger)
	if err != nil {
		os.Exit(1)
	}

	if err := run(ctx, cfg, logger, os.Args[1:], os.Stdout); err != nil {
		logger.ErrorContext(ctx, "Command failed", log.NewFields().
			WithError(err, errorType(err)).
			ToSlice()...)
		os.Exit(1)
	}
}

func errorType(err error) string {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return log.ErrorTypeCanceled
	case services.IsValidation(err), errors.Is(err, errUsage):
		return log.ErrorTypeValidation
	case errors.Is(err, store.ErrNotFound):
		return log.ErrorTypeNotFound
	case errors.Is(err, store.ErrInvariant):
		return log.ErrorTypeInvariant
	default:
		return log.ErrorTypeInternal
	}
}

func run(ctx context.Context, cfg *config.Config, logger *log.Logger, args []string, stdout io.Writer) error {
	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		return err
	}
	b, err := backend.NewFactory(logger).Create(ctx, backendCfg)
	if err != nil {
		return err
	}

	snapshots := cache.NewLRUCache[*dashboard.Snapshot](cfg.CacheSize, cfg.CacheTTL)
	caches := cache.NewManager(logger)
	caches.Register(snapshots)
	if cfg.CacheTTL > 0 {
		caches.StartCleanup(cfg.CacheTTL)
	}
	defer caches.Stop()

	opts := dashboard.DefaultOptions()
	opts.TrendMonths = cfg.TrendMonths
	opts.TopCategories = cfg.TopCategories

	a := &app{
		backend: b,
		loader:  dashboard.NewLoader(b, snapshots, opts, logger),
		logger:  logger.WithComponent(log.ComponentCLI),
		stdout:  stdout,
	}
	return a.dispatch(ctx, args)
}
