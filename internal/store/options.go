package store

import (
	"context"
	"math/rand/v2"
	"time"

	"fintrack/internal/log"
)

// Latency simulates a storage round-trip. Each operation waits a uniformly
// random duration in [Min, Max]. The zero value does not wait.
type Latency struct {
	Min time.Duration
	Max time.Duration
}

func (l Latency) duration() time.Duration {
	if l.Max <= l.Min {
		return l.Min
	}
	return l.Min + rand.N(l.Max-l.Min+1)
}

// Wait blocks for one simulated round-trip or until ctx is done.
func (l Latency) Wait(ctx context.Context) error {
	d := l.duration()
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

type options struct {
	latency Latency
	logger  *log.Logger
	now     func() time.Time
}

// Option configures a store.
type Option func(*options)

func WithLatency(l Latency) Option {
	return func(o *options) { o.latency = l }
}

func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithClock replaces time.Now for CreatedAt stamps and default dates.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		logger: log.Nop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	o.logger = o.logger.WithComponent(log.ComponentStore)
	return o
}
