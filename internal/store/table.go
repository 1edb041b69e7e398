package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"fintrack/internal/log"
)

// table is the collection shared by every entity store: an ordered slice,
// sequential ids and the simulated latency in front of each access.
// Records are plain values, so copying a slice element is a snapshot.
type table[T any] struct {
	mu       sync.Mutex
	entity   string
	items    []T
	idOf     func(T) int
	lastID   int
	revision uint64

	latency Latency
	logger  *log.Logger
	now     func() time.Time
}

func newTable[T any](entity string, seed []T, idOf func(T) int, o options) *table[T] {
	t := &table[T]{
		entity:  entity,
		items:   append([]T(nil), seed...),
		idOf:    idOf,
		latency: o.latency,
		logger:  o.logger,
		now:     o.now,
	}
	for _, it := range t.items {
		t.lastID = max(t.lastID, idOf(it))
	}
	return t
}

func (t *table[T]) indexOf(id int) int {
	for i, it := range t.items {
		if t.idOf(it) == id {
			return i
		}
	}
	return -1
}

func (t *table[T]) notFound(ctx context.Context, op string, id int) error {
	err := &NotFoundError{Entity: t.entity, ID: id}
	t.logger.Ctx(ctx).WarnContext(ctx, "record not found", log.NewFields().
		WithOperation(op).
		WithEntity(t.entity, id).
		WithError(err, log.ErrorTypeNotFound).
		ToSlice()...)
	return err
}

func (t *table[T]) done(ctx context.Context, op string, id int) {
	t.logger.Ctx(ctx).DebugContext(ctx, t.entity+" "+op, log.NewFields().
		WithOperation(op).
		WithEntity(t.entity, id).
		ToSlice()...)
}

func (t *table[T]) all(ctx context.Context) ([]T, error) {
	return t.filter(ctx, log.OpList, nil)
}

// filter returns copies of the records keep accepts, in insertion order.
// A nil keep accepts everything.
func (t *table[T]) filter(ctx context.Context, op string, keep func(T) bool) ([]T, error) {
	if err := t.latency.Wait(ctx); err != nil {
		return nil, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]T, 0, len(t.items))
	for _, it := range t.items {
		if keep == nil || keep(it) {
			out = append(out, it)
		}
	}
	t.logger.Ctx(ctx).DebugContext(ctx, t.entity+" "+op, log.NewFields().
		WithOperation(op).
		WithEntity(t.entity, 0).
		WithCount(len(out)).
		ToSlice()...)
	return out, nil
}

func (t *table[T]) get(ctx context.Context, id int) (T, error) {
	var zero T
	if err := t.latency.Wait(ctx); err != nil {
		return zero, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexOf(id)
	if i < 0 {
		return zero, t.notFound(ctx, log.OpRead, id)
	}
	return t.items[i], nil
}

// insert assigns the next id, which is above every id this table has held.
func (t *table[T]) insert(ctx context.Context, build func(id int, now time.Time) T) (T, error) {
	var zero T
	if err := t.latency.Wait(ctx); err != nil {
		return zero, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	t.lastID++
	rec := build(t.lastID, t.now())
	t.items = append(t.items, rec)
	t.revision++
	t.done(ctx, log.OpCreate, t.lastID)
	return rec, nil
}

// modify replaces the record with id by fn's result.
func (t *table[T]) modify(ctx context.Context, op string, id int, fn func(T) T) (T, error) {
	var zero T
	if err := t.latency.Wait(ctx); err != nil {
		return zero, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexOf(id)
	if i < 0 {
		return zero, t.notFound(ctx, op, id)
	}
	t.items[i] = fn(t.items[i])
	t.revision++
	t.done(ctx, op, id)
	return t.items[i], nil
}

// modifyFirst applies fn to the first record match accepts. ok is false
// when nothing matched.
func (t *table[T]) modifyFirst(ctx context.Context, op string, match func(T) bool, fn func(T) T) (rec T, ok bool, err error) {
	if err := t.latency.Wait(ctx); err != nil {
		return rec, false, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	for i, it := range t.items {
		if match(it) {
			t.items[i] = fn(it)
			t.revision++
			t.done(ctx, op, t.idOf(t.items[i]))
			return t.items[i], true, nil
		}
	}
	return rec, false, nil
}

// remove deletes the record with id unless guard refuses it.
func (t *table[T]) remove(ctx context.Context, id int, guard func(T) error) (T, error) {
	var zero T
	if err := t.latency.Wait(ctx); err != nil {
		return zero, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexOf(id)
	if i < 0 {
		return zero, t.notFound(ctx, log.OpDelete, id)
	}
	rec := t.items[i]
	if guard != nil {
		if err := guard(rec); err != nil {
			errType := log.ErrorTypeInternal
			if errors.Is(err, ErrInvariant) {
				errType = log.ErrorTypeInvariant
			}
			t.logger.Ctx(ctx).WarnContext(ctx, "delete refused", log.NewFields().
				WithOperation(log.OpDelete).
				WithEntity(t.entity, id).
				WithError(err, errType).
				ToSlice()...)
			return zero, err
		}
	}
	t.items = append(t.items[:i], t.items[i+1:]...)
	t.revision++
	t.done(ctx, log.OpDelete, id)
	return rec, nil
}

func (t *table[T]) size() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.items)
}

func (t *table[T]) rev() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.revision
}
