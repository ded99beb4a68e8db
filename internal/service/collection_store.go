package service

import (
	"context"
	"slices"

	"go.uber.org/zap"

	appErrors "github.com/noah-isme/syntaxscout-api/pkg/errors"
)

// Identifiable items carry an ID that is stable for their lifetime.
type Identifiable interface {
	ItemID() int64
}

// Mutate returns a new slice with the item matching id replaced by fn(item).
// The bool reports whether an item matched; when none does the input is
// returned unchanged.
func Mutate[T Identifiable](items []T, id int64, fn func(T) T) ([]T, bool) {
	idx := slices.IndexFunc(items, func(item T) bool { return item.ItemID() == id })
	if idx < 0 {
		return items, false
	}
	out := slices.Clone(items)
	out[idx] = fn(out[idx])
	return out, true
}

// Remove returns a new slice without the item matching id.
func Remove[T Identifiable](items []T, id int64) ([]T, bool) {
	out := slices.DeleteFunc(slices.Clone(items), func(item T) bool { return item.ItemID() == id })
	return out, len(out) != len(items)
}

// RemoveWhere returns a new slice without items matching pred.
func RemoveWhere[T any](items []T, pred func(T) bool) ([]T, int) {
	out := slices.DeleteFunc(slices.Clone(items), pred)
	return out, len(items) - len(out)
}

// ResetAll maps fn over every item into a new slice.
func ResetAll[T any](items []T, fn func(T) T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

// CollectionStore is a PersistedState over a slice of items.
type CollectionStore[T Identifiable] struct {
	state *PersistedState[[]T]
}

// NewCollectionStore binds a collection to key, seeded by seed.
func NewCollectionStore[T Identifiable](key string, store KeyValueStore, seed func() []T, logger *zap.Logger, metrics *MetricsService) *CollectionStore[T] {
	return &CollectionStore[T]{state: NewPersistedState(key, store, seed, logger, metrics)}
}

// Key returns the storage key.
func (c *CollectionStore[T]) Key() string { return c.state.Key() }

// All returns a copy of the collection.
func (c *CollectionStore[T]) All(ctx context.Context) []T {
	return slices.Clone(c.state.Initialize(ctx))
}

// Mutate replaces the item matching id with fn(item) and returns it.
func (c *CollectionStore[T]) Mutate(ctx context.Context, id int64, fn func(T) T) (T, error) {
	var updated T
	_, err := c.state.Update(ctx, func(items []T) ([]T, error) {
		next, ok := Mutate(items, id, fn)
		if !ok {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "item not found")
		}
		idx := slices.IndexFunc(next, func(item T) bool { return item.ItemID() == id })
		updated = next[idx]
		return next, nil
	})
	return updated, err
}

// Remove deletes the item matching id.
func (c *CollectionStore[T]) Remove(ctx context.Context, id int64) error {
	_, err := c.state.Update(ctx, func(items []T) ([]T, error) {
		next, ok := Remove(items, id)
		if !ok {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "item not found")
		}
		return next, nil
	})
	return err
}

// RemoveWhere deletes every item matching pred and reports how many went.
func (c *CollectionStore[T]) RemoveWhere(ctx context.Context, pred func(T) bool) int {
	var removed int
	_, _ = c.state.Update(ctx, func(items []T) ([]T, error) {
		var next []T
		next, removed = RemoveWhere(items, pred)
		return next, nil
	})
	return removed
}

// ResetAll maps fn over the collection and returns the item count.
func (c *CollectionStore[T]) ResetAll(ctx context.Context, fn func(T) T) int {
	next, _ := c.state.Update(ctx, func(items []T) ([]T, error) {
		return ResetAll(items, fn), nil
	})
	return len(next)
}

// Prepend inserts item at the front. assign may adjust the item against the
// current collection (for example to pick a unique ID) before insertion.
func (c *CollectionStore[T]) Prepend(ctx context.Context, item T, assign func(T, []T) T) T {
	var inserted T
	_, _ = c.state.Update(ctx, func(items []T) ([]T, error) {
		if assign != nil {
			item = assign(item, items)
		}
		inserted = item
		return append([]T{item}, items...), nil
	})
	return inserted
}

// Replace overwrites the whole collection.
func (c *CollectionStore[T]) Replace(ctx context.Context, items []T) {
	_, _ = c.state.Update(ctx, func([]T) ([]T, error) {
		return slices.Clone(items), nil
	})
}
