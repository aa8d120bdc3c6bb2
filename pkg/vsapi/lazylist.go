package vsapi

import (
	"context"
	"fmt"
)

// ProducerFunc performs the deferred listing call for a LazyList.
type ProducerFunc[T any] func(ctx context.Context) ([]T, error)

// LazyList wraps a listing call whose execution is deferred until the list is
// actually consumed. The producer runs at most once per instance; the result
// (or the failure) is recorded and served from memory afterwards. A fresh
// listing requires requesting a new LazyList from the owning resource client.
type LazyList[T any] struct {
	produce      ProducerFunc[T]
	items        []T
	materialized bool
	err          error
}

// NewLazyList returns an unmaterialized list. No I/O is performed.
func NewLazyList[T any](produce ProducerFunc[T]) *LazyList[T] {
	return &LazyList[T]{
		produce: produce,
	}
}

// Materialized reports whether the producer has run successfully.
func (l *LazyList[T]) Materialized() bool {
	return l.materialized
}

// materialize runs the producer on first consumption. A producer failure is
// terminal for this instance: the error is recorded and re-returned without
// invoking the producer again.
func (l *LazyList[T]) materialize(ctx context.Context) error {
	if l.materialized || l.err != nil {
		return l.err
	}

	items, err := l.produce(ctx)
	if err != nil {
		l.err = err

		return err
	}

	// An empty result is a successful materialization, not an error.
	l.items = items
	l.materialized = true

	return nil
}

// Eager forces materialization and returns the list itself for chaining.
func (l *LazyList[T]) Eager(ctx context.Context) (*LazyList[T], error) {
	err := l.materialize(ctx)
	if err != nil {
		return nil, err
	}

	return l, nil
}

// All returns every item, materializing first if needed.
func (l *LazyList[T]) All(ctx context.Context) ([]T, error) {
	err := l.materialize(ctx)
	if err != nil {
		return nil, err
	}

	return l.items, nil
}

// First returns the first item, or ErrNoItems when the listing is empty.
func (l *LazyList[T]) First(ctx context.Context) (*T, error) {
	err := l.materialize(ctx)
	if err != nil {
		return nil, err
	}

	if len(l.items) == 0 {
		return nil, ErrNoItems
	}

	return &l.items[0], nil
}

// At returns the item at index i.
func (l *LazyList[T]) At(ctx context.Context, i int) (*T, error) {
	err := l.materialize(ctx)
	if err != nil {
		return nil, err
	}

	if i < 0 || i >= len(l.items) {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(l.items))
	}

	return &l.items[i], nil
}

// Len returns the number of items, materializing first if needed.
func (l *LazyList[T]) Len(ctx context.Context) (int, error) {
	err := l.materialize(ctx)
	if err != nil {
		return 0, err
	}

	return len(l.items), nil
}

// Each calls fn for every item in order, stopping at the first error fn
// returns.
func (l *LazyList[T]) Each(ctx context.Context, fn func(item T) error) error {
	err := l.materialize(ctx)
	if err != nil {
		return err
	}

	for _, item := range l.items {
		err := fn(item)
		if err != nil {
			return err
		}
	}

	return nil
}
