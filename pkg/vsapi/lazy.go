package vsapi

import (
	"context"
)

// FetchFunc loads the full attribute set for the resource identified by key.
// Implementations issue the resource's listing request and scan it for the
// matching entry, returning NotFoundError when no entry matches.
type FetchFunc[T any] func(ctx context.Context, key string) (*T, error)

// loadState is the tagged state of a LazyResource.
type loadState int

const (
	stateUnloaded loadState = iota
	stateLoaded
	stateDead
)

// LazyResource is a handle to a remote entity constructed from just its
// identifying key. The full attribute set is fetched on first use, cached,
// and replaced only by Refresh.
//
// Instances are independent: two handles for the same key do not share cached
// state. A handle holds no lock; callers that share one across goroutines
// must serialize access themselves.
type LazyResource[T any] struct {
	key     string
	state   loadState
	value   *T
	fetch   FetchFunc[T]
	deadErr error
}

// NewLazyResource returns an unloaded handle. No I/O is performed.
func NewLazyResource[T any](key string, fetch FetchFunc[T]) *LazyResource[T] {
	return &LazyResource[T]{
		key:   key,
		fetch: fetch,
	}
}

// Key returns the identifying key. It never triggers a fetch.
func (r *LazyResource[T]) Key() string {
	return r.key
}

// Loaded reports whether the attribute set is cached.
func (r *LazyResource[T]) Loaded() bool {
	return r.state == stateLoaded
}

// ensureLoaded fetches the attribute set if it is not cached yet. Every
// accessor that needs data goes through here, so the state checks live in
// one place.
func (r *LazyResource[T]) ensureLoaded(ctx context.Context) error {
	switch r.state {
	case stateLoaded:
		return nil
	case stateDead:
		return r.deadErr
	}

	value, err := r.fetch(ctx, r.key)
	if err != nil {
		// A miss on first load leaves the handle unloaded: the entity may be
		// created later and a subsequent access can then succeed.
		return err
	}

	r.value = value
	r.state = stateLoaded

	return nil
}

// Value returns the cached attribute set, fetching it first if needed.
func (r *LazyResource[T]) Value(ctx context.Context) (*T, error) {
	err := r.ensureLoaded(ctx)
	if err != nil {
		return nil, err
	}

	return r.value, nil
}

// Eager forces the fetch if the handle is unloaded. It is idempotent and
// returns the handle itself to allow chaining.
func (r *LazyResource[T]) Eager(ctx context.Context) (*LazyResource[T], error) {
	err := r.ensureLoaded(ctx)
	if err != nil {
		return nil, err
	}

	return r, nil
}

// Refresh unconditionally re-runs the fetch, replacing the cached attributes.
// A failed refresh leaves the previous snapshot intact, with one exception:
// when the remote entity no longer exists the handle becomes dead, and every
// later operation on it returns the recorded NotFoundError.
func (r *LazyResource[T]) Refresh(ctx context.Context) error {
	if r.state == stateDead {
		return r.deadErr
	}

	value, err := r.fetch(ctx, r.key)
	if err != nil {
		if IsNotFound(err) {
			r.state = stateDead
			r.value = nil
			r.deadErr = err
		}

		return err
	}

	r.value = value
	r.state = stateLoaded

	return nil
}
