package controller

import "context"

// ListCache holds the last successfully fetched collection for one entity
// type. It is a read-through view: always replaced wholesale, never
// patched in place.
type ListCache[T any] struct {
	records []T
	loading bool
}

// NewListCache creates an empty cache.
func NewListCache[T any]() *ListCache[T] {
	return &ListCache[T]{records: []T{}}
}

// Records returns the cached collection.
func (c *ListCache[T]) Records() []T { return c.records }

// Loading reports whether a refresh is in progress. Advisory UI state
// only, not a lock.
func (c *ListCache[T]) Loading() bool { return c.loading }

// Refresh replaces the whole collection with the result of list. On
// failure the cache empties rather than keeping stale rows. The loading
// flag clears on every path out of here, including panics.
func (c *ListCache[T]) Refresh(ctx context.Context, list func(context.Context) ([]T, error)) error {
	c.loading = true
	defer func() { c.loading = false }()

	records, err := list(ctx)
	if err != nil {
		c.records = []T{}

		return err
	}

	c.records = records

	return nil
}
