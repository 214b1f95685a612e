package view

import (
	"context"
	"sync"
)

// Phase is the observable state of a collection load.
type Phase int

const (
	// Idle means no load has been issued yet.
	Idle Phase = iota
	// Pending means a load is in flight.
	Pending
	// Ready means the latest load succeeded and rows are displayable.
	Ready
	// Failed means the latest load failed; rows are the empty neutral state.
	Failed
)

// FetchFunc loads a collection from the API with normalized filters.
type FetchFunc[T any] func(ctx context.Context, filters map[string]string) ([]T, error)

// Collection is the per-screen assembly of fetch + filter + sort that
// produces the rows a screen displays.
//
// Every load is tagged with an increasing sequence number; a completion
// older than the latest issued load is discarded, so the most recently
// issued request always wins regardless of completion order. A disposed
// collection drops all late completions instead of mutating dead state.
type Collection[T any] struct {
	fetch   FetchFunc[T]
	filters *FilterSet
	sorts   *Engine
	value   ValueFunc[T]

	mu       sync.Mutex
	seq      uint64
	phase    Phase
	rows     []T
	err      error
	disposed bool
}

func NewCollection[T any](fetch FetchFunc[T], value ValueFunc[T], filterFields ...string) *Collection[T] {
	return &Collection[T]{
		fetch:   fetch,
		filters: NewFilterSet(filterFields...),
		sorts:   NewEngine(),
		value:   value,
	}
}

// Filters exposes the raw filter state for the owning screen.
func (c *Collection[T]) Filters() *FilterSet { return c.filters }

// Sorts exposes the group-scoped sort engine for the owning screen.
func (c *Collection[T]) Sorts() *Engine { return c.sorts }

// Load fetches the collection with the current normalized filters. The
// error is also retained in the collection state for rendering; a failed
// load leaves the rows empty rather than keeping stale data.
func (c *Collection[T]) Load(ctx context.Context) error {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return nil
	}
	c.seq++
	seq := c.seq
	c.phase = Pending
	filters := c.filters.Normalize()
	c.mu.Unlock()

	rows, err := c.fetch(ctx, filters)
	c.complete(seq, rows, err)
	return err
}

// complete applies a load result unless it is stale or the collection has
// been disposed.
func (c *Collection[T]) complete(seq uint64, rows []T, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disposed || seq != c.seq {
		return
	}
	if err != nil {
		c.phase = Failed
		c.rows = nil
		c.err = err
		return
	}
	c.phase = Ready
	c.rows = rows
	c.err = nil
}

// Rows returns the current rows ordered per the group's sort state.
func (c *Collection[T]) Rows(group string) []T {
	c.mu.Lock()
	rows := c.rows
	c.mu.Unlock()
	return Apply(c.sorts, group, rows, c.value)
}

// Phase reports the state of the latest load.
func (c *Collection[T]) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Err returns the error of the latest load, if it failed.
func (c *Collection[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Toggle flips the sort state of the given group.
func (c *Collection[T]) Toggle(group, key string) {
	c.sorts.Toggle(group, key)
}

// Reset drops rows and error back to the empty neutral state without
// touching filters or sort state.
func (c *Collection[T]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rows = nil
	c.err = nil
	c.phase = Idle
}

// Dispose marks the collection as dead; any in-flight completion becomes
// a no-op. The screen calls this when it unmounts.
func (c *Collection[T]) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disposed = true
}
