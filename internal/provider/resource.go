package provider

import (
	"context"
	"sync"
)

// FetchFunc loads the payload for a locator.
type FetchFunc[T any] func(ctx context.Context, locator string) (T, error)

// Resource is a long-lived fetch target whose locator changes over time,
// such as the city shown on a dashboard. Each Load cancels the fetch in
// flight and results of superseded fetches are dropped, so the state always
// reflects the most recent request.
type Resource[T any] struct {
	fetch   FetchFunc[T]
	message string

	mu     sync.Mutex
	state  State[T]
	gen    uint64
	cancel context.CancelFunc
	done   chan struct{}
	closed bool
}

func NewResource[T any](fetch FetchFunc[T], message string) *Resource[T] {
	return &Resource[T]{fetch: fetch, message: message}
}

// Load starts fetching locator in the background and moves the resource to
// Loading. The previous payload stays visible until the fetch settles.
func (r *Resource[T]) Load(locator string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}

	if r.cancel != nil {
		r.cancel()
	}
	r.gen++
	gen := r.gen
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	r.cancel = cancel
	r.done = done
	r.state = State[T]{Status: StatusLoading, Locator: locator, Data: r.state.Data}

	go func() {
		defer close(done)
		defer cancel()
		data, err := r.fetch(ctx, locator)
		r.settle(gen, data, err)
	}()
}

func (r *Resource[T]) settle(gen uint64, data T, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if gen != r.gen {
		return
	}
	r.cancel = nil
	if err != nil {
		// An error clears the previous payload.
		r.state = State[T]{Status: StatusError, Locator: r.state.Locator, Message: r.message, Err: err}
		return
	}
	r.state = State[T]{Status: StatusSuccess, Locator: r.state.Locator, Data: data}
}

// Snapshot returns the current state without blocking.
func (r *Resource[T]) Snapshot() State[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Wait blocks until the resource leaves Loading or ctx is done, and returns
// the state at that point.
func (r *Resource[T]) Wait(ctx context.Context) State[T] {
	for {
		r.mu.Lock()
		st, done := r.state, r.done
		r.mu.Unlock()

		if st.Status != StatusLoading || done == nil {
			return st
		}
		select {
		case <-done:
			// Either settled or superseded; re-read the state.
		case <-ctx.Done():
			return r.Snapshot()
		}
	}
}

// Close cancels any fetch in flight. Later calls to Load are ignored.
func (r *Resource[T]) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.closed = true
	r.gen++
	r.done = nil
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}
