// Package fanout runs a function across a slice of items on a bounded number
// of goroutines and returns the outcomes in input order. The readiness probe
// uses it to run dependency checks side by side so one slow dependency does
// not delay the others.
package fanout

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// PanicError is recorded for an item whose fn panicked.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Option configures a Run.
type Option func(*options)

type options struct {
	itemTimeout time.Duration
}

// WithItemTimeout gives each fn call its own deadline, started once the item
// holds a slot so time spent waiting does not count against it. Zero leaves
// items bounded only by ctx.
func WithItemTimeout(d time.Duration) Option {
	return func(o *options) { o.itemTimeout = d }
}

// Run executes fn for each item using at most maxWorkers concurrent
// goroutines. A non-positive maxWorkers runs every item at once. Results are
// returned in the same order as items.
//
// If ctx is canceled while a goroutine is waiting for a slot, that item
// records ctx.Err() and fn is not called for it. Items that already hold a
// slot run to completion; fn is expected to observe ctx itself. A panic in
// fn is recorded as that item's *PanicError and does not affect the others.
//
// Run blocks until all goroutines complete. An empty items slice returns an
// empty non-nil slice.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error), opts ...Option) []Result[R] {
	if len(items) == 0 {
		return []Result[R]{}
	}
	if maxWorkers <= 0 || maxWorkers > len(items) {
		maxWorkers = len(items)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	results := make([]Result[R], len(items))
	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Add(1)
		go func(idx int, it T) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[idx] = Result[R]{Err: ctx.Err()}
				return
			}

			results[idx] = runOne(ctx, o, it, fn)
		}(i, item)
	}

	wg.Wait()
	return results
}

func runOne[T, R any](ctx context.Context, o options, it T, fn func(context.Context, T) (R, error)) (res Result[R]) {
	if o.itemTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.itemTimeout)
		defer cancel()
	}

	defer func() {
		if v := recover(); v != nil {
			res = Result[R]{Err: &PanicError{Value: v}}
		}
	}()

	val, err := fn(ctx, it)
	return Result[R]{Value: val, Err: err}
}
