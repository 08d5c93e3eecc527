// Package fanout provides a generic, bounded-concurrency fan-out helper for
// application-layer orchestration. It runs a function across a slice of items
// using at most a fixed number of goroutines, preserving input order in
// results. Failures are recorded per item; one failing item never cancels
// the others.
package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for each item in items using at most maxWorkers concurrent
// goroutines. Results are returned in the same order as the input items.
//
// An item whose turn comes after ctx is canceled records ctx.Err() and fn
// is not called for it. Items already running are left to finish; fn is
// responsible for observing ctx itself.
//
// Run blocks until all items complete. If items is empty, it returns an
// empty non-nil slice immediately. maxWorkers below 1 is treated as 1.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	if len(items) == 0 {
		return []Result[R]{}
	}

	results := make([]Result[R], len(items))

	var g errgroup.Group
	g.SetLimit(max(maxWorkers, 1))

	for i, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result[R]{Err: err}
				return nil
			}
			val, err := fn(ctx, item)
			results[i] = Result[R]{Value: val, Err: err}
			return nil
		})
	}

	// Every closure returns nil; per-item errors live in results.
	_ = g.Wait()
	return results
}

// Errors returns the non-nil errors of results in input order.
func Errors[R any](results []Result[R]) []error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return errs
}
