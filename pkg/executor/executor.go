// Package executor runs a set of independent calls with bounded concurrency and a minimum
// spacing between call starts.
package executor

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

type Options struct {
	// MaxConcurrent bounds the calls in flight; values below 1 mean 1.
	MaxConcurrent int
	// CallDelay is the minimum time between two call starts; zero disables spacing.
	CallDelay time.Duration
	// OnProgress is called after each completed item.
	OnProgress func(completed, total int)
}

type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for every item and returns the results in input order. An item error never
// stops the other items; a cancelled context marks the items that did not start with
// ctx.Err().
func Run[T, R any](ctx context.Context, items []T, fn func(ctx context.Context, item T) (R, error), opts Options) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	limit := opts.MaxConcurrent
	if limit < 1 {
		limit = 1
	}

	var limiter *rate.Limiter
	if opts.CallDelay > 0 {
		limiter = rate.NewLimiter(rate.Every(opts.CallDelay), 1)
	}

	var (
		mu        sync.Mutex
		completed int
	)

	var g errgroup.Group
	g.SetLimit(limit)

	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			if limiter != nil {
				if err := limiter.Wait(ctx); err != nil {
					results[i].Err = err
					return nil
				}
			} else if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}

			value, err := fn(ctx, item)
			results[i] = Result[R]{Value: value, Err: err}

			if opts.OnProgress != nil {
				mu.Lock()
				completed++
				done := completed
				opts.OnProgress(done, len(items))
				mu.Unlock()
			}
			return nil
		})
	}

	_ = g.Wait()

	return results
}
