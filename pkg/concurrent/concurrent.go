package concurrent

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Each runs fn for every element of items with at most limit goroutines in
// flight (limit <= 0 means one per element). Each element is handed to
// exactly one goroutine. It returns the first error; the context passed to
// fn is cancelled once any call fails. A context that is already done when
// Each is called starts no work; cancellation after that only reaches fn
// through its ctx.
func Each[T any](ctx context.Context, items []T, limit int, fn func(ctx context.Context, i int, item T) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, item := range items {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(gctx, i, item)
		})
	}
	return g.Wait()
}
