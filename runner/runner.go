package runner

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Runnable represents a component that can be run with a context.
type Runnable interface {
	Run(ctx context.Context) error
}

// RunnableFunc adapts a function to the Runnable interface.
type RunnableFunc func(ctx context.Context) error

func (f RunnableFunc) Run(ctx context.Context) error {
	return f(ctx)
}

// RunAll runs all the provided runnables concurrently and waits for all of them to finish.
//
// This method is blocking and will return the first error returned by a runnable, the
// context given to the others is then cancelled.
func RunAll(parentCtx context.Context, runnables ...Runnable) error {
	return RunAllLimited(parentCtx, 0, runnables...)
}

// RunAllLimited is RunAll with at most limit runnables running at the same time.
// A limit of zero or less means no limit.
func RunAllLimited(parentCtx context.Context, limit int, runnables ...Runnable) error {
	group, ctx := errgroup.WithContext(parentCtx)
	if limit > 0 {
		group.SetLimit(limit)
	}

	for _, runnable := range runnables {
		group.Go(func() error {
			return runnable.Run(ctx)
		})
	}

	return group.Wait()
}
