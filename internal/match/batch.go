package match

import (
	"context"
	"errors"
	"sync"
)

// RunBatch plays n games on up to workers goroutines. newRunner is called
// once per game index and must return an independent Runner. Results keep
// game order; errors from individual games are joined.
func RunBatch(ctx context.Context, n, workers int, newRunner func(i int) *Runner) ([]Result, error) {
	if n <= 0 {
		return nil, nil
	}
	if workers <= 0 {
		workers = 1
	}
	workers = min(workers, n)

	results := make([]Result, n)
	errs := make([]error, n)
	jobs := make(chan int)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i], errs[i] = newRunner(i).Run(ctx)
			}
		}()
	}

feed:
	for i := range n {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return results, err
	}
	return results, ctx.Err()
}
