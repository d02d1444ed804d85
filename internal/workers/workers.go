package workers

import (
	"context"
	"sync"
)

// DefaultSize is the pool size used when a non-positive size is requested.
const DefaultSize = 4

// Pool runs jobs on at most size goroutines.
type Pool struct {
	size int
}

// NewPool returns a Pool running at most size jobs at once.
func NewPool(size int) *Pool {
	if size <= 0 {
		size = DefaultSize
	}
	return &Pool{size: size}
}

// Size returns the maximum number of concurrently running jobs.
func (p *Pool) Size() int {
	return p.size
}

// Run executes every job and returns their errors index-aligned with jobs.
// A job still queued when ctx is done is not started; its slot holds
// ctx.Err(). Run returns once all started jobs have finished.
func (p *Pool) Run(ctx context.Context, jobs []Job) []error {
	errs := make([]error, len(jobs))
	queue := make(chan int)

	var wg sync.WaitGroup
	for range min(p.size, len(jobs)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range queue {
				errs[i] = jobs[i](ctx)
			}
		}()
	}

	for i := range jobs {
		if ctx.Err() != nil {
			errs[i] = ctx.Err()
			continue
		}
		select {
		case queue <- i:
		case <-ctx.Done():
			errs[i] = ctx.Err()
		}
	}
	close(queue)
	wg.Wait()

	return errs
}
