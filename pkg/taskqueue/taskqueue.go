package taskqueue

import (
	"context"

	"golang.org/x/sync/semaphore"
)

const defaultWorkers = 5

// Job is one report-producing unit of work, it returns the generated file path.
type Job func(ctx context.Context) (string, error)

// Queue serializes report jobs against a fixed worker budget. Callers beyond
// the budget wait for a slot, they are not rejected.
type Queue struct {
	sem *semaphore.Weighted
}

func New(workers int) *Queue {
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Queue{sem: semaphore.NewWeighted(int64(workers))}
}

// Submit waits for an admission slot, runs the job on a worker goroutine and
// returns its result. The caller context only governs the wait for a slot, a
// dispatched job always runs to completion.
func (q *Queue) Submit(ctx context.Context, job Job) (string, error) {
	if err := q.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}

	type result struct {
		path string
		err  error
	}
	done := make(chan result, 1)
	go func() {
		defer q.sem.Release(1)
		path, err := job(context.Background())
		done <- result{path: path, err: err}
	}()

	rs := <-done
	return rs.path, rs.err
}
