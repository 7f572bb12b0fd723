// Package task runs fire-and-forget side effects on a background worker.
// Callers hand off a job and return immediately; failures are logged, never
// surfaced to the request that submitted them.
package task

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

const defaultJobTimeout = 15 * time.Second

type job struct {
	name string
	fn   func(context.Context) error
}

// Queue is a bounded background executor with a single worker, preserving
// submission order. When the queue is saturated new jobs are dropped with a
// warning rather than blocking the request path.
type Queue struct {
	jobs    chan job
	timeout time.Duration
	wg      sync.WaitGroup
	dropped atomic.Int64

	// mu orders Submit's send against Close's channel close.
	mu     sync.Mutex
	closed bool
}

// NewQueue creates a queue with the given capacity and per-job timeout.
func NewQueue(size int, timeout time.Duration) *Queue {
	if size <= 0 {
		size = 64
	}
	if timeout <= 0 {
		timeout = defaultJobTimeout
	}

	q := &Queue{
		jobs:    make(chan job, size),
		timeout: timeout,
	}
	q.wg.Add(1)
	go q.run()
	return q
}

func (q *Queue) run() {
	defer q.wg.Done()
	for j := range q.jobs {
		ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
		if err := j.fn(ctx); err != nil {
			slog.Error("Background task failed", "task", j.name, "error", err)
		}
		cancel()
	}
}

// Submit enqueues a job without blocking. It returns false when the job was
// dropped because the queue is full or closed.
func (q *Queue) Submit(name string, fn func(context.Context) error) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return false
	}
	select {
	case q.jobs <- job{name: name, fn: fn}:
		return true
	default:
		n := q.dropped.Add(1)
		slog.Warn("Background task dropped, queue full", "task", name, "dropped_total", n)
		return false
	}
}

// Dropped returns the number of jobs dropped since startup.
func (q *Queue) Dropped() int64 {
	return q.dropped.Load()
}

// Close stops accepting jobs and waits for queued jobs to drain. Safe to
// call more than once and concurrently with Submit.
func (q *Queue) Close() {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.jobs)
	}
	q.mu.Unlock()
	q.wg.Wait()
}
