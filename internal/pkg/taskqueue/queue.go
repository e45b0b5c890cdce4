// Package taskqueue provides a single-consumer "run later" queue.
package taskqueue

import (
	"context"
	"fmt"
	"sync"

	"walletstate/internal/app/port"
)

// Queue defers tasks to a single drain lane. Defer never blocks and never runs the task itself.
type Queue struct {
	mu      sync.Mutex
	pending []func()
	signal  chan struct{}
	logger  port.Logger
	onDefer func()
}

// New creates an empty queue. onDefer, if non-nil, is called for every deferred task.
func New(logger port.Logger, onDefer func()) *Queue {
	return &Queue{
		signal:  make(chan struct{}, 1),
		logger:  logger,
		onDefer: onDefer,
	}
}

// Defer enqueues task for the next drain.
func (q *Queue) Defer(task func()) {
	if task == nil {
		return
	}
	q.mu.Lock()
	q.pending = append(q.pending, task)
	q.mu.Unlock()

	if q.onDefer != nil {
		q.onDefer()
	}
	select {
	case q.signal <- struct{}{}:
	default:
	}
}

// Pending returns the number of tasks waiting to run.
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Drain runs every pending task, including tasks deferred while draining, and returns how many ran.
func (q *Queue) Drain() int {
	ran := 0
	for {
		q.mu.Lock()
		batch := q.pending
		q.pending = nil
		q.mu.Unlock()

		if len(batch) == 0 {
			return ran
		}
		for _, task := range batch {
			q.run(task)
			ran++
		}
	}
}

// Run drains the queue whenever tasks arrive until ctx is done.
func (q *Queue) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-q.signal:
			q.Drain()
		}
	}
}

func (q *Queue) run(task func()) {
	defer func() {
		if r := recover(); r != nil {
			q.logger.Error("Deferred task panicked", "panic", fmt.Sprint(r))
		}
	}()
	task()
}

var _ port.Deferrer = (*Queue)(nil)
