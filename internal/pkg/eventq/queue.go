// Package eventq provides an unbounded, ordered, multi-producer /
// single-consumer in-process queue.
//
// Capacity is unbounded: Publish never blocks and never fails, so a slow or
// stalled consumer grows memory without limit. That trade-off is accepted
// here and surfaced through Len (exported as a gauge by the notifier) instead
// of being bounded in-band.
package eventq

import (
	"context"
	"sync"
)

// Queue is an unbounded FIFO channel. The zero value is not usable; use New.
// Publish may be called from any number of goroutines; Dequeue and TryDequeue
// are intended for a single consumer.
type Queue[T any] struct {
	mu    sync.Mutex
	items []T

	// notify carries at most one pending wakeup for the consumer.
	notify chan struct{}
}

func New[T any]() *Queue[T] {
	return &Queue[T]{
		notify: make(chan struct{}, 1),
	}
}

// Publish appends v to the queue and returns once it is enqueued.
// It never blocks on the consumer.
func (q *Queue[T]) Publish(v T) {
	q.mu.Lock()
	q.items = append(q.items, v)
	q.mu.Unlock()

	select {
	case q.notify <- struct{}{}:
	default:
	}
}

// Dequeue removes and returns the oldest item, blocking until one is
// available or ctx is done. Items are returned in strict publish order.
func (q *Queue[T]) Dequeue(ctx context.Context) (T, error) {
	for {
		if v, ok := q.TryDequeue(); ok {
			return v, nil
		}

		select {
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		case <-q.notify:
		}
	}
}

// TryDequeue removes and returns the oldest item without blocking.
func (q *Queue[T]) TryDequeue() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		var zero T
		return zero, false
	}

	v := q.items[0]
	// Shift rather than reslice so consumed items can be collected.
	copy(q.items, q.items[1:])
	q.items[len(q.items)-1] = *new(T)
	q.items = q.items[:len(q.items)-1]
	return v, true
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
