package blockingqueue

import (
	"context"
	"errors"
	"sync"

	base "github.com/xyhelper/queueset"
)

// Queue is a blocking, concurrency-safe queue-set built on queueset. Put skips
// values whose key is already present; after removal the value can be added
// again.
//
// All methods are safe for concurrent use by multiple goroutines.
type Queue[K comparable, T any] struct {
	mu sync.Mutex
	cv *sync.Cond
	q  *base.QueueSet[K, T]
}

// New creates a new blocking queue-set keyed by fingerprint.
func New[K comparable, T any](fingerprint func(T) K) *Queue[K, T] {
	b := &Queue[K, T]{q: base.New(fingerprint)}
	b.cv = sync.NewCond(&b.mu)
	return b
}

// NewWithCapacity creates a new blocking queue-set with initial capacity.
func NewWithCapacity[K comparable, T any](fingerprint func(T) K, capacity int) *Queue[K, T] {
	b := &Queue[K, T]{q: base.NewWithCapacity(fingerprint, capacity)}
	b.cv = sync.NewCond(&b.mu)
	return b
}

// Put appends v to the tail. Returns true if the value was added, or false
// when an item with the same key is already present. Wakes waiters only when
// an element is actually added.
func (b *Queue[K, T]) Put(v T) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	added := b.q.Enqueue(v)
	if added {
		b.cv.Broadcast()
	}
	return added
}

// PutMany enqueues items and returns the count actually added.
// Broadcasts once if any element is added.
func (b *Queue[K, T]) PutMany(items ...T) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := b.q.EnqueueMany(items...)
	if n > 0 {
		b.cv.Broadcast()
	}
	return n
}

// TryTake removes and returns the head value without blocking.
// ok is false if the queue is empty.
func (b *Queue[K, T]) TryTake() (v T, ok bool) {
	b.mu.Lock()
	v, ok = b.q.Dequeue()
	b.mu.Unlock()
	return
}

// Take blocks until an element is available or ctx is done. On success returns
// (value, nil). On cancellation returns the zero value and ctx.Err().
func (b *Queue[K, T]) Take(ctx context.Context) (T, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	b.mu.Lock()
	if v, ok := b.q.Dequeue(); ok {
		b.mu.Unlock()
		return v, nil
	}
	// A watcher broadcasts on cancellation so Wait returns.
	stop := context.AfterFunc(ctx, func() {
		b.mu.Lock()
		b.cv.Broadcast()
		b.mu.Unlock()
	})
	defer stop()
	for {
		if err := ctx.Err(); err != nil {
			b.mu.Unlock()
			var zero T
			return zero, err
		}
		b.cv.Wait() // releases and re-acquires b.mu
		if v, ok := b.q.Dequeue(); ok {
			b.mu.Unlock()
			return v, nil
		}
	}
}

// Peek returns the head value without removing it. ok is false when empty.
func (b *Queue[K, T]) Peek() (v T, ok bool) {
	b.mu.Lock()
	v, ok = b.q.Peek()
	b.mu.Unlock()
	return
}

// Len returns the number of elements currently queued.
func (b *Queue[K, T]) Len() int {
	b.mu.Lock()
	n := b.q.Len()
	b.mu.Unlock()
	return n
}

// IsEmpty reports whether the queue is empty.
func (b *Queue[K, T]) IsEmpty() bool { return b.Len() == 0 }

// Contains reports whether an item with the same key as v is queued.
func (b *Queue[K, T]) Contains(v T) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.q.Contains(v)
}

// Remove deletes the item with the same key as v if present.
// Returns true if removed.
func (b *Queue[K, T]) Remove(v T) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.q.Remove(v)
}

// RemoveBatch deletes every item matching the key of any value in items and
// returns the removed values in queue order.
func (b *Queue[K, T]) RemoveBatch(items ...T) []T {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.q.RemoveBatch(items...)
}

// Find returns, in queue order, the values for which pred returns true. pred
// runs with the lock held and must not call methods on b.
func (b *Queue[K, T]) Find(pred func(v T, i int) bool) []T {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.q.Find(func(v T, i int, _ *base.QueueSet[K, T]) bool {
		return pred(v, i)
	})
}

// ToSlice returns a copy of the queued values in FIFO order.
func (b *Queue[K, T]) ToSlice() []T {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.q.ToSlice()
}

// Clear removes all elements from the queue.
func (b *Queue[K, T]) Clear() {
	b.mu.Lock()
	b.q.Clear()
	b.mu.Unlock()
}

// ErrCanceled is returned by Take when the context is canceled.
var ErrCanceled = context.Canceled

// ErrDeadlineExceeded is returned by Take when the context deadline expires.
var ErrDeadlineExceeded = context.DeadlineExceeded

// IsContextError reports whether err equals context.Canceled or context.DeadlineExceeded.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
