package queueset

import (
	"iter"
)

// shrinkThreshold is the backing-array capacity above which a mostly drained
// order slice is reallocated.
const shrinkThreshold = 256

// QueueSet is a generic FIFO queue in which every key appears at most once.
// The key of a value is computed by the fingerprint function given to New;
// two values with equal keys are the same item. Enqueue ignores values whose
// key is already present, and the value stored first is kept. After an item
// is removed (via Dequeue, Remove or RemoveBatch) it can be enqueued again.
//
// QueueSet is not safe for concurrent use. Guard it with a mutex or use the
// blockingqueue package. The zero value is not ready for use; construct via
// New or NewWithCapacity.
type QueueSet[K comparable, T any] struct {
	fingerprint func(T) K
	values      map[K]T
	order       []K
}

// New creates an empty queue-set that identifies values by fingerprint.
//
// fingerprint must be deterministic and must not be nil. Panics raised by it
// propagate unchanged to the caller of the operation that invoked it.
func New[K comparable, T any](fingerprint func(T) K) *QueueSet[K, T] {
	return NewWithCapacity(fingerprint, 0)
}

// NewWithCapacity creates an empty queue-set with room for capacity items.
// Capacity preallocates internal storage; behavior is otherwise identical to
// New.
func NewWithCapacity[K comparable, T any](fingerprint func(T) K, capacity int) *QueueSet[K, T] {
	if fingerprint == nil {
		panic("queueset: nil fingerprint function")
	}
	if capacity < 0 {
		capacity = 0
	}
	return &QueueSet[K, T]{
		fingerprint: fingerprint,
		values:      make(map[K]T, capacity),
		order:       make([]K, 0, capacity),
	}
}

// Enqueue appends v to the tail unless an item with the same key is present.
//
// Returns true if v was added. A rejected v does not replace the stored value.
// Amortized complexity: O(1).
func (q *QueueSet[K, T]) Enqueue(v T) bool {
	key := q.fingerprint(v)
	if _, exists := q.values[key]; exists {
		return false
	}
	q.values[key] = v
	q.order = append(q.order, key)
	return true
}

// EnqueueMany enqueues items in order and returns the count actually added.
func (q *QueueSet[K, T]) EnqueueMany(items ...T) int {
	added := 0
	for _, v := range items {
		if q.Enqueue(v) {
			added++
		}
	}
	return added
}

// Dequeue removes and returns the head value.
//
// The second result is false when the queue is empty. Amortized complexity: O(1).
func (q *QueueSet[K, T]) Dequeue() (T, bool) {
	if len(q.order) == 0 {
		var zero T
		return zero, false
	}
	return q.deleteItem(0), true
}

// Peek returns the head value without removing it.
// The second result is false when the queue is empty.
func (q *QueueSet[K, T]) Peek() (T, bool) {
	if len(q.order) == 0 {
		var zero T
		return zero, false
	}
	return q.values[q.order[0]], true
}

// Contains reports whether an item with the same key as v is present. Only
// keys are compared; the stored value may differ from v.
func (q *QueueSet[K, T]) Contains(v T) bool {
	_, ok := q.values[q.fingerprint(v)]
	return ok
}

// Get returns the stored value whose key equals the key of v.
func (q *QueueSet[K, T]) Get(v T) (T, bool) {
	stored, ok := q.values[q.fingerprint(v)]
	return stored, ok
}

// Len returns the number of items currently queued.
func (q *QueueSet[K, T]) Len() int {
	return len(q.order)
}

// IsEmpty reports whether the queue is empty.
func (q *QueueSet[K, T]) IsEmpty() bool {
	return len(q.order) == 0
}

// ToSlice returns a copy of the queue's values in FIFO order.
// The returned slice is independent of the queue.
func (q *QueueSet[K, T]) ToSlice() []T {
	out := make([]T, len(q.order))
	for i, key := range q.order {
		out[i] = q.values[key]
	}
	return out
}

// All returns an iterator over positions and values from head to tail.
// The queue must not be modified while iterating.
func (q *QueueSet[K, T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, key := range q.order {
			if !yield(i, q.values[key]) {
				return
			}
		}
	}
}

// Find returns, in queue order, every value for which pred returns true.
// pred receives the value, its position from the head and the queue itself;
// it must not modify the queue.
func (q *QueueSet[K, T]) Find(pred func(v T, i int, qs *QueueSet[K, T]) bool) []T {
	var out []T
	for i, key := range q.order {
		v := q.values[key]
		if pred(v, i, q) {
			out = append(out, v)
		}
	}
	return out
}

// Remove deletes the item with the same key as v if present.
// Returns true if removed. Complexity: O(n).
func (q *QueueSet[K, T]) Remove(v T) bool {
	key := q.fingerprint(v)
	if _, exists := q.values[key]; !exists {
		return false
	}
	for i, k := range q.order {
		if k == key {
			q.deleteItem(i)
			return true
		}
	}
	return false
}

// RemoveBatch deletes every item whose key matches the key of any value in
// items and returns the removed stored values in queue order (head first).
// Repeated or absent items are ignored. All keys are computed before anything
// is removed. Complexity: O(n + len(items)).
func (q *QueueSet[K, T]) RemoveBatch(items ...T) []T {
	drop := make(map[K]struct{}, len(items))
	for _, v := range items {
		key := q.fingerprint(v)
		if _, exists := q.values[key]; exists {
			drop[key] = struct{}{}
		}
	}
	if len(drop) == 0 {
		return nil
	}

	removed := make([]T, 0, len(drop))
	// Compact survivors in place; the write index never passes the read index.
	kept := q.order[:0]
	for _, key := range q.order {
		if _, hit := drop[key]; hit {
			removed = append(removed, q.values[key])
			delete(q.values, key)
			continue
		}
		kept = append(kept, key)
	}
	clear(q.order[len(kept):])
	q.order = kept
	return removed
}

// Clear removes all items.
func (q *QueueSet[K, T]) Clear() {
	clear(q.order)
	q.order = q.order[:0]
	clear(q.values)
}

// deleteItem removes the item at position i from both the order and the value
// store and returns its value. i must be in range.
func (q *QueueSet[K, T]) deleteItem(i int) T {
	key := q.order[i]
	v := q.values[key]
	delete(q.values, key)

	var zero K
	if i == 0 {
		// Reslice instead of shifting; zero the slot so the key can be collected.
		q.order[0] = zero
		q.order = q.order[1:]
		q.shrink()
		return v
	}
	last := len(q.order) - 1
	copy(q.order[i:], q.order[i+1:])
	q.order[last] = zero
	q.order = q.order[:last]
	return v
}

// shrink reallocates the order slice once it occupies a small fraction of a
// large backing array, releasing the drained head.
func (q *QueueSet[K, T]) shrink() {
	if cap(q.order) > shrinkThreshold && len(q.order) < cap(q.order)/4 {
		order := make([]K, len(q.order))
		copy(order, q.order)
		q.order = order
	}
}
