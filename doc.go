// Package queueset provides a generic FIFO queue that holds each item at most
// once.
//
// Items are identified by a key computed with a caller-supplied fingerprint
// function. Enqueue skips values whose key is already queued and keeps the
// value that was stored first; once an item is removed (via Dequeue, Remove
// or RemoveBatch) it may be enqueued again. Typical uses are work queues, BFS
// frontiers and pipelines where the same task is scheduled repeatedly.
//
// Construct a queue-set with New or NewWithCapacity, passing Identity, JSON,
// String or any func(T) K. A QueueSet is not safe for concurrent use; see the
// blockingqueue subpackage for a locked, blocking variant.
package queueset
