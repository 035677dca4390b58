package queueset

// Concurrent Use
//
// QueueSet performs no locking. Confine it to one goroutine, guard it with a
// mutex, or use the blockingqueue subpackage, which wraps a QueueSet with a
// mutex and a sync.Cond and adds a context-aware Take.
//
// Notes for hand-rolled wrappers:
//   - Broadcast only when Enqueue actually adds a value. Duplicates are
//     ignored and should not wake waiters.
//   - Use the "wait in a loop" pattern to handle spurious wakeups.
//   - Hold the lock across multi-step sequences such as Contains followed by
//     Enqueue; each method call is only consistent on its own.
//   - Find predicates run while the lock is held and must not call back into
//     the wrapper.
//
// Minimal outline:
//
//  type SyncSet struct {
//      mu sync.Mutex
//      q  *queueset.QueueSet[string, string]
//  }
//
//  func (s *SyncSet) Add(v string) bool {
//      s.mu.Lock()
//      defer s.mu.Unlock()
//      return s.q.Enqueue(v)
//  }
//
//  func (s *SyncSet) Next() (string, bool) {
//      s.mu.Lock()
//      defer s.mu.Unlock()
//      return s.q.Dequeue()
//  }
