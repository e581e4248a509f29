package queue

import (
	"context"
	"sync"

	"github.com/huynhanx03/go-crossqueue/pkg/datastructs/buffer"
)

var _ Queue[int] = (*Bounded[int])(nil)

// Bounded is a mutex-protected FIFO queue with a configurable maximum length.
// It is meant to be shared by pointer between any number of producer and
// consumer goroutines, typically as the hand-off point between two pipeline
// stages.
//
// Every method holds a single exclusive lock for its whole duration. Results
// of Size, IsEmpty and IsFull are snapshots and may be stale by the time the
// caller acts on them.
//
// Overflow handling depends on the insertion method:
//   - TryPush and TryPushBatch refuse items that do not fit.
//   - Push and PushBatch accept every item and drop the oldest ones.
//
// PopBlocking and PopContext wait without holding the lock and are woken by
// the next successful insertion.
//
// Use NewBounded to create a queue.
type Bounded[T any] struct {
	mu       sync.Mutex
	items    buffer.Ring[T]
	capacity int
	ready    chan struct{} // closed on the next insertion; nil when nobody waits
}

// NewBounded creates an empty queue. Without WithCapacity the queue is Unbounded.
func NewBounded[T any](opts ...Option) *Bounded[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	q := &Bounded[T]{capacity: o.capacity}
	if o.initialSize > 0 {
		q.items = *buffer.NewRing[T](min(o.initialSize, o.capacity))
	}
	return q
}

// SetCapacity changes the maximum length to n (negative n means 0).
// If the queue holds more than n items, the oldest are discarded until n
// remain. Size the queue before populating it if every item must survive.
func (q *Bounded[T]) SetCapacity(n int) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.capacity = max(n, 0)
	for q.items.Len() > q.capacity {
		q.items.PopFront()
	}
}

// Capacity returns the maximum length.
func (q *Bounded[T]) Capacity() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.capacity
}

// Size returns the current number of items.
func (q *Bounded[T]) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.items.Len()
}

// IsEmpty reports whether the queue holds no items.
func (q *Bounded[T]) IsEmpty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.items.IsEmpty()
}

// IsFull reports whether the queue holds exactly Capacity items.
func (q *Bounded[T]) IsFull() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.items.Len() == q.capacity
}

// TryPush appends item if the queue is below capacity.
// Returns false, leaving the queue untouched, if it is full.
func (q *Bounded[T]) TryPush(item T) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.items.Len() >= q.capacity {
		return false
	}
	q.items.PushBack(item)
	q.wake()
	return true
}

// TryPushBatch appends every item in order, or none if they do not all fit.
// An empty batch always succeeds.
func (q *Bounded[T]) TryPushBatch(items []T) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(items) > q.capacity-q.items.Len() {
		return false
	}
	for _, item := range items {
		q.items.PushBack(item)
	}
	q.wake()
	return true
}

// Push appends item. If that takes the queue over capacity the front item is
// dropped. Push never blocks and never fails.
func (q *Bounded[T]) Push(item T) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.items.PushBack(item)
	if q.items.Len() > q.capacity {
		q.items.PopFront()
	}
	q.wake()
}

// PushBatch appends items in order. After each append, if the queue has
// reached capacity, the front item is dropped, so a batch larger than the
// free room evicts several old items.
func (q *Bounded[T]) PushBatch(items []T) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, item := range items {
		q.items.PushBack(item)
		if q.items.Len() >= q.capacity {
			q.items.PopFront()
		}
	}
	q.wake()
}

// Pop removes and returns the front item.
// Returns (zero, false) without side effects if the queue is empty.
func (q *Bounded[T]) Pop() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.items.PopFront()
}

// PopN removes up to n items from the front and returns them in FIFO order.
// The result is empty, not nil, when nothing is available or n <= 0.
func (q *Bounded[T]) PopN(n int) []T {
	q.mu.Lock()
	defer q.mu.Unlock()

	n = min(max(n, 0), q.items.Len())
	out := make([]T, n)
	for i := range out {
		out[i], _ = q.items.PopFront()
	}
	return out
}

// PopBlocking waits until an item is available, then removes and returns it.
// The lock is not held while waiting.
//
// PopBlocking never returns if nothing is pushed again. Code that must shut
// down cleanly should use PopContext or a PopN loop instead.
func (q *Bounded[T]) PopBlocking() T {
	for {
		item, ok, ready := q.popOrWait()
		if ok {
			return item
		}
		<-ready
	}
}

// PopContext is PopBlocking with an abort signal. An item already queued is
// returned even if ctx is done; otherwise it returns ctx.Err() once ctx ends.
func (q *Bounded[T]) PopContext(ctx context.Context) (T, error) {
	for {
		item, ok, ready := q.popOrWait()
		if ok {
			return item, nil
		}
		select {
		case <-ready:
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		}
	}
}

// popOrWait removes the front item, or returns a channel that is closed by
// the next insertion when the queue is empty.
func (q *Bounded[T]) popOrWait() (T, bool, <-chan struct{}) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if item, ok := q.items.PopFront(); ok {
		return item, true, nil
	}
	if q.ready == nil {
		q.ready = make(chan struct{})
	}
	var zero T
	return zero, false, q.ready
}

// wake releases every waiter if the queue holds an item. Must hold q.mu.
func (q *Bounded[T]) wake() {
	if q.ready != nil && !q.items.IsEmpty() {
		close(q.ready)
		q.ready = nil
	}
}

// Clear removes all items.
func (q *Bounded[T]) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items.Clear()
}

// EraseFunc removes the first item, scanning from the front, for which match
// returns true. It reports whether an item was removed. match is called with
// the lock held and must not use the queue.
func (q *Bounded[T]) EraseFunc(match func(T) bool) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i := 0; i < q.items.Len(); i++ {
		if match(q.items.At(i)) {
			q.items.RemoveAt(i)
			return true
		}
	}
	return false
}

// Snapshot returns a copy of the queued items in FIFO order.
func (q *Bounded[T]) Snapshot() []T {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.items.Slice()
}

// Erase removes the first item equal to value. It reports false if no item matched.
func Erase[T comparable](q *Bounded[T], value T) bool {
	return q.EraseFunc(func(item T) bool { return item == value })
}
