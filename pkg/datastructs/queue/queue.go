package queue

// Queue is a generic interface for bounded FIFO queues shared between goroutines.
// Rejections are reported through the boolean or slice results; no method
// returns an error or panics because the queue is full or empty.
type Queue[T any] interface {
	// TryPush appends an item if there is room.
	// Returns true if successful, false if the queue is full.
	TryPush(item T) bool

	// TryPushBatch appends all items or none of them.
	// Returns true if every item was appended.
	TryPushBatch(items []T) bool

	// Push appends an item, evicting the oldest one when the queue overflows.
	Push(item T)

	// PushBatch appends items in order, evicting from the front to stay within capacity.
	PushBatch(items []T)

	// Pop removes and returns the front item.
	// Returns (item, true) if successful, (zero, false) if the queue is empty.
	Pop() (T, bool)

	// PopN removes up to n items from the front. The result is never nil.
	PopN(n int) []T

	// Size returns the number of queued items at the time of the call.
	Size() int

	// Capacity returns the maximum number of items the queue holds.
	Capacity() int
}
