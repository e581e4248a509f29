package queue

import (
	"math"
	"time"
)

const (
	// Unbounded is the capacity of a queue created without WithCapacity.
	Unbounded = math.MaxInt

	// DefaultPollInterval is the backoff for consumers that poll with PopN and
	// Sleep between empty results.
	DefaultPollInterval = 10 * time.Millisecond
)

type options struct {
	capacity    int
	initialSize int
}

// Option configures a Bounded queue.
type Option func(*options)

func defaultOptions() options {
	return options{
		capacity: Unbounded,
	}
}

// WithCapacity sets the maximum element count. Negative values mean 0.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = max(n, 0)
	}
}

// WithInitialSize preallocates room for n elements, capped at the capacity.
// The queue keeps that room while it drains and across Clear.
func WithInitialSize(n int) Option {
	return func(o *options) {
		o.initialSize = n
	}
}
