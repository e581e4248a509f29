package queue

import (
	"context"
	"time"
)

// Sleep pauses the calling goroutine for d. It is unrelated to any queue state
// and exists so poll loops over several queues back off uniformly.
func Sleep(d time.Duration) {
	time.Sleep(d)
}

// SleepContext pauses for d or until ctx is done, whichever comes first.
// It returns ctx.Err() if the context ended the sleep.
func SleepContext(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
