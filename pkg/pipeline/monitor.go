package pipeline

import (
	"context"
	"time"

	"github.com/huynhanx03/go-crossqueue/pkg/datastructs/queue"
)

// Monitor reports the sizes of qs, in argument order, right away and then
// every interval. It returns when report returns false or ctx is done.
// The sizes slice is reused between calls. A non-positive interval means
// queue.DefaultPollInterval.
func Monitor[T any](ctx context.Context, interval time.Duration, report func(sizes []int) bool, qs ...queue.Queue[T]) {
	if interval <= 0 {
		interval = queue.DefaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	sizes := make([]int, len(qs))
	for {
		for i, q := range qs {
			sizes[i] = q.Size()
		}
		if !report(sizes) {
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
