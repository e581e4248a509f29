package pipeline

import (
	"context"

	"github.com/huynhanx03/go-crossqueue/pkg/datastructs/queue"
)

// ProcessFunc handles one item taken from a stage's input queue and returns
// the item to forward. A non-nil error stops the whole graph.
type ProcessFunc[T any] func(ctx context.Context, item T) (T, error)

// Stage is one step of a Graph.
type Stage[T any] struct {
	// Name identifies the stage in logs and errors.
	Name string

	// In is the queue the stage's workers consume from. Required.
	In queue.Queue[T]

	// Out receives processed items. A nil Out makes the stage a sink.
	Out queue.Queue[T]

	// Process is applied to every item. Required.
	Process ProcessFunc[T]

	// Workers is the number of goroutines serving the stage; values below 1 mean 1.
	Workers int
}

func (s Stage[T]) workers() int {
	return max(s.Workers, 1)
}

func (s Stage[T]) validate() error {
	switch {
	case s.Name == "":
		return ErrInvalidStage
	case s.In == nil:
		return wrapStage(ErrInvalidStage, s.Name, "missing input queue")
	case s.Process == nil:
		return wrapStage(ErrInvalidStage, s.Name, "missing process func")
	}
	return nil
}
