package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-crossqueue/pkg/datastructs/queue"
	"github.com/huynhanx03/go-crossqueue/pkg/pipeline"
	"github.com/huynhanx03/go-crossqueue/pkg/settings"
)

// resource is the unit of work moved between stages.
type resource struct {
	ID   int
	Hops int
	Path []string
}

// run moves cfg.Resources items through the graph
//
//	           /-- w1 -> w3 --\
//	vacant -> w0               > result
//	           \-- w2 -> w4 --/
//
// printing the queue sizes to out until every item reached result.
func run(ctx context.Context, cfg settings.Pipeline, log *zap.Logger, out io.Writer) error {
	capacity := cfg.Capacity
	if capacity == 0 {
		capacity = queue.Unbounded
	}
	newQueue := func() *queue.Bounded[*resource] {
		return queue.NewBounded[*resource](queue.WithCapacity(capacity))
	}

	vacant, w0, w10, w11, result := newQueue(), newQueue(), newQueue(), newQueue(), newQueue()
	all := []queue.Queue[*resource]{vacant, w0, w10, w11, result}

	seed := make([]*resource, cfg.Resources)
	for i := range seed {
		seed[i] = &resource{ID: i}
	}
	if !vacant.TryPushBatch(seed) {
		return errors.Errorf("capacity %d cannot hold %d resources", capacity, cfg.Resources)
	}

	lo, hi := cfg.WorkDelayRange()
	g := pipeline.NewGraph[*resource](
		pipeline.WithPollInterval(cfg.PollDuration()),
		pipeline.WithLogger(log),
	)
	for _, s := range []pipeline.Stage[*resource]{
		{Name: "w0", In: vacant, Out: w0},
		{Name: "w1", In: w0, Out: w10},
		{Name: "w2", In: w0, Out: w11},
		{Name: "w3", In: w10, Out: result},
		{Name: "w4", In: w11, Out: result},
	} {
		s.Process = work(s.Name, lo, hi)
		if err := g.AddStage(s); err != nil {
			return err
		}
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	errc := make(chan error, 1)
	go func() {
		errc <- g.Run(runCtx)
		cancel()
	}()

	log.Info("pipeline started", zap.Int("resources", cfg.Resources), zap.Int("stages", g.Stages()))
	start := time.Now()

	pipeline.Monitor(runCtx, cfg.MonitorDuration(), func(sizes []int) bool {
		printSizes(out, sizes)
		return sizes[len(sizes)-1] < cfg.Resources
	}, all...)
	cancel()

	if err := <-errc; err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return errors.Wrapf(err, "interrupted with %d of %d resources delivered", result.Size(), cfg.Resources)
	}

	sizes := make([]int, len(all))
	for i, q := range all {
		sizes[i] = q.Size()
	}
	printSizes(out, sizes)
	fmt.Fprintln(out, "Finished.")

	log.Info("pipeline finished", zap.Duration("elapsed", time.Since(start)))
	return nil
}

// work returns the ProcessFunc of the named stage: it stamps the resource and
// holds it for a random delay in [lo, hi].
func work(name string, lo, hi time.Duration) pipeline.ProcessFunc[*resource] {
	return func(ctx context.Context, r *resource) (*resource, error) {
		r.Hops++
		r.Path = append(r.Path, name)
		if err := queue.SleepContext(ctx, lo+rand.N(hi-lo+1)); err != nil {
			return nil, err
		}
		return r, nil
	}
}

func printSizes(out io.Writer, sizes []int) {
	fmt.Fprintf(out, "[%3d] [%3d] [%3d] [%3d] [%3d]\n", sizes[0], sizes[1], sizes[2], sizes[3], sizes[4])
}
