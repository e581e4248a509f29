package pipeline

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/huynhanx03/go-crossqueue/pkg/datastructs/queue"
)

type options struct {
	pollInterval time.Duration
	log          *zap.Logger
}

// Option configures a Graph.
type Option func(*options)

// WithPollInterval sets how long an idle worker sleeps before polling its
// input queue again. Non-positive values keep queue.DefaultPollInterval.
func WithPollInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.pollInterval = d
		}
	}
}

// WithLogger sets the logger used for worker lifecycle and failures.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// Graph is a set of stages run together. Build it with AddStage, then call Run once.
type Graph[T any] struct {
	stages       []Stage[T]
	pollInterval time.Duration
	log          *zap.Logger
}

// NewGraph creates an empty graph.
func NewGraph[T any](opts ...Option) *Graph[T] {
	o := options{
		pollInterval: queue.DefaultPollInterval,
		log:          zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Graph[T]{
		pollInterval: o.pollInterval,
		log:          o.log,
	}
}

// AddStage appends s to the graph.
func (g *Graph[T]) AddStage(s Stage[T]) error {
	if err := s.validate(); err != nil {
		return err
	}
	g.stages = append(g.stages, s)
	return nil
}

// Stages returns the number of stages added so far.
func (g *Graph[T]) Stages() int {
	return len(g.stages)
}

// Run starts every worker of every stage and blocks until they have all
// returned. It returns nil when ctx is cancelled, or the first ProcessFunc
// error, which also stops all other workers.
func (g *Graph[T]) Run(ctx context.Context) error {
	if len(g.stages) == 0 {
		return ErrNoStages
	}

	eg, ctx := errgroup.WithContext(ctx)
	for _, s := range g.stages {
		for id := 0; id < s.workers(); id++ {
			eg.Go(func() error {
				return g.work(ctx, s, id)
			})
		}
	}
	return eg.Wait()
}

func (g *Graph[T]) work(ctx context.Context, s Stage[T], id int) error {
	log := g.log.With(zap.String("stage", s.Name), zap.Int("worker", id))
	log.Debug("worker started")
	defer log.Debug("worker stopped")

	for ctx.Err() == nil {
		batch := s.In.PopN(1)
		if len(batch) == 0 {
			if queue.SleepContext(ctx, g.pollInterval) != nil {
				return nil
			}
			continue
		}

		item, err := s.Process(ctx, batch[0])
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			log.Error("process failed", zap.Error(err))
			return errors.Wrapf(err, "stage %s worker %d", s.Name, id)
		}
		if s.Out != nil {
			s.Out.Push(item)
		}
	}
	return nil
}

func wrapStage(err error, stage, msg string) error {
	return errors.Wrapf(err, "stage %s: %s", stage, msg)
}
