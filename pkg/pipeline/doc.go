// Package pipeline runs worker graphs whose stages are connected by bounded
// queues.
//
// Each Stage owns one or more worker goroutines. A worker takes one item at a
// time from the stage's input queue with PopN(1), hands it to the stage's
// ProcessFunc and pushes the result to the output queue. An empty input is
// treated as "no work yet": the worker sleeps the graph's poll interval and
// tries again. Several stages may read from the same queue (fan-out) or write
// to the same queue (fan-in).
//
// Workers never block on a queue, so cancelling the context passed to
// Graph.Run stops every worker within one poll interval plus the duration of
// any ProcessFunc call in flight. Items a worker has popped but not yet pushed
// when the graph stops are dropped.
package pipeline
