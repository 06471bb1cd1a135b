package value

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/lvgrad/dfs"
)

// BackwardOption configures optional behavior of Backward.
type BackwardOption[T Float] func(*backwardOptions[T])

// backwardOptions holds settings for a backward pass.
type backwardOptions[T Float] struct {
	onPropagate func(n *Value[T]) // observer called before each rule
	logger      *slog.Logger      // debug sink; discards by default
}

// defaultBackwardOptions returns options with no observer and a discarding logger.
func defaultBackwardOptions[T Float]() backwardOptions[T] {
	return backwardOptions[T]{logger: slog.New(slog.DiscardHandler)}
}

// WithOnPropagate installs fn to be called with each node right before its
// backward rule runs. At that moment the node's gradient is final.
func WithOnPropagate[T Float](fn func(n *Value[T])) BackwardOption[T] {
	return func(o *backwardOptions[T]) {
		o.onPropagate = fn
	}
}

// WithLogger routes debug records of the pass to logger. Passing nil has
// no effect.
func WithLogger[T Float](logger *slog.Logger) BackwardOption[T] {
	return func(o *backwardOptions[T]) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// TopologicalOrder returns every node reachable from v, each exactly once,
// with every node after all of its parents. v itself is last.
// Complexity: O(V + E), iterative.
func (v *Value[T]) TopologicalOrder() []*Value[T] {
	return dfs.TopologicalOrder(v, parentsOf[T])
}

// Backward computes the gradient of v with respect to every node it was
// derived from.
//
// Steps:
//  1. Order the reachable graph parents-first.
//  2. Set v's gradient to 1; every other gradient keeps its current value.
//  3. Walk the order in reverse and apply each node's rule once.
//
// Because every consumer of a node precedes it in the reversed order, a
// node's gradient is complete when its own rule reads it. Gradients of
// non-root nodes accumulate across passes; call ZeroGrad between passes
// over the same graph.
func (v *Value[T]) Backward(opts ...BackwardOption[T]) {
	if v == nil {
		return
	}
	o := defaultBackwardOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}

	topo := v.TopologicalOrder()
	v.grad = 1

	debug := o.logger.Enabled(context.Background(), slog.LevelDebug)
	if debug {
		o.logger.Debug("backward pass", "root", v.id, "nodes", len(topo))
	}

	table := rules[T]()
	for i := len(topo) - 1; i >= 0; i-- {
		n := topo[i]
		if o.onPropagate != nil {
			o.onPropagate(n)
		}
		if debug {
			o.logger.Debug("propagate",
				"id", n.id,
				"op", n.Tag(),
				"data", float64(n.data),
				"grad", float64(n.grad),
			)
		}
		table[n.op](n)
	}
}

// ZeroGrad resets the gradient of v and of every node it was derived from.
func (v *Value[T]) ZeroGrad() {
	if v == nil {
		return
	}
	for _, n := range v.TopologicalOrder() {
		n.grad = 0
	}
}
