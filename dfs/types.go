// Package dfs defines visitation states and traversal options.
package dfs

// Visitation states of a node during traversal.
const (
	White = iota // White: the node has not been visited yet.
	Gray         // Gray: the node is on the traversal stack (visiting).
	Black        // Black: the node and all its parents have been fully explored.
)

// Option configures optional behavior of TopologicalOrder.
type Option[N comparable] func(*Options[N])

// Options holds the hooks for a traversal.
// Complexity remains O(V+E) when hooks are O(1).
type Options[N comparable] struct {
	// OnVisit, if non-nil, is invoked when a node is first discovered (pre-order).
	OnVisit func(n N)

	// OnExit, if non-nil, is invoked after all parents of a node have been
	// explored (post-order), right before the node is appended to the order.
	OnExit func(n N)
}

// DefaultOptions returns Options with no hooks installed.
func DefaultOptions[N comparable]() Options[N] {
	return Options[N]{
		OnVisit: nil,
		OnExit:  nil,
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit[N comparable](fn func(n N)) Option[N] {
	return func(o *Options[N]) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
func WithOnExit[N comparable](fn func(n N)) Option[N] {
	return func(o *Options[N]) {
		o.OnExit = fn
	}
}

// frame is one entry of the explicit traversal stack: the node being
// explored, its parents and the index of the next parent to descend into.
type frame[N comparable] struct {
	node    N
	parents []N
	next    int
}
