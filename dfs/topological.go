// Package dfs provides the topological ordering used by reverse-mode
// differentiation.
//
// TopologicalOrder computes a linear ordering of every node reachable from
// a root such that each node appears after all of its parents.
//
// Complexity:
//
//   - Time:   O(V + E) (each node and parent link visited once)
//   - Memory: O(V)     (explicit stack and state map)
package dfs

// topoSorter encapsulates state for a topological ordering traversal.
type topoSorter[N comparable] struct {
	parents func(N) []N // parent enumeration supplied by the caller
	opts    Options[N]  // traversal hooks
	state   map[N]int   // visitation state: 0=White,1=Gray,2=Black
	stack   []frame[N]  // explicit DFS stack replacing recursion
	order   []N         // recorded post-order sequence
}

// TopologicalOrder returns every node reachable from root in parents-first
// order: each node appears exactly once and strictly after all of its
// parents. The root is always last.
//
// Nodes are keyed with ==, so for pointer types two distinct nodes holding
// equal data are still distinct entries. Parents are explored in the order
// parents returns them, which makes the result deterministic.
//
// The structure must be acyclic. On cyclic input the traversal still
// terminates, but the result is not a valid ordering; use DetectCycle to
// check untrusted input first.
func TopologicalOrder[N comparable](root N, parents func(N) []N, opts ...Option[N]) []N {
	// 1. Apply optional settings
	o := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}
	// 2. Initialize sorter state
	t := &topoSorter[N]{
		parents: parents,
		opts:    o,
		state:   make(map[N]int),
	}
	// 3. Drive the iterative DFS from the root
	t.push(root)
	for len(t.stack) > 0 {
		t.step()
	}

	return t.order
}

// push marks n Gray, fires the pre-order hook and places it on the stack.
func (t *topoSorter[N]) push(n N) {
	t.state[n] = Gray
	if t.opts.OnVisit != nil {
		t.opts.OnVisit(n)
	}
	t.stack = append(t.stack, frame[N]{node: n, parents: t.parents(n)})
}

// step advances the frame on top of the stack by one parent, or finishes it
// when all of its parents have been explored.
func (t *topoSorter[N]) step() {
	top := &t.stack[len(t.stack)-1]

	// 1. Descend into the next unexplored parent, if any
	for top.next < len(top.parents) {
		p := top.parents[top.next]
		top.next++
		if t.state[p] == White {
			// top is invalidated by the append inside push
			t.push(p)

			return
		}
	}

	// 2. All parents done: mark Black and record in post-order
	n := top.node
	t.stack = t.stack[:len(t.stack)-1]
	t.state[n] = Black
	if t.opts.OnExit != nil {
		t.opts.OnExit(n)
	}
	t.order = append(t.order, n)
}
