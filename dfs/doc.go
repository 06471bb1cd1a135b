// Package dfs implements identity-keyed depth-first traversals over any
// acyclic structure whose nodes can enumerate their parents.
//
// The package does not own a graph type. Callers pass a root node and a
// parents function; nodes are compared with ==, so pointer node types are
// keyed by identity and never by the values they hold.
//
// Key features:
//   - TopologicalOrder(root, parents, opts...): parents-first post-order
//   - DetectCycle(root, parents): back-edge detection reachable from root
//   - Hooks: OnVisit (pre-order) & OnExit (post-order)
//
// Both traversals are iterative and keep their own explicit stack, so the
// depth of the structure is bounded by memory rather than by the goroutine
// call stack. A chain of a million nodes is ordered without recursion.
//
// Complexity:
//
//   - Time:   O(V + E) (each node and parent link visited once)
//   - Memory: O(V)     (state map, explicit stack and output slice)
package dfs
