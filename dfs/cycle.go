package dfs

// DetectCycle reports whether a cycle is reachable from root by following
// parent links. It returns (true, cycle) where cycle is the closed path
// [n0, n1, ..., n0] of the first back-edge found, or (false, nil).
//
// Three-colour marking: a parent found Gray is on the current path, so the
// link to it closes a cycle. Like TopologicalOrder the walk is iterative.
func DetectCycle[N comparable](root N, parents func(N) []N) (bool, []N) {
	state := map[N]int{root: Gray}
	stack := []frame[N]{{node: root, parents: parents(root)}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.parents) {
			p := top.parents[top.next]
			top.next++
			switch state[p] {
			case White:
				state[p] = Gray
				stack = append(stack, frame[N]{node: p, parents: parents(p)})
			case Gray:
				return true, closePath(stack, p)
			}

			continue
		}
		state[top.node] = Black
		stack = stack[:len(stack)-1]
	}

	return false, nil
}

// closePath extracts the segment of the stack starting at start and appends
// start again to close the loop.
func closePath[N comparable](stack []frame[N], start N) []N {
	path := make([]N, 0, len(stack)+1)
	for _, f := range stack {
		path = append(path, f.node)
	}
	idx := IndexOf(path, start)
	cycle := append([]N(nil), path[idx:]...)

	return append(cycle, start)
}
