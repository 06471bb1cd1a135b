// Package dfs provides small slice helpers shared by the traversals.
package dfs

// IndexOf returns the first index of val in s, or -1 if not found.
// Time Complexity: O(n) where n = len(s).
func IndexOf[N comparable](s []N, val N) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}

	return -1
}

// Reverse returns a new slice containing the elements of s in reverse order.
// Time Complexity: O(n).
func Reverse[N any](s []N) []N {
	out := make([]N, len(s))
	for i := range s {
		out[i] = s[len(s)-1-i] // assign from opposite end
	}

	return out
}
