// SPDX-License-Identifier: MIT
//
// File: adjacency.go
// Role: Unlocked helpers over the vertex sequence and adjacency lists.
// Policy:
//   - Callers hold g.mu (read lock for lookups, write lock for mutations).
//   - Helpers never allocate a new adjacency entry implicitly.

package core

// indexOf returns the position of the first occurrence of x in s, or -1.
func indexOf(s []int, x int) int {
	for i, y := range s {
		if y == x {
			return i
		}
	}

	return -1
}

// removeAt deletes s[i], preserving order.
func removeAt(s []int, i int) []int {
	return append(s[:i], s[i+1:]...)
}

// neighborsOf returns the live neighbor list of v and whether v has an adjacency entry.
func (g *Graph) neighborsOf(v int) ([]int, bool) {
	return g.adjacency.Get(v)
}

// unlink removes the first occurrence of w from adjacency[v].
// Reports whether something was removed; a missing entry is treated as empty.
func (g *Graph) unlink(v, w int) bool {
	nbrs, ok := g.adjacency.Get(v)
	if !ok {
		return false
	}
	i := indexOf(nbrs, w)
	if i < 0 {
		return false
	}
	g.adjacency.Set(v, removeAt(nbrs, i))

	return true
}

// snapshot deep-copies the adjacency mapping.
func (g *Graph) snapshot() map[int][]int {
	out := make(map[int][]int, g.adjacency.Len())
	for pair := g.adjacency.Oldest(); pair != nil; pair = pair.Next() {
		out[pair.Key] = append([]int(nil), pair.Value...)
	}

	return out
}
