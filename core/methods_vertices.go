// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs in insertion order (duplicates included).
//
// Concurrency:
//   - All mutators hold g.mu for writing; queries hold it for reading.

package core

import "fmt"

// AddVertex appends v to the vertex sequence and (re)initializes its
// neighbor list to empty.
//
// Behavior highlights:
//   - Default mode: re-adding a known ID appends a duplicate and discards its
//     neighbor list. Former neighbors still list v, so HasEdge(v, w) turns
//     false while Neighbors(w) keeps v.
//   - WithUniqueVertices mode: re-adding a known ID is a no-op.
//
// Complexity:
//   - Time O(1) amortized (O(V) in unique mode for the membership check).
func (g *Graph) AddVertex(v int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.uniqueVertices && indexOf(g.vertices, v) >= 0 {
		return
	}

	g.vertices = append(g.vertices, v)
	g.adjacency.Set(v, make([]int, 0))
	g.vertexCount++
}

// HasVertex reports whether v currently appears in the vertex sequence.
// Complexity: O(V).
func (g *Graph) HasVertex(v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return indexOf(g.vertices, v) >= 0
}

// RemoveVertex deletes the first occurrence of v and every edge incident to it.
//
// Implementation:
//   - Stage 1: Fail with ErrVertexNotFound if v has no adjacency entry.
//   - Stage 2: Drop the first occurrence of v from the vertex sequence.
//   - Stage 3: Drain adjacency[v] from the end; for every popped neighbor w
//     remove the first v from adjacency[w] and decrement the edge counter on
//     that hit (the same tie-break RemoveEdge(w, v) applies).
//   - Stage 4: Delete the adjacency entry once no occurrence of v remains.
//
// Behavior highlights:
//   - Parallel edges are drained one per popped entry, so no neighbor keeps a
//     stale reference to v.
//   - A self-loop contributes two entries to adjacency[v] and is counted once.
//
// Errors:
//   - ErrVertexNotFound: v was never added (or already fully removed).
//
// Complexity:
//   - Time O(V + deg(v)·d) where d is the largest neighbor degree.
func (g *Graph) RemoveVertex(v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	nbrs, ok := g.neighborsOf(v)
	if !ok {
		return fmt.Errorf("remove vertex %d: %w", v, ErrVertexNotFound)
	}

	if i := indexOf(g.vertices, v); i >= 0 {
		g.vertices = removeAt(g.vertices, i)
	}

	for len(nbrs) > 0 {
		w := nbrs[len(nbrs)-1]
		nbrs = nbrs[:len(nbrs)-1]
		g.adjacency.Set(v, nbrs)
		if g.unlink(w, v) {
			g.edgeCount--
		}
		// a self-loop may have just shrunk our own list
		nbrs, _ = g.neighborsOf(v)
	}

	g.vertexCount--
	if indexOf(g.vertices, v) < 0 {
		g.adjacency.Delete(v)
	}

	return nil
}

// Size returns the length of the vertex sequence.
func (g *Graph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// VertexCount returns the tracked vertex counter. It equals Size() between operations.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.vertexCount
}

// Vertices returns a copy of the vertex sequence in insertion order.
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append(make([]int, 0, len(g.vertices)), g.vertices...)
}
