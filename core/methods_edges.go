// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries.
//
// Policy:
//   - AddEdge never deduplicates; parallel edges are separate entries.
//   - The edge counter follows the u→v half on removal (see RemoveEdge).

package core

import "fmt"

// AddEdge records the undirected edge {u,v}: v is appended to adjacency[u]
// and u to adjacency[v]. Relations() grows by exactly one per call, even
// when the pair is already connected.
//
// Errors:
//   - ErrVertexNotFound: u or v has no adjacency entry (add vertices first).
//
// Complexity:
//   - Time O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	nu, ok := g.neighborsOf(u)
	if !ok {
		return fmt.Errorf("add edge %d-%d: vertex %d: %w", u, v, u, ErrVertexNotFound)
	}
	if _, ok = g.neighborsOf(v); !ok {
		return fmt.Errorf("add edge %d-%d: vertex %d: %w", u, v, v, ErrVertexNotFound)
	}

	g.adjacency.Set(u, append(nu, v))
	// re-read: for a self-loop adjacency[v] is the list we just grew
	nv, _ := g.neighborsOf(v)
	g.adjacency.Set(v, append(nv, u))
	g.edgeCount++

	return nil
}

// RemoveEdge removes one occurrence of the edge {u,v}.
//
// Implementation:
//   - Stage 1: Fail with ErrVertexNotFound if either endpoint has no adjacency entry.
//   - Stage 2: Remove the first v from adjacency[u]; on a hit decrement Relations().
//   - Stage 3: Independently remove the first u from adjacency[v].
//
// Behavior highlights:
//   - Removing a missing edge between known vertices is a no-op.
//   - On asymmetric state only the present half is cleared, and the counter
//     moves only if that half was u→v.
//
// Complexity:
//   - Time O(deg(u) + deg(v)).
func (g *Graph) RemoveEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.neighborsOf(u); !ok {
		return fmt.Errorf("remove edge %d-%d: vertex %d: %w", u, v, u, ErrVertexNotFound)
	}
	if _, ok := g.neighborsOf(v); !ok {
		return fmt.Errorf("remove edge %d-%d: vertex %d: %w", u, v, v, ErrVertexNotFound)
	}

	if g.unlink(u, v) {
		g.edgeCount--
	}
	g.unlink(v, u)

	return nil
}

// HasEdge reports whether u and v are both present, v is listed in
// adjacency[u] and u is listed in adjacency[v]. One-sided records do not count.
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if indexOf(g.vertices, u) < 0 || indexOf(g.vertices, v) < 0 {
		return false
	}
	nu, _ := g.neighborsOf(u)
	nv, _ := g.neighborsOf(v)

	return indexOf(nu, v) >= 0 && indexOf(nv, u) >= 0
}

// Relations returns the tracked undirected edge counter.
func (g *Graph) Relations() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Neighbors returns a copy of v's neighbor list in insertion order.
// Parallel edges appear once per edge; a self-loop appears twice.
func (g *Graph) Neighbors(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.neighborsOf(v)
	if !ok {
		return nil, fmt.Errorf("neighbors of %d: %w", v, ErrVertexNotFound)
	}

	return append(make([]int, 0, len(nbrs)), nbrs...), nil
}

// Degree returns the length of v's neighbor list.
func (g *Graph) Degree(v int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.neighborsOf(v)
	if !ok {
		return 0, fmt.Errorf("degree of %d: %w", v, ErrVertexNotFound)
	}

	return len(nbrs), nil
}
