// SPDX-License-Identifier: MIT

// Package core provides a small, thread-safe, undirected and unweighted
// Graph over integer vertex identifiers.
//
// The Graph G = (V,E) keeps:
//
//   - an insertion-ordered vertex sequence (used for printing and iteration),
//   - a sparse adjacency mapping vertex → ordered neighbor list,
//   - aggregate vertex and edge counters.
//
// Edges are stored twice (u→v and v→u) and AddEdge never deduplicates, so
// parallel edges between the same pair are legal and each one counts once in
// Relations(). Self-loops are accepted when explicitly added.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(v int)                 // O(1) amortized
//	RemoveVertex(v int) error        // O(V + deg(v)·d)
//	HasVertex(v int) bool            // O(V)
//
//	// Edge lifecycle
//	AddEdge(u, v int) error          // O(1) amortized
//	RemoveEdge(u, v int) error       // O(deg(u) + deg(v))
//	HasEdge(u, v int) bool           // O(V + deg(u) + deg(v))
//
//	// Query
//	Size() int                       // length of the vertex sequence
//	Relations() int                  // tracked edge counter
//	Neighbors(v int) ([]int, error)  // snapshot copy
//	Print() string                   // "1 -> 2 | 2 -> 1"
//
//	// Traversal
//	Traverse(start int, visit VisitFunc, kind TraversalKind, opts ...TraverseOption) error
//
//	// Maintenance
//	Clear()
//	Clone() *Graph
//
// Re-adding a vertex:
//
// By default AddVertex always appends: re-adding an existing ID creates a
// duplicate entry in the vertex sequence and resets its neighbor list, while
// former neighbors keep their half of the edge. Build the graph with
// WithUniqueVertices() to make AddVertex idempotent instead.
//
// Errors:
//
//	ErrVertexNotFound   – operation referenced an ID with no adjacency entry
//	ErrUnknownTraversal – Traverse called with an unsupported TraversalKind
//	ErrOptionViolation  – invalid TraverseOption (e.g. negative depth)
package core
