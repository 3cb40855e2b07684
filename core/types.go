// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph type, construction options and sentinel errors.
// Concurrency:
//   - A single sync.RWMutex (mu) guards every field of Graph.
//   - Mutators hold the write lock for their whole multi-step update.

package core

import (
	"errors"
	"sync"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex with no adjacency entry.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrUnknownTraversal indicates Traverse was called with an unsupported TraversalKind.
	ErrUnknownTraversal = errors.New("core: unknown traversal kind")

	// ErrOptionViolation indicates an invalid TraverseOption was supplied.
	ErrOptionViolation = errors.New("core: invalid traversal option")
)

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithUniqueVertices makes AddVertex idempotent: re-adding an existing
// vertex keeps its position and neighbor list untouched.
func WithUniqueVertices() GraphOption {
	return func(g *Graph) { g.uniqueVertices = true }
}

// Graph is an undirected, unweighted graph over int vertex IDs.
//
// vertices holds IDs in insertion order; adjacency maps each ID to its
// ordered neighbor list. Every undirected edge {u,v} lives in both
// adjacency[u] and adjacency[v].
type Graph struct {
	mu sync.RWMutex // guards everything below

	uniqueVertices bool // AddVertex is a no-op for known IDs

	vertices    []int
	adjacency   *orderedmap.OrderedMap[int, []int]
	vertexCount int
	edgeCount   int
}

// NewGraph creates an empty Graph with the given options.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make([]int, 0),
		adjacency: orderedmap.New[int, []int](),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// UniqueVertices reports whether the Graph was built with WithUniqueVertices.
func (g *Graph) UniqueVertices() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.uniqueVertices
}
