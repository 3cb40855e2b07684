// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Whole-graph maintenance and views: Print, Clear, Clone, AdjacencyList.

package core

import (
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const (
	lineSeparator     = " | "
	neighborSeparator = ", "
	arrow             = " -> "
)

// Print renders the graph as "<v> -> <n1>, <n2>" per vertex, in vertex
// sequence order, joined with " | ". A vertex without neighbors renders as
// "<v> ->". The output is for display only and is not meant to be parsed back.
//
// Example: vertices [1,2] with edge {1,2} print as "1 -> 2 | 2 -> 1".
func (g *Graph) Print() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	lines := make([]string, 0, len(g.vertices))
	var sb strings.Builder
	for _, v := range g.vertices {
		sb.Reset()
		sb.WriteString(strconv.Itoa(v))
		sb.WriteString(arrow)
		nbrs, _ := g.neighborsOf(v)
		for i, w := range nbrs {
			if i > 0 {
				sb.WriteString(neighborSeparator)
			}
			sb.WriteString(strconv.Itoa(w))
		}
		lines = append(lines, strings.TrimSpace(sb.String()))
	}

	return strings.Join(lines, lineSeparator)
}

// String implements fmt.Stringer; it is an alias for Print.
func (g *Graph) String() string { return g.Print() }

// Clear resets the graph to empty state but preserves construction options.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices = make([]int, 0)
	g.adjacency = orderedmap.New[int, []int]()
	g.vertexCount = 0
	g.edgeCount = 0
}

// AdjacencyList returns a deep copy of the adjacency mapping.
// Complexity: O(V + E).
func (g *Graph) AdjacencyList() map[int][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.snapshot()
}

// Clone returns a deep copy: options, vertex sequence, adjacency (in the
// same entry order) and counters. Mutating the clone never affects g.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		uniqueVertices: g.uniqueVertices,
		vertices:       append(make([]int, 0, len(g.vertices)), g.vertices...),
		adjacency:      orderedmap.New[int, []int](),
		vertexCount:    g.vertexCount,
		edgeCount:      g.edgeCount,
	}
	for pair := g.adjacency.Oldest(); pair != nil; pair = pair.Next() {
		c.adjacency.Set(pair.Key, append(make([]int, 0, len(pair.Value)), pair.Value...))
	}

	return c
}
