// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"testing"

	"github.com/katalvlaran/adjgraph/core"
	"github.com/stretchr/testify/require"
)

// Common vertex IDs used across core tests.
const (
	V1 = 1
	V2 = 2
	V3 = 3
	V4 = 4
	V5 = 5

	VMissing = 42
)

// Common concurrency sizes used across core tests.
const (
	NConcurrentAdds = 200
	NReaders        = 50
)

// newGraphWith builds a graph with the given vertices (in order) and edges.
func newGraphWith(t testing.TB, vertices []int, edges [][2]int, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	for _, v := range vertices {
		g.AddVertex(v)
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]), "AddEdge(%d,%d)", e[0], e[1])
	}

	return g
}

// mustNeighbors returns Neighbors(v) or fails the test.
func mustNeighbors(t testing.TB, g *core.Graph, v int) []int {
	t.Helper()
	nbrs, err := g.Neighbors(v)
	require.NoError(t, err, "Neighbors(%d)", v)

	return nbrs
}

// collect returns a VisitFunc appending into *order.
func collect(order *[]int) core.VisitFunc {
	return func(v int) error {
		*order = append(*order, v)
		return nil
	}
}
