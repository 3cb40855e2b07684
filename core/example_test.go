// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"

	"github.com/katalvlaran/adjgraph/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	g := core.NewGraph()
	for _, v := range []int{1, 2, 3} {
		g.AddVertex(v)
	}
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(2, 3)

	fmt.Println(g.Print())
	fmt.Println("size:", g.Size(), "relations:", g.Relations())
	fmt.Println("1-3?", g.HasEdge(1, 3))

	_ = g.RemoveVertex(2)
	fmt.Println(g.Print())
	fmt.Println("size:", g.Size(), "relations:", g.Relations())

	// Output:
	// 1 -> 2 | 2 -> 1, 3 | 3 -> 2
	// size: 3 relations: 2
	// 1-3? false
	// 1 -> | 3 ->
	// size: 2 relations: 0
}

// ExampleGraph_Traverse walks a small square both ways.
//
//	1───2
//	│   │
//	3───4
func ExampleGraph_Traverse() {
	g := core.NewGraph()
	for _, v := range []int{1, 2, 3, 4} {
		g.AddVertex(v)
	}
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(1, 3)
	_ = g.AddEdge(2, 4)
	_ = g.AddEdge(3, 4)

	for _, kind := range []core.TraversalKind{core.BreadthFirst, core.DepthFirst} {
		var order []int
		_ = g.Traverse(1, func(v int) error {
			order = append(order, v)
			return nil
		}, kind)
		fmt.Println(kind, order)
	}

	// Output:
	// bfs [1 2 3 4]
	// dfs [1 2 4 3]
}

// ExampleWithUniqueVertices contrasts the default re-add behavior with unique mode.
func ExampleWithUniqueVertices() {
	for _, g := range []*core.Graph{core.NewGraph(), core.NewGraph(core.WithUniqueVertices())} {
		g.AddVertex(1)
		g.AddVertex(2)
		_ = g.AddEdge(1, 2)
		g.AddVertex(1)
		fmt.Printf("%q\n", g.Print())
	}

	// Output:
	// "1 -> | 2 -> 1 | 1 ->"
	// "1 -> 2 | 2 -> 1"
}
