// SPDX-License-Identifier: MIT

// Package adjgraph is a small in-memory toolkit: an undirected adjacency-list
// graph over integer vertex IDs plus a first-element-pivot quicksort.
//
// Packages:
//
//	core/         — Graph: vertex/edge lifecycle, queries, Print, BFS/DFS Traverse
//	quicksort/    — pure generic quicksort (Sort, SortFunc)
//	cmd/adjgraph/ — CLI for building graphs and sorting integers
//	examples/     — runnable demos
//
// Quick ASCII example:
//
//	1───2───3
//
// is built with AddVertex(1..3), AddEdge(1,2), AddEdge(2,3) and prints as
//
//	1 -> 2 | 2 -> 1, 3 | 3 -> 2
//
//	go get github.com/katalvlaran/adjgraph
package adjgraph
