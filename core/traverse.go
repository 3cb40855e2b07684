// SPDX-License-Identifier: MIT
//
// File: traverse.go
// Role: Breadth-first and depth-first walks from a start vertex.
//
// Concurrency:
//   - The adjacency is snapshotted under the read lock; the walk itself runs
//     unlocked, so a VisitFunc may call back into the Graph.
//
// Determinism:
//   - Neighbors are explored in adjacency (insertion) order.

package core

import (
	"context"
	"fmt"
	"strings"
)

// TraversalKind selects the walk order used by Traverse.
type TraversalKind int

const (
	// BreadthFirst visits vertices level by level (queue based). It is the zero value.
	BreadthFirst TraversalKind = iota
	// DepthFirst visits vertices in recursive pre-order.
	DepthFirst
)

// String returns "bfs" or "dfs".
func (k TraversalKind) String() string {
	switch k {
	case BreadthFirst:
		return "bfs"
	case DepthFirst:
		return "dfs"
	default:
		return fmt.Sprintf("TraversalKind(%d)", int(k))
	}
}

// ParseTraversalKind maps "bfs"/"dfs" (case-insensitive) to a TraversalKind.
// An empty string yields BreadthFirst.
func ParseTraversalKind(s string) (TraversalKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "bfs":
		return BreadthFirst, nil
	case "dfs":
		return DepthFirst, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownTraversal, s)
	}
}

// VisitFunc is called once per reachable vertex, in traversal order.
// Returning an error stops the walk.
type VisitFunc func(v int) error

// TraverseOption configures a Traverse call.
type TraverseOption func(*traverseOptions)

type traverseOptions struct {
	ctx      context.Context
	maxDepth int
	err      error
}

func defaultTraverseOptions() traverseOptions {
	return traverseOptions{ctx: context.Background()}
}

// WithContext sets a context checked before every visit.
func WithContext(ctx context.Context) TraverseOption {
	return func(o *traverseOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithMaxDepth stops the walk from going deeper than d edges from start.
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: invalid → ErrOptionViolation
func WithMaxDepth(d int) TraverseOption {
	return func(o *traverseOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: max depth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.maxDepth = d
	}
}

// Traverse walks every vertex reachable from start, calling visit exactly
// once per vertex. kind picks breadth-first (default) or depth-first order.
// A nil visit just performs the walk.
//
// Errors:
//   - ErrOptionViolation: an option was invalid.
//   - ErrUnknownTraversal: kind is neither BreadthFirst nor DepthFirst.
//   - ErrVertexNotFound: start is not in the graph.
//   - ctx.Err() on cancellation, or the wrapped error returned by visit.
//
// Complexity:
//   - Time O(V + E), Space O(V + E) for the snapshot.
func (g *Graph) Traverse(start int, visit VisitFunc, kind TraversalKind, opts ...TraverseOption) error {
	o := defaultTraverseOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}
	if kind != BreadthFirst && kind != DepthFirst {
		return fmt.Errorf("%w: %s", ErrUnknownTraversal, kind)
	}
	if visit == nil {
		visit = func(int) error { return nil }
	}

	g.mu.RLock()
	present := indexOf(g.vertices, start) >= 0
	adj := g.snapshot()
	g.mu.RUnlock()
	if !present {
		return fmt.Errorf("traverse from %d: %w", start, ErrVertexNotFound)
	}

	w := &walker{
		adj:     adj,
		visit:   visit,
		opts:    o,
		visited: make(map[int]bool, len(adj)),
	}
	if kind == DepthFirst {
		return w.depthFirst(start, 0)
	}

	return w.breadthFirst(start)
}

// queueItem pairs a vertex with its depth from the start.
type queueItem struct {
	id    int
	depth int
}

// walker holds the mutable state of one traversal.
type walker struct {
	adj     map[int][]int
	visit   VisitFunc
	opts    traverseOptions
	visited map[int]bool
}

// step checks cancellation and invokes the visit hook.
func (w *walker) step(id int) error {
	select {
	case <-w.opts.ctx.Done():
		return w.opts.ctx.Err()
	default:
	}
	if err := w.visit(id); err != nil {
		return fmt.Errorf("core: visit error at %d: %w", id, err)
	}

	return nil
}

// deeper reports whether vertices at depth d may be explored.
func (w *walker) deeper(d int) bool {
	return w.opts.maxDepth == 0 || d <= w.opts.maxDepth
}

func (w *walker) breadthFirst(start int) error {
	queue := []queueItem{{id: start}}
	w.visited[start] = true
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		if err := w.step(item.id); err != nil {
			return err
		}
		next := item.depth + 1
		if !w.deeper(next) {
			continue
		}
		for _, nbr := range w.adj[item.id] {
			if !w.visited[nbr] {
				w.visited[nbr] = true
				queue = append(queue, queueItem{id: nbr, depth: next})
			}
		}
	}

	return nil
}

func (w *walker) depthFirst(id, depth int) error {
	w.visited[id] = true
	if err := w.step(id); err != nil {
		return err
	}
	if !w.deeper(depth + 1) {
		return nil
	}
	for _, nbr := range w.adj[id] {
		if !w.visited[nbr] {
			if err := w.depthFirst(nbr, depth+1); err != nil {
				return err
			}
		}
	}

	return nil
}
