// SPDX-License-Identifier: MIT
//
// File: contour.go
// Role: Edge synthesis over wall cells and loop decomposition of the
//       resulting even-degree corner graph.

package contour

import (
	"fmt"

	"github.com/katalvlaran/roomforge/grid"
)

// faceCorners holds, per grid.Direction, the two corner offsets (in halves)
// of that cell face, ordered so the four faces chain head to tail.
var faceCorners = [4][2][2]float64{
	grid.Up:    {{-1, 1}, {1, 1}},
	grid.Right: {{1, 1}, {1, -1}},
	grid.Down:  {{1, -1}, {-1, -1}},
	grid.Left:  {{-1, -1}, {-1, 1}},
}

// Extract synthesizes the open-face edges of wallCells and traces them into
// loops. An empty set yields an empty Result.
func Extract(wallCells grid.Set) (*Result, error) {
	edges := Synthesize(wallCells)
	loops, err := Trace(edges)
	if err != nil {
		return nil, fmt.Errorf("contour: Extract: %w", err)
	}
	return &Result{Edges: edges, Loops: loops}, nil
}

// Synthesize emits one Edge per open face of every wall cell, in row-major
// cell order and Cardinals face order. Duplicate edges are dropped.
func Synthesize(wallCells grid.Set) []Edge {
	var edges []Edge
	seen := make(map[Edge]struct{})
	for _, cell := range wallCells.Sorted() {
		for _, d := range grid.Cardinals {
			if wallCells.Has(cell.Neighbor(d)) {
				continue
			}
			fc := faceCorners[d]
			e := Edge{
				P1: corner(cell, fc[0][0], fc[0][1]),
				P2: corner(cell, fc[1][0], fc[1][1]),
			}
			k := e.Key()
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			edges = append(edges, e)
		}
	}
	return edges
}

// Degrees counts, for every corner, the edges that touch it.
func Degrees(edges []Edge) map[Vec2]int {
	deg := make(map[Vec2]int, len(edges))
	for _, e := range edges {
		deg[e.P1]++
		deg[e.P2]++
	}
	return deg
}

// adjacency is the mutable corner graph consumed by Trace.
type adjacency struct {
	next  map[Vec2][]Vec2
	order []Vec2 // corners in first-seen order
}

func newAdjacency(edges []Edge) *adjacency {
	a := &adjacency{next: make(map[Vec2][]Vec2, len(edges))}
	for _, e := range edges {
		a.link(e.P1, e.P2)
		a.link(e.P2, e.P1)
	}
	return a
}

func (a *adjacency) link(from, to Vec2) {
	if _, ok := a.next[from]; !ok {
		a.order = append(a.order, from)
	}
	a.next[from] = append(a.next[from], to)
}

// unlink removes the first from→to entry and drops from once it is empty.
func (a *adjacency) unlink(from, to Vec2) {
	list := a.next[from]
	for i, v := range list {
		if v == to {
			list = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(list) == 0 {
		delete(a.next, from)
		return
	}
	a.next[from] = list
}

// Trace decomposes edges into closed loops. Every corner must have even
// degree; otherwise ErrOddDegree is returned before any walk starts.
//
// Walk policy: start at the earliest-seen corner that still has edges, take
// the first remaining neighbour at every step, delete the used edge from both
// ends, stop on returning to the start. Each step appends one corner, so the
// loop lengths sum to len(edges).
func Trace(edges []Edge) ([]Loop, error) {
	if len(edges) == 0 {
		return nil, nil
	}
	// 1) Reject odd corners up front, in a stable order.
	adj := newAdjacency(edges)
	for _, v := range adj.order {
		if d := len(adj.next[v]); d%2 != 0 {
			return nil, fmt.Errorf("%w: %v has degree %d", ErrOddDegree, v, d)
		}
	}

	// 2) Peel loops until the graph is empty.
	var loops []Loop
	cursor := 0
	for len(adj.next) > 0 {
		for {
			if _, ok := adj.next[adj.order[cursor]]; ok {
				break
			}
			cursor++
		}
		start := adj.order[cursor]

		var loop Loop
		cur := start
		for {
			loop = append(loop, cur)
			nbrs, ok := adj.next[cur]
			if !ok {
				return nil, fmt.Errorf("%w: stuck at %v after %d steps from %v", ErrOpenTrail, cur, len(loop)-1, start)
			}
			nxt := nbrs[0]
			adj.unlink(cur, nxt)
			adj.unlink(nxt, cur)
			cur = nxt
			if cur == start {
				break
			}
		}
		loops = append(loops, loop)
	}
	return loops, nil
}
