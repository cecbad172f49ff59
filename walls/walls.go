// Package walls derives wall cells around a floor set by successive cardinal
// dilation rings.
//
// Ring 1 is every non-floor cardinal neighbour of a floor cell. Each further
// ring adds the non-floor cardinal neighbours of the current wall set, with
// the new layer computed from the wall set as it stood when the pass began
// and merged afterwards. Floor cells are never added, so the result is always
// disjoint from the floor.
//
// Complexity: O(T × |walls|) for thickness T.
package walls

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/roomforge/grid"
)

// ErrInvalidThickness indicates a thickness below one.
var ErrInvalidThickness = errors.New("walls: thickness must be at least 1")

// Build returns the wall cells surrounding floor, thickness rings deep.
// An empty floor yields an empty wall set.
func Build(floor grid.Set, thickness int) (grid.Set, error) {
	w, _, err := build(floor, thickness)
	return w, err
}

// RingDistance builds walls like Build and also reports, for every wall cell,
// the 1-based ring that first added it.
func RingDistance(floor grid.Set, thickness int) (grid.Set, map[grid.Point]int, error) {
	return build(floor, thickness)
}

func build(floor grid.Set, thickness int) (grid.Set, map[grid.Point]int, error) {
	if thickness < 1 {
		return grid.NewSet(), nil, fmt.Errorf("%w: got %d", ErrInvalidThickness, thickness)
	}

	walls := grid.NewSet()
	ring := make(map[grid.Point]int)

	// 1) Inner ring.
	layer := dilate(floor, floor)
	for _, p := range layer {
		walls.Put(p)
		ring[p] = 1
	}

	// 2) Outer rings, each from the state at the start of its pass.
	for pass := 2; pass <= thickness; pass++ {
		layer = dilate(walls, floor)
		for _, p := range layer {
			if walls.Has(p) {
				continue
			}
			walls.Put(p)
			ring[p] = pass
		}
	}

	return walls, ring, nil
}

// dilate returns the cardinal neighbours of src that are neither floor nor src.
// The result may repeat cells.
func dilate(src, floor grid.Set) []grid.Point {
	var out []grid.Point
	src.Each(func(p grid.Point) {
		for _, d := range grid.Cardinals {
			n := p.Neighbor(d)
			if !floor.Has(n) && !src.Has(n) {
				out = append(out, n)
			}
		}
	})
	return out
}
