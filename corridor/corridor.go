// Package corridor links grid-adjacent rooms with one-tile-wide L-shaped
// corridors between their world-space centers.
//
// Only the right (+1,0) and up (0,+1) neighbours of each room are examined,
// so every adjacency is carved exactly once. A corridor walks the x axis
// first and then the y axis; for rooms on the same row or column only one leg
// is non-empty.
//
// Complexity: O(R + Σ|corridor|) for R rooms.
package corridor

import (
	"github.com/katalvlaran/roomforge/grid"
)

// forward lists the two directions checked per room.
var forward = [2]grid.Direction{grid.Right, grid.Up}

// ConnectAdjacentRooms returns the floor cells of every corridor joining two
// rooms whose grid coordinates differ by one cardinal step. Room centers are
// the grid coordinates scaled by cellSize.
func ConnectAdjacentRooms(rooms []grid.Point, cellSize grid.Size) grid.Set {
	floor := grid.NewSet()
	present := grid.SetOf(rooms...)
	for _, room := range rooms {
		for _, d := range forward {
			next := room.Neighbor(d)
			if !present.Has(next) {
				continue
			}
			floor.Union(Path(room.Scale(cellSize), next.Scale(cellSize)))
		}
	}
	return floor
}

// Path returns the Manhattan path from start to end: x moves toward end one
// cell at a time until it matches, then y does the same. Both endpoints are
// included.
func Path(start, end grid.Point) grid.Set {
	path := grid.NewSet()
	cur := start
	path.Put(cur)
	for cur.X != end.X {
		cur.X += sign(end.X - cur.X)
		path.Put(cur)
	}
	for cur.Y != end.Y {
		cur.Y += sign(end.Y - cur.Y)
		path.Put(cur)
	}
	return path
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
