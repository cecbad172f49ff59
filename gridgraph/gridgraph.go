package gridgraph

import (
	"github.com/katalvlaran/roomforge/grid"
)

// FromCells rasterizes cells into a GridGraph covering their bounding box.
// Returns ErrEmptyGrid for an empty set.
// Algorithmic complexity: O(W×H) time and memory.
func FromCells(cells grid.Set, opts GridOptions) (*GridGraph, error) {
	if cells.Len() == 0 {
		return nil, ErrEmptyGrid
	}
	box := cells.Bounds()
	values := make([][]int, box.H)
	for y := range values {
		values[y] = make([]int, box.W)
	}
	cells.Each(func(p grid.Point) {
		values[p.Y-box.Y][p.X-box.X] = 1
	})

	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph{
		Width:           box.W,
		Height:          box.H,
		Origin:          grid.Point{X: box.X, Y: box.Y},
		CellValues:      values,
		Conn:            opts.Conn,
		neighborOffsets: offsets,
	}, nil
}

// InBounds reports whether local (x,y) lies within the box.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// IsLand reports whether the cell at row-major index idx is a member.
func (gg *GridGraph) IsLand(idx int) bool {
	x, y := gg.local(idx)
	return gg.CellValues[y][x] >= 1
}

// index maps local (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// local converts a row-major index back to local (x,y).
func (gg *GridGraph) local(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// Coordinate converts a row-major index to the world cell it stands for.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) grid.Point {
	x, y := gg.local(idx)
	return grid.Point{X: gg.Origin.X + x, Y: gg.Origin.Y + y}
}

// Cells converts a component (or path) of indices to world cells.
func (gg *GridGraph) Cells(indices []int) []grid.Point {
	out := make([]grid.Point, len(indices))
	for i, idx := range indices {
		out[i] = gg.Coordinate(idx)
	}
	return out
}
