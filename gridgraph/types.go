// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/roomforge.
package gridgraph

import (
	"errors"

	"github.com/katalvlaran/roomforge/grid"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates the input cell set is empty.
	ErrEmptyGrid = errors.New("gridgraph: input set must hold at least one cell")
	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrNoPath indicates no conversion path exists between two components.
	ErrNoPath = errors.New("gridgraph: no path between specified components")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with Conn=Conn4, matching how
// agents walk between floor tiles.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4}
}

// GridGraph is the rasterized bounding box of a cell set.
// Width and Height define the box; Origin is the world coordinate of local
// cell (0,0). CellValues[y][x] is 1 for member cells and 0 otherwise, in
// local coordinates. neighborOffsets is precomputed from Conn.
type GridGraph struct {
	Width, Height   int
	Origin          grid.Point
	CellValues      [][]int
	Conn            Connectivity
	neighborOffsets [][2]int
}
