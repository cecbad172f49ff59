package dungeon

import (
	"math"

	"github.com/katalvlaran/roomforge/grid"
)

// Room is one placed room. All fields are in world tiles except Coord.
type Room struct {
	// Coord is the room's slot on the room grid.
	Coord grid.Point
	// Center is the world tile at the middle of the cell.
	Center grid.Point
	// Bounds is the carve area: Cell shrunk by the configured padding.
	Bounds grid.Rect
	// Cell is the full room cell, one viewport in size.
	Cell grid.Rect
	// Depth is the hop count from the origin room over the room grid.
	Depth int
}

// SpawnableRoom is the spawn-eligible part of a room: its floor cells inside
// the cell bounds, minus a disk of SafeRadius around the center.
type SpawnableRoom struct {
	Room       Room
	SafeRadius float64
	// Cells are the eligible floor tiles in row-major order.
	Cells []grid.Point
}

// outsideRadius reports whether p lies at or beyond r from c.
func outsideRadius(p, c grid.Point, r float64) bool {
	return math.Hypot(float64(p.X-c.X), float64(p.Y-c.Y)) >= r
}
