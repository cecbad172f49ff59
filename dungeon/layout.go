package dungeon

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/roomforge/contour"
	"github.com/katalvlaran/roomforge/grid"
)

// Layout is the frozen output of one generation run. It is never mutated
// after Generate returns, so concurrent reads are safe. Accessors return
// copies.
type Layout struct {
	seed     int64
	cellSize grid.Size
	rooms    []Room
	index    map[grid.Point]int
	floor    grid.Set
	walls    grid.Set
	boundary *contour.Result
	bridged  int
	islands  int
}

// Stats summarizes a layout.
type Stats struct {
	Seed         int64         `json:"seed"`
	Rooms        int           `json:"rooms"`
	Floor        int           `json:"floor"`
	Walls        int           `json:"walls"`
	FloorIslands int           `json:"floorIslands"`
	Bridged      int           `json:"bridged"`
	MaxDepth     int           `json:"maxDepth"`
	Contour      contour.Stats `json:"contour"`
}

// Seed returns the seed the layout was generated from.
func (l *Layout) Seed() int64 { return l.seed }

// CellSize returns the room cell size.
func (l *Layout) CellSize() grid.Size { return l.cellSize }

// Floor returns a copy of the floor cells.
func (l *Layout) Floor() grid.Set { return l.floor.Clone() }

// Walls returns a copy of the wall cells.
func (l *Layout) Walls() grid.Set { return l.walls.Clone() }

// Loops returns a copy of the boundary loops in extraction order.
func (l *Layout) Loops() []contour.Loop {
	out := make([]contour.Loop, len(l.boundary.Loops))
	for i, lp := range l.boundary.Loops {
		out[i] = append(contour.Loop(nil), lp...)
	}
	return out
}

// Edges returns a copy of the deduplicated boundary edges.
func (l *Layout) Edges() []contour.Edge {
	return append([]contour.Edge(nil), l.boundary.Edges...)
}

// Rooms returns the rooms in placement order.
func (l *Layout) Rooms() []Room {
	return append([]Room(nil), l.rooms...)
}

// Room returns the room at coord.
func (l *Layout) Room(coord grid.Point) (Room, bool) {
	i, ok := l.index[coord]
	if !ok {
		return Room{}, false
	}
	return l.rooms[i], true
}

// RoomBounds returns the full cell rectangle for coord whether or not a room
// was placed there.
func (l *Layout) RoomBounds(coord grid.Point) grid.Rect {
	return RoomBounds(coord, l.cellSize)
}

// RoomDepth returns the hop count from the origin to the room at coord.
func (l *Layout) RoomDepth(coord grid.Point) (int, bool) {
	r, ok := l.Room(coord)
	return r.Depth, ok
}

// SpawnableRoom returns the floor cells of the room at coord that lie inside
// its cell and at least safeRadius from its center. A non-positive radius
// excludes nothing.
func (l *Layout) SpawnableRoom(coord grid.Point, safeRadius float64) (SpawnableRoom, error) {
	r, ok := l.Room(coord)
	if !ok {
		return SpawnableRoom{}, fmt.Errorf("%w: %v", ErrUnknownRoom, coord)
	}
	cells := l.floor.Filter(func(p grid.Point) bool {
		return r.Cell.Contains(p) && outsideRadius(p, r.Center, safeRadius)
	})
	return SpawnableRoom{Room: r, SafeRadius: safeRadius, Cells: cells}, nil
}

// Stats returns summary counts for the layout.
func (l *Layout) Stats() Stats {
	s := Stats{
		Seed:         l.seed,
		Rooms:        len(l.rooms),
		Floor:        l.floor.Len(),
		Walls:        l.walls.Len(),
		FloorIslands: l.islands,
		Bridged:      l.bridged,
		Contour:      l.boundary.Stats(),
	}
	for _, r := range l.rooms {
		s.MaxDepth = max(s.MaxDepth, r.Depth)
	}
	return s
}

// ASCII renders the layout with '.' for floor, '#' for wall and ' ' for
// empty tiles. The top line is the highest Y. An empty layout renders as "".
func (l *Layout) ASCII() string {
	all := l.floor.Clone()
	all.Union(l.walls)
	if all.Len() == 0 {
		return ""
	}
	box := all.Bounds()

	var b strings.Builder
	b.Grow((box.W + 1) * box.H)
	for y := box.MaxY() - 1; y >= box.Y; y-- {
		for x := box.X; x < box.MaxX(); x++ {
			p := grid.Point{X: x, Y: y}
			switch {
			case l.floor.Has(p):
				b.WriteByte('.')
			case l.walls.Has(p):
				b.WriteByte('#')
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
