package dungeon

import (
	"github.com/katalvlaran/roomforge/grid"
)

// Transition announces that a tracked agent entered another room. It carries
// the cell size so receivers can derive the room bounds themselves.
type Transition struct {
	Coord    grid.Point `json:"coord"`
	CellSize grid.Size  `json:"cellSize"`
}

// Bounds returns the full cell rectangle of the entered room.
func (t Transition) Bounds() grid.Rect {
	return RoomBounds(t.Coord, t.CellSize)
}

// Listener receives room transitions.
type Listener interface {
	RoomEntered(t Transition)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(t Transition)

// RoomEntered calls f(t).
func (f ListenerFunc) RoomEntered(t Transition) { f(t) }

// Tracker follows one agent's world position and notifies listeners,
// synchronously and in subscription order, whenever the agent's room
// coordinate changes. The agent starts in the origin room.
//
// A Tracker is not safe for concurrent use.
type Tracker struct {
	cellSize  grid.Size
	current   grid.Point
	listeners []Listener
}

// NewTracker returns a Tracker positioned in the origin room.
func NewTracker(cellSize grid.Size, listeners ...Listener) *Tracker {
	return &Tracker{cellSize: cellSize, listeners: append([]Listener(nil), listeners...)}
}

// Subscribe appends l to the listener list.
func (t *Tracker) Subscribe(l Listener) {
	t.listeners = append(t.listeners, l)
}

// Current returns the room coordinate the agent is in.
func (t *Tracker) Current() grid.Point { return t.current }

// Update moves the agent to a world position. When the room coordinate
// changes, every listener receives the Transition before Update returns.
func (t *Tracker) Update(worldX, worldY float64) (Transition, bool) {
	coord := GridPosition(worldX, worldY, t.cellSize)
	if coord == t.current {
		return Transition{}, false
	}
	t.current = coord
	tr := Transition{Coord: coord, CellSize: t.cellSize}
	for _, l := range t.listeners {
		l.RoomEntered(tr)
	}
	return tr, true
}
