package server

import (
	"github.com/katalvlaran/roomforge/dungeon"
	"github.com/katalvlaran/roomforge/grid"
	"github.com/katalvlaran/roomforge/spawn"
)

// Request types a client may send.
const (
	// TypeGenerate builds a fresh layout and resets spawn state.
	TypeGenerate = "generate"
	// TypeEnter triggers population of one room directly.
	TypeEnter = "enter"
	// TypeMove reports the player's world position.
	TypeMove = "move"
)

// Response types the server sends.
const (
	TypeLayout = "layout"
	TypeSpawn  = "spawn"
	TypeMoved  = "moved"
	TypeError  = "error"
)

// Request is one client message.
type Request struct {
	Type string `json:"type"`

	// generate
	Seed   *int64 `json:"seed,omitempty"`
	Rooms  int    `json:"rooms,omitempty"`
	Bridge bool   `json:"bridge,omitempty"`

	// enter
	Room grid.Point `json:"room"`

	// move
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Response is one server message.
type Response struct {
	Type       string            `json:"type"`
	Layout     *dungeon.Document `json:"layout,omitempty"`
	Room       *grid.Point       `json:"room,omitempty"`
	Entered    bool              `json:"entered,omitempty"`
	Placements []spawn.Placement `json:"placements,omitempty"`
	Error      string            `json:"error,omitempty"`
}

func errorResponse(err error) Response {
	return Response{Type: TypeError, Error: err.Error()}
}
