package corridor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roomforge/bfs"
	"github.com/katalvlaran/roomforge/corridor"
	"github.com/katalvlaran/roomforge/grid"
)

// TestConnectAdjacentRooms_Horizontal covers two rooms side by side with a
// 10×10 cell: the corridor is the straight run x=0..10 on y=0.
func TestConnectAdjacentRooms_Horizontal(t *testing.T) {
	rooms := []grid.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}
	floor := corridor.ConnectAdjacentRooms(rooms, grid.Size{W: 10, H: 10})

	require.Equal(t, 11, floor.Len())
	assert.True(t, floor.Has(grid.Point{X: 0, Y: 0}))
	assert.True(t, floor.Has(grid.Point{X: 10, Y: 0}))

	for i, p := range floor.Sorted() {
		assert.Equal(t, grid.Point{X: i, Y: 0}, p)
	}
}

// TestConnectAdjacentRooms_Vertical covers the up direction only.
func TestConnectAdjacentRooms_Vertical(t *testing.T) {
	rooms := []grid.Point{{X: 0, Y: 1}, {X: 0, Y: 0}}
	floor := corridor.ConnectAdjacentRooms(rooms, grid.Size{W: 8, H: 6})
	require.Equal(t, 7, floor.Len())
	for y := 0; y <= 6; y++ {
		assert.True(t, floor.Has(grid.Point{X: 0, Y: y}))
	}
}

// TestConnectAdjacentRooms_NotAdjacent ignores diagonal and distant rooms.
func TestConnectAdjacentRooms_NotAdjacent(t *testing.T) {
	rooms := []grid.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 3, Y: 0}}
	floor := corridor.ConnectAdjacentRooms(rooms, grid.Size{W: 10, H: 10})
	assert.Equal(t, 0, floor.Len())
}

// TestConnectAdjacentRooms_Connected joins a plus of rooms into one network.
func TestConnectAdjacentRooms_Connected(t *testing.T) {
	rooms := []grid.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: -1, Y: 0}}
	size := grid.Size{W: 12, H: 8}
	floor := corridor.ConnectAdjacentRooms(rooms, size)

	for _, r := range rooms {
		assert.True(t, floor.Has(r.Scale(size)), "center of %v missing", r)
	}
	assert.True(t, bfs.Connected(floor))
	// Four spokes sharing the origin cell.
	assert.Equal(t, 2*12+2*8+1, floor.Len())
}

// TestPath_LShape walks x first, then y.
func TestPath_LShape(t *testing.T) {
	path := corridor.Path(grid.Point{X: 0, Y: 0}, grid.Point{X: -2, Y: 3})
	want := grid.SetOf(
		grid.Point{X: 0, Y: 0}, grid.Point{X: -1, Y: 0}, grid.Point{X: -2, Y: 0},
		grid.Point{X: -2, Y: 1}, grid.Point{X: -2, Y: 2}, grid.Point{X: -2, Y: 3},
	)
	assert.True(t, path.Equal(want), "path = %v", path.Sorted())
	assert.False(t, path.Has(grid.Point{X: 0, Y: 3}), "corner must be at the end x")
}

func TestPath_SamePoint(t *testing.T) {
	path := corridor.Path(grid.Point{X: 4, Y: 4}, grid.Point{X: 4, Y: 4})
	assert.Equal(t, []grid.Point{{X: 4, Y: 4}}, path.Sorted())
}
