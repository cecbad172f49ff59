package carve_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roomforge/carve"
	"github.com/katalvlaran/roomforge/grid"
)

var bounds = grid.Rect{X: -5, Y: -3, W: 10, H: 6}

// TestRoom_ZeroWork returns an empty set for zero iterations or walk length.
func TestRoom_ZeroWork(t *testing.T) {
	cases := []struct {
		name             string
		iterations, walk int
		bounds           grid.Rect
	}{
		{"ZeroIterations", 0, 50, bounds},
		{"ZeroWalk", 100, 0, bounds},
		{"NegativeWalk", 10, -1, bounds},
		{"EmptyBounds", 10, 10, grid.Rect{W: 0, H: 4}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := carve.Room(tc.bounds, tc.iterations, tc.walk, rand.New(rand.NewSource(1)))
			assert.Equal(t, 0, got.Len())
		})
	}
}

// TestRoom_ConfinedToBounds checks that no cell escapes the rectangle.
func TestRoom_ConfinedToBounds(t *testing.T) {
	floor := carve.Room(bounds, 40, 30, rand.New(rand.NewSource(11)))
	require.Greater(t, floor.Len(), 0)
	floor.Each(func(p grid.Point) {
		assert.True(t, bounds.Contains(p), "cell %v outside %v", p, bounds)
	})
}

// TestRoom_SingleStep records exactly the start cell.
func TestRoom_SingleStep(t *testing.T) {
	floor := carve.Room(bounds, 1, 1, rand.New(rand.NewSource(2)))
	assert.Equal(t, 1, floor.Len())
}

func TestRoom_Deterministic(t *testing.T) {
	a := carve.Room(bounds, 20, 20, rand.New(rand.NewSource(9)))
	b := carve.Room(bounds, 20, 20, rand.New(rand.NewSource(9)))
	assert.True(t, a.Equal(b))
}

// TestRoom_DefaultDensityFills checks the default carve parameters cover most
// of the room and stay inside it. Connectivity is not part of the contract.
func TestRoom_DefaultDensityFills(t *testing.T) {
	room := grid.Rect{X: -14, Y: -7, W: 28, H: 14}
	for seed := int64(1); seed <= 100; seed++ {
		floor := carve.Room(room, 100, 50, rand.New(rand.NewSource(seed)))
		assert.Greater(t, floor.Len(), room.W*room.H/2, "seed %d: room is sparse", seed)
		floor.Each(func(p grid.Point) {
			assert.True(t, room.Contains(p), "seed %d: %v outside room", seed, p)
		})
	}
}

// TestWalk_LeavesAndReenters uses a one-cell window: only visits to that
// cell are recorded no matter how far the walker strays.
func TestWalk_LeavesAndReenters(t *testing.T) {
	window := grid.Rect{X: 0, Y: 0, W: 1, H: 1}
	path := carve.Walk(grid.Origin, 200, window, rand.New(rand.NewSource(4)))
	assert.Equal(t, 1, path.Len())
	assert.True(t, path.Has(grid.Origin))

	outside := carve.Walk(grid.Point{X: 1000, Y: 1000}, 5, window, rand.New(rand.NewSource(4)))
	assert.Equal(t, 0, outside.Len())
}
