package planner_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roomforge/bfs"
	"github.com/katalvlaran/roomforge/grid"
	"github.com/katalvlaran/roomforge/planner"
)

func TestPlaceRooms_Errors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	cases := []struct {
		name  string
		count int
		rng   *rand.Rand
		opts  []planner.Option
		err   error
	}{
		{"Zero", 0, rng, nil, planner.ErrInvalidCount},
		{"Negative", -3, rng, nil, planner.ErrInvalidCount},
		{"NilRand", 3, nil, nil, planner.ErrNilRand},
		{"NegativeAttempts", 3, rng, []planner.Option{planner.WithMaxAttempts(-1)}, planner.ErrOptionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := planner.PlaceRooms(tc.count, tc.rng, tc.opts...)
			assert.True(t, errors.Is(err, tc.err), "err = %v; want %v", err, tc.err)
		})
	}
}

// TestPlaceRooms_Single returns exactly the origin.
func TestPlaceRooms_Single(t *testing.T) {
	rooms, err := planner.PlaceRooms(1, rand.New(rand.NewSource(99)))
	require.NoError(t, err)
	assert.Equal(t, []grid.Point{grid.Origin}, rooms)
}

// TestPlaceRooms_ConnectedByConstruction checks that every non-origin room
// has a cardinal neighbour earlier in the returned order.
func TestPlaceRooms_ConnectedByConstruction(t *testing.T) {
	for _, seed := range []int64{1, 7, 42, 1234} {
		rooms, err := planner.PlaceRooms(5, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		require.Len(t, rooms, 5)
		assert.Equal(t, grid.Origin, rooms[0])

		seen := grid.SetOf(rooms[0])
		for _, r := range rooms[1:] {
			require.False(t, seen.Has(r), "seed %d: duplicate %v", seed, r)
			touches := false
			for _, d := range grid.Cardinals {
				if seen.Has(r.Neighbor(d)) {
					touches = true
					break
				}
			}
			assert.True(t, touches, "seed %d: %v has no earlier neighbour", seed, r)
			seen.Put(r)
		}
	}
}

// TestPlaceRooms_ReachableFromOrigin runs a larger plan through BFS.
func TestPlaceRooms_ReachableFromOrigin(t *testing.T) {
	rooms, err := planner.PlaceRooms(60, rand.New(rand.NewSource(5)))
	require.NoError(t, err)

	set := grid.SetOf(rooms...)
	require.Equal(t, 60, set.Len())
	res, err := bfs.BFS(set, grid.Origin)
	require.NoError(t, err)
	assert.Len(t, res.Order, 60)
}

func TestPlaceRooms_Deterministic(t *testing.T) {
	a, err := planner.PlaceRooms(12, rand.New(rand.NewSource(77)))
	require.NoError(t, err)
	b, err := planner.PlaceRooms(12, rand.New(rand.NewSource(77)))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestPlaceRooms_Exhausted returns partial output with a tiny budget.
func TestPlaceRooms_Exhausted(t *testing.T) {
	rooms, err := planner.PlaceRooms(10, rand.New(rand.NewSource(3)), planner.WithMaxAttempts(2))
	require.ErrorIs(t, err, planner.ErrPlacementExhausted)
	// Every attempt from a lone or lightly surrounded room succeeds, so two
	// attempts yield exactly three rooms.
	assert.Len(t, rooms, 3)
}

// TestPlaceRooms_HugeCount stays within the attempt budget instead of
// sizing anything by count.
func TestPlaceRooms_HugeCount(t *testing.T) {
	rooms, err := planner.PlaceRooms(1<<40, rand.New(rand.NewSource(3)), planner.WithMaxAttempts(10))
	require.ErrorIs(t, err, planner.ErrPlacementExhausted)
	assert.LessOrEqual(t, len(rooms), 11)
}
