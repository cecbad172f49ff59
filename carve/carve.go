// Package carve produces organic room floors with bounded random walks.
//
// A room is carved by running several independent walks from uniformly
// random starts inside the room rectangle. A walker records its current cell
// only while it is inside the rectangle but is free to wander out and back,
// which rounds the blob's edges. The union of all walks is the room floor.
//
// There is no connectivity guarantee. Even at the dungeon package defaults a
// short walk can re-enter the rectangle away from the main blob and leave a
// stray fragment of one or two cells. Callers that need a single region
// bridge the islands afterwards (see gridgraph.Bridge).
//
// Complexity: O(iterations × walkLength) time, O(|result|) memory.
package carve

import (
	"math/rand"

	"github.com/katalvlaran/roomforge/grid"
)

// Room carves a floor shape inside bounds. It runs iterations walks of
// walkLength steps each and returns the union of the cells they recorded.
// Non-positive iterations or walkLength, or an empty bounds, yield an empty
// set. rng must not be nil.
func Room(bounds grid.Rect, iterations, walkLength int, rng *rand.Rand) grid.Set {
	floor := grid.NewSet()
	if iterations <= 0 || walkLength <= 0 || bounds.Empty() {
		return floor
	}
	for i := 0; i < iterations; i++ {
		start := grid.Point{
			X: bounds.X + rng.Intn(bounds.W),
			Y: bounds.Y + rng.Intn(bounds.H),
		}
		walk(floor, start, walkLength, bounds, rng)
	}
	return floor
}

// Walk runs a single bounded random walk of length steps from start and
// returns the in-bounds cells it visited. The walker records the current cell
// before each move, so the final position is not recorded.
func Walk(start grid.Point, length int, bounds grid.Rect, rng *rand.Rand) grid.Set {
	path := grid.NewSet()
	walk(path, start, length, bounds, rng)
	return path
}

func walk(into grid.Set, cur grid.Point, length int, bounds grid.Rect, rng *rand.Rand) {
	for step := 0; step < length; step++ {
		if bounds.Contains(cur) {
			into.Put(cur)
		}
		cur = cur.Neighbor(grid.Cardinals[rng.Intn(len(grid.Cardinals))])
	}
}
