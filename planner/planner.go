// Package planner chooses room-grid coordinates for a dungeon so that the
// room graph is connected.
//
// The origin (0,0) is always placed first. Every later room is grown from a
// uniformly chosen existing room in a uniformly shuffled cardinal direction,
// so each new coordinate touches an earlier one. The result is connected by
// construction but not balanced: long corridors of rooms and dense clumps
// are both possible.
//
// Complexity: O(A) random draws where A is the number of attempts, bounded by
// Options.MaxAttempts.
package planner

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/roomforge/grid"
)

var (
	// ErrInvalidCount indicates a non-positive room count.
	ErrInvalidCount = errors.New("planner: room count must be positive")
	// ErrNilRand indicates a missing random source.
	ErrNilRand = errors.New("planner: random source is nil")
	// ErrPlacementExhausted indicates the attempt budget ran out before
	// every room could be placed.
	ErrPlacementExhausted = errors.New("planner: placement attempts exhausted")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("planner: invalid option supplied")
)

// AttemptsPerRoom scales the default attempt budget with the room count.
const AttemptsPerRoom = 64

// Options tunes PlaceRooms.
type Options struct {
	// MaxAttempts caps the number of pick-and-scan iterations. Zero selects
	// AttemptsPerRoom*count.
	MaxAttempts int

	err error
}

// Option configures PlaceRooms.
type Option func(*Options)

// WithMaxAttempts overrides the attempt budget. n must be non-negative;
// zero restores the default.
func WithMaxAttempts(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxAttempts cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxAttempts = n
	}
}

// PlaceRooms returns count room-grid coordinates in placement order, starting
// with the origin. The sequence is deterministic for a given rng state.
//
// Each attempt picks one already-placed room, shuffles the four cardinal
// offsets and places a room at the first free neighbour. An attempt whose
// pick is fully surrounded places nothing; the loop simply picks again.
// When the attempt budget is spent first, ErrPlacementExhausted is returned
// together with the rooms placed so far.
func PlaceRooms(count int, rng *rand.Rand, opts ...Option) ([]grid.Point, error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if count <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}
	if rng == nil {
		return nil, ErrNilRand
	}
	budget := o.MaxAttempts
	if budget == 0 {
		budget = AttemptsPerRoom * count
		if budget/AttemptsPerRoom != count {
			budget = math.MaxInt
		}
	}

	// Capacity grows with what is actually placed; count is caller input.
	placed := []grid.Point{grid.Origin}
	occupied := map[grid.Point]struct{}{grid.Origin: {}}

	dirs := grid.CardinalOffsets()
	for attempt := 0; len(placed) < count; attempt++ {
		if attempt >= budget {
			return placed, fmt.Errorf("%w: placed %d of %d rooms in %d attempts",
				ErrPlacementExhausted, len(placed), count, budget)
		}

		from := placed[rng.Intn(len(placed))]
		rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })

		for _, d := range dirs {
			target := from.Add(d)
			if _, taken := occupied[target]; taken {
				continue
			}
			placed = append(placed, target)
			occupied[target] = struct{}{}
			break
		}
	}

	return placed, nil
}
