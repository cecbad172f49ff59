package spawn

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/roomforge/dungeon"
	"github.com/katalvlaran/roomforge/grid"
)

var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("spawn: invalid option supplied")
	// ErrMissingDependency indicates a nil layout, registry or random source.
	ErrMissingDependency = errors.New("spawn: missing dependency")
)

// Behavior selects how a spawned enemy fights.
type Behavior int

const (
	// Melee enemies close in on the player.
	Melee Behavior = iota
	// Ranged enemies keep their distance and shoot.
	Ranged
)

func (b Behavior) String() string {
	switch b {
	case Melee:
		return "melee"
	case Ranged:
		return "ranged"
	}
	return fmt.Sprintf("Behavior(%d)", int(b))
}

// MarshalText encodes b by name.
func (b Behavior) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText decodes "melee" or "ranged"; any other name is an error.
func (b *Behavior) UnmarshalText(text []byte) error {
	switch string(text) {
	case "melee":
		*b = Melee
	case "ranged":
		*b = Ranged
	default:
		return fmt.Errorf("spawn: unknown behavior %q", text)
	}
	return nil
}

// Placement is one enemy to instantiate.
type Placement struct {
	Room     grid.Point `json:"room"`
	Pos      grid.Point `json:"pos"`
	Behavior Behavior   `json:"behavior"`
	// CellSize lets the enemy derive its own room bounds.
	CellSize grid.Size `json:"cellSize"`
}

// Bounds returns the cell rectangle the enemy is confined to.
func (p Placement) Bounds() grid.Rect {
	return dungeon.RoomBounds(p.Room, p.CellSize)
}

// Sink receives placements in the order they are chosen.
type Sink interface {
	Place(p Placement)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(p Placement)

// Place calls f(p).
func (f SinkFunc) Place(p Placement) { f(p) }

// Default population bounds.
const (
	DefaultMinPerRoom = 1
	DefaultMaxPerRoom = 4
)

// Options tunes a Director.
type Options struct {
	MinPerRoom int
	MaxPerRoom int
	SafeRadius float64
	Logger     logrus.FieldLogger

	err error
}

// Option configures a Director.
type Option func(*Options)

// DefaultOptions returns 1–4 enemies per room outside dungeon.DefaultSafeRadius.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return Options{
		MinPerRoom: DefaultMinPerRoom,
		MaxPerRoom: DefaultMaxPerRoom,
		SafeRadius: dungeon.DefaultSafeRadius,
		Logger:     l,
	}
}

// WithCount sets the inclusive range of enemies per room.
func WithCount(lo, hi int) Option {
	return func(o *Options) {
		if lo < 0 || hi < lo {
			o.err = fmt.Errorf("%w: count range [%d,%d] is invalid", ErrOptionViolation, lo, hi)
			return
		}
		o.MinPerRoom, o.MaxPerRoom = lo, hi
	}
}

// WithSafeRadius sets the spawn-free radius around room centers.
func WithSafeRadius(r float64) Option {
	return func(o *Options) {
		if r < 0 || math.IsNaN(r) {
			o.err = fmt.Errorf("%w: safe radius must be a non-negative number (%v)", ErrOptionViolation, r)
			return
		}
		o.SafeRadius = r
	}
}

// WithLogger routes warnings to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
