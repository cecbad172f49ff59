package dungeon

import (
	"fmt"
	"io"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/roomforge/grid"
)

// Default generation parameters.
const (
	DefaultRooms         = 10
	DefaultIterations    = 100
	DefaultWalkLength    = 50
	DefaultPadding       = 2
	DefaultWallThickness = 2
	DefaultSafeRadius    = 5.0
	DefaultHalfWidth     = 16.0
	DefaultHalfHeight    = 9.0
)

// MaxRooms is the largest room count a Config accepts.
const MaxRooms = 1024

// Viewport is the camera's half extents in world units. One room cell spans
// exactly one viewport.
type Viewport struct {
	HalfWidth  float64 `json:"halfWidth"`
	HalfHeight float64 `json:"halfHeight"`
}

// CellSize derives the room cell size as (floor(2*HalfWidth), floor(2*HalfHeight)).
func (v Viewport) CellSize() grid.Size {
	return grid.Size{W: int(math.Floor(2 * v.HalfWidth)), H: int(math.Floor(2 * v.HalfHeight))}
}

// NavMeshBaker rebuilds navigation data from the emitted geometry. It is
// invoked once after every successful generation.
type NavMeshBaker interface {
	Bake() error
}

// NavMeshFunc adapts a function to NavMeshBaker.
type NavMeshFunc func() error

// Bake calls f.
func (f NavMeshFunc) Bake() error { return f() }

// Config holds every generation parameter. Build it with DefaultConfig and
// Options; New validates it.
type Config struct {
	Rooms         int
	Iterations    int
	WalkLength    int
	Padding       int
	WallThickness int
	Seed          int64
	Viewport      Viewport

	// MaxPlacementAttempts caps planner attempts; zero selects the planner default.
	MaxPlacementAttempts int
	// SafeRadius is the spawn-free disk around each room center.
	SafeRadius float64
	// BridgeIslands carves extra floor so the floor forms one 4-connected region.
	BridgeIslands bool

	Logger  logrus.FieldLogger
	NavMesh NavMeshBaker

	err error
}

// Option configures a Generator.
type Option func(*Config)

// DefaultConfig returns the stock parameter set with a discarding logger.
func DefaultConfig() Config {
	return Config{
		Rooms:         DefaultRooms,
		Iterations:    DefaultIterations,
		WalkLength:    DefaultWalkLength,
		Padding:       DefaultPadding,
		WallThickness: DefaultWallThickness,
		Viewport:      Viewport{HalfWidth: DefaultHalfWidth, HalfHeight: DefaultHalfHeight},
		SafeRadius:    DefaultSafeRadius,
		Logger:        discardLogger(),
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// fail records the first option error.
func (c *Config) fail(format string, args ...any) {
	if c.err == nil {
		c.err = fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...)
	}
}

// WithRooms sets the number of rooms; n must be in [1, MaxRooms].
func WithRooms(n int) Option {
	return func(c *Config) {
		if n <= 0 || n > MaxRooms {
			c.fail("room count must be in [1,%d] (%d)", MaxRooms, n)
			return
		}
		c.Rooms = n
	}
}

// WithCarve sets the random-walk count and length per room. Zero is allowed
// and yields rooms with no carved floor.
func WithCarve(iterations, walkLength int) Option {
	return func(c *Config) {
		if iterations < 0 || walkLength < 0 {
			c.fail("carve parameters cannot be negative (%d, %d)", iterations, walkLength)
			return
		}
		c.Iterations = iterations
		c.WalkLength = walkLength
	}
}

// WithPadding sets the margin between a room's carve area and its cell edge.
func WithPadding(p int) Option {
	return func(c *Config) {
		if p < 0 {
			c.fail("padding cannot be negative (%d)", p)
			return
		}
		c.Padding = p
	}
}

// WithWallThickness sets the number of wall rings; t must be at least 1.
func WithWallThickness(t int) Option {
	return func(c *Config) {
		if t < 1 {
			c.fail("wall thickness must be at least 1 (%d)", t)
			return
		}
		c.WallThickness = t
	}
}

// WithSeed sets the random seed.
func WithSeed(seed int64) Option {
	return func(c *Config) { c.Seed = seed }
}

// WithViewport sets the camera half extents used to size room cells.
func WithViewport(halfWidth, halfHeight float64) Option {
	return func(c *Config) {
		c.Viewport = Viewport{HalfWidth: halfWidth, HalfHeight: halfHeight}
	}
}

// WithMaxPlacementAttempts caps the planner's attempt budget.
func WithMaxPlacementAttempts(n int) Option {
	return func(c *Config) {
		if n < 0 {
			c.fail("placement attempts cannot be negative (%d)", n)
			return
		}
		c.MaxPlacementAttempts = n
	}
}

// WithSafeRadius sets the spawn-free radius around room centers.
func WithSafeRadius(r float64) Option {
	return func(c *Config) {
		if r < 0 || math.IsNaN(r) {
			c.fail("safe radius cannot be negative (%v)", r)
			return
		}
		c.SafeRadius = r
	}
}

// WithBridgeIslands enables the floor-joining pass.
func WithBridgeIslands(on bool) Option {
	return func(c *Config) { c.BridgeIslands = on }
}

// WithLogger routes stage logging to l. A nil logger keeps the default.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Config) {
		if l != nil {
			c.Logger = l
		}
	}
}

// WithNavMesh registers the navigation-mesh collaborator.
func WithNavMesh(b NavMeshBaker) Option {
	return func(c *Config) { c.NavMesh = b }
}

// Validate checks c and returns an error wrapping ErrInvalidConfig.
func (c Config) Validate() error {
	if c.err != nil {
		return c.err
	}
	switch {
	case c.Rooms <= 0 || c.Rooms > MaxRooms:
		return fmt.Errorf("%w: room count must be in [1,%d] (%d)", ErrInvalidConfig, MaxRooms, c.Rooms)
	case c.Iterations < 0 || c.WalkLength < 0:
		return fmt.Errorf("%w: carve parameters cannot be negative", ErrInvalidConfig)
	case c.Padding < 0:
		return fmt.Errorf("%w: padding cannot be negative (%d)", ErrInvalidConfig, c.Padding)
	case c.WallThickness < 1:
		return fmt.Errorf("%w: wall thickness must be at least 1 (%d)", ErrInvalidConfig, c.WallThickness)
	case c.MaxPlacementAttempts < 0:
		return fmt.Errorf("%w: placement attempts cannot be negative", ErrInvalidConfig)
	case c.SafeRadius < 0 || math.IsNaN(c.SafeRadius):
		return fmt.Errorf("%w: safe radius cannot be negative", ErrInvalidConfig)
	}
	cell := c.Viewport.CellSize()
	if cell.Empty() {
		return fmt.Errorf("%w: viewport %+v yields degenerate room cell %dx%d",
			ErrInvalidConfig, c.Viewport, cell.W, cell.H)
	}
	if b := carveSize(cell, c.Padding); b.Empty() {
		return fmt.Errorf("%w: padding %d leaves no carve area in a %dx%d cell",
			ErrInvalidConfig, c.Padding, cell.W, cell.H)
	}
	return nil
}

// carveSize is the room cell shrunk by padding on every side.
func carveSize(cell grid.Size, padding int) grid.Size {
	return grid.Size{W: cell.W - 2*padding, H: cell.H - 2*padding}
}
