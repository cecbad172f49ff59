package dungeon

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/roomforge/bfs"
	"github.com/katalvlaran/roomforge/carve"
	"github.com/katalvlaran/roomforge/contour"
	"github.com/katalvlaran/roomforge/corridor"
	"github.com/katalvlaran/roomforge/grid"
	"github.com/katalvlaran/roomforge/gridgraph"
	"github.com/katalvlaran/roomforge/planner"
	"github.com/katalvlaran/roomforge/walls"
)

// Generator owns a validated Config and produces layouts from it.
// A Generator holds no mutable state; Generate may be called repeatedly and
// concurrently, and yields the same Layout for the same Config.
type Generator struct {
	cfg      Config
	cellSize grid.Size
	log      logrus.FieldLogger
}

// New applies opts over DefaultConfig and validates the result.
// Any invalid option or degenerate geometry returns an error wrapping
// ErrInvalidConfig.
func New(opts ...Option) (*Generator, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Generator{
		cfg:      cfg,
		cellSize: cfg.Viewport.CellSize(),
		log:      cfg.Logger.WithField("seed", cfg.Seed),
	}, nil
}

// Config returns the validated configuration.
func (g *Generator) Config() Config { return g.cfg }

// CellSize returns the room cell size derived from the viewport.
func (g *Generator) CellSize() grid.Size { return g.cellSize }

// Generate runs the full pipeline:
//
//  1. plan room coordinates on the room grid;
//  2. carve each room's floor in placement order;
//  3. carve corridors between grid-adjacent rooms;
//  4. optionally bridge stray floor islands;
//  5. surround the floor with walls;
//  6. trace the wall boundary into closed loops;
//  7. bake the navigation mesh, when a baker is configured.
//
// Every failure is a *StageError.
func (g *Generator) Generate() (*Layout, error) {
	rng := rand.New(rand.NewSource(g.cfg.Seed))

	// 1. Plan
	coords, err := planner.PlaceRooms(g.cfg.Rooms, rng, planner.WithMaxAttempts(g.cfg.MaxPlacementAttempts))
	if err != nil {
		return nil, stageErr(StagePlan, ErrPlacement, err)
	}
	depth, err := bfs.BFS(grid.SetOf(coords...), grid.Origin)
	if err != nil {
		return nil, stageErr(StagePlan, ErrInvariant, err)
	}
	if len(depth.Order) != len(coords) {
		return nil, stageErr(StagePlan, ErrInvariant, errDisconnected)
	}
	rooms := make([]Room, len(coords))
	index := make(map[grid.Point]int, len(coords))
	for i, c := range coords {
		rooms[i] = Room{
			Coord:  c,
			Center: RoomCenter(c, g.cellSize),
			Bounds: CarveBounds(c, g.cellSize, g.cfg.Padding),
			Cell:   RoomBounds(c, g.cellSize),
			Depth:  depth.Depth[c],
		}
		index[c] = i
	}
	g.log.WithFields(logrus.Fields{"stage": StagePlan, "rooms": len(rooms)}).Debug("rooms placed")

	// 2. Carve
	floor := grid.NewSet()
	for _, r := range rooms {
		floor.Union(carve.Room(r.Bounds, g.cfg.Iterations, g.cfg.WalkLength, rng))
	}
	g.log.WithFields(logrus.Fields{"stage": StageCarve, "floor": floor.Len()}).Debug("rooms carved")

	// 3. Corridors
	floor.Union(corridor.ConnectAdjacentRooms(coords, g.cellSize))
	g.log.WithFields(logrus.Fields{"stage": StageCorridor, "floor": floor.Len()}).Debug("corridors carved")

	// 4. Bridge
	islands, err := countIslands(floor)
	if err != nil {
		return nil, stageErr(StageBridge, ErrInvariant, err)
	}
	bridged := 0
	if g.cfg.BridgeIslands && islands > 1 {
		added, err := gridgraph.Bridge(floor)
		if err != nil {
			return nil, stageErr(StageBridge, ErrInvariant, err)
		}
		floor.Union(added)
		bridged = added.Len()
		if islands, err = countIslands(floor); err != nil {
			return nil, stageErr(StageBridge, ErrInvariant, err)
		}
		g.log.WithFields(logrus.Fields{"stage": StageBridge, "bridged": bridged}).Debug("floor islands joined")
	}
	if islands > 1 {
		g.log.WithFields(logrus.Fields{"stage": StageBridge, "islands": islands}).Warn("floor is not connected")
	}

	// 5. Walls
	wallCells, err := walls.Build(floor, g.cfg.WallThickness)
	if err != nil {
		return nil, stageErr(StageWalls, ErrInvalidConfig, err)
	}
	if !wallCells.Disjoint(floor) {
		return nil, stageErr(StageWalls, ErrInvariant, errOverlap)
	}
	g.log.WithFields(logrus.Fields{"stage": StageWalls, "walls": wallCells.Len()}).Debug("walls built")

	// 6. Contour
	boundary, err := contour.Extract(wallCells)
	if err != nil {
		return nil, stageErr(StageContour, ErrInvariant, err)
	}
	g.log.WithFields(logrus.Fields{"stage": StageContour, "loops": len(boundary.Loops)}).Debug("boundary traced")

	layout := &Layout{
		seed:     g.cfg.Seed,
		cellSize: g.cellSize,
		rooms:    rooms,
		index:    index,
		floor:    floor,
		walls:    wallCells,
		boundary: boundary,
		bridged:  bridged,
		islands:  islands,
	}

	// 7. Navigation mesh
	if g.cfg.NavMesh == nil {
		g.log.WithField("stage", StageNavMesh).Warn("no navmesh baker configured")
	} else if err := g.cfg.NavMesh.Bake(); err != nil {
		return nil, &StageError{Stage: StageNavMesh, Err: err}
	}

	g.log.WithFields(logrus.Fields{
		"rooms": len(rooms),
		"floor": floor.Len(),
		"walls": wallCells.Len(),
		"loops": len(boundary.Loops),
	}).Info("dungeon generated")
	return layout, nil
}

// countIslands returns the number of 4-connected floor regions.
func countIslands(floor grid.Set) (int, error) {
	if floor.Len() == 0 {
		return 0, nil
	}
	gg, err := gridgraph.FromCells(floor, gridgraph.DefaultGridOptions())
	if err != nil {
		return 0, err
	}
	return len(gg.ConnectedComponents()), nil
}
