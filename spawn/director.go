package spawn

import (
	"math/rand"
	"slices"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/roomforge/dungeon"
	"github.com/katalvlaran/roomforge/grid"
	"github.com/katalvlaran/roomforge/registry"
)

// Director decides enemy placements per room. It is safe for concurrent
// use; the random source is guarded by a mutex.
type Director struct {
	layout *dungeon.Layout
	reg    *registry.Registry
	sink   Sink
	opts   Options
	log    logrus.FieldLogger

	mu  sync.Mutex
	rng *rand.Rand
}

var _ dungeon.Listener = (*Director)(nil)

// NewDirector builds a Director. sink may be nil when callers only use the
// slices returned by Populate.
func NewDirector(layout *dungeon.Layout, reg *registry.Registry, rng *rand.Rand, sink Sink, opts ...Option) (*Director, error) {
	if layout == nil || reg == nil || rng == nil {
		return nil, ErrMissingDependency
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &Director{
		layout: layout,
		reg:    reg,
		sink:   sink,
		opts:   o,
		log:    o.Logger.WithField("component", "spawn"),
		rng:    rng,
	}, nil
}

// RoomEntered populates the entered room. Errors are logged, not returned.
func (d *Director) RoomEntered(t dungeon.Transition) {
	if _, err := d.Populate(t.Coord); err != nil {
		d.log.WithError(err).WithField("room", t.Coord).Warn("spawn skipped")
	}
}

// Populate places enemies in the room at coord the first time it is called
// for that room and returns the placements. Later calls, and calls for the
// origin room, return nil.
func (d *Director) Populate(coord grid.Point) ([]Placement, error) {
	room, err := d.layout.SpawnableRoom(coord, d.opts.SafeRadius)
	if err != nil {
		return nil, err
	}
	if !d.reg.TryMarkSpawned(coord) {
		return nil, nil
	}

	fields := logrus.Fields{"room": coord, "eligible": len(room.Cells)}
	if len(room.Cells) == 0 {
		d.log.WithFields(fields).Warn("no eligible spawn cells")
		return nil, nil
	}

	cells := slices.Clone(room.Cells)
	placed := d.pick(coord, cells)
	for _, p := range placed {
		if d.sink != nil {
			d.sink.Place(p)
		}
	}
	fields["placed"] = len(placed)
	d.log.WithFields(fields).Debug("room populated")
	return placed, nil
}

// pick draws the enemy count and then distinct cells, removing each chosen
// cell from the candidate list.
func (d *Director) pick(coord grid.Point, cells []grid.Point) []Placement {
	d.mu.Lock()
	defer d.mu.Unlock()

	want := d.opts.MinPerRoom + d.rng.Intn(d.opts.MaxPerRoom-d.opts.MinPerRoom+1)
	n := min(want, len(cells))
	out := make([]Placement, 0, n)
	for c := 0; c < n; c++ {
		i := d.rng.Intn(len(cells))
		out = append(out, Placement{
			Room:     coord,
			Pos:      cells[i],
			Behavior: Behavior(d.rng.Intn(2)),
			CellSize: d.layout.CellSize(),
		})
		cells = slices.Delete(cells, i, i+1)
	}
	return out
}
