package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/roomforge/grid"
)

// queueItem pairs a point with its BFS depth.
type queueItem struct {
	p     grid.Point
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	members grid.Set
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	res     *BFSResult
}

// BFS runs breadth-first search over the implicit graph whose vertices are the
// members of set and whose edges join members one cardinal step apart.
// Neighbors are expanded in grid.Cardinals order, so the visit sequence is
// reproducible for a given set.
// Returns ErrStartVertexNotFound if start is not a member, ErrOptionViolation
// for bad options, the context error on cancellation, or any OnVisit error.
func BFS(members grid.Set, start grid.Point, opts ...Option) (*BFSResult, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !members.Has(start) {
		return nil, ErrStartVertexNotFound
	}

	n := members.Len()
	w := &walker{
		members: members,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		res: &BFSResult{
			Order:  make([]grid.Point, 0, n),
			Depth:  make(map[grid.Point]int, n),
			Parent: make(map[grid.Point]grid.Point, n),
		},
	}

	w.enqueue(start, 0, start, false)
	return w.res, w.loop()
}

// Connected reports whether every member of set is reachable from every
// other through cardinal steps. The empty set is connected.
func Connected(members grid.Set) bool {
	if members.Len() == 0 {
		return true
	}
	start := members.Sorted()[0]
	res, err := BFS(members, start)
	if err != nil {
		return false
	}
	return len(res.Order) == members.Len()
}

// enqueue records depth (and parent when hasParent) and queues p.
func (w *walker) enqueue(p grid.Point, d int, parent grid.Point, hasParent bool) {
	w.res.Depth[p] = d
	if hasParent {
		w.res.Parent[p] = parent
	}
	w.queue = append(w.queue, queueItem{p: p, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.p)
		if err := w.opts.OnVisit(item.p, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.p, err)
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen
// member neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, d := range grid.Cardinals {
		nbr := item.p.Neighbor(d)
		if !w.members.Has(nbr) {
			continue
		}
		if _, seen := w.res.Depth[nbr]; seen {
			continue
		}
		if !w.opts.FilterNeighbor(item.p, nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.p, true)
	}
}
