package gridgraph

import (
	"container/list"

	"github.com/katalvlaran/roomforge/grid"
)

// ExpandIsland finds a minimum-conversion path of water cells to connect any
// cell in component srcComp to any cell in component dstComp, as identified
// by ConnectedComponents(). Each water-cell conversion costs 1.
// Returns the sequence of cell-indices (row-major) representing the path
// (including the start and end land cells) and the total conversion cost.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi-source 0–1-BFS from all srcComp cells:
//     • Moving into an existing land cell   → cost 0
//     • Moving into a water cell             → cost 1
//  3. Stop when any dstComp cell is reached.
//  4. Reconstruct path via predecessors.
//
// Complexity: O(W·H) on average.
// Memory:     O(W·H) for distance and prev pointers.
func (gg *GridGraph) ExpandIsland(srcComp, dstComp int) (path []int, cost int, err error) {
	comps := gg.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	src := comps[srcComp]
	dstSet := make(map[int]struct{}, len(comps[dstComp]))
	for _, i := range comps[dstComp] {
		dstSet[i] = struct{}{}
	}

	n := gg.Width * gg.Height
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0–1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	for _, i := range src {
		dist[i] = 0
		dq.PushFront(i)
	}

	offsets := gg.NeighborOffsets()
	target := -1

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if _, ok := dstSet[u]; ok {
			target = u
			break
		}
		ux, uy := gg.local(u)
		for _, d := range offsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.InBounds(vx, vy) {
				continue
			}
			v := gg.index(vx, vy)
			step := 0
			if gg.CellValues[vy][vx] < 1 {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, ErrNoPath
	}
	for at := target; at >= 0; at = prev[at] {
		path = append([]int{at}, path...)
	}
	return path, dist[target], nil
}

// Bridge joins every island of cells into one 4-connected region by
// repeatedly converting the cheapest water path between the first island and
// the next. It returns the converted cells; cells itself is not modified.
// An empty or already connected set yields an empty result.
func Bridge(cells grid.Set) (grid.Set, error) {
	added := grid.NewSet()
	if cells.Len() == 0 {
		return added, nil
	}
	gg, err := FromCells(cells, DefaultGridOptions())
	if err != nil {
		return grid.Set{}, err
	}
	for len(gg.ConnectedComponents()) > 1 {
		path, _, err := gg.ExpandIsland(0, 1)
		if err != nil {
			return grid.Set{}, err
		}
		for _, idx := range path {
			x, y := gg.local(idx)
			if gg.CellValues[y][x] >= 1 {
				continue
			}
			gg.CellValues[y][x] = 1
			added.Put(gg.Coordinate(idx))
		}
	}
	return added, nil
}
