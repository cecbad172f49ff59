// Package registry records which rooms have already had their deferred
// population triggered, giving spawn logic an at-most-once trigger per room.
//
// All methods are safe for concurrent use; TryMarkSpawned is an atomic
// check-and-insert under a mutex.
package registry

import (
	"sync"

	"github.com/katalvlaran/roomforge/grid"
)

// Registry is a concurrency-safe set of spawned room coordinates.
type Registry struct {
	mu      sync.RWMutex
	spawned map[grid.Point]struct{}
}

// New returns a Registry with origin pre-marked as spawned. The origin is
// the starting room and never receives deferred spawns.
func New(origin grid.Point) *Registry {
	return &Registry{spawned: map[grid.Point]struct{}{origin: {}}}
}

// TryMarkSpawned marks room as spawned. It returns true only on the first
// call for a given coordinate.
func (r *Registry) TryMarkSpawned(room grid.Point) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, done := r.spawned[room]; done {
		return false
	}
	r.spawned[room] = struct{}{}
	return true
}

// Spawned reports whether room has been marked.
func (r *Registry) Spawned(room grid.Point) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, done := r.spawned[room]
	return done
}

// Len returns the number of marked rooms, origin included.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.spawned)
}
