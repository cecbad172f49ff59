// Package dungeon orchestrates procedural dungeon generation.
//
// What:
//
//   - Generator runs the pipeline plan → carve → corridor → (bridge) →
//     walls → contour and returns an immutable Layout.
//   - Layout exposes floor and wall cells, boundary loops, room bounds,
//     spawn-eligible cells and a JSON Document.
//   - Tracker turns an agent's world position into room Transitions for
//     registered Listeners.
//
// Coordinates:
//
//   - Room coordinates index slots on the room grid; (0,0) is the origin room.
//   - World tiles: a room at coord c is centered on c scaled by the cell size.
//     The cell size is derived once from the Viewport.
//
// Determinism:
//
//   - One *rand.Rand seeded from Config.Seed feeds every stage, and rooms are
//     carved in placement order. The same Config always yields the same Layout.
//
// Errors:
//
//   - ErrInvalidConfig from New, before any stage runs.
//   - *StageError from Generate, wrapping ErrPlacement or ErrInvariant.
//   - ErrUnknownRoom from Layout queries.
//
// Empty geometry is not an error: zero carve parameters produce a layout
// whose floor is only corridor tiles (or nothing, for a single room).
package dungeon
