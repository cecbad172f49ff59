// Package spawn populates rooms with enemies the first time an agent enters
// them.
//
// Director implements dungeon.Listener. On every room transition it asks a
// registry.Registry for the room's one-time trigger; the first entry picks
// between MinPerRoom and MaxPerRoom distinct floor cells outside the room's
// safe radius and delivers one Placement per cell to a Sink. The origin room
// never spawns.
//
// Errors:
//
//   - ErrOptionViolation: an invalid Option was supplied.
//   - ErrMissingDependency: layout, registry or random source is nil.
//   - dungeon.ErrUnknownRoom: the coordinate holds no room.
package spawn
