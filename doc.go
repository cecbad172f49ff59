// Package roomforge generates connected, tile-based dungeon layouts on an
// integer grid: rooms on a room grid, organic room floors, corridors, wall
// bands and the closed outlines of the walls.
//
// 🚀 What is roomforge?
//
//	A deterministic, seedable generation pipeline that brings together:
//		• Planning: room coordinates that are connected by construction
//		• Carving: random-walk floors inside each room
//		• Corridors: straight or L-shaped runs between neighbouring rooms
//		• Walls: configurable-thickness bands around the floor
//		• Contours: wall outlines as closed polygon loops
//		• Spawning: an at-most-once population trigger per room
//
// Under the hood, everything is organized into small subpackages:
//
//	grid/      : Point, Size, Rect, Direction and the Set of cells
//	planner/   : room-grid placement
//	carve/     : random-walk room carving
//	corridor/  : corridors between grid-adjacent rooms
//	walls/     : wall rings around a floor
//	contour/   : boundary edges and loop tracing
//	registry/  : concurrency-safe spawned-room registry
//	bfs/       : breadth-first search over cell sets
//	gridgraph/ : islands of cells and minimal bridging
//	dungeon/   : Generator, Layout, Tracker and the JSON Document
//	spawn/     : enemy placement on room entry
//	server/    : websocket sessions
//	logger/    : logrus setup
//
// Sketch of the ASCII preview (roomforge generate -format ascii):
//
//	##########
//	#........#
//	#.####...#
//	##    ####
//
// '.' is floor, '#' is wall.
//
//	go install github.com/katalvlaran/roomforge/cmd/roomforge@latest
package roomforge
