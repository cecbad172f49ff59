// Package bfs provides breadth-first search over the implicit 4-connected
// graph of a grid.Set, returning step distances, parent links, and visit
// order.
//
// What
//
//   - Vertices are the members of a grid.Set; edges join members one cardinal
//     step apart. No graph is materialized.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from point → distance (steps) from start
//   - Parent: map from point → its predecessor in the BFS tree
//   - OnVisit hook (may abort with an error), neighbor filtering,
//     MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Room placement: every room must be reachable from the origin room, and
//     the hop count from the origin is exposed as room depth.
//   - Floor analysis: reachability between carved cells.
//
// Determinism
//
//	Neighbors are expanded in grid.Cardinals order (up, right, down, left),
//	so the visit sequence is fully reproducible for a given set and start.
//
// Complexity (V = |members|)
//
//   - Time:   O(V)   (each member expanded once, 4 probes each)
//   - Memory: O(V)   (queue, Depth map, Parent map)
//
// Errors
//
//   - ErrStartVertexNotFound  if the start point is not a member.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ctx.Err()               on cancellation.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
