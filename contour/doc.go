// Package contour traces a mass of wall cells into closed polygon loops
// suitable for static collision and light occlusion.
//
// What:
//
//   - Synthesize: every wall cell face whose neighbour is not a wall becomes a
//     unit Edge between two cell corners. Corners sit on half-integer
//     coordinates. The per-face corner pairs are fixed:
//
//     up    (x-½, y+½) → (x+½, y+½)
//     right (x+½, y+½) → (x+½, y-½)
//     down  (x+½, y-½) → (x-½, y-½)
//     left  (x-½, y-½) → (x-½, y+½)
//
//     so the faces of one cell chain head to tail.
//
//   - Trace: the edges form an undirected graph over corners. Loops are
//     peeled off by walking from the earliest-seen corner that still has
//     edges, always taking the first remaining neighbour and deleting each
//     edge as it is used, until the walk returns to its start.
//
// Invariants:
//
//   - Every corner has even degree (0, 2 or 4): going round a corner the
//     wall/non-wall membership of the four touching cells changes an even
//     number of times. A walk can therefore only get stuck at its own start,
//     and tracing always consumes every edge.
//   - Loops partition the edges: Σ len(loop) == len(edges).
//
// Junctions:
//
//	A corner of degree 4 (two wall cells touching only diagonally, or two
//	non-wall cells doing the same) is ambiguous. The first-neighbour rule
//	may split the boundary there into two loops or route one loop through
//	the corner twice. Both outcomes are valid decompositions; neither is an
//	error. Callers that need strictly simple polygons must post-process
//	loops that repeat a vertex.
//
// Determinism:
//
//	Extract walks wall cells in grid.Set.Sorted order and Cardinals order,
//	so the edge list, and therefore the loops, depend only on the input set.
//
// Complexity:
//
//   - Synthesize: O(W) for W wall cells.
//   - Trace:      O(E·d) for E edges, d ≤ 4 neighbours per corner.
//
// Errors:
//
//   - ErrOddDegree  a corner with odd degree was found before tracing.
//   - ErrOpenTrail  a walk stopped away from its start.
//
// Both wrap ErrInvariant; they indicate a bug upstream, never bad input
// produced by the wall builder.
package contour
