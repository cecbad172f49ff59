// Package gridgraph treats a sparse set of grid cells as a graph, enabling
// component analysis and minimal-cost “island” bridging.
//
// What:
//
//   - GridGraph rasterizes a grid.Set into its bounding box: member cells are
//     “land” (value 1), every other cell in the box is “water” (value 0).
//   - Identifies connected components (“islands”) of land cells.
//   - Computes minimal conversions (0-1 BFS) to connect two islands.
//   - Bridge repeatedly joins islands until one remains.
//
// Why:
//
//   - Dungeon floors: count stray floor islands left by random-walk carving.
//   - Optional repair pass: carve the fewest extra floor cells that make the
//     floor a single walkable region.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - ExpandIsland:        O(W×H×d), Memory: O(W×H).
//   - Bridge:              O(k×W×H×d) for k initial islands.
//
// Options:
//
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input set has no cells.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between specified components.
package gridgraph
