// Package grid holds the integer geometry shared by every generation stage:
// points, sizes, half-open rectangles, the four cardinal directions and a
// point set.
//
// What:
//
//   - Point is used both for room-grid coordinates (one unit per room slot)
//     and for tile coordinates (one unit per floor or wall cell). The producer
//     of a value documents which space it lives in.
//   - Rect is half-open: X <= p.X < X+W and Y <= p.Y < Y+H.
//   - Set is an unordered point set; Sorted returns a row-major snapshot so
//     callers that feed randomness or emit geometry iterate deterministically.
//
// Directions:
//
//	Cardinals is ordered Up, Right, Down, Left, with Up = (0,+1). Every stage
//	that scans neighbours uses this order.
//
// Complexity:
//
//   - Set.Put / Has / Remove: O(1) amortized.
//   - Set.Sorted: O(n log n).
package grid
