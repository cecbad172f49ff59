package contour

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/roomforge/grid"
)

// Sentinel errors for contour tracing.
var (
	// ErrInvariant is the parent of every tracing invariant violation.
	ErrInvariant = errors.New("contour: invariant violated")
	// ErrOddDegree indicates a corner touched by an odd number of edges.
	ErrOddDegree = fmt.Errorf("%w: odd-degree vertex", ErrInvariant)
	// ErrOpenTrail indicates a walk that ran out of edges away from its start.
	ErrOpenTrail = fmt.Errorf("%w: open trail", ErrInvariant)
)

// Vec2 is a boundary corner in world units. Corners of unit cells centered
// on integer tiles fall on half-integers, which float64 represents exactly.
type Vec2 struct {
	X, Y float64
}

// String formats v as "(x,y)".
func (v Vec2) String() string {
	return fmt.Sprintf("(%g,%g)", v.X, v.Y)
}

func (v Vec2) less(o Vec2) bool {
	if v.Y != o.Y {
		return v.Y < o.Y
	}
	return v.X < o.X
}

// corner returns the corner of cell p offset by (dx,dy) halves.
func corner(p grid.Point, dx, dy float64) Vec2 {
	return Vec2{X: float64(p.X) + dx*0.5, Y: float64(p.Y) + dy*0.5}
}

// Edge is an unordered pair of corners bounding one open cell face.
type Edge struct {
	P1, P2 Vec2
}

// Equal reports whether e and o join the same corners in either order.
func (e Edge) Equal(o Edge) bool {
	return (e.P1 == o.P1 && e.P2 == o.P2) || (e.P1 == o.P2 && e.P2 == o.P1)
}

// Key returns e with its corners in canonical order, for use as a map key.
func (e Edge) Key() Edge {
	if e.P2.less(e.P1) {
		return Edge{P1: e.P2, P2: e.P1}
	}
	return e
}

// Loop is a closed boundary path; the last point joins the first.
type Loop []Vec2

// Closed returns the loop with its first point repeated at the end, the form
// most polygon consumers expect.
func (l Loop) Closed() []Vec2 {
	if len(l) == 0 {
		return nil
	}
	out := make([]Vec2, len(l), len(l)+1)
	copy(out, l)
	return append(out, l[0])
}

// SignedArea returns the shoelace area of the loop. Its sign reflects the
// walk direction, which tracing does not fix.
func (l Loop) SignedArea() float64 {
	var sum float64
	for i := range l {
		j := (i + 1) % len(l)
		sum += l[i].X*l[j].Y - l[j].X*l[i].Y
	}
	return sum / 2
}

// Area returns the absolute enclosed area.
func (l Loop) Area() float64 {
	return math.Abs(l.SignedArea())
}

// Simple reports whether no corner repeats within the loop.
func (l Loop) Simple() bool {
	seen := make(map[Vec2]struct{}, len(l))
	for _, v := range l {
		if _, dup := seen[v]; dup {
			return false
		}
		seen[v] = struct{}{}
	}
	return true
}

// Stats summarizes a traced boundary.
type Stats struct {
	Edges     int `json:"edges"`
	Loops     int `json:"loops"`
	Vertices  int `json:"vertices"`
	Junctions int `json:"junctions"`
	Points    int `json:"points"`
}

// Result is the outcome of Extract.
type Result struct {
	// Edges in synthesis order, deduplicated.
	Edges []Edge
	// Loops in extraction order.
	Loops []Loop
}

// Degrees returns the degree of every corner in the edge graph.
func (r *Result) Degrees() map[Vec2]int {
	return Degrees(r.Edges)
}

// Stats computes summary counts.
func (r *Result) Stats() Stats {
	deg := r.Degrees()
	s := Stats{Edges: len(r.Edges), Loops: len(r.Loops), Vertices: len(deg)}
	for _, d := range deg {
		if d > 2 {
			s.Junctions++
		}
	}
	for _, l := range r.Loops {
		s.Points += len(l)
	}
	return s
}
