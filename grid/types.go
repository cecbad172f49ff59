package grid

import "fmt"

// Point is an integer (x,y) pair.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Origin is the (0,0) point.
var Origin = Point{}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Scale multiplies p component-wise by s.
func (p Point) Scale(s Size) Point {
	return Point{X: p.X * s.W, Y: p.Y * s.H}
}

// String formats p as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Less orders points row-major: by Y, then by X.
func (p Point) Less(q Point) bool {
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.X < q.X
}

// Size is an integer width/height pair, e.g. the room cell size.
type Size struct {
	W int `json:"w"`
	H int `json:"h"`
}

// Empty reports whether either extent is non-positive.
func (s Size) Empty() bool {
	return s.W <= 0 || s.H <= 0
}

// Rect is a half-open integer rectangle anchored at its minimum corner.
type Rect struct {
	X, Y, W, H int
}

// RectAround returns the rectangle of extent s whose center is c,
// using integer halving (c - s/2).
func RectAround(c Point, s Size) Rect {
	return Rect{X: c.X - s.W/2, Y: c.Y - s.H/2, W: s.W, H: s.H}
}

// Empty reports whether r contains no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// MaxX is the exclusive upper x bound.
func (r Rect) MaxX() int { return r.X + r.W }

// MaxY is the exclusive upper y bound.
func (r Rect) MaxY() int { return r.Y + r.H }

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.MaxX() && p.Y >= r.Y && p.Y < r.MaxY()
}

// Clamp limits (x,y) to the closed range [X, MaxX] × [Y, MaxY].
// Agents use it to keep movement targets inside their current room.
func (r Rect) Clamp(x, y float64) (float64, float64) {
	return clamp(x, float64(r.X), float64(r.MaxX())), clamp(y, float64(r.Y), float64(r.MaxY()))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Direction is a unit cardinal offset.
type Direction int

const (
	// Up is (0,+1).
	Up Direction = iota
	// Right is (+1,0).
	Right
	// Down is (0,-1).
	Down
	// Left is (-1,0).
	Left
)

// Cardinals lists the four directions in scan order.
var Cardinals = [4]Direction{Up, Right, Down, Left}

var offsets = [4]Point{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// Offset returns the unit vector of d.
func (d Direction) Offset() Point {
	return offsets[d]
}

// String names the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// CardinalOffsets returns the four unit offsets in Cardinals order.
// The returned slice is a fresh copy and may be shuffled by the caller.
func CardinalOffsets() []Point {
	out := make([]Point, len(offsets))
	copy(out, offsets[:])
	return out
}

// Neighbor returns the cell next to p in direction d.
func (p Point) Neighbor(d Direction) Point {
	return p.Add(d.Offset())
}
