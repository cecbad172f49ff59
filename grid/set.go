package grid

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// Set is a set of unique points. The zero value is not usable; build one with
// NewSet or SetOf.
type Set struct {
	m mapset.Set[Point]
}

// NewSet returns an empty set.
func NewSet() Set {
	return Set{m: mapset.New[Point]()}
}

// SetOf returns a set holding pts.
func SetOf(pts ...Point) Set {
	s := NewSet()
	for _, p := range pts {
		s.m.Put(p)
	}
	return s
}

// Put adds p.
func (s Set) Put(p Point) { s.m.Put(p) }

// Has reports whether p is a member.
func (s Set) Has(p Point) bool { return s.m.Has(p) }

// Remove deletes p if present.
func (s Set) Remove(p Point) { s.m.Remove(p) }

// Len returns the number of members.
func (s Set) Len() int { return s.m.Size() }

// Each calls fn for every member in unspecified order.
func (s Set) Each(fn func(p Point)) { s.m.Each(fn) }

// Union adds every member of o to s.
func (s Set) Union(o Set) {
	o.m.Each(func(p Point) { s.m.Put(p) })
}

// Clone returns an independent copy of s.
func (s Set) Clone() Set {
	c := NewSet()
	c.Union(s)
	return c
}

// Sorted returns the members in row-major order (Y, then X).
func (s Set) Sorted() []Point {
	out := make([]Point, 0, s.m.Size())
	s.m.Each(func(p Point) { out = append(out, p) })
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Filter returns the members for which keep reports true, row-major.
func (s Set) Filter(keep func(p Point) bool) []Point {
	var out []Point
	for _, p := range s.Sorted() {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// Bounds returns the smallest rectangle covering every member.
// It returns an empty Rect for an empty set.
func (s Set) Bounds() Rect {
	if s.m.Size() == 0 {
		return Rect{}
	}
	first := true
	var minX, minY, maxX, maxY int
	s.m.Each(func(p Point) {
		if first {
			minX, maxX, minY, maxY = p.X, p.X, p.Y, p.Y
			first = false
			return
		}
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	})
	return Rect{X: minX, Y: minY, W: maxX - minX + 1, H: maxY - minY + 1}
}

// Equal reports whether s and o hold the same members.
func (s Set) Equal(o Set) bool {
	if s.Len() != o.Len() {
		return false
	}
	equal := true
	s.m.Each(func(p Point) {
		if equal && !o.m.Has(p) {
			equal = false
		}
	})
	return equal
}

// Disjoint reports whether s and o share no member.
func (s Set) Disjoint(o Set) bool {
	small, large := s, o
	if small.Len() > large.Len() {
		small, large = large, small
	}
	disjoint := true
	small.m.Each(func(p Point) {
		if disjoint && large.m.Has(p) {
			disjoint = false
		}
	})
	return disjoint
}
