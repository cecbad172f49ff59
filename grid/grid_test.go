package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roomforge/grid"
)

// TestRect_Contains checks the half-open bounds on all four sides.
func TestRect_Contains(t *testing.T) {
	r := grid.Rect{X: -2, Y: 1, W: 4, H: 3}

	inside := []grid.Point{{-2, 1}, {1, 3}, {0, 2}}
	for _, p := range inside {
		assert.True(t, r.Contains(p), "Contains(%v)", p)
	}
	outside := []grid.Point{{2, 1}, {-3, 1}, {0, 4}, {0, 0}}
	for _, p := range outside {
		assert.False(t, r.Contains(p), "Contains(%v)", p)
	}
}

// TestRectAround mirrors the room-cell rectangle: center minus half extents.
func TestRectAround(t *testing.T) {
	r := grid.RectAround(grid.Point{X: 10, Y: 0}, grid.Size{W: 9, H: 6})
	assert.Equal(t, grid.Rect{X: 6, Y: -3, W: 9, H: 6}, r)
	assert.True(t, r.Contains(grid.Point{X: 10, Y: 0}))
}

func TestRect_Clamp(t *testing.T) {
	r := grid.Rect{X: 0, Y: 0, W: 10, H: 5}
	x, y := r.Clamp(-3, 7.5)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 5.0, y)

	x, y = r.Clamp(4.5, 2)
	assert.Equal(t, 4.5, x)
	assert.Equal(t, 2.0, y)
}

// TestCardinalOffsets verifies scan order and that callers get a copy.
func TestCardinalOffsets(t *testing.T) {
	offs := grid.CardinalOffsets()
	require.Equal(t, []grid.Point{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}, offs)

	offs[0] = grid.Point{X: 9, Y: 9}
	assert.Equal(t, grid.Point{X: 0, Y: 1}, grid.Up.Offset())

	for i, d := range grid.Cardinals {
		assert.Equal(t, grid.CardinalOffsets()[i], d.Offset(), d.String())
	}
}

func TestSet_Basics(t *testing.T) {
	s := grid.SetOf(grid.Point{X: 1, Y: 1}, grid.Point{X: 0, Y: 2}, grid.Point{X: 1, Y: 1})
	require.Equal(t, 2, s.Len())
	assert.True(t, s.Has(grid.Point{X: 0, Y: 2}))

	s.Remove(grid.Point{X: 0, Y: 2})
	assert.False(t, s.Has(grid.Point{X: 0, Y: 2}))
	assert.Equal(t, 1, s.Len())
}

// TestSet_SortedRowMajor ensures deterministic row-major ordering.
func TestSet_SortedRowMajor(t *testing.T) {
	s := grid.SetOf(
		grid.Point{X: 3, Y: 1},
		grid.Point{X: -1, Y: 1},
		grid.Point{X: 5, Y: -2},
		grid.Point{X: 0, Y: 0},
	)
	want := []grid.Point{{5, -2}, {0, 0}, {-1, 1}, {3, 1}}
	assert.Equal(t, want, s.Sorted())
}

func TestSet_UnionCloneEqualDisjoint(t *testing.T) {
	a := grid.SetOf(grid.Point{X: 0, Y: 0}, grid.Point{X: 1, Y: 0})
	b := grid.SetOf(grid.Point{X: 2, Y: 0})

	assert.True(t, a.Disjoint(b))

	c := a.Clone()
	c.Union(b)
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 2, a.Len(), "Clone must not alias")
	assert.False(t, c.Disjoint(b))
	assert.True(t, c.Equal(grid.SetOf(grid.Point{X: 0, Y: 0}, grid.Point{X: 1, Y: 0}, grid.Point{X: 2, Y: 0})))
	assert.False(t, c.Equal(a))
}

func TestSet_Bounds(t *testing.T) {
	assert.Equal(t, grid.Rect{}, grid.NewSet().Bounds())

	s := grid.SetOf(grid.Point{X: -2, Y: 3}, grid.Point{X: 4, Y: -1})
	assert.Equal(t, grid.Rect{X: -2, Y: -1, W: 7, H: 5}, s.Bounds())
}

func TestSet_Filter(t *testing.T) {
	s := grid.SetOf(grid.Point{X: 0, Y: 0}, grid.Point{X: 1, Y: 0}, grid.Point{X: 2, Y: 0})
	got := s.Filter(func(p grid.Point) bool { return p.X != 1 })
	assert.Equal(t, []grid.Point{{0, 0}, {2, 0}}, got)
}
