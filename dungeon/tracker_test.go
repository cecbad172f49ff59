package dungeon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roomforge/dungeon"
	"github.com/katalvlaran/roomforge/grid"
)

func TestTracker_Update(t *testing.T) {
	cell := grid.Size{W: 32, H: 18}
	var first, second []dungeon.Transition
	tr := dungeon.NewTracker(cell, dungeon.ListenerFunc(func(ev dungeon.Transition) {
		first = append(first, ev)
	}))
	tr.Subscribe(dungeon.ListenerFunc(func(ev dungeon.Transition) {
		// Listeners run in subscription order.
		second = append(second, ev)
	}))

	assert.Equal(t, grid.Origin, tr.Current())

	_, moved := tr.Update(3, -4)
	assert.False(t, moved, "still in the origin room")

	got, moved := tr.Update(40, 0)
	require.True(t, moved)
	want := dungeon.Transition{Coord: grid.Point{X: 1, Y: 0}, CellSize: cell}
	assert.Equal(t, want, got)
	assert.Equal(t, grid.Rect{X: 16, Y: -9, W: 32, H: 18}, got.Bounds())

	_, moved = tr.Update(45, 2)
	assert.False(t, moved)

	_, moved = tr.Update(0, 0)
	assert.True(t, moved)

	require.Len(t, first, 2)
	assert.Equal(t, first, second)
	assert.Equal(t, grid.Origin, first[1].Coord)
	assert.Equal(t, grid.Origin, tr.Current())
}
