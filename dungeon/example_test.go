package dungeon_test

import (
	"fmt"

	"github.com/katalvlaran/roomforge/dungeon"
	"github.com/katalvlaran/roomforge/grid"
)

// ExampleGenerator_Generate builds a small dungeon with a fixed seed.
func ExampleGenerator_Generate() {
	g, err := dungeon.New(dungeon.WithRooms(4), dungeon.WithSeed(1))
	if err != nil {
		fmt.Println("config:", err)
		return
	}
	layout, err := g.Generate()
	if err != nil {
		fmt.Println("generate:", err)
		return
	}
	fmt.Println("rooms:", len(layout.Rooms()))
	fmt.Println("first:", layout.Rooms()[0].Coord)
	fmt.Println("disjoint:", layout.Floor().Disjoint(layout.Walls()))
	// Output:
	// rooms: 4
	// first: (0,0)
	// disjoint: true
}

// ExampleGridPosition maps world positions onto room coordinates.
func ExampleGridPosition() {
	cell := dungeon.Viewport{HalfWidth: 16, HalfHeight: 9}.CellSize()
	fmt.Println(cell)
	fmt.Println(dungeon.GridPosition(40, -20, cell))
	fmt.Println(dungeon.RoomBounds(grid.Point{X: 1, Y: -1}, cell))
	// Output:
	// {32 18}
	// (1,-1)
	// {16 -27 32 18}
}
