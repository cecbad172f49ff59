package dungeon

import (
	"math"

	"github.com/katalvlaran/roomforge/grid"
)

// GridPosition maps a world position to the room coordinate whose cell holds
// it. Halfway points round to the even coordinate.
func GridPosition(worldX, worldY float64, cellSize grid.Size) grid.Point {
	return grid.Point{
		X: int(math.RoundToEven(worldX / float64(cellSize.W))),
		Y: int(math.RoundToEven(worldY / float64(cellSize.H))),
	}
}

// RoomCenter returns the world tile at the center of the room at coord.
func RoomCenter(coord grid.Point, cellSize grid.Size) grid.Point {
	return coord.Scale(cellSize)
}

// RoomBounds returns the full cell rectangle of the room at coord. It is a
// pure function of the coordinate and cell size.
func RoomBounds(coord grid.Point, cellSize grid.Size) grid.Rect {
	return grid.RectAround(RoomCenter(coord, cellSize), cellSize)
}

// CarveBounds returns the part of the cell at coord that the carver may
// fill: the cell shrunk by padding on every side.
func CarveBounds(coord grid.Point, cellSize grid.Size, padding int) grid.Rect {
	return grid.RectAround(RoomCenter(coord, cellSize), carveSize(cellSize, padding))
}
