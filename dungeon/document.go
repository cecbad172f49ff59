package dungeon

import (
	"github.com/katalvlaran/roomforge/contour"
	"github.com/katalvlaran/roomforge/grid"
)

// Document is the JSON wire form of a Layout. Points are [x, y] pairs and
// rectangles are [x, y, w, h].
type Document struct {
	Seed     int64          `json:"seed" jsonschema:"title=Seed,description=Random seed the layout was generated from"`
	CellSize [2]int         `json:"cellSize" jsonschema:"title=Room cell size,description=Width and height of one room cell in tiles"`
	Rooms    []DocumentRoom `json:"rooms" jsonschema:"title=Rooms,description=Rooms in placement order; the first is the origin"`
	Floor    [][2]int       `json:"floor" jsonschema:"title=Floor,description=Floor tiles in row-major order"`
	Walls    [][2]int       `json:"walls" jsonschema:"title=Walls,description=Wall tiles in row-major order"`
	Loops    [][][2]float64 `json:"loops" jsonschema:"title=Boundary loops,description=Closed wall outlines; the last point joins the first"`
	Stats    Stats          `json:"stats" jsonschema:"title=Stats"`
}

// DocumentRoom is one room in a Document.
type DocumentRoom struct {
	Coord  [2]int `json:"coord" jsonschema:"description=Slot on the room grid"`
	Center [2]int `json:"center" jsonschema:"description=World tile at the cell center"`
	Bounds [4]int `json:"bounds" jsonschema:"description=Carve area as x y w h"`
	Cell   [4]int `json:"cell" jsonschema:"description=Full room cell as x y w h"`
	Depth  int    `json:"depth" jsonschema:"minimum=0,description=Hops from the origin room"`
}

// Document converts l to its wire form.
func (l *Layout) Document() Document {
	doc := Document{
		Seed:     l.seed,
		CellSize: [2]int{l.cellSize.W, l.cellSize.H},
		Rooms:    make([]DocumentRoom, len(l.rooms)),
		Floor:    pairs(l.floor),
		Walls:    pairs(l.walls),
		Loops:    make([][][2]float64, len(l.boundary.Loops)),
		Stats:    l.Stats(),
	}
	for i, r := range l.rooms {
		doc.Rooms[i] = DocumentRoom{
			Coord:  [2]int{r.Coord.X, r.Coord.Y},
			Center: [2]int{r.Center.X, r.Center.Y},
			Bounds: rect(r.Bounds),
			Cell:   rect(r.Cell),
			Depth:  r.Depth,
		}
	}
	for i, lp := range l.boundary.Loops {
		doc.Loops[i] = vecs(lp)
	}
	return doc
}

func pairs(s grid.Set) [][2]int {
	sorted := s.Sorted()
	out := make([][2]int, len(sorted))
	for i, p := range sorted {
		out[i] = [2]int{p.X, p.Y}
	}
	return out
}

func rect(r grid.Rect) [4]int { return [4]int{r.X, r.Y, r.W, r.H} }

func vecs(l contour.Loop) [][2]float64 {
	out := make([][2]float64, len(l))
	for i, v := range l {
		out[i] = [2]float64{v.X, v.Y}
	}
	return out
}
