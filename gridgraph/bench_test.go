package gridgraph_test

import (
	"testing"

	"github.com/katalvlaran/roomforge/grid"
	"github.com/katalvlaran/roomforge/gridgraph"
)

// stripes builds n vertical bars of height h separated by single empty columns.
func stripes(n, h int) grid.Set {
	s := grid.NewSet()
	for i := 0; i < n; i++ {
		for y := 0; y < h; y++ {
			s.Put(grid.Point{X: 2 * i, Y: y})
		}
	}
	return s
}

// BenchmarkConnectedComponents measures labelling of 50 bars on a 99×100 box.
func BenchmarkConnectedComponents(b *testing.B) {
	gg, err := gridgraph.FromCells(stripes(50, 100), gridgraph.DefaultGridOptions())
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.ConnectedComponents()
	}
}

// BenchmarkBridge measures joining 20 separated bars.
func BenchmarkBridge(b *testing.B) {
	cells := stripes(20, 40)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = gridgraph.Bridge(cells)
	}
}
