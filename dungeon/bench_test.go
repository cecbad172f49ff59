package dungeon_test

import (
	"testing"

	"github.com/katalvlaran/roomforge/dungeon"
)

// BenchmarkGenerate measures the full pipeline with default parameters.
func BenchmarkGenerate(b *testing.B) {
	g, err := dungeon.New(dungeon.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.Generate(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGenerate_Bridged measures the pipeline with a sparse carve and
// island bridging enabled.
func BenchmarkGenerate_Bridged(b *testing.B) {
	g, err := dungeon.New(dungeon.WithSeed(1), dungeon.WithCarve(6, 4), dungeon.WithBridgeIslands(true))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.Generate(); err != nil {
			b.Fatal(err)
		}
	}
}
