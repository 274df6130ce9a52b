package tilegrid_test

import (
	"testing"

	"github.com/katalvlaran/tilepath/tilegrid"
)

// BenchmarkNewGrid measures Perlin sampling plus block draws on a 128×128 map.
func BenchmarkNewGrid(b *testing.B) {
	opts := tilegrid.DefaultGridOptions()
	opts.NoiseZoom = 4
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := tilegrid.NewGrid(128, 128, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNeighbors(b *testing.B) {
	opts := tilegrid.DefaultGridOptions()
	g, err := tilegrid.NewGrid(64, 64, opts)
	if err != nil {
		b.Fatal(err)
	}
	tile, _ := g.Tile(32, 32)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Neighbors(tile)
	}
}

func BenchmarkRegions(b *testing.B) {
	g, err := tilegrid.NewGrid(128, 128, tilegrid.DefaultGridOptions())
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Regions()
	}
}
