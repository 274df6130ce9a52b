package tilegrid_test

import (
	"fmt"

	"github.com/katalvlaran/tilepath/noise"
	"github.com/katalvlaran/tilepath/tilegrid"
)

// ExampleNewGrid builds a flat 3×3 map and lists the neighbors of a corner
// after blocking the center.
func ExampleNewGrid() {
	opts := tilegrid.DefaultGridOptions()
	opts.BlockChance = 0
	opts.Noise = noise.Constant(0)
	g, err := tilegrid.NewGrid(3, 3, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = g.SetBlocked(1, 1, true)

	corner, _ := g.Tile(0, 0)
	for _, n := range g.Neighbors(corner) {
		fmt.Printf("%v cost=%.1f\n", n.Coord(), n.Cost)
	}
	// Output:
	// 1;0 cost=0.5
	// 0;1 cost=0.5
}

// ExampleGrid_Regions splits a 3×3 map with a wall down the middle.
func ExampleGrid_Regions() {
	opts := tilegrid.DefaultGridOptions()
	opts.BlockChance = 0
	opts.Conn = tilegrid.Conn4
	g, _ := tilegrid.NewGrid(3, 3, opts)
	for y := 0; y < 3; y++ {
		_ = g.SetBlocked(1, y, true)
	}

	for _, r := range g.Regions() {
		fmt.Println(r)
	}
	ok, _ := g.Reachable(tilegrid.Coord{X: 0, Y: 0}, tilegrid.Coord{X: 2, Y: 2})
	fmt.Println("reachable:", ok)
	// Output:
	// [0;0 0;1 0;2]
	// [2;0 2;1 2;2]
	// reachable: false
}
