// Package tilepath finds weighted A* paths across procedurally generated
// tile maps.
//
// A map is a rectangular grid of tiles. Each tile carries a movement cost in
// [0,1] sampled from a 2-D noise field, and may be blocked. The search treats
// cost as the price of entering a tile and ranks candidates by
//
//	priority = accumulated cost × weight + straight-line distance to the goal
//
// The work is split across three packages:
//
//	noise/    — noise functions (Perlin by default) and cost normalization
//	tilegrid/ — Grid and Tile: generation, neighbors, blocking, regions
//	astar/    — FindPath, SearchNode, functional options and a Stepper
//
// plus the cmd/tilepath command, which builds a grid from flags or TILEPATH_*
// environment variables and prints the path.
//
// Quick start:
//
//	g, _ := tilegrid.NewGrid(10, 10, tilegrid.DefaultGridOptions())
//	res, _ := astar.FindPath(g, tilegrid.Coord{X: 0, Y: 0}, tilegrid.Coord{X: 9, Y: 9})
//	if res.Found {
//		for _, n := range res.StartToGoal() {
//			fmt.Println(n)
//		}
//	}
//
//	go get github.com/katalvlaran/tilepath
package tilepath
