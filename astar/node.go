package astar

import (
	"fmt"

	"github.com/katalvlaran/tilepath/tilegrid"
)

// SearchNode is the per-search record of one visit to a tile.
// Position and Cost are copied from the tile; the grid never sees search state.
type SearchNode struct {
	X, Y            int
	Cost            float64     // tile cost at the time of the visit
	AccumulatedCost float64     // Predecessor.AccumulatedCost + Cost, or Cost for the start
	Heuristic       float64     // estimated distance to the goal
	Predecessor     *SearchNode // nil for the start node

	weight float64
	seq    uint64 // insertion order into the open set
	index  int    // heap slot, -1 outside a heap
}

func newNode(t tilegrid.Tile, pred *SearchNode, weight float64) *SearchNode {
	n := &SearchNode{
		X:           t.X,
		Y:           t.Y,
		Cost:        t.Cost,
		Predecessor: pred,
		weight:      weight,
		index:       -1,
	}
	n.AccumulatedCost = n.Cost
	if pred != nil {
		n.AccumulatedCost += pred.AccumulatedCost
	}

	return n
}

// Priority returns AccumulatedCost·W + Heuristic; lower is expanded first.
func (n *SearchNode) Priority() float64 {
	return n.AccumulatedCost*n.weight + n.Heuristic
}

// Coord returns the node position.
func (n *SearchNode) Coord() tilegrid.Coord {
	return tilegrid.Coord{X: n.X, Y: n.Y}
}

// At reports whether the node sits at c.
func (n *SearchNode) At(c tilegrid.Coord) bool {
	return n.X == c.X && n.Y == c.Y
}

// SamePosition reports whether both nodes sit at the same coordinates,
// regardless of cost, heuristic or predecessor.
func (n *SearchNode) SamePosition(other *SearchNode) bool {
	return other != nil && n.X == other.X && n.Y == other.Y
}

// Hops counts predecessor links from n back to the start node.
func (n *SearchNode) Hops() int {
	hops := 0
	for p := n.Predecessor; p != nil; p = p.Predecessor {
		hops++
	}

	return hops
}

// String formats the node as "x;y (g=…, h=…)".
func (n *SearchNode) String() string {
	return fmt.Sprintf("%d;%d (g=%.3f, h=%.3f)", n.X, n.Y, n.AccumulatedCost, n.Heuristic)
}
