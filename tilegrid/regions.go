package tilegrid

// Regions returns every contiguous region of unblocked tiles under the grid's
// connectivity. Regions appear in row-major order of their first tile; tiles
// within a region are listed in breadth-first order from that tile.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Regions() [][]Coord {
	seen := make([]bool, len(g.tiles))
	var regions [][]Coord

	for i0, t := range g.tiles {
		if t.Blocked || seen[i0] {
			continue
		}
		regions = append(regions, g.flood(i0, seen))
	}

	return regions
}

// Reachable reports whether a search starting at from could arrive at to:
// the walk may leave a blocked origin but never enters a blocked tile, so a
// blocked destination is reachable only from itself.
// Returns ErrOutOfBounds for coordinates outside the grid.
// Complexity: O(W·H·d) worst case.
func (g *Grid) Reachable(from, to Coord) (bool, error) {
	if !g.InBounds(from.X, from.Y) {
		return false, g.outOfBounds(from.X, from.Y)
	}
	if !g.InBounds(to.X, to.Y) {
		return false, g.outOfBounds(to.X, to.Y)
	}
	if from == to {
		return true, nil
	}
	if g.tiles[g.index(to.X, to.Y)].Blocked {
		return false, nil
	}

	seen := make([]bool, len(g.tiles))
	for _, c := range g.flood(g.index(from.X, from.Y), seen) {
		if c == to {
			return true, nil
		}
	}

	return false, nil
}

// flood collects the tiles reachable from index i0 over unblocked neighbors,
// marking them in seen. i0 itself is included whatever its Blocked flag.
func (g *Grid) flood(i0 int, seen []bool) []Coord {
	queue := []int{i0}
	seen[i0] = true
	var out []Coord

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		ux, uy := g.Coordinate(u)
		out = append(out, Coord{X: ux, Y: uy})
		for _, d := range g.neighborOffsets {
			vx, vy := ux+d[0], uy+d[1]
			if !g.InBounds(vx, vy) {
				continue
			}
			vi := g.index(vx, vy)
			if g.tiles[vi].Blocked || seen[vi] {
				continue
			}
			seen[vi] = true
			queue = append(queue, vi)
		}
	}

	return out
}
