package tilegrid

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/tilepath/noise"
)

// NewGrid builds a width×height grid. For every tile, rows first:
//
//	cost    = noise.Normalize(Noise(x/width·zoom, y/height·zoom))
//	blocked = rng.Float64() < BlockChance
//
// Returns ErrInvalidDimensions, ErrInvalidBlockChance or ErrInvalidZoom on bad input.
// Complexity: O(W×H) time and memory.
func NewGrid(width, height int, opts GridOptions) (*Grid, error) {
	if math.IsNaN(opts.BlockChance) || opts.BlockChance < 0 || opts.BlockChance > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidBlockChance, opts.BlockChance)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = defaultSeed
	}
	fn := opts.Noise
	if fn == nil {
		fn = noise.NewPerlin(seed)
	}
	costs, err := SampleCosts(width, height, opts.NoiseZoom, fn)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	tiles := make([]Tile, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			tiles = append(tiles, Tile{
				X:       x,
				Y:       y,
				Cost:    costs[y][x],
				Blocked: rng.Float64() < opts.BlockChance,
			})
		}
	}

	return &Grid{
		width:           width,
		height:          height,
		tiles:           tiles,
		conn:            opts.Conn,
		neighborOffsets: offsetsFor(opts.Conn),
	}, nil
}

// SampleCosts returns the normalized cost field [y][x] that NewGrid would assign
// for the given dimensions, zoom and noise. A nil fn selects the default Perlin field.
// Complexity: O(W×H).
func SampleCosts(width, height int, zoom float64, fn noise.Func) ([][]float64, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	if math.IsNaN(zoom) || math.IsInf(zoom, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidZoom, zoom)
	}
	if fn == nil {
		fn = noise.NewPerlin(defaultSeed)
	}

	field := make([][]float64, height)
	for y := 0; y < height; y++ {
		field[y] = make([]float64, width)
		fy := float64(y) / float64(height) * zoom
		for x := 0; x < width; x++ {
			fx := float64(x) / float64(width) * zoom
			field[y][x] = noise.Normalize(fn(fx, fy))
		}
	}

	return field, nil
}

// offsetsFor lists neighbor offsets clockwise from north.
func offsetsFor(conn Connectivity) [][2]int {
	if conn == Conn4 {
		return [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns the number of tiles, Width×Height.
func (g *Grid) Len() int { return len(g.tiles) }

// Conn returns the connectivity used by Neighbors.
func (g *Grid) Conn() Connectivity { return g.conn }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// NeighborOffsets returns a copy of the candidate offsets checked by Neighbors.
func (g *Grid) NeighborOffsets() [][2]int {
	out := make([][2]int, len(g.neighborOffsets))
	copy(out, g.neighborOffsets)

	return out
}

// index maps (x,y) to a row‑major index: y*Width + x.
func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// Coordinate converts a row‑major index back to (x,y).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.width, idx / g.width
}

// Tile returns a copy of the tile at (x,y), or ErrOutOfBounds.
func (g *Grid) Tile(x, y int) (Tile, error) {
	if !g.InBounds(x, y) {
		return Tile{}, g.outOfBounds(x, y)
	}

	return g.tiles[g.index(x, y)], nil
}

// Tiles returns a row-major copy of every tile.
func (g *Grid) Tiles() []Tile {
	out := make([]Tile, len(g.tiles))
	copy(out, g.tiles)

	return out
}

// Neighbors returns the unblocked, in-bounds tiles adjacent to t, in the fixed
// clockwise order of NeighborOffsets. t itself is never included.
// Only t's coordinates are read; its Blocked flag and Cost are ignored.
// Complexity: O(d).
func (g *Grid) Neighbors(t Tile) []Tile {
	out := make([]Tile, 0, len(g.neighborOffsets))
	for _, d := range g.neighborOffsets {
		nx, ny := t.X+d[0], t.Y+d[1]
		if !g.InBounds(nx, ny) {
			continue
		}
		n := g.tiles[g.index(nx, ny)]
		if n.Blocked {
			continue
		}
		out = append(out, n)
	}

	return out
}

// SetBlocked sets the Blocked flag of the tile at (x,y) in place.
func (g *Grid) SetBlocked(x, y int, blocked bool) error {
	if !g.InBounds(x, y) {
		return g.outOfBounds(x, y)
	}
	g.tiles[g.index(x, y)].Blocked = blocked

	return nil
}

// ToggleBlocked flips the Blocked flag of the tile at (x,y) and returns the new value.
func (g *Grid) ToggleBlocked(x, y int) (bool, error) {
	if !g.InBounds(x, y) {
		return false, g.outOfBounds(x, y)
	}
	t := &g.tiles[g.index(x, y)]
	t.Blocked = !t.Blocked

	return t.Blocked, nil
}

func (g *Grid) outOfBounds(x, y int) error {
	return fmt.Errorf("%w: (%d,%d) not in %dx%d", ErrOutOfBounds, x, y, g.width, g.height)
}
