package tilegrid

import (
	"fmt"

	"github.com/katalvlaran/tilepath/noise"
)

// Default generation parameters.
const (
	DefaultBlockChance = 0.25
	DefaultNoiseZoom   = 1.0

	// defaultSeed replaces a zero Seed so that zero-value options stay reproducible.
	defaultSeed int64 = 1
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8 Connectivity = iota
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4
)

// String returns "conn8" or "conn4".
func (c Connectivity) String() string {
	if c == Conn4 {
		return "conn4"
	}

	return "conn8"
}

// Coord identifies a tile position.
type Coord struct {
	X, Y int
}

// String formats the coordinate as "x;y".
func (c Coord) String() string {
	return fmt.Sprintf("%d;%d", c.X, c.Y)
}

// Tile is a single grid cell. Grid hands out copies; mutate through the Grid.
type Tile struct {
	X, Y    int     // Position within the grid
	Cost    float64 // Traversal cost in [0, 1], fixed at construction
	Blocked bool    // Blocked tiles are never returned as neighbors
}

// Coord returns the tile position.
func (t Tile) Coord() Coord {
	return Coord{X: t.X, Y: t.Y}
}

// GridOptions contains tunable parameters for grid generation.
type GridOptions struct {
	// BlockChance is the independent probability that a tile starts blocked.
	BlockChance float64
	// NoiseZoom scales the fractional coordinates passed to Noise.
	NoiseZoom float64
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// Seed drives the block RNG and the default noise. Zero means defaultSeed.
	Seed int64
	// Noise produces the raw cost field; nil means noise.NewPerlin(Seed).
	Noise noise.Func
}

// DefaultGridOptions returns a GridOptions with default settings:
// BlockChance=0.25, NoiseZoom=1, Conn=Conn8, Seed=0, Noise=nil (Perlin).
func DefaultGridOptions() GridOptions {
	return GridOptions{
		BlockChance: DefaultBlockChance,
		NoiseZoom:   DefaultNoiseZoom,
		Conn:        Conn8,
	}
}

// Grid is a Width×Height map of tiles stored row-major.
// Dimensions and costs are fixed once built; only Blocked flags change.
type Grid struct {
	width, height   int
	tiles           []Tile
	conn            Connectivity
	neighborOffsets [][2]int
}
