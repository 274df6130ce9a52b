// Package tilegrid models a fixed-size 2D grid of weighted tiles for path search.
//
// What:
//
//   - Grid owns Width×Height tiles, each with a traversal Cost in [0, 1] and a
//     Blocked flag.
//   - Costs come from an injected noise.Func sampled at (x/W·zoom, y/H·zoom) and
//     normalized from [-1, 1] to [0, 1].
//   - Each tile is blocked independently with probability BlockChance, drawn from a
//     *rand.Rand seeded by GridOptions.Seed.
//   - Neighbors enumerates in-bounds, unblocked tiles around a tile with Conn8
//     (default, Chebyshev ring) or Conn4 connectivity.
//   - Regions and Reachable flood-fill the unblocked tiles under the same rules.
//
// Why:
//
//   - Terrain maps for weighted searches: noise yields smooth cost regions, random
//     blocks yield obstacles.
//   - Interactive editors: SetBlocked and ToggleBlocked mutate the map between searches.
//
// Complexity:
//
//   - NewGrid:     O(W×H) time and memory.
//   - Tile, InBounds, SetBlocked, ToggleBlocked: O(1).
//   - Neighbors:   O(d), d = 4 or 8.
//   - Regions, Reachable: O(W×H×d).
//
// Options:
//
//   - GridOptions.BlockChance: probability in [0, 1] that a tile starts blocked.
//   - GridOptions.NoiseZoom:   scale applied to the fractional coordinates.
//   - GridOptions.Conn:        Conn8 (8-neighbors) or Conn4 (4-neighbors).
//   - GridOptions.Seed:        RNG and default-noise seed; 0 selects a fixed default.
//   - GridOptions.Noise:       cost field; nil selects noise.NewPerlin(seed).
//
// Errors:
//
//   - ErrInvalidDimensions:  width or height ≤ 0.
//   - ErrInvalidBlockChance: BlockChance outside [0, 1].
//   - ErrInvalidZoom:        NoiseZoom is NaN or infinite.
//   - ErrOutOfBounds:        coordinate outside [0,W)×[0,H).
//
// Thread safety:
//
//   - Grid has no internal locking. Do not call SetBlocked or ToggleBlocked while a
//     search reads the same Grid; synchronize externally.
package tilegrid
