package noise

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// Default Perlin parameters. alpha is the weight divisor between octaves,
// beta the frequency multiplier and n the number of octaves.
const (
	DefaultAlpha   = 2.0
	DefaultBeta    = 2.0
	DefaultOctaves = int32(3)
)

// Func returns a continuous value in [-1, 1] for the point (x, y).
type Func func(x, y float64) float64

// NewPerlin returns a Perlin Func with the default parameters.
// Complexity: O(1) per sample after an O(1) table setup.
func NewPerlin(seed int64) Func {
	return NewPerlinWith(DefaultAlpha, DefaultBeta, DefaultOctaves, seed)
}

// NewPerlinWith returns a Perlin Func with explicit alpha, beta and octave count.
func NewPerlinWith(alpha, beta float64, n int32, seed int64) Func {
	p := perlin.NewPerlin(alpha, beta, n, seed)

	return p.Noise2D
}

// Constant returns a Func that ignores its input and always yields v.
func Constant(v float64) Func {
	return func(_, _ float64) float64 { return v }
}

// Normalize maps a native noise value from [-1, 1] into [0, 1] via (v+1)/2.
// Fractal sums may overshoot the native range, so the result is clamped.
// NaN normalizes to 0.
func Normalize(v float64) float64 {
	n := (v + 1) / 2
	switch {
	case math.IsNaN(n), n < 0:
		return 0
	case n > 1:
		return 1
	}

	return n
}
