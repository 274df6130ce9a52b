package noise_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/tilepath/noise"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"Min", -1, 0},
		{"Mid", 0, 0.5},
		{"Max", 1, 1},
		{"Quarter", -0.5, 0.25},
		{"BelowRange", -1.4, 0},
		{"AboveRange", 1.7, 1},
		{"NaN", math.NaN(), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, noise.Normalize(tc.in), 1e-12)
		})
	}
}

func TestConstant(t *testing.T) {
	fn := noise.Constant(-0.25)
	assert.Equal(t, -0.25, fn(0, 0))
	assert.Equal(t, -0.25, fn(12.5, -3))
}

// TestPerlin_SeedDeterminism checks that equal seeds give equal fields.
func TestPerlin_SeedDeterminism(t *testing.T) {
	a := noise.NewPerlin(42)
	b := noise.NewPerlin(42)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			fx, fy := float64(x)/8*1.7, float64(y)/8*1.7
			assert.Equal(t, a(fx, fy), b(fx, fy), "sample (%v,%v)", fx, fy)
		}
	}
}

// TestPerlin_Normalized ensures every normalized sample is a valid cost.
func TestPerlin_Normalized(t *testing.T) {
	fn := noise.NewPerlinWith(noise.DefaultAlpha, noise.DefaultBeta, 5, 7)
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			c := noise.Normalize(fn(float64(x)*0.37, float64(y)*0.61))
			assert.GreaterOrEqual(t, c, 0.0)
			assert.LessOrEqual(t, c, 1.0)
		}
	}
}
