package testutil

import (
	"math/rand"

	"github.com/cwbudde/algo-vision/vision/plane"
)

// DeterministicNoise generates a rows x cols plane of uniform noise in
// [-amplitude, amplitude) with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, rows, cols int) *plane.Plane {
	p := plane.New(rows, cols)
	rng := rand.New(rand.NewSource(seed))
	for i := range p.Data {
		p.Data[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return p
}

// Impulse returns a rows x cols plane that is 1 at (r, c) and 0 elsewhere.
// An out-of-range position yields an all-zero plane.
func Impulse(rows, cols, r, c int) *plane.Plane {
	p := plane.New(rows, cols)
	if r >= 0 && r < rows && c >= 0 && c < cols {
		p.Set(r, c, 1)
	}
	return p
}

// Identity returns the rows x cols kernel with a single 1 at its center.
func Identity(rows, cols int) *plane.Plane {
	return Impulse(rows, cols, rows/2, cols/2)
}

// Constant returns a rows x cols plane filled with value.
func Constant(value float64, rows, cols int) *plane.Plane {
	p := plane.New(rows, cols)
	for i := range p.Data {
		p.Data[i] = value
	}
	return p
}

// Ones returns a rows x cols plane filled with 1.0.
func Ones(rows, cols int) *plane.Plane {
	return Constant(1.0, rows, cols)
}
