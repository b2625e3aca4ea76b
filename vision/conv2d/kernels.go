package conv2d

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-vision/vision/plane"
)

// ErrUnknownKernel is returned by Named for an unregistered name.
var ErrUnknownKernel = errors.New("conv2d: unknown kernel")

var namedKernels = map[string]func() *plane.Plane{
	"identity": func() *plane.Plane { return plane.MustFromRows([][]float64{{0, 0, 0}, {0, 1, 0}, {0, 0, 0}}) },
	"sum3":     func() *plane.Plane { return plane.MustFromRows([][]float64{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}}) },
	"box3":     func() *plane.Plane { return box(3) },
	"box5":     func() *plane.Plane { return box(5) },
	"gauss3":   func() *plane.Plane { return binomial(3) },
	"gauss5":   func() *plane.Plane { return binomial(5) },
	"sharpen":  func() *plane.Plane { return plane.MustFromRows([][]float64{{0, -1, 0}, {-1, 5, -1}, {0, -1, 0}}) },
	"laplace":  func() *plane.Plane { return plane.MustFromRows([][]float64{{0, 1, 0}, {1, -4, 1}, {0, 1, 0}}) },
	"sobel-x":  func() *plane.Plane { return plane.MustFromRows([][]float64{{-1, 0, 1}, {-2, 0, 2}, {-1, 0, 1}}) },
	"sobel-y":  func() *plane.Plane { return plane.MustFromRows([][]float64{{-1, -2, -1}, {0, 0, 0}, {1, 2, 1}}) },
}

// Names returns the registered kernel names in sorted order.
func Names() []string {
	names := make([]string, 0, len(namedKernels))
	for name := range namedKernels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Named returns a fresh copy of a registered kernel.
func Named(name string) (*plane.Plane, error) {
	mk, ok := namedKernels[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKernel, name)
	}
	return mk(), nil
}

// Box returns a rows x cols averaging kernel whose coefficients sum to 1.
func Box(rows, cols int) (*plane.Plane, error) {
	if rows < 1 || cols < 1 || rows%2 == 0 || cols%2 == 0 {
		return nil, fmt.Errorf("%w: got %dx%d", plane.ErrInvalidKernelShape, rows, cols)
	}
	k := plane.New(rows, cols)
	v := 1 / float64(rows*cols)
	for i := range k.Data {
		k.Data[i] = v
	}
	return k, nil
}

// Gaussian returns a size x size kernel sampled from an isotropic Gaussian
// with standard deviation sigma, normalized to unit sum.
func Gaussian(size int, sigma float64) (*plane.Plane, error) {
	if size < 1 || size%2 == 0 {
		return nil, fmt.Errorf("%w: got %dx%d", plane.ErrInvalidKernelShape, size, size)
	}
	if !(sigma > 0) {
		return nil, fmt.Errorf("conv2d: sigma must be positive, got %v", sigma)
	}

	k := plane.New(size, size)
	c := size / 2
	denom := 2 * sigma * sigma
	for r := 0; r < size; r++ {
		for col := 0; col < size; col++ {
			dy, dx := float64(r-c), float64(col-c)
			k.Set(r, col, math.Exp(-(dx*dx+dy*dy)/denom))
		}
	}
	floats.Scale(1/floats.Sum(k.Data), k.Data)
	return k, nil
}

// binomial builds the n x n outer product of the binomial row, normalized.
func binomial(n int) *plane.Plane {
	row := make([]float64, n)
	row[0] = 1
	for i := 1; i < n; i++ {
		for j := i; j > 0; j-- {
			row[j] += row[j-1]
		}
	}

	k := plane.New(n, n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			k.Set(r, c, row[r]*row[c])
		}
	}
	floats.Scale(1/floats.Sum(k.Data), k.Data)
	return k
}

func box(n int) *plane.Plane {
	k, err := Box(n, n)
	if err != nil {
		panic(err)
	}
	return k
}
