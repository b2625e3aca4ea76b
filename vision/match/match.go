package match

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-vision/vision/conv2d"
	"github.com/cwbudde/algo-vision/vision/plane"
)

// ErrFlatTemplate is returned by NormalizedCrossCorrelate when the template
// has zero standard deviation and cannot be standardized.
var ErrFlatTemplate = errors.New("match: template has zero variance")

// flatTolerance bounds the standard deviation, relative to the mean
// magnitude, below which a patch is treated as constant.
const flatTolerance = 1e-12

// CrossCorrelate slides g over the zero-padded f and returns the dot
// product at every position:
//
//	out[i,j] = sum_m sum_n fpadded[i+m, j+n] * g[m,n]
//
// It is computed as the true convolution of f with g flipped on both axes;
// the two flips cancel.
func CrossCorrelate(f, g *plane.Plane) (*plane.Plane, error) {
	if err := checkInputs(f, g); err != nil {
		return nil, err
	}
	return conv2d.Convolve(f, plane.Flip(g))
}

// ZeroMeanCrossCorrelate subtracts the mean of g from g and cross-correlates
// f with the result. Adding a constant to g leaves the output unchanged.
// Returns plane.ErrShapeMismatch if g is larger than f in either dimension.
func ZeroMeanCrossCorrelate(f, g *plane.Plane) (*plane.Plane, error) {
	if err := checkInputs(f, g); err != nil {
		return nil, err
	}
	if err := checkFits(f, g); err != nil {
		return nil, err
	}
	return CrossCorrelate(f, g.AddConst(-g.Mean()))
}

// NormalizedCrossCorrelate standardizes g once, then for every position
// standardizes the matching patch of the zero-padded f and returns the sum
// of the elementwise products. A patch equal to a*g+b for any a > 0 scores
// the same as g itself. Constant patches score 0.
//
// Returns plane.ErrShapeMismatch if g is larger than f and ErrFlatTemplate
// if g is constant.
func NormalizedCrossCorrelate(f, g *plane.Plane) (*plane.Plane, error) {
	if err := checkInputs(f, g); err != nil {
		return nil, err
	}
	if err := checkFits(f, g); err != nil {
		return nil, err
	}

	gNorm, gMean, gStd := g.Standardize()
	if isFlat(gMean, gStd) {
		return nil, ErrFlatTemplate
	}

	padded, err := plane.PadForKernel(f, g)
	if err != nil {
		return nil, err
	}

	out := plane.New(f.Rows, f.Cols)
	patch := make([]float64, len(g.Data))
	for i := 0; i < f.Rows; i++ {
		row := out.Row(i)
		for j := range row {
			padded.Window(patch, i, j, g.Rows, g.Cols)
			mean, std := stat.PopMeanStdDev(patch, nil)
			if isFlat(mean, std) {
				continue
			}
			floats.AddConst(-mean, patch)
			floats.Scale(1/std, patch)
			row[j] = floats.Dot(patch, gNorm.Data)
		}
	}
	return out, nil
}

// checkInputs validates the image and template. Templates follow the kernel
// rules: odd dimensions so the response is centered.
func checkInputs(f, g *plane.Plane) error {
	if err := f.Validate(); err != nil {
		return err
	}
	return plane.CheckKernel(g)
}

func checkFits(f, g *plane.Plane) error {
	if g.Rows > f.Rows || g.Cols > f.Cols {
		return fmt.Errorf("%w: template %dx%d larger than image %dx%d",
			plane.ErrShapeMismatch, g.Rows, g.Cols, f.Rows, f.Cols)
	}
	return nil
}

// isFlat reports whether std is zero up to rounding noise relative to the
// mean magnitude. An all-zero patch has std 0 and is flat at any scale. A NaN
// std, which cancellation can produce for constant data, also counts as flat.
func isFlat(mean, std float64) bool {
	return !(std > flatTolerance*math.Abs(mean))
}
