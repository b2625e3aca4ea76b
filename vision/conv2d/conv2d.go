package conv2d

import (
	"fmt"

	vecmath "github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-vision/vision/plane"
)

// Naive slides k over the zero-padded image without flipping it:
//
//	out[i,j] = sum_m sum_n padded[i+m, j+n] * k[m,n]
//
// This is a correlation, not a textbook convolution. It runs four scalar
// nested loops and serves as the ground-truth reference for faster code.
func Naive(img, k *plane.Plane) (*plane.Plane, error) {
	if err := checkInputs(img, k); err != nil {
		return nil, err
	}

	padded, err := plane.PadForKernel(img, k)
	if err != nil {
		return nil, err
	}

	out := plane.New(img.Rows, img.Cols)
	for i := 0; i < img.Rows; i++ {
		for j := 0; j < img.Cols; j++ {
			var sum float64
			for m := 0; m < k.Rows; m++ {
				for n := 0; n < k.Cols; n++ {
					sum += padded.At(i+m, j+n) * k.At(m, n)
				}
			}
			out.Set(i, j, sum)
		}
	}
	return out, nil
}

// Convolve performs same-size 2D convolution of img with k.
// The kernel is flipped along both axes before sliding, so this is true
// convolution. Returns a new plane with the dimensions of img.
func Convolve(img, k *plane.Plane) (*plane.Plane, error) {
	if err := checkInputs(img, k); err != nil {
		return nil, err
	}

	out := plane.New(img.Rows, img.Cols)
	if err := convolveTo(out, img, k); err != nil {
		return nil, err
	}
	return out, nil
}

// ConvolveTo performs the same operation as Convolve, writing into a
// pre-allocated destination. dst must have the dimensions of img.
func ConvolveTo(dst, img, k *plane.Plane) error {
	if err := checkInputs(img, k); err != nil {
		return err
	}
	if err := dst.Validate(); err != nil {
		return err
	}
	if !dst.SameShape(img) {
		return fmt.Errorf("%w: dst is %dx%d, image is %dx%d",
			plane.ErrShapeMismatch, dst.Rows, dst.Cols, img.Rows, img.Cols)
	}
	return convolveTo(dst, img, k)
}

func convolveTo(dst, img, k *plane.Plane) error {
	w, err := newWindowed(img, k)
	if err != nil {
		return err
	}
	w.rows(dst, 0, img.Rows, w.scratch())
	return nil
}

// checkInputs validates the image and kernel shared by every entry point.
func checkInputs(img, k *plane.Plane) error {
	if err := img.Validate(); err != nil {
		return err
	}
	return plane.CheckKernel(k)
}

// windowed holds the padded image and flipped kernel for one convolution.
type windowed struct {
	padded  *plane.Plane
	flipped []float64
	kh, kw  int
}

func newWindowed(img, k *plane.Plane) (*windowed, error) {
	padded, err := plane.PadForKernel(img, k)
	if err != nil {
		return nil, err
	}
	return &windowed{
		padded:  padded,
		flipped: plane.Flip(k).Data,
		kh:      k.Rows,
		kw:      k.Cols,
	}, nil
}

// scratch allocates a buffer large enough for one window.
func (w *windowed) scratch() []float64 {
	return make([]float64, w.kh*w.kw)
}

// rows computes output rows [start, end) into dst. buf is owned by the
// caller and must not be shared between concurrent calls.
func (w *windowed) rows(dst *plane.Plane, start, end int, buf []float64) {
	for i := start; i < end; i++ {
		row := dst.Row(i)
		for j := range row {
			w.padded.Window(buf, i, j, w.kh, w.kw)
			vecmath.MulBlockInPlace(buf, w.flipped)
			row[j] = floats.Sum(buf)
		}
	}
}
