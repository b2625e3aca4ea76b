package conv2d

import (
	"errors"
	"fmt"
	"testing"

	"github.com/cwbudde/algo-vision/internal/testutil"
	"github.com/cwbudde/algo-vision/vision/plane"
)

// bruteConvolve is an independent scalar implementation of true
// convolution (flipped kernel) with zero padding.
func bruteConvolve(img, k *plane.Plane) *plane.Plane {
	ph, pw := k.Rows/2, k.Cols/2
	out := plane.New(img.Rows, img.Cols)
	for i := 0; i < img.Rows; i++ {
		for j := 0; j < img.Cols; j++ {
			var sum float64
			for m := 0; m < k.Rows; m++ {
				for n := 0; n < k.Cols; n++ {
					r, c := i+m-ph, j+n-pw
					if r < 0 || r >= img.Rows || c < 0 || c >= img.Cols {
						continue
					}
					sum += img.At(r, c) * k.At(k.Rows-1-m, k.Cols-1-n)
				}
			}
			out.Set(i, j, sum)
		}
	}
	return out
}

var scenarioImage = [][]float64{
	{1, 2, 1},
	{0, 1, 0},
	{1, 0, 1},
}

func TestConvolveScenarios(t *testing.T) {
	tests := []struct {
		name     string
		kernel   [][]float64
		expected [][]float64
	}{
		{
			name:     "identity",
			kernel:   [][]float64{{0, 0, 0}, {0, 1, 0}, {0, 0, 0}},
			expected: scenarioImage,
		},
		{
			name:   "box sum",
			kernel: [][]float64{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}},
			expected: [][]float64{
				{4, 5, 4},
				{5, 7, 5},
				{2, 3, 2},
			},
		},
		{
			name:     "1x1 scale",
			kernel:   [][]float64{{2}},
			expected: [][]float64{{2, 4, 2}, {0, 2, 0}, {2, 0, 2}},
		},
	}

	img := plane.MustFromRows(scenarioImage)
	entryPoints := map[string]func(img, k *plane.Plane) (*plane.Plane, error){
		"Naive":    Naive,
		"Convolve": Convolve,
		"ConvolveFast": func(img, k *plane.Plane) (*plane.Plane, error) {
			return ConvolveFast(img, k, WithWorkers(2), WithMinRows(1))
		},
	}

	for _, tt := range tests {
		for name, fn := range entryPoints {
			t.Run(fmt.Sprintf("%s/%s", tt.name, name), func(t *testing.T) {
				got, err := fn(img, plane.MustFromRows(tt.kernel))
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				want := plane.MustFromRows(tt.expected)
				if !got.Equal(want) {
					t.Errorf("got %v, want %v", got, want)
				}
			})
		}
	}
}

func TestBoxSumCenterCell(t *testing.T) {
	img := plane.MustFromRows(scenarioImage)
	out, err := Convolve(img, testutil.Ones(3, 3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := out.At(1, 1), img.Sum(); got != want || want != 7 {
		t.Errorf("center cell = %v, want %v (sum of all samples)", got, want)
	}
}

func TestIdentityKernelReproducesImage(t *testing.T) {
	img := testutil.DeterministicNoise(11, 255, 17, 23)

	for _, size := range [][2]int{{1, 1}, {3, 3}, {5, 3}, {7, 9}} {
		k := testutil.Identity(size[0], size[1])
		t.Run(fmt.Sprintf("%dx%d", size[0], size[1]), func(t *testing.T) {
			for name, fn := range map[string]func(img, k *plane.Plane) (*plane.Plane, error){
				"Naive":    Naive,
				"Convolve": Convolve,
			} {
				out, err := fn(img, k)
				if err != nil {
					t.Fatalf("%s: unexpected error: %v", name, err)
				}
				if !out.Equal(img) {
					t.Errorf("%s: identity kernel changed the image", name)
				}
			}
		})
	}
}

func TestConvolveFlipsKernel(t *testing.T) {
	img := testutil.Impulse(5, 5, 2, 2)
	k := plane.MustFromRows([][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	conv, err := Convolve(img, k)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	naive, err := Naive(img, k)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Convolving an impulse reproduces the kernel; the unflipped sliding sum
	// reproduces the kernel rotated by 180 degrees.
	flipped := plane.Flip(k)
	for m := 0; m < 3; m++ {
		for n := 0; n < 3; n++ {
			if got, want := conv.At(m+1, n+1), k.At(m, n); got != want {
				t.Errorf("Convolve(%d,%d) = %v, want %v", m+1, n+1, got, want)
			}
			if got, want := naive.At(m+1, n+1), flipped.At(m, n); got != want {
				t.Errorf("Naive(%d,%d) = %v, want %v", m+1, n+1, got, want)
			}
		}
	}
}

func TestConvolveMatchesBruteForce(t *testing.T) {
	sizes := []struct {
		rows, cols, kh, kw int
	}{
		{1, 1, 1, 1},
		{1, 9, 1, 3},
		{8, 8, 3, 3},
		{13, 7, 5, 3},
		{2, 3, 5, 7}, // kernel larger than the image
		{32, 24, 7, 7},
	}

	for i, s := range sizes {
		t.Run(fmt.Sprintf("img=%dx%d_kernel=%dx%d", s.rows, s.cols, s.kh, s.kw), func(t *testing.T) {
			img := testutil.DeterministicNoise(int64(i), 10, s.rows, s.cols)
			k := testutil.DeterministicNoise(int64(100+i), 1, s.kh, s.kw)

			want := bruteConvolve(img, k)

			got, err := Convolve(img, k)
			if err != nil {
				t.Fatalf("Convolve: %v", err)
			}
			testutil.RequirePlaneNearlyEqual(t, got, want, 1e-9)

			// The unflipped reference with a pre-flipped kernel is the same
			// operation.
			naive, err := Naive(img, plane.Flip(k))
			if err != nil {
				t.Fatalf("Naive: %v", err)
			}
			testutil.RequirePlaneNearlyEqual(t, naive, want, 1e-9)
		})
	}
}

func TestConvolveTo(t *testing.T) {
	img := testutil.DeterministicNoise(3, 1, 6, 4)
	k := testutil.DeterministicNoise(4, 1, 3, 3)

	dst := testutil.Constant(99, 6, 4)
	if err := ConvolveTo(dst, img, k); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want, _ := Convolve(img, k)
	if !dst.Equal(want) {
		t.Errorf("ConvolveTo result differs from Convolve")
	}

	// Writing back into the source is allowed: the padded copy is private.
	if err := ConvolveTo(img, img, k); err != nil {
		t.Fatalf("in-place: unexpected error: %v", err)
	}
	if !img.Equal(want) {
		t.Errorf("in-place ConvolveTo differs from Convolve")
	}

	err := ConvolveTo(plane.New(4, 6), img, k)
	if !errors.Is(err, plane.ErrShapeMismatch) {
		t.Errorf("expected ErrShapeMismatch, got %v", err)
	}
}

func TestConvolveErrors(t *testing.T) {
	img := plane.New(4, 4)
	entryPoints := map[string]func(img, k *plane.Plane) (*plane.Plane, error){
		"Naive":    Naive,
		"Convolve": Convolve,
		"ConvolveFast": func(img, k *plane.Plane) (*plane.Plane, error) {
			return ConvolveFast(img, k)
		},
	}

	for name, fn := range entryPoints {
		t.Run(name, func(t *testing.T) {
			for _, k := range []*plane.Plane{plane.New(2, 3), plane.New(3, 4), plane.New(0, 0), nil} {
				if _, err := fn(img, k); !errors.Is(err, plane.ErrInvalidKernelShape) {
					t.Errorf("kernel %v: expected ErrInvalidKernelShape, got %v", k, err)
				}
			}

			if _, err := fn(plane.New(0, 3), plane.New(3, 3)); !errors.Is(err, plane.ErrEmptyPlane) {
				t.Errorf("expected ErrEmptyPlane, got %v", err)
			}

			broken := &plane.Plane{Rows: 2, Cols: 2, Data: make([]float64, 3)}
			if _, err := fn(broken, plane.New(3, 3)); !errors.Is(err, plane.ErrShapeMismatch) {
				t.Errorf("expected ErrShapeMismatch, got %v", err)
			}
		})
	}
}

func TestConvolveDoesNotModifyInputs(t *testing.T) {
	img := testutil.DeterministicNoise(5, 1, 9, 9)
	k := testutil.DeterministicNoise(6, 1, 3, 5)
	imgCopy, kCopy := img.Clone(), k.Clone()

	if _, err := Convolve(img, k); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := Naive(img, k); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !img.Equal(imgCopy) || !k.Equal(kCopy) {
		t.Errorf("inputs were modified")
	}
}
