package conv2d

import (
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-vision/vision/plane"
)

// ConvolveFast is the fastest convolution entry point. It computes exactly
// what Convolve computes, but splits output rows into contiguous bands that
// run in parallel. Every output cell reads a disjoint, read-only window, so
// workers share nothing but the padded input and the kernel.
func ConvolveFast(img, k *plane.Plane, opts ...Option) (*plane.Plane, error) {
	if err := checkInputs(img, k); err != nil {
		return nil, err
	}

	w, err := newWindowed(img, k)
	if err != nil {
		return nil, err
	}

	out := plane.New(img.Rows, img.Cols)
	cfg := ApplyOptions(opts...)

	bands := cfg.bands(img.Rows)
	if bands == 1 {
		w.rows(out, 0, img.Rows, w.scratch())
		return out, nil
	}

	var g errgroup.Group
	g.SetLimit(bands)

	chunk := (img.Rows + bands - 1) / bands
	for start := 0; start < img.Rows; start += chunk {
		end := min(start+chunk, img.Rows)
		g.Go(func() error {
			w.rows(out, start, end, w.scratch())
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
