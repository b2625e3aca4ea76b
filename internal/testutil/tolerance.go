package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-vision/vision/plane"
)

// RequirePlaneNearlyEqual fails t if got and want differ in shape or if
// any sample pair exceeds eps (absolute tolerance).
func RequirePlaneNearlyEqual(t *testing.T, got, want *plane.Plane, eps float64) {
	t.Helper()
	if !got.SameShape(want) {
		t.Fatalf("shape mismatch: got %dx%d, want %dx%d", got.Rows, got.Cols, want.Rows, want.Cols)
	}
	for i := range got.Data {
		diff := math.Abs(got.Data[i] - want.Data[i])
		if diff > eps {
			r, c := i/got.Cols, i%got.Cols
			t.Fatalf("(%d,%d): got %v, want %v (diff %v > eps %v)", r, c, got.Data[i], want.Data[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any sample is NaN or Inf.
func RequireFinite(t *testing.T, p *plane.Plane) {
	t.Helper()
	for i, v := range p.Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("(%d,%d): non-finite value %v", i/p.Cols, i%p.Cols, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two planes.
// Returns an error if the planes differ in shape.
func MaxAbsDiff(a, b *plane.Plane) (float64, error) {
	if !a.SameShape(b) {
		return 0, fmt.Errorf("shape mismatch: %dx%d vs %dx%d", a.Rows, a.Cols, b.Rows, b.Cols)
	}
	maxDiff := 0.0
	for i := range a.Data {
		d := math.Abs(a.Data[i] - b.Data[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
