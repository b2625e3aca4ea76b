package match

import (
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-vision/vision/plane"
)

// Peak is a scored location in a response plane.
type Peak struct {
	Row   int
	Col   int
	Value float64
}

// FindPeak returns the position and value of the maximum of a response
// plane. Ties resolve to the first maximum in row-major order.
// Returns (-1, -1, 0) for an empty plane.
func FindPeak(p *plane.Plane) (row, col int, value float64) {
	if p == nil || len(p.Data) == 0 || p.Cols == 0 {
		return -1, -1, 0
	}
	idx := floats.MaxIdx(p.Data)
	return idx / p.Cols, idx % p.Cols, p.Data[idx]
}

// TopPeaks returns up to n peaks in decreasing order of value. A candidate
// is skipped when it lies within minDist (Chebyshev distance) of an already
// accepted peak, which suppresses the plateau around each match.
// minDist <= 1 keeps every cell eligible.
func TopPeaks(p *plane.Plane, n, minDist int) []Peak {
	if p == nil || n <= 0 || len(p.Data) == 0 || p.Cols == 0 {
		return nil
	}

	order := make([]int, len(p.Data))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		switch va, vb := p.Data[a], p.Data[b]; {
		case va > vb:
			return -1
		case va < vb:
			return 1
		default:
			return 0
		}
	})

	peaks := make([]Peak, 0, n)
	for _, idx := range order {
		cand := Peak{Row: idx / p.Cols, Col: idx % p.Cols, Value: p.Data[idx]}
		if suppressed(peaks, cand, minDist) {
			continue
		}
		peaks = append(peaks, cand)
		if len(peaks) == n {
			break
		}
	}
	return peaks
}

func suppressed(accepted []Peak, cand Peak, minDist int) bool {
	for _, pk := range accepted {
		if max(abs(pk.Row-cand.Row), abs(pk.Col-cand.Col)) < minDist {
			return true
		}
	}
	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
