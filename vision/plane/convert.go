package plane

import (
	"image"
	"image/color"
	"math"

	"gonum.org/v1/gonum/mat"
)

// FromDense copies any gonum matrix into a new plane.
func FromDense(m mat.Matrix) *Plane {
	rows, cols := m.Dims()
	p := New(rows, cols)
	for r := 0; r < rows; r++ {
		row := p.Row(r)
		for c := range row {
			row[c] = m.At(r, c)
		}
	}
	return p
}

// Dense returns a gonum matrix holding a copy of p.
// It panics if p has a zero dimension, as mat.NewDense does.
func (p *Plane) Dense() *mat.Dense {
	data := make([]float64, len(p.Data))
	copy(data, p.Data)
	return mat.NewDense(p.Rows, p.Cols, data)
}

// FromImage converts img to luma samples in [0, 1].
// Row 0 is the top of the image bounds.
func FromImage(img image.Image) *Plane {
	b := img.Bounds()
	p := New(b.Dy(), b.Dx())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := p.Row(y - b.Min.Y)
		for x := b.Min.X; x < b.Max.X; x++ {
			g := color.Gray16Model.Convert(img.At(x, y)).(color.Gray16)
			row[x-b.Min.X] = float64(g.Y) / 0xffff
		}
	}
	return p
}

// Gray renders p as an 8-bit image, mapping lo to black and hi to white.
// Samples outside [lo, hi] are clamped. If hi <= lo the image is black.
func (p *Plane) Gray(lo, hi float64) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, p.Cols, p.Rows))

	var scale float64
	if hi > lo {
		scale = 255 / (hi - lo)
	}

	for r := 0; r < p.Rows; r++ {
		row := p.Row(r)
		pix := img.Pix[r*img.Stride : r*img.Stride+p.Cols]
		for c, v := range row {
			s := (v - lo) * scale
			switch {
			case math.IsNaN(s) || s <= 0:
				pix[c] = 0
			case s >= 255:
				pix[c] = 255
			default:
				pix[c] = uint8(math.Round(s))
			}
		}
	}
	return img
}
