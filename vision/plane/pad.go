package plane

import "fmt"

// ZeroPad returns a new plane of size (Rows+2*padH) x (Cols+2*padW) with p
// copied into the center and zeros everywhere else.
func ZeroPad(p *Plane, padH, padW int) (*Plane, error) {
	if padH < 0 || padW < 0 {
		return nil, fmt.Errorf("%w: %d, %d", ErrInvalidPadding, padH, padW)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	out := New(p.Rows+2*padH, p.Cols+2*padW)
	for r := 0; r < p.Rows; r++ {
		copy(out.Row(r + padH)[padW:], p.Row(r))
	}
	return out, nil
}

// PadForKernel zero-pads p by half the kernel size on each axis, which keeps
// a "same"-mode output aligned with the kernel center.
func PadForKernel(p, k *Plane) (*Plane, error) {
	return ZeroPad(p, k.Rows/2, k.Cols/2)
}

// Flip returns a copy of p reversed along both axes.
// For row-major storage this is a reversal of the flat sample slice.
func Flip(p *Plane) *Plane {
	out := New(p.Rows, p.Cols)
	n := len(p.Data)
	for i, v := range p.Data {
		out.Data[n-1-i] = v
	}
	return out
}

// Window copies the h x w block whose top-left corner is (r, c) into dst,
// row by row. dst must hold at least h*w samples and the block must lie
// inside p.
func (p *Plane) Window(dst []float64, r, c, h, w int) {
	for m := 0; m < h; m++ {
		start := (r+m)*p.Cols + c
		copy(dst[m*w:(m+1)*w], p.Data[start:start+w])
	}
}
