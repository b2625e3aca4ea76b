// Package plane provides the single-channel image model shared by the 2D
// filtering packages: a dense, row-major grid of float64 samples.
//
// The same type carries images, kernels, templates and filter outputs.
// Values are not range-constrained; callers may work in [0,1] or [0,255].
package plane

import (
	"errors"
	"fmt"
)

// Errors returned by plane constructors and helpers.
var (
	ErrEmptyPlane         = errors.New("plane: empty plane")
	ErrShapeMismatch      = errors.New("plane: shape mismatch")
	ErrInvalidPadding     = errors.New("plane: negative padding")
	ErrInvalidKernelShape = errors.New("plane: kernel dimensions must be odd and positive")
)

// Plane is a Rows x Cols grid stored row-major in Data.
// Element (r, c) lives at Data[r*Cols+c].
type Plane struct {
	Rows int
	Cols int
	Data []float64
}

// New returns a zero-filled plane. It panics if rows or cols is negative.
func New(rows, cols int) *Plane {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("plane: negative dimensions %dx%d", rows, cols))
	}
	return &Plane{Rows: rows, Cols: cols, Data: make([]float64, rows*cols)}
}

// FromRows copies a rectangular [][]float64 into a new plane.
// Returns ErrEmptyPlane for empty or ragged input.
func FromRows(rows [][]float64) (*Plane, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyPlane
	}

	cols := len(rows[0])
	p := New(len(rows), cols)
	for r, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrEmptyPlane, r, len(row), cols)
		}
		copy(p.Row(r), row)
	}
	return p, nil
}

// MustFromRows is like FromRows but panics on error.
// Intended for literals in tests and examples.
func MustFromRows(rows [][]float64) *Plane {
	p, err := FromRows(rows)
	if err != nil {
		panic(err)
	}
	return p
}

// FromSlice wraps data as a rows x cols plane without copying.
func FromSlice(rows, cols int, data []float64) (*Plane, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrEmptyPlane
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%w: %d samples for %dx%d", ErrShapeMismatch, len(data), rows, cols)
	}
	return &Plane{Rows: rows, Cols: cols, Data: data}, nil
}

// Validate reports whether p is a usable, non-empty plane.
func (p *Plane) Validate() error {
	if p == nil || p.Rows < 1 || p.Cols < 1 {
		return ErrEmptyPlane
	}
	if len(p.Data) != p.Rows*p.Cols {
		return fmt.Errorf("%w: %d samples for %dx%d", ErrShapeMismatch, len(p.Data), p.Rows, p.Cols)
	}
	return nil
}

// CheckKernel validates k as a filter kernel: non-empty with odd
// dimensions, so that a unique center element exists.
func CheckKernel(k *Plane) error {
	if k == nil || k.Rows < 1 || k.Cols < 1 {
		return ErrInvalidKernelShape
	}
	if k.Rows%2 == 0 || k.Cols%2 == 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidKernelShape, k.Rows, k.Cols)
	}
	return k.Validate()
}

// Dims returns the number of rows and columns.
func (p *Plane) Dims() (rows, cols int) {
	return p.Rows, p.Cols
}

// SameShape reports whether p and q have identical dimensions.
func (p *Plane) SameShape(q *Plane) bool {
	return p.Rows == q.Rows && p.Cols == q.Cols
}

// At returns the sample at row r, column c.
func (p *Plane) At(r, c int) float64 {
	return p.Data[r*p.Cols+c]
}

// Set stores v at row r, column c.
func (p *Plane) Set(r, c int, v float64) {
	p.Data[r*p.Cols+c] = v
}

// Row returns row r as a slice aliasing the plane's storage.
func (p *Plane) Row(r int) []float64 {
	return p.Data[r*p.Cols : (r+1)*p.Cols]
}

// Clone returns a deep copy of p.
func (p *Plane) Clone() *Plane {
	out := &Plane{Rows: p.Rows, Cols: p.Cols, Data: make([]float64, len(p.Data))}
	copy(out.Data, p.Data)
	return out
}

// ToRows copies the plane into a freshly allocated [][]float64.
func (p *Plane) ToRows() [][]float64 {
	rows := make([][]float64, p.Rows)
	for r := range rows {
		rows[r] = append([]float64(nil), p.Row(r)...)
	}
	return rows
}

// Equal reports whether p and q have the same shape and identical samples.
func (p *Plane) Equal(q *Plane) bool {
	if !p.SameShape(q) {
		return false
	}
	for i, v := range p.Data {
		if q.Data[i] != v {
			return false
		}
	}
	return true
}

// String formats small planes for debugging.
func (p *Plane) String() string {
	return fmt.Sprintf("Plane(%dx%d)%v", p.Rows, p.Cols, p.ToRows())
}
