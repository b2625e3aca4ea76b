package plane

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sum returns the sum of all samples.
func (p *Plane) Sum() float64 {
	return floats.Sum(p.Data)
}

// Mean returns the arithmetic mean of all samples.
func (p *Plane) Mean() float64 {
	return stat.Mean(p.Data, nil)
}

// MeanStdDev returns the mean and the population standard deviation
// (divisor N, not N-1) of all samples.
func (p *Plane) MeanStdDev() (mean, std float64) {
	return stat.PopMeanStdDev(p.Data, nil)
}

// Range returns the smallest and largest sample.
func (p *Plane) Range() (lo, hi float64) {
	return floats.Min(p.Data), floats.Max(p.Data)
}

// AddConst returns a copy of p with c added to every sample.
func (p *Plane) AddConst(c float64) *Plane {
	out := p.Clone()
	floats.AddConst(c, out.Data)
	return out
}

// Scale returns a copy of p with every sample multiplied by a.
func (p *Plane) Scale(a float64) *Plane {
	out := p.Clone()
	floats.Scale(a, out.Data)
	return out
}

// Standardize returns (p - mean) / std along with the statistics used.
// The result is undefined (Inf/NaN) when std is zero; callers check std.
func (p *Plane) Standardize() (out *Plane, mean, std float64) {
	mean, std = p.MeanStdDev()
	out = p.AddConst(-mean)
	floats.Scale(1/std, out.Data)
	return out, mean, std
}
