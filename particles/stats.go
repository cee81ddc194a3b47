package particles

import (
	"math"

	"github.com/yusrishaharin/colloids/geom"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/combin"
)

// Rdf is a radial distribution function: 200 bins of g(r) over
// [0, 15*2*radius], each shell normalized by the ideal-gas count
// rho*4*pi*r^2*dr expected in a shell of that radius.
type Rdf struct {
	R    []float64
	G    []float64
	dr   float64
	rho  float64
}

const rdfBins = 200

// NewRdf builds an empty Rdf accumulator sized to the particle set's
// radius and number density.
func NewRdf(p *Particles) *Rdf {
	rmax := 15 * 2 * p.Radius
	dr := rmax / rdfBins
	r := make([]float64, rdfBins)
	for i := range r {
		r[i] = (float64(i) + 0.5) * dr
	}
	return &Rdf{R: r, G: make([]float64, rdfBins), dr: dr, rho: p.NumberDensity()}
}

// Compute fills in G by counting, over every ordered pair of distinct
// particles, which shell their separation falls in, then dividing each
// bin by the ideal-gas shell count rho*4*pi*r^2*dr*N.
func (rdf *Rdf) Compute(p *Particles) {
	n := len(p.Pos)
	counts := make([]float64, rdfBins)
	rmax := rdf.R[rdfBins-1] + 0.5*rdf.dr
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := math.Sqrt(geom.Norm2(geom.Sub(p.Pos[i], p.Pos[j])))
			if d >= rmax {
				continue
			}
			bin := int(d / rdf.dr)
			if bin < 0 || bin >= rdfBins {
				continue
			}
			counts[bin] += 2 // ordered pairs: (i,j) and (j,i)
		}
	}
	for i, r := range rdf.R {
		shell := rdf.rho * 4 * math.Pi * r * r * rdf.dr * float64(n)
		if shell <= 0 {
			rdf.G[i] = 0
			continue
		}
		rdf.G[i] = counts[i] / shell
	}
}

// Gl is the bond-orientational correlation function g_l(r): like Rdf, a
// 200-bin histogram over [0, 15*2*radius], but each pair's contribution
// is weighted by the dot product of their q_{l,m} coefficients instead
// of a bare count of 1. The degree l is implicit in the width of the
// coefficient slices passed to Compute.
type Gl struct {
	R   []float64
	G   []float64
	dr  float64
	rho float64
}

// NewGl builds an empty Gl accumulator sized the same way as NewRdf.
func NewGl(p *Particles) *Gl {
	rmax := 15 * 2 * p.Radius
	dr := rmax / rdfBins
	r := make([]float64, rdfBins)
	for i := range r {
		r[i] = (float64(i) + 0.5) * dr
	}
	return &Gl{R: r, G: make([]float64, rdfBins), dr: dr, rho: p.NumberDensity()}
}

// dotQlm is sum_m q_{l,m}(a) * conj(q_{l,m}(b)) for m in [-l,l], reduced
// to only the stored m>=0 half: the m<0 terms equal their m>0
// counterpart's conjugate pair, so the full symmetric sum is the m=0
// term plus twice the real part of each m>0 term.
func dotQlm(a, b []complex128) float64 {
	sum := real(a[0] * cmplx128Conj(b[0]))
	for m := 1; m < len(a); m++ {
		sum += 2 * real(a[m]*cmplx128Conj(b[m]))
	}
	return sum
}

func cmplx128Conj(z complex128) complex128 { return complex(real(z), -imag(z)) }

// Compute fills in G the same way Rdf.Compute does, except each ordered
// pair's contribution to its shell is weighted by dotQlm(coeffs[i],
// coeffs[j]) instead of a bare count of 1. coeffs[i] holds particle i's
// q_{l,m} coefficients for m in [0,l], e.g. sliced out of a
// boo.BooData with BooData.Get(l,m) for the chosen l -- package
// particles does not import package boo, since boo already imports
// particles for NgbList.
func (gl *Gl) Compute(p *Particles, coeffs [][]complex128) {
	n := len(p.Pos)
	sums := make([]float64, rdfBins)
	rmax := gl.R[rdfBins-1] + 0.5*gl.dr
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := math.Sqrt(geom.Norm2(geom.Sub(p.Pos[i], p.Pos[j])))
			if d >= rmax {
				continue
			}
			bin := int(d / gl.dr)
			if bin < 0 || bin >= rdfBins {
				continue
			}
			sums[bin] += 2 * dotQlm(coeffs[i], coeffs[j])
		}
	}
	for i, r := range gl.R {
		shell := gl.rho * 4 * math.Pi * r * r * gl.dr * float64(n)
		if shell <= 0 {
			gl.G[i] = 0
			continue
		}
		gl.G[i] = sums[i] / shell
	}
}

// AngularDistribution returns a 180-bin histogram of bond angles over
// every particle with more than two neighbors, each of the nb(nb-1)/2
// neighbor pairs of a particle adding 1/((nb-1)(nb-2)/2) to its bin --
// the supplemented feature grounded on getAngularDistribution.
func (p *Particles) AngularDistribution() []float64 {
	hist := make([]float64, 180)
	for i, ngb := range p.Ngb {
		nb := len(ngb)
		if nb <= 2 {
			continue
		}
		scale := 1.0 / float64(combin.Binomial(nb-1, 2))
		for a := 0; a < nb; a++ {
			for b := a + 1; b < nb; b++ {
				theta := p.Angle(i, ngb[a], ngb[b])
				bin := int(theta * 180 / math.Pi)
				if bin >= 180 {
					bin = 179
				}
				if bin < 0 {
					bin = 0
				}
				hist[bin] += scale
			}
		}
	}
	return hist
}

// Mean is a thin wrapper over gonum/floats returning the arithmetic mean
// of xs; kept as a named helper rather than an inline call so package
// users are not required to import gonum/floats themselves just to get
// this one number.
func Mean(xs []float64) float64 { return floats.Sum(xs) / float64(len(xs)) }
