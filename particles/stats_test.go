package particles

import (
	"math"
	"testing"

	"github.com/yusrishaharin/colloids/geom"
)

func twoParticles(d float64) *Particles {
	p := New(2, 0.5)
	p.Pos[0] = geom.New(0, 0, 0)
	p.Pos[1] = geom.New(d, 0, 0)
	p.RecomputeBounds()
	return p
}

func TestRdfPutsPairInTheRightBin(t *testing.T) {
	p := twoParticles(1.0)
	rdf := NewRdf(p)
	rdf.Compute(p)
	total := 0.0
	for _, g := range rdf.G {
		total += g
	}
	if total <= 0 {
		t.Fatal("expected a non-zero rdf with one pair inside range")
	}
	var bin int
	for i, r := range rdf.R {
		if math.Abs(r-1.0) < math.Abs(rdf.R[bin]-1.0) {
			bin = i
		}
	}
	if rdf.G[bin] == 0 {
		t.Fatalf("expected the bin nearest separation 1.0 to be non-zero")
	}
}

func TestGlWithIdenticalCoefficientsIsPositive(t *testing.T) {
	p := twoParticles(1.0)
	gl := NewGl(p)
	coeffs := [][]complex128{
		{complex(1, 0), complex(0.5, 0.2)},
		{complex(1, 0), complex(0.5, 0.2)},
	}
	gl.Compute(p, coeffs)
	total := 0.0
	for _, g := range gl.G {
		total += g
	}
	if total <= 0 {
		t.Fatalf("identical coefficients should give a positive correlation, got total %g", total)
	}
}

func TestGlOppositeSignCoefficientsIsNegative(t *testing.T) {
	p := twoParticles(1.0)
	gl := NewGl(p)
	coeffs := [][]complex128{
		{complex(1, 0)},
		{complex(-1, 0)},
	}
	gl.Compute(p, coeffs)
	total := 0.0
	for _, g := range gl.G {
		total += g
	}
	if total >= 0 {
		t.Fatalf("opposite-sign coefficients should give a negative correlation, got total %g", total)
	}
}

func TestAngularDistributionIgnoresLowDegreeParticles(t *testing.T) {
	p := New(3, 0.5)
	p.Ngb = NgbList{{1, 2}, {0}, {0}}
	hist := p.AngularDistribution()
	sum := 0.0
	for _, h := range hist {
		sum += h
	}
	if sum != 0 {
		t.Fatalf("particles with at most 2 neighbors are skipped, expected sum 0, got %g", sum)
	}
}

func TestAngularDistributionCountsRightAngle(t *testing.T) {
	p := New(4, 0.5)
	p.Pos[0] = geom.New(0, 0, 0)
	p.Pos[1] = geom.New(1, 0, 0)
	p.Pos[2] = geom.New(0, 1, 0)
	p.Pos[3] = geom.New(0, 0, 1)
	p.Ngb = NgbList{{1, 2, 3}, {0}, {0}, {0}}
	hist := p.AngularDistribution()
	sum := 0.0
	for _, h := range hist {
		sum += h
	}
	// nb=3 neighbors gives 3 distinct pairs, each scaled by
	// 1/((nb-1)(nb-2)/2) = 1/1 = 1, so every pair contributes 1 full unit.
	if math.Abs(sum-3.0) > 1e-9 {
		t.Fatalf("expected 3 pairs of 1 unit each, got total %g", sum)
	}
	if hist[90] < 2.9 {
		t.Fatalf("expected all three right-angle pairs to land in the 90-degree bin, got hist[90]=%g", hist[90])
	}
}
