package boo

import (
	"math"
	"testing"

	"github.com/yusrishaharin/colloids/geom"
	"github.com/yusrishaharin/colloids/particles"
)

func TestZeroBondsIsZero(t *testing.T) {
	var b BooData
	for _, l := range Degrees {
		if q := b.Ql(l); q != 0 {
			t.Fatalf("zero descriptor should have Q_%d==0, got %f", l, q)
		}
		if w := b.W(l); w != 0 {
			t.Fatalf("zero descriptor should have W_%d==0, got %f", l, w)
		}
	}
}

// A single bond normalizes Q_l to exactly 1 for every l, independent of
// direction, by the spherical-harmonic addition theorem: |N(i)|=1 means
// q_{l,m} = Y_{l,m}(bond) with no averaging, and sum_m |Y_{l,m}|^2 =
// (2l+1)/(4*pi) regardless of direction.
func TestSingleBondQlIsOne(t *testing.T) {
	bond := geom.New(0.3, -0.7, 1.1)
	b := PerBond(bond)
	for _, l := range Degrees {
		q := b.Ql(l)
		if math.Abs(q-1) > 1e-9 {
			t.Fatalf("Q_%d for a single bond should be 1, got %.9f", l, q)
		}
	}
}

func rotateRodrigues(v, axis geom.Vec3, angle float64) geom.Vec3 {
	axis = geom.Unit(axis)
	c, s := math.Cos(angle), math.Sin(angle)
	term1 := geom.Scale(c, v)
	term2 := geom.Scale(s, geom.Cross(axis, v))
	term3 := geom.Scale(geom.Dot(axis, v)*(1-c), axis)
	return geom.Add(geom.Add(term1, term2), term3)
}

func TestRotationalInvarianceOfQl(t *testing.T) {
	bonds := []geom.Vec3{
		geom.New(1, 0, 0), geom.New(0, 1, 0), geom.New(0, 0, 1),
		geom.New(1, 1, 0), geom.New(-1, 1, 1), geom.New(0.3, -0.8, 0.5),
	}
	var b BooData
	for _, bond := range bonds {
		b = Add(b, PerBond(bond))
	}
	b = Scale(1/float64(len(bonds)), b)

	axis := geom.New(0.2, 0.6, 0.4)
	angle := 1.234
	var bRot BooData
	for _, bond := range bonds {
		bRot = Add(bRot, PerBond(rotateRodrigues(bond, axis, angle)))
	}
	bRot = Scale(1/float64(len(bonds)), bRot)

	for _, l := range Degrees {
		q0, qr := b.Ql(l), bRot.Ql(l)
		if math.Abs(q0-qr) > 1e-6 {
			t.Fatalf("Q_%d not rotation invariant: %f vs %f", l, q0, qr)
		}
		w0, wr := b.W(l), bRot.W(l)
		if math.Abs(w0-wr) > 1e-6 {
			t.Fatalf("W_%d not rotation invariant: %f vs %f", l, w0, wr)
		}
	}
}

func TestHalfTurnRotationSquaredIsIdentity(t *testing.T) {
	bonds := []geom.Vec3{geom.New(1, 0, 0), geom.New(0.2, 1, -0.3), geom.New(-0.5, 0.1, 0.9)}
	var b BooData
	for _, bond := range bonds {
		b = Add(b, PerBond(bond))
	}
	axis := geom.New(0.1, 0.2, 1.0)
	twice := b.RotateByPi(axis).RotateByPi(axis)
	for _, l := range Degrees {
		for m := 0; m <= l; m++ {
			got := twice.Get(l, m)
			want := b.Get(l, m)
			if cAbs(got-want) > 1e-6 {
				t.Fatalf("rotate-twice != identity at l=%d m=%d: got %v want %v", l, m, got, want)
			}
		}
	}
}

func cAbs(z complex128) float64 {
	return math.Hypot(real(z), imag(z))
}

// fccShell is the 12-vector nearest-neighbor coordination shell of an
// FCC lattice: all permutations of two +-1 entries and one 0 entry.
func fccShell() []geom.Vec3 {
	var out []geom.Vec3
	signs := []float64{1, -1}
	for _, sx := range signs {
		for _, sy := range signs {
			out = append(out, geom.New(sx, sy, 0))
			out = append(out, geom.New(sx, 0, sy))
			out = append(out, geom.New(0, sx, sy))
		}
	}
	return out
}

func TestFCCInvariants(t *testing.T) {
	shell := fccShell()
	var b BooData
	for _, bond := range shell {
		b = Add(b, PerBond(bond))
	}
	b = Scale(1/float64(len(shell)), b)

	q6 := b.Ql(6)
	q4 := b.Ql(4)
	if math.Abs(q6-0.5745) > 0.02 {
		t.Fatalf("FCC Q_6 expected ~0.5745, got %f", q6)
	}
	if math.Abs(q4-0.1909) > 0.02 {
		t.Fatalf("FCC Q_4 expected ~0.1909, got %f", q4)
	}
}

func TestSurfaceBooLeavesUntouchedAtZero(t *testing.T) {
	// Three colinear particles: 0-1 bonded, 1-2 bonded, 0 and 2 not
	// bonded to each other and share no common neighbor other than 1
	// itself, so particle 1 gains touches from both bonds while 0 and 2
	// only ever see their own bond -- none should end at zero here, so
	// instead verify an isolated fourth particle (no bonds at all) stays
	// untouched at zero.
	pos := []geom.Vec3{geom.New(0, 0, 0), geom.New(1, 0, 0), geom.New(2, 0, 0), geom.New(50, 50, 50)}
	ngb := particles.NgbList{
		{1},
		{0, 2},
		{1},
		{},
	}
	out := SurfaceBoo(pos, ngb)
	if out[3].Ql(6) != 0 {
		t.Fatalf("isolated particle should keep a zero descriptor, got Q6=%f", out[3].Ql(6))
	}
}
