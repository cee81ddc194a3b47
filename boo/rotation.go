package boo

import (
	"math"
	"math/cmplx"

	"github.com/yusrishaharin/colloids/geom"
	"gonum.org/v1/gonum/mat"
)

// RotateByPi returns the BooData obtained by rotating b by a half turn
// (angle pi) about axis, implemented via the Wigner D-matrix for each l
// independently: expand to the full set of m in [-l,l], apply
// D^l(R_pi(axis)), and reduce back to the m>=0 storage. Rotation by pi
// about an arbitrary axis is decomposed as
// R_z(phi) R_y(theta) R_z(pi) R_y(-theta) R_z(-phi), where (theta,phi)
// are the spherical angles of axis; R_z acts on the m-index as a phase,
// R_y as the real Wigner small-d matrix computed by smallD.
func (b BooData) RotateByPi(axis geom.Vec3) BooData {
	theta, phi := geom.Spherical(axis)
	var out BooData
	for _, l := range Degrees {
		v := make([]complex128, 2*l+1) // v[m+l] = q_{l,m}
		for m := -l; m <= l; m++ {
			v[m+l] = b.Get(l, m)
		}
		v = rotateZ(v, l, -phi)
		v = rotateY(v, l, -theta)
		v = rotateZ(v, l, math.Pi)
		v = rotateY(v, l, theta)
		v = rotateZ(v, l, phi)
		for m := 0; m <= l; m++ {
			out.Set(l, m, v[m+l])
		}
	}
	return out
}

// rotateZ applies the diagonal Wigner D-matrix for a rotation by gamma
// about the z axis: D^l_{m'm}(gamma) = exp(-i*m*gamma)*delta_{m'm}.
func rotateZ(v []complex128, l int, gamma float64) []complex128 {
	out := make([]complex128, len(v))
	for m := -l; m <= l; m++ {
		out[m+l] = v[m+l] * cmplx.Exp(complex(0, -float64(m)*gamma))
	}
	return out
}

// rotateY applies the real Wigner small-d matrix for a rotation by beta
// about the y axis: v' = D^l(beta) v. D is real, so the complex
// matrix-vector product is carried out as two real products, one over
// v's real part and one over its imaginary part, each via gonum/mat's
// dense Matrix/VecDense machinery rather than a hand-rolled double loop.
func rotateY(v []complex128, l int, beta float64) []complex128 {
	n := 2*l + 1
	d := mat.NewDense(n, n, nil)
	for mp := -l; mp <= l; mp++ {
		for m := -l; m <= l; m++ {
			d.Set(mp+l, m+l, smallD(l, mp, m, beta))
		}
	}
	re := make([]float64, n)
	im := make([]float64, n)
	for i, c := range v {
		re[i], im[i] = real(c), imag(c)
	}
	var reOut, imOut mat.VecDense
	reOut.MulVec(d, mat.NewVecDense(n, re))
	imOut.MulVec(d, mat.NewVecDense(n, im))

	out := make([]complex128, n)
	for i := range out {
		out[i] = complex(reOut.AtVec(i), imOut.AtVec(i))
	}
	return out
}

// smallD evaluates the real Wigner small-d matrix element d^l_{m'm}(beta)
// via its explicit sum formula (Wigner 1931).
func smallD(l, mp, m int, beta float64) float64 {
	kmin := maxInt(0, m-mp)
	kmax := minInt(l+m, l-mp)
	if kmin > kmax {
		return 0
	}
	c := math.Cos(beta / 2)
	s := math.Sin(beta / 2)
	pref := math.Sqrt(factorial(l+mp) * factorial(l-mp) * factorial(l+m) * factorial(l-m))
	sum := 0.0
	for k := kmin; k <= kmax; k++ {
		denom := factorial(l+m-k) * factorial(k) * factorial(l-mp-k) * factorial(k+mp-m)
		if denom == 0 {
			continue
		}
		term := pref / denom
		cPow := 2*l + m - mp - 2*k
		sPow := 2*k + mp - m
		term *= math.Pow(c, float64(cPow)) * math.Pow(s, float64(sPow))
		if k%2 != 0 {
			term = -term
		}
		sum += term
	}
	return sum
}

