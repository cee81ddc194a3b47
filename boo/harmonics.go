package boo

import (
	"math"
	"math/cmplx"
)

// sphericalHarmonic evaluates Y_{l,m}(theta,phi) for m>=0 in the
// Condon-Shortley convention, via the associated Legendre function
// P_l^m(cos theta) computed by the standard stable upward recursion
// (Numerical Recipes' plgndr, generalized to start from P_m^m).
func sphericalHarmonic(l, m int, theta, phi float64) complex128 {
	x := math.Cos(theta)
	p := assocLegendre(l, m, x)
	norm := math.Sqrt((2*float64(l)+1)/(4*math.Pi) * factorial(l-m) / factorial(l+m))
	mag := norm * p
	return complex(mag, 0) * cmplx.Exp(complex(0, float64(m)*phi))
}

// assocLegendre computes P_l^m(x) for 0 <= m <= l via the three-term
// recurrences that build P_m^m, then P_{m+1}^m, then climb in l.
func assocLegendre(l, m int, x float64) float64 {
	pmm := 1.0
	if m > 0 {
		somx2 := math.Sqrt((1 - x) * (1 + x))
		fact := 1.0
		for i := 1; i <= m; i++ {
			pmm *= -fact * somx2
			fact += 2
		}
	}
	if l == m {
		return pmm
	}
	pmmp1 := x * float64(2*m+1) * pmm
	if l == m+1 {
		return pmmp1
	}
	var pll float64
	for ll := m + 2; ll <= l; ll++ {
		pll = (x*float64(2*ll-1)*pmmp1 - float64(ll+m-1)*pmm) / float64(ll-m)
		pmm = pmmp1
		pmmp1 = pll
	}
	return pll
}

var factTable [64]float64

func init() {
	factTable[0] = 1
	for i := 1; i < len(factTable); i++ {
		factTable[i] = factTable[i-1] * float64(i)
	}
}

// factorial returns n! as a float64, tabulated once at init since every
// argument used throughout this package is small (n <= 3*10+1 for the
// Wigner 3-j table, n <= 20 for the spherical harmonic normalization).
func factorial(n int) float64 {
	if n < 0 {
		return 0
	}
	return factTable[n]
}
