package boo

import "math"

// wigner3jTable holds every non-zero <l m1; l m2; l m3> with
// m1+m2+m3=0 for l in Degrees, computed once at init via Racah's
// formula and keyed directly by (l, m1, m2) rather than by a packed
// offset scheme.
var wigner3jTable = map[[3]int]float64{}

func init() {
	for _, l := range Degrees {
		for m1 := -l; m1 <= l; m1++ {
			for m2 := -l; m2 <= l; m2++ {
				m3 := -(m1 + m2)
				if m3 < -l || m3 > l {
					continue
				}
				key := [3]int{l, m1, m2}
				if _, ok := wigner3jTable[key]; ok {
					continue
				}
				wigner3jTable[key] = wigner3jRacah(l, m1, m2, m3)
			}
		}
	}
}

// wigner3j returns <l m1; l m2; l m3> with m3 implicitly -(m1+m2); it
// panics if |m1|,|m2| exceed l, since that is a programming error at
// the call site, not a runtime condition callers need to handle.
func wigner3j(l, m1, m2 int) float64 {
	if m1 < -l || m1 > l || m2 < -l || m2 > l {
		panic("boo: wigner3j called with |m| > l")
	}
	v, ok := wigner3jTable[[3]int{l, m1, m2}]
	if !ok {
		return 0
	}
	return v
}

// wigner3jRacah evaluates the 3-j symbol for three equal angular
// momenta l via Racah's explicit sum formula.
func wigner3jRacah(j1, m1, j2raw, m3 int) float64 {
	j2 := j1
	j3 := j1
	m2 := j2raw
	if m1+m2+m3 != 0 {
		return 0
	}
	tri := triangleCoeff(j1, j2, j3)
	if tri == 0 {
		return 0
	}
	pref := math.Sqrt(tri * factorial(j1+m1) * factorial(j1-m1) *
		factorial(j2+m2) * factorial(j2-m2) *
		factorial(j3+m3) * factorial(j3-m3))

	kmin := maxInt(0, maxInt(j2-j3-m1, j1-j3+m2))
	kmax := minInt(j1+j2-j3, minInt(j1-m1, j2+m2))

	sum := 0.0
	for k := kmin; k <= kmax; k++ {
		denom := factorial(k) * factorial(j1+j2-j3-k) *
			factorial(j1-m1-k) * factorial(j2+m2-k) *
			factorial(j3-j2+m1+k) * factorial(j3-j1-m2+k)
		if denom == 0 {
			continue
		}
		term := pref / denom
		if k%2 != 0 {
			term = -term
		}
		sum += term
	}
	sign := 1.0
	if mod2(j1-j2-m3) != 0 {
		sign = -1.0
	}
	return sign * sum
}

// triangleCoeff returns Delta(j1,j2,j3) = (j1+j2-j3)!(j1-j2+j3)!(-j1+j2+j3)!/(j1+j2+j3+1)!
func triangleCoeff(j1, j2, j3 int) float64 {
	a, b, c := j1+j2-j3, j1-j2+j3, -j1+j2+j3
	if a < 0 || b < 0 || c < 0 {
		return 0
	}
	return factorial(a) * factorial(b) * factorial(c) / factorial(j1+j2+j3+1)
}

func mod2(n int) int {
	n %= 2
	if n < 0 {
		n += 2
	}
	return n
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
