package boo

import "math"

// Ql returns the rotationally-invariant Steinhardt order parameter
// Q_l(i) = sqrt(4*pi/(2l+1) * sum_m |q_{l,m}|^2), exploiting the
// q_{l,-m} = (-1)^m conj(q_{l,m}) symmetry so only m>=0 need be stored:
// sum_m |q_{l,m}|^2 = |q_{l,0}|^2 + 2*sum_{m>0} |q_{l,m}|^2.
func (b BooData) Ql(l int) float64 {
	sum := realSqAbs(b.Get(l, 0))
	for m := 1; m <= l; m++ {
		sum += 2 * realSqAbs(b.Get(l, m))
	}
	return math.Sqrt(4 * math.Pi / float64(2*l+1) * sum)
}

func realSqAbs(z complex128) float64 {
	re, im := real(z), imag(z)
	return re*re + im*im
}

// Wl returns the complex rotational invariant
// W_l(i) = sum_{m1+m2+m3=0} <l m1; l m2; l m3> q_{l,m1} q_{l,m2} q_{l,m3}.
func (b BooData) Wl(l int) complex128 {
	var sum complex128
	for m1 := -l; m1 <= l; m1++ {
		for m2 := -l; m2 <= l; m2++ {
			m3 := -(m1 + m2)
			if m3 < -l || m3 > l {
				continue
			}
			w := wigner3j(l, m1, m2)
			if w == 0 {
				continue
			}
			sum += complex(w, 0) * b.Get(l, m1) * b.Get(l, m2) * b.Get(l, m3)
		}
	}
	return sum
}

// W returns Re(W_l(i)), the real-valued scalar invariant used for
// classification and reported in the cloud file format.
func (b BooData) W(l int) float64 {
	return real(b.Wl(l))
}

// Invariants returns (Q_l, Re(W_l)) together as a convenience accessor.
func (b BooData) Invariants(l int) (q, w float64) {
	return b.Ql(l), b.W(l)
}
