/*
 * boo.go, part of colloids
 *
 * Copyright 2024 the colloids authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 */

// Package boo computes bond-orientational-order descriptors: per-bond
// spherical harmonics, their per-particle aggregation in standard,
// surface, coarse-grained and flip variants, the Steinhardt rotational
// invariants Q_l and W_l, and the half-turn rotation of a descriptor
// about an arbitrary axis that the flip variant needs.
package boo

import (
	"math/cmplx"

	"github.com/yusrishaharin/colloids/geom"
)

// Degrees lists the l values a BooData carries: even l up to 10.
var Degrees = [6]int{0, 2, 4, 6, 8, 10}

const nCoeffs = 36

// i2l and i2m map a flat storage index to its (l,m); the inverse, index,
// is computed below rather than tabulated, since m + l*l/4 is already a
// closed form.
var i2l, i2m [nCoeffs]int

func init() {
	for _, l := range Degrees {
		for m := 0; m <= l; m++ {
			i2l[index(l, m)] = l
			i2m[index(l, m)] = m
		}
	}
}

// index returns the storage offset of q_{l,m} for m>=0, using the
// m + floor(l^2/4) rule to pack successive even l tightly into one slice.
func index(l, m int) int {
	return m + l*l/4
}

// BooData is the fixed-length sequence of q_{l,m} coefficients for
// l in {0,2,4,6,8,10}, m in [0,l], stored for m>=0 only; the negative-m
// coefficients are implicit via q_{l,-m} = (-1)^m * conj(q_{l,m}).
// The zero value is the zero descriptor.
type BooData [nCoeffs]complex128

// Get returns q_{l,m} for any m in [-l,l], expanding negative m via the
// Condon-Shortley symmetry relation.
func (b BooData) Get(l, m int) complex128 {
	if m >= 0 {
		return b[index(l, m)]
	}
	v := b[index(l, -m)]
	if (-m)%2 != 0 {
		return -cmplx.Conj(v)
	}
	return cmplx.Conj(v)
}

// Set stores q_{l,m} directly; m must be >= 0, since negative-m
// coefficients have no independent storage.
func (b *BooData) Set(l, m int, v complex128) {
	if m < 0 {
		panic("boo: Set requires m >= 0; negative m is implicit")
	}
	b[index(l, m)] = v
}

// Add returns the elementwise sum of a and b.
func Add(a, b BooData) BooData {
	var out BooData
	for i := range out {
		out[i] = a[i] + b[i]
	}
	return out
}

// Scale returns b scaled elementwise by s.
func Scale(s float64, b BooData) BooData {
	var out BooData
	for i := range out {
		out[i] = complex(s, 0) * b[i]
	}
	return out
}

// PerBond returns the per-bond descriptor q_{l,m}(bond) = Y_{l,m}(theta,phi)
// for the spherical angles of the bond vector rij.
func PerBond(rij geom.Vec3) BooData {
	theta, phi := geom.Spherical(rij)
	var b BooData
	for _, l := range Degrees {
		for m := 0; m <= l; m++ {
			b.Set(l, m, sphericalHarmonic(l, m, theta, phi))
		}
	}
	return b
}

// nearZero treats values x with 1+x*x == 1 in floating point as zero
// when used as a divisor.
func nearZero(x float64) bool {
	return 1+x*x == 1
}

// divideOrZero divides num by den, yielding zero instead of Inf or NaN
// when den is near-zero.
func divideOrZero(num, den float64) float64 {
	if nearZero(den) {
		return 0
	}
	return num / den
}
