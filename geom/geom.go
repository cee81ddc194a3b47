/*
 * geom.go, part of colloids
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Package geom provides the 3-vector arithmetic and axis-aligned bounding
// box primitives shared by the spatial index, particle set, and
// reconstructor packages.
package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const appzero float64 = 0.000000000001

// Vec3 is a point or displacement in three dimensions.
type Vec3 = r3.Vec

// New builds a Vec3 from three coordinates.
func New(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns a+b.
func Add(a, b Vec3) Vec3 { return r3.Add(a, b) }

// Sub returns a-b.
func Sub(a, b Vec3) Vec3 { return r3.Sub(a, b) }

// Scale returns s*v.
func Scale(s float64, v Vec3) Vec3 { return r3.Scale(s, v) }

// Dot is the usual sum_i a_i*b_i.
func Dot(a, b Vec3) float64 { return r3.Dot(a, b) }

// Cross is the usual vector cross product.
func Cross(a, b Vec3) Vec3 { return r3.Cross(a, b) }

// Norm returns the Euclidean length of v.
func Norm(v Vec3) float64 { return r3.Norm(v) }

// Norm2 returns the squared Euclidean length of v, avoiding the sqrt.
func Norm2(v Vec3) float64 { return Dot(v, v) }

// Unit returns v scaled to unit length. The zero vector is returned
// unchanged rather than dividing by zero.
func Unit(v Vec3) Vec3 {
	n := Norm(v)
	if n <= appzero {
		return v
	}
	return Scale(1/n, v)
}

// Spherical returns the (theta, phi) angles of v in the physics convention
// used throughout the BOO pipeline: theta is the polar angle from +Z in
// [0, pi], phi is the azimuthal angle in (-pi, pi].
func Spherical(v Vec3) (theta, phi float64) {
	n := Norm(v)
	if n <= appzero {
		return 0, 0
	}
	theta = math.Acos(clamp(v.Z/n, -1, 1))
	phi = math.Atan2(v.Y, v.X)
	return theta, phi
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// BoundingBox is an axis-aligned box described by three [lo,hi] intervals.
// The invariant lo_i <= hi_i is maintained by every constructor and
// mutator in this package; callers building one by hand are responsible
// for it themselves.
type BoundingBox struct {
	Lo, Hi Vec3
}

// Bounds returns the bounding box of a sphere of the given radius centered
// at p; radius 0 yields the degenerate box containing only p.
func Bounds(p Vec3, radius float64) BoundingBox {
	r := New(radius, radius, radius)
	return BoundingBox{Lo: Sub(p, r), Hi: Add(p, r)}
}

// Union returns the smallest box containing both a and b.
func Union(a, b BoundingBox) BoundingBox {
	return BoundingBox{
		Lo: New(math.Min(a.Lo.X, b.Lo.X), math.Min(a.Lo.Y, b.Lo.Y), math.Min(a.Lo.Z, b.Lo.Z)),
		Hi: New(math.Max(a.Hi.X, b.Hi.X), math.Max(a.Hi.Y, b.Hi.Y), math.Max(a.Hi.Z, b.Hi.Z)),
	}
}

// Translate shifts the box by v.
func (bb BoundingBox) Translate(v Vec3) BoundingBox {
	return BoundingBox{Lo: Add(bb.Lo, v), Hi: Add(bb.Hi, v)}
}

// Scale rescales the box about the origin by s.
func (bb BoundingBox) Scale(s float64) BoundingBox {
	return BoundingBox{Lo: Scale(s, bb.Lo), Hi: Scale(s, bb.Hi)}
}

// Area returns the product of the three interval lengths. Despite the
// name, in 3D this is a volume; the name mirrors the reconstructor's 2D
// usage where it genuinely is an area.
func (bb BoundingBox) Area() float64 {
	return (bb.Hi.X - bb.Lo.X) * (bb.Hi.Y - bb.Lo.Y) * (bb.Hi.Z - bb.Lo.Z)
}

// Contains reports whether p lies within every axis interval of bb,
// inclusive of the bounds.
func (bb BoundingBox) Contains(p Vec3) bool {
	return p.X >= bb.Lo.X && p.X <= bb.Hi.X &&
		p.Y >= bb.Lo.Y && p.Y <= bb.Hi.Y &&
		p.Z >= bb.Lo.Z && p.Z <= bb.Hi.Z
}

// ContainsBox reports whether bb fully contains other.
func (bb BoundingBox) ContainsBox(other BoundingBox) bool {
	return bb.Contains(other.Lo) && bb.Contains(other.Hi)
}

// Overlaps reports whether bb and other share any point.
func (bb BoundingBox) Overlaps(other BoundingBox) bool {
	return bb.Lo.X <= other.Hi.X && bb.Hi.X >= other.Lo.X &&
		bb.Lo.Y <= other.Hi.Y && bb.Hi.Y >= other.Lo.Y &&
		bb.Lo.Z <= other.Hi.Z && bb.Hi.Z >= other.Lo.Z
}

// Shrink returns bb with margin subtracted from the high corner and added
// to the low corner on every axis, used by Particles.Inside to find
// particles away from the sample's surface.
func (bb BoundingBox) Shrink(margin float64) BoundingBox {
	m := New(margin, margin, margin)
	return BoundingBox{Lo: Add(bb.Lo, m), Hi: Sub(bb.Hi, m)}
}

// Center returns the midpoint of the box.
func (bb BoundingBox) Center() Vec3 {
	return Scale(0.5, Add(bb.Lo, bb.Hi))
}
