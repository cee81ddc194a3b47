/*
 * particles.go, part of colloids
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

// Package particles holds the ordered position set at the base of the
// analysis pipeline: construction and mutation of a Particles value, its
// optional spatial index and neighbor list, and the spatial queries,
// cut/remove-short-range filters and radial/angular distribution
// statistics built on top of them.
package particles

import (
	"bufio"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/yusrishaharin/colloids"
	"github.com/yusrishaharin/colloids/geom"
	"github.com/yusrishaharin/colloids/rtree"
)

// Particles is an ordered sequence of positions sharing one radius, with
// an overall bounding box and an optional spatial index and neighbor
// list. Index in the Pos slice is identity: nothing reorders it once
// built, since the spatial index and the neighbor list are both keyed by
// position.
type Particles struct {
	Pos    []geom.Vec3
	Radius float64
	bb     geom.BoundingBox
	index  *rtree.Tree
	Ngb    NgbList
}

// New builds a Particles of n zeroed positions with the given radius.
func New(n int, radius float64) *Particles {
	return &Particles{Pos: make([]geom.Vec3, n), Radius: radius}
}

// NewFromBox builds a Particles reading n xyz triples from r, with the
// bounding box supplied directly rather than computed from the data.
func NewFromBox(r *bufio.Reader, n int, radius float64, bb geom.BoundingBox) (*Particles, error) {
	p := New(n, radius)
	p.bb = bb
	for i := 0; i < n; i++ {
		line, err := r.ReadString('\n')
		if err != nil && line == "" {
			return nil, colloids.NewError(fmt.Sprintf("particles: unexpected EOF reading position %d of %d", i, n), true)
		}
		var x, y, z float64
		if _, err := fmt.Sscan(strings.TrimSpace(line), &x, &y, &z); err != nil {
			return nil, colloids.NewError(fmt.Sprintf("particles: malformed position line %q: %v", line, err), true)
		}
		p.Pos[i] = geom.New(x, y, z)
	}
	return p, nil
}

// Len returns the number of particles.
func (p *Particles) Len() int { return len(p.Pos) }

// BoundingBox returns the box last computed for this set, either supplied
// at construction or recomputed with RecomputeBounds.
func (p *Particles) BoundingBox() geom.BoundingBox { return p.bb }

// RecomputeBounds sets BoundingBox to the minimal box containing every
// position, ignoring any spatial index.
func (p *Particles) RecomputeBounds() {
	if len(p.Pos) == 0 {
		p.bb = geom.BoundingBox{}
		return
	}
	bb := geom.Bounds(p.Pos[0], 0)
	for _, x := range p.Pos[1:] {
		bb = geom.Union(bb, geom.Bounds(x, 0))
	}
	p.bb = bb
}

// HasIndex reports whether BuildIndex has been called.
func (p *Particles) HasIndex() bool { return p.index != nil }

// BuildIndex constructs an R*-tree leaf (i, bounds(pos[i], 0)) per
// particle, destructively replacing any existing index.
func (p *Particles) BuildIndex() {
	tr := rtree.NewDefault()
	for i, x := range p.Pos {
		tr.Insert(i, geom.Bounds(x, 0))
	}
	p.index = tr
	p.bb = tr.OverallBox()
}

// PushBack appends a position, inserting it into the spatial index first
// when one is present: the index sees the about-to-be-new index before
// n is grown to include it.
func (p *Particles) PushBack(x geom.Vec3) {
	n := len(p.Pos)
	if p.index != nil {
		p.index.Insert(n, geom.Bounds(x, 0))
	}
	p.Pos = append(p.Pos, x)
}

// ScaleVec rescales every position componentwise by v, along with the
// bounding box and spatial index if present.
func (p *Particles) ScaleVec(v geom.Vec3) {
	bb := p.bb
	for i := range p.Pos {
		p.Pos[i] = geom.New(p.Pos[i].X*v.X, p.Pos[i].Y*v.Y, p.Pos[i].Z*v.Z)
	}
	if p.index != nil {
		p.BuildIndex()
	}
	p.bb = geom.BoundingBox{
		Lo: geom.New(bb.Lo.X*v.X, bb.Lo.Y*v.Y, bb.Lo.Z*v.Z),
		Hi: geom.New(bb.Hi.X*v.X, bb.Hi.Y*v.Y, bb.Hi.Z*v.Z),
	}
}

// Scale rescales positions, the bounding box, the radius and the spatial
// index by the scalar s.
func (p *Particles) Scale(s float64) {
	p.Radius *= s
	p.ScaleVec(geom.New(s, s, s))
}

// Translate shifts every position, the bounding box and the spatial
// index by v.
func (p *Particles) Translate(v geom.Vec3) {
	for i := range p.Pos {
		p.Pos[i] = geom.Add(p.Pos[i], v)
	}
	p.bb = p.bb.Translate(v)
	if p.index != nil {
		p.index.Translate(v)
	}
}

func (p *Particles) requireIndex(caller string) {
	if p.index == nil {
		panic(colloids.ErrNoSpatialIndex)
	}
}

// Enclosed returns the ids of every particle whose position lies in box.
// Panics if no spatial index has been built.
func (p *Particles) Enclosed(box geom.BoundingBox) []int {
	p.requireIndex("Enclosed")
	out := p.index.QueryOverlap(box)
	filtered := out[:0]
	for _, id := range out {
		if box.Contains(p.Pos[id]) {
			filtered = append(filtered, id)
		}
	}
	return filtered
}

// EuclideanNeighbors returns the ids with ||pos[id]-center|| < r, using
// strict inequality so a particle exactly at distance r is excluded. If
// center coincides exactly with one of the stored positions (the common
// case of querying around a particle by its own position) that particle
// is included, since its distance to itself is 0 < r trivially true
// -- callers that want self-exclusion by id should use
// EuclideanNeighborsOf instead.
func (p *Particles) EuclideanNeighbors(center geom.Vec3, r float64) []int {
	p.requireIndex("EuclideanNeighbors")
	r2 := r * r
	box := geom.Bounds(center, r)
	cand := p.index.QueryOverlap(box)
	var out []int
	for _, id := range cand {
		if geom.Norm2(geom.Sub(p.Pos[id], center)) < r2 {
			out = append(out, id)
		}
	}
	return out
}

// EuclideanNeighborsOf is EuclideanNeighbors around particle self's own
// position, excluding self from the result.
func (p *Particles) EuclideanNeighborsOf(self int, r float64) []int {
	cand := p.EuclideanNeighbors(p.Pos[self], r)
	out := cand[:0]
	for _, id := range cand {
		if id != self {
			out = append(out, id)
		}
	}
	return out
}

type byDist struct {
	ids  []int
	dist []float64
}

func (b byDist) Len() int           { return len(b.ids) }
func (b byDist) Swap(i, j int)      { b.ids[i], b.ids[j] = b.ids[j], b.ids[i]; b.dist[i], b.dist[j] = b.dist[j], b.dist[i] }
func (b byDist) Less(i, j int) bool { return b.dist[i] < b.dist[j] }

// EuclideanNeighborsBySqDist is EuclideanNeighbors with the result sorted
// by ascending squared distance to center.
func (p *Particles) EuclideanNeighborsBySqDist(center geom.Vec3, r float64) ([]int, []float64) {
	ids := p.EuclideanNeighbors(center, r)
	dist := make([]float64, len(ids))
	for i, id := range ids {
		dist[i] = geom.Norm2(geom.Sub(p.Pos[id], center))
	}
	sort.Sort(byDist{ids, dist})
	return ids, dist
}

// Nearest returns the closest particle to center. If none are found
// within guessR, guessR is repeatedly multiplied by 1.1 until at least
// one candidate is found.
func (p *Particles) Nearest(center geom.Vec3, guessR float64) (id int, dist float64) {
	r := guessR
	if r <= 0 {
		r = p.Radius
		if r <= 0 {
			r = 1
		}
	}
	for {
		ids, d := p.EuclideanNeighborsBySqDist(center, r)
		if len(ids) > 0 {
			return ids[0], math.Sqrt(d[0])
		}
		r *= 1.1
	}
}

// Cut performs a greedy first-come-first-served separation filter:
// walking positions in index order, a position is kept only if no
// already-accepted position lies within sep of it. It returns a brand
// new Particles rather than mutating the receiver.
func (p *Particles) Cut(sep float64) *Particles {
	sep2 := sep * sep
	out := &Particles{Radius: p.Radius}
	for _, x := range p.Pos {
		ok := true
		for _, kept := range out.Pos {
			if geom.Norm2(geom.Sub(kept, x)) < sep2 {
				ok = false
				break
			}
		}
		if ok {
			out.Pos = append(out.Pos, x)
		}
	}
	out.RecomputeBounds()
	return out
}

// RemoveShortRange discards both members of any pair closer than sep,
// unlike Cut which keeps the first of such a pair. Requires an index on
// the receiver.
func (p *Particles) RemoveShortRange(sep float64) *Particles {
	p.requireIndex("RemoveShortRange")
	sep2 := sep * sep
	bad := make([]bool, len(p.Pos))
	for i, x := range p.Pos {
		for _, j := range p.EuclideanNeighbors(x, sep) {
			if j != i && geom.Norm2(geom.Sub(p.Pos[j], x)) < sep2 {
				bad[i] = true
				bad[j] = true
			}
		}
	}
	out := &Particles{Radius: p.Radius}
	for i, x := range p.Pos {
		if !bad[i] {
			out.Pos = append(out.Pos, x)
		}
	}
	out.RecomputeBounds()
	return out
}

// Inside returns the indices of particles whose position lies in the
// overall box shrunk by margin on every side. If ignoreZ is true the
// z-axis is not shrunk.
func (p *Particles) Inside(margin float64, ignoreZ bool) []int {
	bb := p.bb
	shrunk := bb.Shrink(margin)
	if ignoreZ {
		shrunk.Lo.Z, shrunk.Hi.Z = bb.Lo.Z, bb.Hi.Z
	}
	var out []int
	for i, x := range p.Pos {
		if shrunk.Contains(x) {
			out = append(out, i)
		}
	}
	return out
}

// Angle returns the angle in [0, pi] at vertex v between the bonds to a
// and b.
func (p *Particles) Angle(v, a, b int) float64 {
	u := geom.Sub(p.Pos[a], p.Pos[v])
	w := geom.Sub(p.Pos[b], p.Pos[v])
	nu, nw := geom.Norm(u), geom.Norm(w)
	if nu == 0 || nw == 0 {
		return 0
	}
	c := geom.Dot(u, w) / (nu * nw)
	if c > 1 {
		c = 1
	}
	if c < -1 {
		c = -1
	}
	return math.Acos(c)
}

// NumberDensity is the particle count divided by the overall box volume.
func (p *Particles) NumberDensity() float64 {
	bb := p.bb
	vol := bb.Area()
	if vol == 0 {
		return 0
	}
	return float64(len(p.Pos)) / vol
}

// VolumeFraction is the fraction of the overall box volume occupied by
// spheres of Radius centered on each particle, ignoring overlap.
func (p *Particles) VolumeFraction() float64 {
	return p.NumberDensity() * (4.0 / 3.0) * math.Pi * p.Radius * p.Radius * p.Radius
}

// Load reads a whitespace-separated "x y z" triple per line from r, up to
// n lines, building a new Particles with the given radius. It is the
// GRV-format constructor; the DAT-format one lives in package fileio,
// since it needs the header line's box and particle count.
func Load(r *bufio.Reader, n int, radius float64) (*Particles, error) {
	p := New(n, radius)
	for i := 0; i < n; i++ {
		line, err := r.ReadString('\n')
		if err != nil && line == "" {
			return nil, colloids.NewError(fmt.Sprintf("particles: file ended after %d of %d positions", i, n), true)
		}
		var x, y, z float64
		if _, err := fmt.Sscan(strings.TrimSpace(line), &x, &y, &z); err != nil {
			return nil, colloids.NewError(fmt.Sprintf("particles: malformed position line %q: %v", line, err), true)
		}
		p.Pos[i] = geom.New(x, y, z)
	}
	p.RecomputeBounds()
	return p, nil
}
