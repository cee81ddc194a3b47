package boo

import (
	"github.com/yusrishaharin/colloids/geom"
	"github.com/yusrishaharin/colloids/particles"
)

// Boo computes the standard per-particle BOO descriptor by a single
// symmetric traversal of the bond set: for each bond (p,q) with
// p<q, Y_{l,m}(r_pq) is accumulated into both endpoints, and each
// endpoint is normalized at the end by its own bond count. A particle
// with zero bonds keeps the zero descriptor.
func Boo(pos []geom.Vec3, ngb particles.NgbList) []BooData {
	out := make([]BooData, len(pos))
	counts := make([]int, len(pos))
	for p, list := range ngb {
		for _, q := range list {
			if q <= p {
				continue
			}
			bond := PerBond(geom.Sub(pos[q], pos[p]))
			out[p] = Add(out[p], bond)
			out[q] = Add(out[q], bond)
			counts[p]++
			counts[q]++
		}
	}
	for i := range out {
		if counts[i] != 0 {
			out[i] = Scale(1/float64(counts[i]), out[i])
		}
	}
	return out
}

// CoarseGrainedBoo averages each particle's own descriptor with those of
// its immediate neighbors: Qbar(i) = (q(i) + sum_{j in N(i)} q(j)) /
// (1+|N(i)|). It requires boo, the per-particle descriptors, to already
// be computed for every particle before it starts.
func CoarseGrainedBoo(boo []BooData, ngb particles.NgbList) []BooData {
	out := make([]BooData, len(boo))
	for i, list := range ngb {
		sum := boo[i]
		for _, j := range list {
			sum = Add(sum, boo[j])
		}
		out[i] = Scale(1/float64(1+len(list)), sum)
	}
	return out
}

// SurfaceBoo computes the surface-bond variant: like Boo, but every bond
// is also accumulated into each particle that is a common neighbor of
// both of the bond's endpoints, and normalization uses each particle's
// total touch count rather than its own bond count. Particles never
// touched by any bond or common-neighbor accumulation are left at zero
// rather than normalized.
func SurfaceBoo(pos []geom.Vec3, ngb particles.NgbList) []BooData {
	out := make([]BooData, len(pos))
	touches := make([]int, len(pos))
	for p, list := range ngb {
		for _, q := range list {
			if q <= p {
				continue
			}
			bond := PerBond(geom.Sub(pos[q], pos[p]))
			out[p] = Add(out[p], bond)
			out[q] = Add(out[q], bond)
			touches[p]++
			touches[q]++
			for _, c := range particles.Intersect(ngb[p], ngb[q]) {
				out[c] = Add(out[c], bond)
				touches[c]++
			}
		}
	}
	for i := range out {
		if touches[i] != 0 {
			out[i] = Scale(1/float64(touches[i]), out[i])
		}
	}
	return out
}

// FlipBoo averages each particle's own standard descriptor with the
// pi-rotated descriptor of each bonded neighbor, the rotation axis being
// the bond direction. A bond is skipped if either endpoint's own
// descriptor is identically zero (source: "skips bond if either
// endpoint's BOO[...][0]==0.0"), and the running sum of the particle's
// own descriptor and its n non-skipped rotated neighbors is divided by
// 1+n at the end.
func FlipBoo(pos []geom.Vec3, ngb particles.NgbList, boo []BooData) []BooData {
	out := make([]BooData, len(boo))
	copy(out, boo)
	for i, list := range ngb {
		if boo[i][0] == 0 {
			continue
		}
		n := 0
		sum := boo[i]
		for _, j := range list {
			if boo[j][0] == 0 {
				continue
			}
			axis := geom.Unit(geom.Sub(pos[j], pos[i]))
			sum = Add(sum, boo[j].RotateByPi(axis))
			n++
		}
		out[i] = Scale(1/float64(1+n), sum)
	}
	return out
}
