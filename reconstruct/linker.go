package reconstruct

import (
	"github.com/yusrishaharin/colloids/geom"
	"github.com/yusrishaharin/colloids/rtree"
	"github.com/yusrishaharin/colloids/traj"
)

// candidateBox is the bounding box of a detection for linking purposes:
// [x-r,x+r] x [y-r,y+r], optionally expanded by expand on every side.
func candidateBox(c Center2D, expand float64) geom.BoundingBox {
	r := c.R + expand
	return geom.BoundingBox{
		Lo: geom.New(c.X-r, c.Y-r, 0),
		Hi: geom.New(c.X+r, c.Y+r, 0),
	}
}

func sqPlanarDist(a, b Center2D) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}

// CandidateLinks builds candidate links between a previous frame and a
// new frame using a 2D R*-tree (dim=2, min=4, max=32): each previous-
// frame detection's box is expanded by (r_p+r_max)*(tolerance-1), r_max
// being the largest new-frame radius, so that every pair within the
// distance limit below overlaps; overlap queries against the new frame's
// boxes collect candidate pairs, and a pair (p,t) survives only if the
// squared planar distance is below ((r_p+r_t)*tolerance)^2.
// tolerance<=1 means "accept overlap only".
func CandidateLinks(prev, next Frame, tolerance float64) []traj.Link {
	tree := rtree.NewDefault()
	maxR := 0.0
	for i, c := range next {
		tree.Insert(i, candidateBox(c, 0))
		if c.R > maxR {
			maxR = c.R
		}
	}

	var links []traj.Link
	for p, cp := range prev {
		expand := (cp.R + maxR) * (tolerance - 1)
		if expand < 0 {
			expand = 0
		}
		for _, t := range tree.QueryOverlap(candidateBox(cp, expand)) {
			ct := next[t]
			limit := (cp.R + ct.R) * tolerance
			d2 := sqPlanarDist(cp, ct)
			if d2 < limit*limit {
				links = append(links, traj.Link{From: p, To: t, Distance: d2})
			}
		}
	}
	return links
}

// BruteForceLinks is the reference, unindexed implementation of
// CandidateLinks used for testing: it enumerates every (p,t) pair
// instead of pruning with a spatial index.
func BruteForceLinks(prev, next Frame, tolerance float64) []traj.Link {
	var links []traj.Link
	for p, cp := range prev {
		for t, ct := range next {
			limit := (cp.R + ct.R) * tolerance
			d2 := sqPlanarDist(cp, ct)
			if d2 < limit*limit {
				links = append(links, traj.Link{From: p, To: t, Distance: d2})
			}
		}
	}
	return links
}
