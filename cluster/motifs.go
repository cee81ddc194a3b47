package cluster

import (
	"github.com/yusrishaharin/colloids"
	"github.com/yusrishaharin/colloids/particles"
)

// IsRing reports whether the particle indices in members form a
// common-neighbor ring: for every c in members, the ordered intersection
// of N(c) with members has exactly two elements. members must already be
// ascending, the same ordering invariant the rest of this package relies
// on for particles.Intersect's linear-time merge; IsRing panics with
// colloids.ErrUnsortedNgbList if members or the neighbor list of any
// member is not strictly ascending.
func IsRing(members []int, ngb particles.NgbList) bool {
	for i := 1; i < len(members); i++ {
		if members[i] <= members[i-1] {
			panic(colloids.ErrUnsortedNgbList)
		}
	}
	for _, c := range members {
		for i := 1; i < len(ngb[c]); i++ {
			if ngb[c][i] <= ngb[c][i-1] {
				panic(colloids.ErrUnsortedNgbList)
			}
		}
		if len(particles.Intersect(ngb[c], members)) != 2 {
			return false
		}
	}
	return true
}

// IsConnectedRing strengthens IsRing with a breadth-first connectivity
// check: a set of disjoint small rings (e.g. two disconnected triangles)
// can satisfy the bare degree-2 predicate without forming a single
// Honeycutt-Andersen ring, so motif detection below uses this stricter
// test rather than IsRing directly.
func IsConnectedRing(members []int, ngb particles.NgbList) bool {
	if !IsRing(members, ngb) {
		return false
	}
	neighborSet := make(map[int]map[int]bool, len(members))
	for _, c := range members {
		set := make(map[int]bool, len(ngb[c]))
		for _, n := range ngb[c] {
			set[n] = true
		}
		neighborSet[c] = set
	}
	return connected(subgraph(members, ngb, neighborSet))
}

// SP5cPair is a single SP5c motif: the bonded pair p<q together with the
// five common neighbors forming the ring around them.
type SP5cPair struct {
	P, Q int
	Ring []int
}

// SP5c finds, for every bond (p,q) with p<q, the sorted intersection of
// N(p) and N(q); a bond qualifies if that intersection has exactly five
// elements. The ring property is not required by the five-common-
// neighbor test itself, a plain count, so it is not checked here; 1551
// below is the ring-qualified refinement of the same five-common-neighbor
// geometry.
func SP5c(ngb particles.NgbList) []SP5cPair {
	var out []SP5cPair
	for p, list := range ngb {
		for _, q := range list {
			if q <= p {
				continue
			}
			common := particles.Intersect(ngb[p], ngb[q])
			if len(common) == 5 {
				out = append(out, SP5cPair{P: p, Q: q, Ring: common})
			}
		}
	}
	return out
}

// Pair1551 is a bonded bp that shares a 5-membered common-neighbor ring.
type Pair1551 struct {
	P, Q int
	Ring []int
}

// Find1551 finds bonds (p,q), p<q, whose endpoints share exactly five
// common neighbors forming a ring.
func Find1551(ngb particles.NgbList) []Pair1551 {
	var out []Pair1551
	for p, list := range ngb {
		for _, q := range list {
			if q <= p {
				continue
			}
			common := particles.Intersect(ngb[p], ngb[q])
			if len(common) == 5 && IsConnectedRing(common, ngb) {
				out = append(out, Pair1551{P: p, Q: q, Ring: common})
			}
		}
	}
	return out
}

// Pair2331 is a pair (p,q) where q is a second-shell neighbor of p (not
// bonded directly) sharing a 3-membered common-neighbor ring.
type Pair2331 struct {
	P, Q int
	Ring []int
}

// Find2331 finds pairs (p,q) where q lies in N(N(p)) but not in N(p)
// itself, and p,q share exactly three common neighbors forming a ring.
func Find2331(ngb particles.NgbList) []Pair2331 {
	var out []Pair2331
	for p := range ngb {
		isDirect := directNeighborSet(ngb[p])
		seen := map[int]bool{p: true}
		for _, n := range ngb[p] {
			seen[n] = true
		}
		for _, n := range ngb[p] {
			for _, q := range ngb[n] {
				if q <= p || isDirect[q] || seen[q] {
					continue
				}
				seen[q] = true
				common := particles.Intersect(ngb[p], ngb[q])
				if len(common) == 3 && IsConnectedRing(common, ngb) {
					out = append(out, Pair2331{P: p, Q: q, Ring: common})
				}
			}
		}
	}
	return out
}

func directNeighborSet(list []int) map[int]bool {
	m := make(map[int]bool, len(list))
	for _, n := range list {
		m[n] = true
	}
	return m
}

// SecondShellBond is a pair (p,q), p<q, where q is reachable from p via
// exactly one intermediate bonded neighbor (q in N(N(p))), regardless of
// whether p and q are also directly bonded.
type SecondShellBond struct {
	P, Q int
}

// SecondShellBonds returns every pair (p,q), p<q, such that q lies in
// N(N(p)).
func SecondShellBonds(ngb particles.NgbList) []SecondShellBond {
	var out []SecondShellBond
	for p := range ngb {
		seen := map[int]bool{p: true}
		for _, n := range ngb[p] {
			for _, q := range ngb[n] {
				if q <= p || seen[q] {
					continue
				}
				seen[q] = true
				out = append(out, SecondShellBond{P: p, Q: q})
			}
		}
	}
	return out
}
