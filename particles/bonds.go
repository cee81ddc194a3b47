package particles

import "sort"

// NgbList holds, for each particle, the ascending sequence of its
// neighbors' indices. It is immutable once built: the ordered-set
// intersections in package cluster depend on every entry being strictly
// ascending and deduplicated.
type NgbList [][]int

// Bond is an unordered pair of particle indices stored with Low < High.
type Bond struct {
	Low, High int
}

// NewBond builds a Bond from two indices in either order.
func NewBond(a, b int) Bond {
	if a < b {
		return Bond{a, b}
	}
	return Bond{b, a}
}

// BondSet is a sorted, duplicate-free set of Bonds.
type BondSet []Bond

func (s BondSet) Len() int      { return len(s) }
func (s BondSet) Swap(i, j int) { s[i], s[j] = s[j], s[i] }
func (s BondSet) Less(i, j int) bool {
	if s[i].Low != s[j].Low {
		return s[i].Low < s[j].Low
	}
	return s[i].High < s[j].High
}

// NewBondSet sorts and deduplicates bonds into a BondSet.
func NewBondSet(bonds []Bond) BondSet {
	out := make(BondSet, len(bonds))
	copy(out, bonds)
	sort.Sort(out)
	n := 0
	for i, b := range out {
		if i == 0 || b != out[n-1] {
			out[n] = b
			n++
		}
	}
	return out[:n]
}

// MakeNgbList builds a neighbor list from a bond length delta expressed
// in particle diameters: each particle's neighbors are every other
// particle within 2*delta*radius.
func (p *Particles) MakeNgbList(delta float64) NgbList {
	sep := 2 * delta * p.Radius
	ngb := make(NgbList, len(p.Pos))
	for i := range p.Pos {
		ids := p.EuclideanNeighborsOf(i, sep)
		sort.Ints(ids)
		ngb[i] = ids
	}
	p.Ngb = ngb
	return ngb
}

// MakeNgbListFromBonds builds a neighbor list directly from a BondSet:
// for each bond (a,b), b is appended to ngb[a] and a to ngb[b]. The
// result is re-sorted here so every caller sees the strictly-ascending
// invariant without having to remember to do it themselves.
func MakeNgbListFromBonds(n int, bonds BondSet) NgbList {
	ngb := make(NgbList, n)
	for _, b := range bonds {
		ngb[b.Low] = append(ngb[b.Low], b.High)
		ngb[b.High] = append(ngb[b.High], b.Low)
	}
	for i := range ngb {
		sort.Ints(ngb[i])
	}
	return ngb
}

// Bonds reconstructs the BondSet implied by a NgbList: all pairs (p,q)
// with p<q such that q appears in ngb[p] (equivalently p in ngb[q] when
// the list is symmetric; that symmetry is assumed, not checked).
func (ngb NgbList) Bonds() BondSet {
	var bonds []Bond
	for p, list := range ngb {
		for _, q := range list {
			if q > p {
				bonds = append(bonds, Bond{p, q})
			}
		}
	}
	return NewBondSet(bonds)
}

// Contains reports whether b is present in the sorted ascending list.
func Contains(list []int, b int) bool {
	i := sort.SearchInts(list, b)
	return i < len(list) && list[i] == b
}

// Intersect returns the sorted intersection of two strictly-ascending,
// deduplicated slices in O(len(a)+len(b)) time, the ordered two-pointer
// merge that every topological-cluster predicate in package cluster is
// built on.
func Intersect(a, b []int) []int {
	var out []int
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}
