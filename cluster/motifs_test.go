package cluster

import (
	"testing"

	"github.com/yusrishaharin/colloids/particles"
)

// hexagonRing builds the bond network of a bare 6-ring 0-1-2-3-4-5-0,
// each particle bonded only to its two ring neighbors; this fixture is
// purely for the ring predicate itself.
func hexagonRing() particles.NgbList {
	ngb := make(particles.NgbList, 6)
	for i := 0; i < 6; i++ {
		prev := (i + 5) % 6
		next := (i + 1) % 6
		ngb[i] = sortedPair(prev, next)
	}
	return ngb
}

func sortedPair(a, b int) []int {
	if a > b {
		a, b = b, a
	}
	return []int{a, b}
}

func TestIsRingOnHexagon(t *testing.T) {
	ngb := hexagonRing()
	members := []int{0, 1, 2, 3, 4, 5}
	if !IsRing(members, ngb) {
		t.Fatal("hexagon should satisfy the degree-2 ring predicate")
	}
	if !IsConnectedRing(members, ngb) {
		t.Fatal("hexagon should also be a single connected ring")
	}
}

func TestIsRingRejectsDisconnectedTriangles(t *testing.T) {
	// Two disjoint triangles {0,1,2} and {3,4,5}: every member still has
	// exactly two neighbors within the combined set, so the bare degree
	// predicate alone cannot tell this apart from one connected 6-ring.
	ngb := particles.NgbList{
		{1, 2}, {0, 2}, {0, 1},
		{4, 5}, {3, 5}, {3, 4},
	}
	members := []int{0, 1, 2, 3, 4, 5}
	if !IsRing(members, ngb) {
		t.Fatal("two disjoint triangles satisfy the naive degree-2 predicate")
	}
	if IsConnectedRing(members, ngb) {
		t.Fatal("two disjoint triangles must not pass the connected ring test")
	}
}

func TestFind1551OnPentagonalBipyramid(t *testing.T) {
	// Particles 0,1 are the bonded pair; 2..6 form the shared 5-ring
	// around them, each bonded to both 0 and 1 as well as its two ring
	// neighbors, the canonical 1551 pentagonal bipyramid.
	ngb := particles.NgbList{
		{1, 2, 3, 4, 5, 6},
		{0, 2, 3, 4, 5, 6},
		sortedPair3(0, 1, 3, 6),
		sortedPair3(0, 1, 2, 4),
		sortedPair3(0, 1, 3, 5),
		sortedPair3(0, 1, 4, 6),
		sortedPair3(0, 1, 5, 2),
	}
	pairs := Find1551(ngb)
	if len(pairs) != 1 {
		t.Fatalf("expected exactly one 1551 pair, got %d", len(pairs))
	}
	if pairs[0].P != 0 || pairs[0].Q != 1 {
		t.Fatalf("expected the 1551 pair to be (0,1), got (%d,%d)", pairs[0].P, pairs[0].Q)
	}
	if len(pairs[0].Ring) != 5 {
		t.Fatalf("expected a 5-membered ring, got %d", len(pairs[0].Ring))
	}
}

func sortedPair3(a, b, c, d int) []int {
	s := []int{a, b, c, d}
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
	return s
}

func TestSecondShellBondsExcludesSelfAndThirdShell(t *testing.T) {
	// A chain 0-1-2-3: 2 is in the second shell of 0, 3 is in the second
	// shell of 1, but 3 is not in the second shell of 0 (it is three
	// bonds away).
	ngb := particles.NgbList{
		{1},
		{0, 2},
		{1, 3},
		{2},
	}
	got := SecondShellBonds(ngb)
	want := map[[2]int]bool{{0, 2}: true, {1, 3}: true}
	if len(got) != len(want) {
		t.Fatalf("expected %d second-shell bonds, got %d: %v", len(want), len(got), got)
	}
	for _, b := range got {
		if !want[[2]int{b.P, b.Q}] {
			t.Fatalf("unexpected second-shell bond (%d,%d)", b.P, b.Q)
		}
	}
}
