package rtree

import (
	"testing"

	"github.com/yusrishaharin/colloids/geom"
)

func TestInsertAndQueryOverlap(t *testing.T) {
	tr := NewDefault()
	for i := 0; i < 50; i++ {
		p := geom.New(float64(i), 0, 0)
		tr.Insert(i, geom.Bounds(p, 0.4))
	}
	if tr.Len() != 50 {
		t.Fatalf("expected 50 leaves, got %d", tr.Len())
	}
	got := tr.QueryOverlap(geom.Bounds(geom.New(10, 0, 0), 0.1))
	if len(got) != 1 || got[0] != 10 {
		t.Fatalf("expected exactly id 10, got %v", got)
	}
}

func TestQueryOverlapEmpty(t *testing.T) {
	tr := NewDefault()
	if got := tr.QueryOverlap(geom.Bounds(geom.New(0, 0, 0), 1)); len(got) != 0 {
		t.Fatalf("expected empty query result, got %v", got)
	}
}

func TestTranslatePreservesOverlap(t *testing.T) {
	tr := NewDefault()
	tr.Insert(0, geom.Bounds(geom.New(0, 0, 0), 0.5))
	shift := geom.New(5, 5, 5)
	tr.Translate(shift)
	got := tr.QueryOverlap(geom.Bounds(geom.New(5, 5, 5), 0.1))
	if len(got) != 1 {
		t.Fatalf("expected the translated leaf to still overlap its new center, got %v", got)
	}
}

func TestOverallBox(t *testing.T) {
	tr := NewDefault()
	tr.Insert(0, geom.Bounds(geom.New(-1, 0, 0), 0.1))
	tr.Insert(1, geom.Bounds(geom.New(1, 0, 0), 0.1))
	bb := tr.OverallBox()
	if bb.Lo.X > -1.1 || bb.Hi.X < 1.1 {
		t.Fatalf("overall box %v does not cover both leaves", bb)
	}
}

func TestOverallBoxPanicsWhenEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected OverallBox on an empty tree to panic")
		}
	}()
	NewDefault().OverallBox()
}

func TestInsideShrunkBox(t *testing.T) {
	tr := NewDefault()
	tr.Insert(0, geom.Bounds(geom.New(0, 0, 0), 0.1))  // at the low-x edge
	tr.Insert(1, geom.Bounds(geom.New(9.95, 0, 0), 0.1)) // near the edge
	tr.Insert(2, geom.Bounds(geom.New(5, 0, 0), 0.1))
	for i := 2; i < 200; i++ {
		tr.Insert(2+i, geom.Bounds(geom.New(float64(i)/20, 1, 0), 0.01))
	}
	inside := tr.Inside(0.5)
	for _, id := range inside {
		if id == 1 {
			t.Fatalf("particle near the box edge should not be reported inside")
		}
	}
}

func TestManyInsertsForcesSplits(t *testing.T) {
	tr := New(MinChildren, MaxChildren)
	const n = 500
	for i := 0; i < n; i++ {
		tr.Insert(i, geom.Bounds(geom.New(float64(i%23), float64(i%17), float64(i%7)), 0.2))
	}
	for i := 0; i < n; i++ {
		got := tr.QueryOverlap(geom.Bounds(geom.New(float64(i%23), float64(i%17), float64(i%7)), 0.01))
		found := false
		for _, id := range got {
			if id == i {
				found = true
			}
		}
		if !found {
			t.Fatalf("leaf %d not found after %d inserts", i, n)
		}
	}
}
