package particles

import (
	"math"
	"testing"

	"github.com/yusrishaharin/colloids/geom"
)

func TestEuclideanNeighborsExcludesSelf(t *testing.T) {
	p := New(2, 0.5)
	p.Pos[0] = geom.New(0, 0, 0)
	p.Pos[1] = geom.New(0, 0, 0)
	p.BuildIndex()
	ngb := p.EuclideanNeighborsOf(0, 1.0)
	if len(ngb) != 1 || ngb[0] != 1 {
		t.Fatalf("expected particle 0 to see only particle 1 as neighbor, got %v", ngb)
	}
}

func TestEuclideanNeighborsStrictInequality(t *testing.T) {
	p := New(2, 0.5)
	p.Pos[0] = geom.New(0, 0, 0)
	p.Pos[1] = geom.New(1, 0, 0)
	p.BuildIndex()
	if ngb := p.EuclideanNeighborsOf(0, 1.0); len(ngb) != 0 {
		t.Fatalf("a particle exactly at distance r must be excluded, got %v", ngb)
	}
	if ngb := p.EuclideanNeighborsOf(0, 1.0001); len(ngb) != 1 {
		t.Fatalf("a particle just inside r must be included, got %v", ngb)
	}
}

func TestSpatialQueryWithoutIndexPanics(t *testing.T) {
	p := New(3, 0.5)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic querying neighbors without a spatial index")
		}
	}()
	p.EuclideanNeighbors(geom.New(0, 0, 0), 1)
}

func TestCutRespectsSeparation(t *testing.T) {
	p := New(0, 0.5)
	p.Pos = []geom.Vec3{
		geom.New(0, 0, 0),
		geom.New(0.1, 0, 0), // too close to the first, dropped
		geom.New(5, 0, 0),
	}
	cut := p.Cut(1.0)
	if len(cut.Pos) != 2 {
		t.Fatalf("expected 2 surviving particles, got %d", len(cut.Pos))
	}
	for i := 0; i < len(cut.Pos); i++ {
		for j := i + 1; j < len(cut.Pos); j++ {
			if d := geom.Norm(geom.Sub(cut.Pos[i], cut.Pos[j])); d < 1.0 {
				t.Fatalf("cut output has pair closer than sep: %f", d)
			}
		}
	}
}

func TestMakeNgbListSymmetric(t *testing.T) {
	p := New(0, 0.5)
	p.Pos = []geom.Vec3{geom.New(0, 0, 0), geom.New(1, 0, 0), geom.New(10, 0, 0)}
	p.BuildIndex()
	ngb := p.MakeNgbList(1.5) // sep = 2*1.5*0.5 = 1.5

	for i, list := range ngb {
		for _, j := range list {
			if !Contains(ngb[j], i) {
				t.Fatalf("ngb not symmetric: %d is a neighbor of %d but not vice versa", i, j)
			}
		}
	}
}

func TestNearestExpandsRadius(t *testing.T) {
	p := New(0, 0.5)
	p.Pos = []geom.Vec3{geom.New(0, 0, 0), geom.New(100, 0, 0)}
	p.BuildIndex()
	id, dist := p.Nearest(geom.New(99, 0, 0), 0.01)
	if id != 1 {
		t.Fatalf("expected nearest to particle 1, got %d", id)
	}
	if math.Abs(dist-1) > 1e-9 {
		t.Fatalf("expected distance 1, got %f", dist)
	}
}

func TestIntersectOrderedMerge(t *testing.T) {
	a := []int{1, 2, 3, 5, 8}
	b := []int{2, 3, 4, 8, 9}
	got := Intersect(a, b)
	want := []int{2, 3, 8}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
}
