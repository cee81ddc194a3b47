package fileio

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yusrishaharin/colloids/boo"
	"github.com/yusrishaharin/colloids/geom"
	"github.com/yusrishaharin/colloids/particles"
)

func tempPath(t *testing.T, name string) string {
	return filepath.Join(t.TempDir(), name)
}

func samplePositions() *particles.Particles {
	p := particles.New(3, 0.5)
	p.Pos[0] = geom.New(0, 0, 0)
	p.Pos[1] = geom.New(1, 0, 0)
	p.Pos[2] = geom.New(0, 1, 0)
	p.RecomputeBounds()
	return p
}

func TestDatRoundTrip(t *testing.T) {
	path := tempPath(t, "cloud.dat")
	p := samplePositions()
	if err := WriteDat(path, p); err != nil {
		t.Fatalf("WriteDat: %v", err)
	}
	got, err := ReadDat(path, p.Radius)
	if err != nil {
		t.Fatalf("ReadDat: %v", err)
	}
	if got.Len() != p.Len() {
		t.Fatalf("got %d particles, want %d", got.Len(), p.Len())
	}
	for i := range p.Pos {
		if got.Pos[i] != p.Pos[i] {
			t.Fatalf("position %d: got %v, want %v", i, got.Pos[i], p.Pos[i])
		}
	}
}

func TestDatRoundTripCompressed(t *testing.T) {
	path := tempPath(t, "cloud.datz")
	p := samplePositions()
	if err := WriteDat(path, p); err != nil {
		t.Fatalf("WriteDat: %v", err)
	}
	got, err := ReadDat(path, p.Radius)
	if err != nil {
		t.Fatalf("ReadDat: %v", err)
	}
	for i := range p.Pos {
		if got.Pos[i] != p.Pos[i] {
			t.Fatalf("position %d: got %v, want %v", i, got.Pos[i], p.Pos[i])
		}
	}
}

func TestGrvRoundTrip(t *testing.T) {
	path := tempPath(t, "cloud.grv")
	p := samplePositions()
	if err := WriteGrv(path, p); err != nil {
		t.Fatalf("WriteGrv: %v", err)
	}
	got, err := ReadGrv(path, p.Len(), p.Radius)
	if err != nil {
		t.Fatalf("ReadGrv: %v", err)
	}
	for i := range p.Pos {
		if got.Pos[i] != p.Pos[i] {
			t.Fatalf("position %d: got %v, want %v", i, got.Pos[i], p.Pos[i])
		}
	}
}

func TestBondsRoundTrip(t *testing.T) {
	path := tempPath(t, "cloud.bonds")
	bonds := particles.NewBondSet([]particles.Bond{
		particles.NewBond(2, 0),
		particles.NewBond(1, 0),
		particles.NewBond(1, 0),
	})
	if err := WriteBonds(path, bonds); err != nil {
		t.Fatalf("WriteBonds: %v", err)
	}
	got, err := ReadBonds(path)
	if err != nil {
		t.Fatalf("ReadBonds: %v", err)
	}
	if len(got) != len(bonds) {
		t.Fatalf("got %d bonds, want %d", len(got), len(bonds))
	}
	for i := range bonds {
		if got[i] != bonds[i] {
			t.Fatalf("bond %d: got %v, want %v", i, got[i], bonds[i])
		}
	}
}

func sampleBoo() boo.BooData {
	var b boo.BooData
	for _, l := range boo.Degrees {
		for m := 0; m <= l; m++ {
			b.Set(l, m, complex(float64(l)+0.1*float64(m), -0.2*float64(m)))
		}
	}
	return b
}

func TestQlmBinaryRoundTrip(t *testing.T) {
	path := tempPath(t, "cloud.qlm")
	data := []boo.BooData{sampleBoo(), sampleBoo()}
	if err := WriteQlmBinary(path, data); err != nil {
		t.Fatalf("WriteQlmBinary: %v", err)
	}
	got, err := ReadQlmBinary(path, len(data))
	if err != nil {
		t.Fatalf("ReadQlmBinary: %v", err)
	}
	for i := range data {
		for _, l := range boo.Degrees {
			for m := 0; m <= l; m++ {
				want := data[i].Get(l, m)
				g := got[i].Get(l, m)
				if math.Abs(real(want)-real(g)) > 1e-9 || math.Abs(imag(want)-imag(g)) > 1e-9 {
					t.Fatalf("particle %d (l=%d,m=%d): got %v, want %v", i, l, m, g, want)
				}
			}
		}
	}
}

func TestQlmAsciiRoundTrip(t *testing.T) {
	path := tempPath(t, "cloud.qlm.dat")
	data := []boo.BooData{sampleBoo()}
	if err := WriteQlmAscii(path, data); err != nil {
		t.Fatalf("WriteQlmAscii: %v", err)
	}
	got, err := ReadQlmAscii(path)
	if err != nil {
		t.Fatalf("ReadQlmAscii: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d records, want 1", len(got))
	}
	q6, w6 := got[0].Invariants(6)
	wantQ6, wantW6 := data[0].Invariants(6)
	if math.Abs(q6-wantQ6) > 1e-9 || math.Abs(w6-wantW6) > 1e-9 {
		t.Fatalf("Q6/W6 mismatch after round trip: got (%g,%g), want (%g,%g)", q6, w6, wantQ6, wantW6)
	}
}

func TestRdfRoundTrip(t *testing.T) {
	path := tempPath(t, "cloud.rdf")
	p := samplePositions()
	rdf := particles.NewRdf(p)
	rdf.Compute(p)
	if err := WriteRdf(path, rdf); err != nil {
		t.Fatalf("WriteRdf: %v", err)
	}
	r, g, err := ReadRdf(path)
	if err != nil {
		t.Fatalf("ReadRdf: %v", err)
	}
	if len(r) != len(rdf.R) || len(g) != len(rdf.G) {
		t.Fatalf("got %d/%d bins, want %d/%d", len(r), len(g), len(rdf.R), len(rdf.G))
	}
	for i := range r {
		if math.Abs(r[i]-rdf.R[i]) > 1e-9 {
			t.Fatalf("bin %d: r got %g, want %g", i, r[i], rdf.R[i])
		}
	}
}

func TestGlRoundTrip(t *testing.T) {
	path := tempPath(t, "cloud.gl")
	p := samplePositions()
	gl := particles.NewGl(p)
	coeffs := [][]complex128{
		{complex(1, 0), complex(0.5, 0.1)},
		{complex(1, 0), complex(0.5, 0.1)},
		{complex(1, 0), complex(0.5, 0.1)},
	}
	gl.Compute(p, coeffs)
	if err := WriteGl(path, gl); err != nil {
		t.Fatalf("WriteGl: %v", err)
	}
	r, g, err := ReadGl(path)
	if err != nil {
		t.Fatalf("ReadGl: %v", err)
	}
	if len(r) != len(gl.R) || len(g) != len(gl.G) {
		t.Fatalf("got %d/%d bins, want %d/%d", len(r), len(g), len(gl.R), len(gl.G))
	}
	for i := range r {
		if math.Abs(r[i]-gl.R[i]) > 1e-9 {
			t.Fatalf("bin %d: r got %g, want %g", i, r[i], gl.R[i])
		}
	}
}

func TestWriteVTKIncludesSections(t *testing.T) {
	path := tempPath(t, "cloud.vtk")
	p := samplePositions()
	bonds := particles.NewBondSet([]particles.Bond{particles.NewBond(0, 1)})
	scalars := []ScalarField{{Name: "Q6", Values: []float64{0.1, 0.2, 0.3}}}
	vectors := []VectorField{{Name: "disp", Values: p.Pos}}
	if err := WriteVTK(path, p, bonds, scalars, vectors); err != nil {
		t.Fatalf("WriteVTK: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back vtk file: %v", err)
	}
	text := string(raw)
	for _, want := range []string{"DATASET POLYDATA", "POINTS 3", "LINES 1 3", "SCALARS Q6", "VECTORS disp"} {
		if !strings.Contains(text, want) {
			t.Fatalf("vtk output missing %q", want)
		}
	}
}
