package reconstruct

import (
	"math"

	"github.com/yusrishaharin/colloids/traj"
)

// margin is the zero-padding applied on both sides of the radius and
// intensity signals GetBlobs feeds to the 1-D blob finder.
const margin = 6

// Reconstructor maintains an append-only set of clusters, the
// trajectory index linking frame-to-frame detections, and the most
// recently inserted frame. PushBack is strictly serial: it is the one
// component in this module that is not safe to call concurrently from
// multiple frames, since every call depends on the previous one's
// TrajIndex and LastFrame state.
type Reconstructor struct {
	Clusters  []Cluster
	Traj      *traj.TrajIndex
	LastFrame Frame
	frameIdx  int
}

// New returns an empty Reconstructor.
func New() *Reconstructor {
	return &Reconstructor{}
}

// PushBack absorbs one new frame: on the first call it seeds one
// singleton cluster and trajectory per detection; afterward it builds
// candidate links against the previous frame, feeds them to the
// trajectory index, and either extends an existing cluster or starts a
// new one for every detection depending on whether its trajectory
// existed before this frame.
func (r *Reconstructor) PushBack(frame Frame, tolerance float64) error {
	if r.Traj == nil {
		r.Traj = traj.New(len(frame))
		r.Clusters = make([]Cluster, len(frame))
		for p, c := range frame {
			r.Clusters[p] = Cluster{toCenter3D(c, r.frameIdx)}
		}
		r.LastFrame = frame
		r.frameIdx++
		return nil
	}

	existed := make([]bool, r.Traj.NumTrajectories())
	for i := range existed {
		existed[i] = true
	}

	links := CandidateLinks(r.LastFrame, frame, tolerance)
	if err := r.Traj.AddFrame(len(frame), links); err != nil {
		return err
	}

	newFrameTr := r.Traj.Pos2Tr[len(r.Traj.Pos2Tr)-1]
	for p, c := range frame {
		tr := newFrameTr[p]
		if tr < len(existed) && existed[tr] {
			r.Clusters[tr] = append(r.Clusters[tr], toCenter3D(c, r.frameIdx))
		} else {
			r.Clusters = append(r.Clusters, Cluster{toCenter3D(c, r.frameIdx)})
		}
	}
	r.LastFrame = frame
	r.frameIdx++
	return nil
}

func toCenter3D(c Center2D, frameIdx int) Center3D {
	return Center3D{X: c.X, Y: c.Y, Z: float64(frameIdx), R: c.R, Intensity: c.Intensity}
}

// SplitClusters examines every cluster of length >= 6: it builds the
// signal of squared successive planar displacements, runs the 1-D blob
// finder on it, and splits the cluster at each returned peak position,
// moving the tail into a new cluster. Peaks are processed from last to
// first so that splitting does not invalidate the positions of peaks
// still to be applied.
func (r *Reconstructor) SplitClusters() {
	for i := 0; i < len(r.Clusters); i++ {
		c := r.Clusters[i]
		if len(c) < 6 {
			continue
		}
		signal := make([]float64, len(c)-1)
		for j := 1; j < len(c); j++ {
			dx, dy := c[j].X-c[j-1].X, c[j].Y-c[j-1].Y
			signal[j-1] = dx*dx + dy*dy
		}
		peaks := FindBlobs1D(signal)
		for p := len(peaks) - 1; p >= 0; p-- {
			split := int(math.Round(peaks[p].Pos)) + 1
			if split <= 0 || split >= len(c) {
				continue
			}
			tail := make(Cluster, len(c)-split)
			copy(tail, c[split:])
			c = c[:split]
			r.Clusters = append(r.Clusters, tail)
		}
		r.Clusters[i] = c
	}
}

// Blob3D is one output of GetBlobs: a reconstructed 3D particle
// position interpolated from the cluster it was found in.
type Blob3D struct {
	Center3D
	SourceCluster int
}

// GetBlobs runs the intensity/radius discontinuity search over every
// cluster of length >= 6, appending the surviving blobs to out and
// returning the extended slice.
func GetBlobs(clusters []Cluster, out []Blob3D) []Blob3D {
	for ci, c := range clusters {
		if len(c) < 6 {
			continue
		}
		radii := make([]float64, len(c)+2*margin)
		negIntensity := make([]float64, len(c)+2*margin)
		for j, elem := range c {
			radii[j+margin] = elem.R
			negIntensity[j+margin] = -elem.Intensity
		}
		radiusBlobs := FindBlobs1D(radii)
		intensityBlobs := FindBlobs1D(negIntensity)

		for _, ib := range intensityBlobs {
			if overlapsAny(ib, radiusBlobs) {
				continue
			}
			x := ib.Pos - margin
			lo := int(math.Floor(x))
			if lo < 0 {
				lo = 0
			}
			hi := lo + 1
			if hi >= len(c) {
				hi = len(c) - 1
				lo = hi
			}
			frac := x - float64(lo)
			blob := interpolateCenter3D(c[lo], c[hi], frac)
			blob.Z -= 0.5
			out = append(out, Blob3D{Center3D: blob, SourceCluster: ci})
		}
	}
	return out
}

func overlapsAny(b Blob1D, others []Blob1D) bool {
	for _, o := range others {
		if math.Abs(b.Pos-o.Pos) < b.Scale+o.Scale {
			return true
		}
	}
	return false
}

func interpolateCenter3D(a, b Center3D, frac float64) Center3D {
	return Center3D{
		X:         a.X + frac*(b.X-a.X),
		Y:         a.Y + frac*(b.Y-a.Y),
		Z:         a.Z + frac*(b.Z-a.Z),
		R:         a.R + frac*(b.R-a.R),
		Intensity: a.Intensity + frac*(b.Intensity-a.Intensity),
	}
}
