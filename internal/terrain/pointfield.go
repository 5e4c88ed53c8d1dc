package terrain

import (
	"fmt"
	"math"

	"github.com/dhconnelly/rtreego"

	"magrathea/internal/core"
	prng "magrathea/pkg/core"
)

// Point counts drawn for a PointField.
const (
	MinPoints = 50
	MaxPoints = 1000
)

// neighbours is the number of samples blended per query.
const neighbours = 3

const sampleTolerance = 1e-3

// Sample is one scattered elevation sample.
type Sample struct {
	Location  core.Point
	Elevation float64
}

// Bounds implements rtreego.Spatial.
func (s *Sample) Bounds() rtreego.Rect {
	return rtreego.Point{s.Location.X, s.Location.Y}.ToRect(sampleTolerance)
}

// PointField is an elevation field interpolated from samples stored in an
// R-tree.
type PointField struct {
	tree    *rtreego.Rtree
	samples []*Sample
}

// NewPointField scatters count samples over the square [-radius, radius)².
// Each sample's elevation stays within chaos metres per kilometre of its
// nearest existing neighbour and within r.
func NewPointField(radius, chaos float64, r Range, count int, rng *prng.RNG) *PointField {
	f := &PointField{
		tree:    rtreego.NewTree(2, 25, 50),
		samples: make([]*Sample, 0, count),
	}
	for i := 0; i < count; i++ {
		loc := core.Pt(rng.Range(-radius, radius), rng.Range(-radius, radius))
		lo, hi := -chaos, chaos
		if nearest, ok := f.tree.NearestNeighbor(rtreego.Point{loc.X, loc.Y}).(*Sample); ok && nearest != nil {
			d := loc.Distance(nearest.Location)
			lo = nearest.Elevation - d*chaos
			hi = nearest.Elevation + d*chaos
		}
		lo = math.Max(lo, r.Min)
		hi = math.Min(hi, r.Max)
		s := &Sample{Location: loc, Elevation: rng.Range(lo, hi)}
		f.tree.Insert(s)
		f.samples = append(f.samples, s)
	}
	return f
}

// Len reports the number of samples.
func (f *PointField) Len() int { return len(f.samples) }

// Samples returns the samples in insertion order.
func (f *PointField) Samples() []Sample {
	out := make([]Sample, len(f.samples))
	for i, s := range f.samples {
		out[i] = *s
	}
	return out
}

// Elevation blends the three nearest samples, weighting each by its share of
// the summed distance. It panics if the field holds fewer than three samples.
func (f *PointField) Elevation(p core.Point) float64 {
	found := f.tree.NearestNeighbors(neighbours, rtreego.Point{p.X, p.Y})
	var near [neighbours]*Sample
	n := 0
	for _, obj := range found {
		s, ok := obj.(*Sample)
		if !ok || s == nil || n == neighbours {
			continue
		}
		near[n] = s
		n++
	}
	if n != neighbours {
		panic(fmt.Sprintf("terrain: point field needs %d samples, has %d", neighbours, len(f.samples)))
	}

	var dist [neighbours]float64
	total := 0.0
	for i, s := range near {
		dist[i] = p.Distance(s.Location)
		total += dist[i]
	}
	if total == 0 {
		sum := 0.0
		for _, s := range near {
			sum += s.Elevation
		}
		return sum / neighbours
	}
	e := 0.0
	for i, s := range near {
		e += dist[i] / total * s.Elevation
	}
	return e
}
