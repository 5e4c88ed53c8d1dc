package terrain

import (
	"math"

	"github.com/ojrac/opensimplex-go"

	"magrathea/internal/core"
)

// NoiseField samples 2D opensimplex noise scaled to the body radius and
// stretched onto the target range.
type NoiseField struct {
	noise  opensimplex.Noise
	radius float64
	chaos  float64
	r      Range
}

// NewNoiseField seeds a noise field. Higher chaos packs more features across
// the disc.
func NewNoiseField(seed int64, radius, chaos float64, r Range) *NoiseField {
	return &NoiseField{
		noise:  opensimplex.New(seed),
		radius: radius,
		chaos:  chaos,
		r:      r,
	}
}

// Elevation implements ElevationSource.
func (f *NoiseField) Elevation(p core.Point) float64 {
	scale := f.chaos / f.radius
	v := (f.noise.Eval2(p.X*scale, p.Y*scale) + 1) / 2
	v = math.Max(0, math.Min(1, v))
	return f.r.Min + v*f.r.Span()
}
