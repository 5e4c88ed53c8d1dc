// Package terrain synthesises elevation fields over a disc and maps them to
// shaded colours.
package terrain

import (
	"github.com/google/uuid"
	colorful "github.com/lucasb-eyer/go-colorful"

	"magrathea/internal/core"
	"magrathea/internal/palette"
	prng "magrathea/pkg/core"
)

// Spec is everything needed to build a terrain.
type Spec[K comparable] struct {
	Seed     uuid.UUID
	Origin   core.Point
	Radius   float64
	Palette  palette.Palette[K]
	Strategy Strategy
	TieBreak TieBreak
}

// Terrain is a generated elevation field plus the colour gradient it resolves
// against. It owns the random stream used for render-time tie-breaks and is
// therefore not safe for concurrent use.
type Terrain[K comparable] struct {
	Chaos    float64
	Origin   core.Point
	Radius   float64
	Range    Range
	Gradient Gradient[K]
	Source   ElevationSource
	TieBreak TieBreak

	rng *prng.RNG
}

// Generate builds a terrain from spec. The palette must already be valid.
// Random draws happen in a fixed order: target range, gradient expansion,
// chaos, then the elevation source.
func Generate[K comparable](spec Spec[K]) *Terrain[K] {
	rng := prng.NewRNG(spec.Seed)

	r := TargetRange(spec.Palette, rng)
	gradient := Expand(spec.Palette.Anchors, r, rng)
	maxChaos := spec.Palette.MaxChaos
	if maxChaos < 1 {
		maxChaos = palette.DefaultMaxChaos
	}
	chaos := rng.Range(1, maxChaos)

	t := &Terrain[K]{
		Chaos:    chaos,
		Origin:   spec.Origin,
		Radius:   spec.Radius,
		Range:    r,
		Gradient: gradient,
		TieBreak: spec.TieBreak,
		rng:      rng,
	}
	switch spec.Strategy {
	case StrategyNoise:
		t.Source = NewNoiseField(rng.Int64(), spec.Radius, chaos, r)
	default:
		count := rng.IntRange(MinPoints, MaxPoints)
		t.Source = NewPointField(spec.Radius, chaos, r, count, rng)
	}
	return t
}

// Sample returns the kind and elevation at body-local point p without
// shading.
func (t *Terrain[K]) Sample(p core.Point) (K, float64) {
	a, e := t.resolve(p)
	return a.Kind, e
}

// Point resolves and shades body-local point p.
func (t *Terrain[K]) Point(p core.Point, light *Light) (K, colorful.Color, float64) {
	a, e := t.resolve(p)
	return a.Kind, t.Shade(a.Color, p, light), e
}

func (t *Terrain[K]) resolve(p core.Point) (palette.Anchor[K], float64) {
	e := t.Source.Elevation(p)
	return t.Gradient.Resolve(e, t.TieBreak, t.rng), e
}
