package terrain

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"magrathea/internal/core"
)

// terminatorSpread stretches the dimming falloff so the terminator lands near
// the visible limb rather than exactly on it.
const terminatorSpread = 1.4

// Light is a point light source at the space origin. Sols scales its
// intensity; 1 is the reference sun.
type Light struct {
	Color colorful.Color
	Sols  float64
}

// White returns a white light of the given intensity.
func White(sols float64) *Light {
	return &Light{Color: colorful.Color{R: 1, G: 1, B: 1}, Sols: sols}
}

// Focus returns the body-local point facing the light for a body-local point
// p on a body centred at origin.
func Focus(origin, p core.Point, radius float64) core.Point {
	space := origin.Add(p)
	angle := space.Angle() + math.Pi
	return core.Pt(radius, 0).Rotate(angle)
}

// DimFactor is the amount subtracted from the light colour at p, clamped to at
// most 1. The light must not sit on the point itself.
func DimFactor(origin, p core.Point, radius, sols float64) float64 {
	space := origin.Add(p)
	distanceDimming := 1 - 1/space.Length()
	sphereDimming := p.Distance(Focus(origin, p, radius)) / (radius * terminatorSpread)
	return math.Min(sols*distanceDimming*sphereDimming, 1)
}

// Shade applies light to the sRGB colour base at body-local point p. A nil
// light returns base untouched. Blending happens in linear light.
func (t *Terrain[K]) Shade(base colorful.Color, p core.Point, light *Light) colorful.Color {
	if light == nil {
		return base
	}
	factor := DimFactor(t.Origin, p, t.Radius, light.Sols)
	br, bg, bb := base.LinearRgb()
	lr, lg, lb := light.Color.LinearRgb()
	return colorful.LinearRgb(
		br*(lr-factor),
		bg*(lg-factor),
		bb*(lb-factor),
	)
}
