// Package planet is the entry point for generating body images.
package planet

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"magrathea/internal/core"
	"magrathea/internal/palette"
	"magrathea/internal/render"
	"magrathea/internal/terrain"
)

// ErrInvalidConfig is wrapped by every validation failure reported by
// Generate.
var ErrInvalidConfig = errors.New("invalid planet configuration")

// Planet is a body orbiting the light source at the space origin.
type Planet[K comparable] struct {
	Seed     uuid.UUID
	Origin   core.Point
	Radius   float64
	Palette  palette.Palette[K]
	Strategy terrain.Strategy
	TieBreak terrain.TieBreak
}

// New constructs a planet using the point-field strategy.
func New[K comparable](seed uuid.UUID, origin core.Point, radius float64, p palette.Palette[K]) (*Planet[K], error) {
	pl := &Planet[K]{Seed: seed, Origin: origin, Radius: radius, Palette: p}
	if err := pl.validate(); err != nil {
		return nil, err
	}
	return pl, nil
}

func (p *Planet[K]) validate() error {
	if math.IsNaN(p.Radius) || math.IsInf(p.Radius, 0) || p.Radius <= 0 {
		return fmt.Errorf("%w: radius %v must be a positive finite number", ErrInvalidConfig, p.Radius)
	}
	if err := p.Palette.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if math.IsNaN(p.Origin.X) || math.IsNaN(p.Origin.Y) {
		return fmt.Errorf("%w: origin %v is not a number", ErrInvalidConfig, p.Origin)
	}
	return nil
}

// Generate renders the planet as a resolution × resolution image. A nil
// light renders the palette colours unshaded.
func (p *Planet[K]) Generate(resolution int, light *terrain.Light) (render.Generated[K], error) {
	if resolution <= 0 {
		return render.Generated[K]{}, fmt.Errorf("%w: resolution %d must be positive", ErrInvalidConfig, resolution)
	}
	if err := p.validate(); err != nil {
		return render.Generated[K]{}, err
	}
	if light != nil {
		if math.IsNaN(light.Sols) || light.Sols < 0 {
			return render.Generated[K]{}, fmt.Errorf("%w: light intensity %v must be >= 0", ErrInvalidConfig, light.Sols)
		}
		if p.Distance() <= p.Radius {
			return render.Generated[K]{}, fmt.Errorf("%w: light source lies inside the body (distance %v, radius %v)",
				ErrInvalidConfig, p.Distance(), p.Radius)
		}
	}
	t := terrain.Generate(terrain.Spec[K]{
		Seed:     p.Seed,
		Origin:   p.Origin,
		Radius:   p.Radius,
		Palette:  p.Palette,
		Strategy: p.Strategy,
		TieBreak: p.TieBreak,
	})
	return render.Render(t, resolution, light), nil
}

// SetOriginByAngle moves the planet onto its orbit at angle radians and
// distance kilometres from the light.
func (p *Planet[K]) SetOriginByAngle(angle, distance float64) {
	p.Origin = core.CalculateOrigin(angle, distance)
}

// Reseed replaces the seed. The next Generate produces a new terrain.
func (p *Planet[K]) Reseed(seed uuid.UUID) { p.Seed = seed }

// Distance returns the orbital distance from the light in kilometres.
func (p *Planet[K]) Distance() float64 { return p.Origin.Length() }

// Angle returns the orbital angle in radians.
func (p *Planet[K]) Angle() float64 { return p.Origin.Angle() }
