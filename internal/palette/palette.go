// Package palette holds elevation-indexed colour anchors and the built-in
// body presets.
package palette

import (
	"errors"
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultMaxChaos bounds the chaos factor drawn for a terrain.
const DefaultMaxChaos = 2.0

// ErrInvalidPalette is wrapped by every palette validation failure.
var ErrInvalidPalette = errors.New("invalid palette")

// Anchor associates a category kind and sRGB colour with an elevation in
// metres. Anchors order by elevation only.
type Anchor[K comparable] struct {
	Kind      K
	Color     colorful.Color
	Elevation float64
}

// Palette is an ascending list of anchors.
type Palette[K comparable] struct {
	Anchors  []Anchor[K]
	MaxChaos float64
}

// New validates and returns a palette. The anchors slice is copied.
func New[K comparable](maxChaos float64, anchors ...Anchor[K]) (Palette[K], error) {
	p := Palette[K]{
		Anchors:  append([]Anchor[K](nil), anchors...),
		MaxChaos: maxChaos,
	}
	if err := p.Validate(); err != nil {
		return Palette[K]{}, err
	}
	return p, nil
}

// Validate checks the palette invariants: non-empty, no NaN elevations,
// ascending order and a chaos bound of at least 1.
func (p Palette[K]) Validate() error {
	if len(p.Anchors) == 0 {
		return fmt.Errorf("%w: no anchors", ErrInvalidPalette)
	}
	if math.IsNaN(p.MaxChaos) || p.MaxChaos < 1 {
		return fmt.Errorf("%w: max chaos %v must be >= 1", ErrInvalidPalette, p.MaxChaos)
	}
	for i, a := range p.Anchors {
		if math.IsNaN(a.Elevation) || math.IsInf(a.Elevation, 0) {
			return fmt.Errorf("%w: anchor %d has elevation %v", ErrInvalidPalette, i, a.Elevation)
		}
		if i > 0 && a.Elevation < p.Anchors[i-1].Elevation {
			return fmt.Errorf("%w: anchor %d (%v) below anchor %d (%v)",
				ErrInvalidPalette, i, a.Elevation, i-1, p.Anchors[i-1].Elevation)
		}
	}
	return nil
}

// Range returns the lowest and highest anchor elevations. It assumes a
// validated palette.
func (p Palette[K]) Range() (float64, float64) {
	return p.Anchors[0].Elevation, p.Anchors[len(p.Anchors)-1].Elevation
}

// Kinds lists the anchor kinds in ascending elevation order.
func (p Palette[K]) Kinds() []K {
	kinds := make([]K, len(p.Anchors))
	for i, a := range p.Anchors {
		kinds[i] = a.Kind
	}
	return kinds
}

// Shift adds amount to every linear-light channel of c and returns the sRGB
// result. Positive amounts lighten, negative amounts darken.
func Shift(c colorful.Color, amount float64) colorful.Color {
	r, g, b := c.LinearRgb()
	return colorful.LinearRgb(r+amount, g+amount, b+amount)
}

// RGB255 clamps c into gamut and returns 8-bit sRGB channels.
func RGB255(c colorful.Color) (uint8, uint8, uint8) {
	return c.Clamped().RGB255()
}

// FromRGB255 builds a colour from 8-bit sRGB channels.
func FromRGB255(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}
