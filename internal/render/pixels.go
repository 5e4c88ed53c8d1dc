// Package render composites a terrain into an anti-aliased disc image.
package render

import (
	"image"
	"math"
	"sort"

	"magrathea/internal/core"
	"magrathea/internal/palette"
	"magrathea/internal/terrain"
)

// Generated is the output of one render pass.
type Generated[K comparable] struct {
	// Image holds straight (non-premultiplied) RGBA. Pixels outside the body
	// are transparent black.
	Image *image.NRGBA
	Stats Stats[K]
	// Elevation is a row-major per-pixel elevation buffer, NaN outside the
	// body.
	Elevation []float64
	Pixels    int
}

// ElevationAt returns the elevation sampled for pixel (x, y).
func (g Generated[K]) ElevationAt(x, y int) float64 {
	if x < 0 || y < 0 || x >= g.Pixels || y >= g.Pixels {
		return math.NaN()
	}
	return g.Elevation[y*g.Pixels+x]
}

// Stats counts rendered pixels per kind.
type Stats[K comparable] map[K]int

// Total returns the number of counted pixels.
func (s Stats[K]) Total() int {
	n := 0
	for _, c := range s {
		n += c
	}
	return n
}

// Count is one entry of Stats.Sorted.
type Count[K comparable] struct {
	Kind  K
	Count int
}

// Sorted returns entries ordered by descending count, breaking ties by the
// kind's formatted name.
func (s Stats[K]) Sorted(name func(K) string) []Count[K] {
	out := make([]Count[K], 0, len(s))
	for k, c := range s {
		out = append(out, Count[K]{Kind: k, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return name(out[i].Kind) < name(out[j].Kind)
	})
	return out
}

// Alpha returns the coverage of a pixel whose centre lies d pixels from the
// centre of a disc of radius r.
func Alpha(d, r float64) uint8 {
	delta := r - d
	switch {
	case delta <= 0:
		return 0
	case delta < 1:
		return uint8(255 * delta)
	default:
		return 255
	}
}

// Render draws t as a pixels × pixels disc. Rendering is sequential so the
// terrain's random stream is consumed in pixel order.
func Render[K comparable](t *terrain.Terrain[K], pixels int, light *terrain.Light) Generated[K] {
	img := image.NewNRGBA(image.Rect(0, 0, pixels, pixels))
	out := Generated[K]{
		Image:     img,
		Stats:     Stats[K]{},
		Elevation: make([]float64, pixels*pixels),
		Pixels:    pixels,
	}
	radius := float64(pixels) / 2
	center := core.Pt(radius, radius)
	scale := t.Radius / radius

	for y := 0; y < pixels; y++ {
		for x := 0; x < pixels; x++ {
			idx := y*pixels + x
			px := core.Pt(float64(x), float64(y))
			d := px.Distance(center)
			if d >= radius {
				out.Elevation[idx] = math.NaN()
				continue
			}
			p := px.Scale(scale).Sub(core.Pt(t.Radius, t.Radius))
			kind, col, e := t.Point(p, light)
			out.Stats[kind]++
			out.Elevation[idx] = e

			r, g, b := palette.RGB255(col)
			base := img.PixOffset(x, y)
			img.Pix[base+0] = r
			img.Pix[base+1] = g
			img.Pix[base+2] = b
			img.Pix[base+3] = Alpha(d, radius)
		}
	}
	return out
}
