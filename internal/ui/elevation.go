package ui

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Hypsometric tints. Water is scaled against the deepest cell and land
// against the highest, so sea level stays at zero for every preset.
var (
	tintAbyss   = colorful.Color{R: 0.05, G: 0.10, B: 0.35}
	tintShelf   = colorful.Color{R: 0.45, G: 0.70, B: 0.90}
	tintLowland = colorful.Color{R: 0.30, G: 0.55, B: 0.25}
	tintUpland  = colorful.Color{R: 0.65, G: 0.50, B: 0.30}
	tintSummit  = colorful.Color{R: 0.95, G: 0.95, B: 0.95}
)

const (
	waterAlpha = 150
	landAlpha  = 190
	// hillshade light comes from the upper left
	shadeStrength = 6.0
)

// FillElevationRGBA paints an n × n elevation field into buf as
// hypsometric tints with a hillshade. NaN cells are left transparent.
func FillElevationRGBA(buf []byte, field []float64, n int) {
	total := n * n
	if len(field) != total || len(buf) != 4*total {
		return
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range field {
		if !math.IsNaN(v) {
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
	}
	relief := hi - lo
	if !(relief > 0) {
		relief = 1
	}

	at := func(x, y int, fallback float64) float64 {
		if x < 0 || y < 0 || x >= n || y >= n || math.IsNaN(field[y*n+x]) {
			return fallback
		}
		return field[y*n+x]
	}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			px := buf[4*(y*n+x) : 4*(y*n+x)+4]
			v := field[y*n+x]
			if math.IsNaN(v) {
				px[0], px[1], px[2], px[3] = 0, 0, 0, 0
				continue
			}
			// positive when the cell slopes up away from the light
			facing := (at(x+1, y, v) - at(x-1, y, v) + at(x, y+1, v) - at(x, y-1, v)) / relief
			shade := 1 + 0.35*math.Max(-1, math.Min(1, facing*shadeStrength))
			c := tint(v, lo, hi)
			c = colorful.Color{R: c.R * shade, G: c.G * shade, B: c.B * shade}.Clamped()
			px[0], px[1], px[2] = c.RGB255()
			px[3] = landAlpha
			if v < 0 {
				px[3] = waterAlpha
			}
		}
	}
}

// tint maps elevation v to its hypsometric colour for a field spanning
// [lo, hi].
func tint(v, lo, hi float64) colorful.Color {
	if v < 0 {
		depth := 0.0
		if lo < 0 {
			depth = clamp01(v / lo)
		}
		return tintShelf.BlendLab(tintAbyss, depth)
	}
	height := 0.0
	if hi > 0 {
		height = clamp01(v / hi)
	}
	if height < 0.5 {
		return tintLowland.BlendLab(tintUpland, height*2)
	}
	return tintUpland.BlendLab(tintSummit, (height-0.5)*2)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
