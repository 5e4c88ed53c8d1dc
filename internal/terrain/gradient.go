package terrain

import (
	"math"
	"sort"

	"magrathea/internal/palette"
	prng "magrathea/pkg/core"
)

// Delta is the linear-light amount by which band floors are darkened and
// ceilings lightened.
const Delta = 0.1

// rangeSpread is the fraction of the palette span that may be added to each
// end of the target elevation range.
const rangeSpread = 0.3

// Range is a closed elevation interval in metres.
type Range struct {
	Min float64
	Max float64
}

// Span returns Max-Min.
func (r Range) Span() float64 { return r.Max - r.Min }

// Clamp limits v to r.
func (r Range) Clamp(v float64) float64 {
	return math.Max(r.Min, math.Min(r.Max, v))
}

// TargetRange widens the palette span on both ends by a random share of its
// width.
func TargetRange[K comparable](p palette.Palette[K], rng *prng.RNG) Range {
	lo, hi := p.Range()
	variance := (hi - lo) * rng.Float64() * rangeSpread
	return Range{Min: lo - variance, Max: hi + variance}
}

// Gradient is a strictly ascending list of anchors produced by Expand.
type Gradient[K comparable] []palette.Anchor[K]

// Expand turns each palette anchor into a floor, mid and ceiling anchor
// spanning a randomly sized band of r. Bands tile r without gaps: each band
// starts where the previous one ended.
func Expand[K comparable](anchors []palette.Anchor[K], r Range, rng *prng.RNG) Gradient[K] {
	if len(anchors) == 0 {
		return nil
	}
	out := make(Gradient[K], 0, len(anchors)*3)
	start := r.Min
	carry := 0.0
	for i, a := range anchors {
		end := r.Max
		if i < len(anchors)-1 {
			next := anchors[i+1].Elevation
			end = rng.Range(a.Elevation-carry, next)
			carry = next - end
		}
		if end < start {
			end = start
		}

		mid := rng.Range(start, end)
		ceiling := end
		if i < len(anchors)-1 {
			// bands are half-open; the next floor sits exactly at end
			ceiling = math.Nextafter(end, math.Inf(-1))
		}

		out = append(out,
			palette.Anchor[K]{Kind: a.Kind, Color: palette.Shift(a.Color, -Delta), Elevation: start},
			palette.Anchor[K]{Kind: a.Kind, Color: palette.Shift(a.Color, rng.Range(0, Delta)), Elevation: mid},
			palette.Anchor[K]{Kind: a.Kind, Color: palette.Shift(a.Color, Delta), Elevation: ceiling},
		)
		start = end
	}
	return out.merge()
}

// merge drops anchors that do not sit strictly above their predecessor.
func (g Gradient[K]) merge() Gradient[K] {
	out := g[:0]
	for _, a := range g {
		if len(out) > 0 && !(a.Elevation > out[len(out)-1].Elevation) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// TieBreak selects how Resolve chooses between the two anchors that bracket an
// elevation.
type TieBreak int

const (
	// TieBreakLower picks the nearer anchor, or the lower one on equal gaps.
	TieBreakLower TieBreak = iota
	// TieBreakWeighted picks either neighbour at random, weighted by the
	// inverse of its gap. It draws from the terrain stream while rendering.
	TieBreakWeighted
)

func (t TieBreak) String() string {
	switch t {
	case TieBreakLower:
		return "lower"
	case TieBreakWeighted:
		return "weighted"
	default:
		return "unknown"
	}
}

// Resolve maps an elevation to the nearest gradient anchor. Elevations below
// the first anchor or above the last clamp to the ends.
func (g Gradient[K]) Resolve(e float64, tb TieBreak, rng *prng.RNG) palette.Anchor[K] {
	i := sort.Search(len(g), func(i int) bool { return g[i].Elevation >= e })
	switch {
	case i == len(g):
		return g[len(g)-1]
	case g[i].Elevation == e, i == 0:
		return g[i]
	}
	lower, upper := g[i-1], g[i]
	dl := e - lower.Elevation
	du := upper.Elevation - e
	if tb == TieBreakWeighted && rng != nil {
		// P(lower) = (1/dl) / (1/dl + 1/du)
		if rng.Float64()*(dl+du) < du {
			return lower
		}
		return upper
	}
	if du < dl {
		return upper
	}
	return lower
}
