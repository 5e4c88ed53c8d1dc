package palette

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEarthlikePaletteLiteral(t *testing.T) {
	type row struct {
		kind    Earthlike
		r, g, b uint8
		elev    float64
	}
	want := []row{
		{DeepOcean, 19, 30, 180, -1000},
		{ShallowOcean, 40, 80, 220, -100},
		{Beach, 222, 208, 148, 0},
		{Grass, 72, 160, 64, 80},
		{Forest, 30, 110, 50, 400},
		{Mountain, 120, 110, 100, 1000},
		{Snow, 238, 246, 245, 1700},
	}
	p := EarthlikePalette()
	require.Len(t, p.Anchors, len(want))
	assert.Equal(t, 2.0, p.MaxChaos)
	for i, w := range want {
		a := p.Anchors[i]
		r, g, b := RGB255(a.Color)
		assert.Equal(t, w.kind, a.Kind, "anchor %d kind", i)
		assert.Equal(t, [3]uint8{w.r, w.g, w.b}, [3]uint8{r, g, b}, "anchor %d colour", i)
		assert.Equal(t, w.elev, a.Elevation, "anchor %d elevation", i)
	}
	require.NoError(t, p.Validate())
}

func TestSunlikePaletteLiteral(t *testing.T) {
	p := SunlikePalette()
	require.NoError(t, p.Validate())
	require.Len(t, p.Anchors, 3)
	lo, hi := p.Range()
	assert.Equal(t, -500.0, lo)
	assert.Equal(t, 500.0, hi)
	r, g, b := RGB255(p.Anchors[1].Color)
	assert.Equal(t, [3]uint8{250, 170, 40}, [3]uint8{r, g, b})
	assert.Equal(t, []Sunlike{DeepBase, BrightMiddle, HotTop}, p.Kinds())
}

func TestNewRejectsInvalidPalettes(t *testing.T) {
	c := FromRGB255(1, 2, 3)
	cases := map[string]struct {
		chaos   float64
		anchors []Anchor[int]
	}{
		"empty":      {chaos: 2},
		"nan":        {chaos: 2, anchors: []Anchor[int]{{Kind: 0, Color: c, Elevation: math.NaN()}}},
		"descending": {chaos: 2, anchors: []Anchor[int]{{Kind: 0, Color: c, Elevation: 10}, {Kind: 1, Color: c, Elevation: 5}}},
		"low chaos":  {chaos: 0.5, anchors: []Anchor[int]{{Kind: 0, Color: c, Elevation: 0}}},
		"nan chaos":  {chaos: math.NaN(), anchors: []Anchor[int]{{Kind: 0, Color: c, Elevation: 0}}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := New(tc.chaos, tc.anchors...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidPalette))
		})
	}

	p, err := New(1, Anchor[int]{Kind: 7, Color: c, Elevation: 3}, Anchor[int]{Kind: 8, Color: c, Elevation: 3})
	require.NoError(t, err, "equal elevations are allowed")
	assert.Len(t, p.Anchors, 2)
}

func TestShiftIsLinear(t *testing.T) {
	base := FromRGB255(40, 80, 220)
	lighter := Shift(base, 0.1)
	darker := Shift(base, -0.1)

	br, bg, bb := base.LinearRgb()
	lr, lg, lb := lighter.LinearRgb()
	assert.InDelta(t, br+0.1, lr, 1e-9)
	assert.InDelta(t, bg+0.1, lg, 1e-9)
	assert.InDelta(t, bb+0.1, lb, 1e-9)

	dr, _, _ := darker.LinearRgb()
	assert.InDelta(t, br-0.1, dr, 1e-9)

	r, _, _ := RGB255(Shift(FromRGB255(0, 0, 0), -1))
	assert.Equal(t, uint8(0), r, "out of gamut values clamp")
}

func TestKindNames(t *testing.T) {
	assert.Equal(t, "shallow-ocean", ShallowOcean.String())
	assert.Equal(t, "hot-top", HotTop.String())
	assert.Equal(t, "unknown", Earthlike(42).String())
}
