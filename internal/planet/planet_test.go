package planet

import (
	"errors"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magrathea/internal/core"
	"magrathea/internal/palette"
	"magrathea/internal/terrain"
)

const (
	earthRadius = 6371.0
	earthOrbit  = 150_200_000.0
	earthAngle  = -2.35619
)

func earth(t *testing.T) *Planet[palette.Earthlike] {
	t.Helper()
	p, err := New(uuid.Nil, core.CalculateOrigin(earthAngle, earthOrbit), earthRadius, palette.EarthlikePalette())
	require.NoError(t, err)
	return p
}

func TestGenerateScenario(t *testing.T) {
	p := earth(t)
	out, err := p.Generate(64, terrain.White(1))
	require.NoError(t, err)
	require.NotNil(t, out.Image)
	assert.Equal(t, 64, out.Image.Bounds().Dx())
	assert.Equal(t, 64, out.Image.Bounds().Dy())

	ocean := out.Stats[palette.DeepOcean] + out.Stats[palette.ShallowOcean]
	assert.Positive(t, ocean, "stats %v", out.Stats)
	assert.Equal(t, uint8(255), out.Image.NRGBAAt(32, 32).A)
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := earth(t).Generate(40, terrain.White(1))
	require.NoError(t, err)
	b, err := earth(t).Generate(40, terrain.White(1))
	require.NoError(t, err)
	assert.Equal(t, a.Image.Pix, b.Image.Pix)
	assert.Equal(t, a.Stats, b.Stats)
}

func TestReseedChangesImage(t *testing.T) {
	p := earth(t)
	a, err := p.Generate(32, nil)
	require.NoError(t, err)
	p.Reseed(uuid.MustParse("c0ffee00-0000-4000-8000-000000000001"))
	b, err := p.Generate(32, nil)
	require.NoError(t, err)
	assert.NotEqual(t, a.Image.Pix, b.Image.Pix)
}

func TestGenerateValidation(t *testing.T) {
	cases := map[string]func(p *Planet[palette.Earthlike]) (int, *terrain.Light){
		"zero resolution": func(*Planet[palette.Earthlike]) (int, *terrain.Light) { return 0, nil },
		"negative radius": func(p *Planet[palette.Earthlike]) (int, *terrain.Light) {
			p.Radius = -1
			return 16, nil
		},
		"nan radius": func(p *Planet[palette.Earthlike]) (int, *terrain.Light) {
			p.Radius = math.NaN()
			return 16, nil
		},
		"empty palette": func(p *Planet[palette.Earthlike]) (int, *terrain.Light) {
			p.Palette.Anchors = nil
			return 16, nil
		},
		"negative sols": func(*Planet[palette.Earthlike]) (int, *terrain.Light) {
			return 16, terrain.White(-1)
		},
		"light inside body": func(p *Planet[palette.Earthlike]) (int, *terrain.Light) {
			p.SetOriginByAngle(0, earthRadius/2)
			return 16, terrain.White(1)
		},
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			p := earth(t)
			res, light := mutate(p)
			_, err := p.Generate(res, light)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig), err.Error())
		})
	}

	p := earth(t)
	p.SetOriginByAngle(0, earthRadius/2)
	_, err := p.Generate(8, nil)
	assert.NoError(t, err, "unlit bodies ignore the light position")
}

func TestSetOriginByAngle(t *testing.T) {
	p := earth(t)
	p.SetOriginByAngle(1.2, 1000)
	assert.InDelta(t, 1000, p.Distance(), 1e-9)
	assert.InDelta(t, 1.2, p.Angle(), 1e-12)
}

func TestNewRejectsBadInput(t *testing.T) {
	_, err := New(uuid.Nil, core.Point{}, 0, palette.EarthlikePalette())
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = New(uuid.Nil, core.Point{}, 10, palette.Palette[palette.Earthlike]{MaxChaos: 2})
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorIs(t, err, palette.ErrInvalidPalette)
}

func TestPresets(t *testing.T) {
	assert.Equal(t, []string{"earthlike", "sunlike"}, PresetNames())

	g, err := Lookup("sunlike")
	require.NoError(t, err)
	assert.Equal(t, []string{"deep-base", "bright-middle", "hot-top"}, g.Kinds())

	res, err := g.Generate(Options{
		Seed:     uuid.Nil,
		Origin:   core.CalculateOrigin(0, 1e9),
		Radius:   696_000,
		Strategy: terrain.StrategyNoise,
	}, 24, nil)
	require.NoError(t, err)
	total := 0.0
	for _, share := range res.Coverage() {
		total += share
	}
	assert.InDelta(t, 1, total, 1e-9)

	_, err = Lookup("gas-giant")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
