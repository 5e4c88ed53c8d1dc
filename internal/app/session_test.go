package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magrathea/internal/config"
	"magrathea/internal/planet"
	"magrathea/internal/terrain"
)

// greyGenerator is a registered preset with no editor behind it.
type greyGenerator struct{}

func (greyGenerator) Name() string    { return "grey" }
func (greyGenerator) Kinds() []string { return []string{"rock"} }
func (greyGenerator) Generate(planet.Options, int, *terrain.Light) (planet.Result, error) {
	return planet.Result{}, nil
}

func init() {
	planet.Register("grey", func() planet.Generator { return greyGenerator{} })
}

func TestOpenRendersFirstFrame(t *testing.T) {
	for _, preset := range []string{"earthlike", "sunlike"} {
		cfg := config.NewConfig()
		cfg.Preset = preset
		cfg.Resolution = 16
		cfg.SunColor = "ffffff"
		cfg.Seed = "00000000-0000-0000-0000-000000000000"

		s, err := Open(cfg)
		require.NoError(t, err, preset)
		f := s.Frame()
		require.NotNil(t, f.Image)
		assert.Equal(t, 16, f.Pixels)
		assert.True(t, f.Lit)
		assert.Equal(t, 1, f.Generation)

		s.Send(SetOrigin{Angle: 1}, time.Unix(0, 0))
		changed, err := s.Update(time.Unix(1, 0))
		require.NoError(t, err)
		assert.True(t, changed)
		assert.InDelta(t, 1, s.Frame().Origin.Angle(), 1e-9)
	}
}

func TestOpenRejectsBadConfig(t *testing.T) {
	cfg := config.NewConfig()
	cfg.SunColor = "nothex"
	_, err := Open(cfg)
	assert.ErrorIs(t, err, config.ErrInvalidColor)
}

func TestOpenRejectsPresetWithoutEditor(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Preset = "grey"
	cfg.Resolution = 16
	require.NoError(t, cfg.Validate(), "the preset is registered")

	s, err := Open(cfg)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, planet.ErrInvalidConfig)
	assert.Contains(t, err.Error(), `"grey" has no editor`)
}

func TestEveryShippedPresetHasEditor(t *testing.T) {
	for _, name := range planet.PresetNames() {
		if name == "grey" {
			continue
		}
		assert.Contains(t, editors, name)
	}
}
