package survey

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magrathea/internal/core"
	"magrathea/internal/planet"
	"magrathea/internal/terrain"
)

func baseOptions(seeds []uuid.UUID) Options {
	return Options{
		Preset:     "earthlike",
		Seeds:      seeds,
		Resolution: 16,
		Workers:    3,
		Light:      terrain.White(1),
		Origin:     core.CalculateOrigin(-2.35619, 150_200_000),
		Radius:     6371,
	}
}

func TestRunKeepsSeedOrder(t *testing.T) {
	seeds := Seeds(uuid.Nil, 6)
	sum, err := Run(context.Background(), baseOptions(seeds))
	require.NoError(t, err)
	require.Len(t, sum.Results, len(seeds))
	for i, r := range sum.Results {
		assert.Equal(t, seeds[i], r.Seed)
		assert.Equal(t, 16, r.Pixels)
		total := 0.0
		for _, share := range r.Coverage {
			total += share
		}
		assert.InDelta(t, 1, total, 1e-9)
	}

	meanTotal := 0.0
	for _, k := range sum.Kinds() {
		meanTotal += sum.Mean[k]
		assert.LessOrEqual(t, sum.Present[k], len(seeds))
	}
	assert.InDelta(t, 1, meanTotal, 1e-9)
	assert.Equal(t, "earthlike", sum.Preset)
}

func TestRunMatchesSequentialGeneration(t *testing.T) {
	seeds := Seeds(uuid.MustParse("6ba7b811-9dad-11d1-80b4-00c04fd430c8"), 4)
	opts := baseOptions(seeds)
	opts.Workers = 4
	sum, err := Run(context.Background(), opts)
	require.NoError(t, err)

	gen, err := planet.Lookup("earthlike")
	require.NoError(t, err)
	for i, seed := range seeds {
		res, err := gen.Generate(planet.Options{Seed: seed, Origin: opts.Origin, Radius: opts.Radius}, 16, terrain.White(1))
		require.NoError(t, err)
		assert.Equal(t, res.Stats, sum.Results[i].Stats)
	}
}

func TestRunErrors(t *testing.T) {
	_, err := Run(context.Background(), baseOptions(nil))
	assert.Error(t, err)

	opts := baseOptions(Seeds(uuid.Nil, 2))
	opts.Preset = "comet"
	_, err = Run(context.Background(), opts)
	assert.ErrorIs(t, err, planet.ErrInvalidConfig)

	opts = baseOptions(Seeds(uuid.Nil, 2))
	opts.Resolution = 0
	_, err = Run(context.Background(), opts)
	assert.ErrorIs(t, err, planet.ErrInvalidConfig)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Run(ctx, baseOptions(Seeds(uuid.Nil, 2)))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSeedsAreStable(t *testing.T) {
	a := Seeds(uuid.Nil, 3)
	b := Seeds(uuid.Nil, 3)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a[0], a[1])
}
