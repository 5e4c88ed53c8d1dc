// Package survey renders many seeds of one preset in parallel and summarises
// how much of each body every terrain kind covers.
package survey

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"magrathea/internal/core"
	"magrathea/internal/planet"
	"magrathea/internal/terrain"
)

// Options configures a survey run.
type Options struct {
	Preset     string
	Seeds      []uuid.UUID
	Resolution int
	Workers    int
	Light      *terrain.Light

	Origin   core.Point
	Radius   float64
	Strategy terrain.Strategy
	TieBreak terrain.TieBreak
}

// SeedResult is the outcome for one seed.
type SeedResult struct {
	Seed     uuid.UUID
	Stats    []planet.KindCount
	Coverage map[string]float64
	Pixels   int
}

// Summary aggregates a run.
type Summary struct {
	Preset  string
	Results []SeedResult
	// Mean is the mean coverage share per kind across all seeds.
	Mean map[string]float64
	// Present counts the seeds on which each kind appears at all.
	Present map[string]int
}

// Kinds returns the kinds seen in the run ordered by descending mean
// coverage.
func (s Summary) Kinds() []string {
	kinds := make([]string, 0, len(s.Mean))
	for k := range s.Mean {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool {
		if s.Mean[kinds[i]] != s.Mean[kinds[j]] {
			return s.Mean[kinds[i]] > s.Mean[kinds[j]]
		}
		return kinds[i] < kinds[j]
	})
	return kinds
}

// Run renders every seed. Each image is rendered sequentially; parallelism is
// across seeds only. Results keep the order of opts.Seeds.
func Run(ctx context.Context, opts Options) (Summary, error) {
	if len(opts.Seeds) == 0 {
		return Summary{}, errors.New("survey: no seeds")
	}
	gen, err := planet.Lookup(opts.Preset)
	if err != nil {
		return Summary{}, err
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]SeedResult, len(opts.Seeds))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, seed := range opts.Seeds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var light *terrain.Light
			if opts.Light != nil {
				copied := *opts.Light
				light = &copied
			}
			res, err := gen.Generate(planet.Options{
				Seed:     seed,
				Origin:   opts.Origin,
				Radius:   opts.Radius,
				Strategy: opts.Strategy,
				TieBreak: opts.TieBreak,
			}, opts.Resolution, light)
			if err != nil {
				return fmt.Errorf("seed %s: %w", seed, err)
			}
			results[i] = SeedResult{
				Seed:     seed,
				Stats:    res.Stats,
				Coverage: res.Coverage(),
				Pixels:   res.Pixels,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}
	return summarise(gen.Name(), results), nil
}

func summarise(preset string, results []SeedResult) Summary {
	s := Summary{
		Preset:  preset,
		Results: results,
		Mean:    map[string]float64{},
		Present: map[string]int{},
	}
	for _, r := range results {
		for kind, share := range r.Coverage {
			s.Mean[kind] += share
			if share > 0 {
				s.Present[kind]++
			}
		}
	}
	for kind := range s.Mean {
		s.Mean[kind] /= float64(len(results))
	}
	return s
}

// Seeds derives n reproducible seeds from base.
func Seeds(base uuid.UUID, n int) []uuid.UUID {
	out := make([]uuid.UUID, n)
	for i := range out {
		out[i] = uuid.NewSHA1(base, []byte(fmt.Sprintf("survey-%d", i)))
	}
	return out
}
