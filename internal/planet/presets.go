package planet

import (
	"fmt"
	"image"
	"sort"

	"github.com/google/uuid"

	"magrathea/internal/core"
	"magrathea/internal/palette"
	"magrathea/internal/terrain"
)

// Options describes a body independently of its palette kind.
type Options struct {
	Seed     uuid.UUID
	Origin   core.Point
	Radius   float64
	Strategy terrain.Strategy
	TieBreak terrain.TieBreak
}

// KindCount is one entry of a kind-erased stats listing.
type KindCount struct {
	Kind  string
	Count int
}

// Result is a kind-erased render.
type Result struct {
	Image     *image.NRGBA
	Stats     []KindCount
	Elevation []float64
	Pixels    int
}

// Coverage returns the share of body pixels per kind.
func (r Result) Coverage() map[string]float64 {
	total := 0
	for _, c := range r.Stats {
		total += c.Count
	}
	out := make(map[string]float64, len(r.Stats))
	if total == 0 {
		return out
	}
	for _, c := range r.Stats {
		out[c.Kind] = float64(c.Count) / float64(total)
	}
	return out
}

// Generator renders bodies of one preset.
type Generator interface {
	Name() string
	Kinds() []string
	Generate(opts Options, resolution int, light *terrain.Light) (Result, error)
}

// Factory builds a generator.
type Factory func() Generator

var registry = map[string]Factory{}

// Register makes a preset available to the CLI under name.
func Register(name string, f Factory) {
	if _, dup := registry[name]; dup {
		panic(fmt.Sprintf("planet: preset %q registered twice", name))
	}
	registry[name] = f
}

// Presets returns the registered preset factories.
func Presets() map[string]Factory { return registry }

// PresetNames lists the registered presets alphabetically.
func PresetNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns a generator for the named preset.
func Lookup(name string) (Generator, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown preset %q (have %v)", ErrInvalidConfig, name, PresetNames())
	}
	return f(), nil
}

type paletteGenerator[K interface {
	comparable
	fmt.Stringer
}] struct {
	name    string
	palette func() palette.Palette[K]
}

func (g paletteGenerator[K]) Name() string { return g.name }

func (g paletteGenerator[K]) Kinds() []string {
	kinds := g.palette().Kinds()
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = k.String()
	}
	return out
}

func (g paletteGenerator[K]) Planet(opts Options) (*Planet[K], error) {
	p, err := New(opts.Seed, opts.Origin, opts.Radius, g.palette())
	if err != nil {
		return nil, err
	}
	p.Strategy = opts.Strategy
	p.TieBreak = opts.TieBreak
	return p, nil
}

func (g paletteGenerator[K]) Generate(opts Options, resolution int, light *terrain.Light) (Result, error) {
	p, err := g.Planet(opts)
	if err != nil {
		return Result{}, err
	}
	gen, err := p.Generate(resolution, light)
	if err != nil {
		return Result{}, err
	}
	res := Result{Image: gen.Image, Elevation: gen.Elevation, Pixels: gen.Pixels}
	for _, c := range gen.Stats.Sorted(func(k K) string { return k.String() }) {
		res.Stats = append(res.Stats, KindCount{Kind: c.Kind.String(), Count: c.Count})
	}
	return res, nil
}

func init() {
	Register("earthlike", func() Generator {
		return paletteGenerator[palette.Earthlike]{name: "earthlike", palette: palette.EarthlikePalette}
	})
	Register("sunlike", func() Generator {
		return paletteGenerator[palette.Sunlike]{name: "sunlike", palette: palette.SunlikePalette}
	})
}
