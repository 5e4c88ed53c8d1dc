// Package config holds the command-line parameters shared by the magrathea
// front-ends.
package config

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	colorful "github.com/lucasb-eyer/go-colorful"
	"go.uber.org/multierr"

	"magrathea/internal/core"
	"magrathea/internal/planet"
	"magrathea/internal/terrain"
)

// ErrInvalidColor is wrapped when a light colour cannot be parsed.
var ErrInvalidColor = errors.New("invalid colour")

// Config represents the command-line parameters for the application.
type Config struct {
	Output     string
	Resolution int
	Repeat     time.Duration
	SunColor   string
	Sols       float64
	Distance   float64
	Angle      float64
	Radius     float64
	Preset     string
	Strategy   string
	TieBreak   string
	Seed       string
	Debounce   time.Duration
	Scale      int
}

// NewConfig returns a Config populated with an Earth-like body one
// astronomical unit from an unlit sun.
func NewConfig() *Config {
	return &Config{
		Output:     "output.png",
		Resolution: 128,
		Distance:   150_200_000,
		Angle:      -2.35619,
		Radius:     6371,
		Sols:       1,
		Preset:     "earthlike",
		Strategy:   terrain.StrategyPoints.String(),
		TieBreak:   terrain.TieBreakLower.String(),
		Debounce:   150 * time.Millisecond,
		Scale:      4,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Output, "output", c.Output, "PNG file to write")
	fs.IntVar(&c.Resolution, "resolution", c.Resolution, "image width and height in pixels")
	fs.DurationVar(&c.Repeat, "repeat", c.Repeat, "regenerate with a fresh seed at this interval (0 runs once)")
	fs.StringVar(&c.SunColor, "sun-color", c.SunColor, "light colour as 6 hex digits, empty for an unlit body")
	fs.Float64Var(&c.Sols, "sols", c.Sols, "light intensity relative to the sun")
	fs.Float64Var(&c.Distance, "distance", c.Distance, "orbital distance from the light in km")
	fs.Float64Var(&c.Angle, "angle", c.Angle, "orbital angle in radians")
	fs.Float64Var(&c.Radius, "radius", c.Radius, "body radius in km")
	fs.StringVar(&c.Preset, "preset", c.Preset, "palette preset ("+strings.Join(planet.PresetNames(), ", ")+")")
	fs.StringVar(&c.Strategy, "strategy", c.Strategy, "elevation strategy (points, noise)")
	fs.StringVar(&c.TieBreak, "tie-break", c.TieBreak, "gradient tie-break (lower, weighted)")
	fs.StringVar(&c.Seed, "seed", c.Seed, "UUID seed, empty for a random one")
	fs.DurationVar(&c.Debounce, "debounce", c.Debounce, "quiet period before the editor regenerates")
	fs.IntVar(&c.Scale, "scale", c.Scale, "editor pixel scale multiplier")
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var err error
	if strings.TrimSpace(c.Output) == "" || strings.HasSuffix(c.Output, "/") {
		err = multierr.Append(err, fmt.Errorf("output %q must name a file", c.Output))
	}
	if c.Resolution <= 0 {
		err = multierr.Append(err, fmt.Errorf("resolution %d must be positive", c.Resolution))
	}
	if c.Repeat < 0 {
		err = multierr.Append(err, fmt.Errorf("repeat %v must not be negative", c.Repeat))
	}
	if !finite(c.Radius) || c.Radius <= 0 {
		err = multierr.Append(err, fmt.Errorf("radius %v must be a positive number", c.Radius))
	}
	if !finite(c.Distance) || c.Distance < 0 {
		err = multierr.Append(err, fmt.Errorf("distance %v must be a non-negative number", c.Distance))
	}
	if !finite(c.Angle) {
		err = multierr.Append(err, fmt.Errorf("angle %v must be a number", c.Angle))
	}
	if math.IsNaN(c.Sols) || c.Sols < 0 {
		err = multierr.Append(err, fmt.Errorf("sols %v must not be negative", c.Sols))
	}
	if c.Scale <= 0 {
		err = multierr.Append(err, fmt.Errorf("scale %d must be positive", c.Scale))
	}
	if _, ok := planet.Presets()[c.Preset]; !ok {
		err = multierr.Append(err, fmt.Errorf("unknown preset %q", c.Preset))
	}
	if _, serr := terrain.ParseStrategy(c.Strategy); serr != nil {
		err = multierr.Append(err, serr)
	}
	if _, terr := ParseTieBreak(c.TieBreak); terr != nil {
		err = multierr.Append(err, terr)
	}
	if _, lerr := c.Light(); lerr != nil {
		err = multierr.Append(err, lerr)
	}
	if _, serr := c.SeedUUID(); serr != nil && c.Seed != "" {
		err = multierr.Append(err, serr)
	}
	return err
}

// Light returns the configured light, or nil when no colour is set.
func (c *Config) Light() (*terrain.Light, error) {
	col, ok, err := ParseColor(c.SunColor)
	if err != nil || !ok {
		return nil, err
	}
	return &terrain.Light{Color: col, Sols: c.Sols}, nil
}

// ParseColor parses a 6 digit hex colour with an optional leading '#'. An
// empty string reports ok=false.
func ParseColor(s string) (colorful.Color, bool, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if s == "" {
		return colorful.Color{}, false, nil
	}
	if len(s) != 6 {
		return colorful.Color{}, false, fmt.Errorf("%w: %q must be 6 hex digits", ErrInvalidColor, s)
	}
	col, err := colorful.Hex("#" + s)
	if err != nil {
		return colorful.Color{}, false, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
	}
	return col, true, nil
}

// SeedUUID parses the configured seed or draws a random one.
func (c *Config) SeedUUID() (uuid.UUID, error) {
	if c.Seed == "" {
		return uuid.New(), nil
	}
	id, err := uuid.Parse(c.Seed)
	if err != nil {
		return uuid.Nil, fmt.Errorf("seed %q: %w", c.Seed, err)
	}
	return id, nil
}

// Origin returns the body's position from the orbital angle and distance.
func (c *Config) Origin() core.Point {
	return core.CalculateOrigin(c.Angle, c.Distance)
}

// Options assembles the planet options for seed.
func (c *Config) Options(seed uuid.UUID) (planet.Options, error) {
	strategy, err := terrain.ParseStrategy(c.Strategy)
	if err != nil {
		return planet.Options{}, err
	}
	tb, err := ParseTieBreak(c.TieBreak)
	if err != nil {
		return planet.Options{}, err
	}
	return planet.Options{
		Seed:     seed,
		Origin:   c.Origin(),
		Radius:   c.Radius,
		Strategy: strategy,
		TieBreak: tb,
	}, nil
}

// ParseTieBreak accepts the names produced by terrain.TieBreak.String.
func ParseTieBreak(name string) (terrain.TieBreak, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "lower", "":
		return terrain.TieBreakLower, nil
	case "weighted":
		return terrain.TieBreakWeighted, nil
	default:
		return 0, fmt.Errorf("unknown tie-break %q", name)
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
