package app

import (
	"fmt"
	"time"

	"magrathea/internal/config"
	"magrathea/internal/core"
	"magrathea/internal/palette"
	"magrathea/internal/planet"
	"magrathea/internal/terrain"
)

// Session is the kind-erased view of an Editor used by the front-ends.
type Session interface {
	Send(msg Message, now time.Time)
	Update(now time.Time) (bool, error)
	Render() (bool, error)
	Frame() Frame
	Err() error
	Resolution() int
	Light() *terrain.Light
	Pending() bool

	Parameters() core.ParameterSnapshot
	ParameterControls() []core.ParameterControl
	Coverage() []core.KindShare
	core.IntParameterSetter
	core.FloatParameterSetter
}

var (
	_ Session = (*Editor[palette.Earthlike])(nil)
	_ Session = (*Editor[palette.Sunlike])(nil)
)

// Open builds an editor session for the configured preset and renders the
// first frame.
func Open(cfg *config.Config) (Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed, err := cfg.SeedUUID()
	if err != nil {
		return nil, err
	}
	opts, err := cfg.Options(seed)
	if err != nil {
		return nil, err
	}
	light, err := cfg.Light()
	if err != nil {
		return nil, err
	}

	if _, err := planet.Lookup(cfg.Preset); err != nil {
		return nil, err
	}
	open, ok := editors[cfg.Preset]
	if !ok {
		return nil, fmt.Errorf("%w: preset %q has no editor", planet.ErrInvalidConfig, cfg.Preset)
	}
	s, err := open(opts, cfg, light)
	if err != nil {
		return nil, err
	}
	if _, err := s.Render(); err != nil {
		return nil, err
	}
	return s, nil
}

type editorOpener func(opts planet.Options, cfg *config.Config, light *terrain.Light) (Session, error)

// editors maps planet presets to their typed editor constructors.
var editors = map[string]editorOpener{
	"earthlike": paletteEditor(palette.EarthlikePalette),
	"sunlike":   paletteEditor(palette.SunlikePalette),
}

func paletteEditor[K comparable](p func() palette.Palette[K]) editorOpener {
	return func(opts planet.Options, cfg *config.Config, light *terrain.Light) (Session, error) {
		e, err := openEditor(opts, p(), cfg, light)
		if err != nil {
			return nil, err
		}
		return e, nil
	}
}

func openEditor[K comparable](opts planet.Options, p palette.Palette[K], cfg *config.Config, light *terrain.Light) (*Editor[K], error) {
	pl, err := planet.New(opts.Seed, opts.Origin, opts.Radius, p)
	if err != nil {
		return nil, err
	}
	pl.Strategy = opts.Strategy
	pl.TieBreak = opts.TieBreak
	return NewEditor(pl, cfg.Resolution, light, cfg.Debounce), nil
}
