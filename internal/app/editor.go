package app

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"

	"magrathea/internal/core"
	"magrathea/internal/palette"
	"magrathea/internal/planet"
	"magrathea/internal/render"
	"magrathea/internal/terrain"
)

// Message is an edit request sent to an Editor.
type Message interface{ isMessage() }

// NewSeed replaces the body's seed with a random one.
type NewSeed struct{}

// SetSeed replaces the body's seed.
type SetSeed struct{ Seed uuid.UUID }

// SetOrigin moves the body to Angle on its current orbit.
type SetOrigin struct{ Angle float64 }

// SetSols changes the light intensity.
type SetSols struct{ Sols float64 }

// SetResolution changes the rendered image size.
type SetResolution struct{ Pixels int }

// Regenerate re-renders without changing anything.
type Regenerate struct{}

func (NewSeed) isMessage()       {}
func (SetSeed) isMessage()       {}
func (SetOrigin) isMessage()     {}
func (SetSols) isMessage()       {}
func (SetResolution) isMessage() {}
func (Regenerate) isMessage()    {}

// Frame is a rendered image plus the data overlays need to annotate it.
type Frame struct {
	Image      *image.NRGBA
	Elevation  []float64
	Pixels     int
	Origin     core.Point
	Lit        bool
	Generation int
}

// Parameter keys exposed to the HUD.
const (
	ParamAngle      = "angle"
	ParamSols       = "sols"
	ParamResolution = "resolution"
)

// Editor owns one planet and its latest render. Edits arrive as messages and
// regeneration is debounced so a burst of edits renders once.
type Editor[K comparable] struct {
	planet     *planet.Planet[K]
	light      *terrain.Light
	resolution int
	debounce   *core.Debouncer
	newSeed    func() uuid.UUID

	current    render.Generated[K]
	generation int
	lastErr    error
}

// NewEditor wraps p. A nil light keeps the body unlit and ignores SetSols.
func NewEditor[K comparable](p *planet.Planet[K], resolution int, light *terrain.Light, debounce time.Duration) *Editor[K] {
	var l *terrain.Light
	if light != nil {
		copied := *light
		l = &copied
	}
	return &Editor[K]{
		planet:     p,
		light:      l,
		resolution: resolution,
		debounce:   core.NewDebouncer(debounce),
		newSeed:    uuid.New,
	}
}

// Planet exposes the edited body.
func (e *Editor[K]) Planet() *planet.Planet[K] { return e.planet }

// Light returns the current light, nil when unlit.
func (e *Editor[K]) Light() *terrain.Light { return e.light }

// Resolution returns the target image size.
func (e *Editor[K]) Resolution() int { return e.resolution }

// Current returns the latest successful render.
func (e *Editor[K]) Current() render.Generated[K] { return e.current }

// Frame returns the latest render in kind-erased form.
func (e *Editor[K]) Frame() Frame {
	return Frame{
		Image:      e.current.Image,
		Elevation:  e.current.Elevation,
		Pixels:     e.current.Pixels,
		Origin:     e.planet.Origin,
		Lit:        e.light != nil,
		Generation: e.generation,
	}
}

// Generation counts successful renders.
func (e *Editor[K]) Generation() int { return e.generation }

// Err returns the error from the most recent render attempt.
func (e *Editor[K]) Err() error { return e.lastErr }

// Pending reports whether a regeneration is scheduled.
func (e *Editor[K]) Pending() bool { return e.debounce.Pending() }

// Send applies msg and schedules a regeneration.
func (e *Editor[K]) Send(msg Message, now time.Time) {
	switch m := msg.(type) {
	case NewSeed:
		e.planet.Reseed(e.newSeed())
	case SetSeed:
		e.planet.Reseed(m.Seed)
	case SetOrigin:
		e.planet.SetOriginByAngle(m.Angle, e.planet.Distance())
	case SetSols:
		if e.light != nil && !math.IsNaN(m.Sols) {
			e.light.Sols = math.Max(0, m.Sols)
		}
	case SetResolution:
		if m.Pixels > 0 {
			e.resolution = m.Pixels
		}
	case Regenerate:
	}
	e.debounce.Trigger(now)
}

// Update regenerates when the debounce period has elapsed. It reports whether
// a new image was produced.
func (e *Editor[K]) Update(now time.Time) (bool, error) {
	if !e.debounce.Ready(now) {
		return false, nil
	}
	return e.Render()
}

// Render regenerates immediately.
func (e *Editor[K]) Render() (bool, error) {
	out, err := e.planet.Generate(e.resolution, e.light)
	e.lastErr = err
	if err != nil {
		return false, err
	}
	e.current = out
	e.generation++
	return true, nil
}

// AngleAt converts a click at pixel (x, y) of a size × size view into an
// orbital angle so the clicked point faces the light.
func AngleAt(x, y, size int) float64 {
	c := float64(size) / 2
	// the lit face points at the light, so the body sits opposite the click
	return core.Pt(float64(x)-c, float64(y)-c).Angle() + math.Pi
}

// Parameters implements the HUD parameter provider.
func (e *Editor[K]) Parameters() core.ParameterSnapshot {
	body := []core.Parameter{
		{Key: "seed", Label: "Seed", Type: core.ParamTypeText, Value: e.planet.Seed.String()},
		{Key: ParamAngle, Label: "Angle", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(e.planet.Angle(), 'f', 4, 64)},
		{Key: "distance", Label: "Distance (km)", Type: core.ParamTypeText, Value: strconv.FormatFloat(e.planet.Distance(), 'f', 0, 64)},
		{Key: "radius", Label: "Radius (km)", Type: core.ParamTypeText, Value: strconv.FormatFloat(e.planet.Radius, 'f', 0, 64)},
		{Key: ParamResolution, Label: "Resolution", Type: core.ParamTypeInt, Value: strconv.Itoa(e.resolution)},
	}
	groups := []core.ParameterGroup{{Name: "Body", Params: body}}
	if e.light != nil {
		groups = append(groups, core.ParameterGroup{Name: "Light", Params: []core.Parameter{
			{Key: ParamSols, Label: "Sols", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(e.light.Sols, 'f', 2, 64)},
		}})
	}
	groups = append(groups, core.ParameterGroup{
		Name:    "Stats",
		Summary: fmt.Sprintf("%d pixels, render #%d", e.current.Stats.Total(), e.generation),
	})
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable parameters. The angle wraps
// around the orbit and the resolution steps through powers of two.
func (e *Editor[K]) ParameterControls() []core.ParameterControl {
	controls := []core.ParameterControl{
		{Key: ParamAngle, Label: "Angle", Type: core.ParamTypeFloat, Step: math.Pi / 12,
			Min: -math.Pi, Max: math.Pi, HasMin: true, HasMax: true, Wrap: true},
		{Key: ParamResolution, Label: "Resolution", Type: core.ParamTypeInt,
			Min: 16, Max: 1024, HasMin: true, HasMax: true, Doubling: true},
	}
	if e.light != nil {
		controls = append(controls, core.ParameterControl{
			Key: ParamSols, Label: "Sols", Type: core.ParamTypeFloat, Step: 0.1, Min: 0, Max: 10, HasMin: true, HasMax: true,
		})
	}
	return controls
}

// Coverage lists each kind's share of the latest render, largest first, in
// the colour of the kind's first palette anchor.
func (e *Editor[K]) Coverage() []core.KindShare {
	total := e.current.Stats.Total()
	if total == 0 {
		return nil
	}
	colors := make(map[K]color.NRGBA, len(e.planet.Palette.Anchors))
	for _, a := range e.planet.Palette.Anchors {
		if _, ok := colors[a.Kind]; !ok {
			r, g, b := palette.RGB255(a.Color)
			colors[a.Kind] = color.NRGBA{R: r, G: g, B: b, A: 255}
		}
	}
	sorted := e.current.Stats.Sorted(kindName[K])
	out := make([]core.KindShare, 0, len(sorted))
	for _, c := range sorted {
		out = append(out, core.KindShare{
			Label:    kindName(c.Kind),
			Fraction: float64(c.Count) / float64(total),
			Color:    colors[c.Kind],
		})
	}
	return out
}

// SetIntParameter implements core.IntParameterSetter. Edits are stamped with
// the wall clock.
func (e *Editor[K]) SetIntParameter(key string, value int) bool {
	if key != ParamResolution || value <= 0 {
		return false
	}
	e.Send(SetResolution{Pixels: value}, time.Now())
	return true
}

// SetFloatParameter implements core.FloatParameterSetter.
func (e *Editor[K]) SetFloatParameter(key string, value float64) bool {
	switch key {
	case ParamAngle:
		e.Send(SetOrigin{Angle: value}, time.Now())
	case ParamSols:
		if e.light == nil {
			return false
		}
		e.Send(SetSols{Sols: value}, time.Now())
	default:
		return false
	}
	return true
}

func kindName[K comparable](k K) string {
	if s, ok := any(k).(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(k)
}
