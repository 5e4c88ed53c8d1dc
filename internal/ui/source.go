// Package ui draws the editor's side panel and view overlays.
package ui

import "magrathea/internal/core"

// Source is the editor surface the HUD reads and adjusts.
type Source interface {
	Parameters() core.ParameterSnapshot
	ParameterControls() []core.ParameterControl
	Coverage() []core.KindShare
	core.IntParameterSetter
	core.FloatParameterSetter
}

// Layer carries the per-render data the overlay annotates.
type Layer struct {
	Elevation []float64
	Pixels    int
	Origin    core.Point
	Lit       bool
	Stamp     int
}
