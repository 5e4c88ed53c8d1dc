package core

import (
	"image/color"
	"math"
)

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeText denotes read-only values such as seeds and counts.
	ParamTypeText ParamType = "text"
)

// Parameter describes a single value exposed by an editor.
type Parameter struct {
	Key         string
	Label       string
	Type        ParamType
	Value       string
	Description string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name    string
	Params  []Parameter
	Summary string
}

// ParameterSnapshot captures the current set of values exposed by an editor.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Find returns the parameter stored under key.
func (s ParameterSnapshot) Find(key string) (Parameter, bool) {
	for _, group := range s.Groups {
		for _, param := range group.Params {
			if param.Key == key {
				return param, true
			}
		}
	}
	return Parameter{}, false
}

// ParameterControl describes an adjustable parameter that should be exposed on
// the HUD. Steps and bounds are optional and interpreted based on the
// parameter type.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType

	Step float64

	Min    float64
	Max    float64
	HasMin bool
	HasMax bool

	// Wrap treats [Min, Max) as periodic, as for angles.
	Wrap bool
	// Doubling steps between powers of two instead of by Step.
	Doubling bool
}

// Clamp limits v to the control's bounds.
func (c ParameterControl) Clamp(v float64) float64 {
	if c.HasMin && v < c.Min {
		v = c.Min
	}
	if c.HasMax && v > c.Max {
		v = c.Max
	}
	return v
}

// Next returns the value one step from v in direction dir and whether it
// differs from v.
func (c ParameterControl) Next(v float64, dir int) (float64, bool) {
	if dir == 0 || math.IsNaN(v) {
		return v, false
	}
	var n float64
	if c.Doubling {
		n = nextPowerOfTwo(v, dir)
	} else {
		step := c.Step
		if step <= 0 {
			step = 1
		}
		n = v + float64(dir)*step
	}
	if c.Wrap && c.HasMin && c.HasMax && c.Max > c.Min {
		span := c.Max - c.Min
		n = c.Min + math.Mod(math.Mod(n-c.Min, span)+span, span)
	} else {
		n = c.Clamp(n)
	}
	return n, math.Abs(n-v) > 1e-9
}

func nextPowerOfTwo(v float64, dir int) float64 {
	if v <= 0 {
		if dir > 0 {
			return 1
		}
		return v
	}
	exp := math.Log2(v)
	if dir > 0 {
		return math.Exp2(math.Floor(exp) + 1)
	}
	return math.Exp2(math.Ceil(exp) - 1)
}

// KindShare is one terrain kind's share of a render, with its palette colour.
type KindShare struct {
	Label    string
	Fraction float64
	Color    color.NRGBA
}

// IntParameterSetter allows HUD interactions to update integer parameters.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}

// FloatParameterSetter allows HUD interactions to update floating point
// parameters.
type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) bool
}
