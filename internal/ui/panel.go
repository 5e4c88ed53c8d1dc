package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"magrathea/internal/core"
)

const (
	panelMargin = 12
	titleTop    = 30
	rowsTop     = 44
	rowHeight   = 32
	buttonSide  = 22
	buttonSpace = 6
	barHeight   = 10
	legendLine  = 16
)

// controlRow is one adjustable parameter with its button hit boxes.
type controlRow struct {
	control core.ParameterControl
	value   float64
	text    string
	known   bool

	top   int
	minus image.Rectangle
	plus  image.Rectangle
}

// panel holds the HUD's input state separately from ebiten so it can be
// driven by tests.
type panel struct {
	source Source
	width  int
	rows   []controlRow
}

func newPanel(source Source, width int) *panel {
	p := &panel{source: source, width: width}
	for i, ctrl := range source.ParameterControls() {
		top := rowsTop + i*rowHeight
		y := top + (rowHeight-buttonSide)/2
		plus := image.Rect(width-panelMargin-buttonSide, y, width-panelMargin, y+buttonSide)
		minus := plus.Sub(image.Pt(buttonSide+buttonSpace, 0))
		p.rows = append(p.rows, controlRow{control: ctrl, text: "--", top: top, minus: minus, plus: plus})
	}
	return p
}

// refresh copies current values out of snap.
func (p *panel) refresh(snap core.ParameterSnapshot) {
	for i := range p.rows {
		row := &p.rows[i]
		row.known = false
		row.text = "--"
		param, ok := snap.Find(row.control.Key)
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			continue
		}
		row.value = v
		row.text = formatValue(row.control, v)
		row.known = true
	}
}

// click applies a press at panel-local (x, y). It reports whether a value
// changed.
func (p *panel) click(x, y int) bool {
	pt := image.Pt(x, y)
	for i, row := range p.rows {
		switch {
		case pt.In(row.minus):
			return p.step(i, -1)
		case pt.In(row.plus):
			return p.step(i, 1)
		}
	}
	return false
}

func (p *panel) enabled(i, dir int) bool {
	row := p.rows[i]
	if !row.known {
		return false
	}
	_, ok := row.control.Next(row.value, dir)
	return ok
}

func (p *panel) step(i, dir int) bool {
	row := &p.rows[i]
	if !row.known {
		return false
	}
	next, ok := row.control.Next(row.value, dir)
	if !ok {
		return false
	}
	var accepted bool
	if row.control.Type == core.ParamTypeInt {
		next = math.Round(next)
		accepted = p.source.SetIntParameter(row.control.Key, int(next))
	} else {
		accepted = p.source.SetFloatParameter(row.control.Key, next)
	}
	if accepted {
		row.value = next
		row.text = formatValue(row.control, next)
	}
	return accepted
}

// formatValue prints v with as many decimals as the control's step needs.
// Wrapping controls are angles and read in degrees.
func formatValue(c core.ParameterControl, v float64) string {
	if c.Type == core.ParamTypeInt {
		return strconv.Itoa(int(math.Round(v)))
	}
	if c.Wrap {
		return strconv.FormatFloat(v*180/math.Pi, 'f', 0, 64) + "°"
	}
	decimals := 2
	if c.Step > 0 {
		decimals = max(0, int(math.Ceil(-math.Log10(c.Step)-1e-9)))
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

type barSegment struct {
	rect  image.Rectangle
	color color.NRGBA
}

// coverageBar splits a width-pixel bar between kinds by share. Edges are
// placed from the running total so the segments always tile the bar.
func coverageBar(shares []core.KindShare, x, y, width int) []barSegment {
	out := make([]barSegment, 0, len(shares))
	sum := 0.0
	left := x
	for _, s := range shares {
		sum += s.Fraction
		right := x + int(math.Round(math.Min(sum, 1)*float64(width)))
		if right > left {
			out = append(out, barSegment{rect: image.Rect(left, y, right, y+barHeight), color: s.Color})
		}
		left = right
	}
	return out
}
