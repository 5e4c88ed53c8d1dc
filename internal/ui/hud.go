//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"

	"magrathea/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	panelBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	headingColor    = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor      = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	valueColor      = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	buttonColor     = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonIdle      = color.RGBA{R: 32, G: 34, B: 40, A: 255}
)

// HUD draws the side panel: orbit, resolution and light controls, the kind
// coverage of the current render and the body's read-only values.
type HUD struct {
	source Source
	panel  *panel
	width  int
	canvas *ebiten.Image

	snapshot core.ParameterSnapshot
	coverage []core.KindShare
}

// NewHUD builds a panel width pixels wide over source.
func NewHUD(source Source, width int) *HUD {
	if width <= 0 {
		return nil
	}
	return &HUD{source: source, panel: newPanel(source, width), width: width}
}

// Update reads the session and applies clicks on the +/- buttons. The panel
// starts offsetX pixels from the left of the window.
func (h *HUD) Update(offsetX int) {
	if h == nil {
		return
	}
	h.snapshot = h.source.Parameters()
	h.coverage = h.source.Coverage()
	h.panel.refresh(h.snapshot)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if mx >= offsetX {
			h.panel.click(mx-offsetX, my)
		}
	}
}

// Draw paints the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || height <= 0 {
		return
	}
	if h.canvas == nil || h.canvas.Bounds().Dy() != height {
		h.canvas = ebiten.NewImage(h.width, height)
	}
	h.canvas.Fill(panelBackground)

	face := basicfont.Face7x13
	text.Draw(h.canvas, "Planet", face, panelMargin, titleTop, headingColor)
	for i, row := range h.panel.rows {
		baseline := row.top + rowHeight/2 + 5
		text.Draw(h.canvas, row.control.Label, face, panelMargin, baseline, valueColor)
		col := valueColor
		if !row.known {
			col = labelColor
		}
		w := text.BoundString(face, row.text).Dx()
		text.Draw(h.canvas, row.text, face, row.minus.Min.X-buttonSpace-w, baseline, col)
		h.button(row.minus, "-", h.panel.enabled(i, -1))
		h.button(row.plus, "+", h.panel.enabled(i, 1))
	}

	y := rowsTop + len(h.panel.rows)*rowHeight + legendLine
	y = h.drawCoverage(y)
	h.drawReadouts(y + legendLine)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.canvas, op)
}

func (h *HUD) button(r image.Rectangle, label string, enabled bool) {
	bg, fg := buttonColor, valueColor
	if !enabled {
		bg, fg = buttonIdle, labelColor
	}
	h.fill(r, bg)
	b := text.BoundString(basicfont.Face7x13, label)
	x := r.Min.X + (r.Dx()-b.Dx())/2
	text.Draw(h.canvas, label, basicfont.Face7x13, x, r.Min.Y+(r.Dy()+b.Dy())/2, fg)
}

// drawCoverage draws the stacked coverage bar and its legend from y and
// returns the next free baseline.
func (h *HUD) drawCoverage(y int) int {
	if len(h.coverage) == 0 {
		return y
	}
	face := basicfont.Face7x13
	text.Draw(h.canvas, "Coverage", face, panelMargin, y, headingColor)
	y += legendLine / 2
	for _, seg := range coverageBar(h.coverage, panelMargin, y, h.width-2*panelMargin) {
		h.fill(seg.rect, seg.color)
	}
	y += barHeight + legendLine
	for _, s := range h.coverage {
		h.fill(image.Rect(panelMargin, y-9, panelMargin+9, y), s.Color)
		text.Draw(h.canvas, s.Label, face, panelMargin+16, y, labelColor)
		pct := fmt.Sprintf("%.1f%%", 100*s.Fraction)
		text.Draw(h.canvas, pct, face, h.width-panelMargin-text.BoundString(face, pct).Dx(), y, valueColor)
		y += legendLine
	}
	return y
}

// drawReadouts lists text parameters and group summaries.
func (h *HUD) drawReadouts(y int) {
	face := basicfont.Face7x13
	for _, group := range h.snapshot.Groups {
		for _, param := range group.Params {
			if param.Type != core.ParamTypeText {
				continue
			}
			text.Draw(h.canvas, param.Label, face, panelMargin, y, labelColor)
			w := text.BoundString(face, param.Value).Dx()
			text.Draw(h.canvas, param.Value, face, h.width-panelMargin-w, y, valueColor)
			y += legendLine
		}
		if group.Summary != "" {
			text.Draw(h.canvas, group.Summary, face, panelMargin, y, labelColor)
			y += legendLine
		}
	}
}

func (h *HUD) fill(r image.Rectangle, c color.Color) {
	r = r.Intersect(h.canvas.Bounds())
	if r.Empty() {
		return
	}
	h.canvas.SubImage(r).(*ebiten.Image).Fill(c)
}
